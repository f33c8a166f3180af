package sensor

import (
	"github.com/df07/go-distant-sensor/pkg/core"
	"github.com/df07/go-distant-sensor/pkg/geometry"
)

// targetKind discriminates the TargetRef union
type targetKind int

const (
	targetAbsent targetKind = iota
	targetPoint
	targetShape
)

// TargetRef is a tagged reference to the sensor's ray target: a fixed world
// point, a shape to area-sample, or absent (the zero value), in which case
// targets are drawn from the scene's bounding-sphere cross section.
type TargetRef struct {
	kind  targetKind
	point core.Vec3
	shape geometry.Shape
}

// TargetPoint references a fixed world-space target point
func TargetPoint(p core.Vec3) TargetRef {
	return TargetRef{kind: targetPoint, point: p}
}

// TargetShape references a shape whose surface supplies target points
func TargetShape(s geometry.Shape) TargetRef {
	return TargetRef{kind: targetShape, shape: s}
}

// Options configures a distant sensor. The zero value selects the default
// strategies: identity orientation, bounding-disk targets and
// bounding-sphere ray origins, with a 1x1 box-filtered film.
type Options struct {
	// Direction the sensor records from, in world coordinates.
	// Exclusive with ToWorld.
	Direction *core.Vec3

	// ToWorld is the sensor-to-world transform; local +Z is the recorded
	// direction. Exclusive with Direction.
	ToWorld core.TransformProvider

	// Target selects the ray target strategy (see TargetRef).
	Target TargetRef

	// Origin, when non-nil, is the shape ray origins are projected onto.
	// When nil, origins are offset along the scene's bounding sphere.
	Origin geometry.Shape

	// Film attached to the sensor; defaults to NewFilm(). Must be 1x1.
	Film *Film

	// Logger receives construction diagnostics; defaults to stdout.
	Logger core.Logger
}
