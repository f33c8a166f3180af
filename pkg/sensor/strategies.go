package sensor

import (
	"math"

	"github.com/df07/go-distant-sensor/pkg/core"
	"github.com/df07/go-distant-sensor/pkg/geometry"
)

// targetSampler produces a world-space target point and its importance
// weight contribution. Implementations are immutable; the bounding sphere
// is passed in because scene binding may recompute it.
type targetSampler interface {
	sampleTarget(trafo core.Transform, dir core.Vec3, time float64,
		sample core.Vec2, bsphere core.BoundingSphere) (core.Vec3, float64)
}

// pointTarget aims every ray at one fixed point
type pointTarget struct {
	point core.Vec3
}

func (p pointTarget) sampleTarget(trafo core.Transform, dir core.Vec3, time float64,
	sample core.Vec2, bsphere core.BoundingSphere) (core.Vec3, float64) {
	// The weight is the cosine between the reversed ray direction and the
	// world up axis. This matches an irradiance measurement on a horizontal
	// reference surface; correctness for non-horizontal configurations has
	// not been verified.
	return p.point, dir.Negate().Z
}

// shapeTarget draws targets from a shape's surface via area sampling,
// making the measured flux proportional to the shape's projected area
type shapeTarget struct {
	shape geometry.Shape
}

func (s shapeTarget) sampleTarget(trafo core.Transform, dir core.Vec3, time float64,
	sample core.Vec2, bsphere core.BoundingSphere) (core.Vec3, float64) {
	ps := s.shape.SamplePosition(time, sample)
	if ps.PDF <= 0 {
		return ps.Point, 0
	}

	// Foreshortening-corrected area weight
	return ps.Point, dir.Negate().Dot(ps.Normal) / ps.PDF
}

// diskTarget draws targets uniformly from the cross section of the scene's
// bounding sphere perpendicular to the ray direction
type diskTarget struct{}

func (diskTarget) sampleTarget(trafo core.Transform, dir core.Vec3, time float64,
	sample core.Vec2, bsphere core.BoundingSphere) (core.Vec3, float64) {
	offset := core.SamplePointInUnitDisk(sample)
	perpOffset := trafo.ApplyVector(core.NewVec3(offset.X, offset.Y, 0))
	target := bsphere.Center.Add(perpOffset.Multiply(bsphere.Radius))

	// Uniform area sampling over the disk
	return target, math.Pi * bsphere.Radius * bsphere.Radius
}

// originPlacer positions the ray origin for a sampled target. The boolean
// result is the per-sample validity: false marks a contributionless sample.
type originPlacer interface {
	placeOrigin(target, dir core.Vec3, time float64,
		bsphere core.BoundingSphere) (core.Vec3, bool)
}

// shapeOrigin projects the target onto a shape along the reversed ray
// direction. Projection failure invalidates only the affected sample.
type shapeOrigin struct {
	shape geometry.Shape
}

func (s shapeOrigin) placeOrigin(target, dir core.Vec3, time float64,
	bsphere core.BoundingSphere) (core.Vec3, bool) {
	auxRay := core.NewRayAt(target, dir.Negate(), time)
	hit, ok := s.shape.Hit(auxRay, core.RayEpsilon, math.Inf(1))
	if !ok {
		return core.Vec3{}, false
	}
	return hit.Point, true
}

// sphereOrigin backs the origin off from the target along the reversed ray
// direction by a fixed number of bounding-sphere radii: one when the target
// already lies on the sphere's cross section, two otherwise, so that the
// origin is guaranteed to sit outside all geometry.
type sphereOrigin struct {
	offsetRadii float64
}

func (s sphereOrigin) placeOrigin(target, dir core.Vec3, time float64,
	bsphere core.BoundingSphere) (core.Vec3, bool) {
	return target.Subtract(dir.Multiply(s.offsetRadii * bsphere.Radius)), true
}
