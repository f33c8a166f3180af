// Package sensor implements a distant directional sensor: a sensor with no
// spatial extent that records radiant flux entering the scene from a fixed
// direction, as if measured by an infinitely far detector.
//
// Ray targets and origins are controlled by two orthogonal strategies
// resolved once at construction. By default, targets are sampled uniformly
// on the cross section of the scene's bounding sphere and origins are
// placed on that sphere, outside all geometry. A fixed target point or a
// target shape narrows the measurement to a region of the scene; an origin
// shape places ray origins by projection instead.
//
// Note that with the default strategies an environment emitter visible
// through the bounding-sphere cross section also contributes to the
// measurement.
package sensor

import (
	"fmt"
	"strings"

	"github.com/df07/go-distant-sensor/pkg/core"
	"github.com/df07/go-distant-sensor/pkg/scene"
	"github.com/df07/go-distant-sensor/pkg/spectrum"
)

// TargetMode identifies the resolved ray target strategy
type TargetMode int

const (
	// TargetBoundingDisk samples targets uniformly on the cross section of
	// the scene's bounding sphere (the default)
	TargetBoundingDisk TargetMode = iota
	// TargetFixedPoint aims every ray at a configured point
	TargetFixedPoint
	// TargetShapeSurface area-samples targets from a configured shape
	TargetShapeSurface
)

func (m TargetMode) String() string {
	switch m {
	case TargetFixedPoint:
		return "fixed_point"
	case TargetShapeSurface:
		return "shape_surface"
	default:
		return "bounding_disk"
	}
}

// OriginMode identifies the resolved ray origin strategy
type OriginMode int

const (
	// OriginBoundingSphere offsets origins along the scene's bounding
	// sphere (the default)
	OriginBoundingSphere OriginMode = iota
	// OriginProjectOntoShape projects targets onto a configured shape
	OriginProjectOntoShape
)

func (m OriginMode) String() string {
	switch m {
	case OriginProjectOntoShape:
		return "project_onto_shape"
	default:
		return "bounding_sphere"
	}
}

// RayResult is the outcome of a single sample request. Invalid results
// carry zero weight and must be treated as contributionless by the caller.
type RayResult struct {
	Ray         core.Ray
	Wavelengths spectrum.Wavelengths
	Weight      float64
	Valid       bool
}

// RayDifferential extends RayResult with differential availability.
// A distant sensor has no spatial extent to differentiate across, so
// HasDifferentials is always false.
type RayDifferential struct {
	RayResult
	HasDifferentials bool
}

// Distant is a distant directional sensor. It is immutable after
// construction except for Bind, which must complete before any sampling
// call; all sampling methods are then safe for concurrent use.
type Distant struct {
	transform  core.TransformProvider
	film       *Film
	targetMode TargetMode
	originMode OriginMode
	target     targetSampler
	origin     originPlacer
	bsphere    core.BoundingSphere
	logger     core.Logger
}

// NewDistant resolves the given options into a fully configured sensor.
// Conflicting or unresolvable options yield a *ConfigError and no sensor.
func NewDistant(opts Options) (*Distant, error) {
	logger := opts.Logger
	if logger == nil {
		logger = NewDefaultLogger()
	}

	if opts.Direction != nil && opts.ToWorld != nil {
		return nil, &ConfigError{
			Option:  "direction",
			Message: "only one of 'direction' and 'to_world' can be specified at the same time",
		}
	}

	var transform core.TransformProvider
	switch {
	case opts.Direction != nil:
		direction := opts.Direction.Normalize()
		if direction.Length() == 0 {
			return nil, &ConfigError{Option: "direction", Message: "direction must be a non-zero vector"}
		}
		// Any consistent up vector works; only the viewing axis matters
		up, _ := core.CoordinateSystem(direction)
		transform = core.NewStaticTransform(core.LookAt(core.NewVec3(0, 0, 0), direction, up))
	case opts.ToWorld != nil:
		transform = opts.ToWorld
	default:
		transform = core.NewStaticTransform(core.IdentityTransform())
	}

	film := opts.Film
	if film == nil {
		film = NewFilm()
	}
	if w, h := film.Size(); w != 1 || h != 1 {
		return nil, &ConfigError{
			Option:  "film",
			Message: fmt.Sprintf("this sensor only supports films of size 1x1 pixels, got %dx%d", w, h),
		}
	}
	if film.FilterRadius > 0.5+core.RayEpsilon {
		logger.Printf("Warning: distant sensor should be used with a reconstruction "+
			"filter of radius 0.5 or lower (e.g. a box filter), got %g\n", film.FilterRadius)
	}

	var targetMode TargetMode
	var target targetSampler
	switch opts.Target.kind {
	case targetPoint:
		targetMode = TargetFixedPoint
		target = pointTarget{point: opts.Target.point}
	case targetShape:
		if opts.Target.shape == nil {
			return nil, &ConfigError{Option: "ray_target", Message: "must be a point or a shape"}
		}
		targetMode = TargetShapeSurface
		target = shapeTarget{shape: opts.Target.shape}
	default:
		targetMode = TargetBoundingDisk
		target = diskTarget{}
	}

	var originMode OriginMode
	var origin originPlacer
	if opts.Origin != nil {
		originMode = OriginProjectOntoShape
		origin = shapeOrigin{shape: opts.Origin}
	} else {
		originMode = OriginBoundingSphere
		// Bounding-disk targets already lie on the sphere's cross section,
		// so one radius suffices; other targets may be anywhere inside it
		offsetRadii := 2.0
		if targetMode == TargetBoundingDisk {
			offsetRadii = 1.0
		}
		origin = sphereOrigin{offsetRadii: offsetRadii}
	}

	logger.Printf("Distant sensor: target strategy %v, origin strategy %v\n", targetMode, originMode)

	return &Distant{
		transform:  transform,
		film:       film,
		targetMode: targetMode,
		originMode: originMode,
		target:     target,
		origin:     origin,
		logger:     logger,
	}, nil
}

// TargetMode returns the resolved target strategy
func (d *Distant) TargetMode() TargetMode { return d.targetMode }

// OriginMode returns the resolved origin strategy
func (d *Distant) OriginMode() OriginMode { return d.originMode }

// Film returns the film attached to the sensor
func (d *Distant) Film() *Film { return d.film }

// BoundingSphere returns the scene bounds computed by the last Bind
func (d *Distant) BoundingSphere() core.BoundingSphere { return d.bsphere }

// Bind computes the bounding sphere of the given scene and inflates it so
// that points on its surface are guaranteed to lie outside all geometry.
// It must complete before any sampling call and may be called again when
// the scene changes.
func (d *Distant) Bind(sc *scene.Scene) {
	d.bsphere = core.BoundingSphereFromAABB(sc.BoundingBox()).Expanded(core.RayEpsilon)
}

// SampleRay generates one ray and its importance weight. The film sample
// is not part of the request because the sensor has no spatial extent; the
// aperture sample drives target selection. The call is a pure function of
// the configuration, the bound scene, and its arguments.
func (d *Distant) SampleRay(time, wavelengthSample float64, apertureSample core.Vec2) RayResult {
	// 1. Sample spectrum
	wavelengths, wavWeight := spectrum.Sample(wavelengthSample)

	// 2. Set ray direction from the world transform at the requested time
	trafo := d.transform.Eval(time)
	dir := trafo.ApplyVector(core.NewVec3(0, 0, 1)).Normalize()

	// 3. Sample target point, then place the origin
	target, targetWeight := d.target.sampleTarget(trafo, dir, time, apertureSample, d.bsphere)
	origin, valid := d.origin.placeOrigin(target, dir, time, d.bsphere)

	weight := wavWeight * targetWeight
	if !valid {
		weight = 0
	}

	return RayResult{
		Ray:         core.NewRayAt(origin, dir, time),
		Wavelengths: wavelengths,
		Weight:      weight,
		Valid:       valid,
	}
}

// SampleRayDifferential generates one ray like SampleRay. Differentials
// are never available for a sensor without spatial extent.
func (d *Distant) SampleRayDifferential(time, wavelengthSample float64, apertureSample core.Vec2) RayDifferential {
	return RayDifferential{
		RayResult:        d.SampleRay(time, wavelengthSample, apertureSample),
		HasDifferentials: false,
	}
}

// String describes the resolved sensor configuration
func (d *Distant) String() string {
	var sb strings.Builder
	sb.WriteString("DistantSensor[\n")
	fmt.Fprintf(&sb, "  target = %v,\n", d.targetMode)
	if d.targetMode == TargetFixedPoint {
		fmt.Fprintf(&sb, "  target_point = %v,\n", d.target.(pointTarget).point)
	}
	fmt.Fprintf(&sb, "  origin = %v,\n", d.originMode)
	fmt.Fprintf(&sb, "  film = %dx%d,\n", d.film.Width, d.film.Height)
	fmt.Fprintf(&sb, "  bsphere = {center: %v, radius: %g},\n", d.bsphere.Center, d.bsphere.Radius)
	sb.WriteString("]")
	return sb.String()
}
