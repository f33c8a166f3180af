package core

// Transform represents a rigid sensor-to-world frame: an orthonormal basis
// plus a translation. Local +Z is the viewing direction.
type Transform struct {
	Right   Vec3 // World image of local +X
	Up      Vec3 // World image of local +Y
	Forward Vec3 // World image of local +Z
	Origin  Vec3 // World position of the local origin
}

// IdentityTransform returns the identity frame
func IdentityTransform() Transform {
	return Transform{
		Right:   NewVec3(1, 0, 0),
		Up:      NewVec3(0, 1, 0),
		Forward: NewVec3(0, 0, 1),
		Origin:  NewVec3(0, 0, 0),
	}
}

// LookAt builds a frame positioned at origin with local +Z pointing toward
// target. The up vector only fixes the roll around the viewing axis.
func LookAt(origin, target, up Vec3) Transform {
	forward := target.Subtract(origin).Normalize()
	right := up.Cross(forward).Normalize()
	newUp := forward.Cross(right)

	return Transform{
		Right:   right,
		Up:      newUp,
		Forward: forward,
		Origin:  origin,
	}
}

// ApplyVector transforms a direction from the local frame to world space
func (t Transform) ApplyVector(v Vec3) Vec3 {
	return t.Right.Multiply(v.X).
		Add(t.Up.Multiply(v.Y)).
		Add(t.Forward.Multiply(v.Z))
}

// Apply transforms a point from the local frame to world space
func (t Transform) Apply(p Vec3) Vec3 {
	return t.ApplyVector(p).Add(t.Origin)
}

// TransformProvider yields the sensor-to-world frame at a given time,
// supporting both static and animated rigs
type TransformProvider interface {
	Eval(time float64) Transform
}

// StaticTransform is a TransformProvider that ignores time
type StaticTransform struct {
	transform Transform
}

// NewStaticTransform wraps a fixed transform
func NewStaticTransform(t Transform) *StaticTransform {
	return &StaticTransform{transform: t}
}

// Eval implements TransformProvider
func (s *StaticTransform) Eval(time float64) Transform {
	return s.transform
}

// AnimatedTransform interpolates between two keyframed frames over a time
// interval, clamping outside it
type AnimatedTransform struct {
	start, end         Transform
	startTime, endTime float64
}

// NewAnimatedTransform creates an animated transform from two keyframes
func NewAnimatedTransform(start, end Transform, startTime, endTime float64) *AnimatedTransform {
	return &AnimatedTransform{
		start:     start,
		end:       end,
		startTime: startTime,
		endTime:   endTime,
	}
}

// Eval implements TransformProvider by blending the keyframes.
// Basis vectors are interpolated componentwise and re-orthonormalized,
// which is adequate for the small rotations animated sensors use.
func (a *AnimatedTransform) Eval(time float64) Transform {
	if time <= a.startTime || a.endTime <= a.startTime {
		return a.start
	}
	if time >= a.endTime {
		return a.end
	}

	w := (time - a.startTime) / (a.endTime - a.startTime)
	lerp := func(from, to Vec3) Vec3 {
		return from.Multiply(1 - w).Add(to.Multiply(w))
	}

	forward := lerp(a.start.Forward, a.end.Forward).Normalize()
	up := lerp(a.start.Up, a.end.Up)
	right := up.Cross(forward).Normalize()

	return Transform{
		Right:   right,
		Up:      forward.Cross(right),
		Forward: forward,
		Origin:  lerp(a.start.Origin, a.end.Origin),
	}
}
