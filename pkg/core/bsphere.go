package core

import "math"

// RayEpsilon is the numerical tolerance used when offsetting ray origins
// and validating geometric configurations
const RayEpsilon = 1e-4

// BoundingSphere represents a sphere enclosing a region of space
type BoundingSphere struct {
	Center Vec3
	Radius float64
}

// BoundingSphereFromAABB returns the sphere through the corners of the box.
// An invalid (empty) box yields a degenerate sphere at the origin.
func BoundingSphereFromAABB(box AABB) BoundingSphere {
	if !box.IsValid() {
		return BoundingSphere{Center: Vec3{}, Radius: 0}
	}
	center := box.Center()
	return BoundingSphere{
		Center: center,
		Radius: box.Max.Subtract(center).Length(),
	}
}

// Expanded returns the sphere with its radius inflated by a relative epsilon
// and floored at that epsilon, so that points on the surface are guaranteed
// to lie outside the enclosed geometry even for point-like regions.
func (bs BoundingSphere) Expanded(eps float64) BoundingSphere {
	return BoundingSphere{
		Center: bs.Center,
		Radius: math.Max(eps, bs.Radius*(1+eps)),
	}
}

// Contains reports whether the point lies inside or on the sphere
func (bs BoundingSphere) Contains(point Vec3) bool {
	return point.Subtract(bs.Center).LengthSquared() <= bs.Radius*bs.Radius
}
