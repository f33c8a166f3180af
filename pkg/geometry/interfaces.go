package geometry

import "github.com/df07/go-distant-sensor/pkg/core"

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}

// PositionSample contains a point sampled on a shape's surface together
// with the probability density of picking it (with respect to area)
type PositionSample struct {
	Point  core.Vec3 // Sampled surface point
	Normal core.Vec3 // Outward surface normal at the point
	PDF    float64   // Area density; zero for degenerate shapes
}

// Shape interface for objects that can be intersected and area-sampled
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool)
	BoundingBox() core.AABB

	// SamplePosition picks a point uniformly on the shape's surface.
	// The time argument matters only for shapes whose geometry is animated.
	SamplePosition(time float64, sample core.Vec2) PositionSample
}
