package geometry

import (
	"math"

	"github.com/df07/go-distant-sensor/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	// Find the nearest intersection point within the valid range
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hit := &HitRecord{
		T:     root,
		Point: ray.At(root),
	}

	// Outward normal points from center to hit point
	outwardNormal := hit.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}

// SamplePosition picks a point uniformly on the sphere surface
func (s *Sphere) SamplePosition(time float64, sample core.Vec2) PositionSample {
	// Uniform direction on the unit sphere via inverse CDF
	z := 1.0 - 2.0*sample.X
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	normal := core.NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)

	area := 4.0 * math.Pi * s.Radius * s.Radius
	if area == 0 {
		return PositionSample{Point: s.Center, Normal: normal, PDF: 0}
	}

	return PositionSample{
		Point:  s.Center.Add(normal.Multiply(s.Radius)),
		Normal: normal,
		PDF:    1.0 / area,
	}
}
