package geometry

import (
	"math"

	"github.com/df07/go-distant-sensor/pkg/core"
)

// Disc represents a circular disc in 3D space
type Disc struct {
	Center core.Vec3 // Center of the disc
	Normal core.Vec3 // Normal vector (pointing "up" from the disc)
	Radius float64   // Radius of the disc
	Right  core.Vec3 // Right vector (perpendicular to normal)
	Up     core.Vec3 // Up vector (perpendicular to normal and right)
}

// NewDisc creates a new disc
func NewDisc(center, normal core.Vec3, radius float64) *Disc {
	normalNormalized := normal.Normalize()
	right, up := core.CoordinateSystem(normalNormalized)

	return &Disc{
		Center: center,
		Normal: normalNormalized,
		Radius: radius,
		Right:  right,
		Up:     up,
	}
}

// Hit tests if a ray intersects with the disc
func (d *Disc) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	// Check if ray intersects the plane containing the disc
	denom := d.Normal.Dot(ray.Direction)
	if math.Abs(denom) < 1e-8 {
		return nil, false // Ray is parallel to disc
	}

	t := d.Normal.Dot(d.Center.Subtract(ray.Origin)) / denom
	if t < tMin || t > tMax {
		return nil, false
	}

	// Check if intersection point is within disc radius
	hitPoint := ray.At(t)
	centerToHit := hitPoint.Subtract(d.Center)
	if centerToHit.LengthSquared() > d.Radius*d.Radius {
		return nil, false
	}

	hit := &HitRecord{
		Point: hitPoint,
		T:     t,
	}
	hit.SetFaceNormal(ray, d.Normal)

	return hit, true
}

// BoundingBox returns a box encompassing the disc
func (d *Disc) BoundingBox() core.AABB {
	rightExtent := d.Right.Multiply(d.Radius)
	upExtent := d.Up.Multiply(d.Radius)

	return core.NewAABBFromPoints(
		d.Center.Add(rightExtent).Add(upExtent),
		d.Center.Add(rightExtent).Subtract(upExtent),
		d.Center.Subtract(rightExtent).Add(upExtent),
		d.Center.Subtract(rightExtent).Subtract(upExtent),
	)
}

// SamplePosition picks a point uniformly on the disc surface
func (d *Disc) SamplePosition(time float64, sample core.Vec2) PositionSample {
	// Uniform sampling in polar coordinates
	r := math.Sqrt(sample.X) * d.Radius
	theta := 2.0 * math.Pi * sample.Y

	x := r * math.Cos(theta)
	y := r * math.Sin(theta)
	point := d.Center.Add(d.Right.Multiply(x)).Add(d.Up.Multiply(y))

	area := math.Pi * d.Radius * d.Radius
	if area == 0 {
		return PositionSample{Point: d.Center, Normal: d.Normal, PDF: 0}
	}

	return PositionSample{
		Point:  point,
		Normal: d.Normal,
		PDF:    1.0 / area,
	}
}
