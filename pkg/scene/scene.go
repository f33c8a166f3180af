// Package scene holds the shape registry a sensor is bound against.
package scene

import (
	"github.com/df07/go-distant-sensor/pkg/core"
	"github.com/df07/go-distant-sensor/pkg/geometry"
)

// Scene contains the shapes a sensor measures flux from. Shapes are shared
// with the caller; the scene does not own them.
type Scene struct {
	Shapes []geometry.Shape
}

// NewScene creates a scene from the given shapes
func NewScene(shapes ...geometry.Shape) *Scene {
	return &Scene{Shapes: shapes}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// BoundingBox returns the union of all shape bounds.
// An empty scene yields an invalid box.
func (s *Scene) BoundingBox() core.AABB {
	box := core.EmptyAABB()
	for _, shape := range s.Shapes {
		box = box.Union(shape.BoundingBox())
	}
	return box
}
