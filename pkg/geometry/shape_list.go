package geometry

import (
	"github.com/df07/go-weekend-raytracer/pkg/math"
)

// ShapeList is a composite shape that reports the closest hit among its members.
// Shapes are added during scene setup; the list must not be modified while it
// is being queried.
type ShapeList struct {
	shapes []Shape
}

// NewShapeList creates a list holding the given shapes in order
func NewShapeList(shapes ...Shape) *ShapeList {
	list := &ShapeList{}
	for _, shape := range shapes {
		list.Add(shape)
	}
	return list
}

// Add appends a shape to the list
func (l *ShapeList) Add(shape Shape) {
	l.shapes = append(l.shapes, shape)
}

// Clear removes all shapes
func (l *ShapeList) Clear() {
	l.shapes = nil
}

// Len returns the number of shapes in the list
func (l *ShapeList) Len() int {
	return len(l.shapes)
}

// Shapes returns the member shapes in insertion order
func (l *ShapeList) Shapes() []Shape {
	return l.shapes
}

// Hit returns the closest intersection across all member shapes. The upper
// bound shrinks to each new hit, so a later shape only replaces the current
// hit when it is strictly closer.
func (l *ShapeList) Hit(ray math.Ray, tMin, tMax float64) (*HitRecord, bool) {
	var closestHit *HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, shape := range l.shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
