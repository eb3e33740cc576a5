package geometry

import (
	"fmt"

	"github.com/thomas-lane/go-raytracer/pkg/core"
	"github.com/thomas-lane/go-raytracer/pkg/material"
)

// ShapeList is an ordered collection of shapes searched by linear scan.
// It is read-only once rendering starts.
type ShapeList struct {
	Shapes []Shape
}

// NewShapeList creates a list holding the given shapes
func NewShapeList(shapes ...Shape) *ShapeList {
	return &ShapeList{Shapes: shapes}
}

// Add appends a shape to the list
func (l *ShapeList) Add(shape Shape) {
	l.Shapes = append(l.Shapes, shape)
}

// Len returns the number of shapes in the list
func (l *ShapeList) Len() int {
	return len(l.Shapes)
}

// Hit checks every shape, shrinking the search interval to the closest hit found so far
func (l *ShapeList) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := rayT.Max

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, rayT.WithMax(closestSoFar)); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// Validate checks that the list is non-empty and that every member is well formed
func (l *ShapeList) Validate() error {
	if len(l.Shapes) == 0 {
		return ErrEmptyScene
	}
	for i, shape := range l.Shapes {
		if v, ok := shape.(Validator); ok {
			if err := v.Validate(); err != nil {
				return fmt.Errorf("shape %d: %w", i, err)
			}
		}
	}
	return nil
}
