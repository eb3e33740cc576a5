package geometry

import (
	"github.com/thomas-lane/go-raytracer/pkg/core"
	"github.com/thomas-lane/go-raytracer/pkg/material"
)

// Shape is anything a ray can hit: a single primitive or a collection of them
type Shape interface {
	// Hit returns the nearest intersection whose t lies strictly inside rayT
	Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool)
}

// Validator is implemented by shapes that can check their own construction parameters
type Validator interface {
	Validate() error
}
