package integrator

import (
	"github.com/thomas-lane/go-raytracer/pkg/core"
	"github.com/thomas-lane/go-raytracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// Trace follows a path from ray through world for at most depth segments
	Trace(ray core.Ray, world geometry.Shape, depth int, sampler core.Sampler) PathResult
}
