package integrator

import (
	"math"

	"github.com/thomas-lane/go-raytracer/pkg/core"
	"github.com/thomas-lane/go-raytracer/pkg/geometry"
)

// shadowAcneEpsilon is the smallest t accepted for a hit, so a scattered ray
// does not re-hit the surface it leaves from due to floating-point error
const shadowAcneEpsilon = 0.001

// Background is the vertical sky gradient returned for rays that escape the scene
type Background struct {
	Top    core.Color // Color looking straight up
	Bottom core.Color // Color looking straight down
}

// DefaultBackground returns the white to light-blue sky gradient
func DefaultBackground() Background {
	return Background{
		Top:    core.NewVec3(0.5, 0.7, 1.0),
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Color returns the gradient color for a ray direction
func (b Background) Color(r core.Ray) core.Color {
	// Normalize the ray direction to get consistent results
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	a := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-a)*bottom + a*top
	return b.Bottom.Multiply(1.0 - a).Add(b.Top.Multiply(a))
}

// PathResult describes a single traced path
type PathResult struct {
	Color    core.Color // Radiance carried back to the camera
	Segments int        // Number of ray segments intersected against the world
	Escaped  bool       // Whether the path ended in the background
}

// PathTracingIntegrator implements unidirectional path tracing with material-driven bounces
type PathTracingIntegrator struct {
	background Background
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(background Background) *PathTracingIntegrator {
	return &PathTracingIntegrator{background: background}
}

// RayColor computes the color for a single ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, depth int, sampler core.Sampler) core.Color {
	return pt.Trace(ray, world, depth, sampler).Color
}

// Trace follows a path until it escapes, is absorbed, or runs out of depth.
// The attenuation product is carried forward in a loop, so the stack depth is
// constant no matter how large depth is.
func (pt *PathTracingIntegrator) Trace(ray core.Ray, world geometry.Shape, depth int, sampler core.Sampler) PathResult {
	throughput := core.NewVec3(1, 1, 1)
	rayT := core.NewInterval(shadowAcneEpsilon, math.Inf(1))
	result := PathResult{}

	// If we've exceeded the ray bounce limit, no more light is gathered
	for ; depth > 0; depth-- {
		result.Segments++

		hit, isHit := world.Hit(ray, rayT)
		if !isHit {
			result.Color = throughput.MultiplyVec(pt.background.Color(ray))
			result.Escaped = true
			return result
		}

		// A shape without a material contributes nothing
		if hit.Material == nil {
			return result
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return result // Material absorbed the ray
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	return result
}
