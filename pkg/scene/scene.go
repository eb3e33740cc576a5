package scene

import (
	"fmt"

	"github.com/thomas-lane/go-raytracer/pkg/core"
	"github.com/thomas-lane/go-raytracer/pkg/geometry"
	"github.com/thomas-lane/go-raytracer/pkg/integrator"
	"github.com/thomas-lane/go-raytracer/pkg/log"
	"github.com/thomas-lane/go-raytracer/pkg/renderer"
)

var logger = log.New("scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	World          *geometry.ShapeList // Objects in the scene
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
	Background     integrator.Background
}

// newScene creates an empty scene with the default sky, applying the first camera override if present
func newScene(name string, cameraConfig renderer.CameraConfig, samplingConfig renderer.SamplingConfig, cameraOverrides ...renderer.CameraConfig) *Scene {
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}
	return &Scene{
		Name:           name,
		World:          geometry.NewShapeList(),
		CameraConfig:   cameraConfig,
		SamplingConfig: samplingConfig,
		Background:     integrator.DefaultBackground(),
	}
}

// Add appends shapes to the world
func (s *Scene) Add(shapes ...geometry.Shape) {
	for _, shape := range shapes {
		s.World.Add(shape)
	}
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.World.Len()
}

// Validate checks the world, camera and sampling settings before any rendering starts
func (s *Scene) Validate() error {
	if err := s.World.Validate(); err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}
	if err := s.CameraConfig.Validate(); err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}
	if err := s.SamplingConfig.Validate(); err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}
	return nil
}

// NewRaytracer builds a raytracer for the scene, drawing random numbers from sampler
func (s *Scene) NewRaytracer(sampler core.Sampler) (*renderer.Raytracer, error) {
	tracer := integrator.NewPathTracingIntegrator(s.Background)
	rt, err := renderer.NewRaytracer(s.World, s.CameraConfig, s.SamplingConfig, tracer, sampler)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", s.Name, err)
	}
	return rt, nil
}
