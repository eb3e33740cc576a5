package renderer

import (
	"fmt"
	"time"

	"github.com/thomas-lane/go-raytracer/pkg/core"
	"github.com/thomas-lane/go-raytracer/pkg/geometry"
	"github.com/thomas-lane/go-raytracer/pkg/integrator"
	"github.com/thomas-lane/go-raytracer/pkg/log"
)

var logger = log.New("renderer")

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum number of ray segments per path
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 10,
		MaxDepth:        10,
	}
}

// MergeSamplingConfig returns base with every positive field of override applied on top
func MergeSamplingConfig(base, override SamplingConfig) SamplingConfig {
	result := base
	if override.SamplesPerPixel > 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth > 0 {
		result.MaxDepth = override.MaxDepth
	}
	return result
}

// Validate rejects sampling settings that would produce an empty image
func (c SamplingConfig) Validate() error {
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: samples per pixel %d must be positive", ErrInvalidSampling, c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth %d must not be negative", ErrInvalidSampling, c.MaxDepth)
	}
	return nil
}

// ProgressFunc is called after each finished row with the number of rows still to render
type ProgressFunc func(remaining, total int)

// Raytracer handles the rendering process
type Raytracer struct {
	world    geometry.Shape
	camera   *Camera
	config   SamplingConfig
	tracer   integrator.Integrator
	sampler  core.Sampler
	progress ProgressFunc
}

// NewRaytracer validates the inputs and creates a raytracer that draws all its
// random numbers from sampler
func NewRaytracer(world geometry.Shape, cameraConfig CameraConfig, config SamplingConfig, tracer integrator.Integrator, sampler core.Sampler) (*Raytracer, error) {
	if world == nil {
		return nil, ErrNoWorld
	}
	if v, ok := world.(geometry.Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("invalid world: %w", err)
		}
	}
	if err := cameraConfig.Validate(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if tracer == nil {
		tracer = integrator.NewPathTracingIntegrator(integrator.DefaultBackground())
	}
	if sampler == nil {
		sampler = core.NewSeededSampler(0)
	}

	return &Raytracer{
		world:   world,
		camera:  NewCamera(cameraConfig),
		config:  config,
		tracer:  tracer,
		sampler: sampler,
	}, nil
}

// SetProgressFunc registers a callback invoked after every row
func (rt *Raytracer) SetProgressFunc(progress ProgressFunc) {
	rt.progress = progress
}

// Camera returns the camera built from the configuration
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// Render traces every pixel in row-major order, top row first, and returns the
// accumulated samples along with statistics about the pass
func (rt *Raytracer) Render() (*Framebuffer, RenderStats) {
	width, height := rt.camera.Width(), rt.camera.Height()
	fb := NewFramebuffer(width, height)
	stats := RenderStats{
		TotalPixels:     width * height,
		SamplesPerPixel: rt.config.SamplesPerPixel,
	}

	logger.Infof("Rendering %dx%d at %d samples per pixel, max depth %d",
		width, height, rt.config.SamplesPerPixel, rt.config.MaxDepth)
	start := time.Now()

	for j := 0; j < height; j++ {
		logger.Debugf("Scanlines remaining: %d", height-j)

		for i := 0; i < width; i++ {
			pixel := fb.At(i, j)
			for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
				ray := rt.camera.GetRay(i, j, rt.sampler)
				path := rt.tracer.Trace(ray, rt.world, rt.config.MaxDepth, rt.sampler)

				pixel.AddSample(path.Color)
				stats.RaysTraced += path.Segments
				if path.Escaped {
					stats.EscapedPaths++
				} else {
					stats.AbsorbedPaths++
				}
			}
			stats.TotalSamples += pixel.SampleCount
		}

		if rt.progress != nil {
			rt.progress(height-j-1, height)
		}
	}

	stats.Duration = time.Since(start)
	logger.Infof("Render finished in %v: %d samples, %d rays", stats.Duration, stats.TotalSamples, stats.RaysTraced)

	return fb, stats
}
