package renderer

import (
	"time"

	"github.com/thomas-lane/go-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of camera samples taken
	SamplesPerPixel int           // Samples taken for every pixel
	RaysTraced      int           // Ray segments intersected against the world, all bounces included
	EscapedPaths    int           // Paths that ended in the background
	AbsorbedPaths   int           // Paths that were absorbed or ran out of depth
	Duration        time.Duration // Wall time spent in Render
}

// RaysPerSecond returns the ray throughput, or zero when no time was measured
func (s RenderStats) RaysPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.RaysTraced) / s.Duration.Seconds()
}

// PixelStats tracks the samples accumulated for a single pixel
type PixelStats struct {
	ColorAccum  core.Color // RGB sum of all samples
	SampleCount int        // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Color) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Color {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}
