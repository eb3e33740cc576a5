package output

import (
	"image"
	"image/color"
	"math"

	"github.com/thomas-lane/go-raytracer/pkg/core"
	"github.com/thomas-lane/go-raytracer/pkg/renderer"
)

// linearToGamma applies gamma 2. Non-positive and NaN components map to black.
func linearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// Quantize converts an accumulated sample sum into 8-bit channel values:
// average, gamma correct, clamp to [0, 0.999] and scale by 256
func Quantize(sum core.Color, samples int) (r, g, b int) {
	if samples <= 0 {
		return 0, 0, 0
	}
	scale := 1.0 / float64(samples)

	channel := func(c float64) int {
		return int(256 * core.IntensityInterval.Clamp(linearToGamma(c*scale)))
	}
	return channel(sum.X), channel(sum.Y), channel(sum.Z)
}

// ToImage quantizes every pixel of the framebuffer into an opaque image
func ToImage(fb *renderer.Framebuffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for j := 0; j < fb.Height; j++ {
		for i := 0; i < fb.Width; i++ {
			pixel := fb.At(i, j)
			r, g, b := Quantize(pixel.ColorAccum, pixel.SampleCount)
			img.SetNRGBA(i, j, color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255})
		}
	}
	return img
}
