package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/thomas-lane/go-raytracer/pkg/renderer"
)

// PPMWriter encodes framebuffers as plain-text (P3) PPM images
type PPMWriter struct {
	w *bufio.Writer
}

// NewPPMWriter creates a PPM writer on top of w
func NewPPMWriter(w io.Writer) *PPMWriter {
	return &PPMWriter{w: bufio.NewWriter(w)}
}

// WriteHeader writes the P3 magic, the image dimensions and the maximum channel value
func (p *PPMWriter) WriteHeader(width, height int) error {
	_, err := fmt.Fprintf(p.w, "P3\n%d %d\n255\n", width, height)
	return err
}

// WritePixel writes one pixel as a "r g b" line
func (p *PPMWriter) WritePixel(sum renderer.PixelStats) error {
	r, g, b := Quantize(sum.ColorAccum, sum.SampleCount)
	_, err := fmt.Fprintf(p.w, "%d %d %d\n", r, g, b)
	return err
}

// Flush writes any buffered data to the underlying writer
func (p *PPMWriter) Flush() error {
	return p.w.Flush()
}

// WritePPM writes the whole framebuffer, row-major from the top-left pixel
func WritePPM(w io.Writer, fb *renderer.Framebuffer) error {
	p := NewPPMWriter(w)
	if err := p.WriteHeader(fb.Width, fb.Height); err != nil {
		return err
	}
	for _, pixel := range fb.Pixels {
		if err := p.WritePixel(pixel); err != nil {
			return err
		}
	}
	return p.Flush()
}
