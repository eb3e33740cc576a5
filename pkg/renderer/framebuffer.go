package renderer

// Framebuffer holds the accumulated samples of a finished render, stored row-major
// from the top-left pixel
type Framebuffer struct {
	Width  int
	Height int
	Pixels []PixelStats
}

// NewFramebuffer allocates an empty framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]PixelStats, width*height),
	}
}

// At returns the pixel in column i of row j
func (fb *Framebuffer) At(i, j int) *PixelStats {
	return &fb.Pixels[j*fb.Width+i]
}
