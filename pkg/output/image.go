package output

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/thomas-lane/go-raytracer/pkg/renderer"
)

// Format identifies an output encoding
type Format int

const (
	PPM Format = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP
)

// String returns the conventional name of the format
func (f Format) String() string {
	switch f {
	case PPM:
		return "PPM"
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case GIF:
		return "GIF"
	case TIFF:
		return "TIFF"
	case BMP:
		return "BMP"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Options control how a framebuffer is encoded
type Options struct {
	Scale       int // Integer upscale factor for raster formats (0 or 1 = none)
	JPEGQuality int // JPEG quality in [1, 100] (0 = imaging default)
}

// FormatFromFilename picks the encoding from the file extension
func FormatFromFilename(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".ppm" {
		return PPM, nil
	}

	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	switch format {
	case imaging.PNG:
		return PNG, nil
	case imaging.JPEG:
		return JPEG, nil
	case imaging.GIF:
		return GIF, nil
	case imaging.TIFF:
		return TIFF, nil
	case imaging.BMP:
		return BMP, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

func (f Format) imagingFormat() (imaging.Format, bool) {
	switch f {
	case PNG:
		return imaging.PNG, true
	case JPEG:
		return imaging.JPEG, true
	case GIF:
		return imaging.GIF, true
	case TIFF:
		return imaging.TIFF, true
	case BMP:
		return imaging.BMP, true
	}
	return 0, false
}

// Upscale enlarges img by an integer factor, keeping hard pixel edges
func Upscale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	bounds := img.Bounds()
	return imaging.Resize(img, bounds.Dx()*factor, bounds.Dy()*factor, imaging.NearestNeighbor)
}

// Encode writes the framebuffer to w in the given format
func Encode(w io.Writer, fb *renderer.Framebuffer, format Format, opts Options) error {
	if format == PPM {
		return WritePPM(w, fb)
	}

	imgFormat, ok := format.imagingFormat()
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}

	var encodeOpts []imaging.EncodeOption
	if opts.JPEGQuality > 0 {
		encodeOpts = append(encodeOpts, imaging.JPEGQuality(opts.JPEGQuality))
	}

	img := Upscale(ToImage(fb), opts.Scale)
	return imaging.Encode(w, img, imgFormat, encodeOpts...)
}

// WriteFile creates path and encodes the framebuffer into it, choosing the
// format from the extension
func WriteFile(path string, fb *renderer.Framebuffer, opts Options) (err error) {
	format, err := FormatFromFilename(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create output file %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("could not close output file %s: %w", path, closeErr)
		}
	}()

	if err := Encode(file, fb, format, opts); err != nil {
		return fmt.Errorf("could not write %v image to %s: %w", format, path, err)
	}
	return nil
}
