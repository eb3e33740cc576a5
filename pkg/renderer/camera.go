package renderer

import (
	"fmt"
	"math"

	"github.com/thomas-lane/go-raytracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	AspectRatio   float64     // Ratio of image width over height
	Width         int         // Rendered image width in pixels
	VFov          float64     // Vertical field of view in degrees
	LookFrom      core.Point3 // Point camera is looking from
	LookAt        core.Point3 // Point camera is looking at
	Up            core.Vec3   // Camera-relative "up" direction
	DefocusAngle  float64     // Variation angle of rays through each pixel, in degrees (0 = pinhole)
	FocusDistance float64     // Distance to plane of perfect focus (0 = |LookFrom - LookAt|)
}

// DefaultCameraConfig returns a pinhole camera at the origin looking down -z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:   1.0,
		Width:         100,
		VFov:          90,
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		DefocusAngle:  0,
		FocusDistance: 0,
	}
}

// MergeCameraConfig returns base with every non-zero field of override applied on top.
// A zero LookFrom cannot be expressed as an override; set LookAt or build the config directly.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.LookFrom != (core.Vec3{}) {
		result.LookFrom = override.LookFrom
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.DefocusAngle != 0 {
		result.DefocusAngle = override.DefocusAngle
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}
	return result
}

// ImageHeight returns width / aspect ratio, floored, and never less than one
func (c CameraConfig) ImageHeight() int {
	return max(1, int(float64(c.Width)/c.AspectRatio))
}

// Validate rejects configurations whose derived basis would be degenerate
func (c CameraConfig) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("%w: width %d must be positive", ErrInvalidCamera, c.Width)
	}
	if !(c.AspectRatio > 0) || math.IsInf(c.AspectRatio, 0) {
		return fmt.Errorf("%w: aspect ratio %g must be positive", ErrInvalidCamera, c.AspectRatio)
	}
	if !(c.VFov > 0 && c.VFov < 180) {
		return fmt.Errorf("%w: vertical field of view %g must be in (0, 180)", ErrInvalidCamera, c.VFov)
	}
	if c.DefocusAngle < 0 || c.DefocusAngle >= 180 {
		return fmt.Errorf("%w: defocus angle %g must be in [0, 180)", ErrInvalidCamera, c.DefocusAngle)
	}
	if c.FocusDistance < 0 || math.IsNaN(c.FocusDistance) || math.IsInf(c.FocusDistance, 0) {
		return fmt.Errorf("%w: focus distance %g must be finite and non-negative", ErrInvalidCamera, c.FocusDistance)
	}

	view := c.LookFrom.Subtract(c.LookAt)
	if !view.IsFinite() || view.NearZero() {
		return fmt.Errorf("%w: look-from %v and look-at %v must be distinct", ErrInvalidCamera, c.LookFrom, c.LookAt)
	}
	if c.Up.Cross(view).NearZero() {
		return fmt.Errorf("%w: up vector %v is parallel to the view direction", ErrInvalidCamera, c.Up)
	}
	return nil
}

// Camera generates rays for rendering. All fields are derived once from the
// configuration and never change while rendering.
type Camera struct {
	config       CameraConfig
	imageHeight  int
	center       core.Point3
	pixel00Loc   core.Point3 // Location of pixel 0, 0
	pixelDeltaU  core.Vec3   // Offset to pixel to the right
	pixelDeltaV  core.Vec3   // Offset to pixel below
	u, v, w      core.Vec3   // Camera frame basis vectors
	defocusDiskU core.Vec3   // Defocus disk horizontal radius
	defocusDiskV core.Vec3   // Defocus disk vertical radius
}

// NewCamera creates a camera and computes its viewport from the config
func NewCamera(config CameraConfig) *Camera {
	c := &Camera{config: config}

	c.imageHeight = config.ImageHeight()
	c.center = config.LookFrom

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.LookFrom.Subtract(config.LookAt).Length()
	}
	c.config.FocusDistance = focusDistance

	// Determine viewport dimensions
	theta := degreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h * focusDistance
	viewportWidth := viewportHeight * (float64(config.Width) / float64(c.imageHeight))

	// Calculate the u,v,w unit basis vectors for the camera coordinate frame
	c.w = config.LookFrom.Subtract(config.LookAt).Normalize()
	c.u = config.Up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	// Horizontal and vertical delta vectors from pixel to pixel
	c.pixelDeltaU = viewportU.Divide(float64(config.Width))
	c.pixelDeltaV = viewportV.Divide(float64(c.imageHeight))

	// Location of the upper left pixel
	viewportUpperLeft := c.center.
		Subtract(c.w.Multiply(focusDistance)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	c.pixel00Loc = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	// Camera defocus disk basis vectors
	defocusRadius := focusDistance * math.Tan(degreesToRadians(config.DefocusAngle/2))
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)

	return c
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.config.Width
}

// Height returns the derived image height in pixels
func (c *Camera) Height() int {
	return c.imageHeight
}

// Config returns the configuration the camera was built from, with the focus distance resolved
func (c *Camera) Config() CameraConfig {
	return c.config
}

// PixelCenter returns the world-space center of pixel (i, j), with j counting down from the top row
func (c *Camera) PixelCenter(i, j int) core.Point3 {
	return c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i))).
		Add(c.pixelDeltaV.Multiply(float64(j)))
}

// GetRay returns a randomly sampled camera ray for the pixel at (i, j),
// originating from the camera defocus disk
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	pixelSample := c.PixelCenter(i, j).Add(c.pixelSampleSquare(sampler))

	rayOrigin := c.center
	if c.config.DefocusAngle > 0 {
		rayOrigin = c.defocusDiskSample(sampler)
	}

	return core.NewRay(rayOrigin, pixelSample.Subtract(rayOrigin))
}

// pixelSampleSquare returns a random offset in the square surrounding a pixel
func (c *Camera) pixelSampleSquare(sampler core.Sampler) core.Vec3 {
	px := -0.5 + sampler.Get1D()
	py := -0.5 + sampler.Get1D()
	return c.pixelDeltaU.Multiply(px).Add(c.pixelDeltaV.Multiply(py))
}

// defocusDiskSample returns a random point in the camera defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Point3 {
	p := core.RandomInUnitDisk(sampler)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
