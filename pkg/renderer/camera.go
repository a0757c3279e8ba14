package renderer

import (
	"skyray/pkg/core"
	"skyray/pkg/fmath"
)

// CameraConfig holds the viewport parameters fixed at camera construction
type CameraConfig struct {
	AspectRatio    fmath.Float // nominal width/height ratio
	Width          int         // image width in pixels
	FocalLength    fmath.Float // distance from camera center to the viewport
	ViewportHeight fmath.Float // viewport height in world units
}

// Camera generates rays through the centers of image pixels. All
// geometry is computed once in NewCamera and never mutated afterwards.
type Camera struct {
	width       int
	height      int
	center      core.Point3
	pixelDeltaU core.Vec3
	pixelDeltaV core.Vec3
	pixel00     core.Point3
}

// NewCamera creates a camera at the origin looking down the -z axis
func NewCamera(config CameraConfig) *Camera {
	height := int(fmath.Float(config.Width) / config.AspectRatio)
	if height < 1 {
		height = 1
	}

	// The viewport follows the real width/height ratio, not the nominal
	// aspect ratio, so pixels stay square after integer rounding.
	viewportWidth := config.ViewportHeight * fmath.Float(config.Width) / fmath.Float(height)

	center := core.NewVec3(0, 0, 0)

	// viewport_v points down: image rows grow downward while world y grows up.
	viewportU := core.NewVec3(viewportWidth, 0, 0)
	viewportV := core.NewVec3(0, -config.ViewportHeight, 0)

	pixelDeltaU := viewportU.Divide(fmath.Float(config.Width))
	pixelDeltaV := viewportV.Divide(fmath.Float(height))

	upperLeft := center.
		Subtract(core.NewVec3(0, 0, config.FocalLength)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := upperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	return &Camera{
		width:       config.Width,
		height:      height,
		center:      center,
		pixelDeltaU: pixelDeltaU,
		pixelDeltaV: pixelDeltaV,
		pixel00:     pixel00,
	}
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.width
}

// Height returns the image height in pixels, derived from the width and
// aspect ratio with a minimum of one row
func (c *Camera) Height() int {
	return c.height
}

// GetRay returns the ray from the camera center through the center of
// pixel (i, j). The direction is not normalized.
func (c *Camera) GetRay(i, j int) core.Ray {
	pixelCenter := c.pixel00.
		Add(c.pixelDeltaU.Multiply(fmath.Float(i))).
		Add(c.pixelDeltaV.Multiply(fmath.Float(j)))

	return core.NewRay(c.center, pixelCenter.Subtract(c.center))
}
