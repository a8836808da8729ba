// Package placement models where a user's artwork sits inside a button.
//
// A Placement is the normalized record handed from the interactive layer
// to the layout engine: one decoded bitmap, a zoom factor, and a pixel
// offset from the center of the button's bounding circle. The layout
// engine reads placements but never mutates them, and the bitmap is
// shared by reference across every cell of a print layout, so all
// consumers must treat the pixel data as immutable.
package placement

import (
	"image"

	"github.com/pinpress/pinpress/pkg/catalog"
	"github.com/pinpress/pinpress/pkg/errors"
	"github.com/pinpress/pinpress/pkg/units"
)

// Placement positions an image within a button template.
type Placement struct {
	// Image is the decoded bitmap. Read-only once placed.
	Image image.Image

	// Scale is the zoom factor in device pixels per source pixel. Always > 0.
	Scale float64

	// OffsetX and OffsetY are signed pixel offsets of the image center
	// from the center of the button's bounding circle.
	OffsetX float64
	OffsetY float64

	// Size is the button template this placement targets.
	Size catalog.ButtonSize
}

// New creates a placement with the image centered at cover scale: the
// smallest zoom at which the bitmap fully covers the cut-line circle.
func New(img image.Image, size catalog.ButtonSize) Placement {
	return Placement{
		Image: img,
		Scale: CoverScale(img, size),
		Size:  size,
	}
}

// Validate checks the placement invariants.
func (p Placement) Validate() error {
	if p.Image == nil {
		return errors.New(errors.ErrCodeInvalidImage, "placement has no image")
	}
	if err := errors.ValidateScale(p.Scale); err != nil {
		return err
	}
	if err := errors.ValidateOffset(p.OffsetX); err != nil {
		return err
	}
	return errors.ValidateOffset(p.OffsetY)
}

// ScaledWidth returns the displayed image width in device pixels.
func (p Placement) ScaledWidth() float64 {
	return float64(p.Image.Bounds().Dx()) * p.Scale
}

// ScaledHeight returns the displayed image height in device pixels.
func (p Placement) ScaledHeight() float64 {
	return float64(p.Image.Bounds().Dy()) * p.Scale
}

// CoverScale returns the smallest scale at which img covers the cut-line
// circle of size. Returns 1 for a degenerate (empty) image.
func CoverScale(img image.Image, size catalog.ButtonSize) float64 {
	b := img.Bounds()
	shorter := min(b.Dx(), b.Dy())
	if shorter <= 0 {
		return 1
	}
	return units.InchesToPixels(size.CutLineDiameter) / float64(shorter)
}
