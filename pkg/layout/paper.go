package layout

import (
	"github.com/pinpress/pinpress/pkg/errors"
	"github.com/pinpress/pinpress/pkg/units"
)

// Paper describes a page: physical dimensions plus the unprintable border
// most printers impose.
type Paper struct {
	Width  units.Inches `json:"width"`
	Height units.Inches `json:"height"`

	MarginTop    units.Inches `json:"margin_top"`
	MarginRight  units.Inches `json:"margin_right"`
	MarginBottom units.Inches `json:"margin_bottom"`
	MarginLeft   units.Inches `json:"margin_left"`
}

// USLetter is the built-in paper definition: 8.5 x 11 in with 0.5 in
// margins on all sides. Other papers work by substitution.
var USLetter = Paper{
	Width:        8.5,
	Height:       11,
	MarginTop:    0.5,
	MarginRight:  0.5,
	MarginBottom: 0.5,
	MarginLeft:   0.5,
}

// PrintableWidth returns the width inside the left and right margins.
func (p Paper) PrintableWidth() units.Inches {
	return p.Width - p.MarginLeft - p.MarginRight
}

// PrintableHeight returns the height inside the top and bottom margins.
func (p Paper) PrintableHeight() units.Inches {
	return p.Height - p.MarginTop - p.MarginBottom
}

// Validate checks that the printable area is positive. A paper whose
// margins consume the whole page can never hold a layout.
func (p Paper) Validate() error {
	if p.PrintableWidth() <= 0 || p.PrintableHeight() <= 0 {
		return errors.New(errors.ErrCodeInvalidPaper,
			"paper %gx%g in has no printable area inside its margins", p.Width, p.Height)
	}
	return nil
}
