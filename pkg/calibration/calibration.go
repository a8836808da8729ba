// Package calibration corrects for printer scaling error.
//
// Printers and PDF viewers routinely rescale output by a percent or two,
// which is enough to make a 1.772 in cut line miss the die. The fix is
// empirical: print a test sheet carrying a reference line of known length,
// measure it with a ruler, and derive a multiplicative correction factor
// applied to every physical output length.
//
// The factor is always passed explicitly — the layout engine never reads
// ambient storage — so the core stays pure and a caller can snapshot the
// active record once per render pass.
package calibration

import (
	"math"

	"github.com/pinpress/pinpress/pkg/errors"
	"github.com/pinpress/pinpress/pkg/layout"
	"github.com/pinpress/pinpress/pkg/units"
)

// ExpectedInches is the reference length printed on the test sheet.
const ExpectedInches units.Inches = 6

// Record is a completed calibration measurement.
type Record struct {
	// ExpectedInches is the known reference length (always 6).
	ExpectedInches units.Inches `json:"expected_inches" toml:"expected_inches"`

	// MeasuredInches is the user's ruler reading of the printed reference.
	MeasuredInches units.Inches `json:"measured_inches" toml:"measured_inches"`

	// ScaleFactor is ExpectedInches / MeasuredInches. A printer that
	// prints the 6 in line at 6.25 in needs factor 0.96.
	ScaleFactor float64 `json:"scale_factor" toml:"scale_factor"`
}

// ComputeFactor builds a calibration record from a ruler measurement.
// Invalid measurements (non-positive, non-finite) are rejected before any
// record exists, so a failed calibration never replaces the active one.
func ComputeFactor(measured units.Inches) (Record, error) {
	if err := errors.ValidateMeasurement(float64(measured)); err != nil {
		return Record{}, err
	}
	return Record{
		ExpectedInches: ExpectedInches,
		MeasuredInches: measured,
		ScaleFactor:    float64(ExpectedInches) / float64(measured),
	}, nil
}

// FactorOrIdentity returns the record's scale factor, or the identity 1.0
// when no record exists or the stored value is unusable. This is the
// fallback guaranteeing layout math never multiplies by zero or garbage
// from a corrupt preference file.
func FactorOrIdentity(rec *Record) float64 {
	if rec == nil {
		return 1.0
	}
	f := rec.ScaleFactor
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 1.0
	}
	return f
}

// Apply returns a copy of the layout with every physical length scaled by
// factor: button positions, the cut-line diameter, and the content-guide
// diameter.
//
// Image-space scale and offsets are deliberately untouched — they live in
// device pixels and the renderer maps them into the (now scaled) physical
// cell independently, so calibration fixes the paper output size without
// distorting the artwork inside each button.
func Apply(l layout.PrintLayout, factor float64) layout.PrintLayout {
	if factor == 1.0 {
		return l
	}

	out := l
	out.CutDiameter = l.CutDiameter * units.Inches(factor)
	out.ContentDiameter = l.ContentDiameter * units.Inches(factor)
	out.Buttons = make([]layout.PlacedButton, len(l.Buttons))
	for i, b := range l.Buttons {
		out.Buttons[i] = layout.PlacedButton{
			X: b.X * units.Inches(factor),
			Y: b.Y * units.Inches(factor),
		}
	}
	return out
}
