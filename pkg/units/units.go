// Package units converts between physical print lengths and device pixels.
//
// All physical-layout math in pinpress uses a fixed mapping of 96 device
// units per inch, so a length computed by the layout engine corresponds to
// a known distance on paper regardless of the display it was previewed on.
// The display's own pixel ratio only affects on-screen crispness and is
// exposed separately via [PixelRatio].
package units

// Inches is a physical length on paper. Values are non-negative in all
// catalog and layout data; signed values appear only as offsets.
type Inches float64

// DPI is the fixed density used for all physical-layout conversions.
// This matches the CSS reference pixel (96 px/in), which keeps one logical
// print unit equal to 1/96 in on paper.
const DPI = 96.0

// InchesToPixels converts a physical length to device pixels at [DPI].
func InchesToPixels(in Inches) float64 {
	return float64(in) * DPI
}

// PixelsToInches converts a device-pixel length to inches at [DPI].
func PixelsToInches(px float64) Inches {
	return Inches(px / DPI)
}

// pixelRatio is the display density hint set by the presentation layer.
var pixelRatio = 1.0

// PixelRatio returns the current display's device-pixel ratio.
//
// Renderers may multiply raster output resolution by this value for crisp
// previews. It is never used in physical-layout math.
func PixelRatio() float64 {
	return pixelRatio
}

// SetPixelRatio records the display density reported by the presentation
// layer. Values ≤ 0 are ignored.
func SetPixelRatio(r float64) {
	if r > 0 {
		pixelRatio = r
	}
}
