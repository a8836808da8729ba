package errors

import "math"

// ValidateMeasurement validates a user-entered ruler measurement in inches.
//
// Calibration is all-or-nothing: a measurement that fails here must never
// replace the active calibration record. The rules are:
//   - Must be finite (NaN and ±Inf rejected)
//   - Must be strictly positive
//   - Must be plausibly a ruler reading (at most 100 in)
func ValidateMeasurement(inches float64) error {
	if math.IsNaN(inches) || math.IsInf(inches, 0) {
		return New(ErrCodeInvalidMeasurement, "measurement must be a finite number")
	}
	if inches <= 0 {
		return New(ErrCodeInvalidMeasurement, "measurement must be greater than zero, got %g", inches)
	}
	if inches > 100 {
		return New(ErrCodeInvalidMeasurement, "measurement %g in is implausibly large", inches)
	}
	return nil
}

// ValidateScale validates an image zoom factor.
// Scale is a pixels-per-source-pixel multiplier and must be strictly positive.
func ValidateScale(scale float64) error {
	if math.IsNaN(scale) || math.IsInf(scale, 0) {
		return New(ErrCodeInvalidScale, "scale must be a finite number")
	}
	if scale <= 0 {
		return New(ErrCodeInvalidScale, "scale must be greater than zero, got %g", scale)
	}
	return nil
}

// ValidateOffset validates an image offset component in pixels.
// Offsets are signed but must be finite.
func ValidateOffset(offset float64) error {
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return New(ErrCodeInvalidInput, "offset must be a finite number")
	}
	return nil
}
