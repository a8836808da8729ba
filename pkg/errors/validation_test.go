package errors

import (
	"math"
	"testing"
)

func TestValidateMeasurement(t *testing.T) {
	tests := []struct {
		name    string
		inches  float64
		wantErr bool
	}{
		{"Valid", 6.25, false},
		{"ExactReference", 6, false},
		{"Small", 0.01, false},
		{"Zero", 0, true},
		{"Negative", -1, true},
		{"NaN", math.NaN(), true},
		{"PosInf", math.Inf(1), true},
		{"NegInf", math.Inf(-1), true},
		{"Implausible", 500, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMeasurement(tt.inches)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMeasurement(%v) error = %v, wantErr %v", tt.inches, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidMeasurement) {
				t.Errorf("error code = %v, want INVALID_MEASUREMENT", GetCode(err))
			}
		})
	}
}

func TestValidateScale(t *testing.T) {
	for _, s := range []float64{1, 0.25, 10} {
		if err := ValidateScale(s); err != nil {
			t.Errorf("ValidateScale(%v) = %v, want nil", s, err)
		}
	}
	for _, s := range []float64{0, -0.5, math.NaN(), math.Inf(1)} {
		if err := ValidateScale(s); err == nil {
			t.Errorf("ValidateScale(%v) = nil, want error", s)
		}
	}
}

func TestValidateOffset(t *testing.T) {
	for _, o := range []float64{0, -42.5, 300} {
		if err := ValidateOffset(o); err != nil {
			t.Errorf("ValidateOffset(%v) = %v, want nil", o, err)
		}
	}
	for _, o := range []float64{math.NaN(), math.Inf(-1)} {
		if err := ValidateOffset(o); err == nil {
			t.Errorf("ValidateOffset(%v) = nil, want error", o)
		}
	}
}
