package units

import (
	"math"
	"testing"
)

func TestInchesToPixels(t *testing.T) {
	tests := []struct {
		name string
		in   Inches
		want float64
	}{
		{"Zero", 0, 0},
		{"OneInch", 1, 96},
		{"HalfInch", 0.5, 48},
		{"CutLine125", 1.772, 170.112},
		{"Letter", 8.5, 816},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InchesToPixels(tt.in)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("InchesToPixels(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, in := range []Inches{0, 0.001, 0.5, 1, 1.772, 2.625, 8.5, 11, 100} {
		got := PixelsToInches(InchesToPixels(in))
		if math.Abs(float64(got-in)) > 1e-12 {
			t.Errorf("round trip %v -> %v", in, got)
		}
	}
}

func TestPixelRatio(t *testing.T) {
	defer SetPixelRatio(1.0)

	if got := PixelRatio(); got != 1.0 {
		t.Fatalf("default PixelRatio = %v, want 1.0", got)
	}

	SetPixelRatio(2.0)
	if got := PixelRatio(); got != 2.0 {
		t.Errorf("PixelRatio = %v, want 2.0", got)
	}

	// Invalid ratios are ignored.
	SetPixelRatio(0)
	SetPixelRatio(-1)
	if got := PixelRatio(); got != 2.0 {
		t.Errorf("PixelRatio after invalid set = %v, want 2.0", got)
	}
}
