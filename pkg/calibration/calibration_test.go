package calibration

import (
	"image"
	"math"
	"testing"

	"github.com/pinpress/pinpress/pkg/catalog"
	"github.com/pinpress/pinpress/pkg/errors"
	"github.com/pinpress/pinpress/pkg/layout"
	"github.com/pinpress/pinpress/pkg/placement"
	"github.com/pinpress/pinpress/pkg/units"
)

func testLayout(t *testing.T) layout.PrintLayout {
	t.Helper()
	size, err := catalog.Lookup("1.25")
	if err != nil {
		t.Fatal(err)
	}
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	p := placement.Placement{Image: img, Scale: 1.5, OffsetX: -3, Size: size}
	return layout.Generate(p, layout.USLetter)
}

func TestComputeFactor(t *testing.T) {
	rec, err := ComputeFactor(6.25)
	if err != nil {
		t.Fatalf("ComputeFactor(6.25): %v", err)
	}
	if rec.ExpectedInches != 6 {
		t.Errorf("ExpectedInches = %v, want 6", rec.ExpectedInches)
	}
	if rec.MeasuredInches != 6.25 {
		t.Errorf("MeasuredInches = %v, want 6.25", rec.MeasuredInches)
	}
	if rec.ScaleFactor != 0.96 {
		t.Errorf("ScaleFactor = %v, want 0.96", rec.ScaleFactor)
	}
}

func TestComputeFactorExact(t *testing.T) {
	rec, err := ComputeFactor(6)
	if err != nil {
		t.Fatal(err)
	}
	if rec.ScaleFactor != 1.0 {
		t.Errorf("ScaleFactor = %v, want 1.0", rec.ScaleFactor)
	}
}

func TestComputeFactorRejects(t *testing.T) {
	for _, measured := range []units.Inches{0, -1, units.Inches(math.NaN()), units.Inches(math.Inf(1))} {
		rec, err := ComputeFactor(measured)
		if err == nil {
			t.Errorf("ComputeFactor(%v) should fail", measured)
			continue
		}
		if !errors.Is(err, errors.ErrCodeInvalidMeasurement) {
			t.Errorf("error code = %v, want INVALID_MEASUREMENT", errors.GetCode(err))
		}
		if rec != (Record{}) {
			t.Errorf("failed ComputeFactor returned non-zero record %+v", rec)
		}
	}
}

func TestFactorOrIdentity(t *testing.T) {
	tests := []struct {
		name string
		rec  *Record
		want float64
	}{
		{"NoRecord", nil, 1.0},
		{"Valid", &Record{ScaleFactor: 0.96}, 0.96},
		{"ZeroFactor", &Record{ScaleFactor: 0}, 1.0},
		{"NaNFactor", &Record{ScaleFactor: math.NaN()}, 1.0},
		{"InfFactor", &Record{ScaleFactor: math.Inf(1)}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FactorOrIdentity(tt.rec); got != tt.want {
				t.Errorf("FactorOrIdentity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyIdentity(t *testing.T) {
	l := testLayout(t)
	got := Apply(l, 1.0)

	// Bit-identical coordinates on the identity path.
	for i := range l.Buttons {
		if got.Buttons[i] != l.Buttons[i] {
			t.Fatalf("button %d changed under identity: %+v vs %+v", i, got.Buttons[i], l.Buttons[i])
		}
	}
	if got.CutDiameter != l.CutDiameter || got.ContentDiameter != l.ContentDiameter {
		t.Error("diameters changed under identity")
	}
}

func TestApplyScalesAllLengths(t *testing.T) {
	l := testLayout(t)
	const factor = 0.96
	got := Apply(l, factor)

	for i := range l.Buttons {
		wantX := float64(l.Buttons[i].X) * factor
		wantY := float64(l.Buttons[i].Y) * factor
		if math.Abs(float64(got.Buttons[i].X)-wantX) > 1e-12 {
			t.Errorf("button %d: x = %v, want %v", i, got.Buttons[i].X, wantX)
		}
		if math.Abs(float64(got.Buttons[i].Y)-wantY) > 1e-12 {
			t.Errorf("button %d: y = %v, want %v", i, got.Buttons[i].Y, wantY)
		}
	}
	if math.Abs(float64(got.CutDiameter)-float64(l.CutDiameter)*factor) > 1e-12 {
		t.Errorf("CutDiameter = %v, want scaled", got.CutDiameter)
	}
	if math.Abs(float64(got.ContentDiameter)-float64(l.ContentDiameter)*factor) > 1e-12 {
		t.Errorf("ContentDiameter = %v, want scaled", got.ContentDiameter)
	}
}

func TestApplyLeavesImageSpaceAlone(t *testing.T) {
	l := testLayout(t)
	got := Apply(l, 0.96)

	if got.Placement.Scale != l.Placement.Scale || got.Placement.OffsetX != l.Placement.OffsetX {
		t.Error("calibration must not touch image-space scale/offset")
	}
	if got.Placement.Image != l.Placement.Image {
		t.Error("calibration must share the original bitmap handle")
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	l := testLayout(t)
	origX := l.Buttons[0].X

	_ = Apply(l, 0.5)

	if l.Buttons[0].X != origX {
		t.Error("Apply mutated its input layout")
	}
}
