package pipeline

import (
	"testing"

	"github.com/pinpress/pinpress/pkg/layout"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestOptionsValidateForDecode(t *testing.T) {
	// Missing image path
	opts := Options{SizeKey: "1.25"}
	if err := opts.ValidateForDecode(); err == nil {
		t.Error("Missing image path should fail")
	}

	// Missing size key
	opts = Options{ImagePath: "cat.png"}
	if err := opts.ValidateForDecode(); err == nil {
		t.Error("Missing size key should fail")
	}

	// Valid
	opts = Options{ImagePath: "cat.png", SizeKey: "1.25"}
	if err := opts.ValidateForDecode(); err != nil {
		t.Errorf("Valid options should pass: %v", err)
	}
	if opts.Logger == nil {
		t.Error("ValidateForDecode should default the logger")
	}
}

func TestSetLayoutDefaults(t *testing.T) {
	opts := Options{}
	opts.SetLayoutDefaults()

	if opts.Paper != layout.USLetter {
		t.Errorf("Paper should default to US Letter, got %+v", opts.Paper)
	}
	if opts.ScaleFactor != 1.0 {
		t.Errorf("ScaleFactor should default to 1.0, got %v", opts.ScaleFactor)
	}

	// An explicit paper survives
	custom := layout.Paper{Width: 8.27, Height: 11.69, MarginTop: 0.5, MarginRight: 0.5, MarginBottom: 0.5, MarginLeft: 0.5}
	opts = Options{Paper: custom}
	opts.SetLayoutDefaults()
	if opts.Paper != custom {
		t.Error("explicit paper should not be replaced")
	}
}

func TestSetRenderDefaults(t *testing.T) {
	opts := Options{}
	opts.SetRenderDefaults()

	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats should be [svg], got %v", opts.Formats)
	}
	if opts.PNGScale != DefaultPNGScale {
		t.Errorf("PNGScale should be %v, got %v", DefaultPNGScale, opts.PNGScale)
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{
		ImagePath: "cat.png",
		SizeKey:   "1.25",
	}

	// First call
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}

	originalPaper := opts.Paper
	originalFormats := len(opts.Formats)

	// Second call should be idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}

	if opts.Paper != originalPaper {
		t.Error("Paper changed on second call")
	}
	if len(opts.Formats) != originalFormats {
		t.Error("Formats changed on second call")
	}
}

func TestValidateForRenderRejectsBadFormat(t *testing.T) {
	opts := Options{
		ImagePath: "cat.png",
		SizeKey:   "1.25",
		Formats:   []string{"svg", "bmp"},
	}
	if err := opts.ValidateForRender(); err == nil {
		t.Error("invalid format should fail render validation")
	}
}

func TestOptionsIsCalibrated(t *testing.T) {
	opts := Options{}
	if opts.IsCalibrated() {
		t.Error("zero factor should not count as calibrated")
	}

	opts.ScaleFactor = 1.0
	if opts.IsCalibrated() {
		t.Error("identity factor should not count as calibrated")
	}

	opts.ScaleFactor = 0.96
	if !opts.IsCalibrated() {
		t.Error("0.96 should count as calibrated")
	}
}

func TestArtifactParamsDistinguishFormats(t *testing.T) {
	opts := Options{ImagePath: "cat.png", SizeKey: "1.25"}
	opts.SetLayoutDefaults()
	opts.SetRenderDefaults()

	svg := opts.ArtifactParams("hash", FormatSVG)
	pdf := opts.ArtifactParams("hash", FormatPDF)
	if svg == pdf {
		t.Error("params for different formats should differ")
	}

	calibrated := opts
	calibrated.ScaleFactor = 0.96
	if opts.ArtifactParams("hash", FormatSVG) == calibrated.ArtifactParams("hash", FormatSVG) {
		t.Error("calibration factor should be part of the cache identity")
	}
}
