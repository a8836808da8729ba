package placement

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/pinpress/pinpress/pkg/catalog"
	"github.com/pinpress/pinpress/pkg/errors"
)

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func mustSize(t *testing.T, key string) catalog.ButtonSize {
	t.Helper()
	size, err := catalog.Lookup(key)
	if err != nil {
		t.Fatal(err)
	}
	return size
}

func TestValidate(t *testing.T) {
	size := mustSize(t, "1.25")
	img := testImage(200, 100)

	tests := []struct {
		name     string
		p        Placement
		wantErr  bool
		wantCode errors.Code
	}{
		{"Valid", Placement{Image: img, Scale: 1, Size: size}, false, ""},
		{"NilImage", Placement{Scale: 1, Size: size}, true, errors.ErrCodeInvalidImage},
		{"ZeroScale", Placement{Image: img, Scale: 0, Size: size}, true, errors.ErrCodeInvalidScale},
		{"NegativeScale", Placement{Image: img, Scale: -2, Size: size}, true, errors.ErrCodeInvalidScale},
		{"NaNOffset", Placement{Image: img, Scale: 1, OffsetX: math.NaN(), Size: size}, true, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, tt.wantCode) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestCoverScale(t *testing.T) {
	size := mustSize(t, "1.25")
	// Cut line is 1.772 in = 170.112 px; a 200x100 image is limited by its
	// 100 px height.
	got := CoverScale(testImage(200, 100), size)
	want := 170.112 / 100
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("CoverScale = %v, want %v", got, want)
	}
}

func TestNewCentersAtCoverScale(t *testing.T) {
	size := mustSize(t, "2.25")
	p := New(testImage(400, 400), size)

	if p.OffsetX != 0 || p.OffsetY != 0 {
		t.Errorf("New offsets = (%v, %v), want centered", p.OffsetX, p.OffsetY)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("New placement invalid: %v", err)
	}
	// Scaled shorter edge must equal the cut-line diameter in pixels.
	if math.Abs(p.ScaledWidth()-252) > 1e-9 {
		t.Errorf("ScaledWidth = %v, want 252", p.ScaledWidth())
	}
}

func TestDecode(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage(32, 16)); err != nil {
		t.Fatal(err)
	}

	img, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 16 {
		t.Errorf("decoded bounds = %v", img.Bounds())
	}
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not an image")))
	if err == nil {
		t.Fatal("Decode should fail on garbage input")
	}
	if !errors.Is(err, errors.ErrCodeInvalidImage) {
		t.Errorf("error code = %v, want INVALID_IMAGE", errors.GetCode(err))
	}
}

func TestDecodeFileNotFound(t *testing.T) {
	_, err := DecodeFile("does/not/exist.png")
	if err == nil {
		t.Fatal("DecodeFile should fail for missing file")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}
