package layout

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pinpress/pinpress/pkg/units"
)

// Document is the serialization format for a computed print layout.
//
// It carries everything a downstream renderer or external tool needs to
// reproduce the sheet except the bitmap itself: positions and diameters in
// physical inches, and the image-space scale/offset in device pixels. The
// bitmap travels separately (it is a file the user already has).
type Document struct {
	Paper Paper `json:"paper"`

	// Size is the catalog key, e.g. "1.25".
	Size string `json:"size"`

	// Layout is the packing strategy tag ("grid" or "hex").
	Layout string `json:"layout"`

	Grid Grid `json:"grid"`

	CutDiameter     units.Inches `json:"cut_diameter"`
	ContentDiameter units.Inches `json:"content_diameter"`

	// Image-space placement, untouched by calibration.
	Scale   float64 `json:"scale"`
	OffsetX float64 `json:"offset_x"`
	OffsetY float64 `json:"offset_y"`

	Buttons []PlacedButton `json:"buttons"`
}

// Export converts a PrintLayout to its serialization format.
func Export(l PrintLayout) Document {
	return Document{
		Paper:           l.Paper,
		Size:            l.Size.Name,
		Layout:          l.Size.Layout.String(),
		Grid:            l.Grid,
		CutDiameter:     l.CutDiameter,
		ContentDiameter: l.ContentDiameter,
		Scale:           l.Placement.Scale,
		OffsetX:         l.Placement.OffsetX,
		OffsetY:         l.Placement.OffsetY,
		Buttons:         l.Buttons,
	}
}

// MarshalDocument serializes a Document to pretty-printed JSON bytes.
func MarshalDocument(d Document) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// UnmarshalDocument deserializes JSON bytes into a Document.
// Validates that required fields are present.
func UnmarshalDocument(data []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("unmarshal layout: %w", err)
	}

	if d.Size == "" {
		return Document{}, fmt.Errorf("layout document must name a button size")
	}
	if d.Layout != "grid" && d.Layout != "hex" {
		return Document{}, fmt.Errorf("layout document has unknown layout %q", d.Layout)
	}

	return d, nil
}

// WriteDocumentFile writes a layout document to a JSON file.
func WriteDocumentFile(d Document, path string) error {
	data, err := MarshalDocument(d)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadDocumentFile reads a layout document from a JSON file.
func ReadDocumentFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalDocument(data)
}
