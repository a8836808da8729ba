package catalog

import (
	"testing"

	"github.com/pinpress/pinpress/pkg/errors"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		key         string
		wantCut     float64
		wantContent float64
		wantLayout  Strategy
		wantMaxRows int
	}{
		{"1.25", 1.772, 1.156, StrategyGrid, 5},
		{"2.25", 2.625, 2.063, StrategyHex, 4},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			size, err := Lookup(tt.key)
			if err != nil {
				t.Fatalf("Lookup(%q): %v", tt.key, err)
			}
			if float64(size.CutLineDiameter) != tt.wantCut {
				t.Errorf("CutLineDiameter = %v, want %v", size.CutLineDiameter, tt.wantCut)
			}
			if float64(size.ContentGuideDiameter) != tt.wantContent {
				t.Errorf("ContentGuideDiameter = %v, want %v", size.ContentGuideDiameter, tt.wantContent)
			}
			if size.Layout != tt.wantLayout {
				t.Errorf("Layout = %v, want %v", size.Layout, tt.wantLayout)
			}
			if size.MaxRows != tt.wantMaxRows {
				t.Errorf("MaxRows = %d, want %d", size.MaxRows, tt.wantMaxRows)
			}
			if size.ContentGuideDiameter >= size.CutLineDiameter {
				t.Error("content guide must be strictly inside the cut line")
			}
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("bogus")
	if err == nil {
		t.Fatal("Lookup(bogus) should fail")
	}
	if !errors.Is(err, errors.ErrCodeNotFoundSize) {
		t.Errorf("error code = %v, want SIZE_NOT_FOUND", errors.GetCode(err))
	}
}

func TestAll(t *testing.T) {
	all := All()
	if len(all) != 2 {
		t.Fatalf("All() returned %d sizes, want 2", len(all))
	}
	// Sorted by name.
	if all[0].Name != "1.25" || all[1].Name != "2.25" {
		t.Errorf("All() order = %q, %q", all[0].Name, all[1].Name)
	}
}

func TestStrategyString(t *testing.T) {
	if StrategyGrid.String() != "grid" {
		t.Errorf("StrategyGrid = %q", StrategyGrid.String())
	}
	if StrategyHex.String() != "hex" {
		t.Errorf("StrategyHex = %q", StrategyHex.String())
	}
}
