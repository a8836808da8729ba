// Package catalog defines the fixed set of button templates pinpress can
// lay out.
//
// A button template pairs two physical diameters: the cut line, where the
// circle cutter actually cuts, and the content guide, the inner safe area
// that survives the press folding the edge under the pin back. Each
// template also declares how copies of it pack onto a page.
//
// The catalog is closed and hardcoded: adding a size means adding an entry
// here, not changing the lookup contract.
package catalog

import (
	"sort"

	"github.com/pinpress/pinpress/pkg/errors"
	"github.com/pinpress/pinpress/pkg/units"
)

// Strategy is the packing strategy for tiling a button size onto a page.
// It is a closed variant: the layout engine handles every member
// exhaustively, and adding a member means extending both the engine and
// this enum, not ad-hoc string checks.
type Strategy int

const (
	// StrategyGrid packs buttons in a rectangular grid of uniform cells,
	// honoring paper margins.
	StrategyGrid Strategy = iota

	// StrategyHex packs buttons in an alternating 3/2 brick pattern so
	// adjacent rows interlock tighter than a square grid allows.
	StrategyHex
)

// String returns the strategy name used in layout JSON and CLI output.
func (s Strategy) String() string {
	switch s {
	case StrategyHex:
		return "hex"
	default:
		return "grid"
	}
}

// ButtonSize is one immutable entry in the template catalog.
type ButtonSize struct {
	// Name is the display label and lookup key, e.g. "1.25".
	Name string

	// CutLineDiameter is the diameter at which the button press cuts the
	// printed circle. Artwork outside it is discarded.
	CutLineDiameter units.Inches

	// ContentGuideDiameter is the inner safe-area diameter. It is always
	// strictly smaller than CutLineDiameter.
	ContentGuideDiameter units.Inches

	// Layout selects the packing strategy for this size.
	Layout Strategy

	// MaxRows caps vertical repetition regardless of how many rows would
	// geometrically fit. Zero means no cap for grid layouts; hex layouts
	// fall back to a default row count.
	MaxRows int
}

// sizes is the closed set of supported templates. Diameters come from the
// physical button press dies: a 1.25 in button cuts at 1.772 in, a 2.25 in
// button at 2.625 in.
var sizes = map[string]ButtonSize{
	"1.25": {
		Name:                 "1.25",
		CutLineDiameter:      1.772,
		ContentGuideDiameter: 1.156,
		Layout:               StrategyGrid,
		MaxRows:              5,
	},
	"2.25": {
		Name:                 "2.25",
		CutLineDiameter:      2.625,
		ContentGuideDiameter: 2.063,
		Layout:               StrategyHex,
		MaxRows:              4,
	},
}

// Lookup returns the template for the given key.
// Unknown keys fail with a SIZE_NOT_FOUND error carrying the key; there is
// no fallback size.
func Lookup(key string) (ButtonSize, error) {
	size, ok := sizes[key]
	if !ok {
		return ButtonSize{}, errors.New(errors.ErrCodeNotFoundSize, "unknown button size: %q", key)
	}
	return size, nil
}

// All returns every catalog entry sorted by name, for listings.
func All() []ButtonSize {
	out := make([]ButtonSize, 0, len(sizes))
	for _, s := range sizes {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Keys returns the sorted lookup keys, for CLI flag help and completion.
func Keys() []string {
	keys := make([]string, 0, len(sizes))
	for k := range sizes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
