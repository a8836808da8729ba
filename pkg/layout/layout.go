// Package layout computes physically accurate print layouts for button
// sheets.
//
// Given an image placement and a paper definition, the engine decides how
// many buttons fit and where each one goes. Two packing strategies exist:
// a rectangular grid of uniform cells that honors paper margins, and a
// hex-pack brick pattern of alternating 3/2 rows that centers on the full
// page. The strategy comes from the button template, and the engine
// dispatches exhaustively over the closed variant.
//
// All output lengths are physical inches. Image-space values (scale,
// offset) stay in device pixels and are mapped into each cell by the
// renderer, never by the engine.
package layout

import (
	"github.com/pinpress/pinpress/pkg/catalog"
	"github.com/pinpress/pinpress/pkg/placement"
	"github.com/pinpress/pinpress/pkg/units"
)

// Grid reports how many button instances fit on a page.
type Grid struct {
	// Columns and Rows count instances along each axis. For hex layouts
	// Columns is the widest row (3).
	Columns int `json:"columns"`
	Rows    int `json:"rows"`

	// Total is Columns*Rows for grid layouts and the sum of per-row
	// counts for hex layouts.
	Total int `json:"total"`

	// Layout mirrors the button size's packing strategy.
	Layout catalog.Strategy `json:"-"`
}

// PlacedButton is one button instance on the page. X and Y are the
// physical-inch top-left corner of the instance's bounding square.
type PlacedButton struct {
	X units.Inches `json:"x"`
	Y units.Inches `json:"y"`
}

// PrintLayout is the engine's output: every placed instance plus the
// lengths the renderer needs. It is computed fresh per request and
// immutable once returned.
//
// The placement is stored once: the engine tiles one design across many
// positions, so every instance shares the same image, scale and offset by
// construction.
type PrintLayout struct {
	Paper Paper
	Size  catalog.ButtonSize
	Grid  Grid

	// CutDiameter and ContentDiameter start as copies of the size's
	// diameters. Calibration scales these copies, never the catalog.
	CutDiameter     units.Inches
	ContentDiameter units.Inches

	Placement placement.Placement
	Buttons   []PlacedButton
}

// Generate computes the print layout for a placement on the given paper.
//
// A degenerate combination (button larger than the printable area) yields
// a layout with an empty button list, not an error; callers surface
// "nothing fits" themselves.
func Generate(p placement.Placement, paper Paper) PrintLayout {
	switch p.Size.Layout {
	case catalog.StrategyHex:
		return generateHex(p, paper)
	default:
		// StrategyGrid, and the default for any future strategy until
		// both branches learn about it.
		return generateGrid(p, paper)
	}
}

// CalculateGrid computes how many buttons of a grid-strategy size fit on
// the paper, without placing them. Exposed standalone for UI display
// ("20 buttons per page"). The arithmetic is identical to the grid
// algorithm's first steps; callers must not use it for hex-strategy sizes
// expecting a meaningful column count.
func CalculateGrid(size catalog.ButtonSize, paper Paper) Grid {
	columns := int(paper.PrintableWidth() / size.CutLineDiameter)
	rows := int(paper.PrintableHeight() / size.CutLineDiameter)
	if columns < 0 {
		columns = 0
	}
	if rows < 0 {
		rows = 0
	}
	if size.MaxRows > 0 && rows > size.MaxRows {
		rows = size.MaxRows
	}
	return Grid{
		Columns: columns,
		Rows:    rows,
		Total:   columns * rows,
		Layout:  catalog.StrategyGrid,
	}
}
