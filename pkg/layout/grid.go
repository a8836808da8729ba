package layout

import (
	"github.com/pinpress/pinpress/pkg/placement"
	"github.com/pinpress/pinpress/pkg/units"
)

// generateGrid packs buttons in a rectangular grid of uniform cells.
//
// The printable area is partitioned into columns x rows equal cells and
// one button is centered in each. Centering within cells, rather than
// packing edge-to-edge, spreads leftover space evenly so the sheet looks
// balanced no matter how much margin remains.
func generateGrid(p placement.Placement, paper Paper) PrintLayout {
	size := p.Size
	grid := CalculateGrid(size, paper)

	out := PrintLayout{
		Paper:           paper,
		Size:            size,
		Grid:            grid,
		CutDiameter:     size.CutLineDiameter,
		ContentDiameter: size.ContentGuideDiameter,
		Placement:       p,
	}

	if grid.Columns <= 0 || grid.Rows <= 0 {
		// Nothing fits. Degenerate but not an error.
		return out
	}

	cellW := paper.PrintableWidth() / units.Inches(grid.Columns)
	cellH := paper.PrintableHeight() / units.Inches(grid.Rows)
	d := size.CutLineDiameter

	out.Buttons = make([]PlacedButton, 0, grid.Total)
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Columns; col++ {
			out.Buttons = append(out.Buttons, PlacedButton{
				X: paper.MarginLeft + units.Inches(col)*cellW + (cellW-d)/2,
				Y: paper.MarginTop + units.Inches(row)*cellH + (cellH-d)/2,
			})
		}
	}
	return out
}
