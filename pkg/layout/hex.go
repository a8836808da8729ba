package layout

import (
	"math"

	"github.com/pinpress/pinpress/pkg/placement"
	"github.com/pinpress/pinpress/pkg/units"
)

const (
	// hexGap is the fixed center-to-center spacing added between adjacent
	// circles in a row.
	hexGap units.Inches = 0.2

	// defaultHexRows is used when a hex-strategy size declares no row cap.
	defaultHexRows = 4
)

// hexRowCount returns how many buttons row i holds: rows alternate 3 and
// 2 so each circle of a 2-row nests between two circles of the adjacent
// 3-rows.
func hexRowCount(i int) int {
	if i%2 == 0 {
		return 3
	}
	return 2
}

// generateHex packs buttons in a brick/honeycomb pattern.
//
// Rows are spaced by step * sqrt(3)/2, the hex-packing vertical
// compression: offset rows interlock, so they sit closer than a full step.
// The whole pattern is centered on the full page dimensions; unlike the
// grid strategy this deliberately ignores the paper margins to maximize
// the centered packing of the denser layout.
func generateHex(p placement.Placement, paper Paper) PrintLayout {
	size := p.Size
	d := size.CutLineDiameter
	step := d + hexGap

	numRows := size.MaxRows
	if numRows <= 0 {
		numRows = defaultHexRows
	}

	total := 0
	for i := 0; i < numRows; i++ {
		total += hexRowCount(i)
	}

	// A 3-button row spans two steps plus one diameter; 2-rows shift by
	// half a step so they nest.
	totalWidth := 2*step + d
	startX3 := (paper.Width - totalWidth) / 2
	startX2 := startX3 + step/2

	rowSpacing := step * units.Inches(math.Sqrt(3)/2)
	totalHeight := units.Inches(numRows-1)*rowSpacing + d
	startY := (paper.Height - totalHeight) / 2

	out := PrintLayout{
		Paper: paper,
		Size:  size,
		Grid: Grid{
			Columns: hexRowCount(0),
			Rows:    numRows,
			Total:   total,
			Layout:  size.Layout,
		},
		CutDiameter:     size.CutLineDiameter,
		ContentDiameter: size.ContentGuideDiameter,
		Placement:       p,
	}

	out.Buttons = make([]PlacedButton, 0, total)
	for row := 0; row < numRows; row++ {
		baseX := startX3
		if row%2 == 1 {
			baseX = startX2
		}
		y := startY + units.Inches(row)*rowSpacing
		for col := 0; col < hexRowCount(row); col++ {
			out.Buttons = append(out.Buttons, PlacedButton{
				X: baseX + units.Inches(col)*step,
				Y: y,
			})
		}
	}
	return out
}
