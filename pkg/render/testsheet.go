package render

import (
	"bytes"
	"fmt"

	"github.com/pinpress/pinpress/pkg/calibration"
	"github.com/pinpress/pinpress/pkg/layout"
	"github.com/pinpress/pinpress/pkg/units"
)

// RenderTestSheet renders the calibration test sheet: a horizontal
// reference line of exactly [calibration.ExpectedInches] with inch ticks,
// plus measuring instructions. The user prints it at 100% scale, measures
// the line with a ruler, and feeds the reading to ComputeFactor.
func RenderTestSheet(paper layout.Paper) []byte {
	pageW := units.InchesToPixels(paper.Width)
	pageH := units.InchesToPixels(paper.Height)

	ref := calibration.ExpectedInches
	lineLen := units.InchesToPixels(ref)
	x0 := (pageW - lineLen) / 2
	y := units.InchesToPixels(3)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`+"\n",
		pageW, pageH, pageW, pageH)
	fmt.Fprintf(&buf, `  <rect width="%.2f" height="%.2f" fill="white"/>`+"\n", pageW, pageH)

	fmt.Fprintf(&buf, `  <text x="%.2f" y="%.2f" font-family="sans-serif" font-size="18" text-anchor="middle">Print this page at 100%% scale (no "fit to page")</text>`+"\n",
		pageW/2, units.InchesToPixels(1.5))
	fmt.Fprintf(&buf, `  <text x="%.2f" y="%.2f" font-family="sans-serif" font-size="14" text-anchor="middle">Measure the line below. It should be exactly %g inches.</text>`+"\n",
		pageW/2, units.InchesToPixels(2), float64(ref))

	// Reference line with end caps and per-inch ticks.
	fmt.Fprintf(&buf, `  <line x1="%.3f" y1="%.3f" x2="%.3f" y2="%.3f" stroke="black" stroke-width="2"/>`+"\n",
		x0, y, x0+lineLen, y)
	for i := 0; i <= int(ref); i++ {
		tickX := x0 + units.InchesToPixels(units.Inches(i))
		tickH := 12.0
		if i == 0 || i == int(ref) {
			tickH = 20.0
		}
		fmt.Fprintf(&buf, `  <line x1="%.3f" y1="%.3f" x2="%.3f" y2="%.3f" stroke="black" stroke-width="2"/>`+"\n",
			tickX, y-tickH, tickX, y+tickH)
		fmt.Fprintf(&buf, `  <text x="%.3f" y="%.3f" font-family="sans-serif" font-size="12" text-anchor="middle">%d</text>`+"\n",
			tickX, y+tickH+16, i)
	}

	fmt.Fprintf(&buf, `  <text x="%.2f" y="%.2f" font-family="sans-serif" font-size="14" text-anchor="middle">Then run: pinpress calibrate set &lt;measured-inches&gt;</text>`+"\n",
		pageW/2, units.InchesToPixels(4.5))

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
