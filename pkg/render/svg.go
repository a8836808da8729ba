// Package render draws print layouts to output formats.
//
// The SVG renderer is the source of truth: it emits one page at the fixed
// 96 px/in mapping, with each button's artwork clipped to its cut circle
// and optional dashed guides for the cut line and safe area. PNG and PDF
// are conversions of that SVG via rsvg-convert.
//
// Rendering is purely presentational: it consumes a PrintLayout (already
// calibrated by the caller if desired) and never feeds anything back into
// the layout math.
package render

import (
	"bytes"
	"fmt"

	"github.com/pinpress/pinpress/pkg/layout"
	"github.com/pinpress/pinpress/pkg/units"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	noImage    bool
	noGuides   bool
	background string
}

// WithoutImage renders guides only, skipping the embedded artwork.
// Useful for blank templates and for tests.
func WithoutImage() SVGOption { return func(r *svgRenderer) { r.noImage = true } }

// WithoutGuides skips the dashed cut-line and safe-area circles, for final
// production sheets where guide ink would show on the button edge.
func WithoutGuides() SVGOption { return func(r *svgRenderer) { r.noGuides = true } }

// WithBackground fills the page with the given CSS color (default none).
func WithBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// RenderSVG renders the layout as a standalone SVG page.
func RenderSVG(l layout.PrintLayout, opts ...SVGOption) ([]byte, error) {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	pageW := units.InchesToPixels(l.Paper.Width)
	pageH := units.InchesToPixels(l.Paper.Height)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`+"\n",
		pageW, pageH, pageW, pageH)

	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="%.2f" height="%.2f" fill="%s"/>`+"\n", pageW, pageH, r.background)
	}

	withImage := !r.noImage && l.Placement.Image != nil
	if withImage {
		if err := renderArtworkDefs(&buf, l); err != nil {
			return nil, err
		}
	}

	for i, b := range l.Buttons {
		renderButton(&buf, l, i, b, withImage, !r.noGuides)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

// renderArtworkDefs embeds the placement bitmap once; every button
// references it through a <use> element so the data URI appears a single
// time regardless of how many instances the page holds.
func renderArtworkDefs(buf *bytes.Buffer, l layout.PrintLayout) error {
	uri, err := imageDataURI(l.Placement.Image)
	if err != nil {
		return err
	}
	fmt.Fprintf(buf, `  <defs><image id="artwork" width="%.3f" height="%.3f" xlink:href="%s"/></defs>`+"\n",
		l.Placement.ScaledWidth(), l.Placement.ScaledHeight(), uri)
	return nil
}

func renderButton(buf *bytes.Buffer, l layout.PrintLayout, i int, b layout.PlacedButton, withImage, withGuides bool) {
	d := units.InchesToPixels(l.CutDiameter)
	cx := units.InchesToPixels(b.X) + d/2
	cy := units.InchesToPixels(b.Y) + d/2

	fmt.Fprintf(buf, `  <g id="button-%d">`+"\n", i)

	if withImage {
		// The image center lands at the circle center plus the user's
		// pixel offset; the clip discards everything outside the cut line.
		imgX := cx + l.Placement.OffsetX - l.Placement.ScaledWidth()/2
		imgY := cy + l.Placement.OffsetY - l.Placement.ScaledHeight()/2
		fmt.Fprintf(buf, `    <clipPath id="clip-%d"><circle cx="%.3f" cy="%.3f" r="%.3f"/></clipPath>`+"\n",
			i, cx, cy, d/2)
		fmt.Fprintf(buf, `    <g clip-path="url(#clip-%d)"><use xlink:href="#artwork" x="%.3f" y="%.3f"/></g>`+"\n",
			i, imgX, imgY)
	}

	if withGuides {
		content := units.InchesToPixels(l.ContentDiameter)
		fmt.Fprintf(buf, `    <circle cx="%.3f" cy="%.3f" r="%.3f" fill="none" stroke="#888" stroke-width="1" stroke-dasharray="4 3"/>`+"\n",
			cx, cy, d/2)
		fmt.Fprintf(buf, `    <circle cx="%.3f" cy="%.3f" r="%.3f" fill="none" stroke="#bbb" stroke-width="0.5" stroke-dasharray="2 3"/>`+"\n",
			cx, cy, content/2)
	}

	buf.WriteString("  </g>\n")
}
