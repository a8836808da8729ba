package render

import "github.com/pinpress/pinpress/pkg/layout"

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	svgOpts []SVGOption
}

// WithPDFSVGOptions passes options through to the underlying SVG renderer.
func WithPDFSVGOptions(opts ...SVGOption) PDFOption {
	return func(r *pdfRenderer) { r.svgOpts = opts }
}

// RenderPDF renders the layout as PDF via SVG conversion. PDF is the
// preferred print format: viewers are less likely to rescale it than a
// raster image.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(l layout.PrintLayout, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	svg, err := RenderSVG(l, r.svgOpts...)
	if err != nil {
		return nil, err
	}
	return ToPDF(svg)
}
