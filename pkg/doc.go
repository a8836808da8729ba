// Package pkg provides the core libraries for pinpress button sheet layout.
//
// # Overview
//
// Pinpress turns a piece of artwork into a print-ready sheet of pin-back
// buttons: the image is placed inside a standard button template, the
// template is packed onto a page as many times as it fits, and the page is
// rendered with cut lines and safe-area guides. The pkg directory is
// organized into three main areas:
//
//  1. Geometry - units, catalog, placement, layout, calibration
//  2. Output - render (SVG/PNG/PDF), pipeline orchestration
//  3. Infrastructure - cache, prefs, errors, observability, buildinfo
//
// # Architecture
//
// The typical data flow through pinpress:
//
//	Artwork file (PNG/JPEG/GIF/WebP)
//	         ↓
//	    [placement] package (decode + position inside a button)
//	         ↓
//	    [layout] package (pack buttons onto the page)
//	         ↓
//	    [calibration] package (scale for the physical printer)
//	         ↓
//	    [render] package (SVG, converted to PNG/PDF)
//
// # Quick Start
//
// The [pipeline] package ties the stages together:
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    ImagePath: "cat.png",
//	    SizeKey:   "1.25",
//	    Formats:   []string{"pdf"},
//	})
//
// All physical lengths are [units.Inches]; the fixed 96 px/in mapping in
// [units] converts between image pixels and paper inches.
package pkg
