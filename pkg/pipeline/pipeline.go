// Package pipeline provides the core print-sheet pipeline for pinpress.
//
// This package implements the complete decode → place → layout → render
// pipeline that both the CLI commands and the interactive preview use. By
// centralizing this logic, we ensure consistent behavior across all entry
// points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Decode: Read and decode the artwork image file
//  2. Layout: Place the artwork in a button template and pack buttons
//     onto the page (applying printer calibration when requested)
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    ImagePath: "cat.png",
//	    SizeKey:   "1.25",
//	    Formats:   []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pinpress/pinpress/pkg/cache"
	"github.com/pinpress/pinpress/pkg/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Preview
// =============================================================================

const (
	// DefaultPNGScale is the raster resolution multiplier for PNG output.
	// 2x keeps the dashed guides crisp when printed at 100%.
	DefaultPNGScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the print-sheet pipeline.
type Options struct {
	// Input options
	ImagePath string `json:"image_path"`
	SizeKey   string `json:"size_key"`

	// Placement options. Scale 0 means cover scale (the smallest zoom at
	// which the artwork fills the cut circle); offsets are device pixels
	// from the button center.
	Scale   float64 `json:"scale,omitempty"`
	OffsetX float64 `json:"offset_x,omitempty"`
	OffsetY float64 `json:"offset_y,omitempty"`

	// Layout options. A zero Paper means US Letter. ScaleFactor 0 means
	// the identity factor (no printer calibration).
	Paper       layout.Paper `json:"paper,omitempty"`
	ScaleFactor float64      `json:"scale_factor,omitempty"`

	// Render options
	Formats    []string `json:"formats,omitempty"`
	NoGuides   bool     `json:"no_guides,omitempty"`
	NoImage    bool     `json:"no_image,omitempty"`
	Background string   `json:"background,omitempty"`
	PNGScale   float64  `json:"png_scale,omitempty"`

	// Refresh skips cache reads (results are still written back).
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the computed (and, if requested, calibrated) print layout.
	Layout layout.PrintLayout

	// ImageHash is the content hash of the source image bytes.
	ImageHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ButtonCount int
	DecodeTime  time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForDecode(); err != nil {
		return err
	}
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForDecode checks required fields for decoding.
func (o *Options) ValidateForDecode() error {
	if o.ImagePath == "" {
		return fmt.Errorf("image path is required")
	}
	if o.SizeKey == "" {
		return fmt.Errorf("size key is required")
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Paper == (layout.Paper{}) {
		o.Paper = layout.USLetter
	}
	if o.ScaleFactor == 0 {
		o.ScaleFactor = 1.0
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	return o.Paper.Validate()
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.PNGScale == 0 {
		o.PNGScale = DefaultPNGScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := o.Paper.Validate(); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// IsCalibrated returns true when a non-identity calibration factor applies.
func (o *Options) IsCalibrated() bool {
	return o.ScaleFactor != 0 && o.ScaleFactor != 1.0
}

// ArtifactParams returns cache key parameters for artifact rendering.
func (o *Options) ArtifactParams(imageHash, format string) cache.ArtifactParams {
	return cache.ArtifactParams{
		ImageHash:    imageHash,
		SizeKey:      o.SizeKey,
		Scale:        o.Scale,
		OffsetX:      o.OffsetX,
		OffsetY:      o.OffsetY,
		PaperWidth:   float64(o.Paper.Width),
		PaperHeight:  float64(o.Paper.Height),
		MarginTop:    float64(o.Paper.MarginTop),
		MarginRight:  float64(o.Paper.MarginRight),
		MarginBottom: float64(o.Paper.MarginBottom),
		MarginLeft:   float64(o.Paper.MarginLeft),
		ScaleFactor:  o.ScaleFactor,
		Format:       format,
		NoGuides:     o.NoGuides,
		NoImage:      o.NoImage,
		Background:   o.Background,
		PNGScale:     o.PNGScale,
	}
}
