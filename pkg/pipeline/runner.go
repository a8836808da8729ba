package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pinpress/pinpress/pkg/cache"
	"github.com/pinpress/pinpress/pkg/calibration"
	"github.com/pinpress/pinpress/pkg/catalog"
	"github.com/pinpress/pinpress/pkg/errors"
	"github.com/pinpress/pinpress/pkg/layout"
	"github.com/pinpress/pinpress/pkg/observability"
	"github.com/pinpress/pinpress/pkg/placement"
	"github.com/pinpress/pinpress/pkg/render"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete decode → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Decode
	decodeStart := time.Now()
	img, imageHash, err := r.Decode(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	result.ImageHash = imageHash
	result.Stats.DecodeTime = time.Since(decodeStart)

	r.Logger.Info("decoded artwork",
		"path", opts.ImagePath,
		"size", fmt.Sprintf("%dx%d", img.Bounds().Dx(), img.Bounds().Dy()),
		"duration", result.Stats.DecodeTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	l, err := r.BuildLayout(ctx, img, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.ButtonCount = l.Grid.Total

	r.Logger.Info("computed layout",
		"size", opts.SizeKey,
		"strategy", l.Grid.Layout.String(),
		"buttons", l.Grid.Total,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, l, imageHash, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Decode reads and decodes the artwork file, returning the image and the
// content hash of the raw file bytes. The hash feeds artifact cache keys,
// so a changed file always misses even when the path is unchanged.
func (r *Runner) Decode(ctx context.Context, opts Options) (image.Image, string, error) {
	if err := opts.ValidateForDecode(); err != nil {
		return nil, "", err
	}

	observability.Pipeline().OnDecodeStart(ctx, opts.ImagePath)
	start := time.Now()

	data, err := os.ReadFile(opts.ImagePath)
	if err != nil {
		if os.IsNotExist(err) {
			err = errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", opts.ImagePath)
		} else {
			err = errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", opts.ImagePath)
		}
		observability.Pipeline().OnDecodeComplete(ctx, opts.ImagePath, "", time.Since(start), err)
		return nil, "", err
	}

	img, err := placement.Decode(bytes.NewReader(data))
	format := strings.TrimPrefix(filepath.Ext(opts.ImagePath), ".")
	observability.Pipeline().OnDecodeComplete(ctx, opts.ImagePath, format, time.Since(start), err)
	if err != nil {
		return nil, "", err
	}

	return img, cache.Hash(data), nil
}

// BuildLayout places the artwork in the requested button template, packs
// buttons onto the page, and applies the calibration factor.
func (r *Runner) BuildLayout(ctx context.Context, img image.Image, opts Options) (layout.PrintLayout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return layout.PrintLayout{}, err
	}

	size, err := catalog.Lookup(opts.SizeKey)
	if err != nil {
		return layout.PrintLayout{}, err
	}

	observability.Pipeline().OnLayoutStart(ctx, opts.SizeKey, size.Layout.String())
	start := time.Now()

	p := placement.New(img, size)
	if opts.Scale != 0 {
		p.Scale = opts.Scale
	}
	p.OffsetX = opts.OffsetX
	p.OffsetY = opts.OffsetY
	if err := p.Validate(); err != nil {
		observability.Pipeline().OnLayoutComplete(ctx, opts.SizeKey, size.Layout.String(), 0, time.Since(start), err)
		return layout.PrintLayout{}, err
	}

	l := layout.Generate(p, opts.Paper)
	l = calibration.Apply(l, opts.ScaleFactor)

	observability.Pipeline().OnLayoutComplete(ctx, opts.SizeKey, size.Layout.String(), l.Grid.Total, time.Since(start), nil)
	return l, nil
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l layout.PrintLayout, imageHash string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(opts.ArtifactParams(imageHash, format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				artifacts[format] = data
			} else {
				observability.Cache().OnCacheMiss(ctx, "artifact")
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil // All artifacts from cache
		}
	}

	// Render all formats
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := r.renderFormat(l, format, opts)
		if err != nil {
			observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, false, err
		}
		rendered[format] = data
	}
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(opts.ArtifactParams(imageHash, format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, l layout.PrintLayout, imageHash string, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, imageHash, opts)
	return artifacts, err
}

func (r *Runner) renderFormat(l layout.PrintLayout, format string, opts Options) ([]byte, error) {
	svgOpts := opts.svgOptions()
	switch format {
	case FormatSVG:
		return render.RenderSVG(l, svgOpts...)
	case FormatPNG:
		return render.RenderPNG(l, render.WithPNGSVGOptions(svgOpts...), render.WithScale(opts.PNGScale))
	case FormatPDF:
		return render.RenderPDF(l, render.WithPDFSVGOptions(svgOpts...))
	case FormatJSON:
		return layout.MarshalDocument(layout.Export(l))
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
	}
}

func (o *Options) svgOptions() []render.SVGOption {
	var svgOpts []render.SVGOption
	if o.NoGuides {
		svgOpts = append(svgOpts, render.WithoutGuides())
	}
	if o.NoImage {
		svgOpts = append(svgOpts, render.WithoutImage())
	}
	if o.Background != "" {
		svgOpts = append(svgOpts, render.WithBackground(o.Background))
	}
	return svgOpts
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
