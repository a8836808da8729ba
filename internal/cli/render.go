package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pinpress/pinpress/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	size       string   // catalog key ("1.25", "2.25")
	output     string   // output file (single format) or base path (multiple)
	formats    []string // output formats: "svg", "png", "pdf", "json"
	scale      float64  // image zoom, 0 means cover scale
	offsetX    float64  // horizontal image offset in pixels
	offsetY    float64  // vertical image offset in pixels
	noGuides   bool     // skip dashed cut-line and safe-area circles
	noImage    bool     // render guides only (blank template)
	background string   // page background color
	pngScale   float64  // raster resolution multiplier for PNG
	noCache    bool     // disable the artifact cache
	refresh    bool     // skip cache reads, re-render everything
	calibrated bool     // apply the stored printer calibration factor
}

// renderCommand creates the render command for generating print sheets.
// It supports SVG, PNG, PDF, and JSON output.
//
// Default settings:
//   - size: 1.25
//   - format: svg
//   - png-scale: 2.0 (2x resolution)
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		size:     "1.25",
		pngScale: pipeline.DefaultPNGScale,
	}

	cmd := &cobra.Command{
		Use:   "render [image]",
		Short: "Render a print sheet to SVG, PNG, or PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.size, "size", "s", opts.size, "button size key (see 'pinpress sizes')")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "image zoom factor (default: cover the cut circle)")
	cmd.Flags().Float64Var(&opts.offsetX, "offset-x", 0, "horizontal image offset in pixels")
	cmd.Flags().Float64Var(&opts.offsetY, "offset-y", 0, "vertical image offset in pixels")
	cmd.Flags().BoolVar(&opts.noGuides, "no-guides", false, "skip the dashed cut-line and safe-area guides")
	cmd.Flags().BoolVar(&opts.noImage, "no-image", false, "render a blank template without the artwork")
	cmd.Flags().StringVar(&opts.background, "background", "", "page background color (CSS color, default transparent)")
	cmd.Flags().Float64Var(&opts.pngScale, "png-scale", opts.pngScale, "PNG resolution multiplier")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when a cached artifact exists")
	cmd.Flags().BoolVar(&opts.calibrated, "calibrated", false, "apply the stored printer calibration factor")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, image string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := pipeline.Options{
		ImagePath:  image,
		SizeKey:    opts.size,
		Scale:      opts.scale,
		OffsetX:    opts.offsetX,
		OffsetY:    opts.offsetY,
		Formats:    opts.formats,
		NoGuides:   opts.noGuides,
		NoImage:    opts.noImage,
		Background: opts.background,
		PNGScale:   opts.pngScale,
		Refresh:    opts.refresh,
		Logger:     c.Logger,
	}
	if opts.calibrated {
		popts.ScaleFactor = storedFactor()
		if popts.ScaleFactor == 1.0 {
			printWarning("No stored calibration; rendering at factor 1.0")
			printNextStep("Calibrate first", "pinpress calibrate sheet")
		}
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s sheet...", opts.size))
	spinner.Start()
	result, err := runner.Execute(ctx, popts)
	spinner.Stop()
	if err != nil {
		if spinner.Cancelled() {
			return ctx.Err()
		}
		return err
	}

	base := basePath(opts.output, image)
	written := make([]string, 0, len(opts.formats))
	for _, format := range opts.formats {
		path := outputPath(base, opts.output, format, len(opts.formats))
		if err := os.WriteFile(path, result.Artifacts[format], 0644); err != nil {
			return err
		}
		logger.Debugf("Wrote %s: %d bytes", path, len(result.Artifacts[format]))
		written = append(written, path)
	}
	prog.done(fmt.Sprintf("Rendered %d buttons to %d file(s)", result.Stats.ButtonCount, len(written)))

	printSuccess("Rendered %s sheet for %s", result.Layout.Grid.Layout, image)
	printSheetStats(result.Stats.ButtonCount, result.Layout.Grid.Columns, result.Layout.Grid.Rows, result.CacheInfo.RenderHit)
	for _, path := range written {
		printFile(path)
	}
	printNewline()
	printNextStep("Print at 100% scale", "disable 'fit to page' in the print dialog")
	return nil
}

// validExts is the set of extensions recognized as format extensions.
var validExts = map[string]bool{"svg": true, "png": true, "pdf": true, "json": true}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validExts[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath builds the output file path for a format. An explicit
// --output with a matching extension is used verbatim when a single
// format is requested.
func outputPath(base, output, format string, formatCount int) string {
	if formatCount == 1 && output != "" && strings.TrimPrefix(filepath.Ext(output), ".") == format {
		return output
	}
	return base + "." + format
}
