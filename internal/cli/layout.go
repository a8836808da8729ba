package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pinpress/pinpress/pkg/layout"
	"github.com/pinpress/pinpress/pkg/pipeline"
	"github.com/pinpress/pinpress/pkg/units"
)

// layoutOpts holds the command-line flags for the layout command.
type layoutOpts struct {
	size       string  // catalog key ("1.25", "2.25")
	scale      float64 // image zoom, 0 means cover scale
	offsetX    float64 // horizontal image offset in pixels
	offsetY    float64 // vertical image offset in pixels
	output     string  // optional JSON output path
	calibrated bool    // apply the stored printer calibration factor
}

// layoutCommand creates the layout command for computing print layouts
// without rendering them.
func (c *CLI) layoutCommand() *cobra.Command {
	opts := layoutOpts{size: "1.25"}

	cmd := &cobra.Command{
		Use:   "layout [image]",
		Short: "Compute a print layout for an image",
		Long: `Layout places the image in the requested button template, packs as many
buttons as fit onto a US Letter page, and prints the resulting geometry.
With --output the layout is exported as JSON for later inspection.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.size, "size", "s", opts.size, "button size key (see 'pinpress sizes')")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "image zoom factor (default: cover the cut circle)")
	cmd.Flags().Float64Var(&opts.offsetX, "offset-x", 0, "horizontal image offset in pixels")
	cmd.Flags().Float64Var(&opts.offsetY, "offset-y", 0, "vertical image offset in pixels")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the layout as JSON to this path")
	cmd.Flags().BoolVar(&opts.calibrated, "calibrated", false, "apply the stored printer calibration factor")

	return cmd
}

func (c *CLI) runLayout(cmd *cobra.Command, image string, opts *layoutOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(true)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := pipeline.Options{
		ImagePath: image,
		SizeKey:   opts.size,
		Scale:     opts.scale,
		OffsetX:   opts.offsetX,
		OffsetY:   opts.offsetY,
		Logger:    c.Logger,
	}
	if opts.calibrated {
		popts.ScaleFactor = storedFactor()
	}

	img, _, err := runner.Decode(ctx, popts)
	if err != nil {
		return err
	}
	l, err := runner.BuildLayout(ctx, img, popts)
	if err != nil {
		return err
	}
	logger.Debugf("Packed %d buttons (%dx%d)", l.Grid.Total, l.Grid.Columns, l.Grid.Rows)

	printSuccess("Computed %s layout for %s", l.Grid.Layout, image)
	printSheetStats(l.Grid.Total, l.Grid.Columns, l.Grid.Rows, false)
	printDetail("Cut line: %.3f in · safe area: %.3f in", float64(l.CutDiameter), float64(l.ContentDiameter))
	if popts.ScaleFactor != 0 && popts.ScaleFactor != 1.0 {
		printDetail("Calibrated at factor %.4f", popts.ScaleFactor)
	}
	if l.Grid.Total > 0 {
		first := l.Buttons[0]
		printDetail("First button at %.3f, %.3f in (%.1f, %.1f px)",
			float64(first.X), float64(first.Y),
			units.InchesToPixels(first.X), units.InchesToPixels(first.Y))
	}

	if opts.output != "" {
		if err := layout.WriteDocumentFile(layout.Export(l), opts.output); err != nil {
			return err
		}
		printFile(opts.output)
	}

	printNewline()
	printNextStep("Render the sheet", fmt.Sprintf("pinpress render %s --size %s", image, opts.size))
	return nil
}
