package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pinpress/pinpress/pkg/catalog"
	"github.com/pinpress/pinpress/pkg/placement"
)

// previewOpts holds the command-line flags for the preview command.
type previewOpts struct {
	size    string  // catalog key ("1.25", "2.25")
	scale   float64 // initial zoom, 0 means cover scale
	offsetX float64 // initial horizontal offset in pixels
	offsetY float64 // initial vertical offset in pixels
}

// previewCommand creates the preview command: an interactive editor for
// positioning artwork inside a button before rendering.
func (c *CLI) previewCommand() *cobra.Command {
	opts := previewOpts{size: "1.25"}

	cmd := &cobra.Command{
		Use:   "preview [image]",
		Short: "Interactively position artwork inside a button",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.size, "size", "s", opts.size, "button size key (see 'pinpress sizes')")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "initial zoom factor (default: cover the cut circle)")
	cmd.Flags().Float64Var(&opts.offsetX, "offset-x", 0, "initial horizontal offset in pixels")
	cmd.Flags().Float64Var(&opts.offsetY, "offset-y", 0, "initial vertical offset in pixels")

	return cmd
}

func (c *CLI) runPreview(image string, opts *previewOpts) error {
	size, err := catalog.Lookup(opts.size)
	if err != nil {
		return err
	}
	img, err := placement.DecodeFile(image)
	if err != nil {
		return err
	}

	p := placement.New(img, size)
	if opts.scale != 0 {
		p.Scale = opts.scale
	}
	p.OffsetX = opts.offsetX
	p.OffsetY = opts.offsetY
	if err := p.Validate(); err != nil {
		return err
	}

	final, err := tea.NewProgram(NewPlacementModel(p)).Run()
	if err != nil {
		return err
	}

	m, ok := final.(PlacementModel)
	if !ok || !m.Accepted {
		printInfo("Preview cancelled; nothing saved")
		return nil
	}

	printSuccess("Placement accepted")
	printKeyValue("Zoom", fmt.Sprintf("%.3f", m.Placement.Scale))
	printKeyValue("Offset", fmt.Sprintf("%.1f, %.1f px", m.Placement.OffsetX, m.Placement.OffsetY))
	printNewline()
	printNextStep("Render with it", fmt.Sprintf(
		"pinpress render %s --size %s --scale %.3f --offset-x %.1f --offset-y %.1f",
		image, opts.size, m.Placement.Scale, m.Placement.OffsetX, m.Placement.OffsetY))
	return nil
}
