package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pinpress/pinpress/pkg/calibration"
	"github.com/pinpress/pinpress/pkg/layout"
	"github.com/pinpress/pinpress/pkg/render"
	"github.com/pinpress/pinpress/pkg/units"
)

// calibrateCommand creates the calibrate command group.
//
// Calibration is a two-step loop: print the test sheet, measure the
// reference line with a ruler, then store the measurement with
// "calibrate set". Renders with --calibrated apply the stored factor.
func (c *CLI) calibrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calibrate",
		Short: "Correct for printer scaling error",
		Long: fmt.Sprintf(`Printers and PDF viewers routinely rescale output by a percent or two,
enough to make buttons miss the cutting die. Calibrate prints a %g inch
reference line; measuring it and storing the result lets pinpress scale
every sheet to compensate.`, float64(calibration.ExpectedInches)),
	}

	cmd.AddCommand(c.calibrateSheetCommand())
	cmd.AddCommand(c.calibrateSetCommand())
	cmd.AddCommand(c.calibrateShowCommand())
	cmd.AddCommand(c.calibrateClearCommand())

	return cmd
}

// calibrateSheetCommand creates the "calibrate sheet" subcommand.
func (c *CLI) calibrateSheetCommand() *cobra.Command {
	var output, format string

	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Generate the calibration test sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			svg := render.RenderTestSheet(layout.USLetter)

			data := svg
			if format == "pdf" {
				var err error
				data, err = render.ToPDF(svg)
				if err != nil {
					return err
				}
			} else if format != "svg" {
				return fmt.Errorf("invalid format: %q (must be 'svg' or 'pdf')", format)
			}

			if output == "" {
				output = "calibration-sheet." + format
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return err
			}

			printSuccess("Generated calibration sheet")
			printFile(output)
			printNewline()
			printInfo("Print it at 100%% scale, then measure the line with a ruler")
			printNextStep("Store the measurement", "pinpress calibrate set <measured-inches>")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default calibration-sheet.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg (default), pdf")

	return cmd
}

// calibrateSetCommand creates the "calibrate set" subcommand.
func (c *CLI) calibrateSetCommand() *cobra.Command {
	var printer, notes string

	cmd := &cobra.Command{
		Use:   "set [measured-inches]",
		Short: "Store a ruler measurement of the test sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			measured, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid measurement %q: %w", args[0], err)
			}

			rec, err := calibration.ComputeFactor(units.Inches(measured))
			if err != nil {
				return err
			}

			store, err := prefsStore()
			if err != nil {
				return err
			}
			p := store.Load()
			p.Calibration = &rec
			if printer != "" {
				p.Printer = printer
			}
			if notes != "" {
				p.Notes = notes
			}
			if err := store.Save(p); err != nil {
				return err
			}

			printSuccess("Calibration stored")
			printKeyValue("Expected", fmt.Sprintf("%g in", float64(rec.ExpectedInches)))
			printKeyValue("Measured", fmt.Sprintf("%g in", float64(rec.MeasuredInches)))
			printKeyValue("Factor", fmt.Sprintf("%.4f", rec.ScaleFactor))
			if rec.ScaleFactor < 0.9 || rec.ScaleFactor > 1.1 {
				printWarning("Factor deviates more than 10%% - check the print dialog for 'fit to page'")
			}
			printNewline()
			printNextStep("Render with it", "pinpress render art.png --calibrated")
			return nil
		},
	}

	cmd.Flags().StringVar(&printer, "printer", "", "printer name to record with the calibration")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes (paper, tray, driver settings)")

	return cmd
}

// calibrateShowCommand creates the "calibrate show" subcommand.
func (c *CLI) calibrateShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored calibration",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := prefsStore()
			if err != nil {
				return err
			}
			p := store.Load()
			if p.Calibration == nil {
				printInfo("No calibration stored; sheets render at factor 1.0")
				printNextStep("Calibrate", "pinpress calibrate sheet")
				return nil
			}

			printKeyValue("Expected", fmt.Sprintf("%g in", float64(p.Calibration.ExpectedInches)))
			printKeyValue("Measured", fmt.Sprintf("%g in", float64(p.Calibration.MeasuredInches)))
			printKeyValue("Factor", fmt.Sprintf("%.4f", p.Calibration.ScaleFactor))
			if p.Printer != "" {
				printKeyValue("Printer", p.Printer)
			}
			if p.Notes != "" {
				printKeyValue("Notes", p.Notes)
			}
			printDetail("Stored in %s", store.Path())
			return nil
		},
	}
}

// calibrateClearCommand creates the "calibrate clear" subcommand.
func (c *CLI) calibrateClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored calibration",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := prefsStore()
			if err != nil {
				return err
			}
			if err := store.ClearCalibration(); err != nil {
				return err
			}
			printSuccess("Calibration cleared; sheets render at factor 1.0")
			return nil
		},
	}
}
