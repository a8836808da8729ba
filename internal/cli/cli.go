// Package cli implements the pinpress command-line interface.
//
// This package provides commands for listing the button-size catalog,
// computing and rendering print layouts, interactively placing artwork,
// calibrating for printer scaling error, and managing the artifact
// cache. The CLI is built using cobra and supports verbose logging via
// the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - sizes: List available button sizes and per-page counts
//   - layout: Compute a print layout and optionally export it as JSON
//   - render: Generate SVG, PDF, or PNG print sheets
//   - preview: Interactively position artwork inside a button
//   - calibrate: Print a test sheet and store the measured scale factor
//   - cache: Manage the rendered artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pinpress/pinpress/pkg/buildinfo"
	"github.com/pinpress/pinpress/pkg/cache"
	"github.com/pinpress/pinpress/pkg/pipeline"
	"github.com/pinpress/pinpress/pkg/prefs"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "pinpress"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "pinpress",
		Short:        "Pinpress lays out button artwork on printable sheets",
		Long:         `Pinpress is a CLI tool for pin-back button makers: it places artwork inside standard button templates, packs as many buttons as fit onto a page, and renders print-ready sheets with cut lines and safe-area guides.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.sizesCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.calibrateCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Preferences
// =============================================================================

// prefsStore opens the preference store at the standard config location.
func prefsStore() (*prefs.Store, error) {
	return prefs.DefaultStore(appName)
}

// storedFactor returns the calibration factor from preferences, falling
// back to the identity factor when the store is unreachable.
func storedFactor() float64 {
	store, err := prefsStore()
	if err != nil {
		return 1.0
	}
	return store.Factor()
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/pinpress/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
