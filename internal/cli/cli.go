// Package cli implements the roomforge command-line interface.
//
// This package provides commands for generating furniture layout plans from
// room descriptions, rendering conditioning and floorplan images, validating
// generated images against plans, and inspecting the built-in furniture
// catalogs. The CLI is built using cobra and supports verbose logging via
// the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Produce a layout plan and images from a room description
//   - validate: Score a generated image against its layout plan
//   - catalog: Show the built-in furniture catalogs
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The shared
// logger lives on the CLI struct and is injected into the layout engine.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/roomforge/roomforge/pkg/buildinfo"
)

// appName is the application name used for display and file defaults.
const appName = "roomforge"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Roomforge plans and validates room furniture layouts",
		Long:         `Roomforge is a CLI tool for generating spatially consistent furniture layout plans from room dimensions, rendering them as control images, and validating generated room images against those plans.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.completionCommand())

	return root
}
