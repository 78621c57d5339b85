// Package cli implements the seedsketch command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/seedsketch/seedsketch/pkg/buildinfo"
	"github.com/seedsketch/seedsketch/pkg/config"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for the command tree and display.
const appName = "seedsketch"

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
	Config config.Config
}

// New creates a CLI instance with a logger writing to w and the layered
// configuration resolved. Command flags take their defaults from the resolved
// configuration, so a malformed file or environment is rejected here, before
// any command parses flags.
func New(w io.Writer, level log.Level) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return &CLI{
		Logger: newLogger(w, level),
		Config: cfg,
	}, nil
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The CLI's logger is attached to the command context, so subcommands and the
// code they call can retrieve it with loggerFromContext.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Seedsketch renders seed-reproducible generative sketches",
		Long:          `Seedsketch is a CLI tool for rendering generative sketches whose output is a pure function of a seed, so any artifact can be recreated byte for byte from the seed in its filename.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.liveCommand())
	root.AddCommand(c.galleryCommand())
	root.AddCommand(c.sketchesCommand())
	root.AddCommand(c.cleanCommand())
	root.AddCommand(c.completionCommand())

	return root
}
