// Package cli implements the splitpane command-line interface.
//
// The commands load pane groups from TOML manifests and run the layout
// engine over them: printing default layouts, repairing candidate layouts,
// applying single divider moves, and driving an interactive terminal view.
// The serve command exposes the same engine over HTTP.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The level
// otherwise comes from log.level in the config file. Loggers are passed
// through context.Context.
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    os.Exit(1)
//	}
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/splitpane/internal/config"
	"github.com/matzehuels/splitpane/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "splitpane"

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

	// Config is resolved before any subcommand runs.
	Config *config.Config

	configPath string
	verbose    bool
	out        io.Writer
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
		out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects command output, which defaults to stdout.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               appName,
		Short:             "Splitpane resizes groups of panes under size constraints",
		Long:              `Splitpane is a CLI tool for computing and exploring resizable pane layouts: groups of panes that share 100% of an axis, each bounded by minimum, maximum and collapsed sizes.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.out)

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: ./splitpane.toml, then the user config dir)")

	// Register all subcommands
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.normalizeCommand())
	root.AddCommand(c.adjustCommand())
	root.AddCommand(c.clampCommand())
	root.AddCommand(c.rangesCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config and attaches the logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	cfg, _, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)
	c.Logger.Debug("config loaded", "path", c.configPath, "level", level)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}
