package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/slantgrid/pkg/buildinfo"
	"github.com/matzehuels/slantgrid/pkg/observability"
	"github.com/matzehuels/slantgrid/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for file names and display.
	appName = "slantgrid"

	// defaultAddr is the default listen address for the serve command.
	defaultAddr = "localhost:8080"
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

// New creates a new CLI instance with a timestamped logger writing to w.
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
		Use:          appName,
		Short:        "slantgrid draws grids of randomly slanted cells",
		Long:         `slantgrid generates a procedural drawing: rows of random height, each cut into cells by diagonals at a random angle, annotated with small tick marks. Drawings render to SVG, PNG, PDF, or JSON and can be served over HTTP.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use and routes render hooks to
// the CLI logger.
func (c *CLI) newRunner() *pipeline.Runner {
	observability.SetRenderHooks(logHooks{logger: c.Logger})
	return pipeline.NewRunner(c.Logger)
}
