package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/slantgrid/pkg/config"
	"github.com/matzehuels/slantgrid/pkg/errors"
	"github.com/matzehuels/slantgrid/pkg/pipeline"
)

// renderFlags holds the command-line flags for the render command.
// Only flags the user actually set override values from --config.
type renderFlags struct {
	output      string  // output file path (or base path for multiple outputs)
	formats     string  // comma-separated output formats
	config      string  // optional TOML config file
	width       int     // canvas width in pixels
	height      int     // canvas height in pixels
	seed        uint64  // random seed, 0 picks one
	strokeWidth float64 // line width in canvas pixels
	strokeColor string  // hex stroke color
	background  string  // hex background color, empty for transparent
	scale       float64 // PNG pixels per canvas pixel
}

// renderCommand creates the render command for writing drawings to files.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a drawing to SVG, PNG, PDF, or JSON",
		Long: `Render generates one drawing and writes it in every requested format.

With a single format, --output names the file. With several, --output is a
base path and each file gets its format's extension. Without --output, files
are named slantgrid-<seed>.<format> in the current directory.`,
		Example: `  slantgrid render
  slantgrid render --seed 42 -f svg,png -o out/grid
  slantgrid render --config slantgrid.toml --width 1920`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(cmd, &flags)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts, flags.output)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&flags.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVarP(&flags.config, "config", "c", "", "TOML config file; flags override its values")
	cmd.Flags().IntVar(&flags.width, "width", pipeline.DefaultWidth, "canvas width in pixels")
	cmd.Flags().IntVar(&flags.height, "height", pipeline.DefaultHeight, "canvas height in pixels")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().Float64Var(&flags.strokeWidth, "stroke-width", 0, "line width in pixels (default 1)")
	cmd.Flags().StringVar(&flags.strokeColor, "stroke-color", "", "line color as hex, e.g. #222 (default #000000)")
	cmd.Flags().StringVar(&flags.background, "background", "", "background color as hex (default transparent)")
	cmd.Flags().Float64Var(&flags.scale, "scale", 0, "PNG pixels per canvas pixel (default 2)")

	return cmd
}

// resolveOptions loads the config file (if any) and applies the flags the
// user set on top of it.
func resolveOptions(cmd *cobra.Command, flags *renderFlags) (pipeline.Options, error) {
	var opts pipeline.Options
	if flags.config != "" {
		var err error
		if opts, err = config.Load(flags.config); err != nil {
			return pipeline.Options{}, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("width") {
		opts.Width = flags.width
	}
	if changed("height") {
		opts.Height = flags.height
	}
	if changed("seed") {
		opts.Seed = flags.seed
	}
	if changed("format") {
		formats, err := pipeline.ParseFormats(flags.formats)
		if err != nil {
			return pipeline.Options{}, err
		}
		opts.Formats = formats
	}
	if changed("stroke-width") {
		opts.StrokeWidth = flags.strokeWidth
	}
	if changed("stroke-color") {
		opts.StrokeColor = flags.strokeColor
	}
	if changed("background") {
		opts.Background = flags.background
	}
	if changed("scale") {
		opts.Scale = flags.scale
	}

	if opts.Width == 0 && changed("width") || opts.Height == 0 && changed("height") {
		return pipeline.Options{}, errors.ValidateDimensions(opts.Width, opts.Height)
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return pipeline.Options{}, err
	}
	return opts, nil
}

// runRender generates one drawing and writes every artifact to disk.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	if output != "" {
		if err := errors.ValidateOutputPath(output); err != nil {
			return err
		}
	}

	result, err := c.newRunner().Render(ctx, opts)
	if err != nil {
		return err
	}

	paths := outputPaths(output, result.Seed, opts.Formats)
	for _, format := range opts.Formats {
		path := paths[format]
		if err := writeFile(path, result.Artifacts[format]); err != nil {
			return err
		}
		logger.Debugf("Wrote %s: %d bytes", path, len(result.Artifacts[format]))
	}
	prog.done(fmt.Sprintf("Wrote %d file(s)", len(paths)))

	printSuccess("Rendered %dx%d drawing", opts.Width, opts.Height)
	printStats(result.Stats.Rows, result.Stats.Cells, result.Seed)
	for _, format := range opts.Formats {
		printFile(paths[format])
	}
	return nil
}

// outputPaths maps each format to its file path.
// A single format uses output verbatim; several formats share basePath(output).
func outputPaths(output string, seed uint64, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, seed)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// basePath derives the base output path. If output is empty, the seed names
// the file. If output has a format extension (.svg, .png, ...), it is stripped.
func basePath(output string, seed uint64) string {
	if output == "" {
		return fmt.Sprintf("%s-%d", appName, seed)
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeFile writes data to path, creating parent directories as needed.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
