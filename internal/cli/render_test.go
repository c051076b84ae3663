package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/slantgrid/pkg/errors"
	"github.com/matzehuels/slantgrid/pkg/observability"
	"github.com/matzehuels/slantgrid/pkg/pipeline"
)

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		seed   uint64
		want   string
	}{
		{"empty uses seed", "", 42, "slantgrid-42"},
		{"strips svg", "out/grid.svg", 1, "out/grid"},
		{"strips png", "grid.png", 1, "grid"},
		{"keeps unknown ext", "grid.v2", 1, "grid.v2"},
		{"no ext", "out/grid", 1, "out/grid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.seed); got != tt.want {
				t.Errorf("basePath(%q, %d) = %q, want %q", tt.output, tt.seed, got, tt.want)
			}
		})
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		formats []string
		want    map[string]string
	}{
		{
			name:    "single format keeps output",
			output:  "drawing.out",
			formats: []string{"svg"},
			want:    map[string]string{"svg": "drawing.out"},
		},
		{
			name:    "single format default name",
			formats: []string{"png"},
			want:    map[string]string{"png": "slantgrid-7.png"},
		},
		{
			name:    "multiple formats share base",
			output:  "out/grid.svg",
			formats: []string{"svg", "json"},
			want:    map[string]string{"svg": "out/grid.svg", "json": "out/grid.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPaths(tt.output, 7, tt.formats)
			if len(got) != len(tt.want) {
				t.Fatalf("outputPaths = %v, want %v", got, tt.want)
			}
			for f, p := range tt.want {
				if got[f] != p {
					t.Errorf("outputPaths[%s] = %q, want %q", f, got[f], p)
				}
			}
		})
	}
}

func TestResolveOptionsConfigAndFlags(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "slantgrid.toml")
	if err := os.WriteFile(cfg, []byte("width = 1000\nheight = 700\nstroke_color = \"#333\"\nformats = [\"png\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New(io.Discard, LogInfo)
	cmd := c.renderCommand()
	if err := cmd.ParseFlags([]string{"--config", cfg, "--height", "250", "-f", "svg,json"}); err != nil {
		t.Fatal(err)
	}

	var flags renderFlags
	flags.config = cfg
	flags.height = 250
	flags.formats = "svg,json"
	flags.width = pipeline.DefaultWidth

	opts, err := resolveOptions(cmd, &flags)
	if err != nil {
		t.Fatalf("resolveOptions: %v", err)
	}

	if opts.Width != 1000 {
		t.Errorf("Width = %d, want 1000 from config (flag not set)", opts.Width)
	}
	if opts.Height != 250 {
		t.Errorf("Height = %d, want 250 from flag", opts.Height)
	}
	if opts.StrokeColor != "#333" {
		t.Errorf("StrokeColor = %q, want #333 from config", opts.StrokeColor)
	}
	if !slices.Equal(opts.Formats, []string{"svg", "json"}) {
		t.Errorf("Formats = %v, want [svg json]", opts.Formats)
	}
}

func TestResolveOptionsRejectsUnknownConfigKeys(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(cfg, []byte("max_rows = 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := New(io.Discard, LogInfo).renderCommand()
	_, err := resolveOptions(cmd, &renderFlags{config: cfg})
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("want INVALID_CONFIG, got %v", err)
	}
}

func TestRunRenderMultipleFormats(t *testing.T) {
	t.Cleanup(observability.Reset)

	dir := t.TempDir()
	c := &CLI{Logger: log.New(io.Discard)}
	opts := pipeline.Options{Seed: 5, Formats: []string{"svg", "json", "png"}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}

	ctx := withLogger(context.Background(), c.Logger)
	if err := c.runRender(ctx, opts, filepath.Join(dir, "nested", "grid")); err != nil {
		t.Fatalf("runRender: %v", err)
	}

	for _, name := range []string{"grid.svg", "grid.json", "grid.png"} {
		info, err := os.Stat(filepath.Join(dir, "nested", name))
		if err != nil {
			t.Errorf("missing %s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestRunRenderRejectsBadOutputPath(t *testing.T) {
	c := &CLI{Logger: log.New(io.Discard)}
	opts := pipeline.Options{Seed: 1}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	err := c.runRender(context.Background(), opts, "bad\x00name.svg")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("want INVALID_INPUT, got %v", err)
	}
}
