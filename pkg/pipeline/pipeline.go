// Package pipeline provides the drawing pipeline for slantgrid.
//
// This package implements the generate → draw → render pipeline shared by the
// render command and the HTTP server. Both entry points build an [Options]
// value and hand it to a [Runner], so a drawing produced by either one is
// identical for the same options and seed.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Generate: Sample row heights and column angles from a seeded source
//  2. Draw: Stroke the grid once into an in-memory canvas.Recorder
//  3. Render: Replay the recording into each requested format (SVG, PNG, PDF, JSON)
//
// The layout is drawn exactly once; every output format is a replay of the
// same recording.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Width:   1200,
//	    Height:  800,
//	    Seed:    7,
//	    Formats: []string{"svg", "png"},
//	}
//	result, err := runner.Render(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// A zero Seed asks the runner to pick one from the clock. The chosen seed is
// reported in [Result.Seed] so the drawing can be regenerated.
package pipeline

import (
	"math"
	"strings"
	"time"

	"github.com/matzehuels/slantgrid/pkg/errors"
	"github.com/matzehuels/slantgrid/pkg/grid"
	"github.com/matzehuels/slantgrid/pkg/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 800

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 600

	// DefaultFormat is the output format used when none is requested.
	DefaultFormat = FormatSVG

	// MaxScale is the largest PNG scale factor. PNG output is further bounded
	// by errors.MaxRasterPixels.
	MaxScale = 16

	// MaxStrokeWidth is the largest accepted line width in canvas pixels.
	MaxStrokeWidth = 1000
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ContentTypes maps each format to its MIME type.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
	FormatJSON: "application/json",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one drawing.
// It decodes from JSON request bodies and from TOML config files.
//
// Options only affect the output surface. The layout ranges (row counts,
// angles, skew) are fixed by [grid.DefaultConfig].
type Options struct {
	Width   int      `json:"width" toml:"width"`
	Height  int      `json:"height" toml:"height"`
	Seed    uint64   `json:"seed,omitempty" toml:"seed"` // 0 = derive from the clock
	Formats []string `json:"formats,omitempty" toml:"formats"`

	// Style options
	StrokeWidth float64 `json:"stroke_width,omitempty" toml:"stroke_width"`
	StrokeColor string  `json:"stroke_color,omitempty" toml:"stroke_color"`
	Background  string  `json:"background,omitempty" toml:"background"`
	Scale       float64 `json:"scale,omitempty" toml:"scale"` // PNG pixels per canvas pixel
}

// SetDefaults fills zero-valued fields with their defaults.
func (o *Options) SetDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.StrokeWidth == 0 {
		o.StrokeWidth = sink.DefaultStrokeWidth
	}
	if o.StrokeColor == "" {
		o.StrokeColor = sink.DefaultStrokeColor
	}
	if o.Scale == 0 {
		o.Scale = sink.DefaultScale
	}
}

// Validate checks the options without modifying them.
func (o *Options) Validate() error {
	if err := errors.ValidateDimensions(o.Width, o.Height); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if !isFinite(o.StrokeWidth) || o.StrokeWidth < 0 || o.StrokeWidth > MaxStrokeWidth {
		return errors.New(errors.ErrCodeInvalidInput, "stroke width must be between 0 and %g, got %g", float64(MaxStrokeWidth), o.StrokeWidth)
	}
	if !isFinite(o.Scale) || o.Scale < 0 || o.Scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidDimensions, "scale must be between 0 and %g, got %g", float64(MaxScale), o.Scale)
	}
	if o.HasFormat(FormatPNG) {
		scale := o.Scale
		if scale == 0 {
			scale = sink.DefaultScale
		}
		if err := errors.ValidateRaster(o.Width, o.Height, scale); err != nil {
			return err
		}
	}
	if err := errors.ValidateColor(o.StrokeColor); err != nil {
		return err
	}
	return errors.ValidateColor(o.Background)
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// ValidateAndSetDefaults applies defaults, then validates.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	return o.Validate()
}

// Style returns the sink style described by the options.
func (o Options) Style() sink.Style {
	return sink.Style{
		StrokeWidth: o.StrokeWidth,
		StrokeColor: o.StrokeColor,
		Background:  o.Background,
	}
}

// HasFormat reports whether f is among the requested formats.
func (o Options) HasFormat(f string) bool {
	for _, v := range o.Formats {
		if v == f {
			return true
		}
	}
	return false
}

// ValidateFormat checks that a single format is supported.
func ValidateFormat(f string) error {
	if !ValidFormats[f] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be svg, png, pdf, or json)", f)
	}
	return nil
}

// ValidateFormats checks every format in fs.
func ValidateFormats(fs []string) error {
	for _, f := range fs {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, trimming blanks and
// dropping duplicates.
func ParseFormats(s string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		if err := ValidateFormat(f); err != nil {
			return nil, err
		}
		seen[f] = true
		out = append(out, f)
	}
	return out, nil
}

// =============================================================================
// Result - Pipeline Output
// =============================================================================

// Result holds the output of one pipeline run.
type Result struct {
	ID        string            // drawing ID, also embedded in SVG and JSON output
	Seed      uint64            // seed the layout was generated from
	Layout    grid.Layout       // generated layout
	Artifacts map[string][]byte // format -> bytes
	Stats     Stats
}

// Stats contains timing and size information for a pipeline run.
type Stats struct {
	LayoutTime time.Duration
	RenderTime time.Duration
	Rows       int
	Cells      int
	Strokes    int
}
