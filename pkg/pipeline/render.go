package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/slantgrid/pkg/canvas"
	"github.com/matzehuels/slantgrid/pkg/errors"
	"github.com/matzehuels/slantgrid/pkg/grid"
	"github.com/matzehuels/slantgrid/pkg/random"
	"github.com/matzehuels/slantgrid/pkg/sink"
)

// Drawing is a recorded grid ready to be rendered into output formats.
type Drawing struct {
	ID        string
	Seed      uint64
	Layout    grid.Layout
	Recording *canvas.Recorder
}

// Draw generates a layout from seed and strokes it into a fresh recorder
// sized width×height.
func Draw(id string, seed uint64, width, height int) Drawing {
	rec := canvas.NewRecorder(float64(width), float64(height))
	l := grid.Render(rec, random.New(seed), grid.DefaultConfig())
	return Drawing{ID: id, Seed: seed, Layout: l, Recording: rec}
}

// Render replays d into every format in opts.Formats.
func Render(ctx context.Context, d Drawing, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	var svg []byte
	svgDoc := func() []byte {
		if svg == nil {
			s := sink.NewSVG(sink.WithStyle(opts.Style()), sink.WithID(d.ID))
			d.Recording.Replay(s)
			svg = s.Bytes()
		}
		return svg
	}

	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = svgDoc()
		case FormatPNG:
			p := sink.NewPNG(sink.WithPNGStyle(opts.Style()), sink.WithScale(opts.Scale))
			d.Recording.Replay(p)
			data, err = p.Bytes()
		case FormatPDF:
			data, err = sink.ToPDF(ctx, svgDoc())
		case FormatJSON:
			data, err = sink.RenderJSON(d.Layout, sink.WithJSONID(d.ID), sink.WithJSONSeed(d.Seed))
		default:
			err = errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
