package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/slantgrid/pkg/observability"
)

// Runner executes the pipeline and reports progress through its logger and
// the registered observability hooks.
//
// The Runner holds no per-drawing state. Multiple goroutines can safely use
// the same Runner with different options.
type Runner struct {
	Logger *log.Logger

	// Now is the clock used to pick seeds when Options.Seed is 0.
	Now func() time.Time
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger, Now: time.Now}
}

// Render runs the complete generate → draw → render pipeline.
func (r *Runner) Render(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	id := uuid.NewString()
	seed := opts.Seed
	if seed == 0 {
		seed = r.clockSeed()
		r.Logger.Debug("picked seed", "seed", seed)
	}

	hooks := observability.Render()
	hooks.OnRenderStart(ctx, id, opts.Formats)
	start := time.Now()

	result, err := r.execute(ctx, id, seed, opts)

	hooks.OnRenderComplete(ctx, id, opts.Formats, time.Since(start), err)
	return result, err
}

func (r *Runner) execute(ctx context.Context, id string, seed uint64, opts Options) (*Result, error) {
	result := &Result{ID: id, Seed: seed}

	// Stage 1+2: Generate and draw
	layoutStart := time.Now()
	d := Draw(id, seed, opts.Width, opts.Height)
	result.Layout = d.Layout
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.Rows = len(d.Layout.Rows)
	result.Stats.Cells = d.Layout.CellCount()
	result.Stats.Strokes = d.Recording.Len()

	observability.Render().OnLayoutComplete(ctx, id, result.Stats.Rows, result.Stats.Cells, result.Stats.LayoutTime)
	r.Logger.Info("generated layout",
		"seed", seed,
		"rows", result.Stats.Rows,
		"cells", result.Stats.Cells,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := Render(ctx, d, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// clockSeed derives a non-zero seed from the runner's clock.
func (r *Runner) clockSeed() uint64 {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	if s := uint64(now().UnixNano()); s != 0 {
		return s
	}
	return 1
}
