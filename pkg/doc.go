// Package pkg provides the core libraries for slantgrid drawings.
//
// # Overview
//
// slantgrid draws a grid of rows with random heights. Each row is cut into
// cells by diagonals at a random angle, and every cell boundary carries a
// small tick mark. The pkg directory is organized as:
//
//  1. [canvas] - The drawing surface contract and an in-memory recorder
//  2. [random] - Seeded uniform and skewed-normal samplers
//  3. [grid] - Layout generation and the grid/mark renderers
//  4. [sink] - Output surfaces (SVG, PNG) and exporters (PDF, JSON)
//  5. [pipeline] - Orchestration (generate → draw → render)
//
// Supporting packages: [config] (TOML files), [errors] (coded errors),
// [observability] (hooks), [buildinfo] (version stamping).
//
// # Architecture
//
// The data flow for one drawing:
//
//	seed
//	  ↓
//	[random] Source
//	  ↓
//	[grid] Generate (rows, angles, cells)
//	  ↓
//	[grid] Draw → [canvas] Recorder
//	  ↓
//	Replay → [sink] SVG / PNG, then PDF and JSON
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/slantgrid/pkg/grid"
//	    "github.com/matzehuels/slantgrid/pkg/random"
//	    "github.com/matzehuels/slantgrid/pkg/sink"
//	)
//
//	svg := sink.NewSVG()
//	svg.SetSize(1200, 800)
//	grid.Render(svg, random.New(42), grid.DefaultConfig())
//	os.WriteFile("grid.svg", svg.Bytes(), 0o644)
//
// Most callers use [pipeline.Runner], which does the same and also handles
// defaults, validation, multiple formats and logging.
//
// [canvas]: github.com/matzehuels/slantgrid/pkg/canvas
// [random]: github.com/matzehuels/slantgrid/pkg/random
// [grid]: github.com/matzehuels/slantgrid/pkg/grid
// [sink]: github.com/matzehuels/slantgrid/pkg/sink
// [pipeline]: github.com/matzehuels/slantgrid/pkg/pipeline
// [pipeline.Runner]: github.com/matzehuels/slantgrid/pkg/pipeline#Runner
// [config]: github.com/matzehuels/slantgrid/pkg/config
// [errors]: github.com/matzehuels/slantgrid/pkg/errors
// [observability]: github.com/matzehuels/slantgrid/pkg/observability
// [buildinfo]: github.com/matzehuels/slantgrid/pkg/buildinfo
package pkg
