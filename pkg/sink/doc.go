// Package sink provides the output formats for slantgrid drawings.
//
// # Overview
//
// The drawable sinks implement [canvas.Surface], so a grid can be drawn
// straight into them or replayed from a [canvas.Recorder]:
//
//   - [SVG]: a standalone SVG document, one <path> per stroke
//   - [PNG]: a raster image drawn with fogleman/gg
//
// Two more sinks work from finished artifacts:
//
//   - [RenderJSON]: the generated [grid.Layout] as data (rows, angles, cells)
//   - [ToPDF]: converts SVG bytes to PDF via rsvg-convert
//
// # Styling
//
// Drawings use the host defaults of an HTML canvas unless told otherwise: a
// 1px black stroke on a transparent background. [Style] overrides these for
// both SVG and PNG.
//
// Basic usage:
//
//	svg := sink.NewSVG(sink.WithStyle(sink.Style{StrokeWidth: 2}))
//	rec.Replay(svg)
//	data := svg.Bytes()
//
// PDF output requires librsvg:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [canvas.Surface]: github.com/matzehuels/slantgrid/pkg/canvas.Surface
// [canvas.Recorder]: github.com/matzehuels/slantgrid/pkg/canvas.Recorder
// [grid.Layout]: github.com/matzehuels/slantgrid/pkg/grid.Layout
package sink
