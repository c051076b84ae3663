// Package canvas defines the drawing surface that slantgrid renders onto and
// the two geometry primitives every other drawing routine is built from.
//
// # Surface
//
// A [Surface] is the minimal 2D canvas contract: a pixel size plus the
// begin-path / move / line / rect / stroke operations of an HTML canvas
// context. Implementations live elsewhere:
//
//   - [Recorder]: in-memory recording, used by tests and by the pipeline
//   - sink.SVG: SVG document output
//   - sink.PNG: raster output through fogleman/gg
//
// Coordinates follow the screen convention: the origin is the top-left
// corner and y grows downward.
//
// # Primitives
//
// [DrawLine] strokes a single segment and [DrawRectangle] strokes the outline
// of an axis-aligned rectangle given two opposite corners:
//
//	canvas.DrawRectangle(s, canvas.Pt(0, 0), canvas.Pt(w, h))
//	canvas.DrawLine(s, canvas.Pt(0, y), canvas.Pt(w, y))
//
// Each call issues exactly one stroke.
package canvas
