package canvas

import "seehuhn.de/go/geom/vec"

// Point is a pixel coordinate. Values are created per call and never mutated.
type Point = vec.Vec2

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Surface is a 2D drawing target with a known pixel size.
//
// The path operations mirror a canvas rendering context: BeginPath discards
// the current path, MoveTo/LineTo/Rect extend it, and Stroke paints it with
// the surface's stroke style. A Surface is not safe for concurrent use.
type Surface interface {
	// SetSize sets the pixel dimensions of the surface.
	SetSize(width, height float64)
	// Size returns the pixel dimensions of the surface.
	Size() (width, height float64)
	// BeginPath starts a new, empty path.
	BeginPath()
	// MoveTo starts a new subpath at p.
	MoveTo(p Point)
	// LineTo adds a straight segment from the current point to p.
	LineTo(p Point)
	// Rect adds a closed rectangular subpath. Width and height may be negative.
	Rect(origin Point, width, height float64)
	// Stroke paints the current path.
	Stroke()
}

// PathCloser is implemented by surfaces that can close the current subpath.
// [Recorder.Replay] uses it to reproduce rectangles faithfully.
type PathCloser interface {
	ClosePath()
}

// DrawLine strokes the segment from → to.
func DrawLine(s Surface, from, to Point) {
	s.BeginPath()
	s.MoveTo(from)
	s.LineTo(to)
	s.Stroke()
}

// DrawRectangle strokes the outline of the axis-aligned rectangle with
// opposite corners from and to. If to lies left of or above from, the
// rectangle is drawn with negative extents; the outline is the same.
func DrawRectangle(s Surface, from, to Point) {
	s.BeginPath()
	s.Rect(from, to.X-from.X, to.Y-from.Y)
	s.Stroke()
}
