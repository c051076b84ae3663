package canvas

import (
	"slices"

	"seehuhn.de/go/geom/path"
)

// Recorder is a Surface that keeps every stroked path in memory.
//
// The pipeline draws once into a Recorder and then replays the recording into
// each output format, so all formats show the same random layout.
type Recorder struct {
	width, height float64
	current       *path.Data
	strokes       []*path.Data
}

// NewRecorder returns an empty recorder with the given size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) SetSize(width, height float64) { r.width, r.height = width, height }

func (r *Recorder) Size() (float64, float64) { return r.width, r.height }

func (r *Recorder) BeginPath() { r.current = &path.Data{} }

func (r *Recorder) MoveTo(p Point) { r.current = r.path().MoveTo(p) }

func (r *Recorder) LineTo(p Point) { r.current = r.path().LineTo(p) }

func (r *Recorder) Rect(origin Point, width, height float64) {
	r.current = r.path().
		MoveTo(origin).
		LineTo(Pt(origin.X+width, origin.Y)).
		LineTo(Pt(origin.X+width, origin.Y+height)).
		LineTo(Pt(origin.X, origin.Y+height)).
		Close()
}

// ClosePath closes the current subpath.
func (r *Recorder) ClosePath() { r.current = r.path().Close() }

// Stroke records a snapshot of the current path. The path stays current,
// as on a canvas context, until the next BeginPath.
func (r *Recorder) Stroke() {
	p := r.path()
	r.strokes = append(r.strokes, &path.Data{
		Cmds:   slices.Clone(p.Cmds),
		Coords: slices.Clone(p.Coords),
	})
}

func (r *Recorder) path() *path.Data {
	if r.current == nil {
		r.current = &path.Data{}
	}
	return r.current
}

// Strokes returns the recorded paths in drawing order.
func (r *Recorder) Strokes() []*path.Data { return r.strokes }

// Len returns the number of recorded strokes.
func (r *Recorder) Len() int { return len(r.strokes) }

// Segment is a stroked path consisting of exactly one straight line.
type Segment struct {
	From, To Point
}

// Length returns the euclidean length of the segment.
func (s Segment) Length() float64 { return s.To.Sub(s.From).Length() }

// Midpoint returns the point halfway between From and To.
func (s Segment) Midpoint() Point { return s.From.Add(s.To).Mul(0.5) }

// Segments returns every recorded stroke that is a single line segment.
// Rectangles and multi-segment paths are skipped.
func (r *Recorder) Segments() []Segment {
	var segs []Segment
	for _, p := range r.strokes {
		if len(p.Cmds) == 2 && p.Cmds[0] == path.CmdMoveTo && p.Cmds[1] == path.CmdLineTo {
			segs = append(segs, Segment{From: p.Coords[0], To: p.Coords[1]})
		}
	}
	return segs
}

// Replay sizes dst like the recorder and re-issues every recorded stroke.
// Closed subpaths are closed with dst.ClosePath when dst implements
// [PathCloser], and with a line back to the subpath start otherwise.
func (r *Recorder) Replay(dst Surface) {
	dst.SetSize(r.width, r.height)
	closer, canClose := dst.(PathCloser)

	for _, p := range r.strokes {
		dst.BeginPath()
		var start Point
		i := 0
		for _, cmd := range p.Cmds {
			switch cmd {
			case path.CmdMoveTo:
				start = p.Coords[i]
				dst.MoveTo(start)
				i++
			case path.CmdLineTo:
				dst.LineTo(p.Coords[i])
				i++
			case path.CmdQuadTo:
				// Flattened to the end point; slantgrid never records curves.
				dst.LineTo(p.Coords[i+1])
				i += 2
			case path.CmdCubeTo:
				dst.LineTo(p.Coords[i+2])
				i += 3
			case path.CmdClose:
				if canClose {
					closer.ClosePath()
				} else {
					dst.LineTo(start)
				}
			}
		}
		dst.Stroke()
	}
}

var _ Surface = (*Recorder)(nil)
