package sink

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/slantgrid/pkg/canvas"
)

// SVGOption configures an [SVG] sink.
type SVGOption func(*SVG)

// WithStyle sets the stroke and background styling.
func WithStyle(s Style) SVGOption { return func(r *SVG) { r.style = s } }

// WithID records a drawing ID on the root element as data-id.
func WithID(id string) SVGOption { return func(r *SVG) { r.id = id } }

// SVG is a Surface that writes an SVG document.
type SVG struct {
	style         Style
	id            string
	width, height float64
	d             strings.Builder // current path data
	body          bytes.Buffer
	strokes       int
}

// NewSVG returns an empty SVG sink.
func NewSVG(opts ...SVGOption) *SVG {
	r := &SVG{}
	for _, opt := range opts {
		opt(r)
	}
	r.style = r.style.withDefaults()
	return r
}

func (r *SVG) SetSize(width, height float64) { r.width, r.height = width, height }

func (r *SVG) Size() (float64, float64) { return r.width, r.height }

func (r *SVG) BeginPath() { r.d.Reset() }

func (r *SVG) MoveTo(p canvas.Point) { r.cmd("M", p.X, p.Y) }

func (r *SVG) LineTo(p canvas.Point) { r.cmd("L", p.X, p.Y) }

func (r *SVG) Rect(origin canvas.Point, width, height float64) {
	r.cmd("M", origin.X, origin.Y)
	r.cmd("h", width)
	r.cmd("v", height)
	r.cmd("h", -width)
	r.ClosePath()
}

func (r *SVG) ClosePath() { r.cmd("Z") }

// Stroke emits the current path as one <path> element.
func (r *SVG) Stroke() {
	if r.d.Len() == 0 {
		return
	}
	fmt.Fprintf(&r.body, "    <path d=\"%s\"/>\n", r.d.String())
	r.strokes++
}

// Strokes returns the number of emitted <path> elements.
func (r *SVG) Strokes() int { return r.strokes }

func (r *SVG) cmd(op string, args ...float64) {
	if r.d.Len() > 0 {
		r.d.WriteByte(' ')
	}
	r.d.WriteString(op)
	for i, a := range args {
		if i > 0 {
			r.d.WriteByte(' ')
		}
		r.d.WriteString(fmtNum(a))
	}
}

// Bytes returns the complete document.
func (r *SVG) Bytes() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s"`,
		fmtNum(r.width), fmtNum(r.height), fmtNum(r.width), fmtNum(r.height))
	if r.id != "" {
		fmt.Fprintf(&buf, ` data-id="%s"`, r.id)
	}
	buf.WriteString(">\n")

	if r.style.Background != "" {
		fmt.Fprintf(&buf, "  <rect width=\"100%%\" height=\"100%%\" fill=\"%s\"/>\n", r.style.Background)
	}
	fmt.Fprintf(&buf, "  <g fill=\"none\" stroke=\"%s\" stroke-width=\"%s\">\n",
		r.style.StrokeColor, fmtNum(r.style.StrokeWidth))
	buf.Write(r.body.Bytes())
	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}

// fmtNum prints v with at most two decimals and no trailing zeros.
func fmtNum(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var _ canvas.Surface = (*SVG)(nil)
