package sink

import (
	"bytes"
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/slantgrid/pkg/canvas"
)

// DefaultScale renders PNGs at 2x resolution, as the SVG-based export did.
const DefaultScale = 2.0

// PNGOption configures a [PNG] sink.
type PNGOption func(*PNG)

// WithPNGStyle sets the stroke and background styling.
func WithPNGStyle(s Style) PNGOption { return func(r *PNG) { r.style = s } }

// WithScale sets the device pixels per drawing unit.
func WithScale(s float64) PNGOption { return func(r *PNG) { r.scale = s } }

// PNG is a Surface that rasterizes strokes with fogleman/gg.
// SetSize allocates the image, so it must be called before drawing.
type PNG struct {
	style         Style
	scale         float64
	width, height float64
	dc            *gg.Context
}

// NewPNG returns a PNG sink. It has no image until SetSize is called.
func NewPNG(opts ...PNGOption) *PNG {
	r := &PNG{scale: DefaultScale}
	for _, opt := range opts {
		opt(r)
	}
	if r.scale <= 0 {
		r.scale = DefaultScale
	}
	r.style = r.style.withDefaults()
	return r
}

// SetSize allocates a fresh image of width×height drawing units and clears
// it to the background color.
func (r *PNG) SetSize(width, height float64) {
	r.width, r.height = width, height
	w := max(int(math.Ceil(width*r.scale)), 1)
	h := max(int(math.Ceil(height*r.scale)), 1)

	r.dc = gg.NewContext(w, h)
	if r.style.Background != "" {
		r.dc.SetHexColor(r.style.Background)
		r.dc.Clear()
	}
	r.dc.Scale(r.scale, r.scale)
	r.dc.SetHexColor(r.style.StrokeColor)
	r.dc.SetLineWidth(r.style.StrokeWidth * r.scale)
	r.dc.SetLineCapButt()
}

func (r *PNG) Size() (float64, float64) { return r.width, r.height }

func (r *PNG) BeginPath() { r.context().ClearPath() }

func (r *PNG) MoveTo(p canvas.Point) { r.context().MoveTo(p.X, p.Y) }

func (r *PNG) LineTo(p canvas.Point) { r.context().LineTo(p.X, p.Y) }

func (r *PNG) Rect(origin canvas.Point, width, height float64) {
	r.context().DrawRectangle(origin.X, origin.Y, width, height)
}

func (r *PNG) ClosePath() { r.context().ClosePath() }

// Stroke paints the current path and keeps it, like a canvas context.
func (r *PNG) Stroke() { r.context().StrokePreserve() }

func (r *PNG) context() *gg.Context {
	if r.dc == nil {
		r.SetSize(r.width, r.height)
	}
	return r.dc
}

// Image returns the rendered image.
func (r *PNG) Image() image.Image { return r.context().Image() }

// Encode writes the image as PNG to w.
func (r *PNG) Encode(w io.Writer) error { return r.context().EncodePNG(w) }

// Bytes returns the PNG-encoded image.
func (r *PNG) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var _ canvas.Surface = (*PNG)(nil)
