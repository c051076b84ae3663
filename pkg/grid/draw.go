package grid

import (
	"github.com/matzehuels/slantgrid/pkg/canvas"
	"github.com/matzehuels/slantgrid/pkg/random"
)

// Draw strokes l onto s. It does not clear s first; drawing twice overlays
// the second grid on the first.
func Draw(s canvas.Surface, l Layout) {
	canvas.DrawRectangle(s, canvas.Pt(0, 0), canvas.Pt(l.Width, l.Height))

	for _, row := range l.Rows {
		top, bottom := float64(row.Top), float64(row.Bottom())
		canvas.DrawLine(s, canvas.Pt(0, bottom), canvas.Pt(l.Width, bottom))

		for _, c := range row.Cells {
			from, to := canvas.Pt(c.Left, top), canvas.Pt(c.Right(), bottom)
			canvas.DrawLine(s, from, to)
			DrawMark(s, from, to)
			DrawVerticalMarkUp(s, canvas.Pt(c.Left, top), canvas.Pt(c.Right(), top))
			DrawVerticalMarkDown(s, canvas.Pt(c.Left, bottom), canvas.Pt(c.Right(), bottom))
		}
	}
}

// Render generates a layout sized to s and draws it.
func Render(s canvas.Surface, rng *random.Source, cfg Config) Layout {
	w, h := s.Size()
	l := Generate(rng, cfg, w, h)
	Draw(s, l)
	return l
}
