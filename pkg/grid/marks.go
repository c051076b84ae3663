package grid

import "github.com/matzehuels/slantgrid/pkg/canvas"

// DrawMark strokes a MarkLength tick perpendicular to from→to, centered on
// its midpoint. Ticks run left to right. A vertical or zero-length segment
// gets a horizontal tick.
func DrawMark(s canvas.Surface, from, to canvas.Point) {
	mid := from.Add(to).Mul(0.5)

	n := canvas.Pt(1, 0)
	d := to.Sub(from)
	if l := d.Length(); l > 0 {
		n = canvas.Pt(-d.Y/l, d.X/l)
	}
	if n.X < 0 || (n.X == 0 && n.Y < 0) {
		n = n.Mul(-1)
	}

	half := n.Mul(MarkLength / 2)
	canvas.DrawLine(s, mid.Sub(half), mid.Add(half))
}

// DrawVerticalMarkUp strokes a MarkLength tick from the midpoint of from→to
// downward on screen (+y). It marks the top edge of a cell.
func DrawVerticalMarkUp(s canvas.Surface, from, to canvas.Point) {
	mid := from.Add(to).Mul(0.5)
	canvas.DrawLine(s, mid, mid.Add(canvas.Pt(0, MarkLength)))
}

// DrawVerticalMarkDown strokes a MarkLength tick from the midpoint of from→to
// upward on screen (-y). It marks the bottom edge of a cell.
func DrawVerticalMarkDown(s canvas.Surface, from, to canvas.Point) {
	mid := from.Add(to).Mul(0.5)
	canvas.DrawLine(s, mid, mid.Sub(canvas.Pt(0, MarkLength)))
}
