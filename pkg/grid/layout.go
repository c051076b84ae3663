package grid

import (
	"math"

	"github.com/matzehuels/slantgrid/pkg/random"
)

// Layout is a generated grid, ready to draw.
type Layout struct {
	Width, Height float64
	Rows          []Row
}

// CellCount returns the total number of column cells over all rows.
func (l Layout) CellCount() int {
	n := 0
	for _, r := range l.Rows {
		n += len(r.Cells)
	}
	return n
}

// StrokeCount returns how many strokes [Draw] issues for l: the border, one
// boundary per row and four strokes per cell.
func (l Layout) StrokeCount() int {
	return 1 + len(l.Rows) + 4*l.CellCount()
}

// Row is one horizontal band of the grid, spanning [Top, Top+Height).
type Row struct {
	Index       int
	Top         int
	Height      int
	Angle       int     // degrees
	ColumnWidth float64 // tan(Angle) * Height
	Cells       []Cell
}

// Bottom returns the y coordinate of the row's lower boundary.
func (r Row) Bottom() int { return r.Top + r.Height }

// Cell is one slanted column cell, spanning [Left, Left+Width) horizontally.
type Cell struct {
	Left, Width float64
}

// Right returns the x coordinate of the cell's right edge.
func (c Cell) Right() float64 { return c.Left + c.Width }

// CalculateRowHeight picks the height of the next row.
//
// With one row left it returns heightLeft, so the rows always add up to the
// canvas height. Otherwise it returns a uniform integer in
// [floor(0.8*avg), floor(1.2*avg)], where avg = floor(heightLeft/rowsLeft).
// If avg is 0 the result is 0.
func CalculateRowHeight(rng *random.Source, heightLeft, rowsLeft int) int {
	if rowsLeft == 1 {
		return heightLeft
	}
	avg := heightLeft / rowsLeft
	lo := int(float64(avg) * 0.8)
	hi := int(float64(avg) * 1.2)
	return rng.IntBetween(lo, hi)
}

// ColumnWidth returns tan(angle) * rowHeight for an angle in degrees.
func ColumnWidth(angle, rowHeight int) float64 {
	return math.Tan(float64(angle)/180*math.Pi) * float64(rowHeight)
}

// NewRow builds a row and lays out its cells across canvasWidth. A row whose
// column width is not a positive finite number gets no cells.
func NewRow(index, top, height, angle int, canvasWidth float64) Row {
	r := Row{
		Index:       index,
		Top:         top,
		Height:      height,
		Angle:       angle,
		ColumnWidth: ColumnWidth(angle, height),
	}
	w := r.ColumnWidth
	if !(w > 0) || math.IsInf(w, 1) {
		return r
	}
	for x := 0.0; x < canvasWidth; x += w {
		r.Cells = append(r.Cells, Cell{Left: x, Width: w})
	}
	return r
}

// Generate samples a layout for a width×height canvas. Fractional sizes are
// truncated to whole pixels for the row split.
//
// Random draws happen in a fixed order: the row count, then for each row its
// height followed by its angle. A given seed therefore always yields the same
// layout.
func Generate(rng *random.Source, cfg Config, width, height float64) Layout {
	l := Layout{Width: width, Height: height}
	canvasHeight := int(height)

	rows := max(rng.IntBetween(cfg.MinRows, cfg.MaxRows), 1)
	l.Rows = make([]Row, 0, rows)

	current := 0
	for i := range rows {
		rowHeight := CalculateRowHeight(rng, canvasHeight-current, rows-i)
		angle := rng.IntBetweenNormal(cfg.MinAngle, cfg.MaxAngle, cfg.ColsSkew)
		l.Rows = append(l.Rows, NewRow(i, current, rowHeight, angle, width))
		current += rowHeight
	}
	return l
}
