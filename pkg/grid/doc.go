// Package grid generates and draws the slanted grid.
//
// # Layout
//
// A drawing is a stack of rows. The row count is sampled uniformly from
// [MinRows, MaxRows]. Each row gets a height close to an even split of the
// height still left, within ±20% of it ([CalculateRowHeight]). The last row
// takes whatever remains, so the rows always cover the canvas exactly.
//
// Every row then samples an angle from a skewed normal distribution over
// [MinAngle, MaxAngle]. The angle fixes the row's column width:
//
//	width = tan(angle) * rowHeight
//
// Column cells of that width are laid side by side from x=0 until the canvas
// width is reached. The last cell may overhang the right edge.
//
// # Drawing
//
// [Draw] strokes, in order: the canvas border, then for every row its bottom
// boundary and for every cell
//
//   - the diagonal from the cell's top-left to its bottom-right corner
//   - a short tick perpendicular to that diagonal at its midpoint
//   - a short tick hanging down from the middle of the cell's top edge
//   - a short tick rising from the middle of the cell's bottom edge
//
// [Render] is the one-call driver: it reads the surface size, generates a
// [Layout] and draws it.
//
// # Degenerate rows
//
// When fewer pixels are left than rows, a row may get zero height. Its
// column width is then zero, so the row keeps its boundary line but has no
// cells. Any non-positive or non-finite column width is treated the same.
package grid
