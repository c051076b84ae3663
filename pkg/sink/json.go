package sink

import (
	"encoding/json"

	"github.com/matzehuels/slantgrid/pkg/grid"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	id   string
	seed uint64
}

// WithJSONID records the drawing ID.
func WithJSONID(id string) JSONOption { return func(r *jsonRenderer) { r.id = id } }

// WithJSONSeed records the seed the layout was generated from, so the
// drawing can be regenerated.
func WithJSONSeed(seed uint64) JSONOption { return func(r *jsonRenderer) { r.seed = seed } }

type jsonOutput struct {
	ID      string    `json:"id,omitempty"`
	Seed    uint64    `json:"seed"`
	Width   float64   `json:"width"`
	Height  float64   `json:"height"`
	Cells   int       `json:"cells"`
	Strokes int       `json:"strokes"`
	Rows    []jsonRow `json:"rows"`
}

type jsonRow struct {
	Index       int     `json:"index"`
	Top         int     `json:"top"`
	Height      int     `json:"height"`
	Angle       int     `json:"angle"`
	ColumnWidth float64 `json:"column_width"`
	Cells       int     `json:"cells"`
}

// RenderJSON exports the layout as a pretty-printed JSON document. Cells are
// summarized per row; their positions follow from column_width.
func RenderJSON(l grid.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		ID:      r.id,
		Seed:    r.seed,
		Width:   l.Width,
		Height:  l.Height,
		Cells:   l.CellCount(),
		Strokes: l.StrokeCount(),
		Rows:    make([]jsonRow, 0, len(l.Rows)),
	}
	for _, row := range l.Rows {
		out.Rows = append(out.Rows, jsonRow{
			Index:       row.Index,
			Top:         row.Top,
			Height:      row.Height,
			Angle:       row.Angle,
			ColumnWidth: row.ColumnWidth,
			Cells:       len(row.Cells),
		})
	}
	return json.MarshalIndent(out, "", "  ")
}
