package sink

// Default stroke styling, matching a fresh canvas 2D context.
const (
	DefaultStrokeWidth = 1.0
	DefaultStrokeColor = "#000000"
)

// Style controls how strokes are painted. Zero fields fall back to the
// defaults; an empty Background leaves the drawing transparent.
type Style struct {
	StrokeWidth float64
	StrokeColor string
	Background  string
}

func (s Style) withDefaults() Style {
	if s.StrokeWidth <= 0 {
		s.StrokeWidth = DefaultStrokeWidth
	}
	if s.StrokeColor == "" {
		s.StrokeColor = DefaultStrokeColor
	}
	return s
}
