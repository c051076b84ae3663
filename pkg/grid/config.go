package grid

// Layout constants.
const (
	MinRows  = 5
	MaxRows  = 12
	ColsSkew = 2
	MinAngle = 20
	MaxAngle = 90

	// MarkLength is the length in pixels of every tick mark.
	MarkLength = 5.0
)

// MinCols and MaxCols bounded the column count before column widths were
// derived from angles. Nothing reads them.
const (
	MinCols = 7
	MaxCols = 20
)

// Config holds the sampling ranges used by [Generate].
type Config struct {
	MinRows, MaxRows   int
	MinAngle, MaxAngle int
	ColsSkew           float64
}

// DefaultConfig returns the package constants as a Config.
func DefaultConfig() Config {
	return Config{
		MinRows:  MinRows,
		MaxRows:  MaxRows,
		MinAngle: MinAngle,
		MaxAngle: MaxAngle,
		ColsSkew: ColsSkew,
	}
}
