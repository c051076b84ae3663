package errors

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// MaxDimension is the largest accepted canvas width or height in pixels.
const MaxDimension = 16384

// ValidateDimensions checks that a canvas size is positive and bounded.
func ValidateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidDimensions, "canvas size must be positive, got %dx%d", width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return New(ErrCodeInvalidDimensions, "canvas size %dx%d exceeds %d pixels", width, height, MaxDimension)
	}
	return nil
}

// MaxRasterPixels is the largest raster (device pixels, width×height after
// scaling) the PNG sink may allocate: 256 MiB of RGBA.
const MaxRasterPixels = 8192 * 8192

// ValidateRaster checks that a width×height canvas rasterized at scale stays
// within MaxRasterPixels.
func ValidateRaster(width, height int, scale float64) error {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return New(ErrCodeInvalidDimensions, "raster scale must be a positive number, got %g", scale)
	}
	w := math.Ceil(float64(width) * scale)
	h := math.Ceil(float64(height) * scale)
	if w*h > MaxRasterPixels {
		return New(ErrCodeInvalidDimensions, "raster size %.0fx%.0f exceeds %d pixels", w, h, MaxRasterPixels)
	}
	return nil
}

// hexColorRegex matches #rgb, #rrggbb and #rrggbbaa: the forms both the SVG
// and PNG sinks understand.
var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// ValidateColor checks that c is a hex color such as "#000", "#1a2b3c" or
// "#1a2b3c80".
// The empty string is accepted and means "use the default".
func ValidateColor(c string) error {
	if c == "" {
		return nil
	}
	if !hexColorRegex.MatchString(c) {
		return New(ErrCodeInvalidColor, "invalid color %q (want #rgb, #rrggbb or #rrggbbaa)", c)
	}
	return nil
}

// ValidateOutputPath rejects empty paths and paths with control characters.
func ValidateOutputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output path contains invalid characters")
		}
	}
	return nil
}
