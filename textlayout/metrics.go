package textlayout

import (
	"golang.org/x/image/font"
)

// Metrics measures text in whole pixels.
type Metrics interface {
	// Width of s when drawn on a single line.
	Width(s string) int
	// Ascent is the maximum distance from the baseline to the top of a glyph.
	Ascent() int
	// Descent is the maximum distance from the baseline to the bottom of a
	// glyph.
	Descent() int
	// LineHeight is the distance between consecutive baselines.
	LineHeight() int
}

// FaceMetrics measures text with a font face.
type FaceMetrics struct {
	font.Face
}

// Width implements Metrics.
func (f FaceMetrics) Width(s string) int {
	return font.MeasureString(f.Face, s).Round()
}

// Ascent implements Metrics.
func (f FaceMetrics) Ascent() int {
	return f.Face.Metrics().Ascent.Ceil()
}

// Descent implements Metrics.
func (f FaceMetrics) Descent() int {
	return f.Face.Metrics().Descent.Ceil()
}

// LineHeight implements Metrics.
func (f FaceMetrics) LineHeight() int {
	return f.Face.Metrics().Height.Ceil()
}
