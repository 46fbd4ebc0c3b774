package preview

import (
	"errors"
	"fmt"

	"git.sr.ht/~gioverse/draw9/textlayout"
)

// ErrInvalidConfig reports a configuration value out of range.
var ErrInvalidConfig = errors.New("preview: invalid config")

// Scale bounds of the stretched views.
const (
	MinScale     float32 = 2.0
	MaxScale     float32 = 6.0
	DefaultScale float32 = 2.0
)

// Config holds the inputs of a surface other than the image and its
// partition.
type Config struct {
	// Scale multiplies the interior size along stretched axes.
	Scale float32
	// Text drawn inside the content box. `\n` sequences break lines.
	Text string
	// FontName selects a font of the surface's library.
	FontName string
	// FontSize in pixels.
	FontSize int
	// HorizontalGravity and VerticalGravity anchor the text in the content
	// box.
	HorizontalGravity textlayout.Gravity
	VerticalGravity   textlayout.Gravity
	// ShowText draws the text.
	ShowText bool
	// ShowPadding tints the content box.
	ShowPadding bool
	// ShowPatches tints the stretched cells.
	ShowPatches bool
}

// DefaultConfig returns the configuration a fresh preview starts with.
func DefaultConfig() Config {
	return Config{
		Scale:    DefaultScale,
		FontName: textlayout.Regular,
		FontSize: textlayout.DefaultFontSize,
		ShowText: true,
	}
}

// Validate reports the first out of range value.
func (c Config) Validate() error {
	switch {
	case c.Scale < MinScale || c.Scale > MaxScale:
		return fmt.Errorf("%w: scale %.2f outside [%.1f, %.1f]", ErrInvalidConfig, c.Scale, MinScale, MaxScale)
	case c.FontName == "":
		return fmt.Errorf("%w: no font", ErrInvalidConfig)
	case c.FontSize < textlayout.MinFontSize || c.FontSize > textlayout.MaxFontSize:
		return fmt.Errorf("%w: font size %d outside [%d, %d]", ErrInvalidConfig, c.FontSize, textlayout.MinFontSize, textlayout.MaxFontSize)
	case c.HorizontalGravity > textlayout.Trailing:
		return fmt.Errorf("%w: horizontal gravity %v", ErrInvalidConfig, c.HorizontalGravity)
	case c.VerticalGravity > textlayout.Trailing:
		return fmt.Errorf("%w: vertical gravity %v", ErrInvalidConfig, c.VerticalGravity)
	}
	return nil
}

// ClampScale bounds s to the supported scale range.
func ClampScale(s float32) float32 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}
