package textlayout

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// ErrFontUnavailable reports a font that cannot be loaded or is unknown.
var ErrFontUnavailable = errors.New("textlayout: font unavailable")

// Bundled font names.
const (
	Regular = "Go Regular"
	Bold    = "Go Bold"
	Mono    = "Go Mono"
	// Basic is a fixed 7x13 bitmap face; it ignores the requested size.
	Basic = "Basic 7x13"
)

// Font size bounds, in pixels.
const (
	MinFontSize     = 1
	MaxFontSize     = 256
	DefaultFontSize = 24
)

// Library holds the fonts available for previews.
type Library struct {
	fonts map[string]*opentype.Font
}

// NewLibrary parses the bundled fonts. Failing to parse any of them is a
// startup failure.
func NewLibrary() (*Library, error) {
	l := &Library{fonts: map[string]*opentype.Font{}}
	for _, f := range []struct {
		name string
		ttf  []byte
	}{
		{Regular, goregular.TTF},
		{Bold, gobold.TTF},
		{Mono, gomono.TTF},
	} {
		if err := l.Add(f.name, f.ttf); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Add parses a TrueType or OpenType font and makes it available by name.
func (l *Library) Add(name string, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: %s: empty font data", ErrFontUnavailable, name)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("%w: parsing %s: %v", ErrFontUnavailable, name, err)
	}
	l.fonts[name] = f
	return nil
}

// Names lists the available fonts, bundled fonts first.
func (l *Library) Names() []string {
	names := []string{Regular, Bold, Mono, Basic}
	var extra []string
	for name := range l.fonts {
		switch name {
		case Regular, Bold, Mono:
			continue
		}
		extra = append(extra, name)
	}
	sort.Strings(extra)
	return append(names, extra...)
}

// Face builds a face for the named font at size pixels. Sizes outside
// [MinFontSize, MaxFontSize] are clamped.
func (l *Library) Face(name string, size int) (font.Face, error) {
	if name == Basic {
		return basicfont.Face7x13, nil
	}
	f, ok := l.fonts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFontUnavailable, name)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(ClampFontSize(size)),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s at %dpx: %v", ErrFontUnavailable, name, size, err)
	}
	return face, nil
}

// ClampFontSize bounds size to the supported range.
func ClampFontSize(size int) int {
	if size < MinFontSize {
		return MinFontSize
	}
	if size > MaxFontSize {
		return MaxFontSize
	}
	return size
}
