// Package textlayout places multi-line text inside a box.
//
// Layout is a pure function of its inputs: it wraps text greedily, one
// character cluster at a time, and anchors every line according to a
// horizontal and a vertical gravity. The result is a list of baseline
// placements ready to be drawn.
package textlayout

import (
	"image"
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Placement is one laid out line: its left edge and baseline relative to
// the box origin, its text and its measured width.
type Placement struct {
	X, Y  int
	Text  string
	Width int
}

// Request bundles the inputs of a layout.
type Request struct {
	Metrics    Metrics
	Text       string
	MaxWidth   int
	MaxHeight  int
	Horizontal Gravity
	Vertical   Gravity
}

// Layout the request.
func (r Request) Layout() []Placement {
	return Layout(r.Metrics, r.Text, r.MaxWidth, r.MaxHeight, r.Horizontal, r.Vertical)
}

// escapedNewline is the two character sequence typed in single-line inputs
// to request a line break.
const escapedNewline = `\n`

// Unescape turns escaped newlines into hard breaks.
func Unescape(text string) string {
	return strings.ReplaceAll(text, escapedNewline, "\n")
}

// Layout text inside a maxWidth×maxHeight box.
//
// Empty or all-whitespace text yields no placements. Text narrower than the
// box without hard breaks is a single line; anything else is wrapped
// greedily: a cluster joins the current line while the line stays narrower
// than maxWidth, otherwise it opens the next one. The final line is trimmed.
func Layout(m Metrics, text string, maxWidth, maxHeight int, h, v Gravity) []Placement {
	text = Unescape(text)
	if strings.TrimSpace(text) == "" {
		return nil
	}
	lines := wrap(m, text, maxWidth)
	if len(lines) == 0 {
		return nil
	}
	out := make([]Placement, len(lines))
	for ii, l := range lines {
		out[ii] = Placement{
			X:     alignX(h, maxWidth, l.width),
			Text:  l.text,
			Width: l.width,
		}
	}
	alignY(m, v, maxHeight, out)
	return out
}

// Size measures text laid out without width constraints: the widest line by
// the number of lines times the font's ascent plus descent.
func Size(m Metrics, text string) image.Point {
	lines := Layout(m, text, math.MaxInt32, math.MaxInt32, Leading, Leading)
	var sz image.Point
	for _, l := range lines {
		if l.Width > sz.X {
			sz.X = l.Width
		}
	}
	sz.Y = len(lines) * (m.Ascent() + m.Descent())
	return sz
}

type line struct {
	text  string
	width int
}

func wrap(m Metrics, text string, maxWidth int) []line {
	if w := m.Width(text); w < maxWidth && !strings.Contains(text, "\n") {
		return []line{{text: text, width: w}}
	}
	var (
		lines   []line
		current string
		width   int
	)
	for rest := text; rest != ""; {
		n := clusterLen(rest)
		c := rest[:n]
		rest = rest[n:]
		if c == "\n" {
			lines = append(lines, line{text: current, width: width})
			current, width = "", 0
			continue
		}
		next := current + c
		nw := m.Width(next)
		if current == "" || nw < maxWidth {
			current, width = next, nw
			continue
		}
		lines = append(lines, line{text: current, width: width})
		current, width = c, m.Width(c)
	}
	if current = strings.TrimSpace(current); current != "" {
		lines = append(lines, line{text: current, width: m.Width(current)})
	}
	return lines
}

// clusterLen returns the byte length of the character cluster (a base
// character and any combining marks) at the start of s.
func clusterLen(s string) int {
	if n := norm.NFC.NextBoundaryInString(s, true); n > 0 {
		return n
	}
	_, n := utf8.DecodeRuneInString(s)
	return n
}

// alignX positions a line of the given width inside maxWidth.
func alignX(g Gravity, maxWidth, width int) int {
	switch g {
	case Center:
		return (maxWidth - width) >> 1
	case Trailing:
		return maxWidth - width
	}
	return 0
}

// alignY assigns baselines to the lines, anchoring the block as a whole.
func alignY(m Metrics, g Gravity, maxHeight int, lines []Placement) {
	lh := m.LineHeight()
	switch g {
	case Center:
		y := ((lh + maxHeight) >> 1) - m.Descent()
		offset := ((len(lines) - 1) * lh) >> 1
		for ii := range lines {
			lines[ii].Y = y - offset
			y += lh
		}
	case Trailing:
		y := maxHeight - m.Descent()
		for ii := len(lines) - 1; ii >= 0; ii-- {
			lines[ii].Y = y
			y -= lh
		}
	default:
		y := m.Ascent()
		for ii := range lines {
			lines[ii].Y = y
			y += lh
		}
	}
}
