package ninepatch

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	xdraw "golang.org/x/image/draw"
)

var (
	// BlackTick marks stretch bands on the top and left border and the
	// content box on the bottom and right border.
	BlackTick = color.NRGBA{A: 0xff}
	// RedTick marks layout bounds. It survives sanitisation but plays no
	// part in stretching or padding.
	RedTick = color.NRGBA{R: 0xff, A: 0xff}
)

// Extension is the file suffix of annotated assets.
const Extension = ".9.png"

// tick classifies a border pixel.
type tick uint8

const (
	background tick = iota
	black
	red
	stray
)

func classify(c color.Color) tick {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	switch {
	case n.A == 0:
		return background
	case n == BlackTick:
		return black
	case n == RedTick:
		return red
	}
	return stray
}

// Decode the partition from the annotation border of src.
//
// Black ticks along the top row and left column mark stretch bands. The
// first and last black tick along the bottom row and right column delimit
// the content box; a side without ticks has no padding.
func Decode(src image.Image) (Partition, error) {
	if src.Bounds().Min != (image.Point{}) {
		src = toNRGBA(src)
	}
	b := src.Bounds()
	if b.Dx() < 3 || b.Dy() < 3 {
		return Partition{}, fmt.Errorf("%w: %dx%d is smaller than 3x3", ErrNotNinePatch, b.Dx(), b.Dy())
	}
	var (
		top    = walk(src, b.Min.Y, horizontal)
		left   = walk(src, b.Min.X, vertical)
		bottom = walk(src, b.Max.Y-1, horizontal)
		right  = walk(src, b.Max.X-1, vertical)
	)
	p := Partition{
		Columns:           runs(top, 1),
		Rows:              runs(left, 1),
		HorizontalPadding: padding(bottom),
		VerticalPadding:   padding(right),
	}
	if err := p.Validate(); err != nil {
		return Partition{}, fmt.Errorf("decoding partition: %w", err)
	}
	return p, nil
}

// axis along which a border line is walked.
type axis bool

const (
	horizontal axis = false
	vertical   axis = true
)

// walk the interior pixels of one border line, reporting which of them carry
// a black tick. offset is the cross-axis coordinate of the line.
func walk(src image.Image, offset int, a axis) []bool {
	b := src.Bounds()
	var (
		lo, hi = b.Min.X + 1, b.Max.X - 1
		marks  []bool
	)
	if a == vertical {
		lo, hi = b.Min.Y+1, b.Max.Y-1
	}
	for ii := lo; ii < hi; ii++ {
		x, y := ii, offset
		if a == vertical {
			x, y = offset, ii
		}
		marks = append(marks, classify(src.At(x, y)) == black)
	}
	return marks
}

// padding derives the content insets from the ticks on one padding line.
func padding(marks []bool) Padding {
	first, last := -1, -1
	for ii, m := range marks {
		if !m {
			continue
		}
		if first < 0 {
			first = ii
		}
		last = ii
	}
	if first < 0 {
		return Padding{}
	}
	return Padding{Leading: first, Trailing: len(marks) - 1 - last}
}

// Sanitize clears border pixels that are neither background, black ticks nor
// red ticks, returning how many were cleared.
func Sanitize(img xdraw.Image) int {
	var (
		b       = img.Bounds()
		cleared = 0
	)
	scrub := func(x, y int) {
		if classify(img.At(x, y)) == stray {
			img.Set(x, y, color.NRGBA{})
			cleared++
		}
	}
	for xx := b.Min.X; xx < b.Max.X; xx++ {
		scrub(xx, b.Min.Y)
		if b.Dy() > 1 {
			scrub(xx, b.Max.Y-1)
		}
	}
	for yy := b.Min.Y + 1; yy < b.Max.Y-1; yy++ {
		scrub(b.Min.X, yy)
		if b.Dx() > 1 {
			scrub(b.Max.X-1, yy)
		}
	}
	return cleared
}

// Convert a plain image into an unannotated 9-patch by surrounding it with a
// transparent 1px border.
func Convert(src image.Image) *image.NRGBA {
	b := src.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx()+2, b.Dy()+2))
	xdraw.Copy(out, image.Pt(1, 1), src, b, xdraw.Src, nil)
	return out
}

// toNRGBA copies src into a zero-origin NRGBA image.
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Copy(out, image.Point{}, src, b, xdraw.Src, nil)
	return out
}

// IsNinePatchName reports whether name carries the annotated asset suffix.
func IsNinePatchName(name string) bool {
	return strings.HasSuffix(name, Extension)
}

// NinePatchName returns the annotated asset name for name.
func NinePatchName(name string) string {
	if IsNinePatchName(name) {
		return name
	}
	name = strings.TrimSuffix(name, ".png")
	return name + Extension
}

// Load decodes a PNG and prepares it for preview. Annotated assets (by
// name) have their border sanitised; anything else is converted first.
func Load(r io.Reader, name string) (*image.NRGBA, Partition, error) {
	src, err := png.Decode(r)
	if err != nil {
		return nil, Partition{}, fmt.Errorf("decoding png %s: %w", name, err)
	}
	var img *image.NRGBA
	if IsNinePatchName(name) {
		img = toNRGBA(src)
		Sanitize(img)
	} else {
		img = Convert(src)
	}
	p, err := Decode(img)
	if err != nil {
		return nil, Partition{}, fmt.Errorf("loading %s: %w", name, err)
	}
	return img, p, nil
}

// Save encodes img as PNG.
func Save(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
