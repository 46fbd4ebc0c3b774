package debug

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"

	"git.sr.ht/~gioverse/draw9/stretch"
)

// PaddingColor tints the content box.
var PaddingColor = color.NRGBA{R: 94, G: 94, B: 255, A: 128}

// patchAlpha is the opacity of patch tints.
const patchAlpha = 0x60

// Padding tints the content box r, given relative to the origin of dst.
func Padding(dst xdraw.Image, r image.Rectangle) {
	fill(dst, r, PaddingColor)
}

// Patches tints the destination of every stretched blit by its kind. Fixed
// and whole blits are left untouched.
func Patches(dst xdraw.Image, blits []stretch.Blit) {
	for _, b := range blits {
		c, ok := Tint(b.Kind)
		if !ok {
			continue
		}
		fill(dst, b.Dst, c)
	}
}

// Tint returns the overlay color for blits of kind k and whether such blits
// are tinted at all.
func Tint(k stretch.Kind) (color.NRGBA, bool) {
	var hue float64
	switch k {
	case stretch.Patch:
		hue = 120
	case stretch.HorizontalPatch:
		hue = 200
	case stretch.VerticalPatch:
		hue = 30
	default:
		return color.NRGBA{}, false
	}
	r, g, b := colorful.Hsv(hue, 0.8, 0.9).RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: patchAlpha}, true
}

func fill(dst xdraw.Image, r image.Rectangle, c color.NRGBA) {
	r = r.Add(dst.Bounds().Min).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	xdraw.Draw(dst, r, image.NewUniform(c), image.Point{}, xdraw.Over)
}
