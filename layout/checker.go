package layout

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"

	"git.sr.ht/~gioverse/draw9/widget"
)

// Checker lays out a widget over a checkerboard, the customary backdrop for
// images with transparency.
type Checker struct {
	// Square is the side of one square. Defaults to 8dp.
	Square unit.Dp
	// Light and Dark squares. Default to white and light gray.
	Light, Dark color.NRGBA

	size  image.Point
	board widget.CachedImage
}

var (
	checkerLight = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	checkerDark  = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
)

func (c *Checker) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()
	c.paint(gtx, dims.Size)
	call.Add(gtx.Ops)
	return dims
}

func (c *Checker) paint(gtx layout.Context, size image.Point) {
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	if size != c.size || !c.board.Cached() {
		square := c.Square
		if square <= 0 {
			square = 8
		}
		light, dark := c.Light, c.Dark
		if light == (color.NRGBA{}) {
			light = checkerLight
		}
		if dark == (color.NRGBA{}) {
			dark = checkerDark
		}
		c.size = size
		c.board.Cache(Checkerboard(size, gtx.Dp(square), light, dark))
	}
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	c.board.Op().Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}

// Checkerboard renders a size image of alternating squares, starting with a
// light one at the origin.
func Checkerboard(size image.Point, square int, light, dark color.NRGBA) *image.NRGBA {
	if square < 1 {
		square = 1
	}
	img := image.NewNRGBA(image.Rectangle{Max: size})
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			c := light
			if (x/square+y/square)%2 == 1 {
				c = dark
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
