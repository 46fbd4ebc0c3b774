package layout

import (
	"image"
	"image/color"
	"testing"

	"gioui.org/layout"
	"gioui.org/op"
)

func TestCheckerboard(t *testing.T) {
	var (
		light = color.NRGBA{R: 1, A: 0xff}
		dark  = color.NRGBA{R: 2, A: 0xff}
		img   = Checkerboard(image.Pt(8, 4), 2, light, dark)
	)
	for _, tt := range []struct {
		X, Y int
		Want color.NRGBA
	}{
		{0, 0, light},
		{1, 1, light},
		{2, 0, dark},
		{0, 2, dark},
		{2, 2, light},
		{7, 3, light},
		{5, 3, dark},
	} {
		if got := img.NRGBAAt(tt.X, tt.Y); got != tt.Want {
			t.Errorf("(%d,%d): got %v, want %v", tt.X, tt.Y, got, tt.Want)
		}
	}
}

func TestCentered(t *testing.T) {
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(100, 50)),
	}
	var got layout.Constraints
	dims := Centered(gtx, image.Pt(40, 20), func(gtx layout.Context) layout.Dimensions {
		got = gtx.Constraints
		return layout.Dimensions{Size: gtx.Constraints.Max}
	})
	if want := layout.Exact(image.Pt(40, 20)); got != want {
		t.Errorf("child constraints: got %v, want %v", got, want)
	}
	if dims.Size != image.Pt(100, 50) {
		t.Errorf("dimensions: got %v", dims.Size)
	}
}

func TestCheckerCachesBoard(t *testing.T) {
	var (
		c   Checker
		gtx = layout.Context{
			Ops:         new(op.Ops),
			Constraints: layout.Exact(image.Pt(16, 16)),
		}
		child = func(gtx layout.Context) layout.Dimensions {
			return layout.Dimensions{Size: gtx.Constraints.Max}
		}
	)
	c.Layout(gtx, child)
	first := c.board.Op()
	c.Layout(gtx, child)
	if c.board.Op() != first {
		t.Errorf("board rebuilt for an unchanged size")
	}
	gtx.Constraints = layout.Exact(image.Pt(32, 8))
	c.Layout(gtx, child)
	if got := c.board.Op().Size(); got != image.Pt(32, 8) {
		t.Errorf("board size: got %v, want %v", got, image.Pt(32, 8))
	}
}
