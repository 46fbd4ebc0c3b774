package textlayout

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Draw the placements with face, relative to box.Min, clipping glyphs to
// box.
func Draw(dst xdraw.Image, face font.Face, box image.Rectangle, placements []Placement, c color.Color) {
	visible := box.Intersect(dst.Bounds())
	if visible.Empty() || len(placements) == 0 {
		return
	}
	d := font.Drawer{
		Dst:  clip(dst, visible),
		Src:  image.NewUniform(c),
		Face: face,
	}
	for _, p := range placements {
		d.Dot = fixed.P(box.Min.X+p.X, box.Min.Y+p.Y)
		d.DrawString(p.Text)
	}
}

// clipped restricts drawing to a rectangle of an image that cannot produce
// sub-images.
type clipped struct {
	xdraw.Image
	r image.Rectangle
}

func (c clipped) Bounds() image.Rectangle {
	return c.r
}

func clip(dst xdraw.Image, r image.Rectangle) xdraw.Image {
	if sub, ok := dst.(interface {
		SubImage(image.Rectangle) image.Image
	}); ok {
		if img, ok := sub.SubImage(r).(xdraw.Image); ok {
			return img
		}
	}
	return clipped{Image: dst, r: r}
}
