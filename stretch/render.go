package stretch

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// DefaultScaler filters scaled blits bilinearly.
var DefaultScaler xdraw.Scaler = xdraw.BiLinear

// Render performs the blits, copying from src onto dst. Blit rectangles are
// relative to the origins of src and dst. A nil scaler uses DefaultScaler.
// Blits with an empty source or destination are skipped.
func Render(dst xdraw.Image, src image.Image, blits []Blit, s xdraw.Scaler) {
	if s == nil {
		s = DefaultScaler
	}
	var (
		so = src.Bounds().Min
		do = dst.Bounds().Min
	)
	for _, b := range blits {
		if b.Src.Empty() || b.Dst.Empty() {
			continue
		}
		var (
			sr = b.Src.Add(so)
			dr = b.Dst.Add(do)
		)
		if sr.Size() == dr.Size() {
			xdraw.Copy(dst, dr.Min, src, sr, xdraw.Over, nil)
			continue
		}
		s.Scale(dst, dr, src, sr, xdraw.Over, nil)
	}
}

// Rasterize renders the blits onto a fresh transparent image of the given
// size.
func Rasterize(src image.Image, blits []Blit, size image.Point, s xdraw.Scaler) *image.NRGBA {
	if size.X < 0 {
		size.X = 0
	}
	if size.Y < 0 {
		size.Y = 0
	}
	out := image.NewNRGBA(image.Rectangle{Max: size})
	Render(out, src, blits, s)
	return out
}
