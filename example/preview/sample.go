package main

import (
	"image"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"git.sr.ht/~gioverse/draw9/ninepatch"
)

// Sample generates an annotated speech bubble: a rounded, shaded body with
// a stretchable middle and a content box inset from its edges.
func Sample() *image.NRGBA {
	const (
		w, h   = 36, 28
		radius = 6
	)
	var (
		img  = image.NewNRGBA(image.Rect(0, 0, w+2, h+2))
		top  = colorful.Hsv(210, 0.45, 0.98)
		base = colorful.Hsv(215, 0.75, 0.80)
	)
	for y := 0; y < h; y++ {
		shade := top.BlendLab(base, float64(y)/float64(h-1)).Clamped()
		r, g, b := shade.RGB255()
		for x := 0; x < w; x++ {
			if outsideCorner(x, y, w, h, radius) {
				continue
			}
			img.SetNRGBA(x+1, y+1, color.NRGBA{R: r, G: g, B: b, A: 0xff})
		}
	}
	for x := 1 + radius + 2; x < 1+w-radius-2; x++ {
		img.SetNRGBA(x, 0, ninepatch.BlackTick)
	}
	for y := 1 + radius + 2; y < 1+h-radius-2; y++ {
		img.SetNRGBA(0, y, ninepatch.BlackTick)
	}
	for x := 1 + radius; x < 1+w-radius; x++ {
		img.SetNRGBA(x, h+1, ninepatch.BlackTick)
	}
	for y := 1 + radius/2; y < 1+h-radius/2; y++ {
		img.SetNRGBA(w+1, y, ninepatch.BlackTick)
	}
	return img
}

// outsideCorner reports whether (x, y) falls outside the rounded corners of
// a w×h rectangle.
func outsideCorner(x, y, w, h, r int) bool {
	cx, cy := -1, -1
	switch {
	case x < r && y < r:
		cx, cy = r, r
	case x >= w-r && y < r:
		cx, cy = w-r-1, r
	case x < r && y >= h-r:
		cx, cy = r, h-r-1
	case x >= w-r && y >= h-r:
		cx, cy = w-r-1, h-r-1
	default:
		return false
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy > r*r
}
