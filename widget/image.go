// Package widget holds stateful Gio widgets for the preview window.
package widget

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// CachedImage is a cacheable image operation.
type CachedImage struct {
	op  paint.ImageOp
	src image.Image
}

// Changer can report that is has changed since the last call.
type Changer interface {
	Changed() bool
}

// ToNRGBA can render an image.NRGBA image.
type ToNRGBA interface {
	ToNRGBA() *image.NRGBA
}

// Cache the image if it is not already.
//
// The image operation is recomputed when src is a different image than the
// one last cached, or when src implements Changer and reports a change.
//
// If src implements ToNRGBA, the *image.NRGBA will be used to compute the
// image operation. This is an optimization since Gio uses a fast-path for
// image.NRGBA images.
func (img *CachedImage) Cache(src image.Image) {
	if img == nil || src == nil {
		return
	}
	changed := src != img.src
	if changer, ok := src.(Changer); ok && changer.Changed() {
		changed = true
	}
	if !changed && img.op != (paint.ImageOp{}) {
		return
	}
	var bake image.Image = src
	if nrgba, ok := src.(ToNRGBA); ok {
		bake = nrgba.ToNRGBA()
	}
	img.src = src
	img.op = paint.NewImageOp(bake)
}

// Cached reports whether an image has been cached.
func (img *CachedImage) Cached() bool {
	return img.src != nil
}

// Op returns the concrete image operation.
func (img CachedImage) Op() paint.ImageOp {
	return img.op
}

// Layout paints the cached image at its pixel size.
func (img CachedImage) Layout(gtx layout.Context) layout.Dimensions {
	if img.src == nil {
		return layout.Dimensions{}
	}
	size := img.op.Size()
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	img.op.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	return layout.Dimensions{Size: size}
}
