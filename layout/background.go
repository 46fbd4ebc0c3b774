// Package layout holds Gio layouts for presenting previews.
package layout

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/x/component"
)

// Background lays out a widget over a colored background.
type Background color.NRGBA

func (bg Background) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()
	return layout.Stack{}.Layout(
		gtx,
		layout.Expanded(component.Rect{
			Size:  dims.Size,
			Color: color.NRGBA(bg),
		}.Layout),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			call.Add(gtx.Ops)
			return dims
		}),
	)
}

// Centered lays out a widget of a known pixel size in the middle of the
// maximum constraints, filling them. Oversized widgets are anchored at the
// top left so their origin stays visible.
func Centered(gtx layout.Context, size image.Point, w layout.Widget) layout.Dimensions {
	area := gtx.Constraints.Max
	offset := image.Point{X: (area.X - size.X) / 2, Y: (area.Y - size.Y) / 2}
	if offset.X < 0 {
		offset.X = 0
	}
	if offset.Y < 0 {
		offset.Y = 0
	}
	stack := op.Offset(offset).Push(gtx.Ops)
	gtx.Constraints = layout.Exact(size)
	w(gtx)
	stack.Pop()
	return layout.Dimensions{Size: area}
}
