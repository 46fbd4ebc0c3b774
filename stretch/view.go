package stretch

import (
	"fmt"
	"image"

	"git.sr.ht/~gioverse/draw9/ninepatch"
)

// Variant names one of the preview flavours.
type Variant uint8

const (
	// Both stretches along both axes.
	Both Variant = iota
	// Vertical stretches along Y only.
	Vertical
	// Horizontal stretches along X only.
	Horizontal
	// Exact is sized to fit the preview text inside the padding box.
	Exact
)

// Variants lists every variant in display order.
var Variants = [...]Variant{Both, Vertical, Horizontal, Exact}

func (v Variant) String() string {
	switch v {
	case Both:
		return "both"
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	case Exact:
		return "exact"
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

// Label is the short tab title of the variant.
func (v Variant) Label() string {
	switch v {
	case Both:
		return "↕↔"
	case Vertical:
		return "↕"
	case Horizontal:
		return "↔"
	case Exact:
		return "Text"
	}
	return v.String()
}

// View is the stretch state of one preview: its target size and the budget
// left for stretch bands along each axis.
type View struct {
	Variant Variant
	Width   int
	Height  int
	// RemainderHorizontal is Width minus the fixed column extents.
	RemainderHorizontal int
	// RemainderVertical is Height minus the fixed row extents.
	RemainderVertical int
}

// NewView sizes a view for the partition.
func NewView(v Variant, p ninepatch.Partition, width, height int) View {
	return View{
		Variant:             v,
		Width:               width,
		Height:              height,
		RemainderHorizontal: Remainder(p.Columns, width),
		RemainderVertical:   Remainder(p.Rows, height),
	}
}

// Size of the view's target.
func (v View) Size() image.Point {
	return image.Point{X: v.Width, Y: v.Height}
}

// Distribute the partition over the view's target.
func (v View) Distribute(p ninepatch.Partition, src image.Rectangle) ([]Blit, error) {
	return Distribute(p, src, v.Width, v.Height)
}
