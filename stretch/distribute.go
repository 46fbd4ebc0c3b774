// Package stretch computes how an annotated image is spread over a target
// size. The result is a list of blit instructions: source rectangles paired
// with the destination rectangles they are scaled into.
package stretch

import (
	"fmt"
	"image"

	"git.sr.ht/~gioverse/draw9/ninepatch"
)

// Kind identifies which of the four region types a blit copies from.
type Kind uint8

const (
	// Whole is the single blit used for images without patches.
	Whole Kind = iota
	// Patch stretches along both axes.
	Patch
	// Fixed stretches along neither axis.
	Fixed
	// HorizontalPatch stretches along X only.
	HorizontalPatch
	// VerticalPatch stretches along Y only.
	VerticalPatch
)

func (k Kind) String() string {
	switch k {
	case Whole:
		return "whole"
	case Patch:
		return "patch"
	case Fixed:
		return "fixed"
	case HorizontalPatch:
		return "horizontal patch"
	case VerticalPatch:
		return "vertical patch"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// kindOf maps a column/row band pair to its region kind.
func kindOf(col, row ninepatch.Kind) Kind {
	switch {
	case col == ninepatch.Stretch && row == ninepatch.Stretch:
		return Patch
	case col == ninepatch.Stretch:
		return HorizontalPatch
	case row == ninepatch.Stretch:
		return VerticalPatch
	}
	return Fixed
}

// Blit copies Src from the source image into Dst on the target, scaling as
// needed.
type Blit struct {
	Kind Kind
	Src  image.Rectangle
	Dst  image.Rectangle
}

// Remainder returns the space left for stretch bands once the fixed bands
// along an axis are placed. It is negative when target is too small.
func Remainder(bands ninepatch.Bands, target int) int {
	return target - bands.Sum(ninepatch.Fixed)
}

// Extents computes the output extent of every band along one axis.
//
// Fixed bands keep their source size. The remainder is shared by the stretch
// bands in proportion to their source sizes; each share is computed against
// what is still left to distribute, so truncation never accumulates and the
// stretch extents add up to the remainder exactly. A negative remainder is
// treated as zero.
func Extents(bands ninepatch.Bands, target int) []int {
	var (
		extents = make([]int, len(bands))
		pixels  = Remainder(bands, target)
		weight  = bands.Sum(ninepatch.Stretch)
	)
	if pixels < 0 {
		pixels = 0
	}
	for ii, b := range bands {
		if b.Kind == ninepatch.Fixed {
			extents[ii] = b.Size
			continue
		}
		share := 0
		if weight > 0 {
			share = b.Size * pixels / weight
		}
		extents[ii] = share
		pixels -= share
		weight -= b.Size
	}
	return extents
}

// Distribute the partition over a width×height target.
//
// Bands are swept row-major, each cell taking its source rectangle from the
// band pair it sits on. The sweep stops once a cursor reaches the last pixel
// along its axis; that pixel mirrors the annotation border and is never
// drawn into. A partition without patches degenerates to a single blit of
// the whole of src. Source rectangles are relative to src.Min.
func Distribute(p ninepatch.Partition, src image.Rectangle, width, height int) ([]Blit, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("distributing: %w", err)
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if !p.IsPatch() {
		return []Blit{{
			Kind: Whole,
			Src:  image.Rectangle{Max: src.Size()},
			Dst:  image.Rect(0, 0, width, height),
		}}, nil
	}
	var (
		widths  = Extents(p.Columns, width)
		heights = Extents(p.Rows, height)
		blits   = make([]Blit, 0, len(p.Columns)*len(p.Rows))
		y       = 0
	)
	for ri := 0; ri < len(p.Rows) && y < height-1; ri++ {
		row := p.Rows[ri]
		x := 0
		for ci := 0; ci < len(p.Columns) && x < width-1; ci++ {
			col := p.Columns[ci]
			blits = append(blits, Blit{
				Kind: kindOf(col.Kind, row.Kind),
				Src:  ninepatch.Cell(col, row),
				Dst:  image.Rect(x, y, x+widths[ci], y+heights[ri]),
			})
			x += widths[ci]
		}
		y += heights[ri]
	}
	return blits, nil
}
