package ninepatch

import (
	"errors"
	"fmt"
	"image"
	"sort"
)

var (
	// ErrMalformedPartition reports a partition whose bands do not alternate
	// or whose rectangle lists are not projections of one band partition.
	ErrMalformedPartition = errors.New("ninepatch: malformed partition")
	// ErrNotNinePatch reports an image too small to carry an annotation
	// border.
	ErrNotNinePatch = errors.New("ninepatch: not a 9-patch image")
)

// Padding holds the leading and trailing content insets along one axis, in
// source pixels.
type Padding struct {
	Leading, Trailing int
}

// Sum of both insets.
func (p Padding) Sum() int {
	return p.Leading + p.Trailing
}

// Partition classifies the interior of an annotated image into bands along
// each axis. Every rectangle list is derived from the bands, so the lists are
// always consistent with one another.
type Partition struct {
	// Columns are the bands along X, left to right.
	Columns Bands
	// Rows are the bands along Y, top to bottom.
	Rows Bands
	// HorizontalPadding is the left and right content inset.
	HorizontalPadding Padding
	// VerticalPadding is the top and bottom content inset.
	VerticalPadding Padding
}

// Size of the interior covered by the bands.
func (p Partition) Size() image.Point {
	return image.Point{X: p.Columns.Len(), Y: p.Rows.Len()}
}

// Cell returns the source rectangle at the intersection of a column and a
// row band.
func Cell(col, row Band) image.Rectangle {
	return image.Rect(col.Start, row.Start, col.End(), row.End())
}

// cells collects, row-major, the rectangles whose column is of kind cx and
// whose row is of kind cy.
func (p Partition) cells(cx, cy Kind) []image.Rectangle {
	var out []image.Rectangle
	for _, row := range p.Rows {
		if row.Kind != cy {
			continue
		}
		for _, col := range p.Columns {
			if col.Kind != cx {
				continue
			}
			out = append(out, Cell(col, row))
		}
	}
	return out
}

// Patches returns the rectangles stretchable along both axes.
func (p Partition) Patches() []image.Rectangle {
	return p.cells(Stretch, Stretch)
}

// Fixed returns the rectangles stretchable along neither axis.
func (p Partition) Fixed() []image.Rectangle {
	return p.cells(Fixed, Fixed)
}

// HorizontalPatches returns the rectangles stretchable only along X.
func (p Partition) HorizontalPatches() []image.Rectangle {
	return p.cells(Stretch, Fixed)
}

// VerticalPatches returns the rectangles stretchable only along Y.
func (p Partition) VerticalPatches() []image.Rectangle {
	return p.cells(Fixed, Stretch)
}

// HorizontalStartsStretched reports whether the first column is a stretch
// band.
func (p Partition) HorizontalStartsStretched() bool {
	return p.Columns.StartsStretched()
}

// VerticalStartsStretched reports whether the first row is a stretch band.
func (p Partition) VerticalStartsStretched() bool {
	return p.Rows.StartsStretched()
}

// IsPatch reports whether the partition has anything to stretch along both
// axes. A partition without patches is rendered as a plain scaled image.
func (p Partition) IsPatch() bool {
	return p.Columns.Has(Stretch) && p.Rows.Has(Stretch)
}

// Validate checks that both axes tile the interior from (1,1) with strictly
// alternating bands and that the padding is not negative.
func (p Partition) Validate() error {
	if err := p.Columns.validate("column", 1); err != nil {
		return err
	}
	if err := p.Rows.validate("row", 1); err != nil {
		return err
	}
	if p.HorizontalPadding.Leading < 0 || p.HorizontalPadding.Trailing < 0 ||
		p.VerticalPadding.Leading < 0 || p.VerticalPadding.Trailing < 0 {
		return fmt.Errorf("%w: negative padding", ErrMalformedPartition)
	}
	return nil
}

// Regions is the flat form of a partition: four ordered rectangle lists,
// the per-axis start flags and the padding. It is what an external
// annotation step hands over.
type Regions struct {
	Patches           []image.Rectangle
	Fixed             []image.Rectangle
	HorizontalPatches []image.Rectangle
	VerticalPatches   []image.Rectangle

	HorizontalStartsStretched bool
	VerticalStartsStretched   bool

	HorizontalPadding Padding
	VerticalPadding   Padding
}

// Regions flattens the partition.
func (p Partition) Regions() Regions {
	return Regions{
		Patches:                   p.Patches(),
		Fixed:                     p.Fixed(),
		HorizontalPatches:         p.HorizontalPatches(),
		VerticalPatches:           p.VerticalPatches(),
		HorizontalStartsStretched: p.HorizontalStartsStretched(),
		VerticalStartsStretched:   p.VerticalStartsStretched(),
		HorizontalPadding:         p.HorizontalPadding,
		VerticalPadding:           p.VerticalPadding,
	}
}

// FromRegions rebuilds the band partition behind a set of rectangle lists.
//
// The lists must be exact projections of one band partition in row-major
// order. Anything else is reported as ErrMalformedPartition rather than
// repaired, since rendering a guessed partition would misrepresent the
// asset.
func FromRegions(r Regions) (Partition, error) {
	var (
		cols = map[[2]int]Kind{}
		rows = map[[2]int]Kind{}
	)
	classify := func(set map[[2]int]Kind, lo, hi int, k Kind, axis string) error {
		key := [2]int{lo, hi}
		if prev, ok := set[key]; ok && prev != k {
			return fmt.Errorf("%w: %s band [%d,%d) is both %v and %v", ErrMalformedPartition, axis, lo, hi, prev, k)
		}
		set[key] = k
		return nil
	}
	for _, list := range []struct {
		rects  []image.Rectangle
		cx, cy Kind
	}{
		{r.Patches, Stretch, Stretch},
		{r.Fixed, Fixed, Fixed},
		{r.HorizontalPatches, Stretch, Fixed},
		{r.VerticalPatches, Fixed, Stretch},
	} {
		for _, rect := range list.rects {
			if err := classify(cols, rect.Min.X, rect.Max.X, list.cx, "column"); err != nil {
				return Partition{}, err
			}
			if err := classify(rows, rect.Min.Y, rect.Max.Y, list.cy, "row"); err != nil {
				return Partition{}, err
			}
		}
	}
	p := Partition{
		Columns:           toBands(cols),
		Rows:              toBands(rows),
		HorizontalPadding: r.HorizontalPadding,
		VerticalPadding:   r.VerticalPadding,
	}
	if err := p.Validate(); err != nil {
		return Partition{}, err
	}
	if len(p.Columns) > 0 && p.HorizontalStartsStretched() != r.HorizontalStartsStretched {
		return Partition{}, fmt.Errorf("%w: horizontal start flag disagrees with bands", ErrMalformedPartition)
	}
	if len(p.Rows) > 0 && p.VerticalStartsStretched() != r.VerticalStartsStretched {
		return Partition{}, fmt.Errorf("%w: vertical start flag disagrees with bands", ErrMalformedPartition)
	}
	for _, check := range []struct {
		name      string
		got, want []image.Rectangle
	}{
		{"patches", r.Patches, p.Patches()},
		{"fixed", r.Fixed, p.Fixed()},
		{"horizontal patches", r.HorizontalPatches, p.HorizontalPatches()},
		{"vertical patches", r.VerticalPatches, p.VerticalPatches()},
	} {
		if !sameRects(check.got, check.want) {
			return Partition{}, fmt.Errorf("%w: %s are not the row-major projection of the bands", ErrMalformedPartition, check.name)
		}
	}
	return p, nil
}

func toBands(set map[[2]int]Kind) Bands {
	bands := make(Bands, 0, len(set))
	for span, k := range set {
		bands = append(bands, Band{Kind: k, Start: span[0], Size: span[1] - span[0]})
	}
	sort.Slice(bands, func(i, j int) bool {
		return bands[i].Start < bands[j].Start
	})
	return bands
}

func sameRects(a, b []image.Rectangle) bool {
	if len(a) != len(b) {
		return false
	}
	for ii := range a {
		if a[ii] != b[ii] {
			return false
		}
	}
	return true
}
