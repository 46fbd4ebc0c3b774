package ninepatch

import "fmt"

// Kind tags a band as fixed or stretchable along its axis.
type Kind uint8

const (
	// Fixed bands keep their source extent.
	Fixed Kind = iota
	// Stretch bands share whatever space is left once fixed bands are placed.
	Stretch
)

func (k Kind) String() string {
	switch k {
	case Fixed:
		return "fixed"
	case Stretch:
		return "stretch"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Band is a maximal run of same-kind pixels along one axis of the source
// image. Start is expressed in image coordinates, so the first band of a
// decoded image starts at 1 (just inside the annotation border).
type Band struct {
	Kind  Kind
	Start int
	Size  int
}

// End returns the first coordinate past the band.
func (b Band) End() int {
	return b.Start + b.Size
}

// Bands is an ordered list of bands along one axis.
type Bands []Band

// Sum the sizes of all bands of kind k.
func (bs Bands) Sum(k Kind) int {
	sum := 0
	for _, b := range bs {
		if b.Kind == k {
			sum += b.Size
		}
	}
	return sum
}

// Len returns the total extent covered by the bands.
func (bs Bands) Len() int {
	sum := 0
	for _, b := range bs {
		sum += b.Size
	}
	return sum
}

// StartsStretched reports whether the first band is a stretch band.
func (bs Bands) StartsStretched() bool {
	return len(bs) > 0 && bs[0].Kind == Stretch
}

// Has reports whether any band is of kind k.
func (bs Bands) Has(k Kind) bool {
	for _, b := range bs {
		if b.Kind == k {
			return true
		}
	}
	return false
}

// validate that the bands tile the axis from origin onwards, strictly
// alternating kinds.
func (bs Bands) validate(axis string, origin int) error {
	next := origin
	for ii, b := range bs {
		if b.Size <= 0 {
			return fmt.Errorf("%w: %s band %d has size %d", ErrMalformedPartition, axis, ii, b.Size)
		}
		if b.Kind != Fixed && b.Kind != Stretch {
			return fmt.Errorf("%w: %s band %d has unknown kind %v", ErrMalformedPartition, axis, ii, b.Kind)
		}
		if b.Start != next {
			return fmt.Errorf("%w: %s band %d starts at %d, want %d", ErrMalformedPartition, axis, ii, b.Start, next)
		}
		if ii > 0 && bs[ii-1].Kind == b.Kind {
			return fmt.Errorf("%w: %s bands %d and %d are both %v", ErrMalformedPartition, axis, ii-1, ii, b.Kind)
		}
		next = b.End()
	}
	return nil
}

// runs collapses a per-pixel classification into alternating bands, the
// first pixel sitting at coordinate origin.
func runs(stretch []bool, origin int) Bands {
	var bands Bands
	for ii, s := range stretch {
		kind := Fixed
		if s {
			kind = Stretch
		}
		if n := len(bands); n > 0 && bands[n-1].Kind == kind {
			bands[n-1].Size++
			continue
		}
		bands = append(bands, Band{Kind: kind, Start: origin + ii, Size: 1})
	}
	return bands
}
