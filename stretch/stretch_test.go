package stretch

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	xdraw "golang.org/x/image/draw"

	"git.sr.ht/~gioverse/draw9/ninepatch"
)

// bands builds an alternating band list from sizes, starting at 1 with the
// given kind.
func bands(first ninepatch.Kind, sizes ...int) ninepatch.Bands {
	var (
		out   ninepatch.Bands
		start = 1
		kind  = first
	)
	for _, sz := range sizes {
		out = append(out, ninepatch.Band{Kind: kind, Start: start, Size: sz})
		start += sz
		if kind == ninepatch.Fixed {
			kind = ninepatch.Stretch
		} else {
			kind = ninepatch.Fixed
		}
	}
	return out
}

func sum(ints []int) int {
	total := 0
	for _, v := range ints {
		total += v
	}
	return total
}

// TestExtentsFill checks that for every target at least as large as the
// fixed bands, the band extents add up to the target exactly.
func TestExtentsFill(t *testing.T) {
	for _, tt := range []struct {
		Label string
		Bands ninepatch.Bands
	}{
		{"three by three", bands(ninepatch.Fixed, 3, 4, 3)},
		{"uneven weights", bands(ninepatch.Stretch, 1, 2, 5, 7, 2)},
		{"many thin bands", bands(ninepatch.Fixed, 1, 1, 1, 1, 1, 1, 1, 1, 1)},
		{"single stretch", bands(ninepatch.Stretch, 1)},
		{"heavy weights", bands(ninepatch.Fixed, 2, 97, 1, 3, 4, 13)},
	} {
		t.Run(tt.Label, func(t *testing.T) {
			fixed := tt.Bands.Sum(ninepatch.Fixed)
			for target := fixed; target < fixed+300; target++ {
				got := Extents(tt.Bands, target)
				if s := sum(got); s != target {
					t.Fatalf("target %d: extents %v sum to %d", target, got, s)
				}
				for ii, b := range tt.Bands {
					if b.Kind == ninepatch.Fixed && got[ii] != b.Size {
						t.Fatalf("target %d: fixed band %d scaled to %d", target, ii, got[ii])
					}
					if got[ii] < 0 {
						t.Fatalf("target %d: negative extent %v", target, got)
					}
				}
			}
		})
	}
}

func TestExtentsTruncation(t *testing.T) {
	// Fixed bands add up to 4, leaving 17 pixels for three equal stretch
	// bands.
	got := Extents(bands(ninepatch.Stretch, 1, 2, 1, 2, 1), 21)
	want := []int{5, 2, 6, 2, 6}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("extents mismatch (-want +got):\n%s", diff)
	}
}

func TestExtentsProportional(t *testing.T) {
	got := Extents(bands(ninepatch.Stretch, 1, 4, 3), 4+40)
	want := []int{10, 4, 30}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("extents mismatch (-want +got):\n%s", diff)
	}
}

func TestExtentsDegenerate(t *testing.T) {
	bs := bands(ninepatch.Fixed, 3, 4, 2, 5, 3)
	for _, target := range []int{8, 7, 0, -5} {
		got := Extents(bs, target)
		for ii, b := range bs {
			if b.Kind == ninepatch.Stretch && got[ii] != 0 {
				t.Fatalf("target %d: stretch band %d got %d, want 0", target, ii, got[ii])
			}
		}
	}
}

func TestDistributeUnpartitioned(t *testing.T) {
	p := ninepatch.Partition{
		Columns: bands(ninepatch.Fixed, 10),
		Rows:    bands(ninepatch.Fixed, 6),
	}
	src := image.Rect(0, 0, 12, 8)
	for _, size := range []image.Point{{24, 16}, {1, 1}, {0, 0}, {300, 7}} {
		got, err := Distribute(p, src, size.X, size.Y)
		if err != nil {
			t.Fatal(err)
		}
		want := []Blit{{Kind: Whole, Src: src, Dst: image.Rectangle{Max: size}}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("size %v: blits mismatch (-want +got):\n%s", size, diff)
		}
	}
}

func TestDistributeNinePatch(t *testing.T) {
	p := ninepatch.Partition{
		Columns: bands(ninepatch.Fixed, 3, 4, 3),
		Rows:    bands(ninepatch.Fixed, 3, 4, 3),
	}
	got, err := Distribute(p, image.Rect(0, 0, 12, 12), 20, 16)
	if err != nil {
		t.Fatal(err)
	}
	want := []Blit{
		{Kind: Fixed, Src: image.Rect(1, 1, 4, 4), Dst: image.Rect(0, 0, 3, 3)},
		{Kind: HorizontalPatch, Src: image.Rect(4, 1, 8, 4), Dst: image.Rect(3, 0, 17, 3)},
		{Kind: Fixed, Src: image.Rect(8, 1, 11, 4), Dst: image.Rect(17, 0, 20, 3)},
		{Kind: VerticalPatch, Src: image.Rect(1, 4, 4, 8), Dst: image.Rect(0, 3, 3, 13)},
		{Kind: Patch, Src: image.Rect(4, 4, 8, 8), Dst: image.Rect(3, 3, 17, 13)},
		{Kind: VerticalPatch, Src: image.Rect(8, 4, 11, 8), Dst: image.Rect(17, 3, 20, 13)},
		{Kind: Fixed, Src: image.Rect(1, 8, 4, 11), Dst: image.Rect(0, 13, 3, 16)},
		{Kind: HorizontalPatch, Src: image.Rect(4, 8, 8, 11), Dst: image.Rect(3, 13, 17, 16)},
		{Kind: Fixed, Src: image.Rect(8, 8, 11, 11), Dst: image.Rect(17, 13, 20, 16)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("blits mismatch (-want +got):\n%s", diff)
	}
}

// TestDistributeMatchesRegions checks that the sweep consumes each region
// list in order, exactly as a cursor-per-list renderer would.
func TestDistributeMatchesRegions(t *testing.T) {
	p := ninepatch.Partition{
		Columns: bands(ninepatch.Stretch, 2, 3, 1, 4, 2),
		Rows:    bands(ninepatch.Fixed, 1, 2, 3, 2),
	}
	blits, err := Distribute(p, image.Rect(0, 0, 14, 10), 60, 40)
	if err != nil {
		t.Fatal(err)
	}
	got := map[Kind][]image.Rectangle{}
	for _, b := range blits {
		got[b.Kind] = append(got[b.Kind], b.Src)
	}
	want := map[Kind][]image.Rectangle{
		Patch:           p.Patches(),
		Fixed:           p.Fixed(),
		HorizontalPatch: p.HorizontalPatches(),
		VerticalPatch:   p.VerticalPatches(),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("region order mismatch (-want +got):\n%s", diff)
	}
	// Row-major destination tiling with no gaps.
	var (
		x, y    int
		lastRow = -1
	)
	for _, b := range blits {
		if b.Dst.Min.Y != lastRow {
			x, lastRow = 0, b.Dst.Min.Y
			if b.Dst.Min.Y != y {
				t.Fatalf("row starts at %d, want %d", b.Dst.Min.Y, y)
			}
			y = b.Dst.Max.Y
		}
		if b.Dst.Min.X != x {
			t.Fatalf("cell %v starts at x=%d, want %d", b.Dst, b.Dst.Min.X, x)
		}
		x = b.Dst.Max.X
	}
	if x != 60 || y != 40 {
		t.Fatalf("sweep ended at (%d,%d), want (60,40)", x, y)
	}
}

// TestDistributeSentinel checks that the sweep stops once the cursor reaches
// the last pixel of the target.
func TestDistributeSentinel(t *testing.T) {
	p := ninepatch.Partition{
		Columns: bands(ninepatch.Fixed, 3, 4, 3),
		Rows:    bands(ninepatch.Fixed, 3, 4, 3),
	}
	// Target narrower than the fixed bands: the first column already
	// covers the last pixel, so only one cell per row is emitted.
	blits, err := Distribute(p, image.Rect(0, 0, 12, 12), 4, 16)
	if err != nil {
		t.Fatal(err)
	}
	if len(blits) != 3 {
		t.Fatalf("got %d blits, want 3: %v", len(blits), blits)
	}
	for _, b := range blits {
		if b.Dst.Dx() < 0 || b.Dst.Dy() < 0 {
			t.Fatalf("negative destination %v", b.Dst)
		}
	}
	// A one pixel tall target draws nothing.
	blits, err = Distribute(p, image.Rect(0, 0, 12, 12), 20, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(blits) != 0 {
		t.Fatalf("got %d blits, want none", len(blits))
	}
}

func TestDistributeMalformed(t *testing.T) {
	p := ninepatch.Partition{
		Columns: ninepatch.Bands{
			{Kind: ninepatch.Stretch, Start: 1, Size: 2},
			{Kind: ninepatch.Stretch, Start: 3, Size: 2},
		},
		Rows: bands(ninepatch.Stretch, 4),
	}
	blits, err := Distribute(p, image.Rect(0, 0, 6, 6), 20, 20)
	if !errors.Is(err, ninepatch.ErrMalformedPartition) {
		t.Fatalf("got %v, want ErrMalformedPartition", err)
	}
	if blits != nil {
		t.Fatalf("malformed partition produced blits: %v", blits)
	}
}

func TestNewView(t *testing.T) {
	p := ninepatch.Partition{
		Columns: bands(ninepatch.Fixed, 3, 4, 3),
		Rows:    bands(ninepatch.Stretch, 5, 2),
	}
	got := NewView(Both, p, 20, 3)
	want := View{Variant: Both, Width: 20, Height: 3, RemainderHorizontal: 14, RemainderVertical: 1}
	if got != want {
		t.Fatalf("NewView() = %+v, want %+v", got, want)
	}
	if got.Size() != image.Pt(20, 3) {
		t.Fatalf("Size() = %v", got.Size())
	}
}

// TestRender paints each cell of a 3x3 source a flat color and checks that
// every destination cell carries its source color.
func TestRender(t *testing.T) {
	var (
		src    = image.NewNRGBA(image.Rect(0, 0, 12, 12))
		colors = map[Kind]color.NRGBA{
			Fixed:           {R: 0xff, A: 0xff},
			HorizontalPatch: {G: 0xff, A: 0xff},
			VerticalPatch:   {B: 0xff, A: 0xff},
			Patch:           {R: 0xff, G: 0xff, A: 0xff},
		}
		p = ninepatch.Partition{
			Columns: bands(ninepatch.Fixed, 3, 4, 3),
			Rows:    bands(ninepatch.Fixed, 3, 4, 3),
		}
	)
	blits, err := Distribute(p, src.Bounds(), 31, 25)
	if err != nil {
		t.Fatal(err)
	}
	for _, b := range blits {
		xdraw.Draw(src, b.Src, image.NewUniform(colors[b.Kind]), image.Point{}, xdraw.Src)
	}
	for _, scaler := range []xdraw.Scaler{nil, xdraw.NearestNeighbor, xdraw.CatmullRom} {
		out := Rasterize(src, blits, image.Pt(31, 25), scaler)
		for _, b := range blits {
			for _, pt := range []image.Point{b.Dst.Min, b.Dst.Max.Sub(image.Pt(1, 1))} {
				if got := out.NRGBAAt(pt.X, pt.Y); got != colors[b.Kind] {
					t.Fatalf("%v cell %v at %v = %v, want %v", b.Kind, b.Dst, pt, got, colors[b.Kind])
				}
			}
		}
	}
}

func TestRasterizeOffsets(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 10, 14, 14))
	xdraw.Draw(src, src.Bounds(), image.NewUniform(color.NRGBA{B: 0xff, A: 0xff}), image.Point{}, xdraw.Src)
	blits := []Blit{
		{Kind: Whole, Src: image.Rect(0, 0, 4, 4), Dst: image.Rect(0, 0, 8, 8)},
		{Kind: Fixed, Src: image.Rect(0, 0, 1, 1), Dst: image.Rect(8, 8, 8, 9)},
	}
	out := Rasterize(src, blits, image.Pt(9, 9), nil)
	if got := out.NRGBAAt(7, 7); got != (color.NRGBA{B: 0xff, A: 0xff}) {
		t.Fatalf("(7,7) = %v, want blue", got)
	}
	if got := out.NRGBAAt(8, 8); got != (color.NRGBA{}) {
		t.Fatalf("empty blit drew %v", got)
	}
}
