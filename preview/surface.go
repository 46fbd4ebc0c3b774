// Package preview maintains the stretched previews of an annotated image.
//
// A Surface owns the inputs of a preview (the image, its partition, the
// scale, the sample text and its font) and derives four views from them.
// Setters only record the change; the views are recomputed once, lazily,
// the next time they are requested.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"
	"sync"

	"golang.org/x/image/font"

	"git.sr.ht/~gioverse/draw9/debug"
	"git.sr.ht/~gioverse/draw9/ninepatch"
	"git.sr.ht/~gioverse/draw9/stretch"
	"git.sr.ht/~gioverse/draw9/textlayout"
)

// ErrStaleView reports a view computed from inputs that have since changed.
var ErrStaleView = errors.New("preview: stale view")

// TextColor is the color sample text is drawn with.
var TextColor = color.NRGBA{A: 0xff}

// View is one laid out preview.
type View struct {
	stretch.View
	// Blits paint the image onto the view.
	Blits []stretch.Blit
	// Content is the padding box relative to the view origin.
	Content image.Rectangle
	// Lines are the text placements relative to Content.Min.
	Lines []textlayout.Placement
	// generation of the inputs this view was computed from.
	generation uint64
}

// Surface computes and renders the previews of one image.
//
// Surface is safe for concurrent use.
type Surface struct {
	mu        sync.Mutex
	img       image.Image
	partition ninepatch.Partition
	lib       *textlayout.Library
	cfg       Config
	face      font.Face
	// dirty is set by setters and cleared by recompute.
	dirty      bool
	generation uint64
	passes     int
	views      []View
}

// New creates a surface for img, whose annotation border is described by p.
// A nil library loads the bundled fonts.
func New(img image.Image, p ninepatch.Partition, lib *textlayout.Library, cfg Config) (*Surface, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("creating surface: %w", err)
	}
	if err := checkPartition(img, p); err != nil {
		return nil, fmt.Errorf("creating surface: %w", err)
	}
	if lib == nil {
		var err error
		if lib, err = textlayout.NewLibrary(); err != nil {
			return nil, fmt.Errorf("creating surface: %w", err)
		}
	}
	face, err := lib.Face(cfg.FontName, cfg.FontSize)
	if err != nil {
		return nil, fmt.Errorf("creating surface: %w", err)
	}
	return &Surface{
		img:       img,
		partition: p,
		lib:       lib,
		cfg:       cfg,
		face:      face,
		dirty:     true,
	}, nil
}

// checkPartition reports whether p is well formed and tiles the interior of
// img.
func checkPartition(img image.Image, p ninepatch.Partition) error {
	if img == nil {
		return fmt.Errorf("%w: no image", ninepatch.ErrNotNinePatch)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	interior := img.Bounds().Size().Sub(image.Pt(2, 2))
	if p.Size() != interior {
		return fmt.Errorf("%w: bands cover %v, interior is %v", ninepatch.ErrMalformedPartition, p.Size(), interior)
	}
	return nil
}

// Config returns the current configuration.
func (s *Surface) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Partition returns the current partition.
func (s *Surface) Partition() ninepatch.Partition {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.partition
}

// SetScale sets the stretch factor, clamped to [MinScale, MaxScale].
func (s *Surface) SetScale(scale float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	scale = ClampScale(scale)
	if scale == s.cfg.Scale {
		return
	}
	s.cfg.Scale = scale
	s.invalidate()
}

// SetText sets the sample text.
func (s *Surface) SetText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if text == s.cfg.Text {
		return
	}
	s.cfg.Text = text
	s.invalidate()
}

// SetFont selects a font from the library. An unknown font leaves the
// current one in place.
func (s *Surface) SetFont(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if name == s.cfg.FontName {
		return nil
	}
	face, err := s.lib.Face(name, s.cfg.FontSize)
	if err != nil {
		Logger().Warn("keeping current font", "font", s.cfg.FontName, "requested", name, "err", err)
		return fmt.Errorf("setting font: %w", err)
	}
	s.cfg.FontName, s.face = name, face
	s.invalidate()
	return nil
}

// SetFontSize sets the font size in pixels, clamped to the supported range.
func (s *Surface) SetFontSize(size int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	size = textlayout.ClampFontSize(size)
	if size == s.cfg.FontSize {
		return nil
	}
	face, err := s.lib.Face(s.cfg.FontName, size)
	if err != nil {
		return fmt.Errorf("setting font size: %w", err)
	}
	s.cfg.FontSize, s.face = size, face
	s.invalidate()
	return nil
}

// SetGravity sets how text is anchored in the content box.
func (s *Surface) SetGravity(h, v textlayout.Gravity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if h == s.cfg.HorizontalGravity && v == s.cfg.VerticalGravity {
		return
	}
	s.cfg.HorizontalGravity, s.cfg.VerticalGravity = h, v
	s.invalidate()
}

// SetPartition replaces the image and its partition, typically after the
// annotation border was edited. A malformed partition is rejected and the
// surface keeps its previous inputs.
func (s *Surface) SetPartition(img image.Image, p ninepatch.Partition) error {
	if err := checkPartition(img, p); err != nil {
		Logger().Warn("rejecting partition", "err", err)
		return fmt.Errorf("setting partition: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.img, s.partition = img, p
	s.invalidate()
	return nil
}

// SetShowText toggles drawing the sample text.
func (s *Surface) SetShowText(show bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.ShowText = show
}

// SetShowPadding toggles tinting the content box.
func (s *Surface) SetShowPadding(show bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.ShowPadding = show
}

// SetShowPatches toggles tinting the stretched cells.
func (s *Surface) SetShowPatches(show bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.ShowPatches = show
}

// invalidate marks the views out of date. Caller must hold the lock.
func (s *Surface) invalidate() {
	s.dirty = true
}

// Views returns the four views in stretch.Variants order, recomputing them
// first if any input changed since the last call.
func (s *Surface) Views() ([]View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.refresh(); err != nil {
		return nil, err
	}
	return append([]View(nil), s.views...), nil
}

// View returns the view of one variant.
func (s *Surface) View(v stretch.Variant) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.refresh(); err != nil {
		return View{}, err
	}
	if int(v) >= len(s.views) {
		return View{}, fmt.Errorf("preview: unknown variant %v", v)
	}
	return s.views[v], nil
}

// refresh recomputes the views if dirty. Caller must hold the lock.
func (s *Surface) refresh() error {
	if !s.dirty {
		return nil
	}
	var (
		interior = s.partition.Size()
		scaled   = image.Point{
			X: int(float32(interior.X) * s.cfg.Scale),
			Y: int(float32(interior.Y) * s.cfg.Scale),
		}
		m     = textlayout.FaceMetrics{Face: s.face}
		sizes = [...]image.Point{
			stretch.Both:       scaled,
			stretch.Vertical:   {X: interior.X, Y: scaled.Y},
			stretch.Horizontal: {X: scaled.X, Y: interior.Y},
			stretch.Exact:      ExactSize(s.partition, m, s.cfg.Text),
		}
		views = make([]View, len(stretch.Variants))
	)
	for _, variant := range stretch.Variants {
		var (
			sz      = sizes[variant]
			sv      = stretch.NewView(variant, s.partition, sz.X, sz.Y)
			content = ContentBox(s.partition, sz)
		)
		blits, err := sv.Distribute(s.partition, s.img.Bounds())
		if err != nil {
			return fmt.Errorf("computing %v view: %w", variant, err)
		}
		views[variant] = View{
			View:    sv,
			Blits:   blits,
			Content: content,
			Lines: textlayout.Layout(m, s.cfg.Text, content.Dx(), content.Dy(),
				s.cfg.HorizontalGravity, s.cfg.VerticalGravity),
			generation: s.generation + 1,
		}
	}
	s.views = views
	s.generation++
	s.passes++
	s.dirty = false
	Logger().Debug("recomputed views",
		"pass", s.passes,
		"scale", s.cfg.Scale,
		"both", sizes[stretch.Both],
		"exact", sizes[stretch.Exact],
	)
	return nil
}

// ExactSize is the size of a view that fits text inside the padding box: the
// text extent plus the padding and a pixel on each side. Without text it
// collapses to the padding alone.
func ExactSize(p ninepatch.Partition, m textlayout.Metrics, text string) image.Point {
	pad := image.Point{X: p.HorizontalPadding.Sum(), Y: p.VerticalPadding.Sum()}
	if strings.TrimSpace(textlayout.Unescape(text)) == "" {
		return pad
	}
	return textlayout.Size(m, text).Add(pad).Add(image.Pt(2, 2))
}

// ContentBox is the padding box of a view of the given size. It is empty,
// not inverted, when the padding exceeds the view.
func ContentBox(p ninepatch.Partition, size image.Point) image.Rectangle {
	r := image.Rectangle{
		Min: image.Point{X: p.HorizontalPadding.Leading, Y: p.VerticalPadding.Leading},
		Max: image.Point{
			X: size.X - p.HorizontalPadding.Trailing,
			Y: size.Y - p.VerticalPadding.Trailing,
		},
	}
	if r.Max.X < r.Min.X {
		r.Max.X = r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Max.Y = r.Min.Y
	}
	return r
}

// Render rasterizes a view: the stretched image, then the enabled overlays,
// then the text. The view must come from the current inputs.
func (s *Surface) Render(v View) (*image.NRGBA, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dirty || v.generation != s.generation {
		return nil, fmt.Errorf("rendering %v view: %w", v.Variant, ErrStaleView)
	}
	dst := stretch.Rasterize(s.img, v.Blits, v.Size(), nil)
	if s.cfg.ShowPadding {
		debug.Padding(dst, v.Content)
	}
	if s.cfg.ShowPatches {
		debug.Patches(dst, v.Blits)
	}
	if s.cfg.ShowText {
		textlayout.Draw(dst, s.face, v.Content, v.Lines, TextColor)
	}
	return dst, nil
}

// RenderAll computes the views if needed and renders each of them.
func (s *Surface) RenderAll() ([]*image.NRGBA, error) {
	views, err := s.Views()
	if err != nil {
		return nil, err
	}
	out := make([]*image.NRGBA, 0, len(views))
	for _, v := range views {
		img, err := s.Render(v)
		if err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, nil
}
