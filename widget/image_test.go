package widget

import (
	"image"
	"testing"
)

// changing reports a change on every call.
type changing struct {
	*image.NRGBA
	calls int
}

func (c *changing) Changed() bool {
	c.calls++
	return true
}

func TestCachedImage(t *testing.T) {
	var (
		cache CachedImage
		a     = image.NewNRGBA(image.Rect(0, 0, 4, 3))
		b     = image.NewNRGBA(image.Rect(0, 0, 2, 2))
	)
	if cache.Cached() {
		t.Fatalf("zero value reports a cached image")
	}
	cache.Cache(nil)
	if cache.Cached() {
		t.Fatalf("nil image cached")
	}
	cache.Cache(a)
	if got := cache.Op().Size(); got != a.Rect.Size() {
		t.Errorf("size: got %v, want %v", got, a.Rect.Size())
	}
	first := cache.Op()
	cache.Cache(a)
	if cache.Op() != first {
		t.Errorf("same image rebuilt the operation")
	}
	cache.Cache(b)
	if got := cache.Op().Size(); got != b.Rect.Size() {
		t.Errorf("new image not cached: size %v, want %v", got, b.Rect.Size())
	}
	c := &changing{NRGBA: a}
	cache.Cache(c)
	cache.Cache(c)
	if c.calls != 2 {
		t.Errorf("Changed consulted %d times, want 2", c.calls)
	}
}
