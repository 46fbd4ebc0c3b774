package textlayout

import (
	"fmt"
	"strings"
)

// Gravity anchors content along one axis of a box.
type Gravity uint8

const (
	// Leading anchors to the left or top.
	Leading Gravity = iota
	// Center anchors to the middle.
	Center
	// Trailing anchors to the right or bottom.
	Trailing
)

func (g Gravity) String() string {
	switch g {
	case Leading:
		return "leading"
	case Center:
		return "center"
	case Trailing:
		return "trailing"
	}
	return fmt.Sprintf("Gravity(%d)", uint8(g))
}

// ParseGravity accepts the gravity names as well as the axis specific
// spellings left, right, top and bottom.
func ParseGravity(s string) (Gravity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "leading", "left", "top", "start":
		return Leading, nil
	case "center", "centre", "middle":
		return Center, nil
	case "trailing", "right", "bottom", "end":
		return Trailing, nil
	}
	return 0, fmt.Errorf("textlayout: unknown gravity %q", s)
}

// Set implements flag.Value.
func (g *Gravity) Set(s string) error {
	v, err := ParseGravity(s)
	if err != nil {
		return err
	}
	*g = v
	return nil
}
