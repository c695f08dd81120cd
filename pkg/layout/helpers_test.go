package layout

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) <= epsilon*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func approxSize(a, b Size) bool {
	return approx(a.Width, b.Width) && approx(a.Height, b.Height)
}

// countingContent is intrinsic content that records how often it is consulted.
type countingContent struct {
	box   Rect
	opts  FitOptions
	empty bool
	calls int
}

func (c *countingContent) ContentBox() (Rect, FitOptions, bool) {
	c.calls++
	return c.box, c.opts, !c.empty
}

func newTestTree(t *testing.T, opts ...TreeOption) *Tree {
	t.Helper()
	tree, err := NewTree(opts...)
	if err != nil {
		t.Fatalf("NewTree() error = %v", err)
	}
	return tree
}

func fixedStyle(w, h float64) Style {
	s := DefaultStyle()
	s.Width = w
	s.Height = h
	return s
}
