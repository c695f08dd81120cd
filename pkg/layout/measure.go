package layout

import (
	"errors"
	"math"

	"github.com/grindlemire/go-arrange/internal/debug"
)

// Measure computes the desired size of id for the given available size.
//
// A clean node asked with the same available size returns its cached desired
// size without consulting its content or children. Otherwise the desired size
// comes from the MeasureOverride hook, the node's Content fitted through
// ComputeFit, or the largest desired size among its children, in that order.
// Explicit width and height replace the available and desired size on their
// axis, the margin is added, and invalid geometry is replaced with zero.
// A completed Measure leaves the node measure-clean and arrange-dirty.
func (t *Tree) Measure(id NodeID, available Size) Size {
	n := t.get(id)
	if n == nil {
		return Size{}
	}
	available = sanitizeAvailable(available)

	if !n.measureDirty && n.hasMeasured && n.lastAvailable.Equal(available) {
		t.stats.MeasureHits++
		return n.desired
	}
	if n.measuring {
		debug.Log("layout: re-entrant measure of %s, returning previous size", t.Name(id))
		return n.desired
	}

	n.measuring = true
	desired := func() Size {
		defer func() { n.measuring = false }()
		return t.measureCore(id, n, available)
	}()

	n.desired = desired
	n.lastAvailable = available
	n.hasMeasured = true
	n.measureDirty = false
	n.arrangeDirty = true
	t.stats.Measured++
	return desired
}

func (t *Tree) measureCore(id NodeID, n *node, available Size) Size {
	style := n.style
	margin := style.Margin.Size()

	inner := Size{
		Width:  max(available.Width-margin.Width, 0),
		Height: max(available.Height-margin.Height, 0),
	}
	if !IsUnset(style.Width) {
		inner.Width = style.Width
	}
	if !IsUnset(style.Height) {
		inner.Height = style.Height
	}

	var desired Size
	switch {
	case n.hooks.MeasureOverride != nil:
		desired = n.hooks.MeasureOverride(t, id, inner)
	case n.content != nil:
		desired = t.measureContent(id, n, inner)
	default:
		for _, child := range n.children {
			desired = desired.Max(t.Measure(child, inner))
		}
	}

	if !IsUnset(style.Width) {
		desired.Width = style.Width
	}
	if !IsUnset(style.Height) {
		desired.Height = style.Height
	}

	if !desired.IsFinite() || desired.Width < 0 || desired.Height < 0 {
		debug.Log("layout: %s measured invalid size %+v, using zero on bad axes", t.Name(id), desired)
		desired = Size{Width: validExtent(desired.Width), Height: validExtent(desired.Height)}
	}

	if style.Stretch != StretchNone {
		if isFinite(inner.Width) {
			desired.Width = min(desired.Width, inner.Width)
		}
		if isFinite(inner.Height) {
			desired.Height = min(desired.Height, inner.Height)
		}
	}

	desired = desired.Add(margin)
	return Size{Width: t.round(desired.Width), Height: t.round(desired.Height)}
}

// measureContent fits the node's content box into available. Degenerate
// content measures as zero.
func (t *Tree) measureContent(id NodeID, n *node, available Size) Size {
	box, opts, ok := n.content.ContentBox()
	if !ok {
		n.placement = IdentityPlacement()
		return Size{}
	}

	explicit := Size{Width: n.style.Width, Height: n.style.Height}
	p, err := ComputeFit(box, available, explicit, n.style.Stretch, opts)
	if err != nil {
		if errors.Is(err, ErrInvalidGeometry) {
			debug.Log("layout: ignoring content of %s: %v", t.Name(id), err)
		}
		n.placement = IdentityPlacement()
		return Size{}
	}
	n.placement = p
	return p.Size
}

// sanitizeAvailable treats NaN as unconstrained and negative as zero.
func sanitizeAvailable(s Size) Size {
	fix := func(v float64) float64 {
		if math.IsNaN(v) {
			return Infinite
		}
		return max(v, 0)
	}
	return Size{Width: fix(s.Width), Height: fix(s.Height)}
}

func validExtent(v float64) float64 {
	if !isFinite(v) || v < 0 {
		return 0
	}
	return v
}
