package layout

import "github.com/grindlemire/go-arrange/internal/debug"

// Arrange commits the node's final rect inside the slot final, given in the
// parent's coordinate space.
//
// The node is measured first if its desired size is not valid. When the
// resulting size equals the previous arranged size and the node is neither
// dirty nor forced, only the position is updated and descendants are left
// alone. Otherwise children are arranged and, if the arranged size changed,
// size-changed observers run.
func (t *Tree) Arrange(id NodeID, final Rect) {
	n := t.get(id)
	if n == nil {
		return
	}
	if !final.IsFinite() {
		debug.Log("layout: %s arranged in invalid rect %+v, using empty rect", t.Name(id), final)
		final = Rect{}
	}
	final = NewRect(final.X, final.Y, final.Width, final.Height)

	if n.measureDirty || !n.hasMeasured {
		t.Measure(id, final.Size())
	}
	n.lastFinal = final

	rect := t.arrangedRect(n, final)
	previous := Size{}
	if n.hasArranged {
		previous = n.arranged.Size()
	}

	if n.hasArranged && !n.arrangeDirty && previous.Equal(rect.Size()) {
		n.arranged = rect
		t.stats.ArrangeSkips++
		return
	}

	if n.hooks.BeforeArrange != nil {
		n.hooks.BeforeArrange()
	}

	n.arranged = rect
	n.hasArranged = true
	if n.hooks.ArrangeOverride != nil {
		n.hooks.ArrangeOverride(t, id, rect.Size())
	} else {
		local := RectFromSize(rect.Size())
		for _, child := range n.children {
			t.Arrange(child, local)
		}
	}
	n.arrangeDirty = false
	t.stats.Arranged++

	if n.hooks.AfterArrange != nil {
		n.hooks.AfterArrange()
	}

	if !previous.Equal(rect.Size()) {
		t.notifySizeChanged(n, previous, rect.Size())
	}
}

// Translate moves the slot of an arranged node to origin, keeping the node's
// margin and alignment offset within it, without arranging the node or its
// descendants.
func (t *Tree) Translate(id NodeID, origin Point) {
	n := t.get(id)
	if n == nil || !n.hasArranged {
		return
	}
	dx, dy := origin.X-n.lastFinal.X, origin.Y-n.lastFinal.Y
	n.arranged = n.arranged.Translate(dx, dy)
	n.lastFinal = n.lastFinal.Translate(dx, dy)
}

// arrangedRect positions the node's desired size inside final.
func (t *Tree) arrangedRect(n *node, final Rect) Rect {
	style := n.style
	slot := final.Inset(style.Margin)
	desired := Size{
		Width:  max(n.desired.Width-style.Margin.Horizontal(), 0),
		Height: max(n.desired.Height-style.Margin.Vertical(), 0),
	}

	width := alignedExtent(desired.Width, slot.Width, style.Width, style.HorizontalAlignment, style.StretchAffectsMeasure)
	height := alignedExtent(desired.Height, slot.Height, style.Height, style.VerticalAlignment, style.StretchAffectsMeasure)
	width, height = t.round(width), t.round(height)

	return NewRect(
		slot.X+alignedOffset(slot.Width, width, style.HorizontalAlignment),
		slot.Y+alignedOffset(slot.Height, height, style.VerticalAlignment),
		width,
		height,
	)
}

// alignedExtent returns the arranged size on one axis. Stretch fills the slot
// unless an explicit size is set; a node under a native parent
// (stretchAffectsMeasure) always takes the slot on a Stretch axis because the
// parent will not stretch it.
func alignedExtent(desired, slot, explicit float64, align Alignment, stretchAffectsMeasure bool) float64 {
	if align == AlignStretch && (stretchAffectsMeasure || IsUnset(explicit)) {
		return slot
	}
	return min(desired, slot)
}

func alignedOffset(slot, extent float64, align Alignment) float64 {
	free := max(slot-extent, 0)
	switch align {
	case AlignStart:
		return 0
	case AlignEnd:
		return free
	default:
		return free / 2
	}
}
