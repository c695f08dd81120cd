package layout

type invalidationKind uint8

const (
	invalidateMeasure invalidationKind = iota
	invalidateArrange
)

// deferredInvalidation is an invalidation that arrived during a pass and is
// applied once the pass completes.
type deferredInvalidation struct {
	id   NodeID
	kind invalidationKind
}

// InvalidateMeasure marks id as needing measure and walks up while each
// ancestor's size depends on its children. The first ancestor whose size does
// not is marked for arrange instead and stops the walk. A node already pending
// measure in the current queue is not walked again. Invalidating a detached
// node is a no-op.
func (t *Tree) InvalidateMeasure(id NodeID) {
	n := t.get(id)
	if n == nil || !n.attached {
		return
	}
	t.markMeasure(id)
}

// InvalidateArrange marks id and all of its descendants as needing arrange.
// Ancestors are not touched. Invalidating a detached node is a no-op.
func (t *Tree) InvalidateArrange(id NodeID) {
	n := t.get(id)
	if n == nil || !n.attached {
		return
	}
	t.markArrange(id)
}

// markMeasure records a measure-affecting mutation. Flags are updated even for
// detached nodes so that attaching them later does not reuse stale sizes.
func (t *Tree) markMeasure(id NodeID) {
	if t.inPass {
		t.deferred = append(t.deferred, deferredInvalidation{id: id, kind: invalidateMeasure})
		return
	}
	n := t.get(id)
	if n == nil || t.isPendingMeasure(id, n) {
		return
	}

	n.measureDirty, n.arrangeDirty = true, true
	t.enqueue(id, n)

	for cur := n; ; {
		parentID := cur.parent
		p := t.get(parentID)
		if p == nil {
			return
		}
		if !t.dependsOnChildren(p) {
			p.arrangeDirty = true
			t.enqueue(parentID, p)
			return
		}
		if t.isPendingMeasure(parentID, p) {
			return
		}
		p.measureDirty, p.arrangeDirty = true, true
		t.enqueue(parentID, p)
		cur = p
	}
}

// markArrange records an arrange-only mutation on id and its subtree.
func (t *Tree) markArrange(id NodeID) {
	if t.inPass {
		t.deferred = append(t.deferred, deferredInvalidation{id: id, kind: invalidateArrange})
		return
	}
	n := t.get(id)
	if n == nil {
		return
	}
	t.markArrangeSubtree(n)
	t.enqueue(id, n)
}

func (t *Tree) markArrangeSubtree(n *node) {
	n.arrangeDirty = true
	for _, child := range n.children {
		if c := t.get(child); c != nil {
			t.markArrangeSubtree(c)
		}
	}
}

func (t *Tree) isPendingMeasure(id NodeID, n *node) bool {
	_, queued := t.queued[id]
	return queued && n.measureDirty
}

// enqueue adds an attached node to the work queue at most once per pass.
func (t *Tree) enqueue(id NodeID, n *node) {
	if !n.attached {
		return
	}
	if _, ok := t.queued[id]; ok {
		return
	}
	t.queued[id] = struct{}{}
	t.queue = append(t.queue, id)
}

func (t *Tree) dependsOnChildren(n *node) bool {
	if n.hooks.DependsOnChildren != nil {
		return n.hooks.DependsOnChildren()
	}
	return !n.style.HasExplicitSize()
}

// flushDeferred applies invalidations queued during a pass and returns how many there were.
func (t *Tree) flushDeferred() int {
	deferred := t.deferred
	t.deferred = nil
	for _, d := range deferred {
		switch d.kind {
		case invalidateMeasure:
			t.markMeasure(d.id)
		case invalidateArrange:
			t.markArrange(d.id)
		}
	}
	return len(deferred)
}

// Attach marks the subtree rooted at root as part of a live tree, fires
// Loaded hooks top-down and queues the root for measure.
func (t *Tree) Attach(root NodeID) {
	n := t.get(root)
	if n == nil || n.attached {
		return
	}
	t.setAttached(root, true)
	t.markMeasure(root)
}

// Detach removes the subtree rooted at root from the live tree and fires
// Unloaded hooks bottom-up. Pending work for the subtree is dropped.
func (t *Tree) Detach(root NodeID) {
	n := t.get(root)
	if n == nil || !n.attached {
		return
	}
	t.setAttached(root, false)
}

func (t *Tree) setAttached(id NodeID, attached bool) {
	n := t.get(id)
	if n == nil || n.attached == attached {
		return
	}
	n.attached = attached
	if attached {
		if n.hooks.Loaded != nil {
			n.hooks.Loaded()
		}
		for _, child := range n.children {
			t.setAttached(child, true)
		}
		return
	}

	for _, child := range n.children {
		t.setAttached(child, false)
	}
	delete(t.queued, id)
	if n.hooks.Unloaded != nil {
		n.hooks.Unloaded()
	}
}
