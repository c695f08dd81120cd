package layout

import (
	"sort"

	"github.com/grindlemire/go-arrange/internal/debug"
)

// PassStats counts the work done by one layout pass.
type PassStats struct {
	Measured     int // Measure calls that ran the measurement path
	MeasureHits  int // Measure calls answered from the cache
	Arranged     int // Arrange calls that recomputed the subtree
	ArrangeSkips int // Arrange calls that only updated the position
	Deferred     int // Invalidations that arrived during the pass
}

// Pending reports whether any node is queued for the next pass.
func (t *Tree) Pending() bool {
	return len(t.queue) > 0
}

// InPass reports whether a layout pass is running.
func (t *Tree) InPass() bool {
	return t.inPass
}

// UpdateLayout runs one layout pass over the queued nodes: every pending
// measure, top-down, then every pending arrange, top-down. Queued nodes reuse
// the available size and final rect of their previous layout; roots that were
// never laid out use the viewport. Invalidations raised during the pass are
// queued for the next one.
func (t *Tree) UpdateLayout() PassStats {
	if t.inPass {
		debug.Log("layout: UpdateLayout re-entered, ignoring")
		return PassStats{}
	}

	queue := t.takeQueue()
	t.stats = PassStats{}
	t.runPass(queue)

	stats := t.stats
	stats.Deferred = t.flushDeferred()
	if stats.Measured > 0 || stats.Arranged > 0 {
		debug.Log("layout: pass measured=%d hits=%d arranged=%d skips=%d deferred=%d",
			stats.Measured, stats.MeasureHits, stats.Arranged, stats.ArrangeSkips, stats.Deferred)
	}
	return stats
}

func (t *Tree) runPass(queue []NodeID) {
	t.inPass = true
	defer func() { t.inPass = false }()

	for _, id := range queue {
		if n := t.get(id); n != nil && n.measureDirty {
			t.Measure(id, t.availableFor(n))
		}
	}
	for _, id := range queue {
		if n := t.get(id); n != nil && n.arrangeDirty {
			t.Arrange(id, t.finalFor(n))
		}
	}
}

// takeQueue drains the work queue, dropping stale, detached and duplicate
// entries, ordered so ancestors come before descendants.
func (t *Tree) takeQueue() []NodeID {
	seen := make(map[NodeID]struct{}, len(t.queue))
	out := make([]NodeID, 0, len(t.queue))
	for _, id := range t.queue {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if n := t.get(id); n != nil && n.attached {
			out = append(out, id)
		}
	}
	t.queue = nil
	t.queued = make(map[NodeID]struct{})

	depths := make(map[NodeID]int, len(out))
	for _, id := range out {
		depths[id] = t.depth(id)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return depths[out[i]] < depths[out[j]]
	})
	return out
}

func (t *Tree) availableFor(n *node) Size {
	if n.hasMeasured {
		return n.lastAvailable
	}
	return t.viewport
}

func (t *Tree) finalFor(n *node) Rect {
	if n.hasArranged {
		return n.lastFinal
	}
	w, h := t.viewport.Width, t.viewport.Height
	if !isFinite(w) {
		w = n.desired.Width
	}
	if !isFinite(h) {
		h = n.desired.Height
	}
	return NewRect(0, 0, w, h)
}
