package layout

import (
	"fmt"
	"math"
)

// NodeID is a handle to a node in a Tree. The zero value refers to no node.
// Handles of removed nodes become stale and are ignored by every Tree method.
type NodeID struct {
	index int32
	gen   uint32
}

// NoNode is the invalid handle.
var NoNode NodeID

// IsValid reports whether id was issued by a Tree. It does not check staleness.
func (id NodeID) IsValid() bool {
	return id.gen != 0
}

// String implements fmt.Stringer.
func (id NodeID) String() string {
	if !id.IsValid() {
		return "node(none)"
	}
	return fmt.Sprintf("node(%d.%d)", id.index, id.gen)
}

// Content is intrinsic content, such as a vector path, measured by fitting its
// bounding box into the available space.
type Content interface {
	// ContentBox returns the bounding box in content coordinates and the fit
	// terms for it. ok is false when there is nothing to lay out.
	ContentBox() (box Rect, opts FitOptions, ok bool)
}

// Hooks is the per-node strategy table selected at construction.
// Every field is optional.
type Hooks struct {
	// MeasureOverride computes the desired size of a custom container from its
	// children. available already excludes margin and includes explicit sizes.
	MeasureOverride func(t *Tree, id NodeID, available Size) Size

	// ArrangeOverride positions children inside a node of the given size.
	// Child rects are relative to the node's origin.
	ArrangeOverride func(t *Tree, id NodeID, size Size)

	// DependsOnChildren reports whether the node's own desired size changes
	// when a child's does. Defaults to "not both explicit width and height".
	DependsOnChildren func() bool

	BeforeArrange func()
	AfterArrange  func()

	// Loaded and Unloaded fire when the node joins or leaves an attached tree.
	Loaded   func()
	Unloaded func()
}

// SizeChangedFunc observes arranged size changes.
type SizeChangedFunc func(previous, current Size)

type sizeObserver struct {
	id     uint64
	fn     SizeChangedFunc
	active bool
}

type node struct {
	gen  uint32
	live bool
	name string

	style   Style
	content Content
	hooks   Hooks

	parent   NodeID
	children []NodeID
	attached bool

	lastAvailable Size
	desired       Size
	placement     Placement
	hasMeasured   bool
	measureDirty  bool
	measuring     bool

	lastFinal    Rect
	arranged     Rect
	hasArranged  bool
	arrangeDirty bool

	observers  []*sizeObserver
	observerID uint64
}

// NodeOption configures a node at creation.
type NodeOption func(*node)

// WithName labels a node in debug logs.
func WithName(name string) NodeOption {
	return func(n *node) {
		n.name = name
	}
}

// WithContent gives a node intrinsic content.
func WithContent(c Content) NodeOption {
	return func(n *node) {
		n.content = c
	}
}

// WithHooks installs the node's strategy table.
func WithHooks(h Hooks) NodeOption {
	return func(n *node) {
		n.hooks = h
	}
}

// Tree is an arena of layout nodes. It is not safe for concurrent use; all
// calls must come from the goroutine that drives layout.
type Tree struct {
	nodes []*node
	free  []int32

	viewport Size
	round    func(float64) float64

	queue    []NodeID
	queued   map[NodeID]struct{}
	inPass   bool
	deferred []deferredInvalidation

	stats PassStats
}

// TreeOption is a functional option for configuring a Tree.
type TreeOption func(*Tree) error

// WithViewport sets the available size used for roots that were never measured.
// Default is unconstrained on both axes.
func WithViewport(s Size) TreeOption {
	return func(t *Tree) error {
		if math.IsNaN(s.Width) || math.IsNaN(s.Height) || s.Width < 0 || s.Height < 0 {
			return fmt.Errorf("viewport %+v must be non-negative", s)
		}
		t.viewport = s
		return nil
	}
}

// WithRounding sets the function applied to every desired and arranged
// dimension, so sizes compared across passes share one rounding.
// Default is no rounding.
func WithRounding(fn func(float64) float64) TreeOption {
	return func(t *Tree) error {
		if fn == nil {
			return fmt.Errorf("rounding function must not be nil")
		}
		t.round = fn
		return nil
	}
}

// NewTree creates an empty Tree.
func NewTree(opts ...TreeOption) (*Tree, error) {
	t := &Tree{
		viewport: Size{Width: Infinite, Height: Infinite},
		round:    func(v float64) float64 { return v },
		queued:   make(map[NodeID]struct{}),
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// SetViewport changes the viewport and invalidates every attached root.
func (t *Tree) SetViewport(s Size) {
	if s.Equal(t.viewport) {
		return
	}
	t.viewport = s
	for i, n := range t.nodes {
		if n.live && n.attached && !n.parent.IsValid() {
			t.InvalidateMeasure(NodeID{index: int32(i), gen: n.gen})
		}
	}
}

// Viewport returns the tree's viewport.
func (t *Tree) Viewport() Size {
	return t.viewport
}

// NewNode creates a detached node. New nodes need measure and arrange.
// style is normally DefaultStyle with some fields changed; see Style.
func (t *Tree) NewNode(style Style, opts ...NodeOption) NodeID {
	n := &node{
		style:        style,
		live:         true,
		measureDirty: true,
		arrangeDirty: true,
	}
	for _, opt := range opts {
		opt(n)
	}

	if len(t.free) > 0 {
		idx := t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
		n.gen = t.nodes[idx].gen + 1
		t.nodes[idx] = n
		return NodeID{index: idx, gen: n.gen}
	}

	n.gen = 1
	t.nodes = append(t.nodes, n)
	return NodeID{index: int32(len(t.nodes) - 1), gen: n.gen}
}

// get resolves a handle, returning nil for invalid or stale handles.
func (t *Tree) get(id NodeID) *node {
	if !id.IsValid() || id.index < 0 || int(id.index) >= len(t.nodes) {
		return nil
	}
	n := t.nodes[id.index]
	if !n.live || n.gen != id.gen {
		return nil
	}
	return n
}

// Contains reports whether id refers to a live node.
func (t *Tree) Contains(id NodeID) bool {
	return t.get(id) != nil
}

// Remove detaches id from its parent and frees it and its subtree.
func (t *Tree) Remove(id NodeID) {
	n := t.get(id)
	if n == nil {
		return
	}
	if p := t.get(n.parent); p != nil {
		t.RemoveChild(n.parent, id)
	} else if n.attached {
		t.setAttached(id, false)
	}
	t.release(id)
}

func (t *Tree) release(id NodeID) {
	n := t.get(id)
	if n == nil {
		return
	}
	for _, child := range n.children {
		t.release(child)
	}
	n.live = false
	n.children = nil
	n.observers = nil
	delete(t.queued, id)
	t.free = append(t.free, id.index)
}

// AddChild appends children to parent. A child that already has a parent is
// moved. A child takes the attached state of its new parent.
func (t *Tree) AddChild(parent NodeID, children ...NodeID) {
	p := t.get(parent)
	if p == nil {
		return
	}
	for _, childID := range children {
		child := t.get(childID)
		if child == nil || childID == parent {
			continue
		}
		if child.parent.IsValid() {
			t.RemoveChild(child.parent, childID)
		}
		child.parent = parent
		p.children = append(p.children, childID)
		t.setAttached(childID, p.attached)
	}
	t.markMeasure(parent)
}

// RemoveChild removes child from parent, detaching it.
// Returns true if the child was found and removed.
func (t *Tree) RemoveChild(parent, child NodeID) bool {
	p := t.get(parent)
	c := t.get(child)
	if p == nil || c == nil {
		return false
	}
	for i, id := range p.children {
		if id == child {
			p.children = append(p.children[:i], p.children[i+1:]...)
			c.parent = NoNode
			if c.attached {
				t.setAttached(child, false)
			}
			t.markMeasure(parent)
			return true
		}
	}
	return false
}

// Parent returns the parent handle, or NoNode for a root.
func (t *Tree) Parent(id NodeID) NodeID {
	if n := t.get(id); n != nil {
		return n.parent
	}
	return NoNode
}

// Children returns a copy of the child handles.
func (t *Tree) Children(id NodeID) []NodeID {
	n := t.get(id)
	if n == nil {
		return nil
	}
	return append([]NodeID(nil), n.children...)
}

// Name returns the debug name of a node.
func (t *Tree) Name(id NodeID) string {
	if n := t.get(id); n != nil && n.name != "" {
		return n.name
	}
	return id.String()
}

// Style returns the node's style.
func (t *Tree) Style(id NodeID) Style {
	if n := t.get(id); n != nil {
		return n.style
	}
	return DefaultStyle()
}

// SetStyle replaces the node's style, invalidating measure when a sizing
// property changed and arrange when only alignment changed.
func (t *Tree) SetStyle(id NodeID, style Style) {
	n := t.get(id)
	if n == nil {
		return
	}
	old := n.style
	n.style = style
	switch {
	case old.affectsMeasure(style):
		t.markMeasure(id)
	case old.affectsArrange(style):
		t.markArrange(id)
	}
}

// SetContent replaces the node's intrinsic content and invalidates its measure.
func (t *Tree) SetContent(id NodeID, c Content) {
	n := t.get(id)
	if n == nil {
		return
	}
	n.content = c
	t.markMeasure(id)
}

// Content returns the node's intrinsic content, if any.
func (t *Tree) Content(id NodeID) Content {
	if n := t.get(id); n != nil {
		return n.content
	}
	return nil
}

// Desired returns the last measured size. ok is false when the node was never
// measured or has been invalidated since, in which case the size must not be trusted.
func (t *Tree) Desired(id NodeID) (Size, bool) {
	n := t.get(id)
	if n == nil || !n.hasMeasured || n.measureDirty {
		return Size{}, false
	}
	return n.desired, true
}

// Arranged returns the last arranged rect. ok is false before the first arrange.
func (t *Tree) Arranged(id NodeID) (Rect, bool) {
	n := t.get(id)
	if n == nil || !n.hasArranged {
		return Rect{}, false
	}
	return n.arranged, true
}

// Placement returns the content placement computed by the last measure.
func (t *Tree) Placement(id NodeID) Placement {
	if n := t.get(id); n != nil && n.hasMeasured {
		return n.placement
	}
	return IdentityPlacement()
}

// IsMeasureDirty reports whether the node needs measure.
func (t *Tree) IsMeasureDirty(id NodeID) bool {
	n := t.get(id)
	return n != nil && n.measureDirty
}

// IsArrangeDirty reports whether the node needs arrange.
func (t *Tree) IsArrangeDirty(id NodeID) bool {
	n := t.get(id)
	return n != nil && n.arrangeDirty
}

// IsAttached reports whether the node belongs to an attached tree.
func (t *Tree) IsAttached(id NodeID) bool {
	n := t.get(id)
	return n != nil && n.attached
}

// OnSizeChanged registers fn to run after an arrange that changes the node's
// arranged size. Call the returned function to stop observing.
func (t *Tree) OnSizeChanged(id NodeID, fn SizeChangedFunc) (remove func()) {
	n := t.get(id)
	if n == nil || fn == nil {
		return func() {}
	}
	n.observerID++
	obs := &sizeObserver{id: n.observerID, fn: fn, active: true}
	n.observers = append(n.observers, obs)
	return func() {
		obs.active = false
	}
}

func (t *Tree) notifySizeChanged(n *node, previous, current Size) {
	active := n.observers[:0]
	for _, obs := range n.observers {
		if obs.active {
			active = append(active, obs)
		}
	}
	n.observers = active

	// Copy so an observer that registers another does not see it this round.
	snapshot := append([]*sizeObserver(nil), active...)
	for _, obs := range snapshot {
		if obs.active {
			obs.fn(previous, current)
		}
	}
}

// depth returns the number of ancestors of id.
func (t *Tree) depth(id NodeID) int {
	d := 0
	for n := t.get(id); n != nil && n.parent.IsValid(); n = t.get(n.parent) {
		d++
	}
	return d
}
