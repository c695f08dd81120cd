package arrange

import (
	"fmt"

	"github.com/grindlemire/go-arrange/internal/debug"
	"github.com/grindlemire/go-arrange/pkg/bridge"
	"github.com/grindlemire/go-arrange/pkg/layout"
	"github.com/grindlemire/go-arrange/pkg/property"
)

// Element is a laid out element: a property store plus a node in a
// layout.Tree. Children are owned by their parent; the parent is a
// back-reference only.
type Element struct {
	tree  *layout.Tree
	node  layout.NodeID
	props *property.Store
	name  string

	// Tree structure
	parent   *Element
	children []*Element

	// Construction-time node configuration
	content layout.Content
	hooks   layout.Hooks

	// Lifecycle
	loaded     bool
	onLoaded   []func()
	onUnloaded []func()

	adapter *bridge.Adapter
}

// New creates an Element in tree with the given options.
// By default an element has no explicit size, no stretch and stretches on
// both axes inside the slot its parent gives it.
func New(tree *layout.Tree, opts ...Option) (*Element, error) {
	if tree == nil {
		return nil, fmt.Errorf("element requires a layout tree")
	}
	e := &Element{
		tree:  tree,
		props: property.NewStore(),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	hooks := e.hooks
	hooks.Loaded = e.handleLoaded
	hooks.Unloaded = e.handleUnloaded

	nodeOpts := []layout.NodeOption{layout.WithName(e.name), layout.WithHooks(hooks)}
	if e.content != nil {
		nodeOpts = append(nodeOpts, layout.WithContent(e.content))
	}
	e.node = tree.NewNode(e.style(), nodeOpts...)

	sync := func() { e.tree.SetStyle(e.node, e.style()) }
	property.Observe(e.props, WidthProperty, func(_, _ float64) { sync() })
	property.Observe(e.props, HeightProperty, func(_, _ float64) { sync() })
	property.Observe(e.props, StretchProperty, func(_, _ layout.Stretch) { sync() })
	property.Observe(e.props, HorizontalAlignmentProperty, func(_, _ layout.Alignment) { sync() })
	property.Observe(e.props, VerticalAlignmentProperty, func(_, _ layout.Alignment) { sync() })
	property.Observe(e.props, MarginProperty, func(_, _ layout.Thickness) { sync() })
	property.Observe(e.props, StretchAffectsMeasureProperty, func(_, _ bool) { sync() })

	return e, nil
}

// style builds the node style from the current property values.
func (e *Element) style() layout.Style {
	return layout.Style{
		Width:                 property.Get(e.props, WidthProperty),
		Height:                property.Get(e.props, HeightProperty),
		Stretch:               property.Get(e.props, StretchProperty),
		HorizontalAlignment:   property.Get(e.props, HorizontalAlignmentProperty),
		VerticalAlignment:     property.Get(e.props, VerticalAlignmentProperty),
		Margin:                property.Get(e.props, MarginProperty),
		StretchAffectsMeasure: property.Get(e.props, StretchAffectsMeasureProperty),
	}
}

// handleLoaded runs when the element's node joins a live tree.
func (e *Element) handleLoaded() {
	e.loaded = true
	property.SetAt(e.props, StretchAffectsMeasureProperty, property.Default, e.parent == nil)
	debug.Log("arrange: %s loaded (native parent=%v)", e.Name(), e.parent == nil)
	for _, fn := range e.onLoaded {
		fn()
	}
}

func (e *Element) handleUnloaded() {
	e.loaded = false
	for _, fn := range e.onUnloaded {
		fn()
	}
}

// Name returns the element's name, or its node handle when unnamed.
func (e *Element) Name() string {
	return e.tree.Name(e.node)
}

// Tree returns the layout tree the element lives in.
func (e *Element) Tree() *layout.Tree {
	return e.tree
}

// Node returns the element's layout node.
func (e *Element) Node() layout.NodeID {
	return e.node
}

// Properties returns the element's property store.
func (e *Element) Properties() *property.Store {
	return e.props
}

// IsLoaded reports whether the element is part of a live tree.
func (e *Element) IsLoaded() bool {
	return e.loaded
}

// Attach makes the element the root of a live tree, laid out by the tree's
// UpdateLayout at the tree's viewport.
func (e *Element) Attach() {
	e.tree.Attach(e.node)
}

// Detach removes a root element from the live tree.
func (e *Element) Detach() {
	e.tree.Detach(e.node)
}

// OnLoaded registers fn to run each time the element joins a live tree.
func (e *Element) OnLoaded(fn func()) {
	e.onLoaded = append(e.onLoaded, fn)
}

// OnUnloaded registers fn to run each time the element leaves a live tree.
func (e *Element) OnUnloaded(fn func()) {
	e.onUnloaded = append(e.onUnloaded, fn)
}

// OnSizeChanged registers fn to run when the element's arranged size changes.
// Returns a function that removes the observer.
func (e *Element) OnSizeChanged(fn layout.SizeChangedFunc) (remove func()) {
	return e.tree.OnSizeChanged(e.node, fn)
}

// InvalidateMeasure asks for the element to be measured in the next pass.
func (e *Element) InvalidateMeasure() {
	e.tree.InvalidateMeasure(e.node)
}

// InvalidateArrange asks for the element to be arranged in the next pass.
func (e *Element) InvalidateArrange() {
	e.tree.InvalidateArrange(e.node)
}

// SetContent replaces the element's intrinsic content and invalidates its
// measure. A nil content measures from the children instead.
func (e *Element) SetContent(c layout.Content) {
	e.content = c
	e.tree.SetContent(e.node, c)
}

// Content returns the element's intrinsic content.
func (e *Element) Content() layout.Content {
	return e.content
}

// DesiredSize returns the size computed by the last measure. ok is false
// while the element needs measuring.
func (e *Element) DesiredSize() (layout.Size, bool) {
	return e.tree.Desired(e.node)
}

// Bounds returns the rect committed by the last arrange, relative to the
// parent. ok is false before the first arrange.
func (e *Element) Bounds() (layout.Rect, bool) {
	return e.tree.Arranged(e.node)
}

// RenderSize returns the arranged size, or zero before the first arrange.
func (e *Element) RenderSize() layout.Size {
	r, _ := e.tree.Arranged(e.node)
	return r.Size()
}

// Placement returns the transform fitting the element's content into its
// measured size.
func (e *Element) Placement() layout.Placement {
	return e.tree.Placement(e.node)
}
