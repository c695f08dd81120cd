package bridge

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-arrange/internal/debug"
	"github.com/grindlemire/go-arrange/pkg/layout"
)

// ErrUnknownNode is returned when an adapter is created for a node the tree
// does not contain.
var ErrUnknownNode = errors.New("bridge: node not in tree")

// Stats counts callbacks handled by an Adapter.
type Stats struct {
	Measures int // native measure callbacks that ran
	Layouts  int // layout cores that ran, native or managed
	Arranges int // layout cores that arranged rather than translated
	Dropped  int // native callbacks dropped while suppressed
}

// Adapter binds one layout node to a native host.
type Adapter struct {
	tree       *layout.Tree
	node       layout.NodeID
	host       Host
	scale      Scale
	fixedScale bool
	suppressor *Suppressor
	name       string

	layoutRequested bool
	hasLayout       bool
	lastLayoutSize  layout.Size
	lastMeasured    PhysicalSize
	stats           Stats
}

// NewAdapter attaches node as a natively hosted root and registers its layout
// callbacks with host.
func NewAdapter(tree *layout.Tree, node layout.NodeID, host Host, opts ...Option) (*Adapter, error) {
	if tree == nil || !tree.Contains(node) {
		return nil, fmt.Errorf("creating adapter for %v: %w", node, ErrUnknownNode)
	}
	if host == nil {
		return nil, fmt.Errorf("creating adapter for %v: nil host", node)
	}

	a := &Adapter{
		tree:       tree,
		node:       node,
		host:       host,
		scale:      Identity,
		suppressor: NewSuppressor(false),
		name:       tree.Name(node),
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	tree.Attach(node)
	host.SetLayoutCallbacks(Callbacks{
		Measure: a.nativeMeasure,
		Layout:  a.nativeLayout,
	})
	return a, nil
}

// Node returns the hosted node.
func (a *Adapter) Node() layout.NodeID {
	return a.node
}

// Scale returns the pixel scale used for the next conversion: the fixed
// scale, else the host's current scale, else 1.
func (a *Adapter) Scale() Scale {
	if a.fixedScale {
		return a.scale
	}
	if src, ok := a.host.(ScaleSource); ok {
		s, err := NewScale(src.PixelScale())
		if err == nil {
			return s
		}
		debug.Log("bridge: %s ignoring host scale: %v", a.name, err)
	}
	return a.scale
}

// Stats returns the callback counters.
func (a *Adapter) Stats() Stats {
	return a.stats
}

// Suppressed reports whether native callbacks are currently dropped.
func (a *Adapter) Suppressed() bool {
	return a.suppressor.Active()
}

// RequestNativeSuppression drops native layout callbacks until the returned
// release runs. Acquisitions nest.
func (a *Adapter) RequestNativeSuppression() (release func()) {
	return a.suppressor.Acquire()
}

// RequestLayout invalidates the node's measure, forces the next layout core
// to arrange even if the frame is unchanged and asks the host for a pass.
// While suppressed the running managed pass is relied on instead.
func (a *Adapter) RequestLayout() {
	a.tree.InvalidateMeasure(a.node)
	a.layoutRequested = true
	if a.suppressor.Active() {
		return
	}
	a.host.ForceLayoutPass()
}

// FastLayout commits frame from the managed side without a round trip
// through the host. Native callbacks are suppressed for the duration and the
// suppression is released on every exit path.
func (a *Adapter) FastLayout(changed bool, frame PhysicalRect) {
	release := a.RequestNativeSuppression()
	defer release()

	a.layoutCore(changed, frame)
}

// Close unregisters from the host and detaches the node.
func (a *Adapter) Close() {
	a.host.SetLayoutCallbacks(Callbacks{})
	a.suppressor.Reset()
	a.tree.Detach(a.node)
}

func (a *Adapter) nativeMeasure(width, height MeasureSpec) PhysicalSize {
	if a.suppressor.Active() {
		a.stats.Dropped++
		debug.Log("bridge: %s dropped native measure while suppressed", a.name)
		return a.lastMeasured
	}

	scale := a.Scale()
	style := a.tree.Style(a.node)
	available := layout.NewSize(scale.SpecToLogical(width), scale.SpecToLogical(height))
	if !layout.IsUnset(style.Width) {
		available.Width = style.Width
	}
	if !layout.IsUnset(style.Height) {
		available.Height = style.Height
	}

	desired := a.tree.Measure(a.node, available)
	measured := scale.LogicalToPhysical(desired)

	// a native parent cannot stretch its child, so report the offered size
	if style.StretchAffectsMeasure {
		if style.HorizontalAlignment == layout.AlignStretch && width.Mode != Unspecified {
			measured.Width = width.Size
		}
		if style.VerticalAlignment == layout.AlignStretch && height.Mode != Unspecified {
			measured.Height = height.Size
		}
	}

	debug.Log("bridge: %s measure(%v %d, %v %d) = %+v",
		a.name, width.Mode, width.Size, height.Mode, height.Size, measured)
	a.lastMeasured = measured
	a.stats.Measures++
	return measured
}

func (a *Adapter) nativeLayout(changed bool, frame PhysicalRect) {
	if a.suppressor.Active() {
		a.stats.Dropped++
		debug.Log("bridge: %s dropped native layout while suppressed", a.name)
		return
	}
	a.layoutCore(changed, frame)
}

// layoutCore arranges the node in frame when the frame size changed or a
// layout was requested, and otherwise only moves it.
func (a *Adapter) layoutCore(changed bool, frame PhysicalRect) {
	rect := a.Scale().RectToLogical(frame)
	size := rect.Size()
	a.stats.Layouts++

	resized := changed && !size.Equal(a.lastLayoutSize)
	if resized || a.layoutRequested || !a.hasLayout {
		if a.layoutRequested {
			a.tree.InvalidateArrange(a.node)
		}
		a.stats.Arranges++
		a.tree.Arrange(a.node, rect)
		// recorded only once the arrange returned, so a panicking pass is retried
		a.layoutRequested = false
		a.hasLayout = true
		a.lastLayoutSize = size
	} else {
		a.tree.Translate(a.node, rect.Origin())
	}

	// settle work queued below the root, such as arrange-only invalidations
	// stopped at fixed-size descendants
	a.tree.UpdateLayout()
}
