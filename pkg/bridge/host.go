package bridge

// Callbacks are registered by the Adapter with its Host. The host calls
// Measure to ask for the node's desired size and Layout to commit the frame
// the host chose for it. changed is true when the frame differs from the
// last frame the host committed.
type Callbacks struct {
	Measure func(width, height MeasureSpec) PhysicalSize
	Layout  func(changed bool, frame PhysicalRect)
}

// Host is a native view backend that drives layout for one node.
type Host interface {
	// SetLayoutCallbacks registers the callbacks the host calls during its
	// own layout passes. Zero callbacks unregister.
	SetLayoutCallbacks(cb Callbacks)

	// ForceLayoutPass asks the host to run a layout pass soon. A host may
	// run it synchronously.
	ForceLayoutPass()
}

// ScaleSource is implemented by hosts whose pixel scale can change while they
// are live, such as a window moving between displays. An adapter without a
// fixed scale reads it on every callback so both sides convert alike.
type ScaleSource interface {
	PixelScale() float64
}
