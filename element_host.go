package arrange

import (
	"fmt"

	"github.com/grindlemire/go-arrange/pkg/bridge"
)

// HostIn makes the element the root of a natively hosted tree. The host
// drives measure and arrange through the returned adapter from then on.
func (e *Element) HostIn(host bridge.Host, opts ...bridge.Option) (*bridge.Adapter, error) {
	if e.parent != nil {
		return nil, fmt.Errorf("hosting %s: element has a managed parent", e.Name())
	}
	if e.adapter != nil {
		return nil, fmt.Errorf("hosting %s: already hosted", e.Name())
	}

	opts = append([]bridge.Option{bridge.WithName(e.Name())}, opts...)
	a, err := bridge.NewAdapter(e.tree, e.node, host, opts...)
	if err != nil {
		return nil, fmt.Errorf("hosting %s: %w", e.Name(), err)
	}
	e.adapter = a
	return a, nil
}

// Adapter returns the native adapter of a hosted element, or nil.
func (e *Element) Adapter() *bridge.Adapter {
	return e.adapter
}

// Unhost releases the native host and unloads the element.
func (e *Element) Unhost() {
	if e.adapter == nil {
		return
	}
	e.adapter.Close()
	e.adapter = nil
}
