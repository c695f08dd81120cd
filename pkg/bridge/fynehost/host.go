// Package fynehost hosts a layout node inside a fyne container.
//
// Host is a fyne.Layout: fyne asks it for a minimum size, which becomes an
// unconstrained measure callback, and lays it out at a size, which becomes a
// layout callback with the frame in device pixels. It also implements
// bridge.Host, so a bridge.Adapter can register those callbacks and ask the
// container to lay out again.
package fynehost

import (
	"fmt"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/grindlemire/go-arrange/internal/debug"
	"github.com/grindlemire/go-arrange/pkg/bridge"
)

// Placer positions the container's objects once the hosted node has been
// arranged at size.
type Placer func(objects []fyne.CanvasObject, size fyne.Size)

// Host adapts a fyne container to bridge.Host.
type Host struct {
	cb        bridge.Callbacks
	scale     float32
	placer    Placer
	container *fyne.Container

	lastFrame bridge.PhysicalRect
	hasFrame  bool
}

var (
	_ bridge.Host        = (*Host)(nil)
	_ bridge.ScaleSource = (*Host)(nil)
	_ fyne.Layout        = (*Host)(nil)
)

// Option configures a Host.
type Option func(*Host) error

// WithScale fixes the pixel scale instead of reading it from the canvas the
// container is shown on.
func WithScale(scale float32) Option {
	return func(h *Host) error {
		if scale <= 0 || math.IsNaN(float64(scale)) || math.IsInf(float64(scale), 0) {
			return fmt.Errorf("%w: %v", bridge.ErrInvalidScale, scale)
		}
		h.scale = scale
		return nil
	}
}

// WithPlacer sets how objects are placed after each layout. The default
// stacks every object over the full container.
func WithPlacer(p Placer) Option {
	return func(h *Host) error {
		if p == nil {
			return fmt.Errorf("placer must not be nil")
		}
		h.placer = p
		return nil
	}
}

// New creates a host and the container it lays out.
func New(objects []fyne.CanvasObject, opts ...Option) (*Host, error) {
	h := &Host{placer: fill}
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, err
		}
	}
	h.container = container.New(h, objects...)
	return h, nil
}

// Container returns the container laid out by the host.
func (h *Host) Container() *fyne.Container {
	return h.container
}

// Scale returns the pixel scale: the fixed scale if one was set, otherwise
// the scale of the canvas showing the container, or 1 when it is not shown.
func (h *Host) Scale() float32 {
	if h.scale > 0 {
		return h.scale
	}
	if app := fyne.CurrentApp(); app != nil && h.container != nil {
		if c := app.Driver().CanvasForObject(h.container); c != nil {
			return c.Scale()
		}
	}
	return 1
}

// PixelScale implements bridge.ScaleSource so an adapter converts frames
// with the same scale the host used to produce them.
func (h *Host) PixelScale() float64 {
	return float64(h.Scale())
}

// SetLayoutCallbacks implements bridge.Host.
func (h *Host) SetLayoutCallbacks(cb bridge.Callbacks) {
	h.cb = cb
	h.hasFrame = false
}

// ForceLayoutPass implements bridge.Host by refreshing the container, which
// lays it out again at its current size.
func (h *Host) ForceLayoutPass() {
	if h.container == nil {
		return
	}
	h.container.Refresh()
}

// MinSize implements fyne.Layout.
func (h *Host) MinSize(_ []fyne.CanvasObject) fyne.Size {
	if h.cb.Measure == nil {
		return fyne.Size{}
	}
	scale := h.pixelScale()
	px := h.cb.Measure(bridge.UnspecifiedSpec(), bridge.UnspecifiedSpec())
	return fyne.NewSize(float32(scale.ToLogical(px.Width)), float32(scale.ToLogical(px.Height)))
}

// Layout implements fyne.Layout.
func (h *Host) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if h.cb.Layout != nil {
		scale := h.pixelScale()
		frame := bridge.PhysicalRect{
			Width:  scale.ToPhysical(float64(size.Width)),
			Height: scale.ToPhysical(float64(size.Height)),
		}
		changed := !h.hasFrame || frame != h.lastFrame
		h.lastFrame, h.hasFrame = frame, true

		debug.Log("fynehost: layout %vx%v at scale %v changed=%v", size.Width, size.Height, scale.Factor(), changed)
		h.cb.Layout(changed, frame)
	}
	h.placer(objects, size)
}

func (h *Host) pixelScale() bridge.Scale {
	s, err := bridge.NewScale(h.PixelScale())
	if err != nil {
		return bridge.Identity
	}
	return s
}

// fill stacks every object over the whole container.
func fill(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		o.Move(fyne.NewPos(0, 0))
		o.Resize(size)
	}
}
