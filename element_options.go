package arrange

import (
	"fmt"
	"math"

	"github.com/grindlemire/go-arrange/pkg/layout"
	"github.com/grindlemire/go-arrange/pkg/property"
)

// Option configures an Element.
type Option func(*Element) error

// --- Identity ---

// WithName sets the name used in debug logs.
func WithName(name string) Option {
	return func(e *Element) error {
		e.name = name
		return nil
	}
}

// --- Dimension Options ---

// WithWidth sets an explicit width in logical units.
func WithWidth(w float64) Option {
	return func(e *Element) error {
		if err := checkExtent("width", w); err != nil {
			return err
		}
		property.Set(e.props, WidthProperty, w)
		return nil
	}
}

// WithHeight sets an explicit height in logical units.
func WithHeight(h float64) Option {
	return func(e *Element) error {
		if err := checkExtent("height", h); err != nil {
			return err
		}
		property.Set(e.props, HeightProperty, h)
		return nil
	}
}

// WithSize sets both explicit width and height.
func WithSize(w, h float64) Option {
	return func(e *Element) error {
		if err := WithWidth(w)(e); err != nil {
			return err
		}
		return WithHeight(h)(e)
	}
}

// WithMargin sets the space around the element.
func WithMargin(m layout.Thickness) Option {
	return func(e *Element) error {
		for _, v := range []float64{m.Left, m.Top, m.Right, m.Bottom} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("margin must be finite, got %+v", m)
			}
		}
		property.Set(e.props, MarginProperty, m)
		return nil
	}
}

func checkExtent(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%s must be a finite non-negative number, got %v", name, v)
	}
	return nil
}

// --- Stretch and Alignment Options ---

// WithStretch sets how the element's content fills the space it is offered.
func WithStretch(s layout.Stretch) Option {
	return func(e *Element) error {
		property.Set(e.props, StretchProperty, s)
		return nil
	}
}

// WithAlignment sets the horizontal and vertical alignment inside the slot
// the parent arranges the element in.
func WithAlignment(h, v layout.Alignment) Option {
	return func(e *Element) error {
		property.Set(e.props, HorizontalAlignmentProperty, h)
		property.Set(e.props, VerticalAlignmentProperty, v)
		return nil
	}
}

// WithStretchAffectsMeasure sets StretchAffectsMeasure locally, overriding
// the value computed on load.
func WithStretchAffectsMeasure(v bool) Option {
	return func(e *Element) error {
		property.Set(e.props, StretchAffectsMeasureProperty, v)
		return nil
	}
}

// --- Content and Composition Options ---

// WithContent sets intrinsic content, such as a shape, measured by fitting
// its bounding box. An element with content does not measure its children.
func WithContent(c layout.Content) Option {
	return func(e *Element) error {
		if c == nil {
			return fmt.Errorf("content must not be nil")
		}
		e.content = c
		return nil
	}
}

// WithStack lays the element's children out one after another.
func WithStack(s layout.Stack) Option {
	return func(e *Element) error {
		h := s.Hooks()
		e.hooks.MeasureOverride = h.MeasureOverride
		e.hooks.ArrangeOverride = h.ArrangeOverride
		return nil
	}
}

// WithHooks sets custom measure, arrange and invalidation hooks. Loaded and
// Unloaded are managed by the element; use OnLoaded and OnUnloaded instead.
func WithHooks(h layout.Hooks) Option {
	return func(e *Element) error {
		if h.Loaded != nil || h.Unloaded != nil {
			return fmt.Errorf("use OnLoaded and OnUnloaded for lifecycle callbacks")
		}
		e.hooks = h
		return nil
	}
}
