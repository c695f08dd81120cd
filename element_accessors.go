package arrange

import (
	"github.com/grindlemire/go-arrange/pkg/layout"
	"github.com/grindlemire/go-arrange/pkg/property"
)

// Width returns the explicit width, or layout.Unset.
func (e *Element) Width() float64 {
	return property.Get(e.props, WidthProperty)
}

// SetWidth sets the explicit width. Negative or infinite values unset it.
func (e *Element) SetWidth(w float64) {
	property.Set(e.props, WidthProperty, w)
}

// Height returns the explicit height, or layout.Unset.
func (e *Element) Height() float64 {
	return property.Get(e.props, HeightProperty)
}

// SetHeight sets the explicit height. Negative or infinite values unset it.
func (e *Element) SetHeight(h float64) {
	property.Set(e.props, HeightProperty, h)
}

// Stretch returns the stretch policy.
func (e *Element) Stretch() layout.Stretch {
	return property.Get(e.props, StretchProperty)
}

// SetStretch sets the stretch policy.
func (e *Element) SetStretch(s layout.Stretch) {
	property.Set(e.props, StretchProperty, s)
}

// HorizontalAlignment returns the horizontal alignment.
func (e *Element) HorizontalAlignment() layout.Alignment {
	return property.Get(e.props, HorizontalAlignmentProperty)
}

// SetHorizontalAlignment sets the horizontal alignment.
func (e *Element) SetHorizontalAlignment(a layout.Alignment) {
	property.Set(e.props, HorizontalAlignmentProperty, a)
}

// VerticalAlignment returns the vertical alignment.
func (e *Element) VerticalAlignment() layout.Alignment {
	return property.Get(e.props, VerticalAlignmentProperty)
}

// SetVerticalAlignment sets the vertical alignment.
func (e *Element) SetVerticalAlignment(a layout.Alignment) {
	property.Set(e.props, VerticalAlignmentProperty, a)
}

// Margin returns the margin.
func (e *Element) Margin() layout.Thickness {
	return property.Get(e.props, MarginProperty)
}

// SetMargin sets the margin.
func (e *Element) SetMargin(m layout.Thickness) {
	property.Set(e.props, MarginProperty, m)
}

// StretchAffectsMeasure returns the effective StretchAffectsMeasure value.
func (e *Element) StretchAffectsMeasure() bool {
	return property.Get(e.props, StretchAffectsMeasureProperty)
}

// SetStretchAffectsMeasure sets StretchAffectsMeasure locally.
func (e *Element) SetStretchAffectsMeasure(v bool) {
	property.Set(e.props, StretchAffectsMeasureProperty, v)
}

// Batch applies several property changes with one style update per property.
func (e *Element) Batch(fn func()) {
	e.props.Batch(fn)
}
