package arrange

import (
	"math"

	"github.com/grindlemire/go-arrange/pkg/layout"
	"github.com/grindlemire/go-arrange/pkg/property"
)

// Layout properties of every Element. Read and write them through the
// Element accessors or directly on Element.Properties.
var (
	WidthProperty  = property.NewKey("Width", layout.Unset, property.WithCoerce(coerceExtent))
	HeightProperty = property.NewKey("Height", layout.Unset, property.WithCoerce(coerceExtent))

	StretchProperty = property.NewKey("Stretch", layout.StretchNone)

	HorizontalAlignmentProperty = property.NewKey("HorizontalAlignment", layout.AlignStretch)
	VerticalAlignmentProperty   = property.NewKey("VerticalAlignment", layout.AlignStretch)

	MarginProperty = property.NewKey("Margin", layout.Thickness{})

	// StretchAffectsMeasureProperty makes Stretch alignment part of the
	// measured size. Its default-precedence value is refreshed each time the
	// element is loaded: true when the element has no managed parent, since
	// a native parent cannot stretch it. A local value always wins.
	StretchAffectsMeasureProperty = property.NewKey("StretchAffectsMeasure", false)
)

// coerceExtent turns negative and infinite explicit sizes into unset.
func coerceExtent(v float64) float64 {
	if v < 0 || math.IsInf(v, 0) {
		return layout.Unset
	}
	return v
}
