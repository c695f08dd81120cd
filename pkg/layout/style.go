package layout

import "strings"

// Stretch specifies how intrinsic content is mapped into the available space.
type Stretch uint8

const (
	StretchNone          Stretch = iota // Keep the intrinsic size
	StretchFill                         // Scale each axis independently to fill
	StretchUniform                      // Scale uniformly to fit inside
	StretchUniformToFill                // Scale uniformly to cover
)

// String returns the policy name.
func (s Stretch) String() string {
	switch s {
	case StretchNone:
		return "None"
	case StretchFill:
		return "Fill"
	case StretchUniform:
		return "Uniform"
	case StretchUniformToFill:
		return "UniformToFill"
	default:
		return "Stretch(?)"
	}
}

// ParseStretch parses a policy name as produced by String, ignoring case.
func ParseStretch(name string) (Stretch, bool) {
	for s := StretchNone; s <= StretchUniformToFill; s++ {
		if strings.EqualFold(s.String(), name) {
			return s, true
		}
	}
	return StretchNone, false
}

// Alignment specifies how a node is positioned inside its slot on one axis.
type Alignment uint8

const (
	AlignStretch Alignment = iota // Fill the slot
	AlignStart                    // Left or top
	AlignCenter                   // Centered
	AlignEnd                      // Right or bottom
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignStretch:
		return "Stretch"
	case AlignStart:
		return "Start"
	case AlignCenter:
		return "Center"
	case AlignEnd:
		return "End"
	default:
		return "Alignment(?)"
	}
}

// Style contains the layout properties of a node.
//
// The zero Style is not the default: a Width and Height of 0 are explicit
// sizes and collapse the node. Start from DefaultStyle and change fields.
type Style struct {
	// Explicit dimensions, Unset when not specified.
	Width  float64
	Height float64

	Stretch             Stretch
	HorizontalAlignment Alignment
	VerticalAlignment   Alignment
	Margin              Thickness

	// StretchAffectsMeasure is true when the parent is a native container
	// that cannot apply stretch alignment itself.
	StretchAffectsMeasure bool
}

// DefaultStyle returns a Style with no explicit size and stretch alignment.
func DefaultStyle() Style {
	return Style{
		Width:               Unset,
		Height:              Unset,
		Stretch:             StretchNone,
		HorizontalAlignment: AlignStretch,
		VerticalAlignment:   AlignStretch,
	}
}

// HasExplicitSize reports whether both explicit dimensions are set.
func (s Style) HasExplicitSize() bool {
	return !IsUnset(s.Width) && !IsUnset(s.Height)
}

// affectsMeasure reports whether changing from s to other changes desired sizes.
func (s Style) affectsMeasure(other Style) bool {
	return !sameFloat(s.Width, other.Width) ||
		!sameFloat(s.Height, other.Height) ||
		s.Stretch != other.Stretch ||
		s.Margin != other.Margin
}

// affectsArrange reports whether changing from s to other only moves or resizes the node.
func (s Style) affectsArrange(other Style) bool {
	return s.HorizontalAlignment != other.HorizontalAlignment ||
		s.VerticalAlignment != other.VerticalAlignment ||
		s.StretchAffectsMeasure != other.StretchAffectsMeasure
}
