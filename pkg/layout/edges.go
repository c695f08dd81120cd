package layout

// Thickness represents values for four sides of a box (margins).
type Thickness struct {
	Left, Top, Right, Bottom float64
}

// Uniform creates a Thickness with the same value on all sides.
func Uniform(n float64) Thickness {
	return Thickness{Left: n, Top: n, Right: n, Bottom: n}
}

// Symmetric creates a Thickness with horizontal (left/right) and vertical (top/bottom) values.
func Symmetric(h, v float64) Thickness {
	return Thickness{Left: h, Top: v, Right: h, Bottom: v}
}

// Horizontal returns the sum of Left and Right.
func (t Thickness) Horizontal() float64 {
	return t.Left + t.Right
}

// Vertical returns the sum of Top and Bottom.
func (t Thickness) Vertical() float64 {
	return t.Top + t.Bottom
}

// Size returns the space consumed by the thickness on each axis.
func (t Thickness) Size() Size {
	return Size{Width: t.Horizontal(), Height: t.Vertical()}
}
