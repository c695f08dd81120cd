package layout

import "math"

// Unset marks an explicit dimension that has not been set.
var Unset = math.NaN()

// Infinite marks an unconstrained available dimension.
var Infinite = math.Inf(1)

// IsUnset reports whether v is the NaN sentinel.
func IsUnset(v float64) bool {
	return math.IsNaN(v)
}

// isFinite reports whether v is neither NaN nor infinite.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Size is a width/height pair in logical pixels.
type Size struct {
	Width, Height float64
}

// NewSize creates a Size.
func NewSize(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// IsFinite reports whether both dimensions are finite numbers.
func (s Size) IsFinite() bool {
	return isFinite(s.Width) && isFinite(s.Height)
}

// Add returns s grown by other on both axes.
func (s Size) Add(other Size) Size {
	return Size{Width: s.Width + other.Width, Height: s.Height + other.Height}
}

// Max returns the per-axis maximum of s and other.
func (s Size) Max(other Size) Size {
	return Size{Width: max(s.Width, other.Width), Height: max(s.Height, other.Height)}
}

// Equal compares sizes treating two NaN values on the same axis as equal.
func (s Size) Equal(other Size) bool {
	return sameFloat(s.Width, other.Width) && sameFloat(s.Height, other.Height)
}

func sameFloat(a, b float64) bool {
	if a == b {
		return true
	}
	return math.IsNaN(a) && math.IsNaN(b)
}

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y float64
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Rect is a rectangle in logical pixels relative to the parent's origin.
// X and Y are the top-left corner; Width and Height are never negative.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a Rect, clamping negative dimensions to zero.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: max(width, 0), Height: max(height, 0)}
}

// RectFromSize creates a Rect at the origin with the given size.
func RectFromSize(s Size) Rect {
	return NewRect(0, 0, s.Width, s.Height)
}

// Size returns the dimensions of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// IsFinite reports whether every component is a finite number.
func (r Rect) IsFinite() bool {
	return isFinite(r.X) && isFinite(r.Y) && isFinite(r.Width) && isFinite(r.Height)
}

// Inset returns a new Rect shrunk by the given Thickness.
// The result never has negative dimensions.
func (r Rect) Inset(t Thickness) Rect {
	return NewRect(
		r.X+t.Left,
		r.Y+t.Top,
		r.Width-t.Horizontal(),
		r.Height-t.Vertical(),
	)
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}
