// Package bridge connects a layout node to a native view host.
//
// The host speaks physical pixels and drives layout through two callbacks,
// measure and layout. The Adapter converts between the host's physical space
// and the tree's logical space, runs the node's measure and arrange, and
// guards against the host re-entering layout while a managed pass is already
// committing geometry to it.
package bridge

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/image/math/fixed"

	"github.com/grindlemire/go-arrange/pkg/layout"
)

// ErrInvalidScale is returned for a non-positive or non-finite scale factor.
var ErrInvalidScale = errors.New("bridge: invalid scale factor")

// maxPhysical is the largest pixel value representable in 26.6 fixed point.
const maxPhysical = 1<<25 - 1

// PhysicalSize is a size in device pixels.
type PhysicalSize struct {
	Width, Height int
}

// PhysicalRect is a rectangle in device pixels.
type PhysicalRect struct {
	X, Y, Width, Height int
}

// Size returns the rect's size.
func (r PhysicalRect) Size() PhysicalSize {
	return PhysicalSize{Width: r.Width, Height: r.Height}
}

// Scale converts between logical units and device pixels.
// The zero value is not usable; use NewScale or Identity.
type Scale struct {
	factor float64
}

// Identity is a scale of one pixel per logical unit.
var Identity = Scale{factor: 1}

// NewScale returns a scale of factor pixels per logical unit.
func NewScale(factor float64) (Scale, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		return Scale{}, fmt.Errorf("%w: %v", ErrInvalidScale, factor)
	}
	return Scale{factor: factor}, nil
}

// Factor returns the number of pixels per logical unit.
func (s Scale) Factor() float64 {
	return s.factor
}

// ToPhysical converts a logical value to pixels, rounding half up through
// 26.6 fixed point. The value is floored to 1/64 first so the half-up step is
// the only rounding. NaN converts to zero and out of range values clamp.
func (s Scale) ToPhysical(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	px := v * s.factor
	switch {
	case px >= maxPhysical:
		return maxPhysical
	case px <= -maxPhysical:
		return -maxPhysical
	}
	return fixed.Int26_6(math.Floor(px * 64)).Round()
}

// ToLogical converts pixels to logical units.
func (s Scale) ToLogical(px int) float64 {
	return float64(px) / s.factor
}

// Snap rounds a logical value to the nearest whole pixel. Non-finite values
// are returned unchanged.
func (s Scale) Snap(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return s.ToLogical(s.ToPhysical(v))
}

// LogicalToPhysical converts a logical size to pixels.
func (s Scale) LogicalToPhysical(sz layout.Size) PhysicalSize {
	return PhysicalSize{Width: s.ToPhysical(sz.Width), Height: s.ToPhysical(sz.Height)}
}

// PhysicalToLogical converts a pixel size to logical units.
func (s Scale) PhysicalToLogical(sz PhysicalSize) layout.Size {
	return layout.NewSize(s.ToLogical(sz.Width), s.ToLogical(sz.Height))
}

// RectToPhysical converts a logical rect to pixels.
func (s Scale) RectToPhysical(r layout.Rect) PhysicalRect {
	return PhysicalRect{
		X:      s.ToPhysical(r.X),
		Y:      s.ToPhysical(r.Y),
		Width:  s.ToPhysical(r.Width),
		Height: s.ToPhysical(r.Height),
	}
}

// RectToLogical converts a pixel rect to logical units.
func (s Scale) RectToLogical(r PhysicalRect) layout.Rect {
	return layout.NewRect(s.ToLogical(r.X), s.ToLogical(r.Y), s.ToLogical(r.Width), s.ToLogical(r.Height))
}

// TreeRounding returns a tree option that snaps every measured and arranged
// extent to whole pixels at this scale, so sizes compared across passes and
// against the host share one rounding.
func (s Scale) TreeRounding() layout.TreeOption {
	return layout.WithRounding(s.Snap)
}

// MeasureMode says how a host constrains one axis of a measure request.
type MeasureMode uint8

const (
	// Unspecified places no limit on the axis.
	Unspecified MeasureMode = iota
	// Exactly offers exactly Size pixels.
	Exactly
	// AtMost offers up to Size pixels.
	AtMost
)

// String returns the mode name.
func (m MeasureMode) String() string {
	switch m {
	case Unspecified:
		return "unspecified"
	case Exactly:
		return "exactly"
	case AtMost:
		return "at-most"
	default:
		return fmt.Sprintf("MeasureMode(%d)", uint8(m))
	}
}

// MeasureSpec is a host's constraint on one axis.
type MeasureSpec struct {
	Mode MeasureMode
	Size int
}

// UnspecifiedSpec returns an unconstrained spec.
func UnspecifiedSpec() MeasureSpec {
	return MeasureSpec{Mode: Unspecified}
}

// ExactSpec returns a spec of exactly px pixels.
func ExactSpec(px int) MeasureSpec {
	return MeasureSpec{Mode: Exactly, Size: max(px, 0)}
}

// AtMostSpec returns a spec of at most px pixels.
func AtMostSpec(px int) MeasureSpec {
	return MeasureSpec{Mode: AtMost, Size: max(px, 0)}
}

// SpecToLogical returns the logical available extent for a spec.
// Unspecified is unconstrained.
func (s Scale) SpecToLogical(spec MeasureSpec) float64 {
	if spec.Mode == Unspecified {
		return layout.Infinite
	}
	return s.ToLogical(spec.Size)
}
