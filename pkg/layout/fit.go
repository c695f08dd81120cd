package layout

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGeometry reports a NaN or infinite bounding box or transform.
// It is always recovered locally by substituting a zero size or identity placement.
var ErrInvalidGeometry = errors.New("invalid geometry")

// FitResult is the outcome of fitting an intrinsic size into an available size.
type FitResult struct {
	Size   Size
	ScaleX float64
	ScaleY float64

	// Valid is false when the intrinsic size was NaN, infinite or negative.
	// In that case Size is zero and both scales are 1.
	Valid bool
}

// FitOptions carries the content-specific terms of a fit.
type FitOptions struct {
	// StrokeThickness is removed from the control size before scaling and
	// added back to the final size after scaling.
	StrokeThickness float64

	// PreserveOrigin grows the intrinsic box to include its offset from (0,0)
	// and suppresses the half-stroke translation.
	PreserveOrigin bool
}

// Fit maps intrinsic into available under policy.
//
// On each axis the control size is the available size when it is finite and
// the explicit size otherwise. A zero intrinsic dimension scales by 1, an
// unconstrained axis scales by 1 under Fill and is ignored by Uniform and
// UniformToFill. The result never contains NaN or infinity.
func Fit(intrinsic, available Size, explicitWidth, explicitHeight float64, policy Stretch) FitResult {
	return fit(intrinsic, available, explicitWidth, explicitHeight, policy, 0)
}

func fit(intrinsic, available Size, explicitWidth, explicitHeight float64, policy Stretch, stroke float64) FitResult {
	if !intrinsic.IsFinite() || intrinsic.Width < 0 || intrinsic.Height < 0 {
		return FitResult{ScaleX: 1, ScaleY: 1}
	}
	if !isFinite(stroke) || stroke < 0 {
		stroke = 0
	}

	controlWidth := controlDimension(available.Width, explicitWidth)
	controlHeight := controlDimension(available.Height, explicitHeight)

	scaleX := axisScale(controlWidth, stroke, intrinsic.Width)
	scaleY := axisScale(controlHeight, stroke, intrinsic.Height)

	if math.IsInf(scaleX, 0) && math.IsInf(scaleY, 0) {
		scaleX, scaleY = 1, 1
	}

	switch policy {
	case StretchFill:
		if !isFinite(scaleX) {
			scaleX = 1
		}
		if !isFinite(scaleY) {
			scaleY = 1
		}
	case StretchUniform:
		s := uniformScale(scaleX, scaleY, math.Min)
		scaleX, scaleY = s, s
	case StretchUniformToFill:
		s := uniformScale(scaleX, scaleY, math.Max)
		scaleX, scaleY = s, s
	default:
		scaleX, scaleY = 1, 1
	}

	return FitResult{
		Size: Size{
			Width:  intrinsic.Width*scaleX + stroke,
			Height: intrinsic.Height*scaleY + stroke,
		},
		ScaleX: scaleX,
		ScaleY: scaleY,
		Valid:  true,
	}
}

// controlDimension picks the size content is scaled against on one axis.
func controlDimension(available, explicit float64) float64 {
	if isFinite(available) {
		return max(available, 0)
	}
	return explicit
}

// axisScale returns +Inf for an unconstrained axis.
func axisScale(control, stroke, intrinsic float64) float64 {
	if intrinsic == 0 {
		return 1
	}
	if !isFinite(control) {
		return math.Inf(1)
	}
	return max(control-stroke, 0) / intrinsic
}

func uniformScale(x, y float64, pick func(a, b float64) float64) float64 {
	switch {
	case isFinite(x) && isFinite(y):
		return pick(x, y)
	case isFinite(x):
		return x
	case isFinite(y):
		return y
	default:
		return 1
	}
}

// Placement is the fitted size plus the affine scale/translate that positions
// content whose own origin is not (0,0) inside the fitted box.
type Placement struct {
	Size       Size
	ScaleX     float64
	ScaleY     float64
	TranslateX float64
	TranslateY float64
}

// IdentityPlacement is the zero-size fallback used for invalid content.
func IdentityPlacement() Placement {
	return Placement{ScaleX: 1, ScaleY: 1}
}

// Apply maps a point from content space into the fitted box.
func (p Placement) Apply(pt Point) Point {
	return Point{
		X: pt.X*p.ScaleX + p.TranslateX,
		Y: pt.Y*p.ScaleY + p.TranslateY,
	}
}

func (p Placement) isFinite() bool {
	return p.Size.IsFinite() &&
		isFinite(p.ScaleX) && isFinite(p.ScaleY) &&
		isFinite(p.TranslateX) && isFinite(p.TranslateY)
}

// ComputeFit fits the bounding box of some content into available and derives
// the translation needed to draw it. On invalid geometry it returns an
// identity placement with zero size and an error wrapping ErrInvalidGeometry.
func ComputeFit(box Rect, available, explicit Size, policy Stretch, opts FitOptions) (Placement, error) {
	if !box.IsFinite() {
		return IdentityPlacement(), fmt.Errorf("bounding box %+v: %w", box, ErrInvalidGeometry)
	}

	intrinsic := box.Size()
	if opts.PreserveOrigin {
		intrinsic.Width += box.X
		intrinsic.Height += box.Y
	}

	r := fit(intrinsic, available, explicit.Width, explicit.Height, policy, opts.StrokeThickness)
	if !r.Valid {
		return IdentityPlacement(), fmt.Errorf("intrinsic size %+v: %w", intrinsic, ErrInvalidGeometry)
	}

	p := Placement{Size: r.Size, ScaleX: r.ScaleX, ScaleY: r.ScaleY}
	if policy != StretchNone {
		p.TranslateX = -box.X * r.ScaleX
		p.TranslateY = -box.Y * r.ScaleY
	}
	if !opts.PreserveOrigin && opts.StrokeThickness > 0 {
		p.TranslateX += opts.StrokeThickness * 0.5
		p.TranslateY += opts.StrokeThickness * 0.5
	}

	if !p.isFinite() {
		return IdentityPlacement(), fmt.Errorf("placement %+v: %w", p, ErrInvalidGeometry)
	}
	return p, nil
}
