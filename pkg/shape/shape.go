// Package shape provides vector path content for layout nodes.
//
// A Shape measures by fitting the bounding box of its path, plus stroke,
// into the space its node is offered, following the node's Stretch policy.
// After arrange, Shape.Placement gives the scale and translation a renderer
// applies to the path so it fills the arranged size.
package shape

import (
	"errors"
	"fmt"
	"math"

	"github.com/grindlemire/go-arrange/internal/debug"
	"github.com/grindlemire/go-arrange/pkg/layout"
)

// ErrInvalidStroke is returned for a negative or non-finite stroke thickness.
var ErrInvalidStroke = errors.New("shape: invalid stroke thickness")

// Shape is a vector path with stroke. It implements layout.Content.
type Shape struct {
	path           *Path
	stroke         float64
	preserveOrigin bool
}

var _ layout.Content = (*Shape)(nil)

// Option configures a Shape.
type Option func(*Shape) error

// WithPathData sets the path from SVG path data. Data that does not compile
// leaves the shape without content.
func WithPathData(d string) Option {
	return func(s *Shape) error {
		s.SetPathData(d)
		return nil
	}
}

// WithPath sets an already compiled path.
func WithPath(p *Path) Option {
	return func(s *Shape) error {
		s.path = p
		return nil
	}
}

// WithStroke sets the stroke thickness.
func WithStroke(thickness float64) Option {
	return func(s *Shape) error {
		if math.IsNaN(thickness) || math.IsInf(thickness, 0) || thickness < 0 {
			return fmt.Errorf("%w: %v", ErrInvalidStroke, thickness)
		}
		s.stroke = thickness
		return nil
	}
}

// WithPreserveOrigin keeps the path's offset from (0,0) as part of its
// measured extent instead of translating the bounds to the origin.
func WithPreserveOrigin(preserve bool) Option {
	return func(s *Shape) error {
		s.preserveOrigin = preserve
		return nil
	}
}

// New creates a shape.
func New(opts ...Option) (*Shape, error) {
	s := &Shape{}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// SetPathData replaces the path. Empty or invalid data clears it and is
// reported through the debug log. The caller is responsible for invalidating
// the measure of any node showing the shape.
func (s *Shape) SetPathData(d string) {
	p, err := ParsePath(d)
	if err != nil {
		if !errors.Is(err, ErrEmptyPath) {
			debug.Log("shape: dropping path: %v", err)
		}
		s.path = nil
		return
	}
	s.path = p
}

// Path returns the compiled path, or nil.
func (s *Shape) Path() *Path {
	return s.path
}

// Stroke returns the stroke thickness.
func (s *Shape) Stroke() float64 {
	return s.stroke
}

// ContentBox implements layout.Content.
func (s *Shape) ContentBox() (layout.Rect, layout.FitOptions, bool) {
	if s.path == nil {
		return layout.Rect{}, layout.FitOptions{}, false
	}
	return s.path.bounds, s.fitOptions(), true
}

func (s *Shape) fitOptions() layout.FitOptions {
	return layout.FitOptions{
		StrokeThickness: s.stroke,
		PreserveOrigin:  s.preserveOrigin,
	}
}

// Placement returns the transform that fits the path into an arranged size
// under the given stretch policy.
func (s *Shape) Placement(arranged layout.Size, policy layout.Stretch) (layout.Placement, error) {
	if s.path == nil {
		return layout.IdentityPlacement(), nil
	}
	unset := layout.Size{Width: layout.Unset, Height: layout.Unset}
	return layout.ComputeFit(s.path.bounds, arranged, unset, policy, s.fitOptions())
}

// Polylines returns the flattened path placed for the arranged size.
func (s *Shape) Polylines(arranged layout.Size, policy layout.Stretch) [][]layout.Point {
	if s.path == nil {
		return nil
	}
	p, err := s.Placement(arranged, policy)
	if err != nil {
		debug.Log("shape: %v", err)
		return nil
	}
	return s.path.Polylines(p)
}
