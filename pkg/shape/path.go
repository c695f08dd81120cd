package shape

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/grindlemire/go-arrange/pkg/layout"
)

// ErrEmptyPath is returned for path data that contains no drawable points.
var ErrEmptyPath = errors.New("shape: empty path")

// curveSteps is the number of line segments a bezier is flattened into.
const curveSteps = 16

// Path is compiled SVG path data.
type Path struct {
	data     string
	bounds   layout.Rect
	polygons [][]layout.Point
}

// ParsePath compiles SVG path data ("M 0 0 L 10 10 Z" style).
// The bounds cover every point of the path, bezier control points included.
func ParsePath(d string) (*Path, error) {
	d = strings.TrimSpace(d)
	if d == "" {
		return nil, ErrEmptyPath
	}

	var cursor oksvg.PathCursor
	if err := cursor.CompilePath(d); err != nil {
		return nil, fmt.Errorf("compiling path %q: %w", d, err)
	}

	b := &builder{}
	cursor.Path.AddTo(b)
	b.flush()
	if !b.any {
		return nil, ErrEmptyPath
	}

	bounds := layout.NewRect(b.minX, b.minY, b.maxX-b.minX, b.maxY-b.minY)
	if !bounds.IsFinite() {
		return nil, fmt.Errorf("path %q: %w", d, layout.ErrInvalidGeometry)
	}
	return &Path{data: d, bounds: bounds, polygons: b.polygons}, nil
}

// Data returns the source path data.
func (p *Path) Data() string {
	return p.data
}

// Bounds returns the path's bounding box in path coordinates.
func (p *Path) Bounds() layout.Rect {
	return p.bounds
}

// Polylines returns the path flattened into polylines, one per subpath,
// with every point passed through place.
func (p *Path) Polylines(place layout.Placement) [][]layout.Point {
	out := make([][]layout.Point, 0, len(p.polygons))
	for _, poly := range p.polygons {
		line := make([]layout.Point, len(poly))
		for i, pt := range poly {
			line[i] = place.Apply(pt)
		}
		out = append(out, line)
	}
	return out
}

// builder is a rasterx.Adder that records bounds and flattened subpaths.
type builder struct {
	any                    bool
	minX, minY, maxX, maxY float64

	current  []layout.Point
	start    layout.Point
	polygons [][]layout.Point
}

var _ rasterx.Adder = (*builder)(nil)

func toPoint(p fixed.Point26_6) layout.Point {
	return layout.Point{X: float64(p.X) / 64, Y: float64(p.Y) / 64}
}

func (b *builder) include(pts ...layout.Point) {
	for _, p := range pts {
		if !b.any {
			b.minX, b.maxX, b.minY, b.maxY = p.X, p.X, p.Y, p.Y
			b.any = true
			continue
		}
		b.minX = math.Min(b.minX, p.X)
		b.maxX = math.Max(b.maxX, p.X)
		b.minY = math.Min(b.minY, p.Y)
		b.maxY = math.Max(b.maxY, p.Y)
	}
}

func (b *builder) last() layout.Point {
	if len(b.current) == 0 {
		return b.start
	}
	return b.current[len(b.current)-1]
}

func (b *builder) flush() {
	if len(b.current) > 1 {
		b.polygons = append(b.polygons, b.current)
	}
	b.current = nil
}

func (b *builder) Start(a fixed.Point26_6) {
	b.flush()
	p := toPoint(a)
	b.include(p)
	b.start = p
	b.current = []layout.Point{p}
}

func (b *builder) Line(a fixed.Point26_6) {
	p := toPoint(a)
	b.include(p)
	b.current = append(b.current, p)
}

func (b *builder) QuadBezier(c, a fixed.Point26_6) {
	p0, p1, p2 := b.last(), toPoint(c), toPoint(a)
	b.include(p1, p2)
	for i := 1; i <= curveSteps; i++ {
		t := float64(i) / curveSteps
		u := 1 - t
		b.current = append(b.current, layout.Point{
			X: u*u*p0.X + 2*u*t*p1.X + t*t*p2.X,
			Y: u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y,
		})
	}
}

func (b *builder) CubeBezier(c1, c2, a fixed.Point26_6) {
	p0, p1, p2, p3 := b.last(), toPoint(c1), toPoint(c2), toPoint(a)
	b.include(p1, p2, p3)
	for i := 1; i <= curveSteps; i++ {
		t := float64(i) / curveSteps
		u := 1 - t
		b.current = append(b.current, layout.Point{
			X: u*u*u*p0.X + 3*u*u*t*p1.X + 3*u*t*t*p2.X + t*t*t*p3.X,
			Y: u*u*u*p0.Y + 3*u*u*t*p1.Y + 3*u*t*t*p2.Y + t*t*t*p3.Y,
		})
	}
}

func (b *builder) Stop(closeLoop bool) {
	if closeLoop && len(b.current) > 1 {
		b.current = append(b.current, b.start)
	}
	b.flush()
}
