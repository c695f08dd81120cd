package main

import (
	"flag"
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	arrange "github.com/grindlemire/go-arrange"
	"github.com/grindlemire/go-arrange/internal/debug"
	"github.com/grindlemire/go-arrange/pkg/bridge/fynehost"
	"github.com/grindlemire/go-arrange/pkg/layout"
	"github.com/grindlemire/go-arrange/pkg/shape"
)

const defaultPath = "M 10 80 C 40 10, 65 10, 95 80 S 150 150, 180 80 L 180 120 L 10 120 Z"

var (
	backgroundColor = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x24, A: 0xff}
	strokeColor     = color.NRGBA{R: 0x7f, G: 0xd1, B: 0xff, A: 0xff}
	captionColor    = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
)

// runShow implements the show subcommand.
func runShow(args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	pathData := fs.String("path", defaultPath, "SVG path data to draw")
	stretch := fs.String("stretch", "Uniform", "initial stretch policy")
	stroke := fs.Float64("stroke", 2, "stroke thickness")
	margin := fs.Float64("margin", 16, "margin around the path")
	animate := fs.Bool("animate", false, "pulse the margin from a background goroutine")
	if err := fs.Parse(args); err != nil {
		return err
	}

	policy, ok := layout.ParseStretch(*stretch)
	if !ok {
		return fmt.Errorf("unknown stretch policy %q", *stretch)
	}

	a := app.New()
	w := a.NewWindow("arrange")

	s, err := newScene(*pathData, policy, *stroke, *margin)
	if err != nil {
		return err
	}
	host, err := fynehost.New(s.objects(), fynehost.WithPlacer(s.place))
	if err != nil {
		return err
	}
	if _, err := s.root.HostIn(host); err != nil {
		return err
	}
	defer s.root.Unhost()

	picker := widget.NewSelect(policyNames(), func(name string) {
		if p, ok := layout.ParseStretch(name); ok {
			s.setStretch(p)
		}
	})
	picker.SetSelected(policy.String())

	w.SetContent(container.NewBorder(picker, nil, nil, nil, host.Container()))
	w.Resize(fyne.NewSize(480, 360))

	if *animate {
		stop := make(chan struct{})
		defer close(stop)
		go s.pulse(stop, *margin)
	}

	w.ShowAndRun()
	return nil
}

func policyNames() []string {
	names := make([]string, 0, 4)
	for p := layout.StretchNone; p <= layout.StretchUniformToFill; p++ {
		names = append(names, p.String())
	}
	return names
}

// scene is a vertical stack of a path and a caption, drawn with fyne canvas
// objects positioned from the arranged element bounds.
type scene struct {
	root    *arrange.Element
	icon    *arrange.Element
	caption *arrange.Element
	shape   *shape.Shape

	background *canvas.Rectangle
	lines      *fyne.Container
	label      *canvas.Text
}

func newScene(pathData string, policy layout.Stretch, stroke, margin float64) (*scene, error) {
	sh, err := shape.New(shape.WithPathData(pathData), shape.WithStroke(stroke))
	if err != nil {
		return nil, err
	}
	tree, err := layout.NewTree()
	if err != nil {
		return nil, err
	}

	s := &scene{
		shape:      sh,
		background: canvas.NewRectangle(backgroundColor),
		lines:      container.NewWithoutLayout(),
		label:      canvas.NewText("", captionColor),
	}

	s.root, err = arrange.New(tree,
		arrange.WithName("root"),
		arrange.WithStack(layout.Stack{Orientation: layout.Vertical, Gap: 8}),
	)
	if err != nil {
		return nil, err
	}
	s.icon, err = arrange.New(tree,
		arrange.WithName("icon"),
		arrange.WithContent(sh),
		arrange.WithStretch(policy),
		arrange.WithMargin(layout.Uniform(margin)),
		arrange.WithHeight(240),
	)
	if err != nil {
		return nil, err
	}
	s.caption, err = arrange.New(tree,
		arrange.WithName("caption"),
		arrange.WithHeight(20),
		arrange.WithMargin(layout.Symmetric(0, 4)),
		arrange.WithAlignment(layout.AlignCenter, layout.AlignStretch),
		arrange.WithWidth(240),
	)
	if err != nil {
		return nil, err
	}

	s.root.AddChild(s.icon, s.caption)
	s.icon.OnSizeChanged(func(_, current layout.Size) {
		debug.Log("show: icon resized to %vx%v", current.Width, current.Height)
	})
	return s, nil
}

func (s *scene) objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{s.background, s.lines, s.label}
}

func (s *scene) setStretch(p layout.Stretch) {
	s.icon.SetStretch(p)
	if a := s.root.Adapter(); a != nil {
		a.RequestLayout()
	}
}

// place runs after the host has arranged the tree for size.
func (s *scene) place(_ []fyne.CanvasObject, size fyne.Size) {
	s.background.Move(fyne.NewPos(0, 0))
	s.background.Resize(size)
	s.lines.Move(fyne.NewPos(0, 0))
	s.lines.Resize(size)

	inner, ok := s.absolute(s.icon)
	if !ok {
		return
	}

	var segments []fyne.CanvasObject
	for _, poly := range s.shape.Polylines(inner.Size(), s.icon.Stretch()) {
		for i := 1; i < len(poly); i++ {
			l := canvas.NewLine(strokeColor)
			l.StrokeWidth = float32(max(s.shape.Stroke(), 1))
			l.Position1 = fyne.NewPos(float32(inner.X+poly[i-1].X), float32(inner.Y+poly[i-1].Y))
			l.Position2 = fyne.NewPos(float32(inner.X+poly[i].X), float32(inner.Y+poly[i].Y))
			segments = append(segments, l)
		}
	}
	s.lines.Objects = segments
	s.lines.Refresh()

	if captionRect, ok := s.absolute(s.caption); ok {
		s.label.Text = fmt.Sprintf("%v %.0fx%.0f", s.icon.Stretch(), inner.Width, inner.Height)
		s.label.Alignment = fyne.TextAlignCenter
		s.label.Move(fyne.NewPos(float32(captionRect.X), float32(captionRect.Y)))
		s.label.Resize(fyne.NewSize(float32(captionRect.Width), float32(captionRect.Height)))
		s.label.Refresh()
	}
}

// absolute walks the parent chain to convert parent-relative bounds to the
// root's coordinate space.
func (s *scene) absolute(e *arrange.Element) (layout.Rect, bool) {
	r, ok := e.Bounds()
	if !ok {
		return layout.Rect{}, false
	}
	origin := r.Origin()
	for p := e.Parent(); p != nil; p = p.Parent() {
		pr, ok := p.Bounds()
		if !ok {
			return layout.Rect{}, false
		}
		origin = origin.Add(pr.Origin())
	}
	return layout.NewRect(origin.X, origin.Y, r.Width, r.Height), true
}

// pulse changes the icon margin from outside the UI goroutine, handing each
// change to fyne.Do.
func (s *scene) pulse(stop <-chan struct{}, base float64) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	grow := true
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			m := base
			if grow {
				m = base * 2
			}
			grow = !grow
			fyne.Do(func() {
				s.icon.SetMargin(layout.Uniform(m))
				if a := s.root.Adapter(); a != nil {
					a.RequestLayout()
				}
			})
		}
	}
}
