package main

import (
	"flag"
	"fmt"
	"io"
	"math"

	"github.com/grindlemire/go-arrange/pkg/layout"
	"github.com/grindlemire/go-arrange/pkg/shape"
)

// runFit implements the fit subcommand.
// It measures a path in a one-node tree and prints the desired size and the
// placement a renderer would apply.
func runFit(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("fit", flag.ContinueOnError)
	fs.SetOutput(out)
	width := fs.Float64("width", math.Inf(1), "available width")
	height := fs.Float64("height", math.Inf(1), "available height")
	explicitWidth := fs.Float64("explicit-width", math.NaN(), "explicit width of the node")
	explicitHeight := fs.Float64("explicit-height", math.NaN(), "explicit height of the node")
	stretch := fs.String("stretch", "Uniform", "stretch policy: none, fill, uniform, uniformtofill")
	stroke := fs.Float64("stroke", 0, "stroke thickness")
	preserveOrigin := fs.Bool("preserve-origin", false, "keep the path's offset from the origin")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("fit takes exactly one path argument, got %d", fs.NArg())
	}

	policy, ok := layout.ParseStretch(*stretch)
	if !ok {
		return fmt.Errorf("unknown stretch policy %q", *stretch)
	}

	path, err := shape.ParsePath(fs.Arg(0))
	if err != nil {
		return err
	}
	sh, err := shape.New(shape.WithPath(path), shape.WithStroke(*stroke), shape.WithPreserveOrigin(*preserveOrigin))
	if err != nil {
		return err
	}

	tree, err := layout.NewTree()
	if err != nil {
		return err
	}
	style := layout.DefaultStyle()
	style.Stretch = policy
	style.Width, style.Height = *explicitWidth, *explicitHeight
	id := tree.NewNode(style, layout.WithName("path"), layout.WithContent(sh))

	desired := tree.Measure(id, layout.NewSize(*width, *height))
	p := tree.Placement(id)
	b := path.Bounds()

	fmt.Fprintf(out, "bounds    %g %g %g %g\n", b.X, b.Y, b.Width, b.Height)
	fmt.Fprintf(out, "policy    %v\n", policy)
	fmt.Fprintf(out, "desired   %gx%g\n", desired.Width, desired.Height)
	fmt.Fprintf(out, "scale     %g %g\n", p.ScaleX, p.ScaleY)
	fmt.Fprintf(out, "translate %g %g\n", p.TranslateX, p.TranslateY)
	return nil
}
