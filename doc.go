// Package arrange provides elements laid out by a two-pass measure/arrange
// engine that can be hosted inside a native view backend.
//
// An Element pairs a typed property store with a node in a layout.Tree.
// Changing a sizing property (Width, Height, Stretch, Margin) invalidates
// the element's measure; changing an alignment invalidates its arrange.
// A tree of elements is laid out by calling UpdateLayout on its layout.Tree,
// or by hosting the root element in a native container with HostIn, in which
// case the container drives measure and arrange through a bridge.Adapter.
//
// Example usage:
//
//	tree, _ := layout.NewTree(layout.WithViewport(layout.NewSize(400, 300)))
//	root, _ := arrange.New(tree, arrange.WithStack(layout.Stack{Gap: 4}))
//	icon, _ := arrange.New(tree, arrange.WithSize(32, 32), arrange.WithContent(sh))
//	root.AddChild(icon)
//	root.Attach()
//	tree.UpdateLayout()
//
// Everything in this package runs on one goroutine, the UI goroutine of the
// host when there is one.
package arrange
