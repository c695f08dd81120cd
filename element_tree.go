package arrange

import "github.com/grindlemire/go-arrange/internal/debug"

// --- Element's own API ---

// AddChild appends children to this Element. A child that already has a
// parent is moved. Children must live in the same layout tree.
func (e *Element) AddChild(children ...*Element) {
	for _, child := range children {
		if child == nil || child == e {
			continue
		}
		if child.tree != e.tree {
			debug.Log("arrange: cannot add %s to %s: different layout trees", child.Name(), e.Name())
			continue
		}
		if child.adapter != nil {
			debug.Log("arrange: cannot add natively hosted %s to %s", child.Name(), e.Name())
			continue
		}
		if child.parent != nil {
			child.parent.removeFromChildren(child)
		}
		child.parent = e
		e.children = append(e.children, child)
		e.tree.AddChild(e.node, child.node)
	}
}

// RemoveChild removes a child from this Element, unloading it.
// Returns true if the child was found and removed.
func (e *Element) RemoveChild(child *Element) bool {
	if child == nil || !e.removeFromChildren(child) {
		return false
	}
	child.parent = nil
	e.tree.RemoveChild(e.node, child.node)
	return true
}

// RemoveAllChildren removes every child from this Element.
func (e *Element) RemoveAllChildren() {
	for len(e.children) > 0 {
		e.RemoveChild(e.children[len(e.children)-1])
	}
}

func (e *Element) removeFromChildren(child *Element) bool {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			return true
		}
	}
	return false
}

// Children returns a copy of this Element's children.
func (e *Element) Children() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// Parent returns this Element's parent, or nil for a root.
func (e *Element) Parent() *Element {
	return e.parent
}
