package layout

// Orientation selects the main axis of a stack.
type Orientation uint8

const (
	Vertical Orientation = iota
	Horizontal
)

// Justify controls how a stack distributes leftover main-axis space.
type Justify uint8

const (
	JustifyStart Justify = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Stack lays its children out one after another along a main axis.
// Children get their desired main extent and the full cross extent; their own
// alignment then places them inside that slot.
type Stack struct {
	Orientation Orientation
	Gap         float64
	Justify     Justify
}

// Hooks returns node hooks that make a node behave as this stack.
func (s Stack) Hooks() Hooks {
	return Hooks{
		MeasureOverride: s.measure,
		ArrangeOverride: s.arrange,
	}
}

func (s Stack) measure(t *Tree, id NodeID, available Size) Size {
	children := t.Children(id)
	if len(children) == 0 {
		return Size{}
	}

	// children are unconstrained along the main axis
	childAvailable := available
	if s.Orientation == Horizontal {
		childAvailable.Width = Infinite
	} else {
		childAvailable.Height = Infinite
	}

	var mainTotal, crossMax float64
	for _, child := range children {
		main, cross := s.split(t.Measure(child, childAvailable))
		mainTotal += main
		crossMax = max(crossMax, cross)
	}
	mainTotal += s.Gap * float64(len(children)-1)
	return s.join(mainTotal, crossMax)
}

func (s Stack) arrange(t *Tree, id NodeID, size Size) {
	children := t.Children(id)
	if len(children) == 0 {
		return
	}

	mainSize, crossSize := s.split(size)
	mains := make([]float64, len(children))
	used := s.Gap * float64(len(children)-1)
	for i, child := range children {
		desired, _ := t.Desired(child)
		mains[i], _ = s.split(desired)
		used += mains[i]
	}
	free := max(mainSize-used, 0)

	offset := justifyOffset(s.Justify, free, len(children))
	spacing := justifySpacing(s.Justify, free, len(children))
	for i, child := range children {
		var slot Rect
		if s.Orientation == Horizontal {
			slot = NewRect(offset, 0, mains[i], crossSize)
		} else {
			slot = NewRect(0, offset, crossSize, mains[i])
		}
		t.Arrange(child, slot)
		offset += mains[i] + s.Gap + spacing
	}
}

// split returns the (main, cross) extents of sz.
func (s Stack) split(sz Size) (float64, float64) {
	if s.Orientation == Horizontal {
		return sz.Width, sz.Height
	}
	return sz.Height, sz.Width
}

func (s Stack) join(main, cross float64) Size {
	if s.Orientation == Horizontal {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

// justifyOffset returns the position of the first child for the justify mode.
func justifyOffset(justify Justify, free float64, count int) float64 {
	if free <= 0 || count == 0 {
		return 0
	}

	switch justify {
	case JustifyEnd:
		return free
	case JustifyCenter:
		return free / 2
	case JustifySpaceAround:
		return free / float64(count*2)
	case JustifySpaceEvenly:
		return free / float64(count+1)
	default: // JustifyStart, JustifySpaceBetween
		return 0
	}
}

// justifySpacing returns the extra space inserted between children.
func justifySpacing(justify Justify, free float64, count int) float64 {
	if free <= 0 || count <= 1 {
		return 0
	}

	switch justify {
	case JustifySpaceBetween:
		return free / float64(count-1)
	case JustifySpaceAround:
		return free / float64(count)
	case JustifySpaceEvenly:
		return free / float64(count+1)
	default:
		return 0
	}
}
