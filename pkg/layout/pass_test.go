package layout

import "testing"

func TestUpdateLayout_ViewportRoot(t *testing.T) {
	type tc struct {
		viewport Size
		style    Style
		expect   Rect
	}

	tests := map[string]tc{
		"finite viewport fills root": {
			viewport: NewSize(300, 200),
			style:    DefaultStyle(),
			expect:   NewRect(0, 0, 300, 200),
		},
		"infinite viewport uses desired size": {
			viewport: NewSize(Infinite, Infinite),
			style:    fixedStyle(40, 30),
			expect:   NewRect(0, 0, 40, 30),
		},
		"fixed root aligned to the start": {
			viewport: NewSize(300, 200),
			style: func() Style {
				s := fixedStyle(100, 50)
				s.HorizontalAlignment = AlignStart
				s.VerticalAlignment = AlignStart
				return s
			}(),
			expect: NewRect(0, 0, 100, 50),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newTestTree(t, WithViewport(tt.viewport))
			root := tree.NewNode(tt.style)
			tree.Attach(root)

			stats := tree.UpdateLayout()

			if stats.Measured != 1 || stats.Arranged != 1 {
				t.Errorf("stats = %+v, want one measure and one arrange", stats)
			}
			got, ok := tree.Arranged(root)
			if !ok {
				t.Fatal("root not arranged")
			}
			if got != tt.expect {
				t.Errorf("Arranged() = %v, want %v", got, tt.expect)
			}
			if tree.Pending() {
				t.Error("work left after pass")
			}
		})
	}
}

func TestUpdateLayout_MeasuresBeforeArranging(t *testing.T) {
	tree := newTestTree(t, WithViewport(NewSize(100, 100)))
	var events []string
	record := func(name string) Hooks {
		return Hooks{
			MeasureOverride: func(_ *Tree, _ NodeID, _ Size) Size {
				events = append(events, "measure:"+name)
				return NewSize(10, 10)
			},
			BeforeArrange: func() { events = append(events, "arrange:"+name) },
		}
	}
	a := tree.NewNode(DefaultStyle(), WithHooks(record("a")))
	b := tree.NewNode(DefaultStyle(), WithHooks(record("b")))
	tree.Attach(a)
	tree.Attach(b)

	tree.UpdateLayout()

	want := []string{"measure:a", "measure:b", "arrange:a", "arrange:b"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, events[i], want[i])
		}
	}
}

func TestUpdateLayout_DefersInvalidationsRaisedDuringPass(t *testing.T) {
	tree := newTestTree(t, WithViewport(NewSize(100, 100)))
	other := tree.NewNode(DefaultStyle(), WithName("other"))
	tree.Attach(other)
	tree.UpdateLayout()

	fired := false
	trigger := tree.NewNode(DefaultStyle(), WithName("trigger"), WithHooks(Hooks{
		MeasureOverride: func(tr *Tree, _ NodeID, _ Size) Size {
			if !fired {
				fired = true
				tr.InvalidateMeasure(other)
				if tr.IsMeasureDirty(other) {
					t.Error("invalidation applied during the pass")
				}
			}
			return Size{}
		},
	}))
	tree.Attach(trigger)

	stats := tree.UpdateLayout()

	if stats.Deferred != 1 {
		t.Errorf("Deferred = %d, want 1", stats.Deferred)
	}
	if !tree.Pending() || !tree.IsMeasureDirty(other) {
		t.Fatal("deferred invalidation was not queued for the next pass")
	}

	stats = tree.UpdateLayout()
	if stats.Measured != 1 || stats.Deferred != 0 {
		t.Errorf("second pass stats = %+v, want one measure and nothing deferred", stats)
	}
	if tree.Pending() {
		t.Error("work left after second pass")
	}
}

func TestUpdateLayout_ReentryIgnored(t *testing.T) {
	tree := newTestTree(t, WithViewport(NewSize(50, 50)))
	var inner PassStats
	root := tree.NewNode(DefaultStyle(), WithHooks(Hooks{
		MeasureOverride: func(tr *Tree, _ NodeID, _ Size) Size {
			inner = tr.UpdateLayout()
			if !tr.InPass() {
				t.Error("InPass() = false inside a pass")
			}
			return Size{}
		},
	}))
	tree.Attach(root)

	tree.UpdateLayout()

	if inner != (PassStats{}) {
		t.Errorf("re-entrant pass did work: %+v", inner)
	}
	if tree.InPass() {
		t.Error("InPass() = true after the pass")
	}
}

func TestUpdateLayout_ArrangeOnlyInvalidation(t *testing.T) {
	tree := newTestTree(t, WithViewport(NewSize(200, 200)))
	content := &countingContent{box: NewRect(0, 0, 40, 20)}
	root := tree.NewNode(DefaultStyle())
	style := fixedStyle(40, 20)
	style.HorizontalAlignment = AlignStart
	leaf := tree.NewNode(style, WithContent(content))
	tree.AddChild(root, leaf)
	tree.Attach(root)
	tree.UpdateLayout()

	callsBefore := content.calls
	changes := 0
	tree.OnSizeChanged(leaf, func(_, _ Size) { changes++ })

	style.HorizontalAlignment = AlignEnd
	tree.SetStyle(leaf, style)
	if tree.IsMeasureDirty(leaf) || tree.IsMeasureDirty(root) {
		t.Fatal("alignment change should not require measure")
	}

	stats := tree.UpdateLayout()

	if content.calls != callsBefore {
		t.Errorf("content consulted %d more times", content.calls-callsBefore)
	}
	if stats.Measured != 0 {
		t.Errorf("Measured = %d, want 0", stats.Measured)
	}
	if changes != 0 {
		t.Errorf("size changed fired %d times", changes)
	}
	got, _ := tree.Arranged(leaf)
	if want := NewRect(160, 90, 40, 20); got != want {
		t.Errorf("Arranged() = %v, want %v", got, want)
	}
}

func TestUpdateLayout_DropsDetachedWork(t *testing.T) {
	tree := newTestTree(t, WithViewport(NewSize(100, 100)))
	root := tree.NewNode(DefaultStyle())
	tree.Attach(root)
	tree.Detach(root)

	stats := tree.UpdateLayout()

	if stats.Measured != 0 || stats.Arranged != 0 {
		t.Errorf("stats = %+v, want no work for a detached root", stats)
	}
	if _, ok := tree.Arranged(root); ok {
		t.Error("detached root was arranged")
	}
}
