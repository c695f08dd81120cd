package property

import (
	"math"
	"testing"
)

func TestGet_Precedence(t *testing.T) {
	type tc struct {
		setDefault   *float64
		setLocal     *float64
		clearLocal   bool
		expect       float64
		expectLocal  bool
		expectDefSet bool
	}

	ptr := func(v float64) *float64 { return &v }

	tests := map[string]tc{
		"nothing set uses key default": {
			expect: 10,
		},
		"default precedence overrides key default": {
			setDefault:   ptr(20),
			expect:       20,
			expectDefSet: true,
		},
		"local wins over default": {
			setDefault:   ptr(20),
			setLocal:     ptr(30),
			expect:       30,
			expectLocal:  true,
			expectDefSet: true,
		},
		"clearing local falls back": {
			setDefault:   ptr(20),
			setLocal:     ptr(30),
			clearLocal:   true,
			expect:       20,
			expectDefSet: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			key := NewKey("Width", 10.0)
			s := NewStore()
			if tt.setDefault != nil {
				SetAt(s, key, Default, *tt.setDefault)
			}
			if tt.setLocal != nil {
				Set(s, key, *tt.setLocal)
			}
			if tt.clearLocal {
				Clear(s, key, Local)
			}

			if got := Get(s, key); got != tt.expect {
				t.Errorf("Get() = %v, want %v", got, tt.expect)
			}
			if got := IsSet(s, key, Local); got != tt.expectLocal {
				t.Errorf("IsSet(Local) = %v, want %v", got, tt.expectLocal)
			}
			if got := IsSet(s, key, Default); got != tt.expectDefSet {
				t.Errorf("IsSet(Default) = %v, want %v", got, tt.expectDefSet)
			}
		})
	}
}

func TestObserve_EdgeTriggered(t *testing.T) {
	key := NewKey("Height", math.NaN())
	s := NewStore()

	var changes [][2]float64
	unobserve := Observe(s, key, func(old, cur float64) {
		changes = append(changes, [2]float64{old, cur})
	})

	Set(s, key, math.NaN()) // NaN equals NaN, no change
	Set(s, key, 5)
	Set(s, key, 5)
	SetAt(s, key, Default, 7) // hidden by local value
	Clear(s, key, Local)

	if len(changes) != 2 {
		t.Fatalf("got %d notifications, want 2: %v", len(changes), changes)
	}
	if !math.IsNaN(changes[0][0]) || changes[0][1] != 5 {
		t.Errorf("first change = %v, want NaN -> 5", changes[0])
	}
	if changes[1] != [2]float64{5, 7} {
		t.Errorf("second change = %v, want 5 -> 7", changes[1])
	}

	unobserve()
	Set(s, key, 100)
	if len(changes) != 2 {
		t.Error("observer ran after unobserve")
	}
}

func TestObserve_RegistrationOrder(t *testing.T) {
	key := NewKey("Name", "")
	s := NewStore()
	var order []string
	Observe(s, key, func(_, _ string) { order = append(order, "first") })
	Observe(s, key, func(_, _ string) { order = append(order, "second") })

	Set(s, key, "x")

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("order = %v", order)
	}
}

func TestCoerce(t *testing.T) {
	limit := 50
	key := NewKey("Count", 0, WithCoerce(func(v int) int { return min(v, limit) }))
	s := NewStore()

	var last int
	Observe(s, key, func(_, cur int) { last = cur })

	Set(s, key, 80)
	if got := Get(s, key); got != 50 {
		t.Fatalf("Get() = %d, want coerced 50", got)
	}

	limit = 60
	Coerce(s, key)
	if got := Get(s, key); got != 60 {
		t.Errorf("Get() after Coerce = %d, want 60", got)
	}
	if last != 60 {
		t.Errorf("observer saw %d, want 60", last)
	}
}

func TestBatch(t *testing.T) {
	type tc struct {
		fn           func(s *Store, k *Key[int])
		expectCalls  int
		expectChange [2]int
	}

	tests := map[string]tc{
		"coalesces multiple sets": {
			fn: func(s *Store, k *Key[int]) {
				Set(s, k, 1)
				Set(s, k, 2)
				Set(s, k, 3)
			},
			expectCalls:  1,
			expectChange: [2]int{0, 3},
		},
		"net zero change does not notify": {
			fn: func(s *Store, k *Key[int]) {
				Set(s, k, 4)
				Set(s, k, 0)
			},
		},
		"nested batches flush once": {
			fn: func(s *Store, k *Key[int]) {
				Set(s, k, 1)
				s.Batch(func() {
					Set(s, k, 9)
				})
			},
			expectCalls:  1,
			expectChange: [2]int{0, 9},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			key := NewKey("Value", 0)
			s := NewStore()
			calls := 0
			var change [2]int
			Observe(s, key, func(old, cur int) {
				calls++
				change = [2]int{old, cur}
			})

			s.Batch(func() {
				tt.fn(s, key)
				if calls != 0 {
					t.Error("observer ran inside the batch")
				}
			})

			if calls != tt.expectCalls {
				t.Errorf("calls = %d, want %d", calls, tt.expectCalls)
			}
			if tt.expectCalls > 0 && change != tt.expectChange {
				t.Errorf("change = %v, want %v", change, tt.expectChange)
			}
		})
	}
}

func TestPrecedenceString(t *testing.T) {
	if Default.String() != "default" || Local.String() != "local" {
		t.Errorf("unexpected names %q %q", Default, Local)
	}
	if got := Precedence(9).String(); got != "Precedence(9)" {
		t.Errorf("String() = %q", got)
	}
}
