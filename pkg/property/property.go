// Package property provides a small typed property store with value
// precedence and change observers.
//
// A Key declares a property's name, default value and optional coercion.
// A Store holds per-precedence values for any number of keys; the effective
// value is the highest precedence value that is set, passed through the
// key's coercion, or the default when nothing is set.
//
// Example usage:
//
//	width := property.NewKey("Width", math.NaN())
//	store := property.NewStore()
//	unobserve := property.Observe(store, width, func(old, cur float64) {
//	    fmt.Println("width changed to", cur)
//	})
//	property.Set(store, width, 120)
//	unobserve()
//
// Observers run synchronously on the goroutine that changed the value. Use
// Store.Batch to coalesce several changes into one notification per observer.
// A Store is not safe for concurrent use.
package property

import (
	"fmt"

	"github.com/grindlemire/go-arrange/internal/debug"
)

// Precedence orders the sources a property value can come from.
type Precedence uint8

const (
	// Default is the lowest precedence, used for values computed by the
	// framework that a caller may override.
	Default Precedence = iota
	// Local is a value set directly by the caller.
	Local

	numPrecedence
)

// String returns the precedence name.
func (p Precedence) String() string {
	switch p {
	case Default:
		return "default"
	case Local:
		return "local"
	default:
		return fmt.Sprintf("Precedence(%d)", uint8(p))
	}
}

// Key identifies a property of type T.
type Key[T comparable] struct {
	name   string
	def    T
	coerce func(T) T
}

// KeyOption configures a Key.
type KeyOption[T comparable] func(*Key[T])

// WithCoerce sets a function applied to the effective value before it is
// stored and reported.
func WithCoerce[T comparable](fn func(T) T) KeyOption[T] {
	return func(k *Key[T]) {
		k.coerce = fn
	}
}

// NewKey declares a property with a name and default value.
func NewKey[T comparable](name string, def T, opts ...KeyOption[T]) *Key[T] {
	k := &Key[T]{name: name, def: def}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Name returns the property name.
func (k *Key[T]) Name() string {
	return k.name
}

// Default returns the property's default value.
func (k *Key[T]) Default() T {
	return k.def
}

func (k *Key[T]) apply(v T) T {
	if k.coerce == nil {
		return v
	}
	return k.coerce(v)
}

// Unobserve removes an observer registered with Observe.
type Unobserve func()

// Store holds property values for one owner.
type Store struct {
	slots  map[any]any // *Key[T] -> *slot[T]
	nextID uint64

	batchDepth   int
	pending      map[uint64]func() // latest notification per observer
	pendingOld   map[uint64]any    // value each observer last saw before the batch
	pendingOrder []uint64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		slots:      make(map[any]any),
		pending:    make(map[uint64]func()),
		pendingOld: make(map[uint64]any),
	}
}

// Batch runs fn and defers observer notifications until it returns. Each
// observer then runs at most once, with the value it last saw before the
// batch and the final value, and not at all if the two are equal.
// Batches nest; notifications run when the outermost batch ends.
func (s *Store) Batch(fn func()) {
	s.batchDepth++
	defer func() {
		s.batchDepth--
		if s.batchDepth == 0 {
			s.flush()
		}
	}()
	fn()
}

func (s *Store) flush() {
	if len(s.pendingOrder) == 0 {
		return
	}
	order, pending := s.pendingOrder, s.pending
	s.pendingOrder = nil
	s.pending = make(map[uint64]func())
	s.pendingOld = make(map[uint64]any)

	debug.Log("property: flushing %d batched notifications", len(order))
	for _, id := range order {
		pending[id]()
	}
}

type observer[T comparable] struct {
	id     uint64
	fn     func(old, cur T)
	active bool
}

type slot[T comparable] struct {
	values    [numPrecedence]T
	set       [numPrecedence]bool
	effective T
	observers []*observer[T]
}

func slotFor[T comparable](s *Store, k *Key[T]) *slot[T] {
	if existing, ok := s.slots[k]; ok {
		return existing.(*slot[T])
	}
	sl := &slot[T]{effective: k.apply(k.def)}
	s.slots[k] = sl
	return sl
}

// Get returns the effective value of k.
func Get[T comparable](s *Store, k *Key[T]) T {
	if existing, ok := s.slots[k]; ok {
		return existing.(*slot[T]).effective
	}
	return k.apply(k.def)
}

// Set sets k at Local precedence.
func Set[T comparable](s *Store, k *Key[T], v T) {
	SetAt(s, k, Local, v)
}

// SetAt sets k at precedence p. Observers run if the effective value changed.
func SetAt[T comparable](s *Store, k *Key[T], p Precedence, v T) {
	if p >= numPrecedence {
		debug.Log("property: ignoring %s set at invalid %v", k.name, p)
		return
	}
	sl := slotFor(s, k)
	sl.values[p] = v
	sl.set[p] = true
	refresh(s, k, sl)
}

// Clear removes the value of k at precedence p.
func Clear[T comparable](s *Store, k *Key[T], p Precedence) {
	if p >= numPrecedence {
		return
	}
	existing, ok := s.slots[k]
	if !ok {
		return
	}
	sl := existing.(*slot[T])
	var zero T
	sl.values[p] = zero
	sl.set[p] = false
	refresh(s, k, sl)
}

// IsSet reports whether k has a value at precedence p.
func IsSet[T comparable](s *Store, k *Key[T], p Precedence) bool {
	if p >= numPrecedence {
		return false
	}
	existing, ok := s.slots[k]
	return ok && existing.(*slot[T]).set[p]
}

// Coerce recomputes the effective value of k, for use when the inputs of
// the key's coerce function changed.
func Coerce[T comparable](s *Store, k *Key[T]) {
	refresh(s, k, slotFor(s, k))
}

// Observe registers fn to run whenever the effective value of k changes.
// Observers run in registration order.
func Observe[T comparable](s *Store, k *Key[T], fn func(old, cur T)) Unobserve {
	sl := slotFor(s, k)
	s.nextID++
	o := &observer[T]{id: s.nextID, fn: fn, active: true}
	sl.observers = append(sl.observers, o)
	return func() {
		o.active = false
	}
}

// refresh recomputes the effective value and notifies observers on change.
func refresh[T comparable](s *Store, k *Key[T], sl *slot[T]) {
	next := k.def
	for p := numPrecedence; p > 0; p-- {
		if sl.set[p-1] {
			next = sl.values[p-1]
			break
		}
	}
	next = k.apply(next)

	old := sl.effective
	if same(old, next) {
		return
	}
	sl.effective = next

	active := sl.observers[:0]
	for _, o := range sl.observers {
		if o.active {
			active = append(active, o)
		}
	}
	sl.observers = active

	// snapshot so observers may register or remove observers
	observers := append([]*observer[T](nil), active...)
	if s.batchDepth > 0 {
		for _, o := range observers {
			from := old
			if first, queued := s.pendingOld[o.id]; queued {
				from = first.(T)
			} else {
				s.pendingOrder = append(s.pendingOrder, o.id)
				s.pendingOld[o.id] = old
			}
			s.pending[o.id] = func() {
				if o.active && !same(from, next) {
					o.fn(from, next)
				}
			}
		}
		return
	}

	for _, o := range observers {
		if o.active {
			o.fn(old, next)
		}
	}
}

// same compares values treating NaN as equal to itself.
func same[T comparable](a, b T) bool {
	return a == b || (a != a && b != b)
}
