// Package arena implements a slot allocator handing out integer handles to
// values stored in a single growable slice.
//
// Values are never moved to the heap individually: an Arena keeps them in a
// contiguous vector of slots, and programs refer to them through Handle values
// instead of pointers. Removing a value vacates its slot, and the index of the
// slot is pushed on a free stack so that the next allocation reuses it. The
// slot vector only ever grows.
//
// The zero value of Arena is a valid empty arena:
//
//	var a arena.Arena[string]
//	h := a.Alloc("hello")
//	if p := a.Get(h); p != nil {
//		*p = "world"
//	}
//	v, err := a.Remove(h)
//
// Arenas are not safe to use concurrently from multiple goroutines.
package arena

import "github.com/pkg/errors"

var (
	// ErrNilHandle is returned when removing the null handle.
	ErrNilHandle = errors.New("arena: nil handle")

	// ErrOutOfRange is returned when removing a handle which refers to a slot
	// that was never allocated.
	ErrOutOfRange = errors.New("arena: handle out of range")

	// ErrVacant is returned when removing a handle whose slot has already
	// been vacated, which usually indicates a double free.
	ErrVacant = errors.New("arena: slot is vacant")
)

// Stats contains counters tracking usage of an arena.
type Stats struct {
	Allocs  int64 // values allocated, including reused slots
	Reuses  int64 // allocations served from the free stack
	Removes int64 // values successfully removed
	Faults  int64 // failed removals
}

// Arena is a slot allocator for values of type T.
type Arena[T any] struct {
	slots []slot[T]
	free  []int
	stats Stats
}

type slot[T any] struct {
	value T
	used  bool
}

// New constructs a new arena configured with the given options.
func New[T any](options ...Option) *Arena[T] {
	a := new(Arena[T])
	a.Init(options...)
	return a
}

// Init initializes (or re-initializes) the arena. All handles previously
// returned by the arena become invalid.
func (a *Arena[T]) Init(options ...Option) {
	config := Config{}
	config.Apply(options...)

	a.slots = nil
	a.free = nil
	a.stats = Stats{}

	if config.Capacity > 0 {
		a.slots = make([]slot[T], 0, config.Capacity)
	}
}

// Len returns the number of values currently held in the arena.
//
// Complexity: O(1)
func (a *Arena[T]) Len() int { return len(a.slots) - len(a.free) }

// Slots returns the number of slots in the arena, occupied or vacant.
//
// Complexity: O(1)
func (a *Arena[T]) Slots() int { return len(a.slots) }

// Stats returns the usage counters of the arena.
func (a *Arena[T]) Stats() Stats { return a.stats }

// Alloc stores v in the arena and returns the handle of its slot.
//
// The most recently vacated slot is reused if there is one, otherwise a new
// slot is appended to the arena.
//
// Complexity: O(1) amortized
func (a *Arena[T]) Alloc(v T) Handle {
	a.stats.Allocs++

	if n := len(a.free); n > 0 {
		i := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[i] = slot[T]{value: v, used: true}
		a.stats.Reuses++
		return handleOf(i)
	}

	a.slots = append(a.slots, slot[T]{value: v, used: true})
	return handleOf(len(a.slots) - 1)
}

// Remove vacates the slot referenced by h and returns the value it held.
//
// The method returns ErrNilHandle, ErrOutOfRange or ErrVacant (wrapped with
// the handle) if h does not refer to an occupied slot. The arena is left
// unchanged in that case, in particular removing the same handle twice never
// releases its slot twice.
//
// Complexity: O(1) amortized
func (a *Arena[T]) Remove(h Handle) (value T, err error) {
	s, err := a.lookup(h)
	if err != nil {
		a.stats.Faults++
		return value, errors.Wrapf(err, "remove %s from arena of %d slots", h, len(a.slots))
	}
	value = s.value
	*s = slot[T]{}
	a.free = append(a.free, h.index())
	a.stats.Removes++
	return value, nil
}

// Get returns a pointer to the value held in the slot referenced by h, or nil
// if h is the null handle or does not refer to an occupied slot.
//
// The pointer is only valid until the next call to Alloc, which may move the
// slots to a larger storage area.
//
// Complexity: O(1)
func (a *Arena[T]) Get(h Handle) *T {
	if s, err := a.lookup(h); err == nil {
		return &s.value
	}
	return nil
}

// Reset vacates all slots of the arena. The storage is retained and reused by
// subsequent allocations.
//
// Complexity: O(n)
func (a *Arena[T]) Reset() {
	clear(a.slots)
	a.slots = a.slots[:0]
	a.free = a.free[:0]
}

// Clone returns a copy of the arena. Handles valid in a remain valid in the
// copy and refer to copies of the same values.
//
// Complexity: O(n)
func (a *Arena[T]) Clone() *Arena[T] {
	c := &Arena[T]{stats: a.stats}
	if a.slots != nil {
		c.slots = append(make([]slot[T], 0, cap(a.slots)), a.slots...)
	}
	if a.free != nil {
		c.free = append(make([]int, 0, cap(a.free)), a.free...)
	}
	return c
}

func (a *Arena[T]) lookup(h Handle) (*slot[T], error) {
	if h == Nil {
		return nil, ErrNilHandle
	}
	i := h.index()
	if i < 0 || i >= len(a.slots) {
		return nil, ErrOutOfRange
	}
	s := &a.slots[i]
	if !s.used {
		return nil, ErrVacant
	}
	return s, nil
}
