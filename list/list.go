// Package list contains the implementation of a type-safe, memory-dense,
// doubly-linked list.
//
// The standard library provides an implementation of a doubly-linked list in
// the container/list package. Each element of those lists is a separate heap
// object carrying two pointers, one to its predecessor and one to its
// successor. The list implementation in this package adopts a different
// approach: all nodes are stored in a single contiguous arena (see the arena
// package), nodes refer to each other through integer handles instead of
// pointers, and each node stores a single link word which is the exclusive-or
// of the handles of its two neighbors.
//
// Because x ^ x == 0 and x ^ 0 == x, a link word can be updated without
// knowing which of the two neighbors it encodes, and the neighbor of a node can
// be recovered as long as the other neighbor is known. The ends of the list
// always have a known neighbor (none), so insertions and removals at both ends
// run in constant time. The downside is that a node cannot be reached from the
// middle of the list, so the List type offers no Next or Prev methods and no
// removal at arbitrary positions.
//
// Lists can be constructed by simple declaration since their zero-value
// represents an empty list:
//
//	l := list.List[string]{}
//	l.PushBack("B")
//	l.PushBack("C")
//	l.PushFront("A")
//
//	for v := range l.Drain().All() {
//		...
//	}
//
// Lists are not safe to use concurrently from multiple goroutines.
package list

import (
	"github.com/pkg/errors"
	"github.com/segmentio/xorlist/arena"
)

// List values are containers of values of type T which support insertion and
// removal at the front and back of the list in O(1).
//
// The zero-value is a valid, empty list.
type List[T any] struct {
	head arena.Handle
	tail arena.Handle
	mem  arena.Arena[node[T]]
}

// New constructs a new empty list. The options are used to configure the arena
// holding the nodes of the list.
func New[T any](options ...arena.Option) *List[T] {
	list := new(List[T])
	list.Init(options...)
	return list
}

// Init initializes (or re-initializes) the list, discarding its elements.
func (list *List[T]) Init(options ...arena.Option) {
	list.head = arena.Nil
	list.tail = arena.Nil
	list.mem.Init(options...)
}

// Len returns the number of elements in the list.
func (list *List[T]) Len() int { return list.mem.Len() }

// Stats returns the usage counters of the arena holding the nodes of the list.
func (list *List[T]) Stats() arena.Stats { return list.mem.Stats() }

// Front returns the element at the front of the list, and a boolean indicating
// whether the list was non-empty.
func (list *List[T]) Front() (value T, ok bool) {
	if n := list.mem.Get(list.head); n != nil {
		value, ok = n.value, true
	}
	return value, ok
}

// Back returns the element at the back of the list, and a boolean indicating
// whether the list was non-empty.
func (list *List[T]) Back() (value T, ok bool) {
	if n := list.mem.Get(list.tail); n != nil {
		value, ok = n.value, true
	}
	return value, ok
}

// PushFront inserts value at the front of the list.
func (list *List[T]) PushFront(value T) {
	list.head = list.push(list.head, value)
	if list.Len() == 1 {
		list.tail = list.head
	}
}

// PushBack inserts value at the back of the list.
func (list *List[T]) PushBack(value T) {
	list.tail = list.push(list.tail, value)
	if list.Len() == 1 {
		list.head = list.tail
	}
}

// PopFront removes the element at the front of the list and returns it. The
// boolean is false if the list was empty.
func (list *List[T]) PopFront() (value T, ok bool) {
	if list.head == arena.Nil {
		return value, false
	}
	last := list.Len() == 1
	list.head, value = list.pop(list.head)
	if last {
		list.tail = arena.Nil
	}
	return value, true
}

// PopBack removes the element at the back of the list and returns it. The
// boolean is false if the list was empty.
func (list *List[T]) PopBack() (value T, ok bool) {
	if list.tail == arena.Nil {
		return value, false
	}
	last := list.Len() == 1
	list.tail, value = list.pop(list.tail)
	if last {
		list.head = arena.Nil
	}
	return value, true
}

// RemoveAll removes all elements from the list. The memory used by the list is
// retained for future insertions.
func (list *List[T]) RemoveAll() {
	list.head = arena.Nil
	list.tail = arena.Nil
	list.mem.Reset()
}

// Clone returns a copy of the list.
//
// Complexity: O(n)
func (list *List[T]) Clone() *List[T] {
	return &List[T]{
		head: list.head,
		tail: list.tail,
		mem:  *list.mem.Clone(),
	}
}

// Drain moves the elements of the list to an Iterator which removes them from
// the front as they are consumed. The list is left empty.
func (list *List[T]) Drain() *Iterator[T] {
	it := &Iterator[T]{list: *list}
	*list = List[T]{}
	return it
}

// push allocates a node for value next to end, which must be either the head
// or the tail of the list, and returns its handle.
func (list *List[T]) push(end arena.Handle, value T) arena.Handle {
	h := list.mem.Alloc(node[T]{value: value})
	list.mem.Get(h).toggle(end)
	// end had no neighbor on this side, toggling h in takes that place.
	if n := list.mem.Get(end); n != nil {
		n.toggle(h)
	}
	return h
}

// pop removes the node at end, which must be either the head or the tail of a
// non-empty list, and returns the handle of its only neighbor with its value.
func (list *List[T]) pop(end arena.Handle) (arena.Handle, T) {
	next := list.mem.Get(end).other(arena.Nil)
	// Once end is toggled out, the link of next only holds its other neighbor.
	if n := list.mem.Get(next); n != nil {
		n.toggle(end)
	}
	n, err := list.mem.Remove(end)
	if err != nil {
		panic(errors.Wrapf(err, "list: removing node %s at the end of a list of length %d", end, list.Len()))
	}
	return next, n.value
}
