package list

import "iter"

// Iterator produces the elements of a list from front to back, removing each
// element from the list as it is returned.
//
// Iterators are obtained by calling Drain on a list. They take ownership of the
// elements, and cannot be restarted: once an element has been produced it is
// gone.
type Iterator[T any] struct {
	list List[T]
}

// Len returns the number of elements left to produce.
func (it *Iterator[T]) Len() int { return it.list.Len() }

// Next removes the next element and returns it. The boolean is false when there
// are no elements left.
func (it *Iterator[T]) Next() (T, bool) { return it.list.PopFront() }

// All returns a sequence yielding the remaining elements. Elements are removed
// from the iterator even if the sequence is stopped early, but only up to the
// last one that was yielded.
func (it *Iterator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
