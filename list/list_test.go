package list

import (
	"slices"
	"testing"
	"testing/quick"

	"github.com/segmentio/xorlist/arena"
)

func TestPushBackPopBack(t *testing.T) {
	list := new(List[int])

	for i := 0; i < 10; i++ {
		list.PushBack(i)
	}

	for i := 0; i < 10; i++ {
		assertPop(t, list.PopBack, 9-i)
		list.checkInvariants(t)
	}

	assertList(t, list)
}

func TestPushFrontPopFront(t *testing.T) {
	list := new(List[int])

	for i := 0; i < 10; i++ {
		list.PushFront(i)
	}

	for i := 0; i < 10; i++ {
		assertPop(t, list.PopFront, 9-i)
		list.checkInvariants(t)
	}

	assertList(t, list)
}

func TestPushFrontPopBack(t *testing.T) {
	list := new(List[int])

	for i := 0; i < 10; i++ {
		list.PushFront(i)
	}

	for i := 0; i < 10; i++ {
		assertPop(t, list.PopBack, i)
		list.checkInvariants(t)
	}

	assertList(t, list)
}

func TestPushBackPopFront(t *testing.T) {
	list := new(List[int])

	for i := 0; i < 10; i++ {
		list.PushBack(i)
	}

	for i := 0; i < 10; i++ {
		assertPop(t, list.PopFront, i)
		list.checkInvariants(t)
	}

	assertList(t, list)
}

func TestReinsert(t *testing.T) {
	list := new(List[int])

	for i := 0; i < 10; i++ {
		list.PushFront(i)
	}
	for i := 0; i < 10; i++ {
		assertPop(t, list.PopBack, i)
	}
	for i := 0; i < 10; i++ {
		list.PushBack(i)
	}
	assertList(t, list, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)

	for i := 0; i < 10; i++ {
		assertPop(t, list.PopFront, i)
	}
	for i := 0; i < 10; i++ {
		list.PushBack(i)
	}
	for i := 0; i < 10; i++ {
		assertPop(t, list.PopBack, 9-i)
	}

	assertList(t, list)

	if n := list.mem.Slots(); n != 10 {
		t.Errorf("arena grew past the maximum list length: got=%d slots want=10", n)
	}
}

func TestPushPopBothEnds(t *testing.T) {
	list := new(List[int])

	for i := 0; i < 3; i++ {
		list.PushFront(i)
	}
	assertList(t, list, 2, 1, 0)

	assertPop(t, list.PopBack, 0)
	assertPop(t, list.PopFront, 2)
	assertList(t, list, 1)

	for i := 3; i < 6; i++ {
		list.PushBack(i)
	}
	assertList(t, list, 1, 3, 4, 5)

	assertPop(t, list.PopBack, 5)
	assertPop(t, list.PopFront, 1)
	assertList(t, list, 3, 4)

	for i := 6; i < 9; i++ {
		list.PushFront(i)
	}
	assertList(t, list, 8, 7, 6, 3, 4)

	assertPop(t, list.PopFront, 8)
	assertPop(t, list.PopBack, 4)

	if values := slices.Collect(list.Drain().All()); !slices.Equal(values, []int{7, 6, 3}) {
		t.Errorf("wrong values drained from the list: got=%v want=[7 6 3]", values)
	}
	assertList(t, list)
}

func TestPopEmpty(t *testing.T) {
	list := new(List[string])

	if v, ok := list.PopFront(); ok {
		t.Errorf("popped %q from the front of an empty list", v)
	}
	if v, ok := list.PopBack(); ok {
		t.Errorf("popped %q from the back of an empty list", v)
	}

	list.PushBack("A")
	assertPop(t, list.PopFront, "A")

	if v, ok := list.PopBack(); ok {
		t.Errorf("popped %q from the back of an emptied list", v)
	}
	assertList(t, list)
}

func TestTwoElementsToSingle(t *testing.T) {
	list := new(List[int])
	list.PushBack(1)
	list.PushBack(2)

	assertPop(t, list.PopFront, 1)
	assertList(t, list, 2)

	if n := list.mem.Get(list.head); n.link != arena.Nil {
		t.Errorf("the only node of the list still has links: %s", n.link)
	}

	list.PushFront(0)
	assertList(t, list, 0, 2)
}

func TestFrontBack(t *testing.T) {
	list := new(List[int])

	if v, ok := list.Front(); ok {
		t.Errorf("front of an empty list returned %d", v)
	}
	if v, ok := list.Back(); ok {
		t.Errorf("back of an empty list returned %d", v)
	}

	list.PushBack(1)
	list.PushBack(2)
	list.PushFront(0)

	if v, _ := list.Front(); v != 0 {
		t.Errorf("front of list mismatch, expected 0 but found %d", v)
	}
	if v, _ := list.Back(); v != 2 {
		t.Errorf("back of list mismatch, expected 2 but found %d", v)
	}
	assertList(t, list, 0, 1, 2)
}

func TestRemoveAll(t *testing.T) {
	list := New[int](arena.Capacity(8))

	for i := 0; i < 5; i++ {
		list.PushBack(i)
	}

	list.RemoveAll()
	assertList(t, list)

	list.PushFront(42)
	assertList(t, list, 42)
}

func TestClone(t *testing.T) {
	list := new(List[int])

	for i := 0; i < 5; i++ {
		list.PushBack(i)
	}

	clone := list.Clone()
	clone.PopFront()
	clone.PushBack(5)

	assertList(t, list, 0, 1, 2, 3, 4)
	assertList(t, clone, 1, 2, 3, 4, 5)
}

func TestDrain(t *testing.T) {
	list := new(List[int])

	for i := 0; i < 5; i++ {
		list.PushBack(i)
	}

	it := list.Drain()
	assertList(t, list)

	if n := it.Len(); n != 5 {
		t.Errorf("wrong number of values to drain: got=%d want=5", n)
	}

	for v := range it.All() {
		if v == 2 {
			break
		}
	}

	if n := it.Len(); n != 2 {
		t.Errorf("wrong number of values left after stopping early: got=%d want=2", n)
	}

	// The list and the iterator must not share memory.
	list.PushBack(100)

	if values := slices.Collect(it.All()); !slices.Equal(values, []int{3, 4}) {
		t.Errorf("wrong values drained from the list: got=%v want=[3 4]", values)
	}
	if v, ok := it.Next(); ok {
		t.Errorf("drained iterator produced %d", v)
	}
	assertList(t, list, 100)
}

func TestMirror(t *testing.T) {
	// Each operation is encoded as a byte: bit 0 selects push or pop, bit 1
	// selects the end of the list. Applying mirrored operations to a second
	// list must always produce the reverse of the first one.
	f := func(ops []byte) bool {
		list, mirror := new(List[int]), new(List[int])
		model := []int{}

		for i, op := range ops {
			push, front := op&1 == 0, op&2 == 0
			switch {
			case push && front:
				list.PushFront(i)
				mirror.PushBack(i)
				model = append([]int{i}, model...)
			case push:
				list.PushBack(i)
				mirror.PushFront(i)
				model = append(model, i)
			case front:
				v, ok := list.PopFront()
				w, _ := mirror.PopBack()
				if ok != (len(model) > 0) || (ok && (v != model[0] || w != v)) {
					t.Errorf("pop front at step %d: got=(%d, %t) mirror=%d model=%v", i, v, ok, w, model)
					return false
				}
				if ok {
					model = model[1:]
				}
			default:
				v, ok := list.PopBack()
				w, _ := mirror.PopFront()
				if ok != (len(model) > 0) || (ok && (v != model[len(model)-1] || w != v)) {
					t.Errorf("pop back at step %d: got=(%d, %t) mirror=%d model=%v", i, v, ok, w, model)
					return false
				}
				if ok {
					model = model[:len(model)-1]
				}
			}
			list.checkInvariants(t)
			mirror.checkInvariants(t)
		}

		reversed := slices.Clone(model)
		slices.Reverse(reversed)
		return slices.Equal(slices.Collect(list.Drain().All()), model) &&
			slices.Equal(slices.Collect(mirror.Drain().All()), reversed)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func BenchmarkPushPop(b *testing.B) {
	list := New[int](arena.Capacity(1000))

	for i := 0; i < 1000; i++ {
		list.PushBack(i)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if (i % 2) == 0 {
			v, _ := list.PopFront()
			list.PushBack(v)
		} else {
			v, _ := list.PopBack()
			list.PushFront(v)
		}
	}
}

func assertPop[T comparable](t *testing.T, pop func() (T, bool), expected T) {
	t.Helper()

	if v, ok := pop(); !ok {
		t.Errorf("pop returned no value, expected %v", expected)
	} else if v != expected {
		t.Errorf("value mismatch, expected %v but found %v", expected, v)
	}
}

func assertList[T comparable](t *testing.T, l *List[T], v ...T) {
	t.Helper()
	l.checkInvariants(t)

	if len(v) == 0 {
		if front, ok := l.Front(); ok {
			t.Errorf("front of list mismatch, expected <nil> but found %v", front)
		}
		if back, ok := l.Back(); ok {
			t.Errorf("back of list mismatch, expected <nil> but found %v", back)
		}
	} else {
		if front, ok := l.Front(); !ok {
			t.Errorf("front of list mismatch, expected %v but found <nil>", v[0])
		} else if front != v[0] {
			t.Errorf("front of list mismatch, expected %v but found %v", v[0], front)
		}

		if back, ok := l.Back(); !ok {
			t.Errorf("back of list mismatch, expected %v but found <nil>", v[len(v)-1])
		} else if back != v[len(v)-1] {
			t.Errorf("back of list mismatch, expected %v but found %v", v[len(v)-1], back)
		}
	}

	forward := slices.Collect(l.Clone().Drain().All())
	if !slices.Equal(forward, v) {
		t.Errorf("[forward] list elements mismatch, expected %v but found %v", v, forward)
	}

	backward := []T{}
	for c := l.Clone(); c.Len() > 0; {
		x, _ := c.PopBack()
		backward = append(backward, x)
	}
	slices.Reverse(backward)
	if !slices.Equal(backward, v) {
		t.Errorf("[backward] list elements mismatch, expected %v but found %v", v, backward)
	}

	if n := l.Len(); n != len(v) {
		t.Errorf("list length mismatch, expected %d but found %d", len(v), n)
	}
}

// checkInvariants walks the list from both ends and verifies that the links
// decode to the same sequence of nodes.
func (list *List[T]) checkInvariants(t *testing.T) {
	t.Helper()

	n := list.Len()
	switch {
	case n == 0:
		if list.head != arena.Nil || list.tail != arena.Nil {
			t.Errorf("empty list has ends: head=%s tail=%s", list.head, list.tail)
		}
		return
	case n == 1:
		if list.head != list.tail {
			t.Errorf("single element list has different ends: head=%s tail=%s", list.head, list.tail)
		}
	default:
		if list.head == list.tail {
			t.Errorf("list of length %d has the same node at both ends: %s", n, list.head)
		}
	}

	forward := list.walk(t, list.head, n)
	backward := list.walk(t, list.tail, n)
	slices.Reverse(backward)

	if len(forward) != n {
		t.Errorf("walking forward visited %d nodes but the list has length %d", len(forward), n)
	} else if forward[n-1] != list.tail {
		t.Errorf("walking forward ended at %s instead of the tail %s", forward[n-1], list.tail)
	}
	if !slices.Equal(forward, backward) {
		t.Errorf("walking forward and backward visited different nodes: %v != %v", forward, backward)
	}
}

func (list *List[T]) walk(t *testing.T, from arena.Handle, limit int) []arena.Handle {
	t.Helper()
	visited := []arena.Handle{}

	for prev, cur := arena.Nil, from; cur != arena.Nil; {
		if len(visited) == limit {
			t.Errorf("walking from %s visits more than %d nodes", from, limit)
			break
		}
		n := list.mem.Get(cur)
		if n == nil {
			t.Errorf("walking from %s reached vacant node %s", from, cur)
			break
		}
		visited = append(visited, cur)
		prev, cur = cur, n.other(prev)
	}

	return visited
}
