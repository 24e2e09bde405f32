package cache

import "github.com/segmentio/xorlist/list"

// FIFO is an Interface implementation which caches elements and evicts them in
// the order they were inserted.
//
// Inserting a key which already existed replaces its value and moves it to the
// back of the eviction queue.
type FIFO[K comparable, V any] struct {
	index map[K]fifoEntry[V]
	queue list.List[fifoKey[K]]
	seq   uint64
}

type fifoEntry[V any] struct {
	value V
	seq   uint64
}

// Keys in the queue whose sequence number differs from the one in the index
// were deleted or replaced, they are skipped on eviction.
type fifoKey[K comparable] struct {
	key K
	seq uint64
}

// Stale keys are only purged from the queue when there are more of them than
// live keys, and at least this many.
const fifoMinStale = 64

func (fifo *FIFO[K, V]) Len() int {
	return len(fifo.index)
}

func (fifo *FIFO[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	if fifo.index == nil {
		fifo.index = make(map[K]fifoEntry[V])
	}
	e, ok := fifo.index[key]
	if ok {
		previous, replaced = e.value, true
	}
	fifo.seq++
	fifo.index[key] = fifoEntry[V]{value: value, seq: fifo.seq}
	fifo.queue.PushBack(fifoKey[K]{key: key, seq: fifo.seq})
	fifo.compact()
	return previous, replaced
}

func (fifo *FIFO[K, V]) Lookup(key K) (value V, found bool) {
	e, ok := fifo.index[key]
	if ok {
		value, found = e.value, true
	}
	return value, found
}

func (fifo *FIFO[K, V]) Delete(key K) (value V, deleted bool) {
	e, ok := fifo.index[key]
	if ok {
		delete(fifo.index, key)
		value, deleted = e.value, true
		fifo.compact()
	}
	return value, deleted
}

func (fifo *FIFO[K, V]) Evict() (key K, value V, evicted bool) {
	for {
		k, ok := fifo.queue.PopFront()
		if !ok {
			return key, value, false
		}
		if e, live := fifo.lookup(k); live {
			delete(fifo.index, k.key)
			return k.key, e.value, true
		}
	}
}

func (fifo *FIFO[K, V]) Range(f func(K, V) bool) {
	for k, e := range fifo.index {
		if !f(k, e.value) {
			break
		}
	}
}

func (fifo *FIFO[K, V]) lookup(k fifoKey[K]) (fifoEntry[V], bool) {
	e, ok := fifo.index[k.key]
	return e, ok && e.seq == k.seq
}

func (fifo *FIFO[K, V]) compact() {
	live := len(fifo.index)
	stale := fifo.queue.Len() - live
	if stale < fifoMinStale || stale <= live {
		return
	}
	for k := range fifo.queue.Drain().All() {
		if _, ok := fifo.lookup(k); ok {
			fifo.queue.PushBack(k)
		}
	}
}
