package list

import "github.com/segmentio/xorlist/arena"

// node is the unit of storage of a list. The link field is the exclusive-or of
// the handles of the previous and next nodes, with arena.Nil standing for a
// missing neighbor.
//
// A single link cannot be decoded on its own: knowing one of the neighbors is
// required to recover the other, which is why nodes are only ever visited from
// one of the ends of the list.
type node[T any] struct {
	link  arena.Handle
	value T
}

// other returns the neighbor of n which is not from.
func (n *node[T]) other(from arena.Handle) arena.Handle {
	return n.link.Xor(from)
}

// toggle adds h to the links of n if it was absent, or removes it otherwise.
func (n *node[T]) toggle(h arena.Handle) {
	n.link = n.link.Xor(h)
}
