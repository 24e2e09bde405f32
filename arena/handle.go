package arena

import "strconv"

// Handle identifies a slot of an Arena.
//
// The zero value is the null handle, any other value is the index of the slot
// plus one. Handles are plain values and are not tied to a specific arena, it
// is up to the program to use them with the arena that produced them.
type Handle uint

// Nil is the null handle, it never refers to a slot.
const Nil Handle = 0

// IsNil returns true if h is the null handle.
func (h Handle) IsNil() bool { return h == Nil }

// Xor returns the exclusive-or of h and x.
//
// Combining Nil with any handle is the identity, and combining a handle with
// itself yields Nil, which is what allows a single word to carry both
// neighbors of a node in a XOR-linked list.
func (h Handle) Xor(x Handle) Handle { return h ^ x }

// String returns a human-readable representation of h.
func (h Handle) String() string {
	if h == Nil {
		return "nil"
	}
	return "#" + strconv.FormatUint(uint64(h), 10)
}

func handleOf(index int) Handle { return Handle(index + 1) }

func (h Handle) index() int { return int(h) - 1 }
