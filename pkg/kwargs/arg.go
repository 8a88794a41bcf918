package kwargs

import (
	"fmt"
	"iter"
)

// noCopy makes go vet's copylocks check reject copies of a carrier. A copy
// would duplicate the cell and leave two carriers sharing one chain link.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Arg carries one supplied value for exactly one slot, plus the links that
// join it into a chain. V is the cell type declared by the slot set; only the
// field matching the carrier's slot is meaningful.
//
// The zero Arg is an empty carrier. Carriers must not be copied; use MoveTo.
type Arg[V any] struct {
	_ noCopy

	tag  int // slot+1; zero means no slot
	cell V

	next *Arg[V] // following carrier, nil at the end of the chain
	tail *Arg[V] // last carrier of the chain; only kept on the head

	// linked is set once the carrier has a predecessor.
	linked bool
}

// New builds a carrier for slot and lets init write the cell field matching
// that slot. New does not check which field init wrote; the per-slot
// constructors are responsible for that.
func New[V any](slot Slot, init func(cell *V)) *Arg[V] {
	if !slot.Valid() {
		panic(fmt.Errorf("new carrier for %d: %w", int(slot), ErrInvalidSlot))
	}
	a := &Arg[V]{tag: int(slot) + 1}
	if init != nil {
		init(&a.cell)
	}
	return a
}

// Empty builds a carrier holding no argument. It seeds Pack and resolves to
// nothing.
func Empty[V any]() *Arg[V] {
	return &Arg[V]{}
}

// Slot returns the slot this carrier holds a value for, or NoSlot.
func (a *Arg[V]) Slot() Slot {
	return Slot(a.tag - 1)
}

// Next returns the following carrier in the chain, or nil.
func (a *Arg[V]) Next() *Arg[V] {
	return a.next
}

// Append links other, and any chain headed by other, after the last carrier
// of the chain headed by a. It returns a so calls can be strung together:
//
//	head.Append(b).Append(c)
//
// Append runs in constant time. Appending nil is a no-op. Append panics with
// ErrNotHead when a already has a predecessor, and with ErrLinked when other
// is a itself or already has a predecessor; either would break the chain or
// close a cycle.
func (a *Arg[V]) Append(other *Arg[V]) *Arg[V] {
	if other == nil {
		return a
	}
	if a.linked {
		panic(fmt.Errorf("append onto %v: %w", a.Slot(), ErrNotHead))
	}
	if other == a || other.linked {
		panic(fmt.Errorf("append %v: %w", other.Slot(), ErrLinked))
	}

	end := other
	if other.tail != nil {
		end = other.tail
		other.tail = nil
	}
	if a.tail != nil {
		a.tail.next = other
	} else {
		a.next = other
	}
	a.tail = end
	other.linked = true
	return a
}

// MoveTo transfers the slot, cell and chain of a into dst and resets a to an
// empty carrier. The cell never refers back to its carrier, so nothing needs
// repointing. MoveTo panics with ErrLinked if a or dst has a predecessor,
// since that predecessor would keep pointing at the old location.
func (a *Arg[V]) MoveTo(dst *Arg[V]) {
	if dst == a {
		return
	}
	if a.linked {
		panic(fmt.Errorf("move %v: %w", a.Slot(), ErrLinked))
	}
	if dst.linked {
		panic(fmt.Errorf("move into %v: %w", dst.Slot(), ErrLinked))
	}

	dst.tag, dst.cell = a.tag, a.cell
	dst.next, dst.tail = a.next, a.tail

	var zero V
	a.tag, a.cell = 0, zero
	a.next, a.tail = nil, nil
}

// All yields every carrier from a to the end of the chain that holds an
// argument, in chain order. Empty carriers are skipped.
func (a *Arg[V]) All() iter.Seq[*Arg[V]] {
	return func(yield func(*Arg[V]) bool) {
		for c := a; c != nil; c = c.next {
			if !c.Slot().Valid() {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// Len returns the number of supplied arguments in the chain starting at a.
// A nil chain has length zero.
func (a *Arg[V]) Len() int {
	n := 0
	for c := a; c != nil; c = c.next {
		if c.Slot().Valid() {
			n++
		}
	}
	return n
}
