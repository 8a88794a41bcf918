package kwargs

// Binder points the lookup field for slot at the matching field of cell.
// Generated slot sets supply one; it should ignore slots it does not declare.
type Binder[V, L any] func(lookup *L, slot Slot, cell *V)

// Resolve walks the chain from head once and returns a lookup with every
// supplied slot pointing into its carrier's cell. Slots that were not
// supplied stay nil. When a slot is supplied more than once the last carrier
// in chain order wins.
//
// The lookup does not copy any value; it must not be used after the carriers
// are reused or moved.
func Resolve[V, L any](head *Arg[V], bind Binder[V, L]) L {
	var lookup L
	for c := head; c != nil; c = c.next {
		slot := c.Slot()
		if !slot.Valid() {
			continue
		}
		bind(&lookup, slot, &c.cell)
	}
	return lookup
}
