package kwargs

import "strconv"

// Slot is the discriminant naming one declared argument. Declared slots are
// dense, starting at zero, in declaration order.
type Slot int

// NoSlot marks the empty carrier used as a pack accumulator. It contributes
// nothing to a resolved lookup.
const NoSlot Slot = -1

// Valid reports whether s names a declared slot rather than NoSlot.
func (s Slot) Valid() bool {
	return s >= 0
}

func (s Slot) String() string {
	if s == NoSlot {
		return "none"
	}
	return "slot(" + strconv.Itoa(int(s)) + ")"
}
