package kwargs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	a := name("hello")
	assert.Equal(t, slotName, a.Slot())
	assert.Equal(t, "hello", a.cell.name)
	assert.Nil(t, a.Next())
	assert.Equal(t, 1, a.Len())

	t.Run("nil initializer leaves the cell zero", func(t *testing.T) {
		a := New[testCell](slotCount, nil)
		assert.Equal(t, slotCount, a.Slot())
		assert.Equal(t, 0, a.cell.count)
	})

	t.Run("negative slot panics", func(t *testing.T) {
		requirePanicIs(t, ErrInvalidSlot, func() {
			New(Slot(-3), func(*testCell) {})
		})
		requirePanicIs(t, ErrInvalidSlot, func() {
			New(NoSlot, func(*testCell) {})
		})
	})
}

func TestEmpty(t *testing.T) {
	e := Empty[testCell]()
	assert.Equal(t, NoSlot, e.Slot())
	assert.Equal(t, 0, e.Len())

	var zero Arg[testCell]
	assert.Equal(t, NoSlot, zero.Slot(), "zero Arg is an empty carrier")
}

func TestAppend(t *testing.T) {
	t.Run("first append sets next and tail", func(t *testing.T) {
		a, b := count(1), name("b")
		got := a.Append(b)
		assert.Same(t, a, got)
		assert.Same(t, b, a.next)
		assert.Same(t, b, a.tail)
		assert.True(t, b.linked)
		assert.False(t, a.linked)
	})

	t.Run("later appends advance the tail cursor", func(t *testing.T) {
		a, b, c, d := count(1), name("b"), tags("c"), count(4)
		a.Append(b).Append(c).Append(d)

		assert.Same(t, b, a.next)
		assert.Same(t, c, b.next)
		assert.Same(t, d, c.next)
		assert.Nil(t, d.next)
		assert.Same(t, d, a.tail)
		assert.Nil(t, b.tail, "only the head keeps a cursor")
		assert.Equal(t, 4, a.Len())
	})

	t.Run("nil is ignored", func(t *testing.T) {
		a := count(1)
		assert.Same(t, a, a.Append(nil))
		assert.Nil(t, a.next)
		assert.Nil(t, a.tail)
	})

	t.Run("a chain head splices in whole", func(t *testing.T) {
		a := count(1)
		b, c := name("b"), tags("c")
		b.Append(c)

		a.Append(b)
		assert.Same(t, c, a.tail)
		assert.Nil(t, b.tail)

		d := count(4)
		a.Append(d)
		assert.Same(t, d, c.next)
		assert.Equal(t, []Slot{slotCount, slotName, slotTags, slotCount}, slotsOf(a))
	})
}

func TestAppendMisuse(t *testing.T) {
	t.Run("self", func(t *testing.T) {
		a := count(1)
		requirePanicIs(t, ErrLinked, func() { a.Append(a) })
	})

	t.Run("already linked carrier", func(t *testing.T) {
		a, b := count(1), name("b")
		a.Append(b)
		other := Empty[testCell]()
		requirePanicIs(t, ErrLinked, func() { other.Append(b) })
	})

	t.Run("onto a carrier that is not a head", func(t *testing.T) {
		a, b := count(1), name("b")
		a.Append(b)
		requirePanicIs(t, ErrNotHead, func() { b.Append(tags("x")) })
	})

	t.Run("back onto its own head", func(t *testing.T) {
		a, b := count(1), name("b")
		a.Append(b)
		requirePanicIs(t, ErrLinked, func() { a.Append(a) })
		assert.Equal(t, 2, a.Len())
	})
}

func TestMoveTo(t *testing.T) {
	t.Run("transfers slot cell and chain", func(t *testing.T) {
		src := name("moved")
		src.Append(count(7))

		var dst Arg[testCell]
		src.MoveTo(&dst)

		assert.Equal(t, NoSlot, src.Slot())
		assert.Nil(t, src.next)
		assert.Nil(t, src.tail)

		assert.Equal(t, slotName, dst.Slot())
		kw := resolveTest(&dst)
		require.NotNil(t, kw.Name)
		require.NotNil(t, kw.Count)
		assert.Equal(t, "moved", *kw.Name)
		assert.Equal(t, 7, *kw.Count)

		// The moved head keeps appending at the old tail.
		dst.Append(tags("t"))
		assert.Equal(t, 3, dst.Len())
	})

	t.Run("onto itself is a no-op", func(t *testing.T) {
		a := count(2)
		a.MoveTo(a)
		assert.Equal(t, slotCount, a.Slot())
		assert.Equal(t, 2, a.cell.count)
	})

	t.Run("linked source panics", func(t *testing.T) {
		a, b := count(1), name("b")
		a.Append(b)
		var dst Arg[testCell]
		requirePanicIs(t, ErrLinked, func() { b.MoveTo(&dst) })
	})

	t.Run("linked destination panics", func(t *testing.T) {
		a, b := count(1), name("b")
		a.Append(b)
		requirePanicIs(t, ErrLinked, func() { tags("x").MoveTo(b) })
	})
}

func TestAll(t *testing.T) {
	head := Pack(count(1), name("n"), tags("t"))

	var got []Slot
	for c := range head.All() {
		got = append(got, c.Slot())
	}
	assert.Equal(t, []Slot{slotCount, slotName, slotTags}, got)

	t.Run("stops early", func(t *testing.T) {
		n := 0
		for range head.All() {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})
}

func TestSlotString(t *testing.T) {
	assert.Equal(t, "none", NoSlot.String())
	assert.Equal(t, "slot(2)", Slot(2).String())
	assert.False(t, NoSlot.Valid())
	assert.True(t, Slot(0).Valid())
}

func slotsOf(head *Arg[testCell]) []Slot {
	var out []Slot
	for c := range head.All() {
		out = append(out, c.Slot())
	}
	return out
}
