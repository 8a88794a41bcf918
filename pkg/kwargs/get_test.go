package kwargs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	v := 7
	assert.Equal(t, 7, Get(&v, 1))
	assert.Equal(t, 1, Get[int](nil, 1))
	assert.Equal(t, "", Get[string](nil, ""))
}

func TestOptional(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		o := Optional[int](nil)
		v, ok := o.Value()
		assert.False(t, ok)
		assert.Zero(t, v)
		assert.False(t, o.Present())
		assert.Equal(t, 5, o.Or(5))
	})

	t.Run("present copies the value", func(t *testing.T) {
		v := 3
		o := Optional(&v)
		v = 4

		got, ok := o.Value()
		assert.True(t, ok)
		assert.Equal(t, 3, got)
		assert.Equal(t, 3, o.Or(9))
	})

	t.Run("constructors", func(t *testing.T) {
		assert.Equal(t, Optional(new(bool)), Some(false))
		assert.Equal(t, Optional[bool](nil), None[bool]())
	})
}
