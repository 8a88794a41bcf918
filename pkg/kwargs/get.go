package kwargs

// Get returns the value p points at, or def when the slot was not supplied.
func Get[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// Option is a value that may be absent.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps v as a present Option.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Optional copies the value p points at into a present Option, or returns an
// absent one when p is nil. This is the only accessor that duplicates a
// supplied value; Get reads through the pointer.
func Optional[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Value returns the wrapped value and whether it is present.
func (o Option[T]) Value() (T, bool) {
	return o.value, o.ok
}

// Present reports whether the option holds a value.
func (o Option[T]) Present() bool {
	return o.ok
}

// Or returns the wrapped value, or def when absent.
func (o Option[T]) Or(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}
