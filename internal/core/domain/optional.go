package domain

// Optional wraps a value that may be explicitly supplied or absent. Unlike a
// pointer, it distinguishes "not supplied" from "supplied as the zero value",
// which matters for patch fields whose legitimate values include nil (e.g.
// clearing a transaction note).
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the held value and whether it was set.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether a value was supplied.
func (o Optional[T]) IsSet() bool {
	return o.set
}
