// Package optional provides a small value type for fields that may be absent.
package optional

// Value holds either a value of type T or nothing.
type Value[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Value[T] {
	return Value[T]{value: v, ok: true}
}

// None returns an absent value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the wrapped value and whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsPresent reports whether a value is held.
func (o Value[T]) IsPresent() bool {
	return o.ok
}

// OrElse returns the wrapped value or fallback when absent.
func (o Value[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// Map applies fn to a present value. Absent values stay absent and fn is not called.
func Map[T, U any](o Value[T], fn func(T) (U, error)) (Value[U], error) {
	if !o.ok {
		return None[U](), nil
	}
	out, err := fn(o.value)
	if err != nil {
		return None[U](), err
	}
	return Some(out), nil
}
