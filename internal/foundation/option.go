package foundation

import "fmt"

// Option holds a value that may be absent.
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps a present value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

// None is the absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.some }

// IsNone reports whether the value is absent.
func (o Option[T]) IsNone() bool { return !o.some }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.some }

// UnwrapOr returns the value or fallback when absent.
func (o Option[T]) UnwrapOr(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}

// Filter keeps the value only when predicate holds.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.some && predicate(o.value) {
		return o
	}
	return None[T]()
}

// FromTupleOption converts a (value, error) pair, dropping the error.
func FromTupleOption[T any](value T, err error) Option[T] {
	if err != nil {
		return None[T]()
	}
	return Some(value)
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
