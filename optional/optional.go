package optional

import "fmt"

// Option represents an optional value: Some (a present value of type T) or
// None. The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some creates an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr creates an Option from a pointer: nil maps to None, otherwise the
// pointee is copied into a Some.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}

	return Some(*p)
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the value and whether it was present. If the option is None,
// the returned value is T's zero value.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// GetOr returns the contained value if present, otherwise fallback.
func (o Option[T]) GetOr(fallback T) T {
	if o.ok {
		return o.value
	}

	return fallback
}

// GetOrElse returns the contained value if present, otherwise the result of
// calling fn.
func (o Option[T]) GetOrElse(fn func() T) T {
	if o.ok {
		return o.value
	}

	return fn()
}

// Ptr returns a pointer to a copy of the contained value, or nil if the
// option is None.
func (o Option[T]) Ptr() *T {
	if !o.ok {
		return nil
	}

	v := o.value

	return &v
}

// String renders the option as Some(v) or None.
func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}

// Map applies fn to the contained value if present.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}

	return Some(fn(o.value))
}

// AndThen applies fn to the contained value if present, flattening the
// resulting option.
func AndThen[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.ok {
		return None[U]()
	}

	return fn(o.value)
}
