package result

import "fmt"

// Result represents either a successful value (Ok) or an error (Err). The
// zero value is Ok holding T's zero value.
type Result[T any] struct {
	value T // valid if err is nil
	err   error
}

// Ok creates a Result representing a successful outcome with the given value.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err creates a Result representing a failed outcome with the given error.
// If err is nil, the returned result is equivalent to calling Ok with T's
// zero value.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// FromTuple adapts a conventional (T, error) return into a Result.
func FromTuple[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}

	return Ok(v)
}

// IsOk reports whether the result is a success.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether the result is a failure.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Get returns the value and error contained in the result, forcing the
// caller to handle the error. If the result is Err, the returned value is
// T's zero value.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// GetOr returns the success value if present, otherwise fallback.
func (r Result[T]) GetOr(fallback T) T {
	if r.err != nil {
		return fallback
	}

	return r.value
}

// ErrOrNil returns the held error, or nil when the result is Ok. When it
// returns nil, the extraction operations are safe to call in any build mode.
func (r Result[T]) ErrOrNil() error {
	return r.err
}

// String renders the result as Ok(v) or Err(e).
func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}

	return fmt.Sprintf("Ok(%v)", r.value)
}

// Map applies fn to the success value when Ok.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}

	return Ok(fn(r.value))
}

// AndThen applies fn to the success value when Ok, flattening the resulting
// result.
func AndThen[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}

	return fn(r.value)
}
