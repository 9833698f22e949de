// Package optional provides a generic Option container and extraction
// operations whose presence checks are compiled in only under the `debug`
// build tag.
//
// An Option[T] is either Some (holding a value) or None. Code that wants a
// recoverable outcome should use the ordinary inspection operations (Get,
// GetOr, IsSome); the Unwrap/Expect family exists to assert an internal
// invariant inline, at the point of extraction, at zero cost in release
// builds:
//
//	v := stack.top.Expect("stack must not be empty")
//
// In debug builds a violated assertion logs a diagnostic and panics with a
// *assert.Violation. In release builds no check is performed at all: calling
// an extraction operation on a None option is out of contract and yields T's
// zero value without any report. The *Unchecked variants behave identically
// to their plain counterparts; the name only documents that presence is
// guaranteed by the caller's contract rather than by surrounding code.
package optional
