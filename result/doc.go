// Package result provides a generic Result container and extraction
// operations whose variant checks are compiled in only under the `debug`
// build tag.
//
// A Result[T] is either Ok (holding a value of type T) or Err (holding an
// error). Code that wants a recoverable outcome should use the ordinary
// inspection operations (Get, GetOr, IsOk, ErrOrNil); the Unwrap/Expect and
// UnwrapErr/ExpectErr families assert the variant inline at the point of
// extraction, at zero cost in release builds.
//
// In debug builds a violated assertion logs a diagnostic — including a
// rendering of the variant actually held — and panics with a
// *assert.Violation. In release builds no check is performed at all: an
// extraction on the mismatched variant is out of contract and returns the
// raw stored field (T's zero value, or a nil error) without any report. The
// *Unchecked variants behave identically to their plain counterparts; the
// name only documents that the variant is guaranteed by the caller's
// contract rather than by surrounding code.
package result
