package result

import (
	"github.com/LerianStudio/lib-unwrap/assert"
	"github.com/LerianStudio/lib-unwrap/debug"
)

// Default diagnostics used when no caller message is given.
const (
	defaultErrMessage = "called Unwrap on an Err result"
	defaultOkMessage  = "called UnwrapErr on an Ok result"
)

// extractCallerSkip is the number of frames between the fail helpers' call to
// assert.FailExtract and the user call site (the helper plus the exported
// operation).
const extractCallerSkip = 2

// Unwrap asserts that the result is Ok and returns the success value.
//
// In debug builds, calling Unwrap on an Err result logs a diagnostic
// including a rendering of the held error and panics with a
// *assert.Violation. In release builds the check is omitted: calling Unwrap
// on an Err result is out of contract and returns T's zero value without any
// report.
func (r Result[T]) Unwrap() T {
	if debug.Enabled && r.err != nil {
		r.failErr(defaultErrMessage)
	}

	return r.value
}

// Expect is Unwrap with a caller-supplied diagnostic: msg is used verbatim in
// the violation report. The release-build contract is the same as Unwrap's.
func (r Result[T]) Expect(msg string) T {
	if debug.Enabled && r.err != nil {
		r.failErr(msg)
	}

	return r.value
}

// UnwrapUnchecked behaves exactly like Unwrap in both build modes. The name
// signals at the call site that the Ok variant is guaranteed by a documented
// caller contract rather than established by nearby code; the check still
// runs in debug builds so that contract is exercised under test.
func (r Result[T]) UnwrapUnchecked() T {
	if debug.Enabled && r.err != nil {
		r.failErr(defaultErrMessage)
	}

	return r.value
}

// ExpectUnchecked behaves exactly like Expect in both build modes; see
// UnwrapUnchecked for the naming convention.
func (r Result[T]) ExpectUnchecked(msg string) T {
	if debug.Enabled && r.err != nil {
		r.failErr(msg)
	}

	return r.value
}

// UnwrapErr asserts that the result is Err and returns the held error.
//
// In debug builds, calling UnwrapErr on an Ok result logs a diagnostic
// including a rendering of the held success value and panics with a
// *assert.Violation. In release builds the check is omitted: calling
// UnwrapErr on an Ok result is out of contract and returns nil without any
// report.
func (r Result[T]) UnwrapErr() error {
	if debug.Enabled && r.err == nil {
		r.failOk(defaultOkMessage)
	}

	return r.err
}

// ExpectErr is UnwrapErr with a caller-supplied diagnostic: msg is used
// verbatim in the violation report. The release-build contract is the same
// as UnwrapErr's.
func (r Result[T]) ExpectErr(msg string) error {
	if debug.Enabled && r.err == nil {
		r.failOk(msg)
	}

	return r.err
}

// UnwrapErrUnchecked behaves exactly like UnwrapErr in both build modes; see
// UnwrapUnchecked for the naming convention.
func (r Result[T]) UnwrapErrUnchecked() error {
	if debug.Enabled && r.err == nil {
		r.failOk(defaultOkMessage)
	}

	return r.err
}

// ExpectErrUnchecked behaves exactly like ExpectErr in both build modes; see
// UnwrapUnchecked for the naming convention.
func (r Result[T]) ExpectErrUnchecked(msg string) error {
	if debug.Enabled && r.err == nil {
		r.failOk(msg)
	}

	return r.err
}

func (r Result[T]) failErr(msg string) {
	assert.FailExtract(extractCallerSkip, "result", "Ok", msg, assert.Render(r.err))
}

func (r Result[T]) failOk(msg string) {
	assert.FailExtract(extractCallerSkip, "result", "Err", msg, assert.Render(r.value))
}
