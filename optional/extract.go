package optional

import (
	"github.com/LerianStudio/lib-unwrap/assert"
	"github.com/LerianStudio/lib-unwrap/debug"
)

// defaultNoneMessage is the diagnostic used when no caller message is given.
const defaultNoneMessage = "called Unwrap on a None optional"

// extractCallerSkip is the number of frames between failNone's call to
// assert.FailExtract and the user call site (failNone plus the exported
// operation).
const extractCallerSkip = 2

// Unwrap asserts that the option is Some and returns the contained value.
//
// In debug builds, calling Unwrap on a None option logs a diagnostic and
// panics with a *assert.Violation. In release builds the check is omitted:
// calling Unwrap on a None option is out of contract and returns T's zero
// value without any report.
func (o Option[T]) Unwrap() T {
	if debug.Enabled && !o.ok {
		o.failNone(defaultNoneMessage)
	}

	return o.value
}

// Expect is Unwrap with a caller-supplied diagnostic: msg is used verbatim in
// the violation report. The release-build contract is the same as Unwrap's.
func (o Option[T]) Expect(msg string) T {
	if debug.Enabled && !o.ok {
		o.failNone(msg)
	}

	return o.value
}

// UnwrapUnchecked behaves exactly like Unwrap in both build modes. The name
// signals at the call site that presence is guaranteed by a documented caller
// contract rather than established by nearby code; the check still runs in
// debug builds so that contract is exercised under test.
func (o Option[T]) UnwrapUnchecked() T {
	if debug.Enabled && !o.ok {
		o.failNone(defaultNoneMessage)
	}

	return o.value
}

// ExpectUnchecked behaves exactly like Expect in both build modes; see
// UnwrapUnchecked for the naming convention.
func (o Option[T]) ExpectUnchecked(msg string) T {
	if debug.Enabled && !o.ok {
		o.failNone(msg)
	}

	return o.value
}

func (o Option[T]) failNone(msg string) {
	assert.FailExtract(extractCallerSkip, "optional", "Some", msg, "")
}
