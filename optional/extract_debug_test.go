//go:build unit && debug

package optional_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LerianStudio/lib-unwrap/assert"
	"github.com/LerianStudio/lib-unwrap/log"
	"github.com/LerianStudio/lib-unwrap/optional"
)

// recordingLogger captures violation reports for assertions.
type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *recordingLogger) Log(_ context.Context, _ log.Level, msg string, _ ...log.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.messages = append(l.messages, msg)
}

func (l *recordingLogger) Enabled(_ log.Level) bool {
	return true
}

// quietViolations keeps violation reports out of the test output.
func quietViolations(t *testing.T) {
	t.Helper()

	assert.SetLogger(log.NewNop())
	t.Cleanup(assert.ResetLogger)
}

func captureViolation(t *testing.T, fn func()) (violation *assert.Violation) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected extraction to panic")

		var ok bool
		violation, ok = r.(*assert.Violation)
		require.True(t, ok, "panic value must be *assert.Violation")
	}()

	fn()

	return nil
}

func TestOption_UnwrapOnNone_Panics(t *testing.T) {
	quietViolations(t)

	violation := captureViolation(t, func() {
		optional.None[int]().Unwrap()
	})

	require.ErrorIs(t, violation, assert.ErrInvariantViolation)
	require.Equal(t, "optional", violation.Container)
	require.Equal(t, "Some", violation.Expected)
	require.Contains(t, violation.Error(), "called Unwrap on a None optional")
}

func TestOption_ExpectOnNone_UsesMessageVerbatim(t *testing.T) {
	quietViolations(t)

	violation := captureViolation(t, func() {
		optional.None[int]().Expect("stack must not be empty")
	})

	require.Equal(t, "stack must not be empty", violation.Message)
	require.Contains(t, violation.Error(), "stack must not be empty")
}

func TestOption_UnwrapReportsCallSite(t *testing.T) {
	quietViolations(t)

	violation := captureViolation(t, func() {
		optional.None[int]().Unwrap()
	})

	require.Contains(t, violation.Location(), "extract_debug_test.go")
}

// The *Unchecked names must be behaviorally indistinguishable from their
// plain counterparts; only the diagnostic text they default to is shared.
func TestOption_UncheckedFamilyMatchesPlain(t *testing.T) {
	quietViolations(t)

	plain := captureViolation(t, func() {
		optional.None[int]().Unwrap()
	})
	unchecked := captureViolation(t, func() {
		optional.None[int]().UnwrapUnchecked()
	})

	require.Equal(t, plain.Container, unchecked.Container)
	require.Equal(t, plain.Expected, unchecked.Expected)
	require.Equal(t, plain.Message, unchecked.Message)

	withMsg := captureViolation(t, func() {
		optional.None[int]().ExpectUnchecked("proven elsewhere")
	})

	require.Equal(t, "proven elsewhere", withMsg.Message)
}

func TestOption_ViolationReportIsLogged(t *testing.T) {
	logged := &recordingLogger{}
	assert.SetLogger(logged)
	t.Cleanup(assert.ResetLogger)

	captureViolation(t, func() {
		optional.None[string]().Expect("session must be established")
	})

	require.Len(t, logged.messages, 1)
	require.Contains(t, logged.messages[0], "INVARIANT VIOLATION: session must be established")
	require.Contains(t, logged.messages[0], "container=optional")
	require.Contains(t, logged.messages[0], "expected=Some")
}
