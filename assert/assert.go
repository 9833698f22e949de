// Package assert implements the shared diagnostic and termination path used
// by the optional and result extraction operations.
//
// A failed extraction check builds a *Violation describing what was asserted
// and what was actually held, writes a human-readable report to the
// configured logger (standard error when none is configured), and panics with
// the Violation. Violations are never returned as values and are not meant to
// be recovered from: an unrecovered panic terminates the process with a
// non-zero status, which is the intended outcome during testing.
package assert

import (
	"context"
	"errors"
	"fmt"
	"os"
	goruntime "runtime"
	"runtime/debug"
	"strconv"
	"strings"
	"sync"

	"github.com/LerianStudio/lib-unwrap/log"
)

// ErrInvariantViolation is the sentinel error for failed extraction checks.
var ErrInvariantViolation = errors.New("invariant violation")

// Violation describes a failed extraction check: the asserted variant was not
// the one the container actually held.
type Violation struct {
	// Container is the container kind, "optional" or "result".
	Container string
	// Expected is the asserted variant, e.g. "Some", "Ok", "Err".
	Expected string
	// Message is the caller-supplied diagnostic, or the operation default.
	Message string
	// Payload is a rendering of the variant that was actually held, when one
	// carries a value (extracting Ok from an Err result reports the error,
	// and vice versa). Empty otherwise.
	Payload string
	// File and Line identify the extraction call site, when resolvable.
	File string
	Line int
}

// Error returns the formatted violation report.
func (v *Violation) Error() string {
	if v == nil {
		return ErrInvariantViolation.Error()
	}

	details := v.details()
	if details == "" {
		return "invariant violation: " + v.Message
	}

	return "invariant violation: " + v.Message + "\n" + details
}

// Unwrap returns the sentinel violation error for errors.Is.
func (v *Violation) Unwrap() error {
	return ErrInvariantViolation
}

// Location returns the "file:line" call site, or "" when unresolved.
func (v *Violation) Location() string {
	if v == nil || v.File == "" {
		return ""
	}

	return v.File + ":" + strconv.Itoa(v.Line)
}

func (v *Violation) details() string {
	pairs := make([]any, 0, detailPairsCapacity)
	pairs = append(pairs, "container", v.Container)
	pairs = append(pairs, "expected", v.Expected)

	if v.Payload != "" {
		pairs = append(pairs, "held", v.Payload)
	}

	if location := v.Location(); location != "" {
		pairs = append(pairs, "location", location)
	}

	return formatKeyValueLines(pairs)
}

// detailPairsCapacity is the capacity for the detail pairs
// (container, expected, held, location).
const detailPairsCapacity = 8

// FailExtract reports an extraction invariant violation and panics with a
// *Violation. It never returns.
//
// container and expected label the report ("optional"/"Some", "result"/"Ok",
// ...). msg is used verbatim; payload, when non-empty, is a rendering of the
// variant actually held. skip is the number of stack frames between
// FailExtract's caller and the user call site to report, following the
// runtime.Caller convention.
func FailExtract(skip int, container, expected, msg, payload string) {
	violation := &Violation{
		Container: container,
		Expected:  expected,
		Message:   msg,
		Payload:   truncateValue(payload),
	}

	if _, file, line, ok := goruntime.Caller(skip + 1); ok {
		violation.File = file
		violation.Line = line
	}

	stack := []byte(nil)
	if shouldIncludeStack() {
		stack = debug.Stack()
	}

	logViolation(currentLogger(), formatReport(violation, stack))

	panic(violation)
}

const maxValueLength = 200 // Truncate payload renderings longer than this

// Render formats an arbitrary held payload for inclusion in a violation
// report, truncating long values.
func Render(v any) string {
	return truncateValue(fmt.Sprintf("%v", v))
}

// truncateValue truncates long values for logging safety.
func truncateValue(s string) string {
	if len(s) <= maxValueLength {
		return s
	}

	return s[:maxValueLength] + "... (truncated " + strconv.Itoa(len(s)-maxValueLength) + " chars)"
}

func formatKeyValueLines(kv []any) string {
	if len(kv) == 0 {
		return ""
	}

	var sb strings.Builder

	for i := 0; i < len(kv); i += 2 {
		if i > 0 {
			sb.WriteString("\n")
		}

		var value any
		if i+1 < len(kv) {
			value = kv[i+1]
		} else {
			value = "MISSING_VALUE"
		}

		fmt.Fprintf(&sb, "    %v=%v", kv[i], value)
	}

	return sb.String()
}

func formatReport(violation *Violation, stack []byte) string {
	var sb strings.Builder

	sb.WriteString("INVARIANT VIOLATION: ")
	sb.WriteString(violation.Message)

	if details := violation.details(); details != "" {
		sb.WriteString("\n")
		sb.WriteString(details)
	}

	if len(stack) > 0 {
		sb.WriteString("\nstack trace:\n")
		sb.WriteString(string(stack))
	}

	return sb.String()
}

func logViolation(logger log.Logger, report string) {
	if logger != nil {
		logger.Log(context.Background(), log.LevelError, report)
		return
	}

	fmt.Fprintln(os.Stderr, report)
}

func shouldIncludeStack() bool {
	env := strings.TrimSpace(os.Getenv("ENV"))
	goEnv := strings.TrimSpace(os.Getenv("GO_ENV"))

	return !strings.EqualFold(env, "production") && !strings.EqualFold(goEnv, "production")
}

var (
	violationLogger   log.Logger
	violationLoggerMu sync.RWMutex
)

// SetLogger routes violation reports to logger instead of standard error.
// Call once during application startup; passing nil restores the default.
func SetLogger(logger log.Logger) {
	violationLoggerMu.Lock()
	defer violationLoggerMu.Unlock()

	violationLogger = logger
}

// ResetLogger restores the default standard-error reporting (useful for tests).
func ResetLogger() {
	SetLogger(nil)
}

func currentLogger() log.Logger {
	violationLoggerMu.RLock()
	defer violationLoggerMu.RUnlock()

	return violationLogger
}
