package log

import "strings"

// logControlCharReplacer escapes control characters that can be used for log
// injection (CWE-117). Newlines, carriage returns, and tabs in log messages
// can forge fake log entries or inject false audit trail entries.
var logControlCharReplacer = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// sanitizeLogString escapes control characters in a single string value.
func sanitizeLogString(s string) string {
	return logControlCharReplacer.Replace(s)
}

// sanitizeFieldValue escapes control characters in string-typed field values.
// Non-string values are passed through unchanged.
func sanitizeFieldValue(v any) any {
	if s, ok := v.(string); ok {
		return sanitizeLogString(s)
	}

	return v
}
