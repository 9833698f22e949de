// Package log defines the minimal structured logging surface used by the
// extraction diagnostic path.
//
// The Logger interface is intentionally small: implementations only need to
// emit a leveled message with optional fields. The package ships a no-op
// implementation and a stdlib-backed implementation that writes sanitized
// lines to a writer; the zap subpackage provides a production adapter.
package log
