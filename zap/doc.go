// Package zap adapts go.uber.org/zap to the log.Logger interface so
// violation reports can be routed into an application's structured logs:
//
//	assert.SetLogger(zapadapter.New(appLogger))
//
// When the context carries an active OpenTelemetry span, trace_id and
// span_id fields are appended so reports correlate with distributed traces.
package zap
