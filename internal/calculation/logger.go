package calculation

// Logger is the minimal logging surface the projection components need.
// The default is a no-op; callers that want output inject their own.
type Logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
}

// NopLogger discards all log output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Warnf(format string, args ...any)  {}
