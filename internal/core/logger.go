package core

// Logger is the structured-logging seam used throughout the renderer,
// kept minimal so callers can plug in anything from a plain
// log.Logger to a no-op in tests.
type Logger interface {
	Printf(format string, args ...interface{})
}
