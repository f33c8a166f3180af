package core

// Logger interface for sensor diagnostics
type Logger interface {
	Printf(format string, args ...interface{})
}
