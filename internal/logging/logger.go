// Package logging provides a logging abstraction layer that decouples the
// transcoder from a specific logging framework. Core packages only see the
// Logger interface; the CLI wires a logrus-backed implementation.
package logging

// Logger defines the interface for structured logging throughout the application.
type Logger interface {
	// Debug logs a debug-level message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger

	// WithFields returns a new logger with multiple fields attached
	WithFields(fields ...Field) Logger
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value interface{}
}

// OrDefault returns logger, or a text logger at info level when logger is nil.
// Constructors across the module accept a nil logger and route it through here.
func OrDefault(logger Logger) Logger {
	if logger != nil {
		return logger
	}
	return NewLogrusAdapter("info", "text")
}

// LogAdvisories emits one warning per advisory. Advisories are data returned
// by the parsers and validators; this is the single place where they become
// log output.
func LogAdvisories(logger Logger, messageType string, advisories []string) {
	if logger == nil {
		return
	}
	for _, advisory := range advisories {
		logger.Warn("CBPR+ advisory",
			Field{Key: FieldMessageType, Value: messageType},
			Field{Key: FieldAdvisory, Value: advisory})
	}
}
