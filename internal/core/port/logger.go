package port

// Fields carries structured data attached to a log record.
type Fields map[string]interface{}

// LoggerPort is the logging contract the core depends on.
// It keeps the application core unaware of the concrete logger.
type LoggerPort interface {
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, err error, fields Fields)
	Debug(msg string, fields Fields)

	// WithFields returns a new logger instance with the fields pre-attached.
	// Useful for request-scoped context such as trace_id.
	WithFields(fields Fields) LoggerPort
}
