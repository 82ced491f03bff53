package logging

// logger is a global reference to a shared Logger (created/initialized with
// the compiler, but separated for general usage)
var logger Logger

// Initialize initializes the global logger with the provided log level
func Initialize(loglevelname string) {
	var loglevel int
	switch loglevelname {
	case "silent":
		loglevel = LogLevelSilent
	case "error":
		loglevel = LogLevelError
	case "warn":
		loglevel = LogLevelWarning
	// everything else (including invalid log levels) should default to verbose
	default:
		loglevel = LogLevelVerbose
	}

	logger.reset(loglevel)
}

// ShouldProceed indicates whether or not the log module has encountered any
// errors.  This acts as the error accumulator for a whole compilation.
func ShouldProceed() bool {
	return logger.errorCount == 0
}

// -----------------------------------------------------------------------------
// NOTE: All log functions will only display if the appropriate log level is
// set.  Most log functions will simply fail silently if below their
// appropriate log level.

// LogParseError logs a fatal parse error (user-induced, bad code).  The
// message already carries the source line of the violation.
func LogParseError(err error) {
	logger.handleMsg(&ParseMessage{Err: err})
}

// LogSemanticWarning logs a non-fatal warning from the semantic pass
func LogSemanticWarning(message string, line int) {
	logger.handleMsg(&SemanticMessage{Message: message, Line: line})
}

// LogConfigError logs an error related to project or compiler configuration
func LogConfigError(kind, message string) {
	logger.handleMsg(&ConfigError{Kind: kind, Message: message})
}
