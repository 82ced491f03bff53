package logging

import (
	"sync"
)

// Logger is a type that is responsible for storing and logging output from
// the compiler as necessary
type Logger struct {
	errorCount   int // total encountered errors
	warningCount int
	LogLevel     int

	// m is the mutex used to synchronize the printing of messages
	m sync.Mutex
}

// Enumeration of the different log levels
const (
	LogLevelSilent  = iota // no output at all
	LogLevelError          // only errors and closing compilation notification (success/fail)
	LogLevelWarning        // errors, warnings, and closing message
	LogLevelVerbose        // errors, warnings, progress display, closing message (DEFAULT)
)

// reset reinitializes the logger for a new compilation at the given log level
func (l *Logger) reset(loglevel int) {
	l.m.Lock()
	l.LogLevel = loglevel
	l.errorCount = 0
	l.warningCount = 0
	l.m.Unlock()
}

// handleMsg prompts the logger to process a message.  Printing is serialized
// behind a mutex so that messages from concurrent compilations do not
// interleave.
func (l *Logger) handleMsg(lm LogMessage) {
	l.m.Lock()

	if lm.isError() {
		l.errorCount++

		if l.LogLevel > LogLevelSilent {
			displayEndPhase(false)
			lm.display()
		}
	} else {
		l.warningCount++

		if l.LogLevel > LogLevelError {
			lm.display()
		}
	}

	l.m.Unlock()
}
