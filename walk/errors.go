package walk

import "simcl/logging"

// logUnhandled reports an AST node kind the walker does not know about.  This
// is a warning, not an error: the pass keeps going.
func (w *Walker) logUnhandled(msg string, line int) {
	logging.LogSemanticWarning(msg, line)
}
