package syntax

import "fmt"

// ParseError is a fatal parse error.  The parser produces no AST when one of
// these is returned; callers that want to keep running (tests, editors)
// inspect the fields instead of exiting.
type ParseError struct {
	// Ln is the 1-based source line the error was detected on
	Ln int

	// Expected and Found describe the token mismatch
	Expected string
	Found    string

	// Msg overrides the expected/found form when set (e.g. for invalid
	// assignment targets)
	Msg string
}

func (pe *ParseError) Error() string {
	if pe.Msg != "" {
		return fmt.Sprintf("Parser error (line %d): %s", pe.Ln, pe.Msg)
	}

	return fmt.Sprintf("Parser error (line %d): expected %s but found %s", pe.Ln, pe.Expected, pe.Found)
}
