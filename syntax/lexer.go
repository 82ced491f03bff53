package syntax

import "strings"

// NewLexer creates a lexer for the given source text.  The source is a fully
// buffered, in-memory string; the lexer performs no I/O.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

// IsLetter tests if a byte is an ASCII letter
func IsLetter(c byte) bool {
	return c > '`' && c < '{' || c > '@' && c < '[' // avoid using <= and >= by checking characters on boundaries (same for IsDigit)
}

// IsDigit tests if a byte is an ASCII digit
func IsDigit(c byte) bool {
	return c > '/' && c < ':'
}

// Lexer works like an io.Reader for source text (outputting tokens).  It never
// fails: unrecognized input degrades to UNKNOWN tokens and is rejected later
// by the parser.
type Lexer struct {
	src  string
	pos  int
	line int

	tokBuilder strings.Builder
}

// Next scans forward from the current position, skipping whitespace and
// comments, and returns the next classified token.  Once the end of the
// source is reached it returns EOF tokens forever.
func (l *Lexer) Next() Token {
	l.skipMeaningless()

	if l.pos >= len(l.src) {
		return Token{Kind: EOF, Line: l.line}
	}

	c := l.src[l.pos]

	switch {
	case IsLetter(c) || c == '_':
		return l.readWord()
	case IsDigit(c):
		return l.readNumber()
	case c == '.' && l.pos+1 < len(l.src) && IsDigit(l.src[l.pos+1]):
		// a leading `.` immediately followed by a digit starts a number
		return l.readNumber()
	case c == '"':
		return l.readString()
	default:
		return l.readSymbol()
	}
}

// skipMeaningless discards whitespace, line comments (`//` to end of line),
// and block comments (`/* ... */`, possibly spanning lines).  An unterminated
// block comment is consumed to end of input without error.
func (l *Lexer) skipMeaningless() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\r', '\v', '\f':
			l.pos++
		case '\n':
			l.line++
			l.pos++
		case '/':
			if l.pos+1 < len(l.src) && l.src[l.pos+1] == '/' {
				l.pos += 2
				for l.pos < len(l.src) && l.src[l.pos] != '\n' {
					l.pos++
				}
			} else if l.pos+1 < len(l.src) && l.src[l.pos+1] == '*' {
				l.pos += 2
				for l.pos < len(l.src) {
					if l.src[l.pos] == '*' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '/' {
						l.pos += 2
						break
					}

					if l.src[l.pos] == '\n' {
						l.line++
					}
					l.pos++
				}
			} else {
				// a lone `/` is the division operator
				return
			}
		default:
			return
		}
	}
}

// makeToken creates a token of the given kind on the given line, collecting
// the contents of the token builder as its value
func (l *Lexer) makeToken(kind, line int) Token {
	tok := Token{Kind: kind, Value: l.tokBuilder.String(), Line: line}
	l.tokBuilder.Reset()
	return tok
}

// readWord reads an identifier or a keyword from the source.  The captured
// text is matched case-sensitively against the keyword table; on no match it
// is an identifier.
func (l *Lexer) readWord() Token {
	startLine := l.line

	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if !IsLetter(c) && !IsDigit(c) && c != '_' {
			break
		}

		l.tokBuilder.WriteByte(c)
		l.pos++
	}

	if kind, ok := keywordPatterns[l.tokBuilder.String()]; ok {
		return l.makeToken(kind, startLine)
	}

	return l.makeToken(IDENTIFIER, startLine)
}

// readNumber reads an integer, decimal, or scientific-notation number.  The
// text is captured raw; no numeric conversion happens at this stage.
func (l *Lexer) readNumber() Token {
	startLine := l.line

	l.readDigits()

	// optional single `.` followed by digits
	if l.pos < len(l.src) && l.src[l.pos] == '.' && l.pos+1 < len(l.src) && IsDigit(l.src[l.pos+1]) {
		l.tokBuilder.WriteByte('.')
		l.pos++
		l.readDigits()
	}

	// optional exponent with optional sign
	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		rest := l.src[l.pos+1:]
		if len(rest) > 0 && IsDigit(rest[0]) {
			l.tokBuilder.WriteByte(l.src[l.pos])
			l.pos++
			l.readDigits()
		} else if len(rest) > 1 && (rest[0] == '+' || rest[0] == '-') && IsDigit(rest[1]) {
			l.tokBuilder.WriteByte(l.src[l.pos])
			l.tokBuilder.WriteByte(rest[0])
			l.pos += 2
			l.readDigits()
		}
	}

	return l.makeToken(NUMBER, startLine)
}

// readDigits consumes a run of digits into the token builder
func (l *Lexer) readDigits() {
	for l.pos < len(l.src) && IsDigit(l.src[l.pos]) {
		l.tokBuilder.WriteByte(l.src[l.pos])
		l.pos++
	}
}

// readString reads a double-quoted string literal, decoding the escapes `\"`,
// `\\`, `\n`, and `\t`; any other escaped character is copied literally.  An
// unterminated string is accepted up to end of input without error.
func (l *Lexer) readString() Token {
	startLine := l.line

	// skip the opening quote
	l.pos++

	for l.pos < len(l.src) {
		c := l.src[l.pos]

		switch c {
		case '"':
			l.pos++
			return l.makeToken(STRINGLIT, startLine)
		case '\\':
			l.pos++
			if l.pos >= len(l.src) {
				// trailing backslash at end of input is kept literally
				l.tokBuilder.WriteByte('\\')
				return l.makeToken(STRINGLIT, startLine)
			}

			esc := l.src[l.pos]
			switch esc {
			case '"':
				l.tokBuilder.WriteByte('"')
			case '\\':
				l.tokBuilder.WriteByte('\\')
			case 'n':
				l.tokBuilder.WriteByte('\n')
			case 't':
				l.tokBuilder.WriteByte('\t')
			default:
				if esc == '\n' {
					l.line++
				}
				l.tokBuilder.WriteByte(esc)
			}
			l.pos++
		case '\n':
			l.line++
			l.tokBuilder.WriteByte(c)
			l.pos++
		default:
			l.tokBuilder.WriteByte(c)
			l.pos++
		}
	}

	return l.makeToken(STRINGLIT, startLine)
}

// readSymbol reads an operator or punctuation token.  Two-character operators
// are matched greedily before their one-character prefixes; anything unmatched
// becomes an UNKNOWN token carrying that one character.
func (l *Lexer) readSymbol() Token {
	startLine := l.line

	if l.pos+1 < len(l.src) {
		if kind, ok := symbolPatterns[l.src[l.pos:l.pos+2]]; ok {
			l.tokBuilder.WriteString(l.src[l.pos : l.pos+2])
			l.pos += 2
			return l.makeToken(kind, startLine)
		}
	}

	if kind, ok := symbolPatterns[l.src[l.pos:l.pos+1]]; ok {
		l.tokBuilder.WriteByte(l.src[l.pos])
		l.pos++
		return l.makeToken(kind, startLine)
	}

	l.tokBuilder.WriteByte(l.src[l.pos])
	l.pos++
	return l.makeToken(UNKNOWN, startLine)
}
