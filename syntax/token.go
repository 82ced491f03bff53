package syntax

// Token represents a token read in by the lexer
type Token struct {
	Kind  int
	Value string

	// Line is the line number starting at 1
	Line int
}

// The various kinds of tokens supported by the lexer
const (
	EOF = iota

	// literals (and identifiers)
	IDENTIFIER
	NUMBER
	STRINGLIT

	// keywords
	LET
	FUNCTION
	SIMULATE
	RETURN
	WHILE

	// type keywords (reserved; not yet used by the grammar)
	INT
	FLOAT
	DOUBLE
	VECTOR
	MATRIX

	// punctuation
	LBRACE
	RBRACE
	LPAREN
	RPAREN
	COMMA
	SEMICOLON

	// arithmetic operators
	PLUS
	MINUS
	STAR
	SLASH
	MOD

	// assignment and comparison operators
	ASSIGN
	EQ
	NEQ
	LT
	LTEQ
	GT
	GTEQ

	// fallback kind for any unrecognized character
	UNKNOWN
)

// token patterns (matching strings) for keywords
var keywordPatterns = map[string]int{
	"let":      LET,
	"function": FUNCTION,
	"simulate": SIMULATE,
	"return":   RETURN,
	"while":    WHILE,
	"int":      INT,
	"float":    FLOAT,
	"double":   DOUBLE,
	"vector":   VECTOR,
	"matrix":   MATRIX,
}

// token patterns for symbolic items - longest match wins
var symbolPatterns = map[string]int{
	"{":  LBRACE,
	"}":  RBRACE,
	"(":  LPAREN,
	")":  RPAREN,
	",":  COMMA,
	";":  SEMICOLON,
	"+":  PLUS,
	"-":  MINUS,
	"*":  STAR,
	"/":  SLASH,
	"%":  MOD,
	"=":  ASSIGN,
	"==": EQ,
	"!=": NEQ,
	"<":  LT,
	"<=": LTEQ,
	">":  GT,
	">=": GTEQ,
}

// tokenKindNames maps token kinds to human-readable names for diagnostics
var tokenKindNames = map[int]string{
	EOF:        "end of input",
	IDENTIFIER: "identifier",
	NUMBER:     "number",
	STRINGLIT:  "string",
	LET:        "`let`",
	FUNCTION:   "`function`",
	SIMULATE:   "`simulate`",
	RETURN:     "`return`",
	WHILE:      "`while`",
	INT:        "`int`",
	FLOAT:      "`float`",
	DOUBLE:     "`double`",
	VECTOR:     "`vector`",
	MATRIX:     "`matrix`",
	LBRACE:     "`{`",
	RBRACE:     "`}`",
	LPAREN:     "`(`",
	RPAREN:     "`)`",
	COMMA:      "`,`",
	SEMICOLON:  "`;`",
	PLUS:       "`+`",
	MINUS:      "`-`",
	STAR:       "`*`",
	SLASH:      "`/`",
	MOD:        "`%`",
	ASSIGN:     "`=`",
	EQ:         "`==`",
	NEQ:        "`!=`",
	LT:         "`<`",
	LTEQ:       "`<=`",
	GT:         "`>`",
	GTEQ:       "`>=`",
	UNKNOWN:    "unknown token",
}

// KindName returns the human-readable name of a token kind
func KindName(kind int) string {
	if name, ok := tokenKindNames[kind]; ok {
		return name
	}

	return "unknown token"
}

// Repr returns a representation of the token suitable for error messages
func (t Token) Repr() string {
	switch t.Kind {
	case EOF:
		return "end of input"
	case IDENTIFIER, NUMBER:
		return "`" + t.Value + "`"
	case STRINGLIT:
		return "string literal"
	default:
		return "`" + t.Value + "`"
	}
}
