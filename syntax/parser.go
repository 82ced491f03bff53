package syntax

// Parser is a recursive-descent parser for the SimCL grammar.
//
// Precedence, lowest to highest:
//
//	assignment -> equality -> relational -> additive -> multiplicative
//	-> unary -> primary
//
// Semicolons terminating a statement are always optional: accepted when
// present, never required.  Error policy is fail-fast except inside statement
// lists: an unexpected token at statement position is discarded and parsing
// continues with the next statement, while every other grammar violation
// aborts the whole parse with a *ParseError.  Later phases rely on a parse
// either fully succeeding or producing no AST at all.
type Parser struct {
	lex *Lexer

	// tok is the current (unconsumed) token
	tok Token
}

// NewParser creates a parser reading from the given lexer and primes the
// first token
func NewParser(lex *Lexer) *Parser {
	p := &Parser{lex: lex}
	p.advance()
	return p
}

// Parse consumes tokens until end of input and returns the Program node
// containing the top-level statement list
func (p *Parser) Parse() (*Program, error) {
	prog := &Program{Ln: p.tok.Line}

	for p.tok.Kind != EOF {
		if !p.atStatementStart() {
			// recoverable skip: discard exactly one unexpected token so that
			// subsequent statements still parse
			p.advance()
			continue
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		prog.Stmts = append(prog.Stmts, stmt)
	}

	return prog, nil
}

// advance pulls the next token from the lexer
func (p *Parser) advance() {
	p.tok = p.lex.Next()
}

// expect consumes and returns the current token if it has the given kind and
// fails the parse otherwise
func (p *Parser) expect(kind int) (Token, error) {
	if p.tok.Kind != kind {
		return Token{}, &ParseError{
			Ln:       p.tok.Line,
			Expected: KindName(kind),
			Found:    p.tok.Repr(),
		}
	}

	tok := p.tok
	p.advance()
	return tok, nil
}

// acceptSemi consumes an optional statement-terminating semicolon
func (p *Parser) acceptSemi() {
	if p.tok.Kind == SEMICOLON {
		p.advance()
	}
}

// atStatementStart reports whether the current token can begin a statement:
// either a statement keyword or a token that can begin an expression
func (p *Parser) atStatementStart() bool {
	switch p.tok.Kind {
	case LET, FUNCTION, SIMULATE, RETURN, WHILE:
		return true
	case NUMBER, STRINGLIT, IDENTIFIER, LPAREN, PLUS, MINUS:
		return true
	default:
		return false
	}
}

// parseStatement parses a single statement based on its leading token
func (p *Parser) parseStatement() (Stmt, error) {
	switch p.tok.Kind {
	case LET:
		return p.parseLet()
	case FUNCTION:
		return p.parseFunction()
	case SIMULATE:
		return p.parseSimulate()
	case RETURN:
		return p.parseReturn()
	case WHILE:
		return p.parseWhile()
	default:
		return p.parseExprStmt()
	}
}

// parseLet parses `let IDENT = expression [;]`
func (p *Parser) parseLet() (Stmt, error) {
	line := p.tok.Line
	p.advance()

	name, err := p.expect(IDENTIFIER)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(ASSIGN); err != nil {
		return nil, err
	}

	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	p.acceptSemi()
	return &LetStmt{Name: name.Value, Init: init, Ln: line}, nil
}

// parseFunction parses `function IDENT ( [params] ) block`
func (p *Parser) parseFunction() (Stmt, error) {
	line := p.tok.Line
	p.advance()

	name, err := p.expect(IDENTIFIER)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}

	var params []*Identifier
	if p.tok.Kind == IDENTIFIER {
		params = append(params, &Identifier{Name: p.tok.Value, Ln: p.tok.Line})
		p.advance()

		for p.tok.Kind == COMMA {
			p.advance()

			param, err := p.expect(IDENTIFIER)
			if err != nil {
				return nil, err
			}

			params = append(params, &Identifier{Name: param.Value, Ln: param.Line})
		}
	}

	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &FuncDecl{Name: name.Value, Params: params, Body: body, Ln: line}, nil
}

// parseSimulate parses `simulate block`
func (p *Parser) parseSimulate() (Stmt, error) {
	line := p.tok.Line
	p.advance()

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &SimulateStmt{Body: body, Ln: line}, nil
}

// parseReturn parses `return expression [;]`
func (p *Parser) parseReturn() (Stmt, error) {
	line := p.tok.Line
	p.advance()

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	p.acceptSemi()
	return &ReturnStmt{Value: value, Ln: line}, nil
}

// parseWhile parses `while expression block`
func (p *Parser) parseWhile() (Stmt, error) {
	line := p.tok.Line
	p.advance()

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &WhileStmt{Cond: cond, Body: body, Ln: line}, nil
}

// parseExprStmt parses a bare expression in statement position
func (p *Parser) parseExprStmt() (Stmt, error) {
	line := p.tok.Line

	x, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	p.acceptSemi()
	return &ExprStmt{X: x, Ln: line}, nil
}

// parseBlock parses `{ { statement } }` with the same one-token recovery as
// the top-level statement list
func (p *Parser) parseBlock() (*Block, error) {
	lbrace, err := p.expect(LBRACE)
	if err != nil {
		return nil, err
	}

	block := &Block{Ln: lbrace.Line}
	for p.tok.Kind != RBRACE && p.tok.Kind != EOF {
		if !p.atStatementStart() {
			p.advance()
			continue
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		block.Stmts = append(block.Stmts, stmt)
	}

	if _, err := p.expect(RBRACE); err != nil {
		return nil, err
	}

	return block, nil
}

// parseExpression parses a full expression
func (p *Parser) parseExpression() (Expr, error) {
	return p.parseAssignment()
}

// parseAssignment parses right-associative assignment.  The left operand must
// be a bare identifier; anything else fails the parse.  Assignment is
// represented as a BinaryExpr with op `=`.
func (p *Parser) parseAssignment() (Expr, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}

	if p.tok.Kind != ASSIGN {
		return left, nil
	}

	opLine := p.tok.Line
	if _, ok := left.(*Identifier); !ok {
		return nil, &ParseError{
			Ln:  opLine,
			Msg: "invalid assignment target: expected identifier on left side of `=`",
		}
	}
	p.advance()

	right, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}

	return &BinaryExpr{Op: "=", Left: left, Right: right, Ln: opLine}, nil
}

// parseEquality parses left-associative `==` and `!=` chains
func (p *Parser) parseEquality() (Expr, error) {
	left, err := p.parseRelational()
	if err != nil {
		return nil, err
	}

	for p.tok.Kind == EQ || p.tok.Kind == NEQ {
		op := p.tok
		p.advance()

		right, err := p.parseRelational()
		if err != nil {
			return nil, err
		}

		left = &BinaryExpr{Op: op.Value, Left: left, Right: right, Ln: op.Line}
	}

	return left, nil
}

// parseRelational parses left-associative `<`, `<=`, `>`, `>=` chains
func (p *Parser) parseRelational() (Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	for p.tok.Kind == LT || p.tok.Kind == LTEQ || p.tok.Kind == GT || p.tok.Kind == GTEQ {
		op := p.tok
		p.advance()

		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}

		left = &BinaryExpr{Op: op.Value, Left: left, Right: right, Ln: op.Line}
	}

	return left, nil
}

// parseAdditive parses left-associative `+` and `-` chains
func (p *Parser) parseAdditive() (Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}

	for p.tok.Kind == PLUS || p.tok.Kind == MINUS {
		op := p.tok
		p.advance()

		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}

		left = &BinaryExpr{Op: op.Value, Left: left, Right: right, Ln: op.Line}
	}

	return left, nil
}

// parseMultiplicative parses left-associative `*`, `/`, `%` chains
func (p *Parser) parseMultiplicative() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.tok.Kind == STAR || p.tok.Kind == SLASH || p.tok.Kind == MOD {
		op := p.tok
		p.advance()

		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		left = &BinaryExpr{Op: op.Value, Left: left, Right: right, Ln: op.Line}
	}

	return left, nil
}

// parseUnary parses prefix `+` and `-` operators
func (p *Parser) parseUnary() (Expr, error) {
	if p.tok.Kind == PLUS || p.tok.Kind == MINUS {
		op := p.tok
		p.advance()

		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return &UnaryExpr{Op: op.Value, Operand: operand, Ln: op.Line}, nil
	}

	return p.parsePrimary()
}

// parsePrimary parses literals, identifiers, call expressions, and
// parenthesized expressions
func (p *Parser) parsePrimary() (Expr, error) {
	switch p.tok.Kind {
	case NUMBER:
		lit := &NumberLit{Text: p.tok.Value, Ln: p.tok.Line}
		p.advance()
		return lit, nil
	case STRINGLIT:
		lit := &StringLit{Text: p.tok.Value, Ln: p.tok.Line}
		p.advance()
		return lit, nil
	case IDENTIFIER:
		ident := &Identifier{Name: p.tok.Value, Ln: p.tok.Line}
		p.advance()

		if p.tok.Kind == LPAREN {
			return p.parseCall(ident)
		}

		return ident, nil
	case LPAREN:
		p.advance()

		x, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}

		return x, nil
	default:
		return nil, &ParseError{
			Ln:       p.tok.Line,
			Expected: "expression",
			Found:    p.tok.Repr(),
		}
	}
}

// parseCall parses the argument list of a call expression; the callee has
// already been consumed and the current token is `(`
func (p *Parser) parseCall(callee Expr) (Expr, error) {
	line := p.tok.Line
	p.advance()

	call := &CallExpr{Callee: callee, Ln: line}
	if p.tok.Kind != RPAREN {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}

			call.Args = append(call.Args, arg)

			if p.tok.Kind != COMMA {
				break
			}
			p.advance()
		}
	}

	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}

	return call, nil
}
