package syntax_test

import (
	"reflect"
	"strings"
	"testing"

	"simcl/syntax"
)

// parseSource parses src and fails the test on a fatal parse error
func parseSource(t *testing.T, src string) *syntax.Program {
	t.Helper()

	p := syntax.NewParser(syntax.NewLexer(src))
	prog, err := p.Parse()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	return prog
}

// parseExpr parses src and returns the expression of its single statement
func parseExpr(t *testing.T, src string) syntax.Expr {
	t.Helper()

	prog := parseSource(t, src)
	if len(prog.Stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Stmts))
	}

	es, ok := prog.Stmts[0].(*syntax.ExprStmt)
	if !ok {
		t.Fatalf("expected expression statement, got %T", prog.Stmts[0])
	}

	return es.X
}

func TestTopLevelStatementCount(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{"empty program", "", 0},
		{"single let", "let x = 1;", 1},
		{"statement per construct", "let x = 1\nfunction f(a) { return a }\nsimulate { x }\nwhile x < 10 { x }\nx + 1", 5},
		{"expression statements", "f(1) g(2) h(3)", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := parseSource(t, tt.src)
			if len(prog.Stmts) != tt.want {
				t.Errorf("expected %d top-level statements, got %d", tt.want, len(prog.Stmts))
			}
		})
	}
}

func TestOperatorPrecedence(t *testing.T) {
	// 1 + 2 * 3 parses as 1 + (2 * 3)
	x := parseExpr(t, "1 + 2 * 3")

	add, ok := x.(*syntax.BinaryExpr)
	if !ok || add.Op != "+" {
		t.Fatalf("expected `+` at root, got %#v", x)
	}

	if lit, ok := add.Left.(*syntax.NumberLit); !ok || lit.Text != "1" {
		t.Errorf("expected number 1 on left, got %#v", add.Left)
	}

	mul, ok := add.Right.(*syntax.BinaryExpr)
	if !ok || mul.Op != "*" {
		t.Fatalf("expected `*` on right, got %#v", add.Right)
	}

	if lit, ok := mul.Left.(*syntax.NumberLit); !ok || lit.Text != "2" {
		t.Errorf("expected number 2, got %#v", mul.Left)
	}
	if lit, ok := mul.Right.(*syntax.NumberLit); !ok || lit.Text != "3" {
		t.Errorf("expected number 3, got %#v", mul.Right)
	}
}

func TestParenGrouping(t *testing.T) {
	// (1 + 2) * 3 parses as (1 + 2) * 3
	x := parseExpr(t, "(1 + 2) * 3")

	mul, ok := x.(*syntax.BinaryExpr)
	if !ok || mul.Op != "*" {
		t.Fatalf("expected `*` at root, got %#v", x)
	}

	add, ok := mul.Left.(*syntax.BinaryExpr)
	if !ok || add.Op != "+" {
		t.Fatalf("expected `+` on left, got %#v", mul.Left)
	}
}

func TestUnaryBinding(t *testing.T) {
	// -x * 3 parses as (-x) * 3
	x := parseExpr(t, "-x * 3")

	mul, ok := x.(*syntax.BinaryExpr)
	if !ok || mul.Op != "*" {
		t.Fatalf("expected `*` at root, got %#v", x)
	}

	neg, ok := mul.Left.(*syntax.UnaryExpr)
	if !ok || neg.Op != "-" {
		t.Fatalf("expected unary `-` on left, got %#v", mul.Left)
	}

	if ident, ok := neg.Operand.(*syntax.Identifier); !ok || ident.Name != "x" {
		t.Errorf("expected identifier x, got %#v", neg.Operand)
	}
}

func TestAssignmentAssociativity(t *testing.T) {
	// a = b = 3 parses as a = (b = 3)
	x := parseExpr(t, "a = b = 3")

	outer, ok := x.(*syntax.BinaryExpr)
	if !ok || outer.Op != "=" {
		t.Fatalf("expected `=` at root, got %#v", x)
	}

	if ident, ok := outer.Left.(*syntax.Identifier); !ok || ident.Name != "a" {
		t.Fatalf("expected identifier a on left, got %#v", outer.Left)
	}

	inner, ok := outer.Right.(*syntax.BinaryExpr)
	if !ok || inner.Op != "=" {
		t.Fatalf("expected nested `=` on right, got %#v", outer.Right)
	}

	if ident, ok := inner.Left.(*syntax.Identifier); !ok || ident.Name != "b" {
		t.Errorf("expected identifier b, got %#v", inner.Left)
	}
	if lit, ok := inner.Right.(*syntax.NumberLit); !ok || lit.Text != "3" {
		t.Errorf("expected number 3, got %#v", inner.Right)
	}
}

func TestComparisonChains(t *testing.T) {
	// a < b == c < d parses as (a < b) == (c < d)
	x := parseExpr(t, "a < b == c < d")

	eq, ok := x.(*syntax.BinaryExpr)
	if !ok || eq.Op != "==" {
		t.Fatalf("expected `==` at root, got %#v", x)
	}

	if lt, ok := eq.Left.(*syntax.BinaryExpr); !ok || lt.Op != "<" {
		t.Errorf("expected `<` on left, got %#v", eq.Left)
	}
	if lt, ok := eq.Right.(*syntax.BinaryExpr); !ok || lt.Op != "<" {
		t.Errorf("expected `<` on right, got %#v", eq.Right)
	}
}

func TestFunctionDeclaration(t *testing.T) {
	prog := parseSource(t, "function f(a, b) { return a + b; }")

	if len(prog.Stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Stmts))
	}

	fn, ok := prog.Stmts[0].(*syntax.FuncDecl)
	if !ok {
		t.Fatalf("expected function declaration, got %T", prog.Stmts[0])
	}

	if fn.Name != "f" {
		t.Errorf("expected function name f, got %q", fn.Name)
	}

	if len(fn.Params) != 2 || fn.Params[0].Name != "a" || fn.Params[1].Name != "b" {
		t.Fatalf("expected parameters [a b], got %#v", fn.Params)
	}

	if len(fn.Body.Stmts) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(fn.Body.Stmts))
	}

	ret, ok := fn.Body.Stmts[0].(*syntax.ReturnStmt)
	if !ok {
		t.Fatalf("expected return statement, got %T", fn.Body.Stmts[0])
	}

	if add, ok := ret.Value.(*syntax.BinaryExpr); !ok || add.Op != "+" {
		t.Errorf("expected `+` return value, got %#v", ret.Value)
	}
}

func TestCallExpression(t *testing.T) {
	x := parseExpr(t, "f(1, 2)")

	call, ok := x.(*syntax.CallExpr)
	if !ok {
		t.Fatalf("expected call expression, got %#v", x)
	}

	if ident, ok := call.Callee.(*syntax.Identifier); !ok || ident.Name != "f" {
		t.Errorf("expected callee f, got %#v", call.Callee)
	}

	if len(call.Args) != 2 {
		t.Fatalf("expected 2 arguments, got %d", len(call.Args))
	}

	for i, want := range []string{"1", "2"} {
		if lit, ok := call.Args[i].(*syntax.NumberLit); !ok || lit.Text != want {
			t.Errorf("argument %d: expected number %s, got %#v", i, want, call.Args[i])
		}
	}
}

func TestEmptyCall(t *testing.T) {
	x := parseExpr(t, "step()")

	call, ok := x.(*syntax.CallExpr)
	if !ok {
		t.Fatalf("expected call expression, got %#v", x)
	}
	if len(call.Args) != 0 {
		t.Errorf("expected no arguments, got %d", len(call.Args))
	}
}

func TestWhileAndSimulate(t *testing.T) {
	prog := parseSource(t, "while t < 100 { t = t + 1 }\nsimulate { step() }")

	if len(prog.Stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Stmts))
	}

	loop, ok := prog.Stmts[0].(*syntax.WhileStmt)
	if !ok {
		t.Fatalf("expected while statement, got %T", prog.Stmts[0])
	}
	if cmp, ok := loop.Cond.(*syntax.BinaryExpr); !ok || cmp.Op != "<" {
		t.Errorf("expected `<` condition, got %#v", loop.Cond)
	}
	if len(loop.Body.Stmts) != 1 {
		t.Errorf("expected 1 loop body statement, got %d", len(loop.Body.Stmts))
	}

	sim, ok := prog.Stmts[1].(*syntax.SimulateStmt)
	if !ok {
		t.Fatalf("expected simulate statement, got %T", prog.Stmts[1])
	}
	if len(sim.Body.Stmts) != 1 {
		t.Errorf("expected 1 simulate body statement, got %d", len(sim.Body.Stmts))
	}
}

func TestOptionalSemicolons(t *testing.T) {
	with := parseSource(t, "let x = 1; let y = 2; return x;")
	without := parseSource(t, "let x = 1 let y = 2 return x")

	if !reflect.DeepEqual(stripLines(with), stripLines(without)) {
		t.Errorf("semicolon and semicolon-free forms parsed differently:\n%#v\n%#v", with, without)
	}
}

func TestReparseIdempotence(t *testing.T) {
	src := "let x = 1\nfunction f(a, b) { return a * b }\nsimulate { while x < 10 { x = f(x, 2) } }"

	first := parseSource(t, src)
	second := parseSource(t, src)

	if first == second {
		t.Fatal("expected distinct AST identities")
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected structurally identical ASTs:\n%#v\n%#v", first, second)
	}
}

func TestRecoverableSkip(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{"stray brace at top level", "} let x = 1", 1},
		{"stray comma between statements", "let x = 1 , let y = 2", 2},
		{"stray operator", "== let x = 1", 1},
		{"unknown character", "@ let x = 1", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := parseSource(t, tt.src)
			if len(prog.Stmts) != tt.want {
				t.Errorf("expected %d statements after recovery, got %d", tt.want, len(prog.Stmts))
			}
		})
	}
}

func TestRecoverableSkipInsideBlock(t *testing.T) {
	prog := parseSource(t, "simulate { , let y = 2 }")

	sim := prog.Stmts[0].(*syntax.SimulateStmt)
	if len(sim.Body.Stmts) != 1 {
		t.Fatalf("expected 1 body statement after recovery, got %d", len(sim.Body.Stmts))
	}

	if let, ok := sim.Body.Stmts[0].(*syntax.LetStmt); !ok || let.Name != "y" {
		t.Errorf("expected let y, got %#v", sim.Body.Stmts[0])
	}
}

func TestFatalErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantLine int
		wantMsg  string
	}{
		{"let missing identifier", "let = 5;", 1, "expected identifier"},
		{"let missing equals", "let x 5", 1, "expected `=`"},
		{"function missing name", "function (a) { }", 1, "expected identifier"},
		{"function missing paren", "function f a) { }", 1, "expected `(`"},
		{"unclosed block", "simulate {", 1, "expected `}`"},
		{"unclosed block cites the right line", "simulate {\nlet x = 1\n", 3, "expected `}`"},
		{"missing close paren", "let x = (1 + 2", 1, "expected `)`"},
		{"invalid assignment target", "1 + 2 = x", 1, "invalid assignment target"},
		{"missing expression", "let x = ;", 1, "expected expression"},
		{"bad call argument list", "f(1,)", 1, "expected expression"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := syntax.NewParser(syntax.NewLexer(tt.src))
			prog, err := p.Parse()
			if err == nil {
				t.Fatalf("expected fatal parse error, got AST %#v", prog)
			}

			perr, ok := err.(*syntax.ParseError)
			if !ok {
				t.Fatalf("expected *ParseError, got %T", err)
			}

			if perr.Ln != tt.wantLine {
				t.Errorf("expected error on line %d, got %d", tt.wantLine, perr.Ln)
			}

			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected message containing %q, got %q", tt.wantMsg, err.Error())
			}

			if !strings.Contains(err.Error(), "Parser error (line ") {
				t.Errorf("expected canonical error prefix, got %q", err.Error())
			}
		})
	}
}

// stripLines zeroes the line fields of a program so that layout-insensitive
// shape comparisons can use reflect.DeepEqual
func stripLines(prog *syntax.Program) *syntax.Program {
	clone := &syntax.Program{}
	for _, stmt := range prog.Stmts {
		clone.Stmts = append(clone.Stmts, stripStmt(stmt))
	}
	return clone
}

func stripStmt(stmt syntax.Stmt) syntax.Stmt {
	switch s := stmt.(type) {
	case *syntax.Block:
		b := &syntax.Block{}
		for _, inner := range s.Stmts {
			b.Stmts = append(b.Stmts, stripStmt(inner))
		}
		return b
	case *syntax.LetStmt:
		return &syntax.LetStmt{Name: s.Name, Init: stripExpr(s.Init)}
	case *syntax.FuncDecl:
		fn := &syntax.FuncDecl{Name: s.Name}
		for _, param := range s.Params {
			fn.Params = append(fn.Params, &syntax.Identifier{Name: param.Name})
		}
		fn.Body = stripStmt(s.Body).(*syntax.Block)
		return fn
	case *syntax.ReturnStmt:
		return &syntax.ReturnStmt{Value: stripExpr(s.Value)}
	case *syntax.WhileStmt:
		return &syntax.WhileStmt{Cond: stripExpr(s.Cond), Body: stripStmt(s.Body).(*syntax.Block)}
	case *syntax.SimulateStmt:
		return &syntax.SimulateStmt{Body: stripStmt(s.Body).(*syntax.Block)}
	case *syntax.ExprStmt:
		return &syntax.ExprStmt{X: stripExpr(s.X)}
	default:
		return stmt
	}
}

func stripExpr(x syntax.Expr) syntax.Expr {
	switch e := x.(type) {
	case *syntax.BinaryExpr:
		return &syntax.BinaryExpr{Op: e.Op, Left: stripExpr(e.Left), Right: stripExpr(e.Right)}
	case *syntax.UnaryExpr:
		return &syntax.UnaryExpr{Op: e.Op, Operand: stripExpr(e.Operand)}
	case *syntax.NumberLit:
		return &syntax.NumberLit{Text: e.Text}
	case *syntax.StringLit:
		return &syntax.StringLit{Text: e.Text}
	case *syntax.Identifier:
		return &syntax.Identifier{Name: e.Name}
	case *syntax.CallExpr:
		call := &syntax.CallExpr{Callee: stripExpr(e.Callee)}
		for _, arg := range e.Args {
			call.Args = append(call.Args, stripExpr(arg))
		}
		return call
	default:
		return x
	}
}
