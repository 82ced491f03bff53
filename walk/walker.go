package walk

import (
	"fmt"

	"simcl/syntax"
	"simcl/typing"
)

// Walker is the construct responsible for performing semantic analysis on a
// parsed compilation unit.  This version builds the scope chain and registers
// declarations; it performs no type checking yet, so every `let` binding and
// parameter is recorded as unknown.
type Walker struct {
	// globals is the root scope; it lives for the duration of one analysis
	// pass
	globals *Scope

	// scope is the current (innermost) scope
	scope *Scope
}

// NewWalker creates a walker with a fresh global scope.  Repeated analyses
// must each use a fresh walker; no state persists between runs.
func NewWalker() *Walker {
	globals := NewScope(nil)
	return &Walker{globals: globals, scope: globals}
}

// Globals returns the walker's root scope
func (w *Walker) Globals() *Scope {
	return w.globals
}

// Walk performs the semantic pass over a full program
func (w *Walker) Walk(prog *syntax.Program) {
	w.walkNode(prog)
}

// pushScope enters a new scope whose parent is the current scope
func (w *Walker) pushScope() {
	w.scope = NewScope(w.scope)
}

// popScope exits the current scope, restoring its parent.  The abandoned
// scope and its bindings are detached here and reclaimed by the GC.
func (w *Walker) popScope() {
	w.scope = w.scope.Parent()
}

// walkStmts walks a statement list in source order
func (w *Walker) walkStmts(stmts []syntax.Stmt) {
	for _, stmt := range stmts {
		w.walkNode(stmt)
	}
}

// walkNode dispatches on the AST node kind
func (w *Walker) walkNode(node syntax.ASTNode) {
	switch n := node.(type) {
	case *syntax.Program:
		w.pushScope()
		w.walkStmts(n.Stmts)
		w.popScope()
	case *syntax.Block:
		w.pushScope()
		w.walkStmts(n.Stmts)
		w.popScope()
	case *syntax.LetStmt:
		// no type inference yet: everything declared unknown
		w.scope.Define(n.Name, typing.TypeUnknown)
		w.walkExpr(n.Init)
	case *syntax.FuncDecl:
		// the function name lands in the enclosing scope; its parameters and
		// body get a scope of their own
		w.scope.Define(n.Name, typing.TypeFunc)

		w.pushScope()
		for _, param := range n.Params {
			w.scope.Define(param.Name, typing.TypeUnknown)
		}
		if n.Body != nil {
			w.walkStmts(n.Body.Stmts)
		}
		w.popScope()
	case *syntax.ReturnStmt:
		w.walkExpr(n.Value)
	case *syntax.WhileStmt:
		w.walkExpr(n.Cond)
		if n.Body != nil {
			w.walkNode(n.Body)
		}
	case *syntax.SimulateStmt:
		if n.Body != nil {
			w.walkNode(n.Body)
		}
	case *syntax.ExprStmt:
		w.walkExpr(n.X)
	case *syntax.BinaryExpr:
		w.walkExpr(n.Left)
		w.walkExpr(n.Right)
	case *syntax.UnaryExpr:
		w.walkExpr(n.Operand)
	case *syntax.CallExpr:
		w.walkExpr(n.Callee)
		for _, arg := range n.Args {
			w.walkExpr(arg)
		}
	case *syntax.Identifier, *syntax.NumberLit, *syntax.StringLit:
		// leaves
	case nil:
		// tolerated so optional children walk uniformly
	default:
		w.logUnhandled(fmt.Sprintf("unhandled AST node kind %T", node), node.Line())
	}
}

// walkExpr walks an expression operand, tolerating absent children
func (w *Walker) walkExpr(x syntax.Expr) {
	if x == nil {
		return
	}

	w.walkNode(x)
}
