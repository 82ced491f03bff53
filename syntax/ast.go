package syntax

// ASTNode represents a piece of the Abstract Syntax Tree (AST)
type ASTNode interface {
	// Line is the 1-based source line the node begins on
	Line() int
}

// Stmt is an AST node that appears in a statement list
type Stmt interface {
	ASTNode
	stmtNode()
}

// Expr is an AST node that yields a value
type Expr interface {
	ASTNode
	exprNode()
}

// Program is the root node: the top-level statement list of a compilation
// unit, in source order.
type Program struct {
	Stmts []Stmt
	Ln    int
}

func (p *Program) Line() int { return p.Ln }

// Block is a `{ ... }` statement list
type Block struct {
	Stmts []Stmt
	Ln    int
}

func (b *Block) Line() int { return b.Ln }
func (b *Block) stmtNode() {}

// LetStmt is a `let NAME = expr` binding
type LetStmt struct {
	Name string
	Init Expr
	Ln   int
}

func (l *LetStmt) Line() int { return l.Ln }
func (l *LetStmt) stmtNode() {}

// FuncDecl is a `function NAME(params) block` declaration.  Params are kept in
// encounter order.
type FuncDecl struct {
	Name   string
	Params []*Identifier
	Body   *Block
	Ln     int
}

func (f *FuncDecl) Line() int { return f.Ln }
func (f *FuncDecl) stmtNode() {}

// ReturnStmt is a `return expr` statement
type ReturnStmt struct {
	Value Expr
	Ln    int
}

func (r *ReturnStmt) Line() int { return r.Ln }
func (r *ReturnStmt) stmtNode() {}

// WhileStmt is a `while expr block` loop
type WhileStmt struct {
	Cond Expr
	Body *Block
	Ln   int
}

func (w *WhileStmt) Line() int { return w.Ln }
func (w *WhileStmt) stmtNode() {}

// SimulateStmt is a `simulate block` statement
type SimulateStmt struct {
	Body *Block
	Ln   int
}

func (s *SimulateStmt) Line() int { return s.Ln }
func (s *SimulateStmt) stmtNode() {}

// ExprStmt is a bare expression in statement position
type ExprStmt struct {
	X  Expr
	Ln int
}

func (e *ExprStmt) Line() int { return e.Ln }
func (e *ExprStmt) stmtNode() {}

// BinaryExpr is a binary operation.  Assignment is represented as a
// BinaryExpr with op `=` whose Left is always an Identifier.
type BinaryExpr struct {
	Op          string
	Left, Right Expr
	Ln          int
}

func (b *BinaryExpr) Line() int { return b.Ln }
func (b *BinaryExpr) exprNode() {}

// UnaryExpr is a prefix `+` or `-` operation
type UnaryExpr struct {
	Op      string
	Operand Expr
	Ln      int
}

func (u *UnaryExpr) Line() int { return u.Ln }
func (u *UnaryExpr) exprNode() {}

// NumberLit is a numeric literal; Text is the raw captured lexeme
type NumberLit struct {
	Text string
	Ln   int
}

func (n *NumberLit) Line() int { return n.Ln }
func (n *NumberLit) exprNode() {}

// StringLit is a string literal; Text is the decoded contents
type StringLit struct {
	Text string
	Ln   int
}

func (s *StringLit) Line() int { return s.Ln }
func (s *StringLit) exprNode() {}

// Identifier is a reference to a name
type Identifier struct {
	Name string
	Ln   int
}

func (i *Identifier) Line() int { return i.Ln }
func (i *Identifier) exprNode() {}

// CallExpr is a function call; Args are kept in encounter order
type CallExpr struct {
	Callee Expr
	Args   []Expr
	Ln     int
}

func (c *CallExpr) Line() int { return c.Ln }
func (c *CallExpr) exprNode() {}
