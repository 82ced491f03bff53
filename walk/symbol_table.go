package walk

import "simcl/typing"

// Symbol is a single name binding in a scope
type Symbol struct {
	Name string
	Type typing.DataType
}

// Scope is one level of name visibility: a list of bindings plus a non-owning
// reference to the lexically enclosing scope.  Scopes form a chain from the
// innermost scope out to the global scope of one analysis pass.
type Scope struct {
	parent  *Scope
	symbols []*Symbol
}

// NewScope creates an empty scope linked to the given parent.  The parent is
// nil for the root scope.
func NewScope(parent *Scope) *Scope {
	return &Scope{parent: parent}
}

// Parent returns the enclosing scope, or nil for the root scope
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Define adds a binding to the scope.  A duplicate name in the same scope
// shadows the earlier binding rather than erroring.
func (s *Scope) Define(name string, dt typing.DataType) *Symbol {
	sym := &Symbol{Name: name, Type: dt}
	s.symbols = append(s.symbols, sym)
	return sym
}

// Lookup searches the scope's bindings most-recently-defined-first to
// facilitate shadowing, and on a miss recurses to the parent.  A miss at the
// root scope means the name is undeclared; callers decide whether that is an
// error.
func (s *Scope) Lookup(name string) (*Symbol, bool) {
	for i := len(s.symbols) - 1; i > -1; i-- {
		if s.symbols[i].Name == name {
			return s.symbols[i], true
		}
	}

	if s.parent != nil {
		return s.parent.Lookup(name)
	}

	return nil, false
}
