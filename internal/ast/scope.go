package ast

// SymbolTable maps names to declaration nodes within one lexical scope.
// Scopes chain through Parent for fallback lookup; every resolution call
// receives the scope it should search explicitly, there is no ambient
// global table.
//
// It lives in this package because model and namespace statements own a
// Locals table that the binder fills in.
type SymbolTable struct {
	Parent  *SymbolTable
	symbols map[string]Node
}

// NewSymbolTable creates a symbol table with an optional parent scope.
func NewSymbolTable(parent *SymbolTable) *SymbolTable {
	return &SymbolTable{
		Parent:  parent,
		symbols: make(map[string]Node),
	}
}

// Declare binds name to node in this scope. When the name is already taken
// it reports failure and returns the previously declared node so callers
// can point diagnostics at both declarations.
func (t *SymbolTable) Declare(name string, node Node) (prev Node, ok bool) {
	if existing, taken := t.symbols[name]; taken {
		return existing, false
	}
	t.symbols[name] = node
	return nil, true
}

// Resolve finds a declaration in this scope or any ancestor scope.
func (t *SymbolTable) Resolve(name string) (Node, bool) {
	if node, ok := t.symbols[name]; ok {
		return node, true
	}
	if t.Parent != nil {
		return t.Parent.Resolve(name)
	}
	return nil, false
}

// ResolveLocal finds a declaration in this scope only.
func (t *SymbolTable) ResolveLocal(name string) (Node, bool) {
	node, ok := t.symbols[name]
	return node, ok
}

// Names returns the declared names of this scope in unspecified order.
func (t *SymbolTable) Names() []string {
	names := make([]string, 0, len(t.symbols))
	for name := range t.symbols {
		names = append(names, name)
	}
	return names
}
