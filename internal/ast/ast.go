package ast

import "github.com/wanlwanl/fork-typespec/internal/lexer"

// Node represents any AST node with an associated source span. Parent is a
// non-owning back-reference set by the binder when it walks the tree; the
// tree itself is built top-down by the parser and never mutated afterwards,
// except for the Locals slots the binder fills in.
type Node interface {
	Span() lexer.Span
	Parent() Node
	SetParent(Node)
}

// Expr represents a type expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a top-level statement.
type Stmt interface {
	Node
	stmtNode()
}

// ModelPropertyItem is a single entry in a model body: either a declared
// property or a spread of another model's properties.
type ModelPropertyItem interface {
	Node
	modelPropertyItem()
}

// ADLScript represents a parsed compilation unit.
type ADLScript struct {
	Statements []Stmt
	span       lexer.Span
	parent     Node
}

// Span returns the span covering the entire script.
func (s *ADLScript) Span() lexer.Span { return s.span }

// Parent returns nil: the script is the root of the tree.
func (s *ADLScript) Parent() Node { return s.parent }

// SetParent is a no-op hook kept for interface symmetry.
func (s *ADLScript) SetParent(p Node) { s.parent = p }

// SetSpan updates the script span.
func (s *ADLScript) SetSpan(span lexer.Span) { s.span = span }

// NewADLScript constructs a script node with the provided span.
func NewADLScript(span lexer.Span) *ADLScript {
	return &ADLScript{span: span}
}

// ImportStatement represents an import of external names (decorator
// bindings supplied by the host) into the global scope.
type ImportStatement struct {
	Names  []*Identifier
	span   lexer.Span
	parent Node
}

// Span returns the statement span.
func (s *ImportStatement) Span() lexer.Span { return s.span }

// Parent returns the enclosing node.
func (s *ImportStatement) Parent() Node { return s.parent }

// SetParent records the enclosing node.
func (s *ImportStatement) SetParent(p Node) { s.parent = p }

func (*ImportStatement) stmtNode() {}

// NewImportStatement constructs an import statement node.
func NewImportStatement(names []*Identifier, span lexer.Span) *ImportStatement {
	return &ImportStatement{Names: names, span: span}
}

// Identifier represents a bare name reference.
type Identifier struct {
	Name   string
	span   lexer.Span
	parent Node
}

// Span returns the identifier span.
func (i *Identifier) Span() lexer.Span { return i.span }

// Parent returns the enclosing node.
func (i *Identifier) Parent() Node { return i.parent }

// SetParent records the enclosing node.
func (i *Identifier) SetParent(p Node) { i.parent = p }

func (*Identifier) exprNode() {}

// NewIdentifier constructs an identifier node.
func NewIdentifier(name string, span lexer.Span) *Identifier {
	return &Identifier{Name: name, span: span}
}

// MemberExpression represents member access into a namespace or imported
// container, e.g. Pets.list.
type MemberExpression struct {
	Base   Expr
	Member *Identifier
	span   lexer.Span
	parent Node
}

// Span returns the expression span.
func (m *MemberExpression) Span() lexer.Span { return m.span }

// Parent returns the enclosing node.
func (m *MemberExpression) Parent() Node { return m.parent }

// SetParent records the enclosing node.
func (m *MemberExpression) SetParent(p Node) { m.parent = p }

func (*MemberExpression) exprNode() {}

// NewMemberExpression constructs a member access node.
func NewMemberExpression(base Expr, member *Identifier, span lexer.Span) *MemberExpression {
	return &MemberExpression{Base: base, Member: member, span: span}
}

// DecoratorExpression represents a single @decorator application, including
// any argument expressions. The core only records decorator applications;
// running them belongs to the host runtime.
type DecoratorExpression struct {
	Target    Expr // identifier or member expression naming the decorator
	Arguments []Expr
	span      lexer.Span
	parent    Node
}

// Span returns the decorator span.
func (d *DecoratorExpression) Span() lexer.Span { return d.span }

// Parent returns the enclosing node.
func (d *DecoratorExpression) Parent() Node { return d.parent }

// SetParent records the enclosing node.
func (d *DecoratorExpression) SetParent(p Node) { d.parent = p }

// NewDecoratorExpression constructs a decorator application node.
func NewDecoratorExpression(target Expr, args []Expr, span lexer.Span) *DecoratorExpression {
	return &DecoratorExpression{Target: target, Arguments: args, span: span}
}
