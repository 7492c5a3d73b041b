package ast

import "github.com/wanlwanl/fork-typespec/internal/lexer"

// NamespaceStatement represents a namespace declaration. Several namespace
// statements with the same name merge into one logical namespace; the
// binder gives all of them the same Locals table so their property sets are
// unioned and duplicate member names across statements are caught.
type NamespaceStatement struct {
	Decorators []*DecoratorExpression
	Name       *Identifier
	Parameters []*ModelProperty // the namespace's own call signature, if any
	Properties []*NamespaceProperty
	Locals     *SymbolTable
	span       lexer.Span
	parent     Node
}

// Span returns the declaration span.
func (n *NamespaceStatement) Span() lexer.Span { return n.span }

// Parent returns the enclosing node.
func (n *NamespaceStatement) Parent() Node { return n.parent }

// SetParent records the enclosing node.
func (n *NamespaceStatement) SetParent(p Node) { n.parent = p }

func (*NamespaceStatement) stmtNode() {}

// NewNamespaceStatement constructs a namespace declaration node.
func NewNamespaceStatement(name *Identifier, span lexer.Span) *NamespaceStatement {
	return &NamespaceStatement{Name: name, span: span}
}

// SetSpan updates the declaration span.
func (n *NamespaceStatement) SetSpan(span lexer.Span) { n.span = span }

// NamespaceProperty represents a callable member of a namespace:
// `name(params): returnType`.
type NamespaceProperty struct {
	Decorators []*DecoratorExpression
	Name       *Identifier
	Parameters []*ModelProperty
	ReturnType Expr
	span       lexer.Span
	parent     Node
}

// Span returns the member span.
func (p *NamespaceProperty) Span() lexer.Span { return p.span }

// Parent returns the enclosing node.
func (p *NamespaceProperty) Parent() Node { return p.parent }

// SetParent records the enclosing node.
func (p *NamespaceProperty) SetParent(n Node) { p.parent = n }

// NewNamespaceProperty constructs a namespace member node.
func NewNamespaceProperty(name *Identifier, params []*ModelProperty, ret Expr, span lexer.Span) *NamespaceProperty {
	return &NamespaceProperty{Name: name, Parameters: params, ReturnType: ret, span: span}
}
