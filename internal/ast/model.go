package ast

import "github.com/wanlwanl/fork-typespec/internal/lexer"

// ModelStatement represents a named model declaration. Exactly one of
// Assignment (the `model X = expr` alias form) or the body form
// (Extends/Properties) is populated. Locals holds the template-parameter
// scope and is filled in by the binder for templated models.
type ModelStatement struct {
	Decorators         []*DecoratorExpression
	Name               *Identifier
	TemplateParameters []*TemplateParameterDeclaration
	Extends            []Expr
	Assignment         Expr
	Properties         []ModelPropertyItem
	Locals             *SymbolTable
	span               lexer.Span
	parent             Node
}

// Span returns the declaration span.
func (m *ModelStatement) Span() lexer.Span { return m.span }

// Parent returns the enclosing node.
func (m *ModelStatement) Parent() Node { return m.parent }

// SetParent records the enclosing node.
func (m *ModelStatement) SetParent(p Node) { m.parent = p }

func (*ModelStatement) stmtNode() {}

// NewModelStatement constructs a model declaration node.
func NewModelStatement(name *Identifier, span lexer.Span) *ModelStatement {
	return &ModelStatement{Name: name, span: span}
}

// SetSpan updates the declaration span.
func (m *ModelStatement) SetSpan(span lexer.Span) { m.span = span }

// ModelExpression represents an inline, unnamed model body used in
// expression position, e.g. `model Pair = { a: string; b: int32 };`.
type ModelExpression struct {
	Properties []ModelPropertyItem
	span       lexer.Span
	parent     Node
}

// Span returns the expression span.
func (m *ModelExpression) Span() lexer.Span { return m.span }

// Parent returns the enclosing node.
func (m *ModelExpression) Parent() Node { return m.parent }

// SetParent records the enclosing node.
func (m *ModelExpression) SetParent(p Node) { m.parent = p }

func (*ModelExpression) exprNode() {}

// NewModelExpression constructs an inline model expression node.
func NewModelExpression(props []ModelPropertyItem, span lexer.Span) *ModelExpression {
	return &ModelExpression{Properties: props, span: span}
}

// ModelProperty represents a declared property `name?: type`.
type ModelProperty struct {
	Decorators []*DecoratorExpression
	Name       *Identifier
	Optional   bool
	Value      Expr
	span       lexer.Span
	parent     Node
}

// Span returns the property span.
func (p *ModelProperty) Span() lexer.Span { return p.span }

// Parent returns the enclosing node.
func (p *ModelProperty) Parent() Node { return p.parent }

// SetParent records the enclosing node.
func (p *ModelProperty) SetParent(n Node) { p.parent = n }

func (*ModelProperty) modelPropertyItem() {}

// NewModelProperty constructs a property node.
func NewModelProperty(name *Identifier, optional bool, value Expr, span lexer.Span) *ModelProperty {
	return &ModelProperty{Name: name, Optional: optional, Value: value, span: span}
}

// ModelSpreadProperty represents `...Target` inside a model body. The
// target's effective properties are copied into the spreading model at
// composition time.
type ModelSpreadProperty struct {
	Target Expr
	span   lexer.Span
	parent Node
}

// Span returns the spread span.
func (p *ModelSpreadProperty) Span() lexer.Span { return p.span }

// Parent returns the enclosing node.
func (p *ModelSpreadProperty) Parent() Node { return p.parent }

// SetParent records the enclosing node.
func (p *ModelSpreadProperty) SetParent(n Node) { p.parent = n }

func (*ModelSpreadProperty) modelPropertyItem() {}

// NewModelSpreadProperty constructs a spread node.
func NewModelSpreadProperty(target Expr, span lexer.Span) *ModelSpreadProperty {
	return &ModelSpreadProperty{Target: target, span: span}
}

// TemplateParameterDeclaration represents a single template parameter name.
type TemplateParameterDeclaration struct {
	Name   *Identifier
	span   lexer.Span
	parent Node
}

// Span returns the declaration span.
func (t *TemplateParameterDeclaration) Span() lexer.Span { return t.span }

// Parent returns the enclosing node.
func (t *TemplateParameterDeclaration) Parent() Node { return t.parent }

// SetParent records the enclosing node.
func (t *TemplateParameterDeclaration) SetParent(p Node) { t.parent = p }

// NewTemplateParameterDeclaration constructs a template parameter node.
func NewTemplateParameterDeclaration(name *Identifier, span lexer.Span) *TemplateParameterDeclaration {
	return &TemplateParameterDeclaration{Name: name, span: span}
}
