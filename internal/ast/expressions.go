package ast

import "github.com/wanlwanl/fork-typespec/internal/lexer"

// TemplateApplication represents `Target<Arg, ...>`.
type TemplateApplication struct {
	Target    Expr
	Arguments []Expr
	span      lexer.Span
	parent    Node
}

// Span returns the expression span.
func (t *TemplateApplication) Span() lexer.Span { return t.span }

// Parent returns the enclosing node.
func (t *TemplateApplication) Parent() Node { return t.parent }

// SetParent records the enclosing node.
func (t *TemplateApplication) SetParent(p Node) { t.parent = p }

func (*TemplateApplication) exprNode() {}

// NewTemplateApplication constructs a template application node.
func NewTemplateApplication(target Expr, args []Expr, span lexer.Span) *TemplateApplication {
	return &TemplateApplication{Target: target, Arguments: args, span: span}
}

// ArrayExpression represents the `Element[]` postfix form.
type ArrayExpression struct {
	Element Expr
	span    lexer.Span
	parent  Node
}

// Span returns the expression span.
func (a *ArrayExpression) Span() lexer.Span { return a.span }

// Parent returns the enclosing node.
func (a *ArrayExpression) Parent() Node { return a.parent }

// SetParent records the enclosing node.
func (a *ArrayExpression) SetParent(p Node) { a.parent = p }

func (*ArrayExpression) exprNode() {}

// NewArrayExpression constructs an array expression node.
func NewArrayExpression(element Expr, span lexer.Span) *ArrayExpression {
	return &ArrayExpression{Element: element, span: span}
}

// TupleExpression represents `[A, B, ...]`: heterogeneous, order-significant,
// fixed length.
type TupleExpression struct {
	Values []Expr
	span   lexer.Span
	parent Node
}

// Span returns the expression span.
func (t *TupleExpression) Span() lexer.Span { return t.span }

// Parent returns the enclosing node.
func (t *TupleExpression) Parent() Node { return t.parent }

// SetParent records the enclosing node.
func (t *TupleExpression) SetParent(p Node) { t.parent = p }

func (*TupleExpression) exprNode() {}

// NewTupleExpression constructs a tuple expression node.
func NewTupleExpression(values []Expr, span lexer.Span) *TupleExpression {
	return &TupleExpression{Values: values, span: span}
}

// UnionExpression represents `A | B | ...`. The parser collects all
// pipe-joined operands into one options list.
type UnionExpression struct {
	Options []Expr
	span    lexer.Span
	parent  Node
}

// Span returns the expression span.
func (u *UnionExpression) Span() lexer.Span { return u.span }

// Parent returns the enclosing node.
func (u *UnionExpression) Parent() Node { return u.parent }

// SetParent records the enclosing node.
func (u *UnionExpression) SetParent(p Node) { u.parent = p }

func (*UnionExpression) exprNode() {}

// NewUnionExpression constructs a union expression node.
func NewUnionExpression(options []Expr, span lexer.Span) *UnionExpression {
	return &UnionExpression{Options: options, span: span}
}

// IntersectionExpression represents `A & B & ...`.
type IntersectionExpression struct {
	Operands []Expr
	span     lexer.Span
	parent   Node
}

// Span returns the expression span.
func (i *IntersectionExpression) Span() lexer.Span { return i.span }

// Parent returns the enclosing node.
func (i *IntersectionExpression) Parent() Node { return i.parent }

// SetParent records the enclosing node.
func (i *IntersectionExpression) SetParent(p Node) { i.parent = p }

func (*IntersectionExpression) exprNode() {}

// NewIntersectionExpression constructs an intersection expression node.
func NewIntersectionExpression(operands []Expr, span lexer.Span) *IntersectionExpression {
	return &IntersectionExpression{Operands: operands, span: span}
}

// StringLiteral represents a string literal expression.
type StringLiteral struct {
	Value  string
	span   lexer.Span
	parent Node
}

// Span returns the literal span.
func (s *StringLiteral) Span() lexer.Span { return s.span }

// Parent returns the enclosing node.
func (s *StringLiteral) Parent() Node { return s.parent }

// SetParent records the enclosing node.
func (s *StringLiteral) SetParent(p Node) { s.parent = p }

func (*StringLiteral) exprNode() {}

// NewStringLiteral constructs a string literal node.
func NewStringLiteral(value string, span lexer.Span) *StringLiteral {
	return &StringLiteral{Value: value, span: span}
}

// NumericLiteral represents a numeric literal expression. Raw preserves the
// source text for diagnostics and emitters.
type NumericLiteral struct {
	Value  float64
	Raw    string
	span   lexer.Span
	parent Node
}

// Span returns the literal span.
func (n *NumericLiteral) Span() lexer.Span { return n.span }

// Parent returns the enclosing node.
func (n *NumericLiteral) Parent() Node { return n.parent }

// SetParent records the enclosing node.
func (n *NumericLiteral) SetParent(p Node) { n.parent = p }

func (*NumericLiteral) exprNode() {}

// NewNumericLiteral constructs a numeric literal node.
func NewNumericLiteral(value float64, raw string, span lexer.Span) *NumericLiteral {
	return &NumericLiteral{Value: value, Raw: raw, span: span}
}

// BooleanLiteral represents `true` or `false`.
type BooleanLiteral struct {
	Value  bool
	span   lexer.Span
	parent Node
}

// Span returns the literal span.
func (b *BooleanLiteral) Span() lexer.Span { return b.span }

// Parent returns the enclosing node.
func (b *BooleanLiteral) Parent() Node { return b.parent }

// SetParent records the enclosing node.
func (b *BooleanLiteral) SetParent(p Node) { b.parent = p }

func (*BooleanLiteral) exprNode() {}

// NewBooleanLiteral constructs a boolean literal node.
func NewBooleanLiteral(value bool, span lexer.Span) *BooleanLiteral {
	return &BooleanLiteral{Value: value, span: span}
}
