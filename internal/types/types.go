// Package types turns expression nodes into resolved Type values: structural
// model composition, generic template instantiation, namespace member
// resolution, and literal/container construction. The resolved graph is the
// compiler's sole output; consumers never see raw syntax.
package types

import (
	"fmt"
	"strings"

	"github.com/wanlwanl/fork-typespec/internal/ast"
)

// Type represents a resolved type in the ADL type system. Every variant
// carries a back-reference to its defining syntax node for diagnostics.
type Type interface {
	String() string
	DeclNode() ast.Node
	// IsType is a marker method that closes the union.
	IsType()
}

// Model represents a structural record type with named properties and
// optional inheritance. Immutable once fully composed.
type Model struct {
	Name string
	Node ast.Node

	// OwnProperties are the properties declared directly on this model
	// (including spread copies), keys unique, insertion order preserved.
	// An alias declares none; it exposes the assigned model's properties
	// through Properties only.
	OwnProperties []*ModelProperty

	// Properties is the effective set: OwnProperties merged over all base
	// models' effective properties. Own properties always win on collision.
	Properties []*ModelProperty

	// BaseModels are shared references; a base is never mutated after
	// resolution and may back any number of derived models.
	BaseModels []*Model

	// TemplateNode and TemplateArguments are set iff this model is the
	// product of a template instantiation.
	TemplateNode      *ast.ModelStatement
	TemplateArguments []Type

	// Assignment is set iff this model is an alias declaration
	// (`model X = expr`) and holds the assigned type.
	Assignment Type
}

func (m *Model) String() string {
	if m.Name == "" {
		return "(anonymous model)"
	}
	if len(m.TemplateArguments) > 0 {
		args := make([]string, len(m.TemplateArguments))
		for i, arg := range m.TemplateArguments {
			args[i] = arg.String()
		}
		return m.Name + "<" + strings.Join(args, ", ") + ">"
	}
	return m.Name
}

// DeclNode returns the defining syntax node.
func (m *Model) DeclNode() ast.Node { return m.Node }
func (m *Model) IsType()            {}

// Property looks up an effective property by name.
func (m *Model) Property(name string) (*ModelProperty, bool) {
	for _, prop := range m.Properties {
		if prop.Name == name {
			return prop, true
		}
	}
	return nil, false
}

// OwnProperty looks up a directly declared property by name.
func (m *Model) OwnProperty(name string) (*ModelProperty, bool) {
	for _, prop := range m.OwnProperties {
		if prop.Name == name {
			return prop, true
		}
	}
	return nil, false
}

// ModelProperty represents a single named property; immutable once
// constructed.
type ModelProperty struct {
	Name     string
	Type     Type
	Optional bool
	Node     ast.Node
}

func (p *ModelProperty) String() string {
	opt := ""
	if p.Optional {
		opt = "?"
	}
	return p.Name + opt + ": " + p.Type.String()
}

// DeclNode returns the defining syntax node.
func (p *ModelProperty) DeclNode() ast.Node { return p.Node }
func (p *ModelProperty) IsType()            {}

// TemplateParameter is a placeholder for an unbound template parameter. It
// is only valid inside the body of the template that declares it and never
// escapes into a fully resolved type handed to consumers.
type TemplateParameter struct {
	Node *ast.TemplateParameterDeclaration
}

func (t *TemplateParameter) String() string { return t.Node.Name.Name }

// DeclNode returns the declaring parameter node.
func (t *TemplateParameter) DeclNode() ast.Node { return t.Node }
func (t *TemplateParameter) IsType()            {}

// Namespace represents a named container of callable members. Namespace
// statements sharing a name merge into a single Namespace value.
type Namespace struct {
	Name string
	Node *ast.NamespaceStatement

	// Properties maps member name to its resolved signature.
	Properties map[string]*NamespaceProperty

	// Parameters is the namespace's own call signature, if the namespace
	// itself is parameterized.
	Parameters *Model
}

func (n *Namespace) String() string { return "namespace " + n.Name }

// DeclNode returns the first declaring statement.
func (n *Namespace) DeclNode() ast.Node { return n.Node }
func (n *Namespace) IsType()            {}

// Member looks up a member by name.
func (n *Namespace) Member(name string) (*NamespaceProperty, bool) {
	prop, ok := n.Properties[name]
	return prop, ok
}

// NamespaceProperty represents one callable namespace member: a parameters
// model and a return type.
type NamespaceProperty struct {
	Name       string
	Parameters *Model
	ReturnType Type
	Node       *ast.NamespaceProperty
}

func (p *NamespaceProperty) String() string {
	return p.Name + "(...): " + p.ReturnType.String()
}

// DeclNode returns the defining member node.
func (p *NamespaceProperty) DeclNode() ast.Node { return p.Node }
func (p *NamespaceProperty) IsType()            {}

// StringLiteral wraps an immutable string value.
type StringLiteral struct {
	Value string
	Node  ast.Node
}

func (s *StringLiteral) String() string { return fmt.Sprintf("%q", s.Value) }

// DeclNode returns the defining literal node.
func (s *StringLiteral) DeclNode() ast.Node { return s.Node }
func (s *StringLiteral) IsType()            {}

// NumericLiteral wraps an immutable numeric value.
type NumericLiteral struct {
	Value float64
	Node  ast.Node
}

func (n *NumericLiteral) String() string { return fmt.Sprintf("%v", n.Value) }

// DeclNode returns the defining literal node.
func (n *NumericLiteral) DeclNode() ast.Node { return n.Node }
func (n *NumericLiteral) IsType()            {}

// BooleanLiteral wraps an immutable boolean value.
type BooleanLiteral struct {
	Value bool
	Node  ast.Node
}

func (b *BooleanLiteral) String() string { return fmt.Sprintf("%v", b.Value) }

// DeclNode returns the defining literal node.
func (b *BooleanLiteral) DeclNode() ast.Node { return b.Node }
func (b *BooleanLiteral) IsType()            {}

// Array represents `Element[]`.
type Array struct {
	Element Type
	Node    ast.Node
}

func (a *Array) String() string { return a.Element.String() + "[]" }

// DeclNode returns the defining expression node.
func (a *Array) DeclNode() ast.Node { return a.Node }
func (a *Array) IsType()            {}

// Tuple represents an ordered, fixed-length, heterogeneous value list.
type Tuple struct {
	Values []Type
	Node   ast.Node
}

func (t *Tuple) String() string {
	parts := make([]string, len(t.Values))
	for i, v := range t.Values {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// DeclNode returns the defining expression node.
func (t *Tuple) DeclNode() ast.Node { return t.Node }
func (t *Tuple) IsType()            {}

// Union represents ordered alternatives. Options are always spliced flat:
// the resolved graph never contains a union-of-union.
type Union struct {
	Options []Type
	Node    ast.Node
}

func (u *Union) String() string {
	parts := make([]string, len(u.Options))
	for i, o := range u.Options {
		parts[i] = o.String()
	}
	return strings.Join(parts, " | ")
}

// DeclNode returns the defining expression node.
func (u *Union) DeclNode() ast.Node { return u.Node }
func (u *Union) IsType()            {}

// ErrorType is the sentinel for declarations that failed to resolve.
// References to a failed declaration short-circuit to this value instead of
// cascading duplicate diagnostics.
type ErrorType struct{}

func (*ErrorType) String() string { return "(error)" }

// DeclNode returns nil: the sentinel has no defining node.
func (*ErrorType) DeclNode() ast.Node { return nil }
func (*ErrorType) IsType()            {}

// ErrType is the shared sentinel instance.
var ErrType = &ErrorType{}

// IsErr reports whether t is the error sentinel.
func IsErr(t Type) bool {
	_, ok := t.(*ErrorType)
	return ok
}
