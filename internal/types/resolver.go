package types

import (
	"fmt"

	"github.com/wanlwanl/fork-typespec/internal/ast"
	"github.com/wanlwanl/fork-typespec/internal/diag"
	"github.com/wanlwanl/fork-typespec/internal/lexer"
)

// Resolver walks expression nodes and produces resolved Type values.
// Declarations are memoized: every reference to the same declaration yields
// the identical Type value. Resolution is re-entrant through forward
// references; an in-progress marker on each declaration catches cycles.
type Resolver struct {
	Diagnostics []diag.Diagnostic

	global *ast.SymbolTable

	memo       map[ast.Node]Type
	inProgress map[ast.Node]bool

	// lazyDepth is positive while resolving a position that terminates
	// recursion (array element, union option, optional property value).
	// A self-reference seen at lazy depth reuses the partially built
	// declaration instead of reporting a cycle.
	lazyDepth int

	// failed marks that a diagnostic originated in the declaration frame
	// currently being resolved. It is saved and restored around nested
	// declaration resolution so one bad declaration does not cascade.
	failed bool

	// bindings maps template parameters to their arguments during
	// instantiation.
	bindings     map[*ast.TemplateParameterDeclaration]Type
	placeholders map[*ast.TemplateParameterDeclaration]*TemplateParameter

	templates  map[*ast.ModelStatement][]*templateInstance
	namespaces map[*ast.SymbolTable]*Namespace

	invocations       []DecoratorInvocation
	decoratorsDone    map[ast.Node]bool
	decoratorBindings map[string]*DecoratorBinding
}

// NewResolver creates a resolver over the given global scope, as produced
// by the binder.
func NewResolver(global *ast.SymbolTable) *Resolver {
	return &Resolver{
		global:            global,
		memo:              make(map[ast.Node]Type),
		inProgress:        make(map[ast.Node]bool),
		bindings:          make(map[*ast.TemplateParameterDeclaration]Type),
		placeholders:      make(map[*ast.TemplateParameterDeclaration]*TemplateParameter),
		templates:         make(map[*ast.ModelStatement][]*templateInstance),
		namespaces:        make(map[*ast.SymbolTable]*Namespace),
		decoratorsDone:    make(map[ast.Node]bool),
		decoratorBindings: make(map[string]*DecoratorBinding),
	}
}

// ResolveStatement resolves a top-level declaration statement. Import
// statements carry no type and return nil. Templated model declarations
// resolve per instantiation site and also return nil here.
func (r *Resolver) ResolveStatement(stmt ast.Stmt) Type {
	switch s := stmt.(type) {
	case *ast.ModelStatement:
		if len(s.TemplateParameters) > 0 {
			return nil
		}
		return r.resolveModelStatement(s)
	case *ast.NamespaceStatement:
		return r.resolveNamespace(s)
	case *ast.ImportStatement:
		return nil
	default:
		return nil
	}
}

// DeclarationType returns the memoized resolved type for a declaration
// node, if it has been resolved.
func (r *Resolver) DeclarationType(node ast.Node) (Type, bool) {
	t, ok := r.memo[node]
	return t, ok
}

// ResolveExpr resolves a type expression in the given scope.
func (r *Resolver) ResolveExpr(expr ast.Expr, scope *ast.SymbolTable) Type {
	switch e := expr.(type) {
	case *ast.Identifier:
		return r.resolveIdentifier(e, scope)
	case *ast.MemberExpression:
		return r.resolveMember(e, scope)
	case *ast.TemplateApplication:
		return r.resolveTemplateApplication(e, scope)
	case *ast.ArrayExpression:
		elem := r.resolveLazy(e.Element, scope)
		return &Array{Element: elem, Node: e}
	case *ast.TupleExpression:
		values := make([]Type, len(e.Values))
		for i, v := range e.Values {
			values[i] = r.ResolveExpr(v, scope)
		}
		return &Tuple{Values: values, Node: e}
	case *ast.UnionExpression:
		return r.resolveUnion(e, scope)
	case *ast.IntersectionExpression:
		return r.resolveIntersection(e, scope)
	case *ast.ModelExpression:
		return r.composeModel("", e, nil, e.Properties, scope)
	case *ast.StringLiteral:
		return &StringLiteral{Value: e.Value, Node: e}
	case *ast.NumericLiteral:
		return &NumericLiteral{Value: e.Value, Node: e}
	case *ast.BooleanLiteral:
		return &BooleanLiteral{Value: e.Value, Node: e}
	default:
		r.fail(diag.CodeResolveUnresolvedReference, expr.Span(),
			"cannot resolve expression")
		return ErrType
	}
}

// resolveLazy resolves an expression at a recursion-terminating position.
func (r *Resolver) resolveLazy(expr ast.Expr, scope *ast.SymbolTable) Type {
	r.lazyDepth++
	t := r.ResolveExpr(expr, scope)
	r.lazyDepth--
	return t
}

func (r *Resolver) resolveIdentifier(ident *ast.Identifier, scope *ast.SymbolTable) Type {
	node, ok := scope.Resolve(ident.Name)
	if !ok {
		if t, isIntrinsic := Intrinsic(ident.Name); isIntrinsic {
			return t
		}
		r.fail(diag.CodeResolveUnresolvedReference, ident.Span(),
			"unknown identifier %q", ident.Name)
		return ErrType
	}
	switch decl := node.(type) {
	case *ast.ModelStatement:
		if len(decl.TemplateParameters) > 0 {
			r.fail(diag.CodeResolveTemplateArity, ident.Span(),
				"model %q expects %d template argument(s) but none were supplied",
				ident.Name, len(decl.TemplateParameters))
			return ErrType
		}
		return r.resolveModelStatement(decl)
	case *ast.NamespaceStatement:
		return r.resolveNamespace(decl)
	case *ast.TemplateParameterDeclaration:
		if bound, ok := r.bindings[decl]; ok {
			return bound
		}
		return r.placeholder(decl)
	case *ast.ImportStatement:
		r.fail(diag.CodeResolveUnresolvedReference, ident.Span(),
			"imported name %q does not refer to a type", ident.Name)
		return ErrType
	default:
		r.fail(diag.CodeResolveUnresolvedReference, ident.Span(),
			"%q does not refer to a type", ident.Name)
		return ErrType
	}
}

// placeholder interns the TemplateParameter value for an unbound parameter
// so repeated references inside one template body compare identical.
func (r *Resolver) placeholder(decl *ast.TemplateParameterDeclaration) *TemplateParameter {
	if p, ok := r.placeholders[decl]; ok {
		return p
	}
	p := &TemplateParameter{Node: decl}
	r.placeholders[decl] = p
	return p
}

func (r *Resolver) resolveMember(expr *ast.MemberExpression, scope *ast.SymbolTable) Type {
	base := r.ResolveExpr(expr.Base, scope)
	if IsErr(base) {
		return ErrType
	}
	ns, ok := base.(*Namespace)
	if !ok {
		r.fail(diag.CodeResolveUnresolvedReference, expr.Member.Span(),
			"%s has no member %q", base.String(), expr.Member.Name)
		return ErrType
	}
	member, ok := ns.Member(expr.Member.Name)
	if !ok {
		r.fail(diag.CodeResolveUnresolvedReference, expr.Member.Span(),
			"namespace %q has no member %q", ns.Name, expr.Member.Name)
		return ErrType
	}
	return member
}

func (r *Resolver) resolveUnion(expr *ast.UnionExpression, scope *ast.SymbolTable) Type {
	options := make([]Type, 0, len(expr.Options))
	for _, opt := range expr.Options {
		t := r.resolveLazy(opt, scope)
		// Nested unions splice their options into the parent.
		if inner, ok := t.(*Union); ok {
			options = append(options, inner.Options...)
			continue
		}
		options = append(options, t)
	}
	return &Union{Options: options, Node: expr}
}

func (r *Resolver) resolveIntersection(expr *ast.IntersectionExpression, scope *ast.SymbolTable) Type {
	operands := make([]*Model, 0, len(expr.Operands))
	for _, op := range expr.Operands {
		t := r.ResolveExpr(op, scope)
		if IsErr(t) {
			return ErrType
		}
		m, ok := t.(*Model)
		if !ok {
			r.fail(diag.CodeResolveUnresolvedReference, op.Span(),
				"intersection operand %s is not a model", t.String())
			return ErrType
		}
		operands = append(operands, m)
	}
	result := &Model{Node: expr, BaseModels: operands}
	if !r.mergeBases(result) {
		return ErrType
	}
	return result
}

// resolveModelStatement resolves a non-templated model declaration,
// memoizing the result. The model shell is memoized before its body is
// composed so that lazy self-references observe the identical value.
func (r *Resolver) resolveModelStatement(m *ast.ModelStatement) Type {
	if t, ok := r.memo[m]; ok {
		if !r.inProgress[m] {
			return t
		}
		if r.lazyDepth > 0 {
			return t
		}
		r.fail(diag.CodeResolveCircularReference, m.Name.Span(),
			"model %q circularly references itself", m.Name.Name)
		return ErrType
	}

	shell := &Model{Name: m.Name.Name, Node: m}
	r.memo[m] = shell
	r.inProgress[m] = true

	savedFailed := r.failed
	r.failed = false
	result := r.fillModel(shell, m, r.modelScope(m))
	delete(r.inProgress, m)
	if r.failed {
		result = ErrType
	}
	r.memo[m] = result
	r.failed = savedFailed

	if !IsErr(result) {
		r.registerModelDecorators(m, r.modelScope(m))
	}
	return result
}

// modelScope returns the scope a model's body resolves in: its own locals
// when templated, otherwise the global scope.
func (r *Resolver) modelScope(m *ast.ModelStatement) *ast.SymbolTable {
	if m.Locals != nil {
		return m.Locals
	}
	return r.global
}

// fillModel composes the body or alias assignment of a model statement
// into the shell. Returns the shell on success.
func (r *Resolver) fillModel(shell *Model, m *ast.ModelStatement, scope *ast.SymbolTable) Type {
	if m.Assignment != nil {
		assigned := r.ResolveExpr(m.Assignment, scope)
		shell.Assignment = assigned
		// An alias of a model adopts its effective properties. It declares
		// none of its own, so OwnProperties stays empty.
		if am, ok := assigned.(*Model); ok {
			shell.Properties = append(shell.Properties, am.Properties...)
		}
		return shell
	}
	return r.composeInto(shell, m.Extends, m.Properties, scope)
}

// report appends a diagnostic without failing the current declaration
// frame. Decorator problems use it: they never abort the declaration.
func (r *Resolver) report(code diag.Code, span lexer.Span, format string, args ...any) {
	r.Diagnostics = append(r.Diagnostics, diag.Diagnostic{
		Stage:    diag.StageResolve,
		Severity: diag.SeverityError,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Span:     toDiagSpan(span),
	})
}

func (r *Resolver) fail(code diag.Code, span lexer.Span, format string, args ...any) {
	r.failed = true
	r.report(code, span, format, args...)
}

func (r *Resolver) failRelated(code diag.Code, span lexer.Span, related lexer.Span, format string, args ...any) {
	r.failed = true
	d := diag.Diagnostic{
		Stage:    diag.StageResolve,
		Severity: diag.SeverityError,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Span:     toDiagSpan(span),
	}
	r.Diagnostics = append(r.Diagnostics, d.WithRelated(toDiagSpan(related)))
}

func toDiagSpan(s lexer.Span) diag.Span {
	return diag.Span{
		Filename: s.Filename,
		Line:     s.Line,
		Column:   s.Column,
		Start:    s.Start,
		End:      s.End,
	}
}
