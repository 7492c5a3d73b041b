package types

import (
	"github.com/wanlwanl/fork-typespec/internal/ast"
	"github.com/wanlwanl/fork-typespec/internal/diag"
	"github.com/wanlwanl/fork-typespec/internal/lexer"
)

// templateInstance is one cache entry under a template declaration. The
// shell is cached before the body is composed so recursive instantiations
// with the same arguments observe the identical value.
type templateInstance struct {
	args       []Type
	model      *Model
	result     Type
	inProgress bool
}

func (r *Resolver) resolveTemplateApplication(e *ast.TemplateApplication, scope *ast.SymbolTable) Type {
	ident, ok := e.Target.(*ast.Identifier)
	if !ok {
		r.fail(diag.CodeResolveUnresolvedReference, e.Target.Span(),
			"template target must be a named declaration")
		return ErrType
	}
	node, ok := scope.Resolve(ident.Name)
	if !ok {
		r.fail(diag.CodeResolveUnresolvedReference, ident.Span(),
			"unknown identifier %q", ident.Name)
		return ErrType
	}
	tmpl, ok := node.(*ast.ModelStatement)
	if !ok || len(tmpl.TemplateParameters) == 0 {
		r.fail(diag.CodeResolveTemplateArity, ident.Span(),
			"%q is not a template", ident.Name)
		return ErrType
	}
	args := make([]Type, len(e.Arguments))
	for i, arg := range e.Arguments {
		args[i] = r.ResolveExpr(arg, scope)
		if IsErr(args[i]) {
			return ErrType
		}
	}
	return r.instantiateAt(tmpl, args, e.Span())
}

// Instantiate applies a templated model declaration to already resolved
// arguments. Instantiations are cached per declaration: applying the same
// template to the same argument list returns the identical Type value.
func (r *Resolver) Instantiate(tmpl *ast.ModelStatement, args []Type) Type {
	return r.instantiateAt(tmpl, args, tmpl.Name.Span())
}

func (r *Resolver) instantiateAt(tmpl *ast.ModelStatement, args []Type, span lexer.Span) Type {
	params := tmpl.TemplateParameters
	if len(args) != len(params) {
		r.fail(diag.CodeResolveTemplateArity, span,
			"model %q expects %d template argument(s), got %d",
			tmpl.Name.Name, len(params), len(args))
		return ErrType
	}

	for _, inst := range r.templates[tmpl] {
		if !sameArgs(inst.args, args) {
			continue
		}
		if inst.inProgress {
			if r.lazyDepth > 0 {
				return inst.model
			}
			r.fail(diag.CodeResolveCircularReference, span,
				"instantiation of %q circularly references itself", tmpl.Name.Name)
			return ErrType
		}
		return inst.result
	}

	shell := &Model{
		Name:              tmpl.Name.Name,
		Node:              tmpl,
		TemplateNode:      tmpl,
		TemplateArguments: args,
	}
	inst := &templateInstance{args: args, model: shell, inProgress: true}
	r.templates[tmpl] = append(r.templates[tmpl], inst)

	// Bind parameters, saving any shadowed bindings from an outer
	// instantiation of the same template.
	saved := make([]Type, len(params))
	had := make([]bool, len(params))
	for i, p := range params {
		saved[i], had[i] = r.bindings[p]
		r.bindings[p] = args[i]
	}

	savedFailed := r.failed
	r.failed = false
	result := r.fillModel(shell, tmpl, r.modelScope(tmpl))
	if r.failed {
		result = ErrType
	}
	r.failed = savedFailed

	for i, p := range params {
		if had[i] {
			r.bindings[p] = saved[i]
		} else {
			delete(r.bindings, p)
		}
	}

	inst.inProgress = false
	inst.result = result
	if !IsErr(result) {
		r.registerModelDecorators(tmpl, r.modelScope(tmpl))
	}
	return result
}

// sameArgs compares argument lists by type identity. Literal arguments
// additionally compare by value, since literal types are not interned.
func sameArgs(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !sameType(a[i], b[i]) {
			return false
		}
	}
	return true
}

func sameType(a, b Type) bool {
	if a == b {
		return true
	}
	switch x := a.(type) {
	case *StringLiteral:
		y, ok := b.(*StringLiteral)
		return ok && x.Value == y.Value
	case *NumericLiteral:
		y, ok := b.(*NumericLiteral)
		return ok && x.Value == y.Value
	case *BooleanLiteral:
		y, ok := b.(*BooleanLiteral)
		return ok && x.Value == y.Value
	}
	return false
}
