package types

import (
	"strings"

	"github.com/wanlwanl/fork-typespec/internal/ast"
	"github.com/wanlwanl/fork-typespec/internal/diag"
)

// DecoratorBinding ties a decorator name to the import statement that
// brought it into scope. Bindings are interned per name.
type DecoratorBinding struct {
	Name string
	Node *ast.ImportStatement
}

// DecoratorInvocation records one @decorator application: the declaration
// it annotates, the binding it resolved to, and its resolved arguments.
// Extern decorator bodies live outside the compiler; invocations are
// handed to consumers for execution.
type DecoratorInvocation struct {
	Declaration ast.Node
	Binding     *DecoratorBinding
	Arguments   []Type
}

// Invocations returns all recorded decorator applications. Within one
// declaration they appear in source order; across declarations, in the
// order declarations resolved.
func (r *Resolver) Invocations() []DecoratorInvocation {
	return r.invocations
}

// registerModelDecorators records the decorators on a model statement and
// on its properties, once, after the model resolved.
func (r *Resolver) registerModelDecorators(m *ast.ModelStatement, scope *ast.SymbolTable) {
	if r.decoratorsDone[m] {
		return
	}
	r.decoratorsDone[m] = true
	r.registerDecorators(m, m.Decorators, scope)
	for _, item := range m.Properties {
		if prop, ok := item.(*ast.ModelProperty); ok {
			r.registerDecorators(prop, prop.Decorators, scope)
		}
	}
}

// registerDecorators resolves and records each decorator application on a
// declaration. An unresolved decorator is reported but never fails the
// declaration that carries it.
func (r *Resolver) registerDecorators(decl ast.Node, decs []*ast.DecoratorExpression, scope *ast.SymbolTable) {
	if len(decs) == 0 {
		return
	}
	savedFailed := r.failed
	for _, dec := range decs {
		binding := r.resolveDecoratorBinding(dec.Target, scope)
		if binding == nil {
			continue
		}
		args := make([]Type, len(dec.Arguments))
		for i, arg := range dec.Arguments {
			args[i] = r.ResolveExpr(arg, scope)
		}
		r.invocations = append(r.invocations, DecoratorInvocation{
			Declaration: decl,
			Binding:     binding,
			Arguments:   args,
		})
	}
	r.failed = savedFailed
}

// resolveDecoratorBinding maps a decorator target path to the import that
// declared its root name. Reports UnresolvedDecorator and returns nil when
// the root is unknown or not an imported name.
func (r *Resolver) resolveDecoratorBinding(target ast.Expr, scope *ast.SymbolTable) *DecoratorBinding {
	root, path, ok := decoratorPath(target)
	if !ok {
		r.report(diag.CodeResolveUnresolvedDecorator, target.Span(),
			"decorator name must be a plain or dotted identifier")
		return nil
	}
	node, found := scope.Resolve(root.Name)
	if !found {
		r.report(diag.CodeResolveUnresolvedDecorator, root.Span(),
			"unknown decorator @%s", path)
		return nil
	}
	imp, isImport := node.(*ast.ImportStatement)
	if !isImport {
		r.report(diag.CodeResolveUnresolvedDecorator, root.Span(),
			"@%s does not refer to an imported decorator", path)
		return nil
	}
	if binding, cached := r.decoratorBindings[path]; cached {
		return binding
	}
	binding := &DecoratorBinding{Name: path, Node: imp}
	r.decoratorBindings[path] = binding
	return binding
}

// decoratorPath flattens an identifier or dotted member chain into its
// root identifier and full dotted name.
func decoratorPath(target ast.Expr) (*ast.Identifier, string, bool) {
	switch t := target.(type) {
	case *ast.Identifier:
		return t, t.Name, true
	case *ast.MemberExpression:
		root, prefix, ok := decoratorPath(t.Base)
		if !ok {
			return nil, "", false
		}
		var sb strings.Builder
		sb.WriteString(prefix)
		sb.WriteString(".")
		sb.WriteString(t.Member.Name)
		return root, sb.String(), true
	default:
		return nil, "", false
	}
}
