package types

import (
	"github.com/wanlwanl/fork-typespec/internal/ast"
)

// resolveNamespace resolves a namespace statement to its Namespace value.
// Statements sharing a name share a symbol table, so they all resolve to
// the identical Namespace with the union of their members.
//
// A namespace does not collapse to the error sentinel when one member
// fails; the failed member keeps the sentinel in its signature and the
// rest of the namespace stays usable.
func (r *Resolver) resolveNamespace(ns *ast.NamespaceStatement) Type {
	if t, ok := r.memo[ns]; ok {
		return t
	}
	if shared, ok := r.namespaces[ns.Locals]; ok {
		r.memo[ns] = shared
		// A later merged statement may carry the call signature.
		if shared.Parameters == nil && len(ns.Parameters) > 0 {
			shared.Parameters = r.composeParameters(ns, ns.Parameters, ns.Locals)
		}
		r.registerNamespaceDecorators(ns)
		r.resolveNamespaceMembers(shared, ns)
		return shared
	}

	shell := &Namespace{
		Name:       ns.Name.Name,
		Node:       ns,
		Properties: make(map[string]*NamespaceProperty),
	}
	r.namespaces[ns.Locals] = shell
	r.memo[ns] = shell

	// Member shells for every declaration in the shared scope go in
	// first so member signatures can cross-reference, including members
	// of a merged statement that has not resolved yet.
	for _, name := range ns.Locals.Names() {
		node, _ := ns.Locals.ResolveLocal(name)
		decl, ok := node.(*ast.NamespaceProperty)
		if !ok {
			continue
		}
		member := &NamespaceProperty{Name: name, Node: decl}
		shell.Properties[name] = member
		r.memo[decl] = member
	}

	if len(ns.Parameters) > 0 {
		shell.Parameters = r.composeParameters(ns, ns.Parameters, ns.Locals)
	}

	// The statement's own decorators precede its members in source.
	r.registerNamespaceDecorators(ns)
	r.resolveNamespaceMembers(shell, ns)
	return shell
}

// resolveNamespaceMembers fills the signatures of the members this
// statement declares, in declaration order, so their decorator
// invocations record in source order. Merged statements each fill their
// own members when they resolve.
func (r *Resolver) resolveNamespaceMembers(shell *Namespace, ns *ast.NamespaceStatement) {
	for _, decl := range ns.Properties {
		member, ok := shell.Properties[decl.Name.Name]
		if !ok || member.Node != decl {
			// Duplicate against a merged statement, diagnosed at bind time.
			continue
		}
		r.resolveNamespaceMember(member, ns.Locals)
	}
}

// resolveNamespaceMember fills one member signature. Each member is a
// declaration of its own: a failure poisons only this member's signature.
func (r *Resolver) resolveNamespaceMember(member *NamespaceProperty, scope *ast.SymbolTable) {
	decl := member.Node
	savedFailed := r.failed
	r.failed = false

	member.Parameters = r.composeParameters(decl, decl.Parameters, scope)
	if decl.ReturnType != nil {
		member.ReturnType = r.ResolveExpr(decl.ReturnType, scope)
	} else {
		member.ReturnType = ErrType
	}
	if r.failed {
		member.ReturnType = ErrType
	} else {
		r.registerDecorators(decl, decl.Decorators, scope)
		for _, param := range decl.Parameters {
			r.registerDecorators(param, param.Decorators, scope)
		}
	}
	r.failed = savedFailed
}

// composeParameters builds the anonymous parameters model for a namespace
// call signature or a member signature.
func (r *Resolver) composeParameters(node ast.Node, params []*ast.ModelProperty, scope *ast.SymbolTable) *Model {
	items := make([]ast.ModelPropertyItem, len(params))
	for i, p := range params {
		items[i] = p
	}
	t := r.composeModel("", node, nil, items, scope)
	if m, ok := t.(*Model); ok {
		return m
	}
	return &Model{Node: node}
}

func (r *Resolver) registerNamespaceDecorators(ns *ast.NamespaceStatement) {
	if r.decoratorsDone[ns] {
		return
	}
	r.decoratorsDone[ns] = true
	r.registerDecorators(ns, ns.Decorators, ns.Locals)
}
