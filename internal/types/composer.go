package types

import (
	"github.com/wanlwanl/fork-typespec/internal/ast"
	"github.com/wanlwanl/fork-typespec/internal/diag"
)

// composeModel builds a fresh model from a body and optional bases. Used
// for anonymous model expressions; named declarations compose through
// their memoized shell instead.
func (r *Resolver) composeModel(name string, node ast.Node, extends []ast.Expr, items []ast.ModelPropertyItem, scope *ast.SymbolTable) Type {
	shell := &Model{Name: name, Node: node}
	return r.composeInto(shell, extends, items, scope)
}

// composeInto fills a model shell from its syntax: resolves bases, builds
// the own property set (declared properties plus spread copies), then
// merges bases into the effective set.
//
// Collision rules: a declared property always wins over a spread copy,
// regardless of order. A later spread overwrites an earlier spread's copy.
// Two declared properties with the same name are a duplicate.
func (r *Resolver) composeInto(m *Model, extends []ast.Expr, items []ast.ModelPropertyItem, scope *ast.SymbolTable) Type {
	for _, ex := range extends {
		t := r.ResolveExpr(ex, scope)
		if IsErr(t) {
			continue
		}
		base, ok := t.(*Model)
		if !ok {
			r.fail(diag.CodeResolveUnresolvedReference, ex.Span(),
				"extends target %s is not a model", t.String())
			continue
		}
		m.BaseModels = append(m.BaseModels, base)
	}

	// Declared names are collected up front so a spread never introduces a
	// property that a declared property later in the body would shadow.
	declared := make(map[string]bool)
	for _, item := range items {
		if prop, ok := item.(*ast.ModelProperty); ok {
			declared[prop.Name.Name] = true
		}
	}

	ownIndex := make(map[string]int)
	for _, item := range items {
		switch it := item.(type) {
		case *ast.ModelProperty:
			var value Type
			if it.Optional {
				value = r.resolveLazy(it.Value, scope)
			} else {
				value = r.ResolveExpr(it.Value, scope)
			}
			prop := &ModelProperty{Name: it.Name.Name, Type: value, Optional: it.Optional, Node: it}
			if i, exists := ownIndex[prop.Name]; exists {
				// Spreads skip declared names, so an existing entry here
				// is always a second declared property.
				r.failRelated(diag.CodeBindDuplicateDeclaration,
					it.Name.Span(), m.OwnProperties[i].Node.Span(),
					"duplicate property %q", prop.Name)
				continue
			}
			ownIndex[prop.Name] = len(m.OwnProperties)
			m.OwnProperties = append(m.OwnProperties, prop)

		case *ast.ModelSpreadProperty:
			t := r.ResolveExpr(it.Target, scope)
			if IsErr(t) {
				continue
			}
			source, ok := t.(*Model)
			if !ok {
				r.fail(diag.CodeResolveUnresolvedReference, it.Target.Span(),
					"spread target %s is not a model", t.String())
				continue
			}
			for _, sp := range source.Properties {
				if declared[sp.Name] {
					continue
				}
				if i, exists := ownIndex[sp.Name]; exists {
					m.OwnProperties[i] = sp
					continue
				}
				ownIndex[sp.Name] = len(m.OwnProperties)
				m.OwnProperties = append(m.OwnProperties, sp)
			}
		}
	}

	if !r.mergeBases(m) {
		return ErrType
	}
	return m
}

// mergeBases computes the effective property set: base models folded
// left to right, then own properties overlaid. An own property shadows any
// base collision; a collision between two distinct base properties that no
// own property shadows is ambiguous. The same underlying property arriving
// through two bases (diamond inheritance) is not a collision.
func (r *Resolver) mergeBases(m *Model) bool {
	own := make(map[string]bool, len(m.OwnProperties))
	for _, p := range m.OwnProperties {
		own[p.Name] = true
	}

	var effective []*ModelProperty
	index := make(map[string]int)
	reported := make(map[string]bool)
	ok := true
	for _, base := range m.BaseModels {
		for _, p := range base.Properties {
			if own[p.Name] {
				continue
			}
			if i, exists := index[p.Name]; exists {
				if effective[i] == p {
					continue
				}
				if !reported[p.Name] {
					r.failRelated(diag.CodeResolveAmbiguousProperty,
						m.Node.Span(), effective[i].Node.Span(),
						"property %q is inherited from more than one base model", p.Name)
					reported[p.Name] = true
					ok = false
				}
				effective[i] = p
				continue
			}
			index[p.Name] = len(effective)
			effective = append(effective, p)
		}
	}
	for _, p := range m.OwnProperties {
		if i, exists := index[p.Name]; exists {
			effective[i] = p
			continue
		}
		index[p.Name] = len(effective)
		effective = append(effective, p)
	}
	m.Properties = effective
	return ok
}
