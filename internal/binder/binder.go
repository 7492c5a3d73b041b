// Package binder populates symbol tables for every lexical scope of a
// parsed script: the global scope, each namespace body, and each templated
// model's parameter scope. It declares names only; no types are resolved
// here.
package binder

import (
	"fmt"

	"github.com/wanlwanl/fork-typespec/internal/ast"
	"github.com/wanlwanl/fork-typespec/internal/diag"
	"github.com/wanlwanl/fork-typespec/internal/lexer"
)

// Binder walks declaration-bearing nodes and declares their names into
// scopes. Binding failures accumulate as diagnostics so independent
// declarations keep binding.
type Binder struct {
	Diagnostics []diag.Diagnostic
}

// New creates a binder.
func New() *Binder {
	return &Binder{}
}

// Bind declares every name reachable from the script and returns the global
// scope. As a side effect it wires parent links and fills in the Locals
// slots on namespace statements and templated model statements.
func (b *Binder) Bind(script *ast.ADLScript) *ast.SymbolTable {
	ast.SetParents(script)

	global := ast.NewSymbolTable(nil)

	for _, stmt := range script.Statements {
		switch s := stmt.(type) {
		case *ast.ImportStatement:
			b.bindImport(s, global)
		case *ast.ModelStatement:
			b.bindModel(s, global)
		case *ast.NamespaceStatement:
			b.bindNamespace(s, global)
		}
	}

	return global
}

func (b *Binder) bindImport(imp *ast.ImportStatement, scope *ast.SymbolTable) {
	for _, name := range imp.Names {
		if prev, ok := scope.Declare(name.Name, imp); !ok {
			b.reportDuplicate(name.Name, name.Span(), prev)
		}
	}
}

func (b *Binder) bindModel(model *ast.ModelStatement, scope *ast.SymbolTable) {
	if prev, ok := scope.Declare(model.Name.Name, model); !ok {
		b.reportDuplicate(model.Name.Name, model.Name.Span(), prev)
		return
	}

	if len(model.TemplateParameters) == 0 {
		return
	}

	// Template parameters live in their own scope chained to the enclosing
	// one; the statement gains the table as its Locals.
	model.Locals = ast.NewSymbolTable(scope)
	for _, param := range model.TemplateParameters {
		if prev, ok := model.Locals.Declare(param.Name.Name, param); !ok {
			b.reportDuplicate(param.Name.Name, param.Name.Span(), prev)
		}
	}
}

func (b *Binder) bindNamespace(ns *ast.NamespaceStatement, scope *ast.SymbolTable) {
	if existing, found := scope.ResolveLocal(ns.Name.Name); found {
		first, isNamespace := existing.(*ast.NamespaceStatement)
		if !isNamespace {
			b.reportDuplicate(ns.Name.Name, ns.Name.Span(), existing)
			return
		}
		// Namespace statements with equal names merge into one logical
		// scope: share the first statement's Locals so the property sets
		// are unioned and collisions across statements are caught.
		ns.Locals = first.Locals
	} else {
		scope.Declare(ns.Name.Name, ns)
		ns.Locals = ast.NewSymbolTable(scope)
	}

	for _, prop := range ns.Properties {
		if prev, ok := ns.Locals.Declare(prop.Name.Name, prop); !ok {
			b.reportDuplicate(prop.Name.Name, prop.Name.Span(), prev)
		}
	}
}

func (b *Binder) reportDuplicate(name string, span lexer.Span, prev ast.Node) {
	d := diag.Diagnostic{
		Stage:    diag.StageBind,
		Severity: diag.SeverityError,
		Code:     diag.CodeBindDuplicateDeclaration,
		Message:  fmt.Sprintf("duplicate declaration of %q", name),
		Span:     toDiagSpan(span),
	}
	if prev != nil {
		d = d.WithRelated(toDiagSpan(prev.Span()))
	}
	b.Diagnostics = append(b.Diagnostics, d)
}

func toDiagSpan(span lexer.Span) diag.Span {
	return diag.Span{
		Filename: span.Filename,
		Line:     span.Line,
		Column:   span.Column,
		Start:    span.Start,
		End:      span.End,
	}
}
