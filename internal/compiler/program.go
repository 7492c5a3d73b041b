// Package compiler drives the pipeline: lex, parse, bind, resolve. The
// result is a Program holding the resolved type graph and every diagnostic
// the stages produced.
package compiler

import (
	"github.com/wanlwanl/fork-typespec/internal/ast"
	"github.com/wanlwanl/fork-typespec/internal/binder"
	"github.com/wanlwanl/fork-typespec/internal/diag"
	"github.com/wanlwanl/fork-typespec/internal/parser"
	"github.com/wanlwanl/fork-typespec/internal/types"
)

// Program is the result of compiling one ADL source file.
type Program struct {
	Script      *ast.ADLScript
	GlobalScope *ast.SymbolTable
	Diagnostics []diag.Diagnostic

	// Globals maps each top-level declaration name to its resolved type.
	// Templated models have no entry; they resolve per instantiation.
	Globals map[string]types.Type

	// Invocations are the recorded decorator applications, for consumers
	// that execute extern decorators.
	Invocations []types.DecoratorInvocation

	resolver *types.Resolver
}

// Compile runs the full pipeline over one source file. Binding and
// resolution only run when the source lexes and parses cleanly; the
// earlier stages' diagnostics are always collected.
func Compile(filename, source string) *Program {
	prog := &Program{Globals: make(map[string]types.Type)}

	p := parser.New(source, parser.WithFilename(filename))
	prog.Script = p.ParseScript()
	for _, e := range p.LexerErrors() {
		prog.Diagnostics = append(prog.Diagnostics, e.ToDiagnostic())
	}
	for _, e := range p.Errors() {
		prog.Diagnostics = append(prog.Diagnostics, e.ToDiagnostic())
	}
	if len(prog.Diagnostics) > 0 {
		return prog
	}

	b := binder.New()
	prog.GlobalScope = b.Bind(prog.Script)
	prog.Diagnostics = append(prog.Diagnostics, b.Diagnostics...)

	r := types.NewResolver(prog.GlobalScope)
	for _, stmt := range prog.Script.Statements {
		switch s := stmt.(type) {
		case *ast.ModelStatement:
			prog.addGlobal(s.Name.Name, r.ResolveStatement(s))
		case *ast.NamespaceStatement:
			prog.addGlobal(s.Name.Name, r.ResolveStatement(s))
		}
	}
	prog.Diagnostics = append(prog.Diagnostics, r.Diagnostics...)
	prog.Invocations = r.Invocations()
	prog.resolver = r
	return prog
}

// addGlobal records a resolved top-level declaration. Failed declarations
// stay out of the output graph; references to them already short-circuit
// to the error sentinel.
func (p *Program) addGlobal(name string, t types.Type) {
	if t == nil || types.IsErr(t) {
		return
	}
	p.Globals[name] = t
}

// Lookup returns the resolved type of a top-level declaration by name.
func (p *Program) Lookup(name string) (types.Type, bool) {
	t, ok := p.Globals[name]
	return t, ok
}

// DeclarationType returns the resolved type for a declaration node
// anywhere in the script, if it resolved.
func (p *Program) DeclarationType(node ast.Node) (types.Type, bool) {
	if p.resolver == nil {
		return nil, false
	}
	return p.resolver.DeclarationType(node)
}

// Resolver exposes the underlying resolver for consumers that instantiate
// templates against the compiled script.
func (p *Program) Resolver() *types.Resolver {
	return p.resolver
}

// HasErrors reports whether any stage emitted an error diagnostic.
func (p *Program) HasErrors() bool {
	for _, d := range p.Diagnostics {
		if d.Severity == diag.SeverityError {
			return true
		}
	}
	return false
}
