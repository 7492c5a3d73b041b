package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanlwanl/fork-typespec/internal/ast"
	"github.com/wanlwanl/fork-typespec/internal/binder"
	"github.com/wanlwanl/fork-typespec/internal/diag"
	"github.com/wanlwanl/fork-typespec/internal/parser"
)

// resolveSource parses, binds, and resolves every top-level declaration.
// The source must be syntactically clean; semantic diagnostics are left for
// each test to inspect.
func resolveSource(t *testing.T, src string) (*ast.ADLScript, *Resolver) {
	t.Helper()
	p := parser.New(src)
	script := p.ParseScript()
	require.Empty(t, p.LexerErrors(), "unexpected lexer errors")
	require.Empty(t, p.Errors(), "unexpected parse errors")

	b := binder.New()
	global := b.Bind(script)
	require.Empty(t, b.Diagnostics, "unexpected binder diagnostics")

	r := NewResolver(global)
	for _, stmt := range script.Statements {
		r.ResolveStatement(stmt)
	}
	return script, r
}

func findModelStatement(t *testing.T, script *ast.ADLScript, name string) *ast.ModelStatement {
	t.Helper()
	for _, stmt := range script.Statements {
		if m, ok := stmt.(*ast.ModelStatement); ok && m.Name.Name == name {
			return m
		}
	}
	t.Fatalf("model %q not found", name)
	return nil
}

// model requires that the named declaration resolved to a Model.
func model(t *testing.T, script *ast.ADLScript, r *Resolver, name string) *Model {
	t.Helper()
	decl := findModelStatement(t, script, name)
	resolved, ok := r.DeclarationType(decl)
	require.True(t, ok, "model %q not resolved", name)
	m, ok := resolved.(*Model)
	require.True(t, ok, "model %q resolved to %T", name, resolved)
	return m
}

func diagCodes(r *Resolver) []diag.Code {
	codes := make([]diag.Code, len(r.Diagnostics))
	for i, d := range r.Diagnostics {
		codes[i] = d.Code
	}
	return codes
}

func TestNoBaseModelPropertiesEqualOwnProperties(t *testing.T) {
	script, r := resolveSource(t, `model Pet {
		name: string;
		age: number;
	}`)
	require.Empty(t, r.Diagnostics)

	pet := model(t, script, r, "Pet")
	require.Len(t, pet.OwnProperties, 2)
	require.Len(t, pet.Properties, len(pet.OwnProperties))
	for i := range pet.OwnProperties {
		assert.Same(t, pet.OwnProperties[i], pet.Properties[i])
	}
	assert.Equal(t, "name", pet.OwnProperties[0].Name)
	assert.Same(t, StringType, pet.OwnProperties[0].Type)
}

func TestForwardReference(t *testing.T) {
	script, r := resolveSource(t, `
		model Owner { pet: Pet }
		model Pet { name: string }
	`)
	require.Empty(t, r.Diagnostics)

	owner := model(t, script, r, "Owner")
	pet := model(t, script, r, "Pet")

	prop, ok := owner.Property("pet")
	require.True(t, ok)
	assert.Same(t, pet, prop.Type)
}

func TestReferenceIdentity(t *testing.T) {
	script, r := resolveSource(t, `
		model Pet { name: string }
		model A { p: Pet }
		model B { p: Pet }
	`)
	require.Empty(t, r.Diagnostics)

	a := model(t, script, r, "A")
	b := model(t, script, r, "B")
	ap, _ := a.Property("p")
	bp, _ := b.Property("p")
	assert.Same(t, ap.Type, bp.Type)
}

func TestUnionFlattening(t *testing.T) {
	script, r := resolveSource(t, `
		model A {}
		model B {}
		model C {}
		model U = (A | B) | C;
	`)
	require.Empty(t, r.Diagnostics)

	u := model(t, script, r, "U")
	union, ok := u.Assignment.(*Union)
	require.True(t, ok)
	require.Len(t, union.Options, 3)

	assert.Same(t, model(t, script, r, "A"), union.Options[0])
	assert.Same(t, model(t, script, r, "B"), union.Options[1])
	assert.Same(t, model(t, script, r, "C"), union.Options[2])
	for _, opt := range union.Options {
		_, nested := opt.(*Union)
		assert.False(t, nested, "union must never nest")
	}
}

func TestUnionKeepsDuplicateOptions(t *testing.T) {
	script, r := resolveSource(t, `
		model A {}
		model U = A | A;
	`)
	require.Empty(t, r.Diagnostics)

	union := model(t, script, r, "U").Assignment.(*Union)
	require.Len(t, union.Options, 2)
	assert.Same(t, union.Options[0], union.Options[1])
}

func TestCircularDirectSelfReference(t *testing.T) {
	script, r := resolveSource(t, "model A { self: A }")

	require.Len(t, r.Diagnostics, 1)
	assert.Equal(t, diag.CodeResolveCircularReference, r.Diagnostics[0].Code)

	decl := findModelStatement(t, script, "A")
	resolved, ok := r.DeclarationType(decl)
	require.True(t, ok)
	assert.True(t, IsErr(resolved))
}

func TestCircularReferenceShortCircuitsWithoutCascading(t *testing.T) {
	script, r := resolveSource(t, `
		model A { self: A }
		model B { a: A; name: string }
	`)
	// Only A's cycle is diagnosed; B resolves with the sentinel inside.
	require.Equal(t, []diag.Code{diag.CodeResolveCircularReference}, diagCodes(r))

	b := model(t, script, r, "B")
	prop, ok := b.Property("a")
	require.True(t, ok)
	assert.True(t, IsErr(prop.Type))

	name, ok := b.Property("name")
	require.True(t, ok)
	assert.Same(t, StringType, name.Type)
}

func TestSelfReferenceThroughArrayResolves(t *testing.T) {
	script, r := resolveSource(t, "model Node { children: Node[] }")
	require.Empty(t, r.Diagnostics)

	node := model(t, script, r, "Node")
	prop, ok := node.Property("children")
	require.True(t, ok)

	arr, ok := prop.Type.(*Array)
	require.True(t, ok)
	assert.Same(t, node, arr.Element)
}

func TestSelfReferenceThroughUnionResolves(t *testing.T) {
	script, r := resolveSource(t, "model Tree { left: Tree | null }")
	require.Empty(t, r.Diagnostics)

	tree := model(t, script, r, "Tree")
	prop, _ := tree.Property("left")
	union, ok := prop.Type.(*Union)
	require.True(t, ok)
	assert.Same(t, tree, union.Options[0])
}

func TestOptionalSelfReferenceResolves(t *testing.T) {
	script, r := resolveSource(t, "model LinkedNode { next?: LinkedNode }")
	require.Empty(t, r.Diagnostics)

	node := model(t, script, r, "LinkedNode")
	prop, _ := node.Property("next")
	assert.Same(t, node, prop.Type)
	assert.True(t, prop.Optional)
}

func TestMutualRecursionThroughArray(t *testing.T) {
	script, r := resolveSource(t, `
		model A { bs: B[] }
		model B { as: A[] }
	`)
	require.Empty(t, r.Diagnostics)

	a := model(t, script, r, "A")
	b := model(t, script, r, "B")
	bs, _ := a.Property("bs")
	assert.Same(t, b, bs.Type.(*Array).Element)
}

func TestUnresolvedReference(t *testing.T) {
	script, r := resolveSource(t, "model A { x: Missing }")

	require.Len(t, r.Diagnostics, 1)
	assert.Equal(t, diag.CodeResolveUnresolvedReference, r.Diagnostics[0].Code)

	decl := findModelStatement(t, script, "A")
	resolved, _ := r.DeclarationType(decl)
	assert.True(t, IsErr(resolved))
}

func TestIntrinsicTypes(t *testing.T) {
	script, r := resolveSource(t, `model Mixed {
		a: string;
		b: number;
		c: boolean;
		d: bytes;
		e: null;
	}`)
	require.Empty(t, r.Diagnostics)

	mixed := model(t, script, r, "Mixed")
	want := []Type{StringType, NumberType, BooleanType, BytesType, NullType}
	require.Len(t, mixed.Properties, len(want))
	for i, prop := range mixed.Properties {
		assert.Same(t, want[i], prop.Type)
	}
}

func TestDeclarationShadowsIntrinsic(t *testing.T) {
	script, r := resolveSource(t, `
		model string { length: number }
		model A { s: string }
	`)
	require.Empty(t, r.Diagnostics)

	custom := model(t, script, r, "string")
	a := model(t, script, r, "A")
	prop, _ := a.Property("s")
	assert.Same(t, custom, prop.Type)
	assert.NotSame(t, StringType, prop.Type)
}

func TestLiteralTypes(t *testing.T) {
	script, r := resolveSource(t, `model Status = "ok" | 42 | true;`)
	require.Empty(t, r.Diagnostics)

	union := model(t, script, r, "Status").Assignment.(*Union)
	require.Len(t, union.Options, 3)

	s, ok := union.Options[0].(*StringLiteral)
	require.True(t, ok)
	assert.Equal(t, "ok", s.Value)

	n, ok := union.Options[1].(*NumericLiteral)
	require.True(t, ok)
	assert.Equal(t, 42.0, n.Value)

	b, ok := union.Options[2].(*BooleanLiteral)
	require.True(t, ok)
	assert.True(t, b.Value)
}

func TestTupleType(t *testing.T) {
	script, r := resolveSource(t, "model Pair = [string, number];")
	require.Empty(t, r.Diagnostics)

	tuple, ok := model(t, script, r, "Pair").Assignment.(*Tuple)
	require.True(t, ok)
	require.Len(t, tuple.Values, 2)
	assert.Same(t, StringType, tuple.Values[0])
	assert.Same(t, NumberType, tuple.Values[1])
}

func TestAliasOfModelAdoptsProperties(t *testing.T) {
	script, r := resolveSource(t, `
		model Pet { name: string }
		model Animal = Pet;
	`)
	require.Empty(t, r.Diagnostics)

	pet := model(t, script, r, "Pet")
	animal := model(t, script, r, "Animal")
	assert.Same(t, pet, animal.Assignment)

	prop, ok := animal.Property("name")
	require.True(t, ok)
	assert.Same(t, StringType, prop.Type)

	// The alias declares nothing itself; adoption is visible only in the
	// effective set.
	assert.Empty(t, animal.OwnProperties)
	_, ok = animal.OwnProperty("name")
	assert.False(t, ok)
}

func TestInlineModelExpression(t *testing.T) {
	script, r := resolveSource(t, "model Pair = { a: string; b: number };")
	require.Empty(t, r.Diagnostics)

	pair := model(t, script, r, "Pair")
	inline, ok := pair.Assignment.(*Model)
	require.True(t, ok)
	assert.Empty(t, inline.Name)
	require.Len(t, inline.Properties, 2)
}

func TestImportedNameIsNotAType(t *testing.T) {
	_, r := resolveSource(t, `
		import doc;
		model A { x: doc }
	`)
	require.Len(t, r.Diagnostics, 1)
	assert.Equal(t, diag.CodeResolveUnresolvedReference, r.Diagnostics[0].Code)
}

func TestResolveExprIsDeterministicAcrossCalls(t *testing.T) {
	script, r := resolveSource(t, "model Pet { name: string }")
	decl := findModelStatement(t, script, "Pet")

	first := r.ResolveStatement(decl)
	second := r.ResolveStatement(decl)
	assert.Same(t, first, second)
}
