package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanlwanl/fork-typespec/internal/ast"
)

// parse is a helper that parses source and fails the test on any error.
func parse(t *testing.T, src string) *ast.ADLScript {
	t.Helper()
	p := New(src)
	script := p.ParseScript()
	require.Empty(t, p.LexerErrors(), "unexpected lexer errors")
	require.Empty(t, p.Errors(), "unexpected parse errors")
	return script
}

func TestParseImportStatement(t *testing.T) {
	script := parse(t, "import doc, deprecated;")
	require.Len(t, script.Statements, 1)

	imp, ok := script.Statements[0].(*ast.ImportStatement)
	require.True(t, ok)
	require.Len(t, imp.Names, 2)
	assert.Equal(t, "doc", imp.Names[0].Name)
	assert.Equal(t, "deprecated", imp.Names[1].Name)
}

func TestParseModelAlias(t *testing.T) {
	script := parse(t, "model Pet = Cat | Dog;")
	require.Len(t, script.Statements, 1)

	model, ok := script.Statements[0].(*ast.ModelStatement)
	require.True(t, ok)
	assert.Equal(t, "Pet", model.Name.Name)

	union, ok := model.Assignment.(*ast.UnionExpression)
	require.True(t, ok)
	require.Len(t, union.Options, 2)
}

func TestParseModelBody(t *testing.T) {
	script := parse(t, `model Pet {
		name: string;
		age?: number,
		...Taggable;
	}`)
	model := script.Statements[0].(*ast.ModelStatement)
	require.Len(t, model.Properties, 3)

	name, ok := model.Properties[0].(*ast.ModelProperty)
	require.True(t, ok)
	assert.Equal(t, "name", name.Name.Name)
	assert.False(t, name.Optional)

	age, ok := model.Properties[1].(*ast.ModelProperty)
	require.True(t, ok)
	assert.True(t, age.Optional)

	spread, ok := model.Properties[2].(*ast.ModelSpreadProperty)
	require.True(t, ok)
	target, ok := spread.Target.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "Taggable", target.Name)
}

func TestParseTemplateParameters(t *testing.T) {
	script := parse(t, "model Box<T, U> { value: T; extra: U }")
	model := script.Statements[0].(*ast.ModelStatement)
	require.Len(t, model.TemplateParameters, 2)
	assert.Equal(t, "T", model.TemplateParameters[0].Name.Name)
	assert.Equal(t, "U", model.TemplateParameters[1].Name.Name)
}

func TestParseExtends(t *testing.T) {
	script := parse(t, "model Cat extends Animal, Pet { purrs: boolean }")
	model := script.Statements[0].(*ast.ModelStatement)
	require.Len(t, model.Extends, 2)
	require.Len(t, model.Properties, 1)
}

func TestParseNamespace(t *testing.T) {
	script := parse(t, `namespace Pets {
		list(): Pet[];
		get(id: string): Pet;
	}`)
	ns := script.Statements[0].(*ast.NamespaceStatement)
	assert.Equal(t, "Pets", ns.Name.Name)
	require.Len(t, ns.Properties, 2)

	get := ns.Properties[1]
	assert.Equal(t, "get", get.Name.Name)
	require.Len(t, get.Parameters, 1)
	assert.Equal(t, "id", get.Parameters[0].Name.Name)
}

func TestParseNamespaceSignature(t *testing.T) {
	script := parse(t, "namespace Svc(key: string) { ping(): boolean }")
	ns := script.Statements[0].(*ast.NamespaceStatement)
	require.Len(t, ns.Parameters, 1)
	assert.Equal(t, "key", ns.Parameters[0].Name.Name)
}

func TestParseDecorators(t *testing.T) {
	script := parse(t, `@doc("A pet") @deprecated model Pet {
		@doc("display name") name: string;
	}`)
	model := script.Statements[0].(*ast.ModelStatement)
	require.Len(t, model.Decorators, 2)

	doc := model.Decorators[0]
	target, ok := doc.Target.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "doc", target.Name)
	require.Len(t, doc.Arguments, 1)

	prop := model.Properties[0].(*ast.ModelProperty)
	require.Len(t, prop.Decorators, 1)
}

func TestParseDottedDecoratorTarget(t *testing.T) {
	script := parse(t, `@svc.doc("x") model Pet {}`)
	model := script.Statements[0].(*ast.ModelStatement)
	require.Len(t, model.Decorators, 1)

	member, ok := model.Decorators[0].Target.(*ast.MemberExpression)
	require.True(t, ok)
	assert.Equal(t, "doc", member.Member.Name)
}

func TestUnionBindsLooserThanIntersection(t *testing.T) {
	script := parse(t, "model X = A | B & C;")
	model := script.Statements[0].(*ast.ModelStatement)

	union, ok := model.Assignment.(*ast.UnionExpression)
	require.True(t, ok)
	require.Len(t, union.Options, 2)

	_, ok = union.Options[0].(*ast.Identifier)
	assert.True(t, ok)
	inter, ok := union.Options[1].(*ast.IntersectionExpression)
	require.True(t, ok)
	require.Len(t, inter.Operands, 2)
}

func TestParsePostfixChain(t *testing.T) {
	script := parse(t, "model X = Box<Pet>[];")
	model := script.Statements[0].(*ast.ModelStatement)

	arr, ok := model.Assignment.(*ast.ArrayExpression)
	require.True(t, ok)

	app, ok := arr.Element.(*ast.TemplateApplication)
	require.True(t, ok)
	require.Len(t, app.Arguments, 1)
}

func TestParseMemberAccess(t *testing.T) {
	script := parse(t, "model X = Pets.get;")
	model := script.Statements[0].(*ast.ModelStatement)

	member, ok := model.Assignment.(*ast.MemberExpression)
	require.True(t, ok)
	assert.Equal(t, "get", member.Member.Name)
	base, ok := member.Base.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "Pets", base.Name)
}

func TestParseTupleExpression(t *testing.T) {
	script := parse(t, `model X = [string, 42, true];`)
	model := script.Statements[0].(*ast.ModelStatement)

	tuple, ok := model.Assignment.(*ast.TupleExpression)
	require.True(t, ok)
	require.Len(t, tuple.Values, 3)

	num, ok := tuple.Values[1].(*ast.NumericLiteral)
	require.True(t, ok)
	assert.Equal(t, 42.0, num.Value)
}

func TestParseInlineModelExpression(t *testing.T) {
	script := parse(t, "model Pair = { a: string; b: number };")
	model := script.Statements[0].(*ast.ModelStatement)

	inline, ok := model.Assignment.(*ast.ModelExpression)
	require.True(t, ok)
	require.Len(t, inline.Properties, 2)
}

func TestParenGrouping(t *testing.T) {
	script := parse(t, "model X = (A | B) | C;")
	model := script.Statements[0].(*ast.ModelStatement)

	// The parser keeps the syntactic nesting; the resolver flattens it.
	union, ok := model.Assignment.(*ast.UnionExpression)
	require.True(t, ok)
	require.Len(t, union.Options, 2)
	_, ok = union.Options[0].(*ast.UnionExpression)
	assert.True(t, ok)
}

func TestEmptyTupleIsError(t *testing.T) {
	p := New("model X = [];")
	p.ParseScript()
	assert.NotEmpty(t, p.Errors())
}

func TestDecoratorOnImportIsError(t *testing.T) {
	p := New("@doc import other;")
	p.ParseScript()
	assert.NotEmpty(t, p.Errors())
}

func TestRecoveryAfterBadStatement(t *testing.T) {
	p := New(`model = ;
model Pet { name: string }`)
	script := p.ParseScript()
	assert.NotEmpty(t, p.Errors())

	require.Len(t, script.Statements, 1)
	model, ok := script.Statements[0].(*ast.ModelStatement)
	require.True(t, ok)
	assert.Equal(t, "Pet", model.Name.Name)
}

func TestFilenameAttribution(t *testing.T) {
	p := New("model Pet {}", WithFilename("pets.adl"))
	script := p.ParseScript()
	require.Len(t, script.Statements, 1)
	assert.Equal(t, "pets.adl", script.Statements[0].Span().Filename)
}
