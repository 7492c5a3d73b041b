package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanlwanl/fork-typespec/internal/diag"
)

func TestInstantiationIdempotence(t *testing.T) {
	script, r := resolveSource(t, `
		model Box<T> { value: T }
		model A = Box<string>;
		model B = Box<string>;
	`)
	require.Empty(t, r.Diagnostics)

	a := model(t, script, r, "A")
	b := model(t, script, r, "B")
	// Two syntactically distinct call sites share one instantiation.
	assert.Same(t, a.Assignment, b.Assignment)

	box := a.Assignment.(*Model)
	value, ok := box.Property("value")
	require.True(t, ok)
	assert.Same(t, StringType, value.Type)
}

func TestInstantiateDirectly(t *testing.T) {
	script, r := resolveSource(t, `
		model Box<T> { value: T }
		model A = Box<string>;
	`)
	require.Empty(t, r.Diagnostics)

	tmpl := findModelStatement(t, script, "Box")
	direct := r.Instantiate(tmpl, []Type{StringType})

	a := model(t, script, r, "A")
	assert.Same(t, a.Assignment, direct)
}

func TestDistinctArgumentsDistinctInstances(t *testing.T) {
	script, r := resolveSource(t, `
		model Box<T> { value: T }
		model A = Box<string>;
		model B = Box<number>;
	`)
	require.Empty(t, r.Diagnostics)

	a := model(t, script, r, "A").Assignment.(*Model)
	b := model(t, script, r, "B").Assignment.(*Model)
	assert.NotSame(t, a, b)

	av, _ := a.Property("value")
	bv, _ := b.Property("value")
	assert.Same(t, StringType, av.Type)
	assert.Same(t, NumberType, bv.Type)
}

func TestInstantiationTagsResult(t *testing.T) {
	script, r := resolveSource(t, `
		model Box<T> { value: T }
		model A = Box<string>;
	`)
	require.Empty(t, r.Diagnostics)

	tmpl := findModelStatement(t, script, "Box")
	box := model(t, script, r, "A").Assignment.(*Model)

	assert.Same(t, tmpl, box.TemplateNode)
	require.Len(t, box.TemplateArguments, 1)
	assert.Same(t, StringType, box.TemplateArguments[0])
	assert.Equal(t, "Box<string>", box.String())
}

func TestTemplateArityMismatch(t *testing.T) {
	_, r := resolveSource(t, `
		model Pair<A, B> { first: A; second: B }
		model One = Pair<string>;
		model Three = Pair<string, number, boolean>;
	`)
	require.Equal(t, []diag.Code{
		diag.CodeResolveTemplateArity,
		diag.CodeResolveTemplateArity,
	}, diagCodes(r))
}

func TestBareReferenceToTemplateIsArityError(t *testing.T) {
	_, r := resolveSource(t, `
		model Box<T> { value: T }
		model A = Box;
	`)
	require.Len(t, r.Diagnostics, 1)
	assert.Equal(t, diag.CodeResolveTemplateArity, r.Diagnostics[0].Code)
}

func TestApplicationOfNonTemplate(t *testing.T) {
	_, r := resolveSource(t, `
		model Pet {}
		model A = Pet<string>;
	`)
	require.Len(t, r.Diagnostics, 1)
	assert.Equal(t, diag.CodeResolveTemplateArity, r.Diagnostics[0].Code)
}

func TestNestedInstantiation(t *testing.T) {
	script, r := resolveSource(t, `
		model Box<T> { value: T }
		model A = Box<Box<string>>;
	`)
	require.Empty(t, r.Diagnostics)

	outer := model(t, script, r, "A").Assignment.(*Model)
	value, _ := outer.Property("value")
	inner, ok := value.Type.(*Model)
	require.True(t, ok)

	iv, _ := inner.Property("value")
	assert.Same(t, StringType, iv.Type)
}

func TestModelArgumentIdentity(t *testing.T) {
	script, r := resolveSource(t, `
		model Pet { name: string }
		model Box<T> { value: T }
		model A = Box<Pet>;
		model B = Box<Pet>;
	`)
	require.Empty(t, r.Diagnostics)

	a := model(t, script, r, "A").Assignment
	b := model(t, script, r, "B").Assignment
	assert.Same(t, a, b)
}

func TestLiteralArgumentsShareInstantiation(t *testing.T) {
	script, r := resolveSource(t, `
		model Tagged<T> { tag: T }
		model A = Tagged<"x">;
		model B = Tagged<"x">;
		model C = Tagged<"y">;
	`)
	require.Empty(t, r.Diagnostics)

	a := model(t, script, r, "A").Assignment
	b := model(t, script, r, "B").Assignment
	c := model(t, script, r, "C").Assignment
	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}

func TestRecursiveTemplateThroughArray(t *testing.T) {
	script, r := resolveSource(t, `
		model Tree<T> { value: T; children: Tree<T>[] }
		model A = Tree<string>;
	`)
	require.Empty(t, r.Diagnostics)

	tree := model(t, script, r, "A").Assignment.(*Model)
	children, ok := tree.Property("children")
	require.True(t, ok)

	arr := children.Type.(*Array)
	assert.Same(t, tree, arr.Element)
}

func TestAliasTemplate(t *testing.T) {
	script, r := resolveSource(t, `
		model List<T> = T[];
		model A = List<string>;
	`)
	require.Empty(t, r.Diagnostics)

	list := model(t, script, r, "A").Assignment.(*Model)
	arr, ok := list.Assignment.(*Array)
	require.True(t, ok)
	assert.Same(t, StringType, arr.Element)
	require.Len(t, list.TemplateArguments, 1)
}

func TestTemplateBodyErrorPoisonsInstantiation(t *testing.T) {
	_, r := resolveSource(t, `
		model Box<T> { value: T; bad: Missing }
		model A = Box<string>;
	`)
	require.Len(t, r.Diagnostics, 1)
	assert.Equal(t, diag.CodeResolveUnresolvedReference, r.Diagnostics[0].Code)
}
