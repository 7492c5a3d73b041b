package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanlwanl/fork-typespec/internal/ast"
	"github.com/wanlwanl/fork-typespec/internal/diag"
	"github.com/wanlwanl/fork-typespec/internal/types"
)

const petstore = `
import doc;

@doc("A pet in the store")
model Pet {
	name: string;
	tags: string[];
}

model Box<T> { value: T }

model PetBox = Box<Pet>;

namespace Pets {
	list(): Pet[];
	get(id: string): Pet;
}
`

func TestCompilePetstore(t *testing.T) {
	prog := Compile("petstore.adl", petstore)
	require.False(t, prog.HasErrors(), "diagnostics: %v", prog.Diagnostics)

	pet, ok := prog.Lookup("Pet")
	require.True(t, ok)
	petModel, ok := pet.(*types.Model)
	require.True(t, ok)
	require.Len(t, petModel.Properties, 2)

	// Templated declarations resolve per instantiation only.
	_, ok = prog.Lookup("Box")
	assert.False(t, ok)

	petBox, ok := prog.Lookup("PetBox")
	require.True(t, ok)
	boxed := petBox.(*types.Model).Assignment.(*types.Model)
	assert.Same(t, pet, boxed.Properties[0].Type)

	pets, ok := prog.Lookup("Pets")
	require.True(t, ok)
	ns := pets.(*types.Namespace)
	require.Len(t, ns.Properties, 2)

	require.Len(t, prog.Invocations, 1)
	assert.Equal(t, "doc", prog.Invocations[0].Binding.Name)
}

func TestCompileAttachesFilenameToSpans(t *testing.T) {
	prog := Compile("bad.adl", "model A { x: Missing }")
	require.True(t, prog.HasErrors())
	require.Len(t, prog.Diagnostics, 1)
	assert.Equal(t, "bad.adl", prog.Diagnostics[0].Span.Filename)
}

func TestCompileGatesOnParseErrors(t *testing.T) {
	prog := Compile("broken.adl", "model = {")
	require.True(t, prog.HasErrors())
	assert.Empty(t, prog.Globals)

	for _, d := range prog.Diagnostics {
		assert.Equal(t, diag.StageParser, d.Stage)
	}
}

func TestCompileCollectsBindAndResolveDiagnostics(t *testing.T) {
	prog := Compile("multi.adl", `
		model Pet {}
		model Pet {}
		model A { x: Missing }
	`)
	require.True(t, prog.HasErrors())

	stages := make(map[diag.Stage]int)
	for _, d := range prog.Diagnostics {
		stages[d.Stage]++
	}
	assert.Equal(t, 1, stages[diag.StageBind])
	assert.Equal(t, 1, stages[diag.StageResolve])

	// The failed declaration still leaves the rest of the run intact.
	_, ok := prog.Lookup("Pet")
	assert.True(t, ok)
}

func TestDeclarationType(t *testing.T) {
	prog := Compile("decl.adl", "model Pet { name: string }")
	require.False(t, prog.HasErrors())

	decl := prog.Script.Statements[0].(*ast.ModelStatement)
	resolved, ok := prog.DeclarationType(decl)
	require.True(t, ok)
	fromLookup, _ := prog.Lookup("Pet")
	assert.Same(t, fromLookup, resolved)
}

func TestFailedDeclarationYieldsNoGlobal(t *testing.T) {
	prog := Compile("fail.adl", `
		model Broken { x: Missing }
		model Fine { name: string }
	`)
	require.True(t, prog.HasErrors())

	_, ok := prog.Lookup("Broken")
	assert.False(t, ok)

	fine, ok := prog.Lookup("Fine")
	require.True(t, ok)
	assert.False(t, types.IsErr(fine))
}

func TestResolverAccessor(t *testing.T) {
	prog := Compile("tmpl.adl", "model Box<T> { value: T }")
	require.False(t, prog.HasErrors())

	tmpl := prog.Script.Statements[0].(*ast.ModelStatement)
	boxed := prog.Resolver().Instantiate(tmpl, []types.Type{types.StringType})
	box, ok := boxed.(*types.Model)
	require.True(t, ok)

	value, ok := box.Property("value")
	require.True(t, ok)
	assert.Same(t, types.StringType, value.Type)
}
