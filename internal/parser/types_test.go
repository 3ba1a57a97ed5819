package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookowl/typeinfer/internal/parser"
	"github.com/bookowl/typeinfer/internal/types"
)

func TestParseTypeRoundTripsRenderer(t *testing.T) {
	cases := []types.Type{
		types.Int(),
		types.Bool(),
		types.List(types.Int()),
		types.Fun{Param: types.Int(), Result: types.Bool()},
	}
	for _, want := range cases {
		got, err := parser.ParseType(want.String())
		require.NoError(t, err)
		assert.Equal(t, want.String(), got.String())
	}
}

func TestParseTypeVar(t *testing.T) {
	ty, err := parser.ParseType("'a")
	require.NoError(t, err)
	_, ok := ty.(types.Var)
	assert.True(t, ok)
}

func TestParseTypeArrowRightAssociative(t *testing.T) {
	ty, err := parser.ParseType("int -> bool -> int")
	require.NoError(t, err)
	fn, ok := ty.(types.Fun)
	require.True(t, ok)
	assert.Equal(t, types.Int(), fn.Param)
	inner, ok := fn.Result.(types.Fun)
	require.True(t, ok)
	assert.Equal(t, types.Bool(), inner.Param)
}

func TestParseSchemeForall(t *testing.T) {
	scheme, err := parser.ParseScheme("forall a. (a -> a)")
	require.NoError(t, err)
	require.Len(t, scheme.Quantified, 1)
	fn, ok := scheme.Body.(types.Fun)
	require.True(t, ok)
	param, ok := fn.Param.(types.Var)
	require.True(t, ok)
	assert.Equal(t, scheme.Quantified[0], param.ID)
}

func TestParseSchemeMultipleQuantifiedNames(t *testing.T) {
	scheme, err := parser.ParseScheme("forall a b c. (a -> (b -> c))")
	require.NoError(t, err)
	assert.Len(t, scheme.Quantified, 3)
}

func TestParseSchemeBareTypeHasNoQuantifiedVars(t *testing.T) {
	scheme, err := parser.ParseScheme("int")
	require.NoError(t, err)
	assert.Empty(t, scheme.Quantified)
}

func TestParseTypeTrailingInputIsAnError(t *testing.T) {
	_, err := parser.ParseType("int bool")
	require.Error(t, err)
}

func TestParseTypeListOfFunctions(t *testing.T) {
	ty, err := parser.ParseType("List<(int -> bool)>")
	require.NoError(t, err)
	con, ok := ty.(types.Con)
	require.True(t, ok)
	assert.Equal(t, "List", con.Name)
	require.Len(t, con.Args, 1)
}
