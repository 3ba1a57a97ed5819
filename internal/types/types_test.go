package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookowl/typeinfer/internal/types"
)

func TestApplyIsIdempotent(t *testing.T) {
	// spec.md §8 law 1: S.apply(S.apply(t)) == S.apply(t).
	s := types.Subst{
		1: types.Var{ID: 2},
		2: types.Fun{Param: types.Int(), Result: types.Var{ID: 3}},
	}
	tests := []types.Type{
		types.Var{ID: 1},
		types.Fun{Param: types.Var{ID: 1}, Result: types.Bool()},
		types.List(types.Var{ID: 1}),
	}
	for _, ty := range tests {
		once := ty.Apply(s)
		twice := once.Apply(s)
		assert.Equal(t, once, twice)
	}
}

func TestFreeTypeVariables(t *testing.T) {
	ty := types.Fun{
		Param:  types.Var{ID: 1},
		Result: types.Con{Name: "List", Args: []types.Type{types.Var{ID: 2}, types.Var{ID: 1}}},
	}
	require.Equal(t, []int{1, 2}, ty.FreeTypeVariables())
}

func TestSchemeFreeTypeVariablesExcludesQuantified(t *testing.T) {
	scheme := types.Scheme{
		Quantified: []int{1},
		Body:       types.Fun{Param: types.Var{ID: 1}, Result: types.Var{ID: 2}},
	}
	assert.Equal(t, []int{2}, scheme.FreeTypeVariables())
}

func TestSchemeApplySkipsQuantified(t *testing.T) {
	scheme := types.Scheme{Quantified: []int{1}, Body: types.Var{ID: 1}}
	s := types.Subst{1: types.Int()}
	applied := scheme.Apply(s)
	assert.Equal(t, types.Var{ID: 1}, applied.Body)
}

func TestRendering(t *testing.T) {
	cases := []struct {
		ty   types.Type
		want string
	}{
		{types.Int(), "int"},
		{types.Bool(), "bool"},
		{types.List(types.Int()), "List<int>"},
		{types.Fun{Param: types.Int(), Result: types.Bool()}, "(int -> bool)"},
		{types.Var{ID: 7}, "'7"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.ty.String())
	}
}

func TestComposeMatchesSequentialApply(t *testing.T) {
	s1 := types.Subst{1: types.Var{ID: 2}}
	s2 := types.Subst{2: types.Int()}
	composed := s1.Compose(s2)
	ty := types.Var{ID: 1}
	assert.Equal(t, s2.Apply(s1.Apply(ty)), composed.Apply(ty))
}
