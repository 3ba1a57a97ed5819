package env_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookowl/typeinfer/internal/env"
	"github.com/bookowl/typeinfer/internal/types"
)

func TestEmptyLookupFails(t *testing.T) {
	_, ok := env.Empty().Lookup("x")
	assert.False(t, ok)
}

func TestExtendThenLookup(t *testing.T) {
	e := env.Empty().Extend("x", types.Mono(types.Int()))
	scheme, ok := e.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, types.Int(), scheme.Body)
}

func TestExtendShadowsInnermostFirst(t *testing.T) {
	e := env.Empty().Extend("x", types.Mono(types.Int())).Extend("x", types.Mono(types.Bool()))
	scheme, ok := e.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, types.Bool(), scheme.Body)
}

func TestExtendDoesNotMutateParent(t *testing.T) {
	base := env.Empty().Extend("x", types.Mono(types.Int()))
	_ = base.Extend("y", types.Mono(types.Bool()))
	_, ok := base.Lookup("y")
	assert.False(t, ok)
}

func TestApplySubstitutesEveryFrame(t *testing.T) {
	e := env.Empty().
		Extend("x", types.Mono(types.Var{ID: 1})).
		Extend("y", types.Mono(types.Var{ID: 2}))
	s := types.Subst{1: types.Int(), 2: types.Bool()}
	applied := e.Apply(s)

	xScheme, _ := applied.Lookup("x")
	yScheme, _ := applied.Lookup("y")
	assert.Equal(t, types.Int(), xScheme.Body)
	assert.Equal(t, types.Bool(), yScheme.Body)
}

func TestFreeTypeVariablesUnionsFrames(t *testing.T) {
	e := env.Empty().
		Extend("x", types.Mono(types.Var{ID: 1})).
		Extend("y", types.Scheme{Quantified: []int{2}, Body: types.Fun{Param: types.Var{ID: 2}, Result: types.Var{ID: 3}}})
	assert.ElementsMatch(t, []int{1, 3}, e.FreeTypeVariables())
}
