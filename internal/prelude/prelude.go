// Package prelude builds the built-in environment spec.md §4.F describes:
// five polymorphic list bindings (nil, pair, first, rest, is_nil), each
// generalized over a fresh type variable at construction time. Ported
// directly from original_source/src/infer.rs's top_level_env, which builds
// the bindings in this exact order, each generalized against the environment
// as it stood *before* that binding was added.
package prelude

import (
	"github.com/bookowl/typeinfer/internal/env"
	"github.com/bookowl/typeinfer/internal/types"
	"github.com/bookowl/typeinfer/internal/varsupply"
)

// Base returns the environment spec.md §4.F defines: nil, pair, first, rest,
// and is_nil, each generalized over its own fresh type variable. Passing a
// *varsupply.Supply lets a caller that also runs inference against the
// result keep drawing from the same counter; a fresh supply is fine too,
// since the prelude's own variable ids never need to agree with a caller's.
func Base(supply *varsupply.Supply) *env.Env {
	e := env.Empty()

	a := supply.Fresh()
	nilScheme := generalize(types.List(a), e)
	e = e.Extend("nil", nilScheme)

	a = supply.Fresh()
	pair := types.Fun{Param: a, Result: types.Fun{Param: types.List(a), Result: types.List(a)}}
	e = e.Extend("pair", generalize(pair, e))

	a = supply.Fresh()
	first := types.Fun{Param: types.List(a), Result: a}
	e = e.Extend("first", generalize(first, e))

	a = supply.Fresh()
	rest := types.Fun{Param: types.List(a), Result: types.List(a)}
	e = e.Extend("rest", generalize(rest, e))

	a = supply.Fresh()
	isNil := types.Fun{Param: types.List(a), Result: types.Bool()}
	e = e.Extend("is_nil", generalize(isNil, e))

	return e
}

// generalize quantifies every variable free in t but not free in e, mirroring
// infer.rs's TypeScheme::from_type (and internal/infer.generalize, which is
// unexported and so cannot be called from this package).
func generalize(t types.Type, e *env.Env) types.Scheme {
	envVars := map[int]bool{}
	for _, id := range e.FreeTypeVariables() {
		envVars[id] = true
	}
	quantified := []int{}
	for _, id := range t.FreeTypeVariables() {
		if !envVars[id] {
			quantified = append(quantified, id)
		}
	}
	return types.Scheme{Quantified: quantified, Body: t}
}
