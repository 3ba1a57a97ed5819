// Package infer is the Algorithm-W inferencer: spec.md §4.E's component E,
// structural recursion on ast.Expression that threads a substitution and a
// typing environment through calls to internal/unify, generalizing at Let
// and LetRec and instantiating at Var. Ported case-for-case from
// original_source/src/infer.rs's tp/type_of/top_level_env, the authoritative
// "later" variant spec.md §9 calls out (the earlier annotate-then-solve
// design is not built, per spec.md's instruction to treat this one as
// authoritative).
package infer

import (
	"github.com/bookowl/typeinfer/internal/ast"
	"github.com/bookowl/typeinfer/internal/env"
	"github.com/bookowl/typeinfer/internal/types"
	"github.com/bookowl/typeinfer/internal/unify"
	"github.com/bookowl/typeinfer/internal/varsupply"
)

// opTypes returns the (left, right, result) triple for a binary operator,
// per spec.md §4.E's BinOp table. Equal/Lt/Gt are polymorphic: the operand
// type is a fresh variable unified between both sides, and the later-variant
// resolution in spec.md §9/§13 is authoritative over the earlier numeric-only
// restriction.
func opTypes(op ast.Op, supply *varsupply.Supply) (left, right, result types.Type) {
	switch op {
	case ast.Add, ast.Sub, ast.Mul, ast.Div:
		return types.Int(), types.Int(), types.Int()
	case ast.And, ast.Or:
		return types.Bool(), types.Bool(), types.Bool()
	default: // Equal, Gt, Lt
		a := supply.Fresh()
		return a, a, types.Bool()
	}
}

// TP asserts that expr has type expected under env, and returns a refined
// substitution extending s (spec.md §4.E). It is the recursive workhorse
// behind TypeOf; callers that just want "the type of this expression" should
// use TypeOf instead.
func TP(expr ast.Expression, expected types.Type, e *env.Env, s types.Subst, supply *varsupply.Supply) (types.Subst, error) {
	switch ex := expr.(type) {

	case *ast.Num:
		return doUnify(expected, types.Int(), s)

	case *ast.Bool:
		return doUnify(expected, types.Bool(), s)

	case *ast.Var:
		scheme, ok := e.Lookup(ex.Name)
		if !ok {
			return nil, &UndefinedNameError{Name: ex.Name}
		}
		instance := instantiate(scheme, supply)
		return doUnify(expected, instance, s)

	case *ast.BinOp:
		lt, rt, rest := opTypes(ex.Op, supply)
		s1, err := TP(ex.Left, lt, e, s, supply)
		if err != nil {
			return nil, err
		}
		s2, err := TP(ex.Right, rt, e, s1, supply)
		if err != nil {
			return nil, err
		}
		return doUnify(expected, rest, s2)

	case *ast.If:
		s1, err := TP(ex.Pred, types.Bool(), e, s, supply)
		if err != nil {
			return nil, err
		}
		s2, err := TP(ex.Then, expected, e, s1, supply)
		if err != nil {
			return nil, err
		}
		return TP(ex.Else, expected, e, s2, supply)

	case *ast.Fun:
		param := supply.Fresh()
		result := supply.Fresh()
		s1, err := doUnify(expected, types.Fun{Param: param, Result: result}, s)
		if err != nil {
			return nil, err
		}
		e1 := e.Extend(ex.Param, types.Mono(param))
		return TP(ex.Body, result, e1, s1, supply)

	case *ast.App:
		arg := supply.Fresh()
		s1, err := TP(ex.Fn, types.Fun{Param: arg, Result: expected}, e, s, supply)
		if err != nil {
			return nil, err
		}
		return TP(ex.Arg, arg, e, s1, supply)

	case *ast.Let:
		a := supply.Fresh()
		s1, err := TP(ex.Value, a, e, s, supply)
		if err != nil {
			return nil, err
		}
		valueType := a.Apply(s1)
		scheme := generalize(valueType, e.Apply(s1))
		e1 := e.Extend(ex.Name, scheme)
		return TP(ex.Body, expected, e1, s1, supply)

	case *ast.LetRec:
		a := supply.Fresh()
		e1 := e.Extend(ex.Name, types.Mono(a))
		s1, err := TP(ex.Value, a, e1, s, supply)
		if err != nil {
			return nil, err
		}
		scheme := generalize(a.Apply(s1), e.Apply(s1))
		e2 := e.Extend(ex.Name, scheme)
		return TP(ex.Body, expected, e2, s1, supply)
	}

	panic("infer: unreachable expression kind")
}

// TypeOf is the top-level entry point (spec.md §4.E): it creates a fresh
// "expected" variable, runs TP from the empty substitution, and reports
// substitution.apply(expected) as the inferred type.
func TypeOf(expr ast.Expression, e *env.Env) (types.Type, error) {
	supply := &varsupply.Supply{}
	a := supply.Fresh()
	s, err := TP(expr, a, e, types.Subst{}, supply)
	if err != nil {
		return nil, err
	}
	return a.Apply(s), nil
}

// generalize converts a monotype into a scheme, quantifying every variable
// free in t but not free in the (already-applied) environment (spec.md
// §4.E's key soundness invariant: generalizing over variables still free in
// env would leak let-polymorphism and make inference unsound).
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

// instantiate converts a scheme into a monotype, replacing every quantified
// variable with a fresh one (spec.md §4.E's Var case).
func instantiate(scheme types.Scheme, supply *varsupply.Supply) types.Type {
	quantified := map[int]bool{}
	for _, id := range scheme.Quantified {
		quantified[id] = true
	}
	sub := types.Subst{}
	for _, id := range scheme.Quantified {
		// Apply is transitive, so a fresh id that is itself quantified
		// would be rewritten a second time; skip such ids.
		fresh := supply.Fresh()
		for quantified[fresh.(types.Var).ID] {
			fresh = supply.Fresh()
		}
		sub[id] = fresh
	}
	return scheme.Body.Apply(sub)
}

// doUnify wraps unify.Unify's plain error in this package's TypeError,
// so every failure the inferencer reports is one of the two kinds spec.md §7
// defines.
func doUnify(t1, t2 types.Type, s types.Subst) (types.Subst, error) {
	s1, err := unify.Unify(t1, t2, s)
	if err != nil {
		return nil, &TypeError{Message: err.Error()}
	}
	return s1, nil
}
