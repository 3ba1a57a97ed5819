// Package unify computes the most general unifier of two monotypes given an
// in-progress substitution, with occurs check. The case analysis covers this
// engine's three type formers: Var, Fun, Con.
package unify

import (
	"fmt"

	"github.com/bookowl/typeinfer/internal/types"
)

// Unify computes the most general substitution S' extending s such that
// S'(t1) = S'(t2).
func Unify(t1, t2 types.Type, s types.Subst) (types.Subst, error) {
	a1, a2 := t1.Apply(s), t2.Apply(s)

	switch x := a1.(type) {
	case types.Var:
		if y, ok := a2.(types.Var); ok && y.ID == x.ID {
			return s, nil
		}
		return bind(x, a2, s)
	default:
		if y, ok := a2.(types.Var); ok {
			return bind(y, a1, s)
		}
	}

	switch x := a1.(type) {
	case types.Fun:
		y, ok := a2.(types.Fun)
		if !ok {
			return nil, mismatch(a1, a2)
		}
		s1, err := Unify(x.Param, y.Param, s)
		if err != nil {
			return nil, err
		}
		return Unify(x.Result, y.Result, s1)

	case types.Con:
		y, ok := a2.(types.Con)
		if !ok || y.Name != x.Name || len(y.Args) != len(x.Args) {
			return nil, mismatch(a1, a2)
		}
		acc := s
		for i := range x.Args {
			var err error
			acc, err = Unify(x.Args[i], y.Args[i], acc)
			if err != nil {
				return nil, err
			}
		}
		return acc, nil

	default:
		return nil, mismatch(a1, a2)
	}
}

// bind extends s by binding tv to t, after an occurs check.
func bind(tv types.Var, t types.Type, s types.Subst) (types.Subst, error) {
	if y, ok := t.(types.Var); ok && y.ID == tv.ID {
		return s, nil
	}
	if occurs(tv, t) {
		return nil, mismatch(tv, t)
	}
	extended := types.Subst{}
	for id, bound := range s {
		extended[id] = bound
	}
	extended[tv.ID] = t
	return extended, nil
}

// occurs reports whether tv appears free in t. Never omit this check: without
// it, `fun x -> x x` would build an infinite type and later unifications
// would diverge.
func occurs(tv types.Var, t types.Type) bool {
	for _, id := range t.FreeTypeVariables() {
		if id == tv.ID {
			return true
		}
	}
	return false
}

func mismatch(t1, t2 types.Type) error {
	return fmt.Errorf("cannot unify %s with %s", t1.String(), t2.String())
}
