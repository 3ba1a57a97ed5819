// Package env is the typing environment Γ: a persistent, linked sequence of
// frames with innermost-first lookup. Extending never mutates the outer
// frames, so a branch of recursion that builds Γ′ from Γ never disturbs a
// sibling branch still holding Γ.
package env

import "github.com/bookowl/typeinfer/internal/types"

// Env is one frame of a persistent, linked typing environment. A nil *Env is
// the empty environment.
type Env struct {
	name   string
	scheme types.Scheme
	parent *Env
}

// Empty returns the environment with no bindings.
func Empty() *Env { return nil }

// Extend returns a new environment with name bound to scheme, shadowing any
// existing binding of the same name in e. e itself is untouched.
func (e *Env) Extend(name string, scheme types.Scheme) *Env {
	return &Env{name: name, scheme: scheme, parent: e}
}

// Lookup finds the innermost binding of name, if any.
func (e *Env) Lookup(name string) (types.Scheme, bool) {
	for f := e; f != nil; f = f.parent {
		if f.name == name {
			return f.scheme, true
		}
	}
	return types.Scheme{}, false
}

// Apply rewrites every scheme in the environment under s, returning a new
// environment (frames are immutable, so this necessarily copies the chain).
func (e *Env) Apply(s types.Subst) *Env {
	if e == nil || len(s) == 0 {
		return e
	}
	return &Env{name: e.name, scheme: e.scheme.Apply(s), parent: e.parent.Apply(s)}
}

// FreeTypeVariables is the union of the free type variables of every scheme
// bound in the environment.
func (e *Env) FreeTypeVariables() []int {
	seen := map[int]bool{}
	out := []int{}
	for f := e; f != nil; f = f.parent {
		for _, id := range f.scheme.FreeTypeVariables() {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out
}
