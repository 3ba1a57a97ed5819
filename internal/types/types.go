// Package types is the algebraic structure of monotypes and type schemes: a
// small Type interface (String/Apply/FreeTypeVariables) over three leaf
// constructors — Var, Fun, Con — plus a Subst map with idempotent Apply.
package types

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bookowl/typeinfer/internal/config"
)

// Type is a monotype: Var, Fun, or Con.
type Type interface {
	String() string
	Apply(Subst) Type
	FreeTypeVariables() []int
}

// Var is a type variable identified by a fresh integer id.
type Var struct {
	ID int
}

func (v Var) String() string {
	if config.IsTestMode {
		return "'?"
	}
	return fmt.Sprintf("'%d", v.ID)
}

func (v Var) Apply(s Subst) Type {
	if t, ok := s[v.ID]; ok {
		if tv, ok := t.(Var); ok && tv.ID == v.ID {
			return v
		}
		return t.Apply(s)
	}
	return v
}

func (v Var) FreeTypeVariables() []int { return []int{v.ID} }

// Fun is a function type from a parameter type to a result type.
type Fun struct {
	Param  Type
	Result Type
}

func (f Fun) String() string {
	return fmt.Sprintf("(%s -> %s)", f.Param.String(), f.Result.String())
}

func (f Fun) Apply(s Subst) Type {
	return Fun{Param: f.Param.Apply(s), Result: f.Result.Apply(s)}
}

func (f Fun) FreeTypeVariables() []int {
	return uniqueInts(append(f.Param.FreeTypeVariables(), f.Result.FreeTypeVariables()...))
}

// Con is a type constructor applied to zero or more monotype arguments. The
// built-in nullary constructors int and bool are Con values with no Args, and
// the unary List constructor is Con{Name: "List", Args: []Type{elem}}.
type Con struct {
	Name string
	Args []Type
}

func (c Con) String() string {
	switch len(c.Args) {
	case 0:
		return c.Name
	case 1:
		return fmt.Sprintf("%s<%s>", c.Name, c.Args[0].String())
	default:
		parts := make([]string, len(c.Args))
		for i, a := range c.Args {
			parts[i] = a.String()
		}
		return fmt.Sprintf("%s<%s>", c.Name, strings.Join(parts, ", "))
	}
}

func (c Con) Apply(s Subst) Type {
	if len(c.Args) == 0 {
		return c
	}
	args := make([]Type, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.Apply(s)
	}
	return Con{Name: c.Name, Args: args}
}

func (c Con) FreeTypeVariables() []int {
	vars := []int{}
	for _, a := range c.Args {
		vars = append(vars, a.FreeTypeVariables()...)
	}
	return uniqueInts(vars)
}

// Int, Bool and List construct the built-in type constructors: int and bool
// are nullary Cons so that the unifier treats every constructor, built-in or
// user-visible, uniformly.
func Int() Type  { return Con{Name: config.IntTypeName} }
func Bool() Type { return Con{Name: config.BoolTypeName} }
func List(elem Type) Type {
	return Con{Name: config.ListTypeName, Args: []Type{elem}}
}

// Subst is a finite mapping from type-variable ids to monotypes.
type Subst map[int]Type

// Apply rewrites t under s; it is t.Apply(s) written substitution-first.
func (s Subst) Apply(t Type) Type { return t.Apply(s) }

// Compose combines two substitutions so that applying the result once has
// the same effect as applying s1 first and then s2:
// (s1.Compose(s2)).Apply(t) == s2.Apply(s1.Apply(t)).
func (s1 Subst) Compose(s2 Subst) Subst {
	out := Subst{}
	for id, t := range s2 {
		out[id] = t
	}
	for id, t := range s1 {
		out[id] = t.Apply(s2)
	}
	return out
}

func uniqueInts(ids []int) []int {
	seen := map[int]bool{}
	out := []int{}
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	sort.Ints(out)
	return out
}
