// Package varsupply is the fresh-variable generator: a monotonic counter
// handed by mutable reference through one inference call, guaranteeing every
// id returned in one run is unique within that run.
package varsupply

import "github.com/bookowl/typeinfer/internal/types"

// Supply hands out fresh type-variable ids. The zero value is ready to use.
type Supply struct {
	next int
}

// Fresh returns a new, previously-unused type variable.
func (s *Supply) Fresh() types.Type {
	s.next++
	return types.Var{ID: s.next}
}

// Reset rewinds the counter. Safe between top-level inference calls; never
// call it mid-inference, since no id may repeat within one call.
func (s *Supply) Reset() {
	s.next = 0
}
