package varsupply_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bookowl/typeinfer/internal/types"
	"github.com/bookowl/typeinfer/internal/varsupply"
)

func TestFreshReturnsDistinctVars(t *testing.T) {
	var s varsupply.Supply
	a := s.Fresh()
	b := s.Fresh()
	assert.NotEqual(t, a, b)
}

func TestFreshManyAreAllUnique(t *testing.T) {
	var s varsupply.Supply
	seen := map[int]bool{}
	for i := 0; i < 100; i++ {
		v := s.Fresh().(types.Var)
		assert.False(t, seen[v.ID])
		seen[v.ID] = true
	}
}

func TestResetAllowsIDReuse(t *testing.T) {
	var s varsupply.Supply
	first := s.Fresh()
	s.Reset()
	second := s.Fresh()
	assert.Equal(t, first, second)
}
