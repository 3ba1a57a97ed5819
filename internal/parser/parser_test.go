package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookowl/typeinfer/internal/ast"
	"github.com/bookowl/typeinfer/internal/parser"
)

func TestParseNumAndBool(t *testing.T) {
	expr, err := parser.Parse("42")
	require.NoError(t, err)
	num, ok := expr.(*ast.Num)
	require.True(t, ok)
	assert.Equal(t, 42, num.Value)

	expr, err = parser.Parse("true")
	require.NoError(t, err)
	b, ok := expr.(*ast.Bool)
	require.True(t, ok)
	assert.True(t, b.Value)
}

func TestParseNegativeNumLiteral(t *testing.T) {
	expr, err := parser.Parse("-7")
	require.NoError(t, err)
	num, ok := expr.(*ast.Num)
	require.True(t, ok)
	assert.Equal(t, -7, num.Value)
}

func TestParseBinOpPrecedence(t *testing.T) {
	// "1 + 2 * 3" must parse as 1 + (2 * 3), not (1 + 2) * 3.
	expr, err := parser.Parse("1 + 2 * 3")
	require.NoError(t, err)
	assert.Equal(t, "(1 + (2 * 3))", expr.String())
}

func TestParseApplicationBindsTighterThanOperators(t *testing.T) {
	expr, err := parser.Parse("f x + g y")
	require.NoError(t, err)
	assert.Equal(t, "((f x) + (g y))", expr.String())
}

func TestParseApplicationIsLeftAssociative(t *testing.T) {
	expr, err := parser.Parse("f x y")
	require.NoError(t, err)
	assert.Equal(t, "((f x) y)", expr.String())
}

func TestParseFun(t *testing.T) {
	expr, err := parser.Parse("fun x -> x")
	require.NoError(t, err)
	fn, ok := expr.(*ast.Fun)
	require.True(t, ok)
	assert.Equal(t, "x", fn.Param)
}

func TestParseLet(t *testing.T) {
	expr, err := parser.Parse("let x = 1 in x")
	require.NoError(t, err)
	let, ok := expr.(*ast.Let)
	require.True(t, ok)
	assert.Equal(t, "x", let.Name)
}

func TestParseLetRec(t *testing.T) {
	expr, err := parser.Parse("letrec f = fun n -> n in f")
	require.NoError(t, err)
	_, ok := expr.(*ast.LetRec)
	require.True(t, ok)
}

func TestParseIf(t *testing.T) {
	expr, err := parser.Parse("if true then 1 else 2")
	require.NoError(t, err)
	_, ok := expr.(*ast.If)
	require.True(t, ok)
}

func TestParseGrouping(t *testing.T) {
	expr, err := parser.Parse("(1 + 2) * 3")
	require.NoError(t, err)
	assert.Equal(t, "((1 + 2) * 3)", expr.String())
}

func TestParseTrailingInputIsAnError(t *testing.T) {
	_, err := parser.Parse("1 2 )")
	require.Error(t, err)
}

func TestParseUnexpectedTokenIsAnError(t *testing.T) {
	_, err := parser.Parse("+ 1")
	require.Error(t, err)
}

func TestParseMissingInProducesPositionedError(t *testing.T) {
	_, err := parser.Parse("let x = 1 x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse error at")
}
