// Package parser builds an ast.Expression from a token stream: a Parser
// driven by cur/peek tokens, a prefixParseFns table keyed by token.Type, and
// a precedence-climbing parseExpression loop over an infixParseFns table,
// covering this grammar's nine expression forms. Application-by-juxtaposition
// has no operator token to key an infix entry off of, so it is handled
// inside the shared prefix function instead of the infix table.
package parser

import (
	"fmt"

	"github.com/bookowl/typeinfer/internal/ast"
	"github.com/bookowl/typeinfer/internal/diagnostics"
	"github.com/bookowl/typeinfer/internal/lexer"
	"github.com/bookowl/typeinfer/internal/token"
)

// Precedence levels, lowest to highest. APPLY binds tighter than any
// operator: juxtaposition is never split apart by an infix operator.
const (
	LOWEST int = iota
	OR
	AND
	REL
	SUM
	PRODUCT
	APPLY
)

var precedences = map[token.Type]int{
	token.OR:    OR,
	token.AND:   AND,
	token.EQUAL: REL,
	token.GT:    REL,
	token.LT:    REL,
	token.PLUS:  SUM,
	token.MINUS: SUM,
	token.STAR:  PRODUCT,
	token.SLASH: PRODUCT,
}

var binOps = map[token.Type]ast.Op{
	token.EQUAL: ast.Equal,
	token.GT:    ast.Gt,
	token.LT:    ast.Lt,
	token.PLUS:  ast.Add,
	token.MINUS: ast.Sub,
	token.STAR:  ast.Mul,
	token.SLASH: ast.Div,
	token.AND:   ast.And,
	token.OR:    ast.Or,
}

// startsTerm is the set of token types that can begin an applied argument:
// juxtaposition stops as soon as the next token can't start one.
var startsTerm = map[token.Type]bool{
	token.IDENT:  true,
	token.INT:    true,
	token.TRUE:   true,
	token.FALSE:  true,
	token.LPAREN: true,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser turns a lexer's token stream into an ast.Expression.
type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	errors []*diagnostics.Error

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

// New returns a Parser ready to parse the given source.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[token.Type]prefixParseFn{
		token.IDENT:  p.parseApplication,
		token.INT:    p.parseApplication,
		token.TRUE:   p.parseApplication,
		token.FALSE:  p.parseApplication,
		token.LPAREN: p.parseApplication,
		token.LET:    p.parseLet,
		token.LETREC: p.parseLetRec,
		token.IF:     p.parseIf,
		token.FUN:    p.parseFun,
	}

	p.infixParseFns = map[token.Type]infixParseFn{
		token.PLUS:  p.parseBinOp,
		token.MINUS: p.parseBinOp,
		token.STAR:  p.parseBinOp,
		token.SLASH: p.parseBinOp,
		token.EQUAL: p.parseBinOp,
		token.GT:    p.parseBinOp,
		token.LT:    p.parseBinOp,
		token.AND:   p.parseBinOp,
		token.OR:    p.parseBinOp,
	}

	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns the diagnostics accumulated while parsing.
func (p *Parser) Errors() []*diagnostics.Error { return p.errors }

// ParseProgram parses a single expression and requires it to consume all
// input; the grammar has no statement separators, so one expression is a
// whole program.
func (p *Parser) ParseProgram() ast.Expression {
	expr := p.parseExpression(LOWEST)
	if !p.peekTokenIs(token.EOF) {
		p.nextToken()
		p.errorf("unexpected trailing input starting at %q", p.curToken.Lexeme)
	}
	return expr
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.Type) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.Type) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.errorf("expected next token to be %s, got %s instead", t, p.peekToken.Type)
	return false
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) errorf(format string, args ...any) {
	p.errors = append(p.errors, diagnostics.New(p.curToken.Line, p.curToken.Column, format, args...))
}

func (p *Parser) noPrefixParseFnError(t token.Type) {
	p.errorf("no expression can start with %s", t)
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken.Type)
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(token.EOF) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseBinOp(left ast.Expression) ast.Expression {
	tok := p.curToken
	op := binOps[tok.Type]
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	return &ast.BinOp{Token: tok, Left: left, Op: op, Right: right}
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}

// parseApplication parses one Term and then greedily consumes juxtaposed
// Terms as left-associative App nodes: `e1 e2` applies e1 to e2, and
// application is left-associative and binds tighter than any binary
// operator.
func (p *Parser) parseApplication() ast.Expression {
	left := p.parseTerm()
	for startsTerm[p.peekToken.Type] {
		p.nextToken()
		tok := left.GetToken()
		arg := p.parseTerm()
		left = &ast.App{Token: tok, Fn: left, Arg: arg}
	}
	return left
}

// parseTerm parses a single atomic operand: a literal, a variable, or a
// parenthesized expression.
func (p *Parser) parseTerm() ast.Expression {
	switch p.curToken.Type {
	case token.INT:
		return p.parseNum()
	case token.TRUE, token.FALSE:
		return p.parseBool()
	case token.IDENT:
		return p.parseVar()
	case token.LPAREN:
		return p.parseGrouped()
	default:
		p.noPrefixParseFnError(p.curToken.Type)
		return nil
	}
}

func (p *Parser) parseNum() ast.Expression {
	tok := p.curToken
	value, err := lexer.IntValue(tok)
	if err != nil {
		p.errorf("could not parse %q as an integer", tok.Lexeme)
		return nil
	}
	return &ast.Num{Token: tok, Value: value}
}

func (p *Parser) parseBool() ast.Expression {
	return &ast.Bool{Token: p.curToken, Value: p.curToken.Type == token.TRUE}
}

func (p *Parser) parseVar() ast.Expression {
	return &ast.Var{Token: p.curToken, Name: p.curToken.Lexeme}
}

func (p *Parser) parseGrouped() ast.Expression {
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expr
}

// parseLet parses `let x = e1 in e2`.
func (p *Parser) parseLet() ast.Expression {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Lexeme
	if !p.expectPeek(token.EQUAL) {
		return nil
	}
	p.nextToken()
	value := p.parseExpression(LOWEST)
	if !p.expectPeek(token.IN) {
		return nil
	}
	p.nextToken()
	body := p.parseExpression(LOWEST)
	return &ast.Let{Token: tok, Name: name, Value: value, Body: body}
}

// parseLetRec parses `letrec x = e1 in e2`.
func (p *Parser) parseLetRec() ast.Expression {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Lexeme
	if !p.expectPeek(token.EQUAL) {
		return nil
	}
	p.nextToken()
	value := p.parseExpression(LOWEST)
	if !p.expectPeek(token.IN) {
		return nil
	}
	p.nextToken()
	body := p.parseExpression(LOWEST)
	return &ast.LetRec{Token: tok, Name: name, Value: value, Body: body}
}

// parseIf parses `if e1 then e2 else e3`.
func (p *Parser) parseIf() ast.Expression {
	tok := p.curToken
	p.nextToken()
	pred := p.parseExpression(LOWEST)
	if !p.expectPeek(token.THEN) {
		return nil
	}
	p.nextToken()
	then := p.parseExpression(LOWEST)
	if !p.expectPeek(token.ELSE) {
		return nil
	}
	p.nextToken()
	alt := p.parseExpression(LOWEST)
	return &ast.If{Token: tok, Pred: pred, Then: then, Else: alt}
}

// parseFun parses `fun x -> e`.
func (p *Parser) parseFun() ast.Expression {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	param := p.curToken.Lexeme
	if !p.expectPeek(token.ARROW) {
		return nil
	}
	p.nextToken()
	body := p.parseExpression(LOWEST)
	return &ast.Fun{Token: tok, Param: param, Body: body}
}

// Parse is the package-level entry point: lex and parse src, returning the
// first diagnostic on failure.
func Parse(src string) (ast.Expression, error) {
	p := New(lexer.New(src))
	expr := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		return nil, fmt.Errorf("%w", errs[0])
	}
	return expr, nil
}
