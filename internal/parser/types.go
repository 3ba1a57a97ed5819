package parser

import (
	"fmt"

	"github.com/bookowl/typeinfer/internal/types"
)

// ParseType parses the rendered surface syntax used for printing types back
// out — int, bool, List<T>, (a -> b), 'n. It inverts types.Type.String() up
// to renaming of type variables: variable ids are reassigned from 0 in
// first-seen order. Quantified schemes (forall a b. T) are read by
// ParseScheme, not here. The input is scanned by this file's own type
// tokenizer, not by internal/lexer.
func ParseType(src string) (types.Type, error) {
	p := newTypeParser(src)
	t := p.parseType()
	if len(p.errors) > 0 {
		return nil, p.errors[0]
	}
	if p.curToken.kind != "eof" {
		return nil, fmt.Errorf("unexpected trailing input starting at %q", p.curToken.lexeme)
	}
	return t, nil
}

// ParseScheme parses "forall a b. T" into a types.Scheme, or a bare type into
// a scheme with no quantified variables. Inside T, a forall-bound name may be
// written bare (a) or quoted ('a); both denote the same type variable.
func ParseScheme(src string) (types.Scheme, error) {
	p := newTypeParser(src)
	s := p.parseScheme()
	if len(p.errors) > 0 {
		return types.Scheme{}, p.errors[0]
	}
	if p.curToken.kind != "eof" {
		return types.Scheme{}, fmt.Errorf("unexpected trailing input starting at %q", p.curToken.lexeme)
	}
	return s, nil
}

// typeToken is one token of the type syntax. Type syntax needs spellings
// that expressions never produce: a leading quote introduces a type variable
// by name ('a), and "<", ">", ",", "." are delimiters; "List" and "forall"
// are plain identifiers. Rather than grow internal/token with symbols the
// expression grammar never uses, the type parser scans its own token stream
// directly off the source string (tokenizeType).
type typeToken struct {
	kind    string // "ident", "var", "arrow", "lt", "gt", "comma", "dot", "lparen", "rparen", "illegal", "eof"
	lexeme  string
	varName string // identifier following a quote, for kind == "var"
}

type typeParser struct {
	toks     []typeToken
	pos      int
	curToken typeToken
	errors   []error
	names    map[string]int // type-variable name -> id, assigned in first-seen order
	nextID   int
}

func newTypeParser(src string) *typeParser {
	p := &typeParser{toks: tokenizeType(src), names: map[string]int{}}
	p.curToken = p.toks[0]
	return p
}

func tokenizeType(src string) []typeToken {
	var toks []typeToken
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '-' && i+1 < len(src) && src[i+1] == '>':
			toks = append(toks, typeToken{kind: "arrow", lexeme: "->"})
			i += 2
		case c == '<':
			toks = append(toks, typeToken{kind: "lt", lexeme: "<"})
			i++
		case c == '>':
			toks = append(toks, typeToken{kind: "gt", lexeme: ">"})
			i++
		case c == ',':
			toks = append(toks, typeToken{kind: "comma", lexeme: ","})
			i++
		case c == '.':
			toks = append(toks, typeToken{kind: "dot", lexeme: "."})
			i++
		case c == '(':
			toks = append(toks, typeToken{kind: "lparen", lexeme: "("})
			i++
		case c == ')':
			toks = append(toks, typeToken{kind: "rparen", lexeme: ")"})
			i++
		case c == '\'':
			j := i + 1
			for j < len(src) && isIdentByte(src[j]) {
				j++
			}
			toks = append(toks, typeToken{kind: "var", lexeme: src[i:j], varName: src[i+1 : j]})
			i = j
		case isIdentByte(c):
			j := i
			for j < len(src) && isIdentByte(src[j]) {
				j++
			}
			toks = append(toks, typeToken{kind: "ident", lexeme: src[i:j]})
			i = j
		default:
			toks = append(toks, typeToken{kind: "illegal", lexeme: string(c)})
			i++
		}
	}
	toks = append(toks, typeToken{kind: "eof"})
	return toks
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

func (p *typeParser) advance() {
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	p.curToken = p.toks[p.pos]
}

func (p *typeParser) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Errorf(format, args...))
}

// varID returns the stable id for a named type variable, assigning the next
// id the first time a name is seen within this parse.
func (p *typeParser) varID(name string) int {
	if id, ok := p.names[name]; ok {
		return id
	}
	id := p.nextID
	p.nextID++
	p.names[name] = id
	return id
}

// parseScheme parses "forall <names>. <type>" or a bare type.
func (p *typeParser) parseScheme() types.Scheme {
	if p.curToken.kind == "ident" && p.curToken.lexeme == "forall" {
		p.advance()
		var quantified []int
		for p.curToken.kind == "ident" {
			quantified = append(quantified, p.varID(p.curToken.lexeme))
			p.advance()
		}
		if p.curToken.kind != "dot" {
			p.errorf("expected '.' after forall-bound names, got %q", p.curToken.lexeme)
			return types.Scheme{}
		}
		p.advance()
		body := p.parseType()
		return types.Scheme{Quantified: quantified, Body: body}
	}
	return types.Mono(p.parseType())
}

// parseType parses a function type, right-associative: "a -> b -> c" is
// Fun(a, Fun(b, c)), matching the renderer's fully-parenthesized output.
func (p *typeParser) parseType() types.Type {
	left := p.parseAtom()
	if p.curToken.kind == "arrow" {
		p.advance()
		right := p.parseType()
		return types.Fun{Param: left, Result: right}
	}
	return left
}

func (p *typeParser) parseAtom() types.Type {
	switch p.curToken.kind {
	case "var":
		name := p.curToken.varName
		p.advance()
		return types.Var{ID: p.varID(name)}
	case "lparen":
		p.advance()
		t := p.parseType()
		if p.curToken.kind != "rparen" {
			p.errorf("expected ')', got %q", p.curToken.lexeme)
			return nil
		}
		p.advance()
		return t
	case "ident":
		name := p.curToken.lexeme
		p.advance()
		if id, ok := p.names[name]; ok {
			return types.Var{ID: id}
		}
		if name == "int" {
			return types.Int()
		}
		if name == "bool" {
			return types.Bool()
		}
		if p.curToken.kind == "lt" {
			p.advance()
			var args []types.Type
			args = append(args, p.parseType())
			for p.curToken.kind == "comma" {
				p.advance()
				args = append(args, p.parseType())
			}
			if p.curToken.kind != "gt" {
				p.errorf("expected '>', got %q", p.curToken.lexeme)
				return nil
			}
			p.advance()
			return types.Con{Name: name, Args: args}
		}
		return types.Con{Name: name}
	default:
		p.errorf("unexpected token %q in type", p.curToken.lexeme)
		return nil
	}
}
