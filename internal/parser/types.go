package parser

import (
	"strings"

	"github.com/zinc-lang/zinc/internal/ast"
	"github.com/zinc-lang/zinc/internal/lexer"
)

// scalarTypeNames maps the lowercased surface words a type phrase can start
// with onto a BaseKind. Anything else is treated as the name of a
// previously "define a"-d structure.
var scalarTypeNames = map[string]ast.BaseKind{
	"number":    ast.KindInteger,
	"decimal":   ast.KindFloating,
	"fraction":  ast.KindFloating,
	"character": ast.KindCharacter,
	"text":      ast.KindString,
	"boolean":   ast.KindBoolean,
	"flag":      ast.KindBoolean,
}

// parseTypeExpr parses a type phrase: a scalar type name, "pointer to
// <type>", "list of <N> <type>s" (fixed-size array), "list of <type>s"
// (open array), or a bare structure name.
func (p *Parser) parseTypeExpr() *ast.TypeExpr {
	tok := p.cur.current()

	if tok.Type == lexer.IDENT && strings.EqualFold(tok.Literal, "pointer") {
		p.cur.advance()
		p.expect(lexer.TO, "to")
		elem := p.parseTypeExpr()
		return &ast.TypeExpr{Token: tok, Kind: ast.KindPointer, Elem: elem}
	}

	if tok.Type == lexer.THE_LIST || (tok.Type == lexer.IDENT && strings.EqualFold(tok.Literal, "list")) {
		p.cur.advance()
		p.consumeWord("of")
		if p.cur.current().Type == lexer.INT {
			lenTok := p.cur.advance()
			elem := p.parseScalarOrStructType()
			n, _ := lenTok.Value.(int64)
			return &ast.TypeExpr{Token: tok, Kind: ast.KindFixedArr, Elem: elem, Len: int(n)}
		}
		elem := p.parseScalarOrStructType()
		return &ast.TypeExpr{Token: tok, Kind: ast.KindOpenArr, Elem: elem}
	}

	return p.parseScalarOrStructType()
}

// parseScalarOrStructType consumes one identifier-shaped type name (number,
// decimal, text, boolean, or a structure name), tolerating a trailing
// plural "s" left over from phrases like "list of numbers". The lexer's
// A_NUMBER phrase ("a number") is also accepted as the number type.
func (p *Parser) parseScalarOrStructType() *ast.TypeExpr {
	tok := p.cur.current()
	if tok.Type == lexer.A_NUMBER {
		p.cur.advance()
		return &ast.TypeExpr{Token: tok, Kind: ast.KindInteger}
	}
	if tok.Type == lexer.TEXT {
		p.cur.advance()
		return &ast.TypeExpr{Token: tok, Kind: ast.KindString}
	}
	if tok.Type != lexer.IDENT {
		p.errorf(tok, []string{"a type name"}, "expected a type name, found %s %q", tok.Type, tok.Literal)
		return &ast.TypeExpr{Token: tok, Kind: ast.KindVoid}
	}
	p.cur.advance()
	word := strings.ToLower(tok.Literal)
	if kind, ok := scalarTypeNames[word]; ok {
		return &ast.TypeExpr{Token: tok, Kind: kind}
	}
	if strings.HasSuffix(word, "s") {
		if kind, ok := scalarTypeNames[strings.TrimSuffix(word, "s")]; ok {
			return &ast.TypeExpr{Token: tok, Kind: kind}
		}
	}
	return &ast.TypeExpr{Token: tok, Kind: ast.KindStruct, Name: tok.Literal}
}

// consumeWord consumes the current token if it is an IDENT matching word,
// case-insensitively. Used for the small filler words ("of") that the
// lexer has no dedicated token for.
func (p *Parser) consumeWord(word string) bool {
	tok := p.cur.current()
	if tok.Type == lexer.IDENT && strings.EqualFold(tok.Literal, word) {
		p.cur.advance()
		return true
	}
	return false
}
