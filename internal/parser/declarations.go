package parser

import (
	"strings"

	"github.com/zinc-lang/zinc/internal/ast"
	"github.com/zinc-lang/zinc/internal/lexer"
)

// parseInclude parses "include <target phrase>", capturing everything up to
// end of line as the raw target phrase; the lowering stage maps it onto a
// concrete #include via the fixed table in spec.md §6.
func (p *Parser) parseInclude() ast.TopLevel {
	tok := p.cur.advance() // INCLUDE
	var words []string
	for p.cur.current().Type != lexer.EOL && p.cur.current().Type != lexer.EOF {
		words = append(words, p.cur.advance().Literal)
	}
	return &ast.IncludeDecl{Token: tok, Target: strings.Join(words, " ")}
}

// parseStructDef parses "define a Name as having: field* end".
func (p *Parser) parseStructDef() ast.TopLevel {
	tok := p.cur.advance() // DEFINE ("define a")
	nameTok, _ := p.expect(lexer.IDENT, "a structure name")
	name := &ast.Identifier{Token: nameTok, Value: nameTok.Literal}

	p.expect(lexer.HAVING, "as having")
	if p.cur.current().Type == lexer.COLON {
		p.cur.advance()
	}
	p.cur.skipEOLs()

	def := &ast.StructDef{Token: tok, Name: name}
	for p.cur.current().Type != lexer.ENDKW && p.cur.current().Type != lexer.EOF {
		p.cur.skipEOLs()
		if p.cur.current().Type == lexer.ENDKW {
			break
		}
		fieldTok := p.cur.current()
		typ := p.parseTypeExpr()
		p.expect(lexer.CALLED, "called")
		fNameTok, _ := p.expect(lexer.IDENT, "a field name")
		def.Fields = append(def.Fields, &ast.FieldDecl{
			Token: fieldTok, Type: typ,
			Name: &ast.Identifier{Token: fNameTok, Value: fNameTok.Literal},
		})
		if p.cur.current().Type == lexer.COMMA {
			p.cur.advance()
		}
		p.cur.skipEOLs()
	}
	p.expect(lexer.ENDKW, "end")
	return def
}

// parseFunctionDef parses "to <name phrase> with <params> and return a
// <type>: <body> end". The enclosing prepass has already recorded this
// function's signature; parsing the body here just fills it in.
func (p *Parser) parseFunctionDef() ast.TopLevel {
	tok := p.cur.advance() // TO
	words, sanitized, _ := p.identPhrase()
	def := &ast.FunctionDef{Token: tok, Name: sanitized, DisplayName: strings.Join(words, " ")}

	if p.cur.current().Type == lexer.WITH {
		p.cur.advance()
		for {
			if p.cur.current().Type == lexer.AND_RET || p.cur.current().Type == lexer.COLON {
				break
			}
			pTok := p.cur.current()
			pType := p.parseTypeExpr()
			p.expect(lexer.CALLED, "called")
			pNameTok, _ := p.expect(lexer.IDENT, "a parameter name")
			def.Params = append(def.Params, &ast.Parameter{
				Token: pTok, Type: pType,
				Name: &ast.Identifier{Token: pNameTok, Value: pNameTok.Literal},
			})
			if p.cur.current().Type == lexer.COMMA {
				p.cur.advance()
				continue
			}
			break
		}
	}

	if p.cur.current().Type == lexer.AND_RET {
		p.cur.advance()
		def.ReturnType = p.parseTypeExpr()
	}

	p.expect(lexer.COLON, ":")
	def.Body = p.parseBlock()
	p.expect(lexer.ENDKW, "end")
	return def
}

// parseMainDef parses "to do the main thing: <body> end", the program's
// single entry point.
func (p *Parser) parseMainDef() ast.TopLevel {
	tok := p.cur.advance() // MAIN_INTR
	if p.cur.current().Type == lexer.COLON {
		p.cur.advance()
	}
	body := p.parseBlock()
	p.expect(lexer.ENDKW, "end")
	return &ast.MainDef{Token: tok, Body: body}
}
