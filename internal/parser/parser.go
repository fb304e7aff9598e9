// Package parser turns a Zinc token stream into an AST, following the
// teacher's recursive-descent-plus-Pratt-expression shape. Unlike the
// teacher's single-pass parser, Zinc's grammar requires a lightweight
// forward-declaration prepass first (see prepass.go) so that a call
// expression can resolve a function defined later in the same file.
package parser

import (
	"github.com/zinc-lang/zinc/internal/ast"
	"github.com/zinc-lang/zinc/internal/errors"
	"github.com/zinc-lang/zinc/internal/lexer"
)

// Parser consumes a token stream produced by the lexer and builds an
// *ast.Program. It never panics on malformed input: errors are collected
// and parsing resynchronizes at the next statement or declaration boundary.
type Parser struct {
	cur     *cursor
	source  string
	file    string
	funcs   map[string]*funcSig
	errors  []*errors.CompilerError
}

// New creates a Parser over tokens. source is the original program text
// (used for error context and for slicing raw-C passthrough lines); file is
// the path reported in diagnostics.
func New(tokens []lexer.Token, source, file string) *Parser {
	return &Parser{
		cur:    newCursor(tokens),
		source: source,
		file:   file,
		funcs:  prepassFunctions(tokens),
	}
}

// Errors returns every ParseError collected during ParseProgram.
func (p *Parser) Errors() []*errors.CompilerError { return p.errors }

// ParseProgram parses the whole token stream into a Program. Parsing
// continues past errors where possible so a single invocation can report
// more than one problem.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	p.cur.skipEOLs()
	for !p.cur.atEOF() {
		decl := p.parseTopLevel()
		if decl != nil {
			prog.Decls = append(prog.Decls, decl)
		}
		p.cur.skipEOLs()
	}
	return prog
}

func (p *Parser) parseTopLevel() ast.TopLevel {
	tok := p.cur.current()
	switch tok.Type {
	case lexer.INCLUDE:
		return p.parseInclude()
	case lexer.DEFINE:
		return p.parseStructDef()
	case lexer.MAIN_INTR:
		return p.parseMainDef()
	case lexer.TO:
		return p.parseFunctionDef()
	default:
		p.errorf(tok, []string{"include", "define a", "to", "to do the main thing"},
			"unexpected %s at top level", tok.Type)
		p.cur.advance()
		return nil
	}
}

// expect consumes the current token if it matches want, otherwise records a
// ParseError and leaves the cursor where it is so the caller can decide how
// to recover.
func (p *Parser) expect(want lexer.TokenType, label string) (lexer.Token, bool) {
	tok := p.cur.current()
	if tok.Type != want {
		p.errorf(tok, []string{label}, "expected %s, found %s %q", label, tok.Type, tok.Literal)
		return tok, false
	}
	return p.cur.advance(), true
}

// identPhrase consumes a maximal run of IDENT tokens, returning the joined
// words and the sanitized snake_case name (spec.md §3).
func (p *Parser) identPhrase() (words []string, sanitized string, tok lexer.Token) {
	tok = p.cur.current()
	for p.cur.current().Type == lexer.IDENT {
		words = append(words, p.cur.current().Literal)
		p.cur.advance()
	}
	sanitized = sanitizeName(words)
	return
}
