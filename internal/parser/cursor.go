package parser

import "github.com/zinc-lang/zinc/internal/lexer"

// cursor is a simple, rewindable position into a token slice shared by the
// prepass and the main parse, mirroring the teacher's cursor-over-a-token-
// slice approach rather than a channel/iterator style lexer handoff.
type cursor struct {
	tokens []lexer.Token
	pos    int
}

func newCursor(tokens []lexer.Token) *cursor {
	return &cursor{tokens: tokens}
}

func (c *cursor) current() lexer.Token {
	if c.pos >= len(c.tokens) {
		return c.tokens[len(c.tokens)-1] // EOF
	}
	return c.tokens[c.pos]
}

func (c *cursor) peekAt(offset int) lexer.Token {
	idx := c.pos + offset
	if idx >= len(c.tokens) {
		return c.tokens[len(c.tokens)-1]
	}
	return c.tokens[idx]
}

func (c *cursor) advance() lexer.Token {
	t := c.current()
	if c.pos < len(c.tokens) {
		c.pos++
	}
	return t
}

func (c *cursor) atEOF() bool { return c.current().Type == lexer.EOF }

// skipEOLs consumes any run of end-of-line tokens, which the grammar
// tolerates anywhere between statements (spec.md §4.1: "parser ... tolerates
// runs" of newlines).
func (c *cursor) skipEOLs() {
	for c.current().Type == lexer.EOL {
		c.advance()
	}
}
