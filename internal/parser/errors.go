package parser

import (
	"fmt"

	"github.com/zinc-lang/zinc/internal/errors"
	"github.com/zinc-lang/zinc/internal/lexer"
)

// errorf records a ParseError at tok's position without aborting the parse;
// the caller is responsible for leaving the cursor somewhere the recovery
// sweep (parseBlock's statement loop) can resynchronize from.
func (p *Parser) errorf(tok lexer.Token, expected []string, format string, args ...any) {
	e := errors.New(errors.KindParse, tok.Pos, fmt.Sprintf(format, args...), p.source, p.file)
	e.Expected = expected
	e.Found = tok.Literal
	p.errors = append(p.errors, e)
}
