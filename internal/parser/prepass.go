package parser

import (
	"strings"

	"github.com/zinc-lang/zinc/internal/lexer"
)

// funcSig is what the forward-declaration prepass records about one "to
// <name phrase> ..." definition: enough for a call site, however far above
// the definition it appears, to know where the function's name phrase ends.
type funcSig struct {
	Name      string // sanitized snake_case
	Arity     int
	HasReturn bool
}

// prepassFunctions performs a single forward sweep of the whole token
// stream, recording every top-level function signature before any body is
// parsed. This is what lets a call expression resolve a forward reference —
// a call to a function defined later in the file — without the parser ever
// needing two full passes over the grammar itself (spec.md §4.1).
//
// Nesting depth is tracked so that "to" inside a for-range phrase ("from 1
// to 10"), which only ever appears inside a body, is never mistaken for a
// new function signature: a signature only starts when TO is seen at
// depth 0.
func prepassFunctions(tokens []lexer.Token) map[string]*funcSig {
	sigs := make(map[string]*funcSig)
	depth := 0
	i := 0
	n := len(tokens)

	opensBlock := func(t lexer.TokenType) bool {
		switch t {
		case lexer.IF, lexer.WHILE, lexer.FOR, lexer.REPEAT, lexer.DEFINE, lexer.MAIN_INTR:
			return true
		}
		return false
	}

	for i < n {
		tok := tokens[i]

		if depth == 0 && tok.Type == lexer.TO {
			depth++
			i++
			words := []string{}
			arity := 0
			hasReturn := false
		scanSig:
			for i < n {
				t := tokens[i]
				switch t.Type {
				case lexer.WITH:
					// count comma-separated parameters up to AND_RET or COLON
					i++
					if i < n && tokens[i].Type != lexer.AND_RET && tokens[i].Type != lexer.COLON {
						arity = 1
					}
					for i < n && tokens[i].Type != lexer.AND_RET && tokens[i].Type != lexer.COLON && tokens[i].Type != lexer.EOL {
						if tokens[i].Type == lexer.COMMA {
							arity++
						}
						i++
					}
				case lexer.AND_RET:
					hasReturn = true
					i++
				case lexer.COLON:
					i++
					break scanSig
				case lexer.IDENT:
					words = append(words, t.Literal)
					i++
				default:
					i++
				}
			}
			name := sanitizeName(words)
			if name != "" {
				sigs[name] = &funcSig{Name: name, Arity: arity, HasReturn: hasReturn}
			}
			continue
		}

		if depth > 0 && tok.Type == lexer.ENDKW {
			depth--
			i++
			continue
		}
		if opensBlock(tok.Type) {
			depth++
			i++
			continue
		}
		i++
	}
	return sigs
}

// sanitizeName joins a multi-word surface phrase into the snake_case
// identifier spec.md §3 mandates for every Zinc-level name.
func sanitizeName(words []string) string {
	lowered := make([]string, len(words))
	for i, w := range words {
		lowered[i] = strings.ToLower(w)
	}
	return strings.Join(lowered, "_")
}
