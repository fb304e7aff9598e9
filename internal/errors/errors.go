// Package errors formats Zinc's closed compiler-error taxonomy (spec.md
// §7) with source context, line/column information, and a caret pointing
// at the offending column — the same presentation the teacher compiler
// uses for its own diagnostics.
package errors

import (
	"fmt"
	"strings"

	"github.com/zinc-lang/zinc/internal/lexer"
)

// Kind is the closed taxonomy of compile-time failures spec.md §7 names.
type Kind int

const (
	KindLex Kind = iota
	KindParse
	KindResolve
	KindLower
	KindTool
)

func (k Kind) String() string {
	switch k {
	case KindLex:
		return "LexError"
	case KindParse:
		return "ParseError"
	case KindResolve:
		return "ResolveError"
	case KindLower:
		return "LowerError"
	case KindTool:
		return "ToolError"
	default:
		return "Error"
	}
}

// CompilerError is a single compilation failure with position and source
// context, ready to be formatted for a terminal.
type CompilerError struct {
	Kind     Kind
	Message  string
	Source   string
	File     string
	Pos      lexer.Position
	Expected []string // ParseError only: the token kinds that would have been accepted
	Found    string   // ParseError only: the offending token's text
}

// New creates a CompilerError of the given kind.
func New(kind Kind, pos lexer.Position, message, source, file string) *CompilerError {
	return &CompilerError{Kind: kind, Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface with an uncolored single-line-plus-
// caret rendering.
func (e *CompilerError) Error() string { return e.Format(false) }

// Format renders the error with a file:line:col header, the offending
// source line, and a caret under the error column. When color is true,
// ANSI codes highlight the caret and message.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		sb.WriteString(fmt.Sprintf("%s in %s:%d:%d\n", e.Kind, e.File, e.Pos.Line, e.Pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("%s at %d:%d\n", e.Kind, e.Pos.Line, e.Pos.Column))
	}

	if line := e.sourceLine(e.Pos.Line); line != "" {
		gutter := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(gutter)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(gutter)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func (e *CompilerError) sourceLine(n int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if n < 1 || n > len(lines) {
		return ""
	}
	return lines[n-1]
}

// FormatAll renders a batch of errors, numbering them when there is more
// than one.
func FormatAll(errs []*CompilerError, color bool) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format(color)
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("compilation failed with %d error(s):\n\n", len(errs)))
	for i, e := range errs {
		sb.WriteString(fmt.Sprintf("[%d of %d]\n", i+1, len(errs)))
		sb.WriteString(e.Format(color))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
