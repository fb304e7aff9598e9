// Package ast defines the Zinc abstract syntax tree: the tagged tree the
// parser builds and the resolver annotates, per spec.md §3.
package ast

import (
	"bytes"

	"github.com/zinc-lang/zinc/internal/lexer"
)

// Node is the base interface every AST node implements.
type Node interface {
	// TokenLiteral returns the literal text of the node's leading token.
	TokenLiteral() string
	// String renders the node for debugging and pretty-printing.
	String() string
	// Pos returns the node's source position, propagated from its first
	// token (spec.md §3 invariant).
	Pos() lexer.Position
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action without producing a value.
type Statement interface {
	Node
	statementNode()
}

// TopLevel is any node that may appear at program scope: an include
// directive, a structure definition, a function definition, or the main
// function.
type TopLevel interface {
	Node
	topLevelNode()
}

// Program is the root of the AST: the ordered sequence of top-level
// declarations in a source file.
type Program struct {
	Decls []TopLevel
}

func (p *Program) TokenLiteral() string {
	if len(p.Decls) > 0 {
		return p.Decls[0].TokenLiteral()
	}
	return ""
}

func (p *Program) Pos() lexer.Position {
	if len(p.Decls) > 0 {
		return p.Decls[0].Pos()
	}
	return lexer.Position{Line: 1, Column: 1}
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, d := range p.Decls {
		out.WriteString(d.String())
		out.WriteString("\n")
	}
	return out.String()
}

// Identifier is a variable, parameter, function, or field name reference.
// ResolvedKind is filled in by the resolver (spec.md §4.3); until then it
// is KindUnresolved.
type Identifier struct {
	Token        lexer.Token
	Value        string
	ResolvedKind ResolveKind
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) Pos() lexer.Position  { return i.Token.Pos }
func (i *Identifier) String() string       { return i.Value }

// ResolveKind tags how the resolver classified a name reference.
type ResolveKind int

const (
	KindUnresolved ResolveKind = iota
	KindLocal
	KindParameter
	KindGlobal
	KindFunction
	KindField
	KindPassthrough
)

func (k ResolveKind) String() string {
	switch k {
	case KindLocal:
		return "local"
	case KindParameter:
		return "parameter"
	case KindGlobal:
		return "global"
	case KindFunction:
		return "function"
	case KindField:
		return "field"
	case KindPassthrough:
		return "passthrough"
	default:
		return "unresolved"
	}
}

// BlockStatement is an ordered sequence of statements forming a function,
// loop, or conditional body.
type BlockStatement struct {
	Token      lexer.Token
	Statements []Statement
}

func (b *BlockStatement) statementNode()      {}
func (b *BlockStatement) TokenLiteral() string { return b.Token.Literal }
func (b *BlockStatement) Pos() lexer.Position  { return b.Token.Pos }
func (b *BlockStatement) String() string {
	var out bytes.Buffer
	for _, s := range b.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}
