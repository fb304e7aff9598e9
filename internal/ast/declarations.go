package ast

import (
	"bytes"
	"strings"

	"github.com/zinc-lang/zinc/internal/lexer"
)

// IncludeDecl is a top-level include directive. Target is the raw phrase
// after "include" (e.g. "the standard input and output"); the lowering
// stage maps it to a concrete #include via the fixed table in spec.md §6.
type IncludeDecl struct {
	Token  lexer.Token
	Target string
}

func (d *IncludeDecl) topLevelNode()      {}
func (d *IncludeDecl) TokenLiteral() string { return d.Token.Literal }
func (d *IncludeDecl) Pos() lexer.Position  { return d.Token.Pos }
func (d *IncludeDecl) String() string       { return "include " + d.Target }

// FieldDecl is one field of a structure definition.
type FieldDecl struct {
	Type  *TypeExpr
	Name  *Identifier
	Token lexer.Token
}

func (f *FieldDecl) Pos() lexer.Position { return f.Token.Pos }
func (f *FieldDecl) String() string {
	return f.Type.String() + " called " + f.Name.String()
}

// StructDef is "define a X as having: ... end".
type StructDef struct {
	Name   *Identifier
	Fields []*FieldDecl
	Token  lexer.Token
}

func (d *StructDef) topLevelNode()      {}
func (d *StructDef) TokenLiteral() string { return d.Token.Literal }
func (d *StructDef) Pos() lexer.Position  { return d.Token.Pos }
func (d *StructDef) String() string {
	var out bytes.Buffer
	out.WriteString("define a ")
	out.WriteString(d.Name.String())
	out.WriteString(" as having:\n")
	for _, f := range d.Fields {
		out.WriteString("  ")
		out.WriteString(f.String())
		out.WriteString("\n")
	}
	out.WriteString("end")
	return out.String()
}

// Parameter is one formal parameter of a function definition.
type Parameter struct {
	Type  *TypeExpr
	Name  *Identifier
	Token lexer.Token
}

func (p *Parameter) Pos() lexer.Position { return p.Token.Pos }
func (p *Parameter) String() string {
	return p.Name.String() + " (" + p.Type.String() + ")"
}

// FunctionDef is "to <name phrase> with <params> and return a <type>: ...
// end". Name is the sanitized snake_case form (spec.md §3 invariant); the
// original multi-word surface phrase is kept in DisplayName for
// diagnostics and pretty-printing.
type FunctionDef struct {
	Name        string
	DisplayName string
	Params      []*Parameter
	ReturnType  *TypeExpr // nil for a procedure with no return value
	Body        *BlockStatement
	Token       lexer.Token
}

func (d *FunctionDef) topLevelNode()      {}
func (d *FunctionDef) TokenLiteral() string { return d.Token.Literal }
func (d *FunctionDef) Pos() lexer.Position  { return d.Token.Pos }
func (d *FunctionDef) String() string {
	var out bytes.Buffer
	out.WriteString("to ")
	out.WriteString(d.DisplayName)
	if len(d.Params) > 0 {
		parts := make([]string, len(d.Params))
		for i, p := range d.Params {
			parts[i] = p.String()
		}
		out.WriteString(" with ")
		out.WriteString(strings.Join(parts, ", "))
	}
	if d.ReturnType != nil {
		out.WriteString(" and return a ")
		out.WriteString(d.ReturnType.String())
	}
	out.WriteString(":\n")
	out.WriteString(d.Body.String())
	out.WriteString("end")
	return out.String()
}

// MainDef is "to do the main thing: ... end" — the program's entry point.
type MainDef struct {
	Body  *BlockStatement
	Token lexer.Token
}

func (d *MainDef) topLevelNode()      {}
func (d *MainDef) TokenLiteral() string { return d.Token.Literal }
func (d *MainDef) Pos() lexer.Position  { return d.Token.Pos }
func (d *MainDef) String() string {
	return "to do the main thing:\n" + d.Body.String() + "end"
}
