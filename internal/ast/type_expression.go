package ast

import "github.com/zinc-lang/zinc/internal/lexer"

// BaseKind is one of Zinc's closed set of base type kinds (spec.md §3).
type BaseKind int

const (
	KindVoid BaseKind = iota
	KindInteger
	KindFloating
	KindCharacter
	KindString
	KindBoolean
	KindPointer  // pointer-to-T; Elem names T
	KindFixedArr // fixed-array-of-N-T; Elem names T, Len the N
	KindOpenArr  // open-array-of-T; Elem names T
	KindStruct   // user-defined structure; Name identifies it
)

func (k BaseKind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindInteger:
		return "a number"
	case KindFloating:
		return "a decimal"
	case KindCharacter:
		return "a character"
	case KindString:
		return "text"
	case KindBoolean:
		return "yes/no"
	case KindPointer:
		return "pointer"
	case KindFixedArr:
		return "fixed array"
	case KindOpenArr:
		return "list"
	case KindStruct:
		return "struct"
	default:
		return "unknown"
	}
}

// TypeExpr is a type as written in source: a base kind, or a single-level
// constructor (pointer/fixed-array/open-array) over another TypeExpr.
// There are no generics and no type variables (spec.md §3).
type TypeExpr struct {
	Token lexer.Token
	Elem  *TypeExpr // set for KindPointer, KindFixedArr, KindOpenArr
	Name  string     // set for KindStruct
	Len   int        // set for KindFixedArr
	Kind  BaseKind
}

func (t *TypeExpr) TokenLiteral() string { return t.Token.Literal }
func (t *TypeExpr) Pos() lexer.Position  { return t.Token.Pos }
func (t *TypeExpr) String() string {
	switch t.Kind {
	case KindPointer:
		return "pointer to " + t.Elem.String()
	case KindFixedArr:
		return "fixed array of " + t.Elem.String()
	case KindOpenArr:
		return "list of " + t.Elem.String()
	case KindStruct:
		return t.Name
	default:
		return t.Kind.String()
	}
}
