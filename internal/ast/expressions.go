package ast

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/zinc-lang/zinc/internal/lexer"
)

// IntegerLiteral is an integer literal expression: 42.
type IntegerLiteral struct {
	Token lexer.Token
	Value int64
}

func (e *IntegerLiteral) expressionNode()      {}
func (e *IntegerLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *IntegerLiteral) Pos() lexer.Position  { return e.Token.Pos }
func (e *IntegerLiteral) String() string       { return strconv.FormatInt(e.Value, 10) }

// DecimalLiteral is a decimal literal expression: 3.14.
type DecimalLiteral struct {
	Token lexer.Token
	Value float64
}

func (e *DecimalLiteral) expressionNode()      {}
func (e *DecimalLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *DecimalLiteral) Pos() lexer.Position  { return e.Token.Pos }
func (e *DecimalLiteral) String() string       { return strconv.FormatFloat(e.Value, 'g', -1, 64) }

// StringLiteral is a double-quoted string literal expression.
type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (e *StringLiteral) expressionNode()      {}
func (e *StringLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *StringLiteral) Pos() lexer.Position  { return e.Token.Pos }
func (e *StringLiteral) String() string       { return strconv.Quote(e.Value) }

// CharLiteral is a single-quoted character literal expression.
type CharLiteral struct {
	Token lexer.Token
	Value rune
}

func (e *CharLiteral) expressionNode()      {}
func (e *CharLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *CharLiteral) Pos() lexer.Position  { return e.Token.Pos }
func (e *CharLiteral) String() string       { return "'" + string(e.Value) + "'" }

// BooleanLiteral is yes/no.
type BooleanLiteral struct {
	Token lexer.Token
	Value bool
}

func (e *BooleanLiteral) expressionNode()      {}
func (e *BooleanLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *BooleanLiteral) Pos() lexer.Position  { return e.Token.Pos }
func (e *BooleanLiteral) String() string {
	if e.Value {
		return "yes"
	}
	return "no"
}

// NullLiteral is the null/nil pointer literal.
type NullLiteral struct {
	Token lexer.Token
}

func (e *NullLiteral) expressionNode()      {}
func (e *NullLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *NullLiteral) Pos() lexer.Position  { return e.Token.Pos }
func (e *NullLiteral) String() string       { return "null" }

// VariableRef is a reference to a variable, parameter, or global by name.
// The resolver annotates Name.ResolvedKind once scopes are known.
type VariableRef struct {
	Name *Identifier
}

func (e *VariableRef) expressionNode()      {}
func (e *VariableRef) TokenLiteral() string { return e.Name.TokenLiteral() }
func (e *VariableRef) Pos() lexer.Position  { return e.Name.Pos() }
func (e *VariableRef) String() string       { return e.Name.String() }

// UnaryOp is one of the prefix unary operators: negative, not, the square
// root of, the absolute value of, the length of, the first item in, the
// last item in.
type UnaryOp int

const (
	UnaryNegate UnaryOp = iota
	UnaryNot
	UnarySqrt
	UnaryAbs
	UnaryLength
	UnaryFirst
	UnaryLast
)

func (op UnaryOp) String() string {
	switch op {
	case UnaryNegate:
		return "negative"
	case UnaryNot:
		return "not"
	case UnarySqrt:
		return "the square root of"
	case UnaryAbs:
		return "the absolute value of"
	case UnaryLength:
		return "the length of"
	case UnaryFirst:
		return "the first item in"
	case UnaryLast:
		return "the last item in"
	default:
		return "?"
	}
}

// UnaryExpression applies a prefix unary operator to an operand.
type UnaryExpression struct {
	Operand Expression
	Token   lexer.Token
	Op      UnaryOp
}

func (e *UnaryExpression) expressionNode()      {}
func (e *UnaryExpression) TokenLiteral() string { return e.Token.Literal }
func (e *UnaryExpression) Pos() lexer.Position  { return e.Token.Pos }
func (e *UnaryExpression) String() string {
	return e.Op.String() + " " + e.Operand.String()
}

// BinaryOp identifies an arithmetic, comparison, or logical operator.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpEquals
	OpNotEqual
	OpGreater
	OpLess
	OpAtLeast
	OpAtMost
	OpAnd
	OpOr
)

var binaryOpNames = map[BinaryOp]string{
	OpAdd: "plus", OpSub: "minus", OpMul: "times", OpDiv: "divided by",
	OpMod: "modulo", OpPow: "to the power of", OpEquals: "equals",
	OpNotEqual: "is not equal to", OpGreater: "is greater than",
	OpLess: "is less than", OpAtLeast: "is at least", OpAtMost: "is at most",
	OpAnd: "and", OpOr: "or",
}

func (op BinaryOp) String() string { return binaryOpNames[op] }

// BinaryExpression is a left-to-right binary operator application.
// Precedence is resolved by the parser (spec.md §4.2); the AST node itself
// carries no precedence information.
type BinaryExpression struct {
	Left, Right Expression
	Token       lexer.Token
	Op          BinaryOp
}

func (e *BinaryExpression) expressionNode()      {}
func (e *BinaryExpression) TokenLiteral() string { return e.Token.Literal }
func (e *BinaryExpression) Pos() lexer.Position  { return e.Token.Pos }
func (e *BinaryExpression) String() string {
	return "(" + e.Left.String() + " " + e.Op.String() + " " + e.Right.String() + ")"
}

// BetweenExpression is the ternary-like "X is between A and B" phrase,
// desugared at parse time into a composite node rather than two chained
// comparisons, so the resolver and lowering only need to see one shape.
type BetweenExpression struct {
	Value, Low, High Expression
	Token            lexer.Token
}

func (e *BetweenExpression) expressionNode()      {}
func (e *BetweenExpression) TokenLiteral() string { return e.Token.Literal }
func (e *BetweenExpression) Pos() lexer.Position  { return e.Token.Pos }
func (e *BetweenExpression) String() string {
	return e.Value.String() + " is between " + e.Low.String() + " and " + e.High.String()
}

// ArrayIndexExpression is a one-level array element access.
type ArrayIndexExpression struct {
	Array Expression
	Index Expression
	Token lexer.Token
}

func (e *ArrayIndexExpression) expressionNode()      {}
func (e *ArrayIndexExpression) TokenLiteral() string { return e.Token.Literal }
func (e *ArrayIndexExpression) Pos() lexer.Position  { return e.Token.Pos }
func (e *ArrayIndexExpression) String() string {
	return "item number " + e.Index.String() + " in " + e.Array.String()
}

// FieldAccessExpression is a struct field access written possessively
// ("bob's name"). Dot syntax ("bob.name") does not produce this node: the
// lexer has no token for '.' outside a number and reports it as an error.
type FieldAccessExpression struct {
	Target Expression
	Field  *Identifier
	Token  lexer.Token
}

func (e *FieldAccessExpression) expressionNode()      {}
func (e *FieldAccessExpression) TokenLiteral() string { return e.Token.Literal }
func (e *FieldAccessExpression) Pos() lexer.Position  { return e.Token.Pos }
func (e *FieldAccessExpression) String() string {
	return e.Target.String() + "'s " + e.Field.String()
}

// AddressOfExpression is "the address of X".
type AddressOfExpression struct {
	Operand Expression
	Token   lexer.Token
}

func (e *AddressOfExpression) expressionNode()      {}
func (e *AddressOfExpression) TokenLiteral() string { return e.Token.Literal }
func (e *AddressOfExpression) Pos() lexer.Position  { return e.Token.Pos }
func (e *AddressOfExpression) String() string       { return "the address of " + e.Operand.String() }

// DereferenceExpression is "the value at P".
type DereferenceExpression struct {
	Operand Expression
	Token   lexer.Token
}

func (e *DereferenceExpression) expressionNode()      {}
func (e *DereferenceExpression) TokenLiteral() string { return e.Token.Literal }
func (e *DereferenceExpression) Pos() lexer.Position  { return e.Token.Pos }
func (e *DereferenceExpression) String() string       { return "the value at " + e.Operand.String() }

// CallExpression invokes a function by its resolved multi-word name.
type CallExpression struct {
	Function  *Identifier
	Arguments []Expression
	Token     lexer.Token
}

func (e *CallExpression) expressionNode()      {}
func (e *CallExpression) TokenLiteral() string { return e.Token.Literal }
func (e *CallExpression) Pos() lexer.Position  { return e.Token.Pos }
func (e *CallExpression) String() string {
	var out bytes.Buffer
	out.WriteString("the result of ")
	out.WriteString(e.Function.String())
	args := make([]string, len(e.Arguments))
	for i, a := range e.Arguments {
		args[i] = a.String()
	}
	out.WriteString(" with ")
	out.WriteString(strings.Join(args, ", "))
	return out.String()
}

// RawCExpression is a raw-C passthrough fragment captured verbatim and
// emitted unchanged during lowering (spec.md §4.2 "C fallback").
type RawCExpression struct {
	Token lexer.Token
	Text  string
}

func (e *RawCExpression) expressionNode()      {}
func (e *RawCExpression) TokenLiteral() string { return e.Token.Literal }
func (e *RawCExpression) Pos() lexer.Position  { return e.Token.Pos }
func (e *RawCExpression) String() string       { return e.Text }

// ConcatList is the ordered list of typed operands of a say/print
// concatenation (spec.md §4.2 "Concatenation lists").
type ConcatList struct {
	Items []Expression
	Token lexer.Token
}

func (e *ConcatList) expressionNode()      {}
func (e *ConcatList) TokenLiteral() string { return e.Token.Literal }
func (e *ConcatList) Pos() lexer.Position  { return e.Token.Pos }
func (e *ConcatList) String() string {
	parts := make([]string, len(e.Items))
	for i, it := range e.Items {
		parts[i] = it.String()
	}
	return strings.Join(parts, " and then ")
}
