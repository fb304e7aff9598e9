package lower

import (
	"strconv"
	"strings"

	"github.com/zinc-lang/zinc/internal/ast"
)

// cExpr renders expr as a parenthesized C expression fragment.
func (lw *Lowerer) cExpr(expr ast.Expression) string {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return strconv.FormatInt(e.Value, 10)
	case *ast.DecimalLiteral:
		return strconv.FormatFloat(e.Value, 'g', -1, 64)
	case *ast.StringLiteral:
		return strconv.Quote(e.Value)
	case *ast.CharLiteral:
		return "'" + escapeChar(e.Value) + "'"
	case *ast.BooleanLiteral:
		if e.Value {
			return "yes"
		}
		return "no"
	case *ast.NullLiteral:
		return "null"

	case *ast.VariableRef:
		return e.Name.Value

	case *ast.UnaryExpression:
		return lw.cUnary(e)

	case *ast.BinaryExpression:
		if e.Op == ast.OpPow {
			return "pow(" + lw.cExpr(e.Left) + ", " + lw.cExpr(e.Right) + ")"
		}
		return "(" + lw.cExpr(e.Left) + " " + cBinaryOp(e.Op) + " " + lw.cExpr(e.Right) + ")"

	case *ast.BetweenExpression:
		v := lw.cExpr(e.Value)
		return "(" + v + " >= " + lw.cExpr(e.Low) + " && " + v + " <= " + lw.cExpr(e.High) + ")"

	case *ast.ArrayIndexExpression:
		return lw.cExpr(e.Array) + "[" + lw.cExpr(e.Index) + "]"

	case *ast.FieldAccessExpression:
		if lw.isPointerTyped(e.Target) {
			return lw.cExpr(e.Target) + "->" + e.Field.Value
		}
		return lw.cExpr(e.Target) + "." + e.Field.Value

	case *ast.AddressOfExpression:
		return "(&" + lw.cExpr(e.Operand) + ")"

	case *ast.DereferenceExpression:
		return "(*" + lw.cExpr(e.Operand) + ")"

	case *ast.CallExpression:
		return lw.cCall(e)

	case *ast.RawCExpression:
		return e.Text

	default:
		lw.errorf(expr, "unsupported expression in C lowering")
		return "0"
	}
}

func (lw *Lowerer) cUnary(e *ast.UnaryExpression) string {
	switch e.Op {
	case ast.UnaryNegate:
		return "(-" + lw.cExpr(e.Operand) + ")"
	case ast.UnaryNot:
		return "(!" + lw.cExpr(e.Operand) + ")"
	case ast.UnarySqrt:
		return "sqrt(" + lw.cExpr(e.Operand) + ")"
	case ast.UnaryAbs:
		if lw.inferType(e.Operand) == ast.KindFloating {
			return "fabs(" + lw.cExpr(e.Operand) + ")"
		}
		return "abs(" + lw.cExpr(e.Operand) + ")"
	case ast.UnaryLength:
		n, ok := lw.fixedArrayLen(e.Operand)
		if !ok {
			lw.errorf(e, "the length of an open array is not known at compile time")
			return "0"
		}
		return strconv.Itoa(n)
	case ast.UnaryFirst:
		return lw.cExpr(e.Operand) + "[0]"
	case ast.UnaryLast:
		n, ok := lw.fixedArrayLen(e.Operand)
		if !ok {
			lw.errorf(e, "the last item in an open array is not known at compile time")
			return "0"
		}
		return lw.cExpr(e.Operand) + "[" + strconv.Itoa(n-1) + "]"
	default:
		return "0"
	}
}

func (lw *Lowerer) cCall(call *ast.CallExpression) string {
	name := sanitizePhrase(call.Function.Value)
	args := make([]string, len(call.Arguments))
	for i, a := range call.Arguments {
		args[i] = lw.cExpr(a)
	}
	return name + "(" + strings.Join(args, ", ") + ")"
}

// sanitizePhrase joins a multi-word surface phrase into a legal C
// identifier, mirroring the parser's own name-sanitization scheme for
// function definitions (spec.md §3's "collapse to snake-case" invariant)
// so call sites agree with definitions on the emitted symbol name.
func sanitizePhrase(phrase string) string {
	return strings.ReplaceAll(strings.ToLower(phrase), " ", "_")
}

func escapeChar(r rune) string {
	switch r {
	case '\'':
		return "\\'"
	case '\\':
		return "\\\\"
	case '\n':
		return "\\n"
	case '\t':
		return "\\t"
	default:
		return string(r)
	}
}

func cBinaryOp(op ast.BinaryOp) string {
	switch op {
	case ast.OpAdd:
		return "+"
	case ast.OpSub:
		return "-"
	case ast.OpMul:
		return "*"
	case ast.OpDiv:
		return "/"
	case ast.OpMod:
		return "%"
	case ast.OpPow:
		return "" // handled in cExpr via pow(), never reached
	case ast.OpEquals:
		return "=="
	case ast.OpNotEqual:
		return "!="
	case ast.OpGreater:
		return ">"
	case ast.OpLess:
		return "<"
	case ast.OpAtLeast:
		return ">="
	case ast.OpAtMost:
		return "<="
	case ast.OpAnd:
		return "&&"
	default: // ast.OpOr
		return "||"
	}
}

// inferType is the C-lowering path's best-effort operand type guess, used
// only to pick a printf conversion or abs/fabs variant — not a type
// checker (spec.md §1 Non-goals). Mirrors internal/bytecode's inferType.
func (lw *Lowerer) inferType(expr ast.Expression) ast.BaseKind {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return ast.KindInteger
	case *ast.DecimalLiteral:
		return ast.KindFloating
	case *ast.StringLiteral:
		return ast.KindString
	case *ast.CharLiteral:
		return ast.KindCharacter
	case *ast.BooleanLiteral:
		return ast.KindBoolean
	case *ast.NullLiteral:
		return ast.KindPointer
	case *ast.VariableRef:
		if t, ok := lw.declTypes[e.Name.Value]; ok {
			return t.Kind
		}
		return ast.KindInteger
	case *ast.UnaryExpression:
		return lw.inferType(e.Operand)
	case *ast.BinaryExpression:
		if lk := lw.inferType(e.Left); lk == ast.KindFloating {
			return lk
		}
		return lw.inferType(e.Right)
	case *ast.ArrayIndexExpression:
		return lw.elemTypeOf(e.Array).Kind
	case *ast.DereferenceExpression:
		if ref, ok := e.Operand.(*ast.VariableRef); ok {
			if t, ok := lw.declTypes[ref.Name.Value]; ok && t.Kind == ast.KindPointer {
				return t.Elem.Kind
			}
		}
		return ast.KindInteger
	default:
		return ast.KindInteger
	}
}
