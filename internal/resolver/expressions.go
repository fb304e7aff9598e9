package resolver

import "github.com/zinc-lang/zinc/internal/ast"

// resolveExpr annotates every VariableRef and struct-field identifier
// reachable from expr. Literals and raw-C fragments are leaves.
func (r *Resolver) resolveExpr(expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.VariableRef:
		if kind, ok := r.lookup(e.Name.Value); ok {
			e.Name.ResolvedKind = kind
		} else if _, ok := r.structs[e.Name.Value]; ok {
			e.Name.ResolvedKind = ast.KindGlobal
		} else {
			e.Name.ResolvedKind = ast.KindPassthrough
		}

	case *ast.UnaryExpression:
		r.resolveExpr(e.Operand)

	case *ast.BinaryExpression:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.BetweenExpression:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Low)
		r.resolveExpr(e.High)

	case *ast.ArrayIndexExpression:
		r.resolveExpr(e.Array)
		r.resolveExpr(e.Index)

	case *ast.FieldAccessExpression:
		r.resolveExpr(e.Target)
		e.Field.ResolvedKind = ast.KindField

	case *ast.AddressOfExpression:
		r.resolveExpr(e.Operand)

	case *ast.DereferenceExpression:
		r.resolveExpr(e.Operand)

	case *ast.CallExpression:
		r.resolveCall(e)

	case *ast.ConcatList:
		for _, item := range e.Items {
			r.resolveExpr(item)
		}

	case *ast.RawCExpression:
		// opaque by design

	default:
		// literals: IntegerLiteral, DecimalLiteral, StringLiteral,
		// CharLiteral, BooleanLiteral, NullLiteral — nothing to resolve
	}
}
