package lower

import (
	"strconv"

	"github.com/zinc-lang/zinc/internal/ast"
)

// cType renders a Zinc TypeExpr as a C type name. Fixed-array and
// open-array types are handled at the declaration site (cDecl) instead,
// since C's array/pointer declarator syntax isn't a simple prefix type.
func cType(t *ast.TypeExpr) string {
	if t == nil {
		return "void"
	}
	switch t.Kind {
	case ast.KindVoid:
		return "void"
	case ast.KindInteger, ast.KindBoolean:
		return "int"
	case ast.KindFloating:
		return "double"
	case ast.KindCharacter:
		return "char"
	case ast.KindString:
		return "char*"
	case ast.KindPointer:
		return cType(t.Elem) + "*"
	case ast.KindFixedArr, ast.KindOpenArr:
		return cType(t.Elem) + "*"
	case ast.KindStruct:
		return "struct " + t.Name
	default:
		return "int"
	}
}

// cDecl renders a full C declarator for a name of the given type,
// handling the fixed-array "T name[N]" suffix form.
func cDecl(t *ast.TypeExpr, name string) string {
	if t != nil && t.Kind == ast.KindFixedArr {
		return cType(t.Elem) + " " + name + "[" + strconv.Itoa(t.Len) + "]"
	}
	return cType(t) + " " + name
}

// isPointerTyped reports whether expr's static type (per declTypes) is a
// pointer, used to pick `.` vs `->` for possessive field access.
func (lw *Lowerer) isPointerTyped(expr ast.Expression) bool {
	ref, ok := expr.(*ast.VariableRef)
	if !ok {
		return false
	}
	t, ok := lw.declTypes[ref.Name.Value]
	return ok && t.Kind == ast.KindPointer
}
