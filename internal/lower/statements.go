package lower

import (
	"strings"

	"github.com/zinc-lang/zinc/internal/ast"
)

func (lw *Lowerer) emitStatements(stmts []ast.Statement) {
	for _, s := range stmts {
		lw.emitStatement(s)
	}
}

func (lw *Lowerer) emitStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VarDeclStatement:
		lw.declTypes[s.Name.Value] = s.Type
		if s.Init != nil {
			lw.writef("%s = %s;\n", cDecl(s.Type, s.Name.Value), lw.cExpr(s.Init))
		} else {
			lw.writef("%s;\n", cDecl(s.Type, s.Name.Value))
		}

	case *ast.AssignmentStatement:
		lw.writef("%s = %s;\n", lw.cExpr(s.Target), lw.cExpr(s.Value))

	case *ast.CompoundAssignStatement:
		amount := "1"
		if s.Amount != nil {
			amount = lw.cExpr(s.Amount)
		}
		lw.writef("%s %s= %s;\n", lw.cExpr(s.Target), compoundCOp(s.Op), amount)

	case *ast.IfStatement:
		lw.writef("if (%s) {\n", lw.cExpr(s.Condition))
		lw.indent++
		lw.emitStatements(s.Consequence.Statements)
		lw.indent--
		switch alt := s.Alternative.(type) {
		case nil:
			lw.writef("}\n")
		case *ast.BlockStatement:
			lw.writef("} else {\n")
			lw.indent++
			lw.emitStatements(alt.Statements)
			lw.indent--
			lw.writef("}\n")
		case *ast.IfStatement:
			lw.writef("} else ")
			lw.emitElseIf(alt)
		}

	case *ast.WhileStatement:
		lw.writef("while (%s) {\n", lw.cExpr(s.Condition))
		lw.indent++
		lw.emitStatements(s.Body.Statements)
		lw.indent--
		lw.writef("}\n")

	case *ast.ForRangeStatement:
		lw.declTypes[s.Variable.Value] = &ast.TypeExpr{Kind: ast.KindInteger}
		name := s.Variable.Value
		from, to := lw.cExpr(s.From), lw.cExpr(s.To)
		if s.Descend {
			lw.writef("for (int %s = (%s); %s >= (%s); %s--) {\n", name, from, name, to, name)
		} else {
			lw.writef("for (int %s = (%s); %s <= (%s); %s++) {\n", name, from, name, to, name)
		}
		lw.indent++
		lw.emitStatements(s.Body.Statements)
		lw.indent--
		lw.writef("}\n")

	case *ast.ForEachStatement:
		lw.emitForEach(s)

	case *ast.RepeatStatement:
		counter := lw.repeatCounterName()
		lw.writef("for (int %s = 0; %s < (%s); %s++) {\n", counter, counter, lw.cExpr(s.Count), counter)
		lw.indent++
		lw.emitStatements(s.Body.Statements)
		lw.indent--
		lw.writef("}\n")

	case *ast.BreakStatement:
		lw.writef("break;\n")

	case *ast.ContinueStatement:
		lw.writef("continue;\n")

	case *ast.ReturnStatement:
		if s.Value != nil {
			lw.writef("return %s;\n", lw.cExpr(s.Value))
		} else {
			lw.writef("return;\n")
		}

	case *ast.CallStatement:
		lw.writef("%s;\n", lw.cCall(s.Call))

	case *ast.InputStatement:
		if s.Kind == ast.InputNumber {
			lw.declTypes[s.Target.Value] = &ast.TypeExpr{Kind: ast.KindInteger}
			lw.writef("scanf(\"%%d\", &%s);\n", s.Target.Value)
		} else {
			lw.declTypes[s.Target.Value] = &ast.TypeExpr{Kind: ast.KindString}
			lw.writef("%s = zn_read_line();\n", s.Target.Value)
		}

	case *ast.OutputStatement:
		lw.emitOutput(s)

	case *ast.AllocateStatement:
		lw.declTypes[s.Target.Value] = &ast.TypeExpr{Kind: ast.KindPointer, Elem: s.ElemType}
		lw.writef("%s = malloc(sizeof(%s) * (%s));\n", cDecl(&ast.TypeExpr{Kind: ast.KindPointer, Elem: s.ElemType}, s.Target.Value), cType(s.ElemType), lw.cExpr(s.Count))

	case *ast.FreeStatement:
		lw.writef("free(%s);\n", lw.cExpr(s.Target))

	case *ast.FileStatement:
		lw.emitFileOp(s)

	case *ast.GraphicsCallStatement:
		lw.writef("%s;\n", lw.cCall(s.Call))

	case *ast.RawCStatement:
		lw.writef("%s\n", s.Text)

	case *ast.ExpressionStatement:
		lw.writef("%s;\n", lw.cExpr(s.Expr))
	}
}

func (lw *Lowerer) emitElseIf(s *ast.IfStatement) {
	lw.writef("if (%s) {\n", lw.cExpr(s.Condition))
	lw.indent++
	lw.emitStatements(s.Consequence.Statements)
	lw.indent--
	switch alt := s.Alternative.(type) {
	case nil:
		lw.writef("}\n")
	case *ast.BlockStatement:
		lw.writef("} else {\n")
		lw.indent++
		lw.emitStatements(alt.Statements)
		lw.indent--
		lw.writef("}\n")
	case *ast.IfStatement:
		lw.writef("} else ")
		lw.emitElseIf(alt)
	}
}

func compoundCOp(op ast.CompoundOp) string {
	switch op {
	case ast.CompoundAdd:
		return "+"
	case ast.CompoundSubtract:
		return "-"
	case ast.CompoundMultiply:
		return "*"
	default: // ast.CompoundDivide
		return "/"
	}
}

// emitForEach requires the iterated list's length to be known at compile
// time (a fixed-size list), matching the bytecode path's resolution of the
// same Open Question (spec.md §9) for consistency across both backends.
func (lw *Lowerer) emitForEach(s *ast.ForEachStatement) {
	n, ok := lw.fixedArrayLen(s.List)
	if !ok {
		lw.errorf(s, "for-each-in-list requires a fixed-size list whose length is known at compile time")
		return
	}
	idx := lw.nextTemp("idx")
	lw.declTypes[s.Variable.Value] = lw.elemTypeOf(s.List)
	lw.writef("for (int %s = 0; %s < %d; %s++) {\n", idx, idx, n, idx)
	lw.indent++
	lw.writef("%s = %s[%s];\n", cDecl(lw.declTypes[s.Variable.Value], s.Variable.Value), lw.cExpr(s.List), idx)
	lw.emitStatements(s.Body.Statements)
	lw.indent--
	lw.writef("}\n")
}

func (lw *Lowerer) fixedArrayLen(expr ast.Expression) (int, bool) {
	ref, ok := expr.(*ast.VariableRef)
	if !ok {
		return 0, false
	}
	t, ok := lw.declTypes[ref.Name.Value]
	if !ok || t.Kind != ast.KindFixedArr {
		return 0, false
	}
	return t.Len, true
}

func (lw *Lowerer) elemTypeOf(expr ast.Expression) *ast.TypeExpr {
	if ref, ok := expr.(*ast.VariableRef); ok {
		if t, ok := lw.declTypes[ref.Name.Value]; ok && t.Elem != nil {
			return t.Elem
		}
	}
	return &ast.TypeExpr{Kind: ast.KindInteger}
}

func (lw *Lowerer) emitOutput(s *ast.OutputStatement) {
	var fmtParts []string
	var args []string
	for _, item := range s.Values.Items {
		fmtParts = append(fmtParts, lw.formatSpec(item))
		args = append(args, lw.cExpr(item))
	}
	format := strings.Join(fmtParts, "") + "\\n"
	if len(args) == 0 {
		lw.writef("printf(\"%s\");\n", format)
		return
	}
	lw.writef("printf(\"%s\", %s);\n", format, strings.Join(args, ", "))
}

// formatSpec picks a printf conversion for an output operand by its
// best-effort inferred type (spec.md §4.4 "fmt from operand types").
func (lw *Lowerer) formatSpec(expr ast.Expression) string {
	switch lw.inferType(expr) {
	case ast.KindFloating:
		return "%g"
	case ast.KindString:
		return "%s"
	case ast.KindCharacter:
		return "%c"
	default:
		return "%d"
	}
}

func (lw *Lowerer) emitFileOp(s *ast.FileStatement) {
	switch s.Op {
	case ast.FileOpen:
		lw.writef("FILE *%s = fopen(%s, \"r\");\n", s.Handle.Value, lw.cExpr(s.Path))
	case ast.FileClose:
		lw.writef("fclose(%s);\n", s.Handle.Value)
	default: // ast.FileReadLine
		lw.declTypes[s.Target.Value] = &ast.TypeExpr{Kind: ast.KindString}
		tmp := lw.nextTemp("line")
		lw.writef("char %s[1024];\n", tmp)
		lw.writef("%s = (fgets(%s, sizeof(%s), %s) != NULL) ? strdup(%s) : NULL;\n",
			cDecl(&ast.TypeExpr{Kind: ast.KindString}, s.Target.Value), tmp, tmp, s.Handle.Value, tmp)
	}
}
