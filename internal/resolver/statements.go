package resolver

import "github.com/zinc-lang/zinc/internal/ast"

func (r *Resolver) resolveStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VarDeclStatement:
		if s.Init != nil {
			r.resolveExpr(s.Init)
		}
		r.declare(s.Name.Value, ast.KindLocal, s.Name.Pos())
		s.Name.ResolvedKind = ast.KindLocal

	case *ast.AssignmentStatement:
		r.resolveExpr(s.Target)
		r.resolveExpr(s.Value)

	case *ast.CompoundAssignStatement:
		r.resolveExpr(s.Target)
		if s.Amount != nil {
			r.resolveExpr(s.Amount)
		}

	case *ast.IfStatement:
		r.resolveExpr(s.Condition)
		r.resolveBlock(s.Consequence)
		switch alt := s.Alternative.(type) {
		case *ast.BlockStatement:
			r.resolveBlock(alt)
		case *ast.IfStatement:
			r.resolveStatement(alt)
		}

	case *ast.WhileStatement:
		r.resolveExpr(s.Condition)
		r.resolveBlock(s.Body)

	case *ast.ForRangeStatement:
		r.resolveExpr(s.From)
		r.resolveExpr(s.To)
		r.pushScope()
		r.declare(s.Variable.Value, ast.KindLocal, s.Variable.Pos())
		s.Variable.ResolvedKind = ast.KindLocal
		for _, inner := range s.Body.Statements {
			r.resolveStatement(inner)
		}
		r.popScope()

	case *ast.ForEachStatement:
		r.resolveExpr(s.List)
		r.pushScope()
		r.declare(s.Variable.Value, ast.KindLocal, s.Variable.Pos())
		s.Variable.ResolvedKind = ast.KindLocal
		for _, inner := range s.Body.Statements {
			r.resolveStatement(inner)
		}
		r.popScope()

	case *ast.RepeatStatement:
		r.resolveExpr(s.Count)
		r.resolveBlock(s.Body)

	case *ast.BreakStatement, *ast.ContinueStatement:
		// no identifiers to resolve

	case *ast.ReturnStatement:
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}

	case *ast.CallStatement:
		r.resolveCall(s.Call)

	case *ast.InputStatement:
		r.resolveAssignTarget(s.Target)

	case *ast.OutputStatement:
		for _, item := range s.Values.Items {
			r.resolveExpr(item)
		}

	case *ast.AllocateStatement:
		r.resolveExpr(s.Count)
		r.declare(s.Target.Value, ast.KindLocal, s.Target.Pos())
		s.Target.ResolvedKind = ast.KindLocal

	case *ast.FreeStatement:
		r.resolveExpr(s.Target)

	case *ast.FileStatement:
		if s.Path != nil {
			r.resolveExpr(s.Path)
		}
		switch s.Op {
		case ast.FileOpen:
			r.resolveAssignTarget(s.Handle)
		case ast.FileClose:
			r.resolveAssignTarget(s.Handle)
		case ast.FileReadLine:
			r.resolveAssignTarget(s.Handle)
			r.resolveAssignTarget(s.Target)
		}

	case *ast.GraphicsCallStatement:
		r.resolveCall(s.Call)

	case *ast.RawCStatement:
		// opaque by design: never touched by the resolver

	case *ast.ExpressionStatement:
		r.resolveExpr(s.Expr)
	}
}

func (r *Resolver) resolveCall(call *ast.CallExpression) {
	for _, arg := range call.Arguments {
		r.resolveExpr(arg)
	}
	if _, ok := r.functions[sanitize(call.Function.Value)]; ok {
		call.Function.ResolvedKind = ast.KindFunction
	}
}

// sanitize mirrors the parser's phrase-to-snake_case folding so a call
// site's space-joined display phrase can be checked against the function
// table keyed by sanitized name.
func sanitize(phrase string) string {
	out := make([]byte, 0, len(phrase))
	for i := 0; i < len(phrase); i++ {
		c := phrase[i]
		if c == ' ' {
			out = append(out, '_')
			continue
		}
		if c >= 'A' && c <= 'Z' {
			c = c - 'A' + 'a'
		}
		out = append(out, c)
	}
	return string(out)
}
