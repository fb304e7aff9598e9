package lower

import (
	"strings"

	"github.com/zinc-lang/zinc/internal/ast"
)

func (lw *Lowerer) emitStruct(s *ast.StructDef) {
	lw.writef("struct %s {\n", s.Name.Value)
	lw.indent++
	for _, f := range s.Fields {
		lw.writef("%s;\n", cDecl(f.Type, f.Name.Value))
	}
	lw.indent--
	lw.writef("};\n\n")
}

func (lw *Lowerer) funcSignature(f *ast.FunctionDef) string {
	params := make([]string, len(f.Params))
	if len(f.Params) == 0 {
		params = []string{"void"}
	}
	for i, p := range f.Params {
		params[i] = cDecl(p.Type, p.Name.Value)
	}
	return cType(f.ReturnType) + " " + f.Name + "(" + strings.Join(params, ", ") + ")"
}

func (lw *Lowerer) emitFunction(f *ast.FunctionDef) {
	lw.declTypes = map[string]*ast.TypeExpr{}
	for _, p := range f.Params {
		lw.declTypes[p.Name.Value] = p.Type
	}

	lw.writef("%s {\n", lw.funcSignature(f))
	lw.indent++
	lw.emitStatements(f.Body.Statements)
	lw.indent--
	lw.writef("}\n")
}

func (lw *Lowerer) emitMain(m *ast.MainDef) {
	lw.declTypes = map[string]*ast.TypeExpr{}
	lw.writef("int main(void) {\n")
	lw.indent++
	lw.emitStatements(m.Body.Statements)
	lw.writef("return 0;\n")
	lw.indent--
	lw.writef("}\n")
}

// repeatCounterName returns a unique per-call counter variable name for a
// `repeat N times` loop, per spec.md §4.4's "unique counter" requirement.
func (lw *Lowerer) repeatCounterName() string {
	return lw.nextTemp("rep")
}
