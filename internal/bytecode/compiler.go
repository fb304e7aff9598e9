package bytecode

import (
	"fmt"

	"github.com/zinc-lang/zinc/internal/ast"
	"github.com/zinc-lang/zinc/internal/errors"
)

// Compiler translates a resolved *ast.Program into bytecode, one Function
// at a time. It carries no general type checker (spec.md §1's Non-goals);
// operand types needed to pick an opcode family are inferred on a
// best-effort basis from declared variable/parameter types, not verified.
type Compiler struct {
	source, file string
	errs         []*errors.CompilerError
	funcReturns  map[string]bool
	tempCounter  int

	b         *builder
	declTypes map[string]*ast.TypeExpr
}

// New creates a Compiler. source and file are carried only for diagnostics.
func New(source, file string) *Compiler {
	return &Compiler{source: source, file: file, funcReturns: map[string]bool{}}
}

// Errors returns every LowerError collected during Compile.
func (c *Compiler) Errors() []*errors.CompilerError { return c.errs }

func (c *Compiler) errorf(pos ast.Node, format string, args ...any) {
	c.errs = append(c.errs, errors.New(errors.KindLower, pos.Pos(), fmt.Sprintf(format, args...), c.source, c.file))
}

func (c *Compiler) nextTemp(hint string) string {
	c.tempCounter++
	return fmt.Sprintf("__%s%d", hint, c.tempCounter)
}

// Compile lowers every function definition and the main entry point into a
// Program. On any LowerError the returned Program is still populated (best
// effort) so a caller wanting partial diagnostics can inspect it, but the
// driver must treat a non-empty Errors() as a failed compilation.
func (c *Compiler) Compile(prog *ast.Program) *Program {
	out := &Program{}
	var mainDef *ast.MainDef

	for _, d := range prog.Decls {
		if fn, ok := d.(*ast.FunctionDef); ok {
			c.funcReturns[fn.Name] = fn.ReturnType != nil
		}
		if m, ok := d.(*ast.MainDef); ok {
			mainDef = m
		}
	}

	for _, d := range prog.Decls {
		fn, ok := d.(*ast.FunctionDef)
		if !ok {
			continue
		}
		out.Functions = append(out.Functions, c.compileFunction(fn))
	}

	if mainDef != nil {
		out.Main = c.compileMain(mainDef)
	}
	return out
}

func (c *Compiler) compileFunction(f *ast.FunctionDef) *Function {
	c.b = newBuilder(f.Name)
	c.declTypes = map[string]*ast.TypeExpr{}
	c.b.fn.HasReturn = f.ReturnType != nil

	for i, p := range f.Params {
		c.b.paramSlot(p.Name.Value, i)
		c.b.localSlot(p.Name.Value)
		c.declTypes[p.Name.Value] = p.Type
	}
	c.compileBlockStatements(f.Body.Statements)
	c.b.emit(Instruction{Op: OpReturnVoid})
	return c.b.fn
}

func (c *Compiler) compileMain(m *ast.MainDef) *Function {
	c.b = newBuilder("main")
	c.declTypes = map[string]*ast.TypeExpr{}
	c.compileBlockStatements(m.Body.Statements)
	c.b.emit(Instruction{Op: OpReturnVoid})
	return c.b.fn
}

func (c *Compiler) compileBlockStatements(stmts []ast.Statement) {
	for _, s := range stmts {
		c.compileStatement(s)
	}
}
