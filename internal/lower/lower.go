// Package lower serializes a resolved Zinc AST into a single C translation
// unit string (spec.md §4.4). There is no teacher analogue for this path —
// DWScript never transpiles to C — so the emission technique (a
// bytes.Buffer plus an indent counter, a writef helper) is grounded on
// other_examples' go-highway C-AST translator rather than on go-dws.
package lower

import (
	"bytes"
	"fmt"

	"github.com/zinc-lang/zinc/internal/ast"
	"github.com/zinc-lang/zinc/internal/errors"
)

// Lowerer walks a resolved *ast.Program and emits C text. It carries just
// enough type information (declTypes, structs) to decide `.`  vs `->` for
// possessive field access and to render declarations.
type Lowerer struct {
	source, file string
	errs         []*errors.CompilerError

	buf    bytes.Buffer
	indent int

	structs     map[string]*ast.StructDef
	funcReturns map[string]*ast.TypeExpr
	declTypes   map[string]*ast.TypeExpr
	tempCounter int
}

// New creates a Lowerer. source and file are carried only for diagnostics.
func New(source, file string) *Lowerer {
	return &Lowerer{
		source:      source,
		file:        file,
		structs:     map[string]*ast.StructDef{},
		funcReturns: map[string]*ast.TypeExpr{},
	}
}

// Errors returns every LowerError collected during Lower.
func (lw *Lowerer) Errors() []*errors.CompilerError { return lw.errs }

func (lw *Lowerer) errorf(pos ast.Node, format string, args ...any) {
	lw.errs = append(lw.errs, errors.New(errors.KindLower, pos.Pos(), fmt.Sprintf(format, args...), lw.source, lw.file))
}

func (lw *Lowerer) nextTemp(hint string) string {
	lw.tempCounter++
	return fmt.Sprintf("_zn_%s%d", hint, lw.tempCounter)
}

func (lw *Lowerer) writef(format string, args ...any) {
	for i := 0; i < lw.indent; i++ {
		lw.buf.WriteString("    ")
	}
	fmt.Fprintf(&lw.buf, format, args...)
}

func (lw *Lowerer) writefRaw(format string, args ...any) {
	fmt.Fprintf(&lw.buf, format, args...)
}

// Lower emits the full translation unit. On any LowerError the partial
// text is still returned so a caller can inspect it, but the driver treats
// a non-empty Errors() as a failed lowering.
func (lw *Lowerer) Lower(prog *ast.Program) string {
	lw.buf.Reset()

	lw.emitPrelude()

	for _, d := range prog.Decls {
		if inc, ok := d.(*ast.IncludeDecl); ok {
			lw.emitInclude(inc)
		}
	}
	lw.writefRaw("\n")

	for _, d := range prog.Decls {
		if s, ok := d.(*ast.StructDef); ok {
			lw.structs[s.Name.Value] = s
		}
		if f, ok := d.(*ast.FunctionDef); ok {
			lw.funcReturns[f.Name] = f.ReturnType
		}
	}

	for _, d := range prog.Decls {
		if s, ok := d.(*ast.StructDef); ok {
			lw.emitStruct(s)
		}
	}

	for _, d := range prog.Decls {
		if f, ok := d.(*ast.FunctionDef); ok {
			lw.writef("%s;\n", lw.funcSignature(f))
		}
	}
	lw.writefRaw("\n")

	for _, d := range prog.Decls {
		if f, ok := d.(*ast.FunctionDef); ok {
			lw.emitFunction(f)
			lw.writefRaw("\n")
		}
	}

	var mainDef *ast.MainDef
	for _, d := range prog.Decls {
		if m, ok := d.(*ast.MainDef); ok {
			mainDef = m
		}
	}
	if mainDef != nil {
		lw.emitMain(mainDef)
	} else {
		lw.errorf(prog, "program has no main definition (\"to do the main thing\")")
	}

	return lw.buf.String()
}

// emitPrelude writes the fixed headers and runtime helpers every
// translation unit begins with (spec.md §4.4 "Prelude").
func (lw *Lowerer) emitPrelude() {
	lw.writefRaw("#include <stdio.h>\n")
	lw.writefRaw("#include <stdlib.h>\n")
	lw.writefRaw("#include <string.h>\n")
	lw.writefRaw("#include <math.h>\n\n")
	lw.writefRaw("#define yes 1\n")
	lw.writefRaw("#define no 0\n")
	lw.writefRaw("#ifndef NULL\n#define null ((void*)0)\n#else\n#define null NULL\n#endif\n\n")
	lw.writefRaw("static char *zn_read_line(void) {\n")
	lw.writefRaw("    size_t cap = 64, len = 0;\n")
	lw.writefRaw("    char *buf = malloc(cap);\n")
	lw.writefRaw("    int c;\n")
	lw.writefRaw("    while ((c = getchar()) != EOF && c != '\\n') {\n")
	lw.writefRaw("        if (len + 1 >= cap) { cap *= 2; buf = realloc(buf, cap); }\n")
	lw.writefRaw("        buf[len++] = (char)c;\n")
	lw.writefRaw("    }\n")
	lw.writefRaw("    buf[len] = '\\0';\n")
	lw.writefRaw("    return buf;\n")
	lw.writefRaw("}\n\n")
}

// includeHeaders is the fixed mapping table from spec.md §6.
var includeHeaders = map[string]string{
	"the standard input and output": "#include <stdio.h>",
	"the standard math functions":   "#include <math.h>",
	"the string functions":          "#include <string.h>",
	"the random functions":          "#include <stdlib.h>",
	"the graphics library":          `#include "raylib.h"`,
}

func (lw *Lowerer) emitInclude(inc *ast.IncludeDecl) {
	if header, ok := includeHeaders[inc.Target]; ok {
		lw.writefRaw("%s\n", header)
		return
	}
	// "include the file called X" (X captured from a string literal token,
	// whose Literal field already holds the unescaped text with no
	// surrounding quotes) -> #include "X.h"
	if name, ok := quotedFileTarget(inc.Target); ok {
		lw.writefRaw("#include \"%s.h\"\n", name)
		return
	}
	lw.errorf(inc, "unrecognized include target %q", inc.Target)
}

func quotedFileTarget(target string) (string, bool) {
	const prefix = "the file called "
	if len(target) <= len(prefix) || target[:len(prefix)] != prefix {
		return "", false
	}
	return target[len(prefix):], true
}
