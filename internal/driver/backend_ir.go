package driver

import (
	"fmt"

	"github.com/zinc-lang/zinc/internal/ast"
	"github.com/zinc-lang/zinc/internal/bytecode"
	"github.com/zinc-lang/zinc/internal/codegen"
	"github.com/zinc-lang/zinc/internal/errors"
)

// buildIR compiles prog to the bytecode IR and, depending on opts, dumps
// the disassembly, the native IR text, or a stub object file. There is no
// full native linker in this tree (internal/codegen's object emission is
// a documented stub — see DESIGN.md), so a build on this backend with no
// emit flag is rejected with a plain error message (exit code 1) pointing
// back at the C backend instead of silently producing a broken binary.
func (p *Pipeline) buildIR(prog *ast.Program, source string, opts Options) int {
	bc := bytecode.New(source, opts.File)
	compiled := bc.Compile(prog)
	if errs := bc.Errors(); len(errs) > 0 {
		fmt.Fprint(p.Stderr, errors.FormatAll(errs, opts.Color))
		fmt.Fprintln(p.Stderr)
		return 1
	}

	if opts.Disassemble {
		fmt.Fprint(p.Stdout, bytecode.Disassemble(compiled))
	}

	switch {
	case opts.EmitObject:
		outBase := opts.Output
		if outBase == "" {
			outBase = baseName(opts.File)
		}
		if err := codegen.WriteObjectStub(outBase+".o", compiled); err != nil {
			fmt.Fprintf(p.Stderr, "zinc: cannot write object file: %v\n", err)
			return 1
		}
		return 0

	case opts.EmitLLVM:
		gen := codegen.New()
		fmt.Fprint(p.Stdout, gen.Generate(compiled))
		return 0

	case opts.Disassemble:
		return 0

	default:
		fmt.Fprintln(p.Stderr, "zinc: the native codegen backend only supports --emit-llvm, --emit-object, or --disassemble; drop those flags to build through the C backend instead")
		return 1
	}
}
