package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zinc-lang/zinc/internal/ast"
	"github.com/zinc-lang/zinc/internal/errors"
	"github.com/zinc-lang/zinc/internal/lower"
)

// buildC lowers prog to a C translation unit and, unless --emit-c was
// requested, hands it to the system compiler (spec.md §4.4, §6).
func (p *Pipeline) buildC(prog *ast.Program, source string, opts Options) int {
	lw := lower.New(source, opts.File)
	unit := lw.Lower(prog)
	if errs := lw.Errors(); len(errs) > 0 {
		fmt.Fprint(p.Stderr, errors.FormatAll(errs, opts.Color))
		fmt.Fprintln(p.Stderr)
		return 1
	}

	if opts.EmitC {
		return p.emitC(unit, opts.Output)
	}

	outBase := opts.Output
	if outBase == "" {
		outBase = baseName(opts.File)
	}

	cPath := outBase + ".c"
	if err := os.WriteFile(cPath, []byte(unit), 0o644); err != nil {
		fmt.Fprintf(p.Stderr, "zinc: cannot write %s: %v\n", cPath, err)
		return 1
	}
	if !opts.KeepC {
		defer os.Remove(cPath)
	}

	if code := p.compileC(cPath, outBase, opts); code != 0 {
		return code
	}

	if opts.RunAfter {
		return p.runBinary(outBase)
	}
	return 0
}

// emitC writes the translation unit to stdout, or to NAME.c when an output
// name was given, per spec.md §6's `--emit-c` entry.
func (p *Pipeline) emitC(unit, outBase string) int {
	if outBase == "" {
		fmt.Fprint(p.Stdout, unit)
		return 0
	}
	cPath := outBase + ".c"
	if err := os.WriteFile(cPath, []byte(unit), 0o644); err != nil {
		fmt.Fprintf(p.Stderr, "zinc: cannot write %s: %v\n", cPath, err)
		return 1
	}
	return 0
}

func baseName(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
