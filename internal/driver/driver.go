// Package driver orchestrates the compiler's stages — lex, parse, resolve,
// lower, and (for the C backend) the downstream system compiler — behind a
// single entry point so cmd/zinc stays a thin flag-parsing wrapper, the
// same separation the teacher draws between cmd/dwscript/cmd's sequencing
// and the packages it calls into.
package driver

import (
	"fmt"
	"io"
	"os"

	"github.com/zinc-lang/zinc/internal/ast"
	"github.com/zinc-lang/zinc/internal/errors"
	"github.com/zinc-lang/zinc/internal/lexer"
	"github.com/zinc-lang/zinc/internal/parser"
	"github.com/zinc-lang/zinc/internal/resolver"
)

// Backend selects which of the two lowering strategies spec.md §4 describes
// builds a given invocation.
type Backend int

const (
	// BackendC lowers to a C translation unit and hands it to the system
	// compiler. This is the default, fully-linking backend.
	BackendC Backend = iota
	// BackendIR compiles to the bytecode IR and (optionally) the native
	// codegen stub. Selected whenever the caller asks for IR-only output
	// (--emit-llvm, --emit-object, --disassemble).
	BackendIR
)

// Options mirrors spec.md §6's command-line surface.
type Options struct {
	File    string
	Source  string // if non-empty, used instead of reading File (e.g. for -e/stdin callers)
	Output  string
	Backend Backend

	EmitC       bool
	EmitLLVM    bool
	EmitObject  bool
	KeepC       bool
	RunAfter    bool
	OptLevel    int
	Disassemble bool

	Color bool
}

// Pipeline runs the compiler stages and reports a process exit code, per
// spec.md §6's exit-code contract: 0 on success, 1 on any compile error,
// the native compiler's exit code on a downstream tool failure, and the
// executed program's exit code when --run was requested.
type Pipeline struct {
	Stdout, Stderr io.Writer
}

// New creates a Pipeline writing to the given streams.
func New(stdout, stderr io.Writer) *Pipeline {
	return &Pipeline{Stdout: stdout, Stderr: stderr}
}

// Build runs the full pipeline for opts and returns the process exit code.
func (p *Pipeline) Build(opts Options) int {
	source := opts.Source
	if source == "" {
		content, err := os.ReadFile(opts.File)
		if err != nil {
			fmt.Fprintf(p.Stderr, "zinc: cannot read %s: %v\n", opts.File, err)
			return 1
		}
		source = string(content)
	}

	prog, ok := p.frontend(source, opts.File, opts.Color)
	if !ok {
		return 1
	}

	switch opts.Backend {
	case BackendIR:
		return p.buildIR(prog, source, opts)
	default:
		return p.buildC(prog, source, opts)
	}
}

// frontend runs lex, parse, and resolve, printing and reporting failure on
// the first stage that collects any error — spec.md §7's "all errors are
// fatal to the compilation" rule.
func (p *Pipeline) frontend(source, file string, color bool) (*ast.Program, bool) {
	lx := lexer.New(source)
	tokens := lx.Tokenize()
	if lexErrs := lx.Errors(); len(lexErrs) > 0 {
		p.printLexErrors(lexErrs, source, file, color)
		return nil, false
	}

	ps := parser.New(tokens, source, file)
	prog := ps.ParseProgram()
	if errs := ps.Errors(); len(errs) > 0 {
		fmt.Fprint(p.Stderr, errors.FormatAll(errs, color))
		fmt.Fprintln(p.Stderr)
		return nil, false
	}

	rs := resolver.New(source, file)
	rs.Resolve(prog)
	if errs := rs.Errors(); len(errs) > 0 {
		fmt.Fprint(p.Stderr, errors.FormatAll(errs, color))
		fmt.Fprintln(p.Stderr)
		return nil, false
	}

	return prog, true
}

func (p *Pipeline) printLexErrors(lexErrs []*lexer.LexError, source, file string, color bool) {
	converted := make([]*errors.CompilerError, len(lexErrs))
	for i, le := range lexErrs {
		converted[i] = errors.New(errors.KindLex, le.Pos, le.Message, source, file)
	}
	fmt.Fprint(p.Stderr, errors.FormatAll(converted, color))
	fmt.Fprintln(p.Stderr)
}
