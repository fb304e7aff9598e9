package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/zinc-lang/zinc/internal/driver"
)

var (
	buildOutput      string
	buildEmitC       bool
	buildEmitLLVM    bool
	buildEmitObject  bool
	buildKeepC       bool
	buildRunAfter    bool
	buildOptLevel    int
	buildDisassemble bool
)

var buildCmd = &cobra.Command{
	Use:   "build FILE.zn",
	Short: "Compile a Zinc source file to a native executable",
	Long: `Compile a Zinc program: lex, parse, resolve, lower, and link.

By default zinc lowers to a C translation unit and invokes the system C
compiler to produce a native executable named after the source file. The
IR backend (bytecode plus the native code generator) is selected
automatically whenever --emit-llvm, --emit-object, or --disassemble is
given, since those flags only make sense against the bytecode path.

Examples:
  # Build an executable
  zinc build hello.zn

  # Build and immediately run it
  zinc build hello.zn --run

  # Inspect the generated C instead of linking
  zinc build hello.zn --emit-c

  # Dump the bytecode disassembly
  zinc build hello.zn --disassemble`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output executable name (default: source basename)")
	buildCmd.Flags().BoolVar(&buildEmitC, "emit-c", false, "write the generated C translation unit instead of linking")
	buildCmd.Flags().BoolVar(&buildEmitLLVM, "emit-llvm", false, "write the native IR text (IR backend)")
	buildCmd.Flags().BoolVar(&buildEmitObject, "emit-object", false, "write an object file without linking (IR backend)")
	buildCmd.Flags().BoolVar(&buildKeepC, "keep-c", false, "retain the intermediate C file after linking")
	buildCmd.Flags().BoolVarP(&buildRunAfter, "run", "r", false, "execute the produced binary and exit with its status")
	buildCmd.Flags().IntVarP(&buildOptLevel, "opt-level", "O", 2, "optimization level 0..3 (IR backend)")
	buildCmd.Flags().BoolVarP(&buildDisassemble, "disassemble", "d", false, "dump the bytecode IR (IR backend)")
}

func runBuild(_ *cobra.Command, args []string) error {
	opts := driver.Options{
		File:        args[0],
		Output:      buildOutput,
		EmitC:       buildEmitC,
		EmitLLVM:    buildEmitLLVM,
		EmitObject:  buildEmitObject,
		KeepC:       buildKeepC,
		RunAfter:    buildRunAfter,
		OptLevel:    buildOptLevel,
		Disassemble: buildDisassemble,
		Color:       isTerminal(os.Stderr),
	}

	if buildEmitLLVM || buildEmitObject || buildDisassemble {
		opts.Backend = driver.BackendIR
	} else {
		opts.Backend = driver.BackendC
	}

	pipeline := driver.New(os.Stdout, os.Stderr)
	if code := pipeline.Build(opts); code != 0 {
		os.Exit(code)
	}
	return nil
}

// isTerminal reports whether f looks like a terminal, used to decide
// whether diagnostics get ANSI color — the teacher's run.go/compile.go
// always pass color=true unconditionally; this TTY check is a documented
// Zinc-side refinement (see DESIGN.md Open Question decisions).
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
