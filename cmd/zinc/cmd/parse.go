package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zinc-lang/zinc/internal/errors"
	"github.com/zinc-lang/zinc/internal/lexer"
	"github.com/zinc-lang/zinc/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE.zn",
	Short: "Parse a Zinc file and print the AST",
	Long: `Parse a Zinc program and print its abstract syntax tree via the
AST's own String() pretty-printer.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	source := string(content)

	l := lexer.New(source)
	tokens := l.Tokenize()
	if lexErrs := l.Errors(); len(lexErrs) > 0 {
		for _, le := range lexErrs {
			fmt.Fprintln(os.Stderr, le.Error())
		}
		return fmt.Errorf("lexing failed with %d error(s)", len(lexErrs))
	}

	p := parser.New(tokens, source, filename)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		fmt.Fprint(os.Stderr, errors.FormatAll(errs, isTerminal(os.Stderr)))
		fmt.Fprintln(os.Stderr)
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	fmt.Println(program.String())
	return nil
}
