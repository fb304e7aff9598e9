package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zinc-lang/zinc/internal/lexer"
)

var lexShowErrorsOnly bool

var lexCmd = &cobra.Command{
	Use:   "lex FILE.zn",
	Short: "Tokenize a Zinc file and print the resulting tokens",
	Long: `Tokenize (lex) a Zinc program and print the resulting token stream.

Useful for debugging the lexer's phrase-folding pass and for understanding
how a source file's keyword phrases collapse into single tokens.`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().BoolVar(&lexShowErrorsOnly, "only-errors", false, "show only lexical errors")
}

func runLex(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	l := lexer.New(string(content))
	tokens := l.Tokenize()

	if !lexShowErrorsOnly {
		for _, tok := range tokens {
			fmt.Println(tok.String())
		}
	}

	errs := l.Errors()
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		return fmt.Errorf("lexing failed with %d error(s)", len(errs))
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "%d token(s)\n", len(tokens))
	}
	return nil
}
