// Package cmd implements zinc's command-line surface: a thin cobra wrapper
// around internal/driver, in the same spirit as the teacher's
// cmd/dwscript/cmd package (flag parsing and I/O only — no compiler logic
// lives here).
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information, set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "zinc",
	Short: "Zinc compiler toolchain",
	Long: `zinc compiles Zinc source files to native executables.

Zinc is a small imperative language with an English-like surface syntax:
keywords are case-insensitive, many statements have synonymous spellings
(set/change/now/let/make), and operators read as phrases (divided by, is
greater than, to the power of). The toolchain lexes, parses, and resolves
a program, then lowers it either to a C translation unit (handed to the
system C compiler) or to a typed bytecode IR consumed by a native code
generator.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
