// Command zinc compiles Zinc source files to native executables.
package main

import (
	"fmt"
	"os"

	"github.com/zinc-lang/zinc/cmd/zinc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
