package driver

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// ccCommand is the system C compiler invoked for the C backend. It is a
// var, not a const, so tests can stub it out without shelling to a real
// compiler.
var ccCommand = "cc"

// compileC invokes the system C compiler on cPath, producing outBase.
// Its stderr is surfaced unchanged and its exit code becomes the overall
// result (spec.md §7's ToolError: "surfaced with its stderr").
func (p *Pipeline) compileC(cPath, outBase string, opts Options) int {
	args := []string{cPath, "-o", outBase, "-lm"}
	cmd := exec.Command(ccCommand, args...)
	cmd.Stdout = p.Stdout
	cmd.Stderr = p.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode()
		}
		fmt.Fprintf(p.Stderr, "zinc: failed to invoke %s: %v\n", ccCommand, err)
		return 1
	}
	return 0
}

// runBinary execs the freshly-built binary, inheriting stdio, and returns
// its exit status — spec.md §6's `--run`/`-r` flag.
func (p *Pipeline) runBinary(path string) int {
	if !filepath.IsAbs(path) {
		path = "./" + path
	}

	cmd := exec.Command(path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = p.Stdout
	cmd.Stderr = p.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode()
		}
		fmt.Fprintf(p.Stderr, "zinc: failed to run %s: %v\n", path, err)
		return 1
	}
	return 0
}
