package codegen

import (
	"fmt"
	"os"

	"github.com/zinc-lang/zinc/internal/bytecode"
)

// WriteObjectStub writes a placeholder object file for path: a textual
// dump of the generated native IR under a comment header, rather than a
// real ELF/Mach-O relocatable. Emitting and linking a genuine object file
// needs an assembler or an LLVM/cranelift binding, neither of which
// appears anywhere in the retrieval pack — this stub exists so
// --emit-object has somewhere to write, and is the one place this package
// falls short of spec.md §4.5's full codegen contract (recorded in
// DESIGN.md).
func WriteObjectStub(path string, prog *bytecode.Program) error {
	g := New()
	ir := g.Generate(prog)
	content := fmt.Sprintf("; zinc object stub — native IR, not a linkable object file\n%s", ir)
	return os.WriteFile(path, []byte(content), 0o644)
}
