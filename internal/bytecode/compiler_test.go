package bytecode

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/zinc-lang/zinc/internal/lexer"
	"github.com/zinc-lang/zinc/internal/parser"
	"github.com/zinc-lang/zinc/internal/resolver"
)

// compileSource runs the full lex/parse/resolve/compile pipeline and fails
// the test on any stage error, returning the compiled program.
func compileSource(t *testing.T, src string) *Program {
	t.Helper()
	l := lexer.New(src)
	tokens := l.Tokenize()
	if errs := l.Errors(); len(errs) != 0 {
		t.Fatalf("unexpected lex errors: %v", errs)
	}
	p := parser.New(tokens, src, "test.zn")
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	r := resolver.New(src, "test.zn")
	r.Resolve(prog)
	if errs := r.Errors(); len(errs) != 0 {
		t.Fatalf("unexpected resolve errors: %v", errs)
	}
	c := New(src, "test.zn")
	compiled := c.Compile(prog)
	if errs := c.Errors(); len(errs) != 0 {
		t.Fatalf("unexpected compile errors: %v", errs)
	}
	return compiled
}

func TestCompileArithmeticExpression(t *testing.T) {
	// spec.md §8 scenario 2.
	compiled := compileSource(t, `to do the main thing:
there is a number called x which is 2 plus 3 times 4
say x
end`)
	snaps.MatchSnapshot(t, Disassemble(compiled))
}

func TestCompileAscendingForRange(t *testing.T) {
	// spec.md §8 scenario 3.
	compiled := compileSource(t, `to do the main thing:
for each number i from 1 to 5:
say i
end
end`)
	snaps.MatchSnapshot(t, Disassemble(compiled))
}

func TestCompileIfElseWithModulo(t *testing.T) {
	// spec.md §8 scenario 6.
	compiled := compileSource(t, `to do the main thing:
if 7 modulo 2 equals 0 then
say "even"
otherwise
say "odd"
end
end`)
	snaps.MatchSnapshot(t, Disassemble(compiled))
}

func TestCompileFunctionCall(t *testing.T) {
	compiled := compileSource(t, `to square with a number called n and return a number:
return n times n
end
to do the main thing:
say the result of square with 5
end`)
	snaps.MatchSnapshot(t, Disassemble(compiled))
}

func TestCompileGraphicsCallRaisesLowerError(t *testing.T) {
	// internal/lower handles graphics calls; the bytecode path has no
	// opcode family for them and must refuse with a LowerError instead of
	// silently producing a broken program.
	src := `to do the main thing:
draw circle with 10, 10, 5
end`
	l := lexer.New(src)
	tokens := l.Tokenize()
	if errs := l.Errors(); len(errs) != 0 {
		t.Fatalf("unexpected lex errors: %v", errs)
	}
	p := parser.New(tokens, src, "test.zn")
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	r := resolver.New(src, "test.zn")
	r.Resolve(prog)

	c := New(src, "test.zn")
	c.Compile(prog)
	if errs := c.Errors(); len(errs) == 0 {
		t.Fatal("expected a LowerError for a graphics call on the bytecode path")
	}
}
