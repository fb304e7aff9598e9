package lower

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/zinc-lang/zinc/internal/lexer"
	"github.com/zinc-lang/zinc/internal/parser"
	"github.com/zinc-lang/zinc/internal/resolver"
)

// lowerSource runs the full lex/parse/resolve/lower pipeline and fails the
// test on any stage error, returning the emitted C translation unit.
func lowerSource(t *testing.T, src string) string {
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
	lw := New(src, "test.zn")
	unit := lw.Lower(prog)
	if errs := lw.Errors(); len(errs) != 0 {
		t.Fatalf("unexpected lower errors: %v", errs)
	}
	return unit
}

func TestLowerHelloWorld(t *testing.T) {
	// spec.md §8 scenario 1.
	unit := lowerSource(t, `to do the main thing:
say "Hello, World!"
end`)
	snaps.MatchSnapshot(t, unit)
}

func TestLowerArithmeticExpression(t *testing.T) {
	// spec.md §8 scenario 2.
	unit := lowerSource(t, `to do the main thing:
there is a number called x which is 2 plus 3 times 4
say x
end`)
	snaps.MatchSnapshot(t, unit)
}

func TestLowerAscendingForRange(t *testing.T) {
	// spec.md §8 scenario 3.
	unit := lowerSource(t, `to do the main thing:
for each number i from 1 to 5:
say i
end
end`)
	snaps.MatchSnapshot(t, unit)
}

func TestLowerDescendingForRange(t *testing.T) {
	// spec.md §8 scenario 4.
	unit := lowerSource(t, `to do the main thing:
for each number i from 5 down to 1:
say i
end
end`)
	snaps.MatchSnapshot(t, unit)
}

func TestLowerIfElseWithModulo(t *testing.T) {
	// spec.md §8 scenario 6.
	unit := lowerSource(t, `to do the main thing:
if 7 modulo 2 equals 0 then
say "even"
otherwise
say "odd"
end
end`)
	snaps.MatchSnapshot(t, unit)
}

func TestLowerStructFieldAssignmentUsesDot(t *testing.T) {
	// spec.md §8 scenario 7: a possessive assignment on a value (not
	// pointer) struct emits `.`, never `->`.
	unit := lowerSource(t, `define a person as having:
a number called age
end
to do the main thing:
there is a person called bob
set bob's age to 30
say bob's age
end`)
	snaps.MatchSnapshot(t, unit)
}

func TestLowerGraphicsCall(t *testing.T) {
	// the C lowering path is the only backend that can emit graphics
	// calls; the bytecode path raises a LowerError for the same input.
	unit := lowerSource(t, `to do the main thing:
draw circle with 10, 10, 5
end`)
	snaps.MatchSnapshot(t, unit)
}

func TestLowerFileReadLine(t *testing.T) {
	unit := lowerSource(t, `to do the main thing:
open the file "input.txt" and call it f
read a line from f and store it in line
close the file f
end`)
	snaps.MatchSnapshot(t, unit)
}

func TestLowerUnresolvedIdentifierFallsThroughToC(t *testing.T) {
	// spec.md §4.2 "C fallback": a passthrough identifier is emitted
	// unchanged so it resolves against the system C library.
	unit := lowerSource(t, `to do the main thing:
say M_PI
end`)
	snaps.MatchSnapshot(t, unit)
}
