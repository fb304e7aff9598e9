package parser

import (
	"testing"

	"github.com/zinc-lang/zinc/internal/ast"
	"github.com/zinc-lang/zinc/internal/lexer"
)

func parseSource(t *testing.T, src string) *ast.Program {
	t.Helper()
	l := lexer.New(src)
	tokens := l.Tokenize()
	if errs := l.Errors(); len(errs) != 0 {
		t.Fatalf("unexpected lex errors: %v", errs)
	}
	p := New(tokens, src, "test.zn")
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	return prog
}

func TestParseMainThing(t *testing.T) {
	// spec.md §8 scenario 1.
	prog := parseSource(t, `to do the main thing:
say "Hello, World!"
end`)

	if len(prog.Decls) != 1 {
		t.Fatalf("decl count = %d, want 1", len(prog.Decls))
	}
	main, ok := prog.Decls[0].(*ast.MainDef)
	if !ok {
		t.Fatalf("decl[0] = %T, want *ast.MainDef", prog.Decls[0])
	}
	if len(main.Body.Statements) != 1 {
		t.Fatalf("main body has %d statements, want 1", len(main.Body.Statements))
	}
	if _, ok := main.Body.Statements[0].(*ast.OutputStatement); !ok {
		t.Fatalf("main body[0] = %T, want *ast.OutputStatement", main.Body.Statements[0])
	}
}

func TestParseVarDeclWithInitializer(t *testing.T) {
	// spec.md §8 scenario 2.
	prog := parseSource(t, `to do the main thing:
there is a number called x which is 2 plus 3 times 4
say x
end`)

	main := prog.Decls[0].(*ast.MainDef)
	decl, ok := main.Body.Statements[0].(*ast.VarDeclStatement)
	if !ok {
		t.Fatalf("statement[0] = %T, want *ast.VarDeclStatement", main.Body.Statements[0])
	}
	if decl.Name.Value != "x" {
		t.Errorf("decl.Name = %q, want %q", decl.Name.Value, "x")
	}
	if decl.Type.Kind != ast.KindInteger {
		t.Errorf("decl.Type.Kind = %v, want KindInteger", decl.Type.Kind)
	}
	bin, ok := decl.Init.(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("decl.Init = %T, want *ast.BinaryExpression", decl.Init)
	}
	if bin.Op != ast.OpAdd {
		t.Errorf("outermost operator = %v, want OpAdd (plus binds loosest)", bin.Op)
	}
}

func TestParseAssignmentSynonyms(t *testing.T) {
	// spec.md §3: set/change/now/let/make all collapse to one AssignmentStatement.
	forms := []string{
		"set x to 5",
		"change x to 5",
		"now x is 5",
		"let x be 5",
		"make x equal to 5",
	}
	for _, form := range forms {
		t.Run(form, func(t *testing.T) {
			prog := parseSource(t, "to do the main thing:\n"+form+"\nend")
			main := prog.Decls[0].(*ast.MainDef)
			if _, ok := main.Body.Statements[0].(*ast.AssignmentStatement); !ok {
				t.Fatalf("%q parsed as %T, want *ast.AssignmentStatement", form, main.Body.Statements[0])
			}
		})
	}
}

func TestParseForEachDescending(t *testing.T) {
	// spec.md §8 scenario 4.
	prog := parseSource(t, `to do the main thing:
for each number i from 5 down to 1:
say i
end
end`)

	main := prog.Decls[0].(*ast.MainDef)
	loop, ok := main.Body.Statements[0].(*ast.ForRangeStatement)
	if !ok {
		t.Fatalf("statement[0] = %T, want *ast.ForRangeStatement", main.Body.Statements[0])
	}
	if !loop.Descend {
		t.Error("expected Descend=true for a \"down to\" range")
	}
}

func TestParseUnknownPhraseFallsThroughAsRawC(t *testing.T) {
	// spec.md §4.2 "C fallback" rule.
	prog := parseSource(t, `to do the main thing:
printf("direct c call\n");
end`)

	main := prog.Decls[0].(*ast.MainDef)
	if _, ok := main.Body.Statements[0].(*ast.RawCStatement); !ok {
		t.Fatalf("statement[0] = %T, want *ast.RawCStatement", main.Body.Statements[0])
	}
}
