package resolver

import (
	"testing"

	"github.com/zinc-lang/zinc/internal/ast"
	"github.com/zinc-lang/zinc/internal/lexer"
	"github.com/zinc-lang/zinc/internal/parser"
)

func resolveSource(t *testing.T, src string) *ast.Program {
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
	r := New(src, "test.zn")
	r.Resolve(prog)
	if errs := r.Errors(); len(errs) != 0 {
		t.Fatalf("unexpected resolve errors: %v", errs)
	}
	return prog
}

func TestResolveLocalVariable(t *testing.T) {
	prog := resolveSource(t, `to do the main thing:
there is a number called x which is 2
say x
end`)

	main := prog.Decls[0].(*ast.MainDef)
	decl := main.Body.Statements[0].(*ast.VarDeclStatement)
	if decl.Name.ResolvedKind != ast.KindLocal {
		t.Errorf("decl.Name.ResolvedKind = %v, want KindLocal", decl.Name.ResolvedKind)
	}

	out := main.Body.Statements[1].(*ast.OutputStatement)
	ref := out.Values.Items[0].(*ast.VariableRef)
	if ref.Name.ResolvedKind != ast.KindLocal {
		t.Errorf("ref.Name.ResolvedKind = %v, want KindLocal", ref.Name.ResolvedKind)
	}
}

func TestResolveUnknownIdentifierIsPassthrough(t *testing.T) {
	// spec.md §4.3: a name the resolver can't place in any scope is left
	// as KindPassthrough, not rejected, so lowering can treat it as an
	// external (C) symbol.
	prog := resolveSource(t, `to do the main thing:
say M_PI
end`)

	main := prog.Decls[0].(*ast.MainDef)
	out := main.Body.Statements[0].(*ast.OutputStatement)
	ref := out.Values.Items[0].(*ast.VariableRef)
	if ref.Name.ResolvedKind != ast.KindPassthrough {
		t.Errorf("ref.Name.ResolvedKind = %v, want KindPassthrough", ref.Name.ResolvedKind)
	}
}

func TestResolveDuplicateTopLevelFunctionIsAnError(t *testing.T) {
	prog, err := func() (*ast.Program, []error) {
		src := `to greet and return a number:
return 0
end
to greet and return a number:
return 0
end
to do the main thing:
end`
		l := lexer.New(src)
		tokens := l.Tokenize()
		p := parser.New(tokens, src, "test.zn")
		prog := p.ParseProgram()
		r := New(src, "test.zn")
		r.Resolve(prog)
		var errs []error
		for _, e := range r.Errors() {
			errs = append(errs, e)
		}
		return prog, errs
	}()
	_ = prog
	if len(err) == 0 {
		t.Fatal("expected a resolve error for a duplicate function definition")
	}
}
