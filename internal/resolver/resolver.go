// Package resolver annotates every identifier in a parsed program with its
// ResolveKind (local, parameter, global, function, field, or passthrough)
// per spec.md §4.3. Unlike a type checker, it never rejects an unknown
// name — an identifier it cannot place in any known scope is tagged
// KindPassthrough and left for the lowering stage, which treats it as an
// external (likely C) symbol.
package resolver

import (
	"fmt"

	"github.com/zinc-lang/zinc/internal/ast"
	"github.com/zinc-lang/zinc/internal/errors"
	"github.com/zinc-lang/zinc/internal/lexer"
)

// Resolver walks a *ast.Program, maintaining a stack of block scopes and a
// pair of global tables (function and structure names) built in an initial
// top-level sweep.
type Resolver struct {
	source, file string
	errors       []*errors.CompilerError
	functions    map[string]*ast.FunctionDef
	structs      map[string]*ast.StructDef
	scopes       []map[string]ast.ResolveKind
}

// New creates a Resolver. source and file are carried only for diagnostic
// formatting.
func New(source, file string) *Resolver {
	return &Resolver{source: source, file: file}
}

// Errors returns every ResolveError collected during Resolve.
func (r *Resolver) Errors() []*errors.CompilerError { return r.errors }

func (r *Resolver) errorf(pos lexer.Position, format string, args ...any) {
	r.errors = append(r.errors, errors.New(errors.KindResolve, pos, fmt.Sprintf(format, args...), r.source, r.file))
}

func (r *Resolver) pushScope() { r.scopes = append(r.scopes, map[string]ast.ResolveKind{}) }
func (r *Resolver) popScope()  { r.scopes = r.scopes[:len(r.scopes)-1] }

// declare binds name in the innermost scope, reporting a ResolveError on
// redeclaration within that same scope (shadowing an outer scope's binding
// is allowed and is not an error).
func (r *Resolver) declare(name string, kind ast.ResolveKind, pos lexer.Position) {
	top := r.scopes[len(r.scopes)-1]
	if _, dup := top[name]; dup {
		r.errorf(pos, "%q is already declared in this scope", name)
		return
	}
	top[name] = kind
}

// lookup searches scopes innermost-first, falling back to the global
// function table so a function referenced by name (not called) still
// resolves to KindFunction rather than KindPassthrough.
func (r *Resolver) lookup(name string) (ast.ResolveKind, bool) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if kind, ok := r.scopes[i][name]; ok {
			return kind, true
		}
	}
	if _, ok := r.functions[name]; ok {
		return ast.KindFunction, true
	}
	return ast.KindUnresolved, false
}

// resolveAssignTarget resolves an identifier used as an assignment or
// binding target (ask destinations, file handles, read-line destinations): an existing
// binding is reused, an unknown one is declared as a local in the current
// scope. Zinc has no "declare before use" requirement for these forms.
func (r *Resolver) resolveAssignTarget(id *ast.Identifier) {
	if kind, ok := r.lookup(id.Value); ok {
		id.ResolvedKind = kind
		return
	}
	r.declare(id.Value, ast.KindLocal, id.Pos())
	id.ResolvedKind = ast.KindLocal
}

// Resolve performs the full pass: a top-level sweep building the function
// and structure tables (and catching duplicate top-level names and struct
// fields), then a per-function/per-main walk of every statement and
// expression.
func (r *Resolver) Resolve(prog *ast.Program) {
	r.functions = map[string]*ast.FunctionDef{}
	r.structs = map[string]*ast.StructDef{}
	var mainDef *ast.MainDef

	for _, d := range prog.Decls {
		switch n := d.(type) {
		case *ast.FunctionDef:
			if _, dup := r.functions[n.Name]; dup {
				r.errorf(n.Pos(), "function %q is already defined", n.DisplayName)
				continue
			}
			r.functions[n.Name] = n
		case *ast.StructDef:
			if _, dup := r.structs[n.Name.Value]; dup {
				r.errorf(n.Pos(), "structure %q is already defined", n.Name.Value)
				continue
			}
			r.structs[n.Name.Value] = n
			seen := map[string]bool{}
			for _, f := range n.Fields {
				if seen[f.Name.Value] {
					r.errorf(f.Pos(), "structure %q already has a field called %q", n.Name.Value, f.Name.Value)
				}
				seen[f.Name.Value] = true
				f.Name.ResolvedKind = ast.KindField
			}
		case *ast.MainDef:
			mainDef = n
		}
	}

	for _, f := range r.functions {
		r.resolveFunction(f)
	}
	if mainDef != nil {
		r.pushScope()
		for _, stmt := range mainDef.Body.Statements {
			r.resolveStatement(stmt)
		}
		r.popScope()
	}
}

func (r *Resolver) resolveFunction(f *ast.FunctionDef) {
	r.pushScope()
	seen := map[string]bool{}
	for _, p := range f.Params {
		if seen[p.Name.Value] {
			r.errorf(p.Pos(), "%q is already a parameter of %q", p.Name.Value, f.DisplayName)
		}
		seen[p.Name.Value] = true
		r.declare(p.Name.Value, ast.KindParameter, p.Pos())
		p.Name.ResolvedKind = ast.KindParameter
	}
	for _, stmt := range f.Body.Statements {
		r.resolveStatement(stmt)
	}
	r.popScope()
}

// resolveBlock walks a nested block in its own scope.
func (r *Resolver) resolveBlock(b *ast.BlockStatement) {
	r.pushScope()
	for _, stmt := range b.Statements {
		r.resolveStatement(stmt)
	}
	r.popScope()
}
