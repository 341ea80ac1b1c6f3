package compiler

import (
	"slices"
	"strconv"
	"strings"

	"github.com/eeue56/derw-sub000/internal/ast"
	"github.com/eeue56/derw-sub000/internal/config"
)

// GenericNames collects the free type parameters of types in order of
// first appearance. Names that denote concrete target types are dropped.
func GenericNames(types ...ast.Type) []string {
	var names []string
	for _, t := range types {
		names = collectGenerics(t, names)
	}

	seen := make(map[string]bool, len(names))
	out := names[:0]
	for _, name := range names {
		if seen[name] || slices.Contains(config.BuiltinGenericNames, name) {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

func collectGenerics(t ast.Type, acc []string) []string {
	switch t := t.(type) {
	case *ast.GenericType:
		return append(acc, t.Name)
	case *ast.FixedType:
		for _, arg := range t.Args {
			acc = collectGenerics(arg, acc)
		}
	case *ast.FunctionType:
		for _, arg := range t.Args {
			acc = collectGenerics(arg, acc)
		}
	}
	return acc
}

// typeRenderer renders type annotations. A fixed type named like a
// namespace import is qualified through it, so 'Maybe a' under
// 'import "./Maybe" as Maybe' renders as Maybe.Maybe<a>.
type typeRenderer struct {
	imports []ast.ImportModule
}

func newTypeRenderer(decls []ast.Declaration) *typeRenderer {
	r := &typeRenderer{}
	for _, decl := range decls {
		if imp, ok := decl.(*ast.Import); ok {
			r.imports = append(r.imports, imp.Modules...)
		}
	}
	return r
}

func (r *typeRenderer) render(t ast.Type) string {
	switch t := t.(type) {
	case nil:
		return config.AnyTypeName
	case *ast.GenericType:
		return t.Name
	case *ast.FixedType:
		return r.fixed(t)
	case *ast.FunctionType:
		if len(t.Args) == 0 {
			return "() => " + config.VoidTypeName
		}
		params := make([]string, 0, len(t.Args)-1)
		for i, arg := range t.Args[:len(t.Args)-1] {
			params = append(params, "arg"+strconv.Itoa(i)+": "+r.render(arg))
		}
		return "(" + strings.Join(params, ", ") + ") => " + r.render(t.Args[len(t.Args)-1])
	}
	return config.AnyTypeName
}

func (r *typeRenderer) fixed(t *ast.FixedType) string {
	switch t.Name {
	case config.StringTypeName:
		return "string"
	case config.NumberTypeName:
		return "number"
	case config.BoolTypeName:
		return "boolean"
	case config.ListTypeName:
		if len(t.Args) == 1 {
			inner := r.render(t.Args[0])
			if _, isFn := t.Args[0].(*ast.FunctionType); isFn {
				inner = "(" + inner + ")"
			}
			return inner + "[]"
		}
		return config.AnyTypeName + "[]"
	}

	name := r.qualify(t.Name)
	if len(t.Args) == 0 {
		return name
	}
	args := make([]string, len(t.Args))
	for i, arg := range t.Args {
		args[i] = r.render(arg)
	}
	return name + "<" + strings.Join(args, ", ") + ">"
}

func (r *typeRenderer) qualify(name string) string {
	for _, module := range r.imports {
		if hasNamespaceBinding(module) && module.BindingName() == name {
			return name + "." + name
		}
	}
	return name
}

// hasNamespaceBinding reports whether the import is emitted as
// 'import * as X', which is the case unless it only exposes names.
func hasNamespaceBinding(module ast.ImportModule) bool {
	return module.Alias != "" || len(module.Exposing) == 0
}

// typeParams renders '<a, b>' or nothing.
func typeParams(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return "<" + strings.Join(names, ", ") + ">"
}
