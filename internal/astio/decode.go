// Package astio reads parsed modules from, and writes classified blocks to,
// YAML documents.
//
// Every node of a module document is a mapping whose 'kind' key names the
// node type:
//
//	name: Main
//	body:
//	  - kind: Function
//	    name: double
//	    returnType: Number
//	    args:
//	      - { kind: NamedArg, name: x, type: Number }
//	    body:
//	      kind: InfixExpression
//	      operator: "*"
//	      left: x
//	      right: "2"
//
// A plain scalar in expression position is a Value; in type position it is
// a GenericType when it starts with a lower-case letter and a FixedType
// otherwise.
package astio

import (
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/eeue56/derw-sub000/internal/ast"
	"github.com/eeue56/derw-sub000/internal/diagnostics"
)

// DecodeModule reads a module document. Errors are *diagnostics.DiagnosticError
// with code D001 and the line of the offending node.
func DecodeModule(data []byte) (*ast.Module, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, diagnostics.Wrap(err, diagnostics.ErrD001, "reading module document")
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, diagnostics.New(diagnostics.ErrD001, 0, "empty module document")
	}

	fields, err := mapping(doc.Content[0])
	if err != nil {
		return nil, err
	}
	name, err := fields.str("name")
	if err != nil {
		return nil, err
	}
	body, err := declarations(fields.get("body"))
	if err != nil {
		return nil, err
	}
	errs, err := fields.strs("errors")
	if err != nil {
		return nil, err
	}
	return &ast.Module{Name: name, Body: body, Errors: errs}, nil
}

func declarations(node *yaml.Node) ([]ast.Declaration, error) {
	items, err := sequence(node)
	if err != nil {
		return nil, err
	}
	decls := make([]ast.Declaration, 0, len(items))
	for _, item := range items {
		decl, err := declaration(item)
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}
	return decls, nil
}

func declaration(node *yaml.Node) (ast.Declaration, error) {
	kind, f, err := kinded(node)
	if err != nil {
		return nil, err
	}

	switch kind {
	case "Import":
		items, err := sequence(f.get("modules"))
		if err != nil {
			return nil, err
		}
		imp := &ast.Import{}
		for _, item := range items {
			module, err := importModule(item)
			if err != nil {
				return nil, err
			}
			imp.Modules = append(imp.Modules, module)
		}
		return imp, nil
	case "Export":
		names, err := f.strs("names")
		return &ast.Export{Names: names}, err
	case "UnionType":
		t, err := f.fixedType("type")
		if err != nil {
			return nil, err
		}
		items, err := sequence(f.get("tags"))
		if err != nil {
			return nil, err
		}
		union := &ast.UnionType{Type: t}
		for _, item := range items {
			tag, err := unionTag(item)
			if err != nil {
				return nil, err
			}
			union.Tags = append(union.Tags, tag)
		}
		return union, nil
	case "TypeAlias":
		t, err := f.fixedType("type")
		if err != nil {
			return nil, err
		}
		props, err := namedTypes(f.get("properties"))
		if err != nil {
			return nil, err
		}
		alias := &ast.TypeAlias{Type: t}
		for _, p := range props {
			alias.Properties = append(alias.Properties, ast.Property{Name: p.name, Type: p.typ})
		}
		return alias, nil
	case "Function":
		return function(f)
	case "Const":
		return constant(f)
	case "Comment":
		body, err := f.str("body")
		return &ast.Comment{Body: body}, err
	case "MultilineComment":
		body, err := f.str("body")
		return &ast.MultilineComment{Body: body}, err
	}
	return nil, unknownKind(node, "declaration", kind)
}

func importModule(node *yaml.Node) (ast.ImportModule, error) {
	f, err := mapping(node)
	if err != nil {
		return ast.ImportModule{}, err
	}
	var module ast.ImportModule
	if module.Name, err = f.requiredStr("name"); err != nil {
		return module, err
	}
	if module.Alias, err = f.str("alias"); err != nil {
		return module, err
	}
	if module.Exposing, err = f.strs("exposing"); err != nil {
		return module, err
	}
	namespace, err := f.str("namespace")
	if err != nil {
		return module, err
	}
	switch namespace {
	case "", "relative":
		module.Namespace = ast.RelativeImport
	case "global":
		module.Namespace = ast.GlobalImport
	default:
		return module, diagnostics.Newf(diagnostics.ErrD001, f.get("namespace").Line,
			"unknown import namespace %q (want relative or global)", namespace)
	}
	return module, nil
}

func unionTag(node *yaml.Node) (ast.Tag, error) {
	f, err := mapping(node)
	if err != nil {
		return ast.Tag{}, err
	}
	name, err := f.requiredStr("name")
	if err != nil {
		return ast.Tag{}, err
	}
	args, err := namedTypes(f.get("args"))
	if err != nil {
		return ast.Tag{}, err
	}
	tag := ast.Tag{Name: name}
	for _, a := range args {
		tag.Args = append(tag.Args, ast.TagArg{Name: a.name, Type: a.typ})
	}
	return tag, nil
}

type namedType struct {
	name string
	typ  ast.Type
}

// namedTypes reads a sequence of { name, type } mappings.
func namedTypes(node *yaml.Node) ([]namedType, error) {
	items, err := sequence(node)
	if err != nil {
		return nil, err
	}
	out := make([]namedType, 0, len(items))
	for _, item := range items {
		f, err := mapping(item)
		if err != nil {
			return nil, err
		}
		name, err := f.requiredStr("name")
		if err != nil {
			return nil, err
		}
		t, err := typeNode(f.get("type"))
		if err != nil {
			return nil, err
		}
		out = append(out, namedType{name: name, typ: t})
	}
	return out, nil
}

func function(f fields) (*ast.Function, error) {
	name, err := f.requiredStr("name")
	if err != nil {
		return nil, err
	}
	fn := &ast.Function{Name: name}
	if fn.ReturnType, err = typeNode(f.get("returnType")); err != nil {
		return nil, err
	}

	items, err := sequence(f.get("args"))
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		kind, af, err := kinded(item)
		if err != nil {
			return nil, err
		}
		t, err := typeNode(af.get("type"))
		if err != nil {
			return nil, err
		}
		switch kind {
		case "NamedArg":
			argName, err := af.requiredStr("name")
			if err != nil {
				return nil, err
			}
			fn.Args = append(fn.Args, &ast.NamedArg{Name: argName, Type: t})
		case "UnusedArg":
			fn.Args = append(fn.Args, &ast.UnusedArg{Type: t})
		default:
			return nil, unknownKind(item, "function argument", kind)
		}
	}

	if fn.LetBody, err = declarations(f.get("letBody")); err != nil {
		return nil, err
	}
	if fn.Body, err = expression(f.get("body")); err != nil {
		return nil, err
	}
	return fn, nil
}

func constant(f fields) (*ast.Const, error) {
	name, err := f.requiredStr("name")
	if err != nil {
		return nil, err
	}
	c := &ast.Const{Name: name}
	if c.Type, err = typeNode(f.get("type")); err != nil {
		return nil, err
	}
	if c.LetBody, err = declarations(f.get("letBody")); err != nil {
		return nil, err
	}
	if c.Value, err = expression(f.get("value")); err != nil {
		return nil, err
	}
	return c, nil
}

func typeNode(node *yaml.Node) (ast.Type, error) {
	if isNull(node) {
		return nil, nil
	}
	if node.Kind == yaml.ScalarNode {
		r, _ := utf8.DecodeRuneInString(node.Value)
		if unicode.IsLower(r) {
			return &ast.GenericType{Name: node.Value}, nil
		}
		return &ast.FixedType{Name: node.Value}, nil
	}

	kind, f, err := kinded(node)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "GenericType":
		name, err := f.requiredStr("name")
		return &ast.GenericType{Name: name}, err
	case "FixedType":
		return fixedType(f)
	case "FunctionType":
		args, err := types(f.get("args"))
		return &ast.FunctionType{Args: args}, err
	}
	return nil, unknownKind(node, "type", kind)
}

func fixedType(f fields) (*ast.FixedType, error) {
	name, err := f.requiredStr("name")
	if err != nil {
		return nil, err
	}
	args, err := types(f.get("args"))
	return &ast.FixedType{Name: name, Args: args}, err
}

func types(node *yaml.Node) ([]ast.Type, error) {
	items, err := sequence(node)
	if err != nil {
		return nil, err
	}
	out := make([]ast.Type, 0, len(items))
	for _, item := range items {
		t, err := typeNode(item)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func unknownKind(node *yaml.Node, what, kind string) error {
	return diagnostics.Newf(diagnostics.ErrD001, node.Line, "unknown %s kind %q", what, kind)
}
