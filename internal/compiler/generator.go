// Package compiler turns an analyzed module into TypeScript or JavaScript.
//
// The interesting parts are the pattern compiler (case.go, listpattern.go),
// pipe flattening (pipe.go) and type parameter harvesting (types.go); the
// rest lays declarations out in the target's syntax.
package compiler

import (
	"strings"

	"github.com/eeue56/derw-sub000/internal/ast"
	"github.com/eeue56/derw-sub000/internal/config"
)

type generator struct {
	ts    bool
	types *typeRenderer
	depth int // case statements currently open
}

func newGenerator(module *ast.Module, target string) *generator {
	return &generator{
		ts:    target != config.TargetJavaScript,
		types: newTypeRenderer(module.Body),
	}
}

// Generate renders every declaration of module in the given target,
// separated by blank lines. An unknown target is treated as TypeScript.
func Generate(module *ast.Module, target string) string {
	g := newGenerator(module, target)
	p := NewCodePrinter()
	first := true
	for _, decl := range module.Body {
		var part CodePrinter
		g.declaration(&part, decl)
		if part.buf.Len() == 0 {
			continue
		}
		if !first {
			p.writeln()
		}
		first = false
		p.write(part.String())
	}
	return p.String()
}

// GenerateExpression renders a single expression, as used by tests and
// tooling that only need a fragment.
func GenerateExpression(expr ast.Expression, target string) string {
	g := newGenerator(&ast.Module{}, target)
	p := NewCodePrinter()
	g.printExpr(p, expr, precLowest, false)
	return p.String()
}

func (g *generator) declaration(p *CodePrinter, decl ast.Declaration) {
	switch d := decl.(type) {
	case *ast.Import:
		g.imports(p, d)
	case *ast.Export:
		if len(d.Names) > 0 {
			p.line("export { " + strings.Join(d.Names, ", ") + " };")
		}
	case *ast.UnionType:
		g.unionType(p, d)
	case *ast.TypeAlias:
		g.typeAlias(p, d)
	case *ast.Function:
		g.function(p, d)
	case *ast.Const:
		g.constant(p, d)
	case *ast.Comment:
		body := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(d.Body), config.LineCommentPrefix))
		p.line("// " + body)
	case *ast.MultilineComment:
		body := strings.TrimSpace(d.Body)
		body = strings.TrimPrefix(body, config.MultilineCommentOpen)
		body = strings.TrimSuffix(body, config.MultilineCommentClose)
		p.line("/*")
		p.lines(strings.TrimSpace(body))
		p.line("*/")
	}
}

func (g *generator) imports(p *CodePrinter, imp *ast.Import) {
	for _, module := range imp.Modules {
		from := `"` + strings.Trim(module.Name, `"`) + `"`
		if hasNamespaceBinding(module) {
			p.line("import * as " + module.BindingName() + " from " + from + ";")
		}
		if len(module.Exposing) > 0 {
			p.line("import { " + strings.Join(module.Exposing, ", ") + " } from " + from + ";")
		}
	}
}

// unionType emits one tagged object type and one constructor per tag,
// then the union of the tag types.
func (g *generator) unionType(p *CodePrinter, u *ast.UnionType) {
	members := make([]string, len(u.Tags))
	for i, tag := range u.Tags {
		if i > 0 {
			p.writeln()
		}
		fieldTypes := make([]ast.Type, len(tag.Args))
		fields := make([]string, len(tag.Args))
		for j, arg := range tag.Args {
			fieldTypes[j] = arg.Type
			fields[j] = arg.Name + ": " + g.types.render(arg.Type)
		}
		generics := typeParams(GenericNames(fieldTypes...))
		members[i] = tag.Name + generics

		if g.ts {
			p.open("type " + tag.Name + generics + " =")
			p.line(`kind: "` + tag.Name + `";`)
			for _, field := range fields {
				p.line(field + ";")
			}
			p.close(";")
			p.writeln()
			p.open("function " + tag.Name + generics + "(args: " + inlineObjectType(fields) + "): " + tag.Name + generics)
		} else {
			p.open("function " + tag.Name + "(args)")
		}
		p.open("return")
		p.line(`kind: "` + tag.Name + `",`)
		p.line("...args,")
		p.close(";")
		p.close("")
	}

	if g.ts {
		if len(u.Tags) > 0 {
			p.writeln()
		}
		union := strings.Join(members, " | ")
		if union == "" {
			union = "never"
		}
		p.line("type " + u.Type.Name + typeParams(GenericNames(u.Type)) + " = " + union + ";")
	}
}

// typeAlias emits the object type and a constructor taking its fields.
func (g *generator) typeAlias(p *CodePrinter, a *ast.TypeAlias) {
	generics := typeParams(GenericNames(a.Type))
	fields := make([]string, len(a.Properties))
	for i, prop := range a.Properties {
		fields[i] = prop.Name + ": " + g.types.render(prop.Type)
	}

	if g.ts {
		p.open("type " + a.Type.Name + generics + " =")
		for _, field := range fields {
			p.line(field + ";")
		}
		p.close(";")
		p.writeln()
		p.open("function " + a.Type.Name + generics + "(args: " + inlineObjectType(fields) + "): " + a.Type.Name + generics)
	} else {
		p.open("function " + a.Type.Name + "(args)")
	}
	p.open("return")
	p.line("...args,")
	p.close(";")
	p.close("")
}

func inlineObjectType(fields []string) string {
	if len(fields) == 0 {
		return "{}"
	}
	return "{ " + strings.Join(fields, ", ") + " }"
}
