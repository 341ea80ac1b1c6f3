package compiler

import (
	"strconv"
	"strings"

	"github.com/eeue56/derw-sub000/internal/ast"
)

// tail emits the statements of a body: its lets, then either the if/case
// it ends in as statements or a return of its value.
func (g *generator) tail(p *CodePrinter, lets []ast.Declaration, body ast.Expression) {
	g.letBody(p, lets)
	switch b := body.(type) {
	case *ast.IfStatement:
		g.ifStatement(p, b)
	case *ast.CaseStatement:
		g.caseStatement(p, b)
	default:
		p.writeIndent()
		p.write("return ")
		g.printExpr(p, body, precLowest, false)
		p.write(";")
		p.writeln()
	}
}

func (g *generator) letBody(p *CodePrinter, decls []ast.Declaration) {
	for _, decl := range decls {
		switch d := decl.(type) {
		case *ast.Function:
			g.function(p, d)
		case *ast.Const:
			g.constant(p, d)
		}
	}
}

func (g *generator) ifStatement(p *CodePrinter, e *ast.IfStatement) {
	p.writeIndent()
	p.write("if (")
	g.printExpr(p, e.Predicate, precLowest, false)
	p.write(") {")
	p.writeln()
	p.indent++
	g.tail(p, e.IfLetBody, e.IfBody)
	p.indent--
	p.open("} else")
	g.tail(p, e.ElseLetBody, e.ElseBody)
	p.close("")
}

func (g *generator) function(p *CodePrinter, f *ast.Function) {
	argTypes := make([]ast.Type, 0, len(f.Args)+1)
	params := make([]string, len(f.Args))
	for i, arg := range f.Args {
		switch a := arg.(type) {
		case *ast.NamedArg:
			params[i] = g.annotate(a.Name, a.Type)
			argTypes = append(argTypes, a.Type)
		case *ast.UnusedArg:
			params[i] = g.annotate("_"+strconv.Itoa(i), a.Type)
			argTypes = append(argTypes, a.Type)
		}
	}

	head := "function " + f.Name
	if g.ts {
		head += typeParams(GenericNames(append(argTypes, f.ReturnType)...))
	}
	head += "(" + strings.Join(params, ", ") + ")"
	if g.ts {
		head += ": " + g.types.render(f.ReturnType)
	}

	p.open(head)
	g.tail(p, f.LetBody, f.Body)
	p.close("")
}

func (g *generator) constant(p *CodePrinter, c *ast.Const) {
	p.writeIndent()
	p.write("const " + g.annotate(c.Name, c.Type) + " = ")
	if len(c.LetBody) == 0 {
		g.printExpr(p, c.Value, precLowest, false)
	} else {
		g.iife(p, func() { g.tail(p, c.LetBody, c.Value) })
	}
	p.write(";")
	p.writeln()
}

// annotate renders 'name: T' for TypeScript and 'name' for JavaScript.
func (g *generator) annotate(name string, t ast.Type) string {
	if !g.ts {
		return name
	}
	return name + ": " + g.types.render(t)
}
