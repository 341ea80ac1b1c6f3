package compiler

import (
	"strings"

	"github.com/eeue56/derw-sub000/internal/ast"
)

// printExpr prints an expression, adding parentheses only if needed.
// Expressions that need statements (case, if with lets) are wrapped in an
// immediately invoked function spanning several lines.
func (g *generator) printExpr(p *CodePrinter, expr ast.Expression, parentPrec int, isRight bool) {
	switch e := expr.(type) {
	case nil:
		p.write("undefined")
	case *ast.Value:
		p.write(e.Body)
	case *ast.StringValue:
		p.write(`"` + e.Body + `"`)
	case *ast.FormatStringValue:
		p.write("`" + e.Body + "`")
	case *ast.ListValue:
		g.printList(p, e.Items)
	case *ast.ListRange:
		p.write("Array.from({ length: ")
		g.printExpr(p, e.End, getPrecedence("-"), false)
		p.write(" - ")
		g.printExpr(p, e.Start, getPrecedence("-"), true)
		p.write(" + 1 }, (_v, _i) => _i + ")
		g.printExpr(p, e.Start, getPrecedence("+"), true)
		p.write(")")
	case *ast.ObjectLiteral:
		g.printObject(p, e)
	case *ast.Constructor:
		p.write(e.Name + "(")
		g.printObject(p, e.Pattern)
		p.write(")")
	case *ast.IfStatement:
		if len(e.IfLetBody) == 0 && len(e.ElseLetBody) == 0 {
			g.printTernary(p, e, parentPrec)
			return
		}
		g.iife(p, func() { g.ifStatement(p, e) })
	case *ast.CaseStatement:
		g.iife(p, func() { g.caseStatement(p, e) })
	case *ast.InfixExpression:
		g.printInfix(p, e, parentPrec, isRight)
	case *ast.PrefixExpression:
		op := e.Operator
		if op == "not" {
			op = "!"
		}
		needParens := parentPrec > precPrefix
		if needParens {
			p.write("(")
		}
		p.write(op)
		g.printExpr(p, e.Right, precPrefix, true)
		if needParens {
			p.write(")")
		}
	case *ast.LeftPipe:
		g.printExpr(p, Flatten(e), parentPrec, isRight)
	case *ast.RightPipe:
		g.printExpr(p, FlattenRight(e), parentPrec, isRight)
	case *ast.ModuleReference:
		p.write(strings.Join(e.Path, ".") + ".")
		g.printExpr(p, e.Value, precAtom, false)
	case *ast.FunctionCall:
		p.write(e.Name)
		g.printArgs(p, e.Args)
	case *ast.Lambda:
		needParens := parentPrec > precLowest
		if needParens {
			p.write("(")
		}
		g.printLambda(p, e)
		if needParens {
			p.write(")")
		}
	case *ast.LambdaCall:
		p.write("(")
		if e.Lambda != nil {
			g.printLambda(p, e.Lambda)
		}
		p.write(")")
		g.printArgs(p, e.Args)
	}
}

func (g *generator) printInfix(p *CodePrinter, e *ast.InfixExpression, parentPrec int, isRight bool) {
	switch e.Operator {
	case "++":
		g.printExpr(p, e.Left, precAtom, false)
		p.write(".concat(")
		g.printExpr(p, e.Right, precLowest, false)
		p.write(")")
		return
	case "::":
		p.write("[ ")
		g.printExpr(p, e.Left, precLowest, false)
		p.write(", ...")
		g.printExpr(p, e.Right, precAtom, false)
		p.write(" ]")
		return
	}

	op := e.Operator
	if mapped, ok := targetOperator[op]; ok {
		op = mapped
	}
	prec := getPrecedence(op)
	// All target binary operators used here are left-associative.
	needParens := prec < parentPrec || (prec == parentPrec && isRight)
	if needParens {
		p.write("(")
	}
	g.printExpr(p, e.Left, prec, false)
	p.write(" " + op + " ")
	g.printExpr(p, e.Right, prec, true)
	if needParens {
		p.write(")")
	}
}

func (g *generator) printTernary(p *CodePrinter, e *ast.IfStatement, parentPrec int) {
	needParens := parentPrec > precLowest
	if needParens {
		p.write("(")
	}
	g.printExpr(p, e.Predicate, 1, false)
	p.write(" ? ")
	g.printExpr(p, e.IfBody, 1, false)
	p.write(" : ")
	g.printExpr(p, e.ElseBody, 1, false)
	if needParens {
		p.write(")")
	}
}

func (g *generator) printList(p *CodePrinter, items []ast.Expression) {
	if len(items) == 0 {
		p.write("[ ]")
		return
	}
	p.write("[ ")
	for i, item := range items {
		if i > 0 {
			p.write(", ")
		}
		g.printExpr(p, item, precLowest, false)
	}
	p.write(" ]")
}

func (g *generator) printObject(p *CodePrinter, obj *ast.ObjectLiteral) {
	if obj == nil || (obj.Base == nil && len(obj.Fields) == 0) {
		p.write("{}")
		return
	}
	p.write("{ ")
	first := true
	if obj.Base != nil {
		p.write("...")
		g.printExpr(p, obj.Base, precAtom, false)
		first = false
	}
	for _, field := range obj.Fields {
		if !first {
			p.write(", ")
		}
		first = false
		p.write(field.Name + ": ")
		g.printExpr(p, field.Value, precLowest, false)
	}
	p.write(" }")
}

func (g *generator) printArgs(p *CodePrinter, args []ast.Expression) {
	p.write("(")
	for i, arg := range args {
		if i > 0 {
			p.write(", ")
		}
		g.printExpr(p, arg, precLowest, false)
	}
	p.write(")")
}

func (g *generator) printLambda(p *CodePrinter, l *ast.Lambda) {
	params := make([]string, len(l.Args))
	for i, arg := range l.Args {
		params[i] = g.annotate(arg, nil)
	}
	p.write("(" + strings.Join(params, ", ") + ") => ")
	if _, isObject := l.Body.(*ast.ObjectLiteral); isObject {
		p.write("(")
		g.printExpr(p, l.Body, precLowest, false)
		p.write(")")
		return
	}
	g.printExpr(p, l.Body, precLowest, false)
}

// iife wraps statements emitted by body into '(function () { ... })()'.
// The opening line continues whatever the printer has already written.
func (g *generator) iife(p *CodePrinter, body func()) {
	if g.ts {
		p.write("(function (): any {")
	} else {
		p.write("(function () {")
	}
	p.writeln()
	p.indent++
	body()
	p.indent--
	p.writeIndent()
	p.write("})()")
}
