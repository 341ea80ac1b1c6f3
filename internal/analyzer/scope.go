package analyzer

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/eeue56/derw-sub000/internal/ast"
)

// scopeWalker visits one top-level declaration and records the names it
// defines locally and the names it reads, both in source order.
type scopeWalker struct {
	defined    []string
	referenced []string
}

func (w *scopeWalker) define(names ...string) {
	w.defined = append(w.defined, names...)
}

func (w *scopeWalker) reference(name string) {
	if name != "" {
		w.referenced = append(w.referenced, name)
	}
}

// declaration walks a top-level or let-bound declaration. Parameters and
// let-bound names count as defined; the declaration's own name is defined
// only when it is let-bound.
func (w *scopeWalker) declaration(decl ast.Declaration, letBound bool) {
	switch d := decl.(type) {
	case *ast.Function:
		if letBound {
			w.define(d.Name)
		}
		for i, arg := range d.Args {
			switch a := arg.(type) {
			case *ast.NamedArg:
				w.define(a.Name)
			case *ast.UnusedArg:
				w.define("_" + strconv.Itoa(i))
			}
		}
		w.letBody(d.LetBody)
		w.expression(d.Body)
	case *ast.Const:
		if letBound {
			w.define(d.Name)
		}
		w.letBody(d.LetBody)
		w.expression(d.Value)
	case *ast.Import, *ast.Export, *ast.UnionType, *ast.TypeAlias, *ast.Comment, *ast.MultilineComment:
	}
}

func (w *scopeWalker) letBody(decls []ast.Declaration) {
	for _, decl := range decls {
		w.declaration(decl, true)
	}
}

func (w *scopeWalker) expressions(exprs []ast.Expression) {
	for _, e := range exprs {
		w.expression(e)
	}
}

func (w *scopeWalker) expression(expr ast.Expression) {
	switch e := expr.(type) {
	case nil:
	case *ast.Value:
		w.reference(valueName(e.Body))
	case *ast.StringValue:
	case *ast.FormatStringValue:
		for _, name := range interpolatedNames(e.Body) {
			w.reference(name)
		}
	case *ast.ListValue:
		w.expressions(e.Items)
	case *ast.ListRange:
		w.expression(e.Start)
		w.expression(e.End)
	case *ast.ObjectLiteral:
		w.objectLiteral(e)
	case *ast.Constructor:
		w.objectLiteral(e.Pattern)
	case *ast.IfStatement:
		w.expression(e.Predicate)
		w.letBody(e.IfLetBody)
		w.expression(e.IfBody)
		w.letBody(e.ElseLetBody)
		w.expression(e.ElseBody)
	case *ast.CaseStatement:
		w.expression(e.Predicate)
		for _, branch := range e.Branches {
			w.define(PatternNames(branch.Pattern)...)
			w.letBody(branch.LetBody)
			w.expression(branch.Body)
		}
	case *ast.InfixExpression:
		w.expression(e.Left)
		w.expression(e.Right)
	case *ast.PrefixExpression:
		w.expression(e.Right)
	case *ast.LeftPipe:
		w.expression(e.Left)
		w.expression(e.Right)
	case *ast.RightPipe:
		w.expression(e.Left)
		w.expression(e.Right)
	case *ast.ModuleReference:
		w.reference(strings.Join(e.Path, "."))
		w.qualified(e.Value)
	case *ast.FunctionCall:
		w.reference(valueName(e.Name))
		w.expressions(e.Args)
	case *ast.Lambda:
		// Lambda parameters are not added to the defined set.
		w.expression(e.Body)
	case *ast.LambdaCall:
		if e.Lambda != nil {
			w.expression(e.Lambda.Body)
		}
		w.expressions(e.Args)
	}
}

// qualified walks the value part of a module reference: the callee is
// resolved by the module, only its arguments are read locally.
func (w *scopeWalker) qualified(expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.Value:
	case *ast.FunctionCall:
		w.expressions(e.Args)
	case *ast.Constructor:
		w.objectLiteral(e.Pattern)
	default:
		w.expression(e)
	}
}

func (w *scopeWalker) objectLiteral(obj *ast.ObjectLiteral) {
	if obj == nil {
		return
	}
	w.expression(obj.Base)
	for _, field := range obj.Fields {
		w.expression(field.Value)
	}
}

// valueName is the name a Value body reads: 'person.name' reads person,
// literals read nothing.
func valueName(body string) string {
	body = strings.TrimSpace(body)
	if body == "" || body == "true" || body == "false" {
		return ""
	}
	if _, err := strconv.ParseFloat(body, 64); err == nil {
		return ""
	}
	if first := []rune(body)[0]; !(unicode.IsLetter(first) || first == '_' || first == '$') {
		return ""
	}
	if head, _, found := strings.Cut(body, "."); found {
		return head
	}
	return body
}

// interpolatedNames returns the names read inside ${...} segments.
func interpolatedNames(body string) []string {
	var names []string
	rest := body
	for {
		start := strings.Index(rest, "${")
		if start < 0 {
			return names
		}
		rest = rest[start+2:]
		end := strings.Index(rest, "}")
		if end < 0 {
			return names
		}
		inner := rest[:end]
		rest = rest[end+1:]
		for _, token := range strings.FieldsFunc(inner, isNotNameRune) {
			if name := valueName(token); name != "" {
				names = append(names, name)
			}
		}
	}
}

func isNotNameRune(r rune) bool {
	return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.' || r == '$')
}

// PatternNames lists the names a branch pattern binds.
func PatternNames(pattern ast.BranchPattern) []string {
	switch p := pattern.(type) {
	case *ast.Destructure:
		return destructuredNames(p.Pattern)
	case *ast.ListDestructure:
		var names []string
		for _, part := range p.Parts {
			switch lp := part.(type) {
			case *ast.ValuePart:
				names = append(names, lp.Name)
			case *ast.Destructure:
				names = append(names, destructuredNames(lp.Pattern)...)
			}
		}
		return names
	}
	return nil
}

// destructuredNames reads the fields bound by '{ a, b: c }' (a and c).
func destructuredNames(pattern string) []string {
	inner := strings.TrimSpace(pattern)
	inner = strings.TrimPrefix(inner, "{")
	inner = strings.TrimSuffix(inner, "}")
	var names []string
	for _, field := range strings.Split(inner, ",") {
		if _, renamed, found := strings.Cut(field, ":"); found {
			field = renamed
		}
		if name := strings.TrimSpace(field); name != "" {
			names = append(names, name)
		}
	}
	return names
}
