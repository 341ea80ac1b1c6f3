package compiler

import (
	"strconv"
	"strings"

	"github.com/eeue56/derw-sub000/internal/ast"
)

// subjectName is the variable holding the value a case statement
// inspects. Cases nested inside a branch get their own name so they never
// redeclare the outer one in the same block.
func subjectName(depth int) string {
	if depth == 0 {
		return "_res"
	}
	return "_res" + strconv.Itoa(depth)
}

type dispatch int

const (
	byTag dispatch = iota
	byLength
	byValue
)

// dispatchOf picks how a case statement tells its branches apart: string
// patterns compare values, list patterns compare lengths, everything else
// switches on the tag.
func dispatchOf(branches []ast.Branch) dispatch {
	mode := byTag
	for _, b := range branches {
		switch b.Pattern.(type) {
		case *ast.StringPattern, *ast.FormatStringPattern:
			return byValue
		case *ast.EmptyList, *ast.ListDestructure:
			mode = byLength
		}
	}
	return mode
}

func (g *generator) caseStatement(p *CodePrinter, c *ast.CaseStatement) {
	subject := subjectName(g.depth)
	p.writeIndent()
	p.write("const " + subject + " = ")
	g.printExpr(p, c.Predicate, precLowest, false)
	p.write(";")
	p.writeln()

	g.depth++
	defer func() { g.depth-- }()

	if dispatchOf(c.Branches) == byTag {
		g.tagSwitch(p, subject, c.Branches)
		return
	}
	for _, branch := range c.Branches {
		emitAll(p, g.guardedBranch(subject, branch))
	}
}

func (g *generator) tagSwitch(p *CodePrinter, subject string, branches []ast.Branch) {
	p.open("switch (" + subject + ".kind)")
	for _, branch := range branches {
		if d, ok := branch.Pattern.(*ast.Destructure); ok {
			p.open(`case "` + d.Constructor + `":`)
			if fields := bindFieldsStmt(d.Pattern, subject); fields != "" {
				p.line(fields)
			}
		} else {
			p.open("default:")
		}
		g.tail(p, branch.LetBody, branch.Body)
		p.close("")
	}
	p.close("")
}

// guardedBranch compiles one branch into an if-guarded tree that returns
// from inside when the pattern matches and falls through otherwise.
func (g *generator) guardedBranch(subject string, branch ast.Branch) []node {
	body := &hole{fill: func(p *CodePrinter) { g.tail(p, branch.LetBody, branch.Body) }}

	switch pat := branch.Pattern.(type) {
	case *ast.StringPattern:
		return nest([]string{literalTest(pat).on(subject)}, body)
	case *ast.FormatStringPattern:
		return nest([]string{literalTest(pat).on(subject)}, body)
	case *ast.EmptyList:
		return nest([]string{subject + ".length === 0"}, body)
	case *ast.Destructure:
		inner := []node{body}
		if fields := bindFieldsStmt(pat.Pattern, subject); fields != "" {
			inner = []node{stmt(fields), body}
		}
		return nest([]string{literalTest(pat).on(subject)}, inner...)
	case *ast.ListDestructure:
		return listPattern(subject, pat.Parts, body)
	default:
		return []node{&scope{children: []node{body}}}
	}
}

type testKind int

const (
	testTag testKind = iota
	testEquals
	testEmpty
)

// partTest is the condition one pattern element places on a value.
type partTest struct {
	kind  testKind
	value string
}

func (t partTest) on(target string) string {
	switch t.kind {
	case testTag:
		return target + `.kind === "` + t.value + `"`
	case testEmpty:
		return target + ".length === 0"
	default:
		return target + " === " + t.value
	}
}

// literalTest returns the test for any pattern element that is not a
// binder. The ValuePart case never reaches it.
func literalTest(part any) partTest {
	switch pt := part.(type) {
	case *ast.Destructure:
		return partTest{kind: testTag, value: pt.Constructor}
	case *ast.StringPattern:
		return partTest{kind: testEquals, value: `"` + pt.Body + `"`}
	case *ast.FormatStringPattern:
		return partTest{kind: testEquals, value: "`" + pt.Body + "`"}
	default:
		return partTest{kind: testEmpty}
	}
}

// bindFieldsStmt renders 'const { a, b } = from;' or "" when the pattern
// binds nothing.
func bindFieldsStmt(pattern, from string) string {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" || strings.ReplaceAll(pattern, " ", "") == "{}" {
		return ""
	}
	return "const " + pattern + " = " + from + ";"
}
