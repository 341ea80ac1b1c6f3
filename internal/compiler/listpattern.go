package compiler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eeue56/derw-sub000/internal/ast"
)

// isGap reports whether parts[i] binds a variable-length middle segment:
// a binder that is neither first nor last and is followed by an element
// that can be searched for. A binder followed by another binder takes a
// single element, so two gaps are never adjacent.
func isGap(parts []ast.ListDestructurePart, i int) bool {
	if i == 0 || i >= len(parts)-1 {
		return false
	}
	if _, ok := parts[i].(*ast.ValuePart); !ok {
		return false
	}
	switch parts[i+1].(type) {
	case *ast.Destructure, *ast.StringPattern, *ast.FormatStringPattern:
		return true
	}
	return false
}

func hasGap(parts []ast.ListDestructurePart) bool {
	for i := range parts {
		if isGap(parts, i) {
			return true
		}
	}
	return false
}

// listPattern compiles a list destructure. Patterns without gaps become a
// length guard and one destructuring bind; patterns with gaps are planned
// step by step and searched.
func listPattern(subject string, parts []ast.ListDestructurePart, body *hole) []node {
	if len(parts) == 0 {
		return nest([]string{subject + ".length === 0"}, body)
	}
	if hasGap(parts) {
		return renderPlan(subject, planList(parts), body)
	}
	return gaplessPattern(subject, parts, body)
}

// requiredLength counts the fixed positions of a pattern: every part
// except a trailing rest binder or a trailing [].
func requiredLength(parts []ast.ListDestructurePart) int {
	if len(parts) == 0 {
		return 0
	}
	switch parts[len(parts)-1].(type) {
	case *ast.ValuePart, *ast.EmptyList:
		return len(parts) - 1
	}
	return len(parts)
}

func gaplessPattern(subject string, parts []ast.ListDestructurePart, body *hole) []node {
	n := requiredLength(parts)
	fixed := parts[:n]

	lengthGuard := fmt.Sprintf("%s.length >= %d", subject, n)
	binders := make([]string, 0, len(parts))
	for i, part := range fixed {
		if v, ok := part.(*ast.ValuePart); ok {
			binders = append(binders, v.Name)
		} else {
			binders = append(binders, placeholder(i))
		}
	}
	if n < len(parts) {
		switch last := parts[n].(type) {
		case *ast.EmptyList:
			lengthGuard = fmt.Sprintf("%s.length === %d", subject, n)
		case *ast.ValuePart:
			binders = append(binders, "..."+last.Name)
		}
	}

	var checks []string
	var inner []node
	for i, part := range fixed {
		if _, ok := part.(*ast.ValuePart); ok {
			continue
		}
		checks = append(checks, literalTest(part).on(placeholder(i)))
		if d, ok := part.(*ast.Destructure); ok {
			if fields := bindFieldsStmt(d.Pattern, placeholder(i)); fields != "" {
				inner = append(inner, stmt(fields))
			}
		}
	}
	inner = append(inner, body)

	var matched []node
	if len(binders) > 0 {
		matched = append(matched, stmt("const [ "+strings.Join(binders, ", ")+" ] = "+subject+";"))
	}
	if len(checks) > 0 {
		matched = append(matched, nest([]string{strings.Join(checks, " && ")}, inner...)...)
	} else {
		matched = append(matched, inner...)
	}
	return nest([]string{lengthGuard}, matched...)
}

func placeholder(i int) string {
	return "_" + strconv.Itoa(i)
}

// index is a position in the subject list: a found variable plus an
// offset, or a plain offset when base is empty.
type index struct {
	base   string
	offset int
}

func (ix index) plus(n int) index {
	return index{base: ix.base, offset: ix.offset + n}
}

func (ix index) String() string {
	switch {
	case ix.base == "":
		return strconv.Itoa(ix.offset)
	case ix.offset == 0:
		return ix.base
	default:
		return ix.base + " + " + strconv.Itoa(ix.offset)
	}
}

// step is one instruction of a gapped list match.
type step interface {
	planStep()
}

// checkLength requires the subject to be longer than than, or exactly
// than long.
type checkLength struct {
	than  index
	exact bool
}

type checkPart struct {
	name string
	test partTest
}

type bindElem struct {
	name string
	at   index
}

type bindFields struct {
	pattern string
	from    string
}

// bindSlice binds subject[from:to]; a nil to slices to the end.
type bindSlice struct {
	name string
	from index
	to   *index
}

// scan searches forward from from for the first element passing test and
// stores its position in _found<id>. Nothing after it runs when no element
// passes.
type scan struct {
	id   int
	from index
	test partTest
}

func (checkLength) planStep() {}
func (checkPart) planStep()   {}
func (bindElem) planStep()    {}
func (bindFields) planStep()  {}
func (bindSlice) planStep()   {}
func (scan) planStep()        {}

func foundVar(id int) string { return "_found" + strconv.Itoa(id) }

// planList lays out the match of a pattern containing gaps. Positions
// before the first gap are fixed; each gap scans for the element after it
// and every later position is counted from the last element found.
func planList(parts []ast.ListDestructurePart) []step {
	var steps []step
	cursor := index{}
	scans := 0

	for i := 0; i < len(parts); i++ {
		part := parts[i]
		last := i == len(parts)-1

		if v, ok := part.(*ast.ValuePart); ok {
			switch {
			case isGap(parts, i):
				found := index{base: foundVar(scans)}
				steps = append(steps,
					scan{id: scans, from: cursor, test: literalTest(parts[i+1])},
					bindSlice{name: v.Name, from: cursor, to: &found},
				)
				steps = append(steps, elementSteps(parts[i+1], i+1, found, false)...)
				cursor = found.plus(1)
				scans++
				i++
			case last:
				steps = append(steps, bindSlice{name: v.Name, from: cursor})
			default:
				steps = append(steps,
					checkLength{than: cursor},
					bindElem{name: v.Name, at: cursor},
				)
				cursor = cursor.plus(1)
			}
			continue
		}

		if _, ok := part.(*ast.EmptyList); ok && last {
			steps = append(steps, checkLength{than: cursor, exact: true})
			continue
		}

		steps = append(steps, checkLength{than: cursor})
		steps = append(steps, elementSteps(part, i, cursor, true)...)
		cursor = cursor.plus(1)
	}
	return steps
}

// elementSteps binds the fixed element at position at. check is false for
// an element a scan has already tested.
func elementSteps(part ast.ListDestructurePart, i int, at index, check bool) []step {
	name := placeholder(i)
	steps := []step{bindElem{name: name, at: at}}
	if check {
		steps = append(steps, checkPart{name: name, test: literalTest(part)})
	}
	if d, ok := part.(*ast.Destructure); ok && bindFieldsStmt(d.Pattern, name) != "" {
		steps = append(steps, bindFields{pattern: strings.TrimSpace(d.Pattern), from: name})
	}
	return steps
}

// renderPlan turns steps into nested scopes. Consecutive checks share one
// guard; the body goes into the innermost scope.
func renderPlan(subject string, steps []step, body *hole) []node {
	var top []node
	cur := &top
	var checks []string

	flush := func() {
		if len(checks) == 0 {
			return
		}
		s := &scope{head: "if (" + strings.Join(checks, " && ") + ")"}
		*cur = append(*cur, s)
		cur = &s.children
		checks = nil
	}

	for _, st := range steps {
		switch s := st.(type) {
		case checkLength:
			if s.exact {
				checks = append(checks, subject+".length === "+s.than.String())
			} else {
				checks = append(checks, subject+".length > "+s.than.String())
			}
		case checkPart:
			checks = append(checks, s.test.on(s.name))
		case bindElem:
			flush()
			*cur = append(*cur, stmt("const "+s.name+" = "+subject+"["+s.at.String()+"];"))
		case bindFields:
			flush()
			*cur = append(*cur, stmt(bindFieldsStmt(s.pattern, s.from)))
		case bindSlice:
			flush()
			bounds := s.from.String()
			if s.to != nil {
				bounds += ", " + s.to.String()
			}
			*cur = append(*cur, stmt("const "+s.name+" = "+subject+".slice("+bounds+");"))
		case scan:
			flush()
			found := foundVar(s.id)
			loop := "_i" + strconv.Itoa(s.id)
			hit := &scope{head: "if (" + found + " !== -1)"}
			*cur = append(*cur,
				stmt("let "+found+" = -1;"),
				&scope{
					head: fmt.Sprintf("for (let %s = %s; %s < %s.length; %s++)", loop, s.from, loop, subject, loop),
					children: nest(
						[]string{s.test.on(subject + "[" + loop + "]")},
						stmt(found+" = "+loop+";"),
						stmt("break;"),
					),
				},
				hit,
			)
			cur = &hit.children
		}
	}
	flush()
	*cur = append(*cur, body)
	return top
}
