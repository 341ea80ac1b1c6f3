package compiler

// node is a statement-level fragment of a compiled branch. Branches are
// assembled as a tree first so the body can be placed into the innermost
// scope once every binder is known.
type node interface {
	emit(p *CodePrinter)
}

// stmt is a single statement line.
type stmt string

func (s stmt) emit(p *CodePrinter) { p.line(string(s)) }

// scope is 'head { children }'. An empty head emits a bare block.
type scope struct {
	head     string
	children []node
}

func (s *scope) emit(p *CodePrinter) {
	p.open(s.head)
	for _, child := range s.children {
		child.emit(p)
	}
	p.close("")
}

// hole is the pending branch body.
type hole struct {
	fill func(p *CodePrinter)
}

func (h *hole) emit(p *CodePrinter) {
	if h.fill != nil {
		h.fill(p)
	}
}

// nest builds the chain of scopes described by guards, each inside the
// previous one, with inner appended to the innermost.
func nest(guards []string, inner ...node) []node {
	if len(guards) == 0 {
		return inner
	}
	return []node{&scope{head: "if (" + guards[0] + ")", children: nest(guards[1:], inner...)}}
}

func emitAll(p *CodePrinter, nodes []node) {
	for _, n := range nodes {
		n.emit(p)
	}
}
