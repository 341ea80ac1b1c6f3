package compiler

import (
	"bytes"
	"strings"
)

// --- Code Printer (target text, four-space indentation) ---

// Operator precedence in the target (higher = binds tighter)
var operatorPrecedence = map[string]int{
	"||":  1,
	"&&":  2,
	"===": 3,
	"!==": 3,
	"<":   4,
	">":   4,
	"<=":  4,
	">=":  4,
	"+":   7,
	"-":   7,
	"*":   8,
	"/":   8,
	"%":   8,
}

// Source operators whose spelling differs in the target.
var targetOperator = map[string]string{
	"==":  "===",
	"!=":  "!==",
	"and": "&&",
	"or":  "||",
}

const (
	precLowest = 0
	precPrefix = 90
	precAtom   = 100
)

func getPrecedence(op string) int {
	if p, ok := operatorPrecedence[op]; ok {
		return p
	}
	return precAtom // rendered as a call or array
}

type CodePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("    ")
	}
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *CodePrinter) writeln() {
	p.buf.WriteString("\n")
}

// line writes one complete indented statement.
func (p *CodePrinter) line(s string) {
	p.writeIndent()
	p.write(s)
	p.writeln()
}

// open writes 'head {' and indents what follows.
func (p *CodePrinter) open(head string) {
	if head == "" {
		p.line("{")
	} else {
		p.line(head + " {")
	}
	p.indent++
}

func (p *CodePrinter) close(tail string) {
	p.indent--
	p.line("}" + tail)
}

// lines writes multi-line text at the printer's current depth.
func (p *CodePrinter) lines(text string) {
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) == "" {
			p.writeln()
			continue
		}
		p.line(l)
	}
}
