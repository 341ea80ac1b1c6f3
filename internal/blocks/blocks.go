// Package blocks splits module source into classified, unparsed blocks.
package blocks

import (
	"strings"

	"github.com/eeue56/derw-sub000/internal/ast"
	"github.com/eeue56/derw-sub000/internal/config"
)

// foldState is threaded through IntoBlocks one line at a time. step takes
// it by value and returns the next state; earlier states are never reused.
type foldState struct {
	blocks []ast.UnparsedBlock

	current      []string
	kind         ast.BlockKind
	resolved     bool // kind came from a validator
	lineStart    int
	previousLine string
}

// IntoBlocks classifies every line of text and folds continuation lines
// into the block they belong to. It never fails: lines no validator
// recognises end up in Unknown blocks for the parser to reject.
func IntoBlocks(text string) []ast.UnparsedBlock {
	state := foldState{}
	for i, line := range strings.Split(text, "\n") {
		state = state.step(ast.RawLine{Number: i, Text: strings.TrimSuffix(line, "\r")})
	}
	return state.flush().blocks
}

func (s foldState) isOpen() bool {
	return len(s.current) > 0
}

func (s foldState) step(line ast.RawLine) foldState {
	if s.isOpen() && s.resolved && s.kind == ast.MultilineCommentBlock {
		s.current = append(s.current, line.Text)
		s.previousLine = line.Text
		if line.Text == config.MultilineCommentClose {
			return s.flush()
		}
		return s
	}

	if isBlank(line.Text) {
		s.previousLine = line.Text
		return s
	}

	kind, ok := Classify(line.Text)
	switch {
	case !s.isOpen():
		s = s.open(line, kind, ok)
	case ok && kind.IsTransient():
		if isBlank(s.previousLine) {
			s.current = append(s.current, s.previousLine)
		}
		s.current = append(s.current, line.Text)
	default:
		s = s.flush().open(line, kind, ok)
	}
	s.previousLine = line.Text
	return s
}

func (s foldState) open(line ast.RawLine, kind ast.BlockKind, ok bool) foldState {
	s.current = []string{line.Text}
	s.kind = kind
	s.resolved = ok
	s.lineStart = line.Number
	return s
}

// flush closes the open block, if any. Unresolved and transient kinds
// collapse into Unknown.
func (s foldState) flush() foldState {
	if !s.isOpen() {
		return s
	}
	kind := s.kind
	if !s.resolved || kind.IsTransient() {
		kind = ast.UnknownBlock
	}
	s.blocks = append(s.blocks, ast.UnparsedBlock{
		Kind:      kind,
		LineStart: s.lineStart,
		Lines:     s.current,
	})
	s.current = nil
	s.resolved = false
	return s
}

func isBlank(line string) bool {
	return len(strings.TrimSpace(line)) == 0
}
