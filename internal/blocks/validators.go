package blocks

import (
	"strings"

	"github.com/eeue56/derw-sub000/internal/ast"
	"github.com/eeue56/derw-sub000/internal/config"
)

// validator pairs a line predicate with the kind it implies.
type validator struct {
	matches func(line string) bool
	kind    ast.BlockKind
}

// validators are tried in order; the first match wins. "type alias" must
// stay ahead of "type ", and the Indent check ahead of the signature checks.
var validators = []validator{
	{func(l string) bool { return strings.HasPrefix(l, config.LineCommentPrefix) }, ast.CommentBlock},
	{func(l string) bool { return strings.HasPrefix(l, config.MultilineCommentOpen) }, ast.MultilineCommentBlock},
	{func(l string) bool { return strings.HasPrefix(l, "type alias") }, ast.TypeAliasBlock},
	{func(l string) bool { return strings.HasPrefix(l, "type ") }, ast.UnionTypeBlock},
	{isIndent, ast.IndentBlock},
	{func(l string) bool { return strings.HasPrefix(l, "import") }, ast.ImportBlock},
	{func(l string) bool { return strings.HasPrefix(l, "exposing") }, ast.ExportBlock},
	{isFunctionSignature, ast.FunctionBlock},
	{hasTypeLine, ast.ConstBlock},
	{func(l string) bool { return strings.Contains(l, "=") }, ast.DefinitionBlock},
}

// Classify returns the kind of the first validator matching line.
// ok is false when no validator matches.
func Classify(line string) (kind ast.BlockKind, ok bool) {
	for _, v := range validators {
		if v.matches(line) {
			return v.kind, true
		}
	}
	return ast.UnknownBlock, false
}

func isIndent(line string) bool {
	return strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") || strings.HasPrefix(line, "}")
}

// splitTypeLine finds a top-level signature 'name: Type'. It needs exactly
// one colon outside brackets and a single token before it, so record
// fields like 'a: B, c: D' and cons patterns 'x :: xs' are not signatures.
func splitTypeLine(line string) (name string, signature string, ok bool) {
	depth := 0
	colon := -1
	colons := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '{', '(', '[':
			depth++
		case '}', ')', ']':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				colons++
				if colon < 0 {
					colon = i
				}
			}
		}
	}
	if colons != 1 {
		return "", "", false
	}
	fields := strings.Fields(line[:colon])
	if len(fields) != 1 {
		return "", "", false
	}
	return fields[0], line[colon+1:], true
}

func hasTypeLine(line string) bool {
	_, _, ok := splitTypeLine(line)
	return ok
}

func isFunctionSignature(line string) bool {
	_, signature, ok := splitTypeLine(line)
	return ok && len(strings.Split(signature, "->")) > 1
}
