package ast

import "strings"

// BlockKind tags a run of source lines before it is handed to the parser.
type BlockKind int

const (
	UnknownBlock BlockKind = iota
	ImportBlock
	ExportBlock
	UnionTypeBlock
	TypeAliasBlock
	FunctionBlock
	ConstBlock
	CommentBlock
	MultilineCommentBlock

	// IndentBlock and DefinitionBlock only decide continuation inside the
	// classifier. They never reach the final block stream.
	IndentBlock
	DefinitionBlock
)

var blockKindNames = map[BlockKind]string{
	UnknownBlock:          "Unknown",
	ImportBlock:           "Import",
	ExportBlock:           "Export",
	UnionTypeBlock:        "UnionType",
	TypeAliasBlock:        "TypeAlias",
	FunctionBlock:         "Function",
	ConstBlock:            "Const",
	CommentBlock:          "Comment",
	MultilineCommentBlock: "MultilineComment",
	IndentBlock:           "Indent",
	DefinitionBlock:       "Definition",
}

func (k BlockKind) String() string {
	if name, ok := blockKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsTransient reports whether the kind is only meaningful while classifying.
func (k BlockKind) IsTransient() bool {
	return k == IndentBlock || k == DefinitionBlock
}

// ParseBlockKind is the inverse of String. Transient and unrecognised names
// map to UnknownBlock.
func ParseBlockKind(name string) BlockKind {
	for kind, n := range blockKindNames {
		if n == name && !kind.IsTransient() {
			return kind
		}
	}
	return UnknownBlock
}

// RawLine is a line of source text with its zero-based line number.
type RawLine struct {
	Number int
	Text   string
}

// UnparsedBlock is a classified run of lines waiting for the grammar parser.
type UnparsedBlock struct {
	Kind      BlockKind
	LineStart int
	Lines     []string
}

// Text joins the block lines back into source form.
func (b UnparsedBlock) Text() string {
	return strings.Join(b.Lines, "\n")
}
