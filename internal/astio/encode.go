package astio

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/eeue56/derw-sub000/internal/ast"
)

type blockDoc struct {
	Kind      string   `yaml:"kind"`
	LineStart int      `yaml:"lineStart"`
	Lines     []string `yaml:"lines"`
}

// EncodeBlocks writes classified blocks as a YAML sequence, one mapping per
// block. LineStart stays zero-based as the classifier reports it.
func EncodeBlocks(blocks []ast.UnparsedBlock) ([]byte, error) {
	docs := make([]blockDoc, 0, len(blocks))
	for _, b := range blocks {
		lines := b.Lines
		if lines == nil {
			lines = []string{}
		}
		docs = append(docs, blockDoc{Kind: b.Kind.String(), LineStart: b.LineStart, Lines: lines})
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(docs); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeBlocks reads what EncodeBlocks wrote. Unrecognised kinds decode as
// UnknownBlock.
func DecodeBlocks(data []byte) ([]ast.UnparsedBlock, error) {
	var docs []blockDoc
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, err
	}
	blocks := make([]ast.UnparsedBlock, 0, len(docs))
	for _, d := range docs {
		blocks = append(blocks, ast.UnparsedBlock{
			Kind:      ast.ParseBlockKind(d.Kind),
			LineStart: d.LineStart,
			Lines:     d.Lines,
		})
	}
	return blocks, nil
}
