package astio

import (
	"gopkg.in/yaml.v3"

	"github.com/eeue56/derw-sub000/internal/ast"
	"github.com/eeue56/derw-sub000/internal/diagnostics"
)

// fields is a decoded mapping node, keyed by its scalar keys.
type fields struct {
	node   *yaml.Node
	values map[string]*yaml.Node
}

func isNull(node *yaml.Node) bool {
	return node == nil || (node.Kind == yaml.ScalarNode && node.Tag == "!!null")
}

func mapping(node *yaml.Node) (fields, error) {
	if node == nil || node.Kind != yaml.MappingNode {
		return fields{}, expected(node, "a mapping")
	}
	f := fields{node: node, values: make(map[string]*yaml.Node, len(node.Content)/2)}
	for i := 0; i+1 < len(node.Content); i += 2 {
		f.values[node.Content[i].Value] = node.Content[i+1]
	}
	return f, nil
}

// kinded reads a mapping and its 'kind' discriminator.
func kinded(node *yaml.Node) (string, fields, error) {
	f, err := mapping(node)
	if err != nil {
		return "", f, err
	}
	kind, err := f.requiredStr("kind")
	return kind, f, err
}

// sequence returns the items of a sequence node; a missing or null node is
// an empty sequence.
func sequence(node *yaml.Node) ([]*yaml.Node, error) {
	if isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, expected(node, "a sequence")
	}
	return node.Content, nil
}

func (f fields) get(key string) *yaml.Node {
	return f.values[key]
}

func (f fields) str(key string) (string, error) {
	node := f.values[key]
	if isNull(node) {
		return "", nil
	}
	if node.Kind != yaml.ScalarNode {
		return "", expected(node, "a scalar for '"+key+"'")
	}
	return node.Value, nil
}

func (f fields) requiredStr(key string) (string, error) {
	if isNull(f.values[key]) {
		return "", diagnostics.Newf(diagnostics.ErrD001, f.node.Line, "missing '%s'", key)
	}
	return f.str(key)
}

func (f fields) strs(key string) ([]string, error) {
	items, err := sequence(f.values[key])
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item.Kind != yaml.ScalarNode {
			return nil, expected(item, "a scalar")
		}
		out = append(out, item.Value)
	}
	return out, nil
}

// fixedType reads a required type that must be a FixedType, as union and
// alias heads are.
func (f fields) fixedType(key string) (*ast.FixedType, error) {
	node := f.values[key]
	if isNull(node) {
		return nil, diagnostics.Newf(diagnostics.ErrD001, f.node.Line, "missing '%s'", key)
	}
	t, err := typeNode(node)
	if err != nil {
		return nil, err
	}
	fixed, ok := t.(*ast.FixedType)
	if !ok {
		return nil, expected(node, "a fixed type for '"+key+"'")
	}
	return fixed, nil
}

func expected(node *yaml.Node, what string) error {
	if node == nil {
		return diagnostics.Newf(diagnostics.ErrD001, 0, "expected %s", what)
	}
	return diagnostics.Newf(diagnostics.ErrD001, node.Line, "expected %s", what)
}
