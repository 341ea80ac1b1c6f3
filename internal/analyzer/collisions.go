package analyzer

import "github.com/eeue56/derw-sub000/internal/ast"

// NamesOf returns the names declaration index introduces. Functions and
// consts contribute their own name, types their type name, and imports one
// module entry per imported module plus one value per exposed name.
func NamesOf(decl ast.Declaration, index int) ast.Names {
	var names ast.Names
	switch d := decl.(type) {
	case *ast.Import:
		for _, module := range d.Modules {
			names.Modules = addSeen(names.Modules, module.BindingName(), index)
			for _, exposed := range module.Exposing {
				names.Values = addSeen(names.Values, exposed, index)
			}
		}
	case *ast.Function:
		names.Values = addSeen(names.Values, d.Name, index)
	case *ast.Const:
		names.Values = addSeen(names.Values, d.Name, index)
	case *ast.UnionType:
		names.Values = addSeen(names.Values, d.Type.Name, index)
	case *ast.TypeAlias:
		names.Values = addSeen(names.Values, d.Type.Name, index)
	case *ast.Export, *ast.Comment, *ast.MultilineComment:
	}
	return names
}

func addSeen(seen []ast.Seen, name string, index int) []ast.Seen {
	for i := range seen {
		if seen[i].Name == name {
			seen[i].Indexes = append(seen[i].Indexes, index)
			return seen
		}
	}
	return append(seen, ast.Seen{Name: name, Indexes: []int{index}})
}

// mergeSeen unions two Seen lists. Entries sharing a name have their index
// lists concatenated with newer's indexes first. newer's entries keep their
// order and lead the result.
func mergeSeen(newer, older []ast.Seen) []ast.Seen {
	byName := make(map[string]int, len(older))
	for i, s := range older {
		byName[s.Name] = i
	}

	merged := make([]ast.Seen, 0, len(newer)+len(older))
	taken := make(map[string]bool, len(newer))
	for _, s := range newer {
		indexes := append([]int(nil), s.Indexes...)
		if i, ok := byName[s.Name]; ok {
			indexes = append(indexes, older[i].Indexes...)
		}
		merged = append(merged, ast.Seen{Name: s.Name, Indexes: indexes})
		taken[s.Name] = true
	}
	for _, s := range older {
		if !taken[s.Name] {
			merged = append(merged, s)
		}
	}
	return merged
}

// CollectNames folds the names of every declaration from right to left.
func CollectNames(decls []ast.Declaration) ast.Names {
	var acc ast.Names
	for i := len(decls) - 1; i >= 0; i-- {
		names := NamesOf(decls[i], i)
		acc = ast.Names{
			Modules: mergeSeen(names.Modules, acc.Modules),
			Values:  mergeSeen(names.Values, acc.Values),
		}
	}
	return acc
}

// Collisions reports every name introduced by more than one declaration,
// module aliases first, then values.
func Collisions(decls []ast.Declaration) []ast.Collision {
	names := CollectNames(decls)
	var collisions []ast.Collision
	for _, group := range [][]ast.Seen{names.Modules, names.Values} {
		for _, s := range group {
			if len(s.Indexes) > 1 {
				collisions = append(collisions, ast.Collision{Name: s.Name, Indexes: s.Indexes})
			}
		}
	}
	return collisions
}
