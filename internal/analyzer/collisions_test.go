package analyzer

import (
	"reflect"
	"testing"

	"github.com/eeue56/derw-sub000/internal/ast"
)

func num(name string) *ast.Const {
	return &ast.Const{
		Name:  name,
		Type:  &ast.FixedType{Name: "number"},
		Value: &ast.Value{Body: "1"},
	}
}

func TestCollisionsReportsIndexesInOrder(t *testing.T) {
	decls := []ast.Declaration{
		num("a"),
		num("b"),
		num("x"),
		&ast.Comment{Body: "-- between"},
		num("c"),
		num("x"),
	}

	got := Collisions(decls)
	want := []ast.Collision{{Name: "x", Indexes: []int{2, 5}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Collisions() = %+v; want %+v", got, want)
	}
}

func TestCollisionsModulesBeforeValues(t *testing.T) {
	decls := []ast.Declaration{
		&ast.Function{Name: "map", Body: &ast.Value{Body: "1"}},
		&ast.Import{Modules: []ast.ImportModule{
			{Name: `"./List"`, Exposing: []string{"map"}},
		}},
		&ast.Import{Modules: []ast.ImportModule{
			{Name: `"./other/List"`},
		}},
	}

	got := Collisions(decls)
	want := []ast.Collision{
		{Name: "List", Indexes: []int{1, 2}},
		{Name: "map", Indexes: []int{0, 1}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Collisions() = %+v; want %+v", got, want)
	}
}

func TestCollisionsTypesShareValueNamespace(t *testing.T) {
	decls := []ast.Declaration{
		&ast.TypeAlias{Type: &ast.FixedType{Name: "Person"}},
		&ast.UnionType{Type: &ast.FixedType{Name: "Person"}},
		&ast.Export{Names: []string{"Person"}},
	}

	got := Collisions(decls)
	want := []ast.Collision{{Name: "Person", Indexes: []int{0, 1}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Collisions() = %+v; want %+v", got, want)
	}
}

func TestCollisionsNoneForUniqueNames(t *testing.T) {
	decls := []ast.Declaration{num("a"), num("b"), num("c")}
	if got := Collisions(decls); len(got) != 0 {
		t.Errorf("Collisions() = %+v; want none", got)
	}
}

func TestCollectNamesKeepsSingletons(t *testing.T) {
	decls := []ast.Declaration{
		&ast.Import{Modules: []ast.ImportModule{
			{Name: `"./Maybe"`, Alias: "M", Exposing: []string{"Just"}},
		}},
		num("value"),
	}

	got := CollectNames(decls)
	want := ast.Names{
		Modules: []ast.Seen{{Name: "M", Indexes: []int{0}}},
		Values: []ast.Seen{
			{Name: "Just", Indexes: []int{0}},
			{Name: "value", Indexes: []int{1}},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CollectNames() = %+v; want %+v", got, want)
	}
}

func TestCollisionMessage(t *testing.T) {
	got := CollisionMessage(ast.Collision{Name: "x", Indexes: []int{2, 5}})
	want := "name 'x' is defined multiple times (declarations 2, 5)"
	if got != want {
		t.Errorf("CollisionMessage() = %q; want %q", got, want)
	}
}
