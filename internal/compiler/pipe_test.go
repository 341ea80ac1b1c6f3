package compiler

import (
	"strconv"
	"testing"

	"github.com/eeue56/derw-sub000/internal/ast"
)

func val(body string) *ast.Value { return &ast.Value{Body: body} }

func TestFlattenPipes(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expression
		want string
	}{
		{
			name: "chain applies left to right",
			expr: &ast.LeftPipe{Left: val("a"), Right: &ast.LeftPipe{Left: val("f"), Right: val("g")}},
			want: "g(f(a))",
		},
		{
			name: "module reference call",
			expr: &ast.LeftPipe{
				Left: &ast.ListValue{Items: []ast.Expression{val("1"), val("2"), val("3")}},
				Right: &ast.ModuleReference{
					Path:  []string{"List"},
					Value: &ast.FunctionCall{Name: "foldl", Args: []ast.Expression{val("add")}},
				},
			},
			want: "List.foldl(add, [ 1, 2, 3 ])",
		},
		{
			name: "piped value is the last argument",
			expr: &ast.LeftPipe{Left: val("xs"), Right: &ast.FunctionCall{Name: "map", Args: []ast.Expression{val("f")}}},
			want: "map(f, xs)",
		},
		{
			name: "module reference value",
			expr: &ast.LeftPipe{Left: val("x"), Right: &ast.ModuleReference{Path: []string{"String"}, Value: val("toUpper")}},
			want: "String.toUpper(x)",
		},
		{
			name: "lambda target",
			expr: &ast.LeftPipe{Left: val("x"), Right: &ast.Lambda{
				Args: []string{"y"},
				Body: &ast.InfixExpression{Operator: "+", Left: val("y"), Right: val("1")},
			}},
			want: "((y: any) => y + 1)(x)",
		},
		{
			name: "right pipe",
			expr: &ast.RightPipe{Left: val("f"), Right: &ast.RightPipe{Left: val("g"), Right: val("x")}},
			want: "f(g(x))",
		},
		{
			name: "unsupported target is kept",
			expr: &ast.LeftPipe{Left: val("x"), Right: &ast.StringValue{Body: "s"}},
			want: `"s"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateExpression(tt.expr, "ts")
			if got != tt.want {
				t.Errorf("GenerateExpression() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestFlattenDoesNotModifyInput(t *testing.T) {
	call := &ast.FunctionCall{Name: "map", Args: []ast.Expression{val("f")}}
	Flatten(&ast.LeftPipe{Left: val("xs"), Right: call})
	if len(call.Args) != 1 {
		t.Errorf("input call has %d args after Flatten; want 1", len(call.Args))
	}
}

func TestFlattenLongChain(t *testing.T) {
	const n = 10000
	var right ast.Expression = val("f" + strconv.Itoa(n-1))
	for i := n - 2; i >= 0; i-- {
		right = &ast.LeftPipe{Left: val("f" + strconv.Itoa(i)), Right: right}
	}

	got := Flatten(&ast.LeftPipe{Left: val("a"), Right: right})

	depth := 0
	for {
		call, ok := got.(*ast.FunctionCall)
		if !ok {
			break
		}
		if want := "f" + strconv.Itoa(n-1-depth); call.Name != want {
			t.Fatalf("call at depth %d = %s; want %s", depth, call.Name, want)
		}
		got = call.Args[0]
		depth++
	}
	if depth != n {
		t.Errorf("nested calls = %d; want %d", depth, n)
	}
	if v, ok := got.(*ast.Value); !ok || v.Body != "a" {
		t.Errorf("innermost argument = %#v; want a", got)
	}
}
