package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eeue56/derw-sub000/internal/ast"
	"github.com/eeue56/derw-sub000/internal/config"
	"github.com/eeue56/derw-sub000/internal/pipeline"
)

func TestGenerateExpression(t *testing.T) {
	infix := func(op string, l, r ast.Expression) *ast.InfixExpression {
		return &ast.InfixExpression{Operator: op, Left: l, Right: r}
	}

	tests := []struct {
		name string
		expr ast.Expression
		want string
	}{
		{"equality", infix("==", val("a"), val("b")), "a === b"},
		{"inequality", infix("!=", val("a"), val("b")), "a !== b"},
		{"grouping", infix("*", infix("+", val("a"), val("b")), val("c")), "(a + b) * c"},
		{"no redundant parens", infix("+", infix("*", val("a"), val("b")), val("c")), "a * b + c"},
		{"right operand", infix("-", val("a"), infix("-", val("b"), val("c"))), "a - (b - c)"},
		{"boolean", infix("||", infix("&&", val("a"), val("b")), val("c")), "a && b || c"},
		{"append", infix("++", val("a"), val("b")), "a.concat(b)"},
		{"append grouped", infix("++", infix("+", val("a"), val("b")), val("c")), "(a + b).concat(c)"},
		{"cons", infix("::", val("x"), val("xs")), "[ x, ...xs ]"},
		{"prefix", &ast.PrefixExpression{Operator: "!", Right: val("ok")}, "!ok"},
		{"not", &ast.PrefixExpression{Operator: "not", Right: infix("==", val("a"), val("b"))}, "!(a === b)"},
		{"string", &ast.StringValue{Body: "hi"}, `"hi"`},
		{"format string", &ast.FormatStringValue{Body: "hi ${name}"}, "`hi ${name}`"},
		{"empty list", &ast.ListValue{}, "[ ]"},
		{"list", &ast.ListValue{Items: []ast.Expression{val("1"), &ast.StringValue{Body: "a"}}}, `[ 1, "a" ]`},
		{"range", &ast.ListRange{Start: val("1"), End: val("5")}, "Array.from({ length: 5 - 1 + 1 }, (_v, _i) => _i + 1)"},
		{"object", &ast.ObjectLiteral{Base: val("person"), Fields: []ast.Field{{Name: "age", Value: val("3")}}}, "{ ...person, age: 3 }"},
		{"empty object", &ast.ObjectLiteral{}, "{}"},
		{"constructor", &ast.Constructor{Name: "Just", Pattern: &ast.ObjectLiteral{Fields: []ast.Field{{Name: "value", Value: val("1")}}}}, "Just({ value: 1 })"},
		{"constructor without fields", &ast.Constructor{Name: "Nothing"}, "Nothing({})"},
		{"call", &ast.FunctionCall{Name: "add", Args: []ast.Expression{val("1"), infix("+", val("2"), val("3"))}}, "add(1, 2 + 3)"},
		{"module reference", &ast.ModuleReference{Path: []string{"List"}, Value: val("map")}, "List.map"},
		{"lambda", &ast.Lambda{Args: []string{"a", "b"}, Body: infix("+", val("a"), val("b"))}, "(a: any, b: any) => a + b"},
		{"lambda returning object", &ast.Lambda{Args: []string{"x"}, Body: &ast.ObjectLiteral{Fields: []ast.Field{{Name: "x", Value: val("x")}}}}, "(x: any) => ({ x: x })"},
		{
			"ternary",
			&ast.IfStatement{Predicate: infix("<", val("n"), val("0")), IfBody: &ast.PrefixExpression{Operator: "-", Right: val("n")}, ElseBody: val("n")},
			"n < 0 ? -n : n",
		},
		{
			"ternary as operand",
			infix("+", val("1"), &ast.IfStatement{Predicate: val("ok"), IfBody: val("1"), ElseBody: val("2")}),
			"1 + (ok ? 1 : 2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateExpression(tt.expr, config.TargetTypeScript)
			if got != tt.want {
				t.Errorf("GenerateExpression() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestGenerateLambdaJavaScript(t *testing.T) {
	got := GenerateExpression(&ast.Lambda{Args: []string{"x"}, Body: val("x")}, config.TargetJavaScript)
	assert.Equal(t, "(x) => x", got)
}

func sampleModule() *ast.Module {
	return &ast.Module{
		Name: "Main",
		Body: []ast.Declaration{
			&ast.Import{Modules: []ast.ImportModule{
				{Name: `"./Maybe"`, Alias: "Maybe", Exposing: []string{"Just", "Nothing"}},
			}},
			&ast.Export{Names: []string{"main"}},
			&ast.Comment{Body: "-- the answer"},
			&ast.Const{Name: "answer", Type: fixed("Number"), Value: val("42")},
			&ast.Function{
				Name:       "main",
				ReturnType: fixed("Maybe", fixed("Number")),
				Body: &ast.Constructor{Name: "Just", Pattern: &ast.ObjectLiteral{
					Fields: []ast.Field{{Name: "value", Value: val("answer")}},
				}},
			},
		},
	}
}

func TestGenerateModuleTypeScript(t *testing.T) {
	want := `import * as Maybe from "./Maybe";
import { Just, Nothing } from "./Maybe";

export { main };

// the answer

const answer: number = 42;

function main(): Maybe.Maybe<number> {
    return Just({ value: answer });
}
`
	assert.Equal(t, want, Generate(sampleModule(), config.TargetTypeScript))
}

func TestGenerateModuleJavaScript(t *testing.T) {
	want := `import * as Maybe from "./Maybe";
import { Just, Nothing } from "./Maybe";

export { main };

// the answer

const answer = 42;

function main() {
    return Just({ value: answer });
}
`
	assert.Equal(t, want, Generate(sampleModule(), config.TargetJavaScript))
}

func TestGenerateUnionType(t *testing.T) {
	maybe := &ast.UnionType{
		Type: fixed("Maybe", generic("a")),
		Tags: []ast.Tag{
			{Name: "Just", Args: []ast.TagArg{{Name: "value", Type: generic("a")}}},
			{Name: "Nothing"},
		},
	}
	module := &ast.Module{Body: []ast.Declaration{maybe}}

	wantTS := `type Just<a> = {
    kind: "Just";
    value: a;
};

function Just<a>(args: { value: a }): Just<a> {
    return {
        kind: "Just",
        ...args,
    };
}

type Nothing = {
    kind: "Nothing";
};

function Nothing(args: {}): Nothing {
    return {
        kind: "Nothing",
        ...args,
    };
}

type Maybe<a> = Just<a> | Nothing;
`
	assert.Equal(t, wantTS, Generate(module, config.TargetTypeScript))

	wantJS := `function Just(args) {
    return {
        kind: "Just",
        ...args,
    };
}

function Nothing(args) {
    return {
        kind: "Nothing",
        ...args,
    };
}
`
	assert.Equal(t, wantJS, Generate(module, config.TargetJavaScript))
}

func TestGenerateTypeAlias(t *testing.T) {
	person := &ast.TypeAlias{
		Type: fixed("Person"),
		Properties: []ast.Property{
			{Name: "name", Type: fixed("String")},
			{Name: "age", Type: fixed("Number")},
		},
	}

	want := `type Person = {
    name: string;
    age: number;
};

function Person(args: { name: string, age: number }): Person {
    return {
        ...args,
    };
}
`
	assert.Equal(t, want, Generate(&ast.Module{Body: []ast.Declaration{person}}, config.TargetTypeScript))
}

func TestGenerateLetBodies(t *testing.T) {
	total := &ast.Const{
		Name: "total",
		Type: fixed("Number"),
		LetBody: []ast.Declaration{
			&ast.Const{Name: "base", Type: fixed("Number"), Value: val("10")},
		},
		Value: &ast.InfixExpression{Operator: "+", Left: val("base"), Right: val("1")},
	}
	abs := &ast.Function{
		Name:       "abs",
		Args:       []ast.FunctionArg{named("n", fixed("Number")), &ast.UnusedArg{Type: fixed("Bool")}},
		ReturnType: fixed("Number"),
		LetBody: []ast.Declaration{
			&ast.Function{
				Name:       "negate",
				Args:       []ast.FunctionArg{named("x", fixed("Number"))},
				ReturnType: fixed("Number"),
				Body:       &ast.PrefixExpression{Operator: "-", Right: val("x")},
			},
		},
		Body: &ast.IfStatement{
			Predicate:   &ast.InfixExpression{Operator: "<", Left: val("n"), Right: val("0")},
			IfBody:      &ast.FunctionCall{Name: "negate", Args: []ast.Expression{val("n")}},
			ElseLetBody: []ast.Declaration{&ast.Const{Name: "same", Type: fixed("Number"), Value: val("n")}},
			ElseBody:    val("same"),
		},
	}

	want := `const total: number = (function (): any {
    const base: number = 10;
    return base + 1;
})();

function abs(n: number, _1: boolean): number {
    function negate(x: number): number {
        return -x;
    }
    if (n < 0) {
        return negate(n);
    } else {
        const same: number = n;
        return same;
    }
}
`
	assert.Equal(t, want, Generate(&ast.Module{Body: []ast.Declaration{total, abs}}, config.TargetTypeScript))
}

func TestGenerateMultilineComment(t *testing.T) {
	module := &ast.Module{Body: []ast.Declaration{
		&ast.MultilineComment{Body: "{-\nhello\n\nworld\n-}"},
	}}
	assert.Equal(t, "/*\nhello\n\nworld\n*/\n", Generate(module, config.TargetJavaScript))
}

func TestProcessor(t *testing.T) {
	cfg := config.Default()
	cfg.Target = config.TargetJavaScript

	ctx := pipeline.NewContext("Main.derw", "", cfg)
	ctx.Module = sampleModule()
	ctx = pipeline.New(&Processor{}).Run(ctx)
	require.NotEmpty(t, ctx.Output)
	assert.Contains(t, ctx.Output, "const answer = 42;")

	ctx = pipeline.NewContext("Main.derw", "", cfg)
	ctx.Module = sampleModule()
	ctx = (&Processor{Target: config.TargetTypeScript}).Process(ctx)
	assert.Contains(t, ctx.Output, "const answer: number = 42;")
}
