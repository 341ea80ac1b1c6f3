package compiler

import "github.com/eeue56/derw-sub000/internal/ast"

// Flatten rewrites a |> chain into nested calls: 'a |> f |> g' becomes
// g(f(a)). The chain is walked iteratively, so its length never grows the
// stack.
func Flatten(pipe *ast.LeftPipe) ast.Expression {
	left := pipe.Left
	right := pipe.Right
	for {
		inner, ok := right.(*ast.LeftPipe)
		if !ok {
			break
		}
		left = applyTo(inner.Left, left)
		right = inner.Right
	}
	return applyTo(right, left)
}

// FlattenRight rewrites a <| chain: 'f <| g <| x' becomes f(g(x)).
func FlattenRight(pipe *ast.RightPipe) ast.Expression {
	targets := []ast.Expression{pipe.Left}
	value := pipe.Right
	for {
		inner, ok := value.(*ast.RightPipe)
		if !ok {
			break
		}
		targets = append(targets, inner.Left)
		value = inner.Right
	}
	for i := len(targets) - 1; i >= 0; i-- {
		value = applyTo(targets[i], value)
	}
	return value
}

// applyTo passes arg as the last argument of target. Targets that cannot
// take an argument are returned unchanged.
func applyTo(target, arg ast.Expression) ast.Expression {
	switch t := target.(type) {
	case *ast.FunctionCall:
		args := make([]ast.Expression, 0, len(t.Args)+1)
		args = append(args, t.Args...)
		return &ast.FunctionCall{Name: t.Name, Args: append(args, arg)}
	case *ast.Value:
		return &ast.FunctionCall{Name: t.Body, Args: []ast.Expression{arg}}
	case *ast.ModuleReference:
		return &ast.ModuleReference{Path: t.Path, Value: applyTo(t.Value, arg)}
	case *ast.Lambda:
		return &ast.LambdaCall{Lambda: t, Args: []ast.Expression{arg}}
	default:
		return target
	}
}
