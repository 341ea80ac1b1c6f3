package astio

import (
	"gopkg.in/yaml.v3"

	"github.com/eeue56/derw-sub000/internal/ast"
)

func expression(node *yaml.Node) (ast.Expression, error) {
	if isNull(node) {
		return nil, nil
	}
	if node.Kind == yaml.ScalarNode {
		return &ast.Value{Body: node.Value}, nil
	}

	kind, f, err := kinded(node)
	if err != nil {
		return nil, err
	}

	switch kind {
	case "Value":
		body, err := f.str("body")
		return &ast.Value{Body: body}, err
	case "StringValue":
		body, err := f.str("body")
		return &ast.StringValue{Body: body}, err
	case "FormatStringValue":
		body, err := f.str("body")
		return &ast.FormatStringValue{Body: body}, err
	case "ListValue":
		items, err := expressions(f.get("items"))
		return &ast.ListValue{Items: items}, err
	case "ListRange":
		start, err := expression(f.get("start"))
		if err != nil {
			return nil, err
		}
		end, err := expression(f.get("end"))
		return &ast.ListRange{Start: start, End: end}, err
	case "ObjectLiteral":
		return objectLiteral(f)
	case "Constructor":
		name, err := f.requiredStr("name")
		if err != nil {
			return nil, err
		}
		c := &ast.Constructor{Name: name}
		if pattern := f.get("pattern"); !isNull(pattern) {
			pf, err := mapping(pattern)
			if err != nil {
				return nil, err
			}
			if c.Pattern, err = objectLiteral(pf); err != nil {
				return nil, err
			}
		}
		return c, nil
	case "IfStatement":
		return ifStatement(f)
	case "CaseStatement":
		return caseStatement(f)
	case "InfixExpression":
		op, err := f.requiredStr("operator")
		if err != nil {
			return nil, err
		}
		left, right, err := operands(f)
		return &ast.InfixExpression{Operator: op, Left: left, Right: right}, err
	case "PrefixExpression":
		op, err := f.requiredStr("operator")
		if err != nil {
			return nil, err
		}
		right, err := expression(f.get("right"))
		return &ast.PrefixExpression{Operator: op, Right: right}, err
	case "LeftPipe":
		left, right, err := operands(f)
		return &ast.LeftPipe{Left: left, Right: right}, err
	case "RightPipe":
		left, right, err := operands(f)
		return &ast.RightPipe{Left: left, Right: right}, err
	case "ModuleReference":
		path, err := f.strs("path")
		if err != nil {
			return nil, err
		}
		value, err := expression(f.get("value"))
		return &ast.ModuleReference{Path: path, Value: value}, err
	case "FunctionCall":
		name, err := f.requiredStr("name")
		if err != nil {
			return nil, err
		}
		args, err := expressions(f.get("args"))
		return &ast.FunctionCall{Name: name, Args: args}, err
	case "Lambda":
		return lambda(f)
	case "LambdaCall":
		lf, err := mapping(f.get("lambda"))
		if err != nil {
			return nil, err
		}
		l, err := lambda(lf)
		if err != nil {
			return nil, err
		}
		args, err := expressions(f.get("args"))
		return &ast.LambdaCall{Lambda: l, Args: args}, err
	}
	return nil, unknownKind(node, "expression", kind)
}

func expressions(node *yaml.Node) ([]ast.Expression, error) {
	items, err := sequence(node)
	if err != nil {
		return nil, err
	}
	out := make([]ast.Expression, 0, len(items))
	for _, item := range items {
		expr, err := expression(item)
		if err != nil {
			return nil, err
		}
		out = append(out, expr)
	}
	return out, nil
}

func operands(f fields) (ast.Expression, ast.Expression, error) {
	left, err := expression(f.get("left"))
	if err != nil {
		return nil, nil, err
	}
	right, err := expression(f.get("right"))
	return left, right, err
}

func objectLiteral(f fields) (*ast.ObjectLiteral, error) {
	base, err := expression(f.get("base"))
	if err != nil {
		return nil, err
	}
	items, err := sequence(f.get("fields"))
	if err != nil {
		return nil, err
	}
	obj := &ast.ObjectLiteral{Base: base}
	for _, item := range items {
		ff, err := mapping(item)
		if err != nil {
			return nil, err
		}
		name, err := ff.requiredStr("name")
		if err != nil {
			return nil, err
		}
		value, err := expression(ff.get("value"))
		if err != nil {
			return nil, err
		}
		obj.Fields = append(obj.Fields, ast.Field{Name: name, Value: value})
	}
	return obj, nil
}

func lambda(f fields) (*ast.Lambda, error) {
	args, err := f.strs("args")
	if err != nil {
		return nil, err
	}
	body, err := expression(f.get("body"))
	return &ast.Lambda{Args: args, Body: body}, err
}

func ifStatement(f fields) (*ast.IfStatement, error) {
	s := &ast.IfStatement{}
	var err error
	if s.Predicate, err = expression(f.get("predicate")); err != nil {
		return nil, err
	}
	if s.IfBody, err = expression(f.get("ifBody")); err != nil {
		return nil, err
	}
	if s.IfLetBody, err = declarations(f.get("ifLetBody")); err != nil {
		return nil, err
	}
	if s.ElseBody, err = expression(f.get("elseBody")); err != nil {
		return nil, err
	}
	if s.ElseLetBody, err = declarations(f.get("elseLetBody")); err != nil {
		return nil, err
	}
	return s, nil
}

func caseStatement(f fields) (*ast.CaseStatement, error) {
	predicate, err := expression(f.get("predicate"))
	if err != nil {
		return nil, err
	}
	items, err := sequence(f.get("branches"))
	if err != nil {
		return nil, err
	}
	c := &ast.CaseStatement{Predicate: predicate}
	for _, item := range items {
		bf, err := mapping(item)
		if err != nil {
			return nil, err
		}
		var branch ast.Branch
		if branch.Pattern, err = branchPattern(bf.get("pattern")); err != nil {
			return nil, err
		}
		if branch.LetBody, err = declarations(bf.get("letBody")); err != nil {
			return nil, err
		}
		if branch.Body, err = expression(bf.get("body")); err != nil {
			return nil, err
		}
		c.Branches = append(c.Branches, branch)
	}
	return c, nil
}

func branchPattern(node *yaml.Node) (ast.BranchPattern, error) {
	if isNull(node) {
		return &ast.Default{}, nil
	}
	kind, f, err := kinded(node)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "Default":
		return &ast.Default{}, nil
	case "ListDestructure":
		items, err := sequence(f.get("parts"))
		if err != nil {
			return nil, err
		}
		list := &ast.ListDestructure{}
		for _, item := range items {
			part, err := listPart(item)
			if err != nil {
				return nil, err
			}
			list.Parts = append(list.Parts, part)
		}
		return list, nil
	}

	part, err := sharedPattern(kind, f)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, unknownKind(node, "pattern", kind)
	}
	return part.(ast.BranchPattern), nil
}

func listPart(node *yaml.Node) (ast.ListDestructurePart, error) {
	kind, f, err := kinded(node)
	if err != nil {
		return nil, err
	}
	if kind == "ValuePart" {
		name, err := f.requiredStr("name")
		return &ast.ValuePart{Name: name}, err
	}
	part, err := sharedPattern(kind, f)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, unknownKind(node, "list pattern part", kind)
	}
	return part, nil
}

// sharedPattern decodes the patterns valid both as a whole branch pattern
// and inside a list pattern. It returns nil for any other kind.
func sharedPattern(kind string, f fields) (ast.ListDestructurePart, error) {
	switch kind {
	case "Destructure":
		constructor, err := f.requiredStr("constructor")
		if err != nil {
			return nil, err
		}
		pattern, err := f.str("pattern")
		return &ast.Destructure{Constructor: constructor, Pattern: pattern}, err
	case "StringPattern":
		body, err := f.str("body")
		return &ast.StringPattern{Body: body}, err
	case "FormatStringPattern":
		body, err := f.str("body")
		return &ast.FormatStringPattern{Body: body}, err
	case "EmptyList":
		return &ast.EmptyList{}, nil
	}
	return nil, nil
}
