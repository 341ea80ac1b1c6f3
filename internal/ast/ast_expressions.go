package ast

// Expression is the closed set of expression nodes. Consumers switch over
// the concrete types; every switch in this repository lists all of them.
type Expression interface {
	expressionNode()
}

// Value is an identifier, a numeric or boolean literal, or a field access
// such as 'person.name'.
type Value struct {
	Body string
}

func (e *Value) expressionNode() {}

// StringValue is a double-quoted string literal without its quotes.
type StringValue struct {
	Body string
}

func (e *StringValue) expressionNode() {}

// FormatStringValue is a backtick string with ${...} interpolations,
// stored without its backticks.
type FormatStringValue struct {
	Body string
}

func (e *FormatStringValue) expressionNode() {}

// ListValue represents [ a, b, c ].
type ListValue struct {
	Items []Expression
}

func (e *ListValue) expressionNode() {}

// ListRange represents [ start..end ].
type ListRange struct {
	Start Expression
	End   Expression
}

func (e *ListRange) expressionNode() {}

// Field is one key of an object literal.
type Field struct {
	Name  string
	Value Expression
}

// ObjectLiteral represents { ...base, name: value }. Base is optional.
type ObjectLiteral struct {
	Base   Expression
	Fields []Field
}

func (e *ObjectLiteral) expressionNode() {}

// Constructor represents a union tag or alias construction: Just { value: 1 }.
type Constructor struct {
	Name    string
	Pattern *ObjectLiteral
}

func (e *Constructor) expressionNode() {}

// IfStatement represents 'if p then a else b', each arm with optional lets.
type IfStatement struct {
	Predicate   Expression
	IfBody      Expression
	IfLetBody   []Declaration
	ElseBody    Expression
	ElseLetBody []Declaration
}

func (e *IfStatement) expressionNode() {}

// CaseStatement represents 'case predicate of' followed by branches.
type CaseStatement struct {
	Predicate Expression
	Branches  []Branch
}

func (e *CaseStatement) expressionNode() {}

// InfixExpression represents a binary operator application.
// Operators: + - * / % ++ :: == != < <= > >= && ||
type InfixExpression struct {
	Operator string
	Left     Expression
	Right    Expression
}

func (e *InfixExpression) expressionNode() {}

// PrefixExpression represents '!x' or '-x'.
type PrefixExpression struct {
	Operator string
	Right    Expression
}

func (e *PrefixExpression) expressionNode() {}

// LeftPipe represents 'left |> right'.
type LeftPipe struct {
	Left  Expression
	Right Expression
}

func (e *LeftPipe) expressionNode() {}

// RightPipe represents 'left <| right'.
type RightPipe struct {
	Left  Expression
	Right Expression
}

func (e *RightPipe) expressionNode() {}

// ModuleReference represents a value reached through an imported module:
// List.map f xs has Path [List] and Value map(f, xs).
type ModuleReference struct {
	Path  []string
	Value Expression
}

func (e *ModuleReference) expressionNode() {}

// FunctionCall represents 'name arg1 arg2'.
type FunctionCall struct {
	Name string
	Args []Expression
}

func (e *FunctionCall) expressionNode() {}

// Lambda represents '\x y -> body'.
type Lambda struct {
	Args []string
	Body Expression
}

func (e *Lambda) expressionNode() {}

// LambdaCall is a lambda applied directly to arguments. The parser never
// produces it; pipe flattening does.
type LambdaCall struct {
	Lambda *Lambda
	Args   []Expression
}

func (e *LambdaCall) expressionNode() {}
