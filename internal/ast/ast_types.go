package ast

// --- Type Nodes ---

// Type represents a type annotation attached to a declaration.
// E.g., a, Maybe a, List (a -> b)
type Type interface {
	typeNode()
}

// GenericType is a free type parameter, e.g. 'a' in 'List a'.
type GenericType struct {
	Name string
}

func (t *GenericType) typeNode() {}

// FixedType is a named type applied to zero or more arguments.
// E.g., Int, Maybe a, Result String (List a)
type FixedType struct {
	Name string
	Args []Type
}

func (t *FixedType) typeNode() {}

// FunctionType is a curried function type. The last argument is the result:
// a -> b -> c has Args [a, b, c].
type FunctionType struct {
	Args []Type
}

func (t *FunctionType) typeNode() {}

// Property is a named field of a type alias.
type Property struct {
	Name string
	Type Type
}

// TagArg is a named field carried by a union tag.
// E.g., 'value: a' in 'Just { value: a }'
type TagArg struct {
	Name string
	Type Type
}

// Tag is one constructor of a union type.
type Tag struct {
	Name string
	Args []TagArg
}
