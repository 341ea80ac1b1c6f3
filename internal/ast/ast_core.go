package ast

import (
	"path"
	"strings"
)

// Declaration is a top-level (or let-bound) unit produced by the parser
// from one UnparsedBlock.
type Declaration interface {
	declarationNode()
}

// Module is the root node handed to the compiler core. Errors accumulates
// diagnostics from every stage; nothing ever removes entries from it.
type Module struct {
	Name   string
	Body   []Declaration
	Errors []string
}

// WithErrors returns a copy of the module whose error list is extended.
// The receiver is left untouched.
func (m *Module) WithErrors(errs ...string) *Module {
	next := *m
	next.Errors = make([]string, 0, len(m.Errors)+len(errs))
	next.Errors = append(next.Errors, m.Errors...)
	next.Errors = append(next.Errors, errs...)
	return &next
}

// ImportNamespace distinguishes project-relative imports from globals.
type ImportNamespace int

const (
	RelativeImport ImportNamespace = iota
	GlobalImport
)

// ImportModule is a single module named by an import declaration.
// import "./Maybe" as Maybe exposing ( Maybe, Just, Nothing )
type ImportModule struct {
	Name      string
	Alias     string // empty when no 'as' clause was given
	Exposing  []string
	Namespace ImportNamespace
}

// BindingName is the identifier the import introduces in module scope:
// the alias when given, otherwise the bare module name ("./src/List" -> List).
func (im ImportModule) BindingName() string {
	if im.Alias != "" {
		return im.Alias
	}
	name := strings.Trim(im.Name, `"`)
	if im.Namespace == GlobalImport {
		return name
	}
	return strings.TrimSuffix(path.Base(name), path.Ext(name))
}

// Import represents an import declaration; one line may import several modules.
type Import struct {
	Modules []ImportModule
}

func (d *Import) declarationNode() {}

// Export represents 'exposing ( a, b )'.
type Export struct {
	Names []string
}

func (d *Export) declarationNode() {}

// UnionType represents 'type Maybe a = Just { value: a } | Nothing'.
type UnionType struct {
	Type *FixedType
	Tags []Tag
}

func (d *UnionType) declarationNode() {}

// TypeAlias represents 'type alias Person = { name: string, age: number }'.
type TypeAlias struct {
	Type       *FixedType
	Properties []Property
}

func (d *TypeAlias) declarationNode() {}

// FunctionArg is a parameter of a function declaration.
type FunctionArg interface {
	functionArgNode()
}

// NamedArg is a parameter bound to a name.
type NamedArg struct {
	Name string
	Type Type
}

func (a *NamedArg) functionArgNode() {}

// UnusedArg is a parameter given only a type in the signature. It is
// addressable positionally as _0, _1, ...
type UnusedArg struct {
	Type Type
}

func (a *UnusedArg) functionArgNode() {}

// Function represents a function with its signature, optional let body and body.
type Function struct {
	Name       string
	ReturnType Type
	Args       []FunctionArg
	LetBody    []Declaration
	Body       Expression
}

func (d *Function) declarationNode() {}

// Const represents a typed constant binding.
type Const struct {
	Name    string
	Type    Type
	LetBody []Declaration
	Value   Expression
}

func (d *Const) declarationNode() {}

// Comment represents a '--' line comment.
type Comment struct {
	Body string
}

func (d *Comment) declarationNode() {}

// MultilineComment represents a '{- ... -}' comment.
type MultilineComment struct {
	Body string
}

func (d *MultilineComment) declarationNode() {}
