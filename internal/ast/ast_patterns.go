package ast

// --- Pattern Matching ---

// Branch is one arm of a case statement.
type Branch struct {
	Pattern BranchPattern
	Body    Expression
	LetBody []Declaration
}

// BranchPattern is the left-hand side of a branch.
type BranchPattern interface {
	branchPatternNode()
}

// Destructure matches a union tag and optionally binds its fields.
// Just { value } has Constructor "Just" and Pattern "{ value }".
type Destructure struct {
	Constructor string
	Pattern     string
}

func (p *Destructure) branchPatternNode() {}
func (p *Destructure) listPartNode()      {}

// StringPattern matches a string literal.
type StringPattern struct {
	Body string
}

func (p *StringPattern) branchPatternNode() {}
func (p *StringPattern) listPartNode()      {}

// FormatStringPattern matches a format string literal.
type FormatStringPattern struct {
	Body string
}

func (p *FormatStringPattern) branchPatternNode() {}
func (p *FormatStringPattern) listPartNode()      {}

// EmptyList matches []. Inside a list pattern it pins the length.
type EmptyList struct{}

func (p *EmptyList) branchPatternNode() {}
func (p *EmptyList) listPartNode()      {}

// ListDestructure matches 'a :: B { b } :: rest' style patterns.
type ListDestructure struct {
	Parts []ListDestructurePart
}

func (p *ListDestructure) branchPatternNode() {}

// Default matches anything.
type Default struct{}

func (p *Default) branchPatternNode() {}

// ListDestructurePart is one element of a ListDestructure.
// Implemented by *ValuePart, *Destructure, *StringPattern,
// *FormatStringPattern and *EmptyList.
type ListDestructurePart interface {
	listPartNode()
}

// ValuePart binds a name inside a list pattern.
type ValuePart struct {
	Name string
}

func (p *ValuePart) listPartNode() {}
