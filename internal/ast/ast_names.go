package ast

// Seen records every declaration index at which a name is introduced.
type Seen struct {
	Name    string
	Indexes []int
}

// Collision is a Seen introduced by more than one declaration.
type Collision struct {
	Name    string
	Indexes []int
}

// Names partitions introduced names into imported-module aliases and
// everything else.
type Names struct {
	Modules []Seen
	Values  []Seen
}
