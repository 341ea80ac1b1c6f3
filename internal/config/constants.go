package config

const SourceFileExt = ".derw"

// Block delimiters recognised by the classifier.
const (
	LineCommentPrefix     = "--"
	MultilineCommentOpen  = "{-"
	MultilineCommentClose = "-}"
)

// GlobalScopePrefix marks names that resolve against the host runtime.
// The analyzer never reports them.
const GlobalScopePrefix = "globalThis"

// DefaultSuggestionDistance is the largest edit distance at which a known
// name is offered as a correction.
const DefaultSuggestionDistance = 3

// Target languages
const (
	TargetTypeScript = "ts"
	TargetJavaScript = "js"
)

// Built-in type names mapped onto the target.
const (
	StringTypeName = "String"
	NumberTypeName = "Number"
	BoolTypeName   = "Bool"
	ListTypeName   = "List"
	AnyTypeName    = "any"
	VoidTypeName   = "void"
)

// BuiltinGenericNames are lowercase names that parse as type parameters but
// denote concrete target types.
var BuiltinGenericNames = []string{"any", "void", "never", "unknown", "string", "number", "boolean", "object"}

// Config file names searched by FindConfig, in priority order.
var ConfigFileNames = []string{"derw.yaml", "derw.yml", "derw.toml"}
