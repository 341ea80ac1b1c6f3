package pipeline

import (
	"context"

	"github.com/eeue56/derw-sub000/internal/ast"
	"github.com/eeue56/derw-sub000/internal/config"
)

// PipelineContext carries one module through every stage. Each stage reads
// what earlier stages left and adds its own results.
type PipelineContext struct {
	// Context scopes tracing spans; the pipeline never blocks on it.
	Context context.Context
	RunID   string

	FilePath   string
	SourceCode string
	Config     *config.Config

	Blocks     []ast.UnparsedBlock
	Module     *ast.Module
	Collisions []ast.Collision
	Output     string

	// Errors holds pipeline-level failures (*diagnostics.DiagnosticError).
	// Findings about the module itself live on Module.Errors.
	Errors []error
}

// NewContext builds a context for source text read from filePath.
func NewContext(filePath, source string, cfg *config.Config) *PipelineContext {
	if cfg == nil {
		cfg = config.Default()
	}
	return &PipelineContext{
		Context:    context.Background(),
		FilePath:   filePath,
		SourceCode: source,
		Config:     cfg,
	}
}

// HasDiagnostics reports whether any stage produced a finding.
func (c *PipelineContext) HasDiagnostics() bool {
	if len(c.Errors) > 0 {
		return true
	}
	return c.Module != nil && len(c.Module.Errors) > 0
}
