package pipeline

import "github.com/eeue56/derw-sub000/internal/ast"

// Processor is one stage of the pipeline.
type Processor interface {
	Name() string
	Process(ctx *PipelineContext) *PipelineContext
}

// BlockParser is the grammar parser that turns classified blocks into
// declarations. It lives outside this repository; ParseProcessor adapts it.
type BlockParser interface {
	ParseBlocks(moduleName string, blocks []ast.UnparsedBlock) (*ast.Module, error)
}
