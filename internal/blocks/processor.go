package blocks

import "github.com/eeue56/derw-sub000/internal/pipeline"

// Processor classifies ctx.SourceCode into ctx.Blocks.
type Processor struct{}

func (bp *Processor) Name() string { return "blocks" }

func (bp *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.SourceCode == "" {
		return ctx
	}
	ctx.Blocks = IntoBlocks(ctx.SourceCode)
	return ctx
}
