package compiler

import "github.com/eeue56/derw-sub000/internal/pipeline"

// Processor generates target text for ctx.Module. It runs even when the
// module has diagnostics; the caller decides whether to write the output.
type Processor struct {
	// Target overrides the configured target when set.
	Target string
}

func (cp *Processor) Name() string { return "compile" }

func (cp *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Module == nil {
		return ctx
	}
	target := cp.Target
	if target == "" {
		target = ctx.Config.Target
	}
	ctx.Output = Generate(ctx.Module, target)
	return ctx
}
