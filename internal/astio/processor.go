package astio

import (
	"errors"

	"github.com/eeue56/derw-sub000/internal/diagnostics"
	"github.com/eeue56/derw-sub000/internal/observability"
	"github.com/eeue56/derw-sub000/internal/pipeline"
)

// Processor decodes ctx.SourceCode as a module document into ctx.Module.
// A module already on the context is left alone.
type Processor struct{}

func (dp *Processor) Name() string { return "decode" }

func (dp *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Module != nil || ctx.SourceCode == "" {
		return ctx
	}

	module, err := DecodeModule([]byte(ctx.SourceCode))
	if err != nil {
		var de *diagnostics.DiagnosticError
		if !errors.As(err, &de) {
			de = diagnostics.Wrap(err, diagnostics.ErrD001, "decoding module")
		}
		ctx.Errors = append(ctx.Errors, de.WithFile(ctx.FilePath))
		observability.DiagnosticsTotal.WithLabelValues(observability.KindDecode).Inc()
		return ctx
	}
	if module.Name == "" {
		module.Name = pipeline.ModuleName(ctx.FilePath)
	}
	ctx.Module = module
	return ctx
}
