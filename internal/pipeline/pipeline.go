package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/eeue56/derw-sub000/internal/observability"
)

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	if ctx.RunID == "" {
		ctx.RunID = uuid.NewString()
	}
	base := ctx.Context
	if base == nil {
		base = context.Background()
	}
	observability.ModulesTotal.Inc()

	for _, processor := range p.processors {
		name := processor.Name()
		spanCtx, span := observability.Tracer.Start(base, "pipeline."+name, trace.WithAttributes(
			attribute.String("file", ctx.FilePath),
			attribute.String("run_id", ctx.RunID),
		))
		ctx.Context = spanCtx

		start := time.Now()
		ctx = processor.Process(ctx)
		elapsed := time.Since(start)

		span.End()
		observability.StageDuration.WithLabelValues(name).Observe(elapsed.Seconds())
		slog.Debug("pipeline stage finished",
			"stage", name,
			"file", ctx.FilePath,
			"run_id", ctx.RunID,
			"duration", elapsed,
		)
		// Continue on errors to collect diagnostics from all stages.
	}

	ctx.Context = base
	if ctx.HasDiagnostics() {
		moduleErrors := 0
		if ctx.Module != nil {
			moduleErrors = len(ctx.Module.Errors)
		}
		slog.Info("diagnostics reported",
			"file", ctx.FilePath,
			"run_id", ctx.RunID,
			"pipeline_errors", len(ctx.Errors),
			"module_errors", moduleErrors,
		)
	}
	return ctx
}
