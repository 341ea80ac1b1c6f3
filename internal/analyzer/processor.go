package analyzer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eeue56/derw-sub000/internal/ast"
	"github.com/eeue56/derw-sub000/internal/diagnostics"
	"github.com/eeue56/derw-sub000/internal/observability"
	"github.com/eeue56/derw-sub000/internal/pipeline"
)

// CollisionsProcessor records duplicate top-level names on the context and,
// unless disabled in the config, on the module's error list.
type CollisionsProcessor struct{}

func (cp *CollisionsProcessor) Name() string { return "collisions" }

func (cp *CollisionsProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Module == nil {
		return ctx
	}

	ctx.Collisions = Collisions(ctx.Module.Body)
	if len(ctx.Collisions) == 0 || !ctx.Config.ShouldReportCollisions() {
		return ctx
	}

	existing := make(map[string]bool, len(ctx.Module.Errors))
	for _, e := range ctx.Module.Errors {
		existing[e] = true
	}
	var messages []string
	for _, collision := range ctx.Collisions {
		msg := CollisionMessage(collision)
		if existing[msg] {
			continue
		}
		existing[msg] = true
		messages = append(messages, msg)
		observability.DiagnosticsTotal.WithLabelValues(observability.KindCollision).Inc()
	}
	if len(messages) > 0 {
		ctx.Module = ctx.Module.WithErrors(messages...)
	}
	return ctx
}

// CollisionMessage renders a collision as a module diagnostic.
func CollisionMessage(c ast.Collision) string {
	indexes := make([]string, len(c.Indexes))
	for i, index := range c.Indexes {
		indexes[i] = strconv.Itoa(index)
	}
	return fmt.Sprintf("name '%s' is defined multiple times (declarations %s)", c.Name, strings.Join(indexes, ", "))
}

// NamesProcessor appends a diagnostic for every unresolved reference.
type NamesProcessor struct{}

func (np *NamesProcessor) Name() string { return "names" }

func (np *NamesProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Module == nil {
		return ctx
	}

	checker, err := CheckerFromConfig(ctx.Config)
	if err != nil {
		ctx.Errors = append(ctx.Errors, diagnostics.Wrap(err, diagnostics.ErrD005, "invalid known_globals").WithFile(ctx.FilePath))
		return ctx
	}

	before := len(ctx.Module.Errors)
	ctx.Module = checker.AddMissingNamesSuggestions(ctx.Module)
	if added := len(ctx.Module.Errors) - before; added > 0 {
		observability.DiagnosticsTotal.WithLabelValues(observability.KindUnresolved).Add(float64(added))
	}
	return ctx
}
