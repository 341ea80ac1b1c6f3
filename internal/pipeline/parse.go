package pipeline

import (
	"path/filepath"
	"strings"

	"github.com/eeue56/derw-sub000/internal/ast"
	"github.com/eeue56/derw-sub000/internal/diagnostics"
	"github.com/eeue56/derw-sub000/internal/observability"
)

// ParseProcessor hands classified blocks to a BlockParser. Unknown blocks
// are reported whether or not a parser is installed.
type ParseProcessor struct {
	Parser BlockParser
}

func (pp *ParseProcessor) Name() string { return "parse" }

func (pp *ParseProcessor) Process(ctx *PipelineContext) *PipelineContext {
	for _, block := range ctx.Blocks {
		if block.Kind != ast.UnknownBlock {
			continue
		}
		first := ""
		if len(block.Lines) > 0 {
			first = strings.TrimSpace(block.Lines[0])
		}
		ctx.Errors = append(ctx.Errors, diagnostics.Newf(
			diagnostics.ErrD002, block.LineStart+1,
			"unrecognised block starting with %q", first,
		).WithFile(ctx.FilePath))
		observability.DiagnosticsTotal.WithLabelValues(observability.KindUnknownBlock).Inc()
	}

	if pp.Parser == nil || ctx.Module != nil || len(ctx.Blocks) == 0 {
		return ctx
	}

	mod, err := pp.Parser.ParseBlocks(ModuleName(ctx.FilePath), ctx.Blocks)
	if err != nil {
		ctx.Errors = append(ctx.Errors, diagnostics.Wrap(err, diagnostics.ErrD002, "parsing blocks").WithFile(ctx.FilePath))
		return ctx
	}
	ctx.Module = mod
	return ctx
}

// ModuleName derives a module name from its file path: src/Main.derw -> Main.
func ModuleName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
