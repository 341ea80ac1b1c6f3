package pipeline_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eeue56/derw-sub000/internal/analyzer"
	"github.com/eeue56/derw-sub000/internal/ast"
	"github.com/eeue56/derw-sub000/internal/astio"
	"github.com/eeue56/derw-sub000/internal/blocks"
	"github.com/eeue56/derw-sub000/internal/compiler"
	"github.com/eeue56/derw-sub000/internal/config"
	"github.com/eeue56/derw-sub000/internal/diagnostics"
	"github.com/eeue56/derw-sub000/internal/pipeline"
)

// recordingProcessor remembers that it ran.
type recordingProcessor struct {
	name string
	seen *[]string
}

func (rp *recordingProcessor) Name() string { return rp.name }

func (rp *recordingProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	*rp.seen = append(*rp.seen, rp.name)
	return ctx
}

// stubParser turns every Const block into a Const declaration whose value is
// the text after '='.
type stubParser struct{}

func (stubParser) ParseBlocks(moduleName string, unparsed []ast.UnparsedBlock) (*ast.Module, error) {
	module := &ast.Module{Name: moduleName}
	for _, b := range unparsed {
		if b.Kind != ast.ConstBlock || len(b.Lines) < 2 {
			continue
		}
		name, value, _ := strings.Cut(b.Lines[1], "=")
		module.Body = append(module.Body, &ast.Const{
			Name:  strings.TrimSpace(name),
			Value: &ast.Value{Body: strings.TrimSpace(value)},
		})
	}
	return module, nil
}

func TestRunContinuesAfterErrors(t *testing.T) {
	var seen []string
	ctx := pipeline.NewContext("Main.derw", "!!! nonsense", nil)

	ctx = pipeline.New(
		&blocks.Processor{},
		&pipeline.ParseProcessor{},
		&recordingProcessor{name: "after", seen: &seen},
	).Run(ctx)

	assert.Equal(t, []string{"after"}, seen)
	require.Len(t, ctx.Errors, 1)
	assert.True(t, diagnostics.IsCode(ctx.Errors[0], diagnostics.ErrD002))
	assert.Contains(t, ctx.Errors[0].Error(), `Main.derw:1:`)
	assert.NotEmpty(t, ctx.RunID)
	assert.True(t, ctx.HasDiagnostics())
}

func TestRunKeepsRunID(t *testing.T) {
	ctx := pipeline.NewContext("Main.derw", "", nil)
	ctx.RunID = "fixed"
	ctx = pipeline.New().Run(ctx)
	assert.Equal(t, "fixed", ctx.RunID)
	assert.False(t, ctx.HasDiagnostics())
}

func TestSourceToOutput(t *testing.T) {
	source := "answer: number\nanswer = 42\n\ncopy: number\ncopy = answr\n"
	cfg := config.Default()
	cfg.Target = config.TargetJavaScript

	ctx := pipeline.New(
		&blocks.Processor{},
		&pipeline.ParseProcessor{Parser: stubParser{}},
		&analyzer.CollisionsProcessor{},
		&analyzer.NamesProcessor{},
		&compiler.Processor{},
	).Run(pipeline.NewContext("src/Main.derw", source, cfg))

	require.Empty(t, ctx.Errors)
	require.NotNil(t, ctx.Module)
	assert.Equal(t, "Main", ctx.Module.Name)
	require.Len(t, ctx.Blocks, 2)
	assert.Equal(t, []string{
		"failed to find 'answr' in scope of 'copy', perhaps you meant: answer",
	}, ctx.Module.Errors)
	assert.Equal(t, "const answer = 42;\n\nconst copy = answr;\n", ctx.Output)
}

func TestDecodedModuleThroughAnalysis(t *testing.T) {
	doc := `name: Main
body:
  - kind: Const
    name: x
    value: "1"
  - kind: Const
    name: x
    value: "2"
`
	ctx := pipeline.New(
		&astio.Processor{},
		&analyzer.CollisionsProcessor{},
		&analyzer.NamesProcessor{},
	).Run(pipeline.NewContext("Main.yaml", doc, nil))

	require.Empty(t, ctx.Errors)
	assert.Equal(t, []ast.Collision{{Name: "x", Indexes: []int{0, 1}}}, ctx.Collisions)
	assert.Equal(t, []string{"name 'x' is defined multiple times (declarations 0, 1)"}, ctx.Module.Errors)
}

func TestDecodeFailureIsReported(t *testing.T) {
	ctx := pipeline.New(&astio.Processor{}, &analyzer.NamesProcessor{}).
		Run(pipeline.NewContext("Main.yaml", "name: M\nbody:\n  - kind: Class\n", nil))

	assert.Nil(t, ctx.Module)
	require.Len(t, ctx.Errors, 1)
	assert.True(t, diagnostics.IsCode(ctx.Errors[0], diagnostics.ErrD001))
	assert.Contains(t, ctx.Errors[0].Error(), "Main.yaml:3:")
}

func TestModuleName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"src/Main.derw", "Main"},
		{"Main", "Main"},
		{"a/b/List.Extra.derw", "List.Extra"},
	}
	for _, tt := range tests {
		if got := pipeline.ModuleName(tt.path); got != tt.want {
			t.Errorf("ModuleName(%q) = %q; want %q", tt.path, got, tt.want)
		}
	}
}
