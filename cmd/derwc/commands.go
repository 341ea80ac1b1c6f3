package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/eeue56/derw-sub000/internal/analyzer"
	"github.com/eeue56/derw-sub000/internal/astio"
	"github.com/eeue56/derw-sub000/internal/blocks"
	"github.com/eeue56/derw-sub000/internal/compiler"
	"github.com/eeue56/derw-sub000/internal/config"
	"github.com/eeue56/derw-sub000/internal/diagnostics"
	"github.com/eeue56/derw-sub000/internal/pipeline"
)

// loadConfig reads --config, or the nearest derw.yaml/derw.toml, or falls
// back to the defaults.
func loadConfig(c *cli.Context) (*config.Config, error) {
	path := c.String("config")
	if path == "" {
		found, err := config.FindConfig(".")
		if err != nil {
			return nil, diagnostics.Wrap(err, diagnostics.ErrD005, "searching for config")
		}
		if found == "" {
			slog.Debug("no config file found, using defaults")
			return config.Default(), nil
		}
		path = found
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, diagnostics.Wrap(err, diagnostics.ErrD005, "loading config")
	}
	slog.Debug("loaded config", "path", path, "target", cfg.Target, "workers", cfg.Workers)
	return cfg, nil
}

// runAll pushes every file through a fresh pipeline, at most cfg.Workers at
// a time. Results keep the order of files.
func runAll(ctx context.Context, cfg *config.Config, files []string, newPipeline func() *pipeline.Pipeline) ([]*pipeline.PipelineContext, error) {
	results := make([]*pipeline.PipelineContext, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			source, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading %s: %w", file, err)
			}
			pctx := pipeline.NewContext(file, string(source), cfg)
			pctx.Context = gctx
			results[i] = newPipeline().Run(pctx)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func requireFiles(c *cli.Context) ([]string, error) {
	files := c.Args().Slice()
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: no input files", c.Command.Name)
	}
	return files, nil
}

func blocksCommand(c *cli.Context) error {
	files, err := requireFiles(c)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	results, err := runAll(c.Context, cfg, files, func() *pipeline.Pipeline {
		return pipeline.New(blocksStages()...)
	})
	if err != nil {
		return err
	}

	for _, result := range results {
		out, err := astio.EncodeBlocks(result.Blocks)
		if err != nil {
			return fmt.Errorf("encoding blocks of %s: %w", result.FilePath, err)
		}
		if len(results) > 1 {
			fmt.Fprintf(os.Stdout, "# %s\n", result.FilePath)
		}
		os.Stdout.Write(out)
	}
	return exitStatus(newReporter(os.Stderr).report(results))
}

// blocksStages classifies source and reports unknown blocks. No grammar
// parser is installed, so nothing reaches a module.
func blocksStages() []pipeline.Processor {
	return []pipeline.Processor{&blocks.Processor{}, &pipeline.ParseProcessor{}}
}

func analysisStages() []pipeline.Processor {
	return []pipeline.Processor{
		&astio.Processor{},
		&analyzer.CollisionsProcessor{},
		&analyzer.NamesProcessor{},
	}
}

func checkCommand(c *cli.Context) error {
	files, err := requireFiles(c)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	results, err := runAll(c.Context, cfg, files, func() *pipeline.Pipeline {
		return pipeline.New(analysisStages()...)
	})
	if err != nil {
		return err
	}
	return exitStatus(newReporter(os.Stderr).report(results))
}

func compileCommand(c *cli.Context) error {
	files, err := requireFiles(c)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	target := c.String("target")
	switch target {
	case "", config.TargetTypeScript, config.TargetJavaScript:
	default:
		return fmt.Errorf("unknown target %q (want %q or %q)", target, config.TargetTypeScript, config.TargetJavaScript)
	}
	if target == "" {
		target = cfg.Target
	}

	results, err := runAll(c.Context, cfg, files, func() *pipeline.Pipeline {
		return pipeline.New(append(analysisStages(), &compiler.Processor{Target: target})...)
	})
	if err != nil {
		return err
	}

	outDir := c.String("out")
	for _, result := range results {
		// Modules with diagnostics are reported, never written.
		if result.HasDiagnostics() || result.Module == nil {
			continue
		}
		if outDir == "" {
			fmt.Fprint(os.Stdout, result.Output)
			continue
		}
		path := filepath.Join(outDir, result.Module.Name+"."+target)
		if err := writeOutput(path, result.Output); err != nil {
			return err
		}
		slog.Debug("wrote output", "file", result.FilePath, "output", path)
	}
	return exitStatus(newReporter(os.Stderr).report(results))
}

func writeOutput(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func exitStatus(diagnosticCount int) error {
	if diagnosticCount > 0 {
		return cli.Exit("", 1)
	}
	return nil
}
