package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/eeue56/derw-sub000/internal/pipeline"
)

const (
	colorRed   = "\033[31m"
	colorReset = "\033[0m"
)

type reporter struct {
	w     io.Writer
	color bool
}

// newReporter colours output only when w is a terminal.
func newReporter(w io.Writer) *reporter {
	r := &reporter{w: w}
	if f, ok := w.(*os.File); ok {
		r.color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return r
}

// report prints every diagnostic of every result and returns how many it
// printed.
func (r *reporter) report(results []*pipeline.PipelineContext) int {
	count := 0
	for _, result := range results {
		for _, err := range result.Errors {
			r.line(err.Error())
			count++
		}
		if result.Module == nil {
			continue
		}
		for _, msg := range result.Module.Errors {
			r.line(fmt.Sprintf("%s: %s", result.FilePath, msg))
			count++
		}
	}
	return count
}

func (r *reporter) line(text string) {
	if r.color {
		fmt.Fprintf(r.w, "%serror%s: %s\n", colorRed, colorReset, text)
		return
	}
	fmt.Fprintf(r.w, "error: %s\n", text)
}
