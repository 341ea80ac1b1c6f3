package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
)

const VERSION = "0.1.0"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "derwc",
		Usage:   "classify, check and compile Derw modules",
		Version: VERSION,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to derw.yaml or derw.toml (default: searched upwards from the working directory)",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			logLevel := slog.LevelInfo
			if c.Bool("verbose") {
				logLevel = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "blocks",
				Usage:     "split source files into top-level blocks and print them as YAML",
				ArgsUsage: "FILE.derw...",
				Action:    blocksCommand,
			},
			{
				Name:      "check",
				Usage:     "report name collisions and unresolved names in parsed modules",
				ArgsUsage: "FILE.yaml...",
				Action:    checkCommand,
			},
			{
				Name:      "compile",
				Usage:     "check parsed modules and generate TypeScript or JavaScript",
				ArgsUsage: "FILE.yaml...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "target",
						Usage: "output language, ts or js (default: from config)",
					},
					&cli.StringFlag{
						Name:  "out",
						Usage: "directory to write generated files to (default: stdout)",
					},
				},
				Action: compileCommand,
			},
		},
	}
}
