// Command phpast is a thin outer harness around the core parsing
// packages: it owns file I/O, flag handling, configuration, and the
// interactive shell so span/token/ast/syntaxerr/lexer/parser can stay
// pure (spec.md §1 lists CLI entry points and file I/O as external
// collaborators, not part of the grammar core).
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/wudi/phpast/version"
)

func main() {
	cfg, err := loadConfig(".phpast.yml")
	if err != nil {
		fmt.Fprintln(os.Stderr, "phpast: loading .phpast.yml:", err)
		os.Exit(1)
	}

	app := &cli.Command{
		Name:  "phpast",
		Usage: "parse PHP source and print its syntax tree",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"a"},
				Usage:   "run as an interactive shell",
			},
			&cli.StringFlag{
				Name:    "code",
				Aliases: []string{"r"},
				Usage:   "parse <code> directly instead of a file",
			},
			&cli.BoolFlag{
				Name:  "version",
				Usage: "print the version and exit",
			},
			&cli.BoolFlag{
				Name:  "spans",
				Usage: "include source spans in the tree dump",
				Value: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.IsSet("spans") {
				cfg.DumpSpans = cmd.Bool("spans")
			}

			if cmd.Bool("version") {
				fmt.Println(version.Version())
				return nil
			}
			if cmd.Bool("interactive") {
				return runInteractiveShell(cfg)
			}
			if code := cmd.String("code"); code != "" {
				runSource(os.Stdout, code, cfg)
				return nil
			}
			if cmd.Args().Len() > 0 {
				return runFile(cmd.Args().First(), cfg)
			}

			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			runSource(os.Stdout, string(data), cfg)
			return nil
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "phpast:", err)
		os.Exit(1)
	}
}

func runFile(path string, cfg config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	runSource(os.Stdout, string(data), cfg)
	return nil
}
