package main

import (
	"fmt"
	"io"

	"github.com/chzyer/readline"

	"github.com/wudi/phpast/lexer"
	"github.com/wudi/phpast/parser"
)

// runInteractiveShell reads one PHP snippet per line and prints its
// parsed tree, mirroring the teacher's `hey > ` REPL loop but backed
// by readline instead of a bare bufio.Scanner so history and line
// editing work (spec.md §1: CLI entry points are an outer harness
// concern, not part of the core).
func runInteractiveShell(cfg config) error {
	rl, err := readline.New(cfg.Prompt)
	if err != nil {
		return fmt.Errorf("starting readline: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}

		runSource(rl.Stdout(), line, cfg)
	}
}

func runSource(w io.Writer, src string, cfg config) {
	toks, lexErrs := lexer.Tokenize(src)
	for _, e := range lexErrs {
		fmt.Fprintln(w, "lex error:", e.Message())
	}

	stmts, parseErrs := parser.Parse(toks)
	for _, e := range parseErrs {
		fmt.Fprintln(w, "syntax error:", e.Message())
	}

	dumpStatements(w, stmts, cfg.DumpSpans)
}
