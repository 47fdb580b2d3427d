package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/wudi/phpast/ast"
)

// treeDumper renders a parsed statement as an indented tree, walking
// it through ast.Visitor the same way a downstream consumer of this
// package would (spec.md §6's traversal contract).
type treeDumper struct {
	w         io.Writer
	depth     int
	withSpans bool
}

func dumpStatements(w io.Writer, stmts []ast.Statement, withSpans bool) {
	d := &treeDumper{w: w, withSpans: withSpans}
	for _, s := range stmts {
		ast.Walk(d, s)
	}
}

func (d *treeDumper) Visit(n ast.Node) bool {
	indent := strings.Repeat("  ", d.depth)
	if d.withSpans {
		fmt.Fprintf(d.w, "%s%s @%s\n", indent, kindName(n), n.Span())
	} else {
		fmt.Fprintf(d.w, "%s%s\n", indent, kindName(n))
	}
	d.depth++
	for _, c := range n.Children() {
		ast.Walk(d, c)
	}
	d.depth--
	return false // children already walked above, don't let Walk recurse again
}

func kindName(n ast.Node) string {
	return fmt.Sprintf("%T", n)
}
