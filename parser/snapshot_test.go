package parser_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/wudi/phpast/ast"
	"github.com/wudi/phpast/lexer"
	"github.com/wudi/phpast/parser"
)

// dumpTree renders the Go type of every node, pre-order, the
// same way a structural diff over the tree would. Spans are omitted
// from the snapshot body itself; losslessness is checked separately
// by reconstructing the byte range from Span (spec.md §8 Testable
// Property 2).
func dumpTree(stmts []ast.Statement) string {
	var b strings.Builder
	depth := 0
	var visit func(n ast.Node)
	visit = func(n ast.Node) {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(fmt.Sprintf("%T\n", n))
		depth++
		for _, c := range n.Children() {
			visit(c)
		}
		depth--
	}
	for _, s := range stmts {
		visit(s)
	}
	return b.String()
}

// TestSnapshotTreeShapes snapshots the node-kind shape of every
// scenario from spec.md §8 so a future grammar change that alters
// structure (not just behavior) surfaces as an intentional snapshot
// update rather than a silent drift.
func TestSnapshotTreeShapes(t *testing.T) {
	scenarios := map[string]string{
		"foreach_key_value_ampersand": "foreach ($xs as $k => &$v) {}",
		"empty_for_loop":              "for (;;) ;",
		"do_while":                    "do { 1; } while (1);",
		"break_triple_parenthesized":  "break (((2)));",
		"trait_precedence_and_alias": `trait T {
			use A, B {
				A::m insteadof B;
				B::m as private n;
			}
		}`,
		"variable_variable_ladder": "$${x};",
	}

	for name, src := range scenarios {
		t.Run(name, func(t *testing.T) {
			toks, lexErrs := lexer.Tokenize(src)
			if lexErrs.HasErrors() {
				t.Fatalf("lex errors: %s", lexErrs.Error())
			}
			stmts, parseErrs := parser.Parse(toks)
			if parseErrs.HasErrors() {
				t.Fatalf("parse errors: %s", parseErrs.Error())
			}
			snaps.MatchSnapshot(t, name, dumpTree(stmts))
		})
	}
}

// TestLosslessRoundTrip checks spec.md §8 Testable Property 2 directly:
// every top-level statement's Span covers exactly the bytes it was
// parsed from, for each of these source snippets.
func TestLosslessRoundTrip(t *testing.T) {
	sources := []string{
		"foreach ($xs as $v) {}",
		"for ($i;;) ;",
		"while (1) {}",
		"do {} while (1);",
		"break 1;",
		"continue;",
	}

	for _, src := range sources {
		toks, lexErrs := lexer.Tokenize(src)
		if lexErrs.HasErrors() {
			t.Fatalf("%q: lex errors: %s", src, lexErrs.Error())
		}
		stmts, parseErrs := parser.Parse(toks)
		if parseErrs.HasErrors() {
			t.Fatalf("%q: parse errors: %s", src, parseErrs.Error())
		}
		if len(stmts) != 1 {
			t.Fatalf("%q: expected 1 statement, got %d", src, len(stmts))
		}
		sp := stmts[0].Span()
		if sp.Start.Offset != 0 || sp.End.Offset != len(src) {
			t.Fatalf("%q: span [%d,%d) does not cover the whole source (len %d)",
				src, sp.Start.Offset, sp.End.Offset, len(src))
		}
	}
}
