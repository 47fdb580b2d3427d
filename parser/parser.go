package parser

import (
	"github.com/wudi/phpast/ast"
	"github.com/wudi/phpast/syntaxerr"
	"github.com/wudi/phpast/token"
)

// Parse drives a State over tokens to completion, returning every
// top-level statement alongside any syntax errors gathered along the
// way. Parsing never stops at the first error (spec.md §6: "a side
// list of SyntaxErrors") — each production that hits a mismatch
// records it and keeps going from wherever the cursor landed.
func Parse(tokens []token.Token) ([]ast.Statement, syntaxerr.List) {
	s := NewState(tokens)
	var statements []ast.Statement
	for !s.isEOF() {
		statements = append(statements, statement(s))
	}
	return statements, s.errors
}

// statement dispatches on the current token's kind to the matching
// production. Anything that doesn't match a known keyword falls
// through to the expression-statement production, the same fallback
// every recursive-descent PHP parser uses for assignments, calls, and
// bare expressions (spec.md §4).
func statement(s *State) ast.Statement {
	gatherAttributes(s)

	switch s.current().Kind {
	case token.Foreach:
		return foreachStatement(s)
	case token.For:
		return forStatement(s)
	case token.While:
		return whileStatement(s)
	case token.Do:
		return doWhileStatement(s)
	case token.Break:
		return breakStatement(s)
	case token.Continue:
		return continueStatement(s)
	case token.Trait:
		return traitStatement(s)
	case token.Namespace:
		return namespaceStatement(s)
	case token.LeftBrace:
		return compoundStatement(s)
	case token.SemiColon:
		return &ast.NoopStatement{Semicolon: s.next().Span}
	default:
		expr := expression(s)
		ending := skipEnding(s)
		return &ast.ExpressionStatement{Expr: expr, Ending: ending}
	}
}

// compoundStatement is `{ stmt* }`.
func compoundStatement(s *State) *ast.CompoundStatement {
	left := skipLeftBrace(s)
	var stmts []ast.Statement
	for s.current().Kind != token.RightBrace && !s.isEOF() {
		stmts = append(stmts, statement(s))
	}
	right := skipRightBrace(s)
	return &ast.CompoundStatement{LeftBrace: left, Statements: stmts, RightBrace: right}
}
