package parser

import (
	"github.com/wudi/phpast/ast"
	"github.com/wudi/phpast/span"
	"github.com/wudi/phpast/token"
)

// namespaceStatement dispatches between the unbraced and braced forms
// by checking what follows the (optional) name (spec.md §4, supplement
// grounded on original_source/crates/pxp-ast/src/namespaces.rs).
func namespaceStatement(s *State) ast.Statement {
	nsSpan := s.next().Span

	var nm *ast.Name
	if s.current().Kind == token.Identifier {
		nm = name(s)
		for s.current().Kind == token.NsSeparator && s.peek().Kind == token.Identifier {
			s.next()
			part := s.next()
			nm.NameSpan = span.Join(nm.NameSpan, part.Span)
			nm.Value += `\` + part.Value.String()
		}
	}

	if s.current().Kind == token.LeftBrace {
		left := skipLeftBrace(s)
		var stmts []ast.Statement
		for s.current().Kind != token.RightBrace && !s.isEOF() {
			stmts = append(stmts, statement(s))
		}
		right := skipRightBrace(s)
		return &ast.BracedNamespace{NamespaceSpan: nsSpan, Name: nm, LeftBrace: left, Statements: stmts, RightBrace: right}
	}

	ending := skipEnding(s)
	return &ast.UnbracedNamespace{NamespaceSpan: nsSpan, Name: nm, Ending: ending}
}
