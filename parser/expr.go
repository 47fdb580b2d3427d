package parser

import (
	"strconv"

	"github.com/wudi/phpast/ast"
	"github.com/wudi/phpast/syntaxerr"
	"github.com/wudi/phpast/token"
)

// expression parses the minimal grammar this slice needs to exercise
// loop conditions, levels, and variable-variable ladders: variables,
// integer literals, bareword constant fetches, and parenthesization.
// A general PHP expression grammar (operators, calls, arrays, ...) is
// out of scope (spec.md §1).
func expression(s *State) ast.Expression {
	switch s.current().Kind {
	case token.Variable, token.Dollar, token.DollarLeftBrace:
		return dynamicVariable(s)
	case token.LiteralInteger:
		return integerLiteral(s)
	case token.Identifier:
		return constantFetch(s)
	case token.LeftParen:
		left, inner, right := parenthesized(s, expression)
		return &ast.ParenthesizedExpression{LeftParen: left, Inner: inner, RightParen: right}
	default:
		bad := s.next() // consume the offending token so parsing always makes progress
		s.addError(syntaxerr.New(syntaxerr.UnexpectedToken, bad.Span))
		return &ast.IntegerLiteral{LiteralSpan: bad.Span}
	}
}

func integerLiteral(s *State) ast.Expression {
	t := s.next()
	v, _ := strconv.ParseInt(t.Value.String(), 10, 64)
	return &ast.IntegerLiteral{LiteralSpan: t.Span, Value: v}
}

func constantFetch(s *State) ast.Expression {
	t := s.next()
	return &ast.ConstantFetchExpression{NameSpan: t.Span, Name: t.Value.String()}
}

// name reads a single identifier as a bareword Name, the atom used by
// trait/member declarations (spec.md §4.4).
func name(s *State) *ast.Name {
	if s.current().Kind != token.Identifier {
		s.addError(syntaxerr.NewUnexpectedToken(token.Identifier, s.current()))
		return &ast.Name{NameSpan: s.current().Span}
	}
	t := s.next()
	return &ast.Name{NameSpan: t.Span, Value: t.Value.String()}
}
