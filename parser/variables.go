package parser

import (
	"github.com/wudi/phpast/ast"
	"github.com/wudi/phpast/span"
	"github.com/wudi/phpast/syntaxerr"
	"github.com/wudi/phpast/token"
)

// simpleVariable reads a plain `$name` token.
func simpleVariable(s *State) *ast.SimpleVariable {
	t := s.next()
	name := t.Value.String()
	if len(name) > 0 && name[0] == '$' {
		name = name[1:]
	}
	return &ast.SimpleVariable{VarSpan: t.Span, Name: name}
}

// dynamicVariable implements the four-way dispatch spec.md §4.5
// describes: a plain `$name`, the single-token `${` the lexer may
// emit, the two-token `$` `{` sequence the lexer may emit instead for
// the identical source text, and the recursive `$` + dynamic_variable
// ladder. The AST cannot and need not distinguish the single- from
// the two-token lexer behavior: both land in BracedVariableVariable
// with Open covering whatever span was actually consumed (spec.md §9
// "Lexer quirk").
func dynamicVariable(s *State) ast.Variable {
	switch s.current().Kind {
	case token.Variable:
		return simpleVariable(s)

	case token.DollarLeftBrace:
		open := s.next().Span
		inner := expression(s)
		close := skipRightBrace(s)
		return &ast.BracedVariableVariable{Open: open, Inner: inner, Close: close}

	case token.Dollar:
		if s.peek().Kind == token.LeftBrace {
			dollar := s.next().Span
			brace := s.next().Span
			open := span.Join(dollar, brace)
			inner := expression(s)
			close := skipRightBrace(s)
			return &ast.BracedVariableVariable{Open: open, Inner: inner, Close: close}
		}
		dollarSpan := s.next().Span
		inner := dynamicVariable(s)
		return &ast.VariableVariable{DollarSpan: dollarSpan, Inner: inner}

	default:
		s.addError(syntaxerr.NewUnexpectedToken(token.Variable, s.current()))
		return &ast.SimpleVariable{VarSpan: s.current().Span}
	}
}
