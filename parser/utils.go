package parser

import (
	"github.com/wudi/phpast/ast"
	"github.com/wudi/phpast/span"
	"github.com/wudi/phpast/syntaxerr"
	"github.com/wudi/phpast/token"
)

// skip consumes the current token if it has kind; otherwise it records
// an UnexpectedToken error and returns the zero Span, leaving the
// cursor where it was so the caller can attempt recovery (spec.md §4.2).
func skip(s *State, kind token.Kind) span.Span {
	if s.current().Kind == kind {
		return s.next().Span
	}
	s.addError(syntaxerr.NewUnexpectedToken(kind, s.current()))
	return span.Span{}
}

func skipLeftParen(s *State) span.Span  { return skip(s, token.LeftParen) }
func skipRightParen(s *State) span.Span { return skip(s, token.RightParen) }
func skipLeftBrace(s *State) span.Span  { return skip(s, token.LeftBrace) }
func skipRightBrace(s *State) span.Span { return skip(s, token.RightBrace) }
func skipSemicolon(s *State) span.Span  { return skip(s, token.SemiColon) }
func skipColon(s *State) span.Span      { return skip(s, token.Colon) }
func skipComma(s *State) span.Span      { return skip(s, token.Comma) }

// skipEnding consumes whichever of `;` or `?>` terminates a statement,
// reporting the taxonomy's Kind tag alongside the consumed span
// (spec.md §4.2 skip_ending, Glossary).
func skipEnding(s *State) ast.Ending {
	if s.current().Kind == token.CloseTag {
		return ast.Ending{Kind: ast.EndingCloseTag, Span: s.next().Span}
	}
	return ast.Ending{Kind: ast.EndingSemicolon, Span: skipSemicolon(s)}
}

// parenthesized wraps inner between a required `(` and `)`, returning
// the two delimiter spans alongside inner's result (spec.md §4.2).
func parenthesized[T any](s *State, inner func(*State) T) (span.Span, T, span.Span) {
	left := skipLeftParen(s)
	value := inner(s)
	right := skipRightParen(s)
	return left, value, right
}

// commaSeparatedNoTrailing reads inner, then `, inner` repeatedly,
// stopping before one of terminators. A trailing comma immediately
// followed by a terminator is a syntax error, never silently accepted
// (spec.md §4.2, §8 Testable Property 4 — the distinguishing design
// decision from PHP's permissive trailing-comma grammar elsewhere).
// A production may accept more than one terminator shape — a trait-use
// list ends at either `;` or `{` (spec.md §4.4) — so every one of them
// must be checked before accepting a comma as real.
func commaSeparatedNoTrailing[T ast.Node](s *State, inner func(*State) T, terminators ...token.Kind) ast.CommaSeparated[T] {
	isTerminator := func(k token.Kind) bool {
		for _, t := range terminators {
			if k == t {
				return true
			}
		}
		return false
	}

	var out ast.CommaSeparated[T]
	if isTerminator(s.current().Kind) {
		return out
	}
	out.Inner = append(out.Inner, inner(s))
	for s.current().Kind == token.Comma {
		if isTerminator(s.peek().Kind) {
			commaTok := s.current()
			s.addError(syntaxerr.NewUnexpectedToken(s.peek().Kind, commaTok))
			out.Commas = append(out.Commas, s.next().Span)
			return out
		}
		out.Commas = append(out.Commas, skipComma(s))
		out.Inner = append(out.Inner, inner(s))
	}
	return out
}

// semicolonTerminated reads inner then a mandatory `;` (never the
// close-tag ending alternative), bundling the pair the way spec.md §4.2
// names it; forStatement reads its init and condition lists through it.
func semicolonTerminated[T any](s *State, inner func(*State) T) (T, span.Span) {
	value := inner(s)
	return value, skipSemicolon(s)
}
