package parser

import (
	"github.com/wudi/phpast/ast"
	"github.com/wudi/phpast/span"
	"github.com/wudi/phpast/token"
)

// loopBody implements the shared brace-vs-alternative body every loop
// production uses (spec.md §4.3): `:` switches into the alternative
// form, reading statements until endKind, anything else is a single
// boxed statement (which may itself be a CompoundStatement).
func loopBody(s *State, endKind token.Kind) ast.LoopBody {
	if s.current().Kind == token.Colon {
		colon := skipColon(s)
		var stmts []ast.Statement
		for s.current().Kind != endKind && !s.isEOF() {
			stmts = append(stmts, statement(s))
		}
		endSpan := skip(s, endKind)
		ending := skipEnding(s)
		return ast.LoopBody{Form: ast.BodyBlock, Colon: colon, Statements: stmts, EndKeyword: endSpan, Ending: ending}
	}
	return ast.LoopBody{Form: ast.BodyStatement, Statement: statement(s)}
}

// foreachStatement is `foreach ( iterator ) body` (spec.md §4.3).
func foreachStatement(s *State) *ast.ForeachStatement {
	comments := gatherComments(s)
	foreachSpan := s.next().Span
	left := skipLeftParen(s)
	iterator := foreachIterator(s)
	right := skipRightParen(s)
	body := loopBody(s, token.EndForeach)
	return &ast.ForeachStatement{
		ForeachSpan: foreachSpan,
		LeftParen:   left,
		Iterator:    iterator,
		RightParen:  right,
		Body:        body,
		Comments:    comments,
	}
}

// foreachIterator reads `expr as [&]x[ => [&]y]`. The first expression
// after `as` is always read into a local before the parser knows
// whether `=>` follows; when it does, that local becomes Key and a
// freshly read expression becomes Value, keeping the AST in source
// order regardless of which branch fired (spec.md §4.3, §9 "Swap to
// preserve source order").
func foreachIterator(s *State) *ast.ForeachStatementIterator {
	expr := expression(s)
	asSpan := skip(s, token.As)

	var firstAmpersand span.Span
	if s.current().Kind == token.Ampersand {
		firstAmpersand = s.next().Span
	}
	first := expression(s)

	if s.current().Kind == token.DoubleArrow {
		doubleArrow := s.next().Span
		var secondAmpersand span.Span
		if s.current().Kind == token.Ampersand {
			secondAmpersand = s.next().Span
		}
		value := expression(s)
		return &ast.ForeachStatementIterator{
			Form:            ast.IteratorKeyAndValue,
			Expr:            expr,
			As:              asSpan,
			FirstAmpersand:  firstAmpersand,
			DoubleArrow:     doubleArrow,
			SecondAmpersand: secondAmpersand,
			Key:             first,
			Value:           value,
		}
	}

	return &ast.ForeachStatementIterator{
		Form:           ast.IteratorValue,
		Expr:           expr,
		As:             asSpan,
		FirstAmpersand: firstAmpersand,
		Value:          first,
	}
}

// exprList reads a comma-separated expression list terminated by `;`,
// the shape `for`'s init and condition clauses share (spec.md §4.3).
func exprList(s *State) ast.CommaSeparated[ast.Expression] {
	return commaSeparatedNoTrailing(s, expression, token.SemiColon)
}

// forStatement is `for ( init ; cond ; step ) body`; every list may be
// empty (spec.md §4.3). init and condition are read through
// semicolon_terminated, the named combinator spec.md §4.2/§4.3 call out
// for exactly this shape.
func forStatement(s *State) *ast.ForStatement {
	comments := gatherComments(s)
	forSpan := s.next().Span
	left := skipLeftParen(s)
	init, initSemi := semicolonTerminated(s, exprList)
	cond, conditionSemi := semicolonTerminated(s, exprList)
	step := commaSeparatedNoTrailing(s, expression, token.RightParen)
	right := skipRightParen(s)
	body := loopBody(s, token.EndFor)
	return &ast.ForStatement{
		ForSpan:       forSpan,
		LeftParen:     left,
		Init:          init,
		InitSemi:      initSemi,
		Condition:     cond,
		ConditionSemi: conditionSemi,
		Step:          step,
		RightParen:    right,
		Body:          body,
		Comments:      comments,
	}
}

// whileStatement is `while ( condition ) body`.
func whileStatement(s *State) *ast.WhileStatement {
	comments := gatherComments(s)
	whileSpan := s.next().Span
	left, condition, right := parenthesized(s, expression)
	body := loopBody(s, token.EndWhile)
	return &ast.WhileStatement{
		WhileSpan:  whileSpan,
		LeftParen:  left,
		Condition:  condition,
		RightParen: right,
		Body:       body,
		Comments:   comments,
	}
}

// doWhileStatement is `do stmt while ( cond ) ;`. It has no
// alternative-block form and the trailing `;` is mandatory (spec.md
// §4.3).
func doWhileStatement(s *State) *ast.DoWhileStatement {
	comments := gatherComments(s)
	doSpan := s.next().Span
	body := statement(s)
	whileSpan := skip(s, token.While)
	left, condition, right := parenthesized(s, expression)
	semicolon := skipSemicolon(s)
	return &ast.DoWhileStatement{
		DoSpan:     doSpan,
		Body:       body,
		WhileSpan:  whileSpan,
		LeftParen:  left,
		Condition:  condition,
		RightParen: right,
		Semicolon:  semicolon,
		Comments:   comments,
	}
}

// loopLevel reads break/continue's optional nesting-level argument:
// either a literal expression or an arbitrarily deep parenthesized
// wrapping around another level (spec.md §4.3).
func loopLevel(s *State) ast.Level {
	if s.current().Kind == token.LeftParen {
		left := s.next().Span
		inner := loopLevel(s)
		right := skipRightParen(s)
		return &ast.ParenthesizedLevel{LeftParen: left, Inner: inner, RightParen: right}
	}
	return &ast.LiteralLevel{Value: expression(s)}
}

// canStartLevel reports whether the current token could begin a Level,
// distinguishing `break;` (no level) from `break 2;` (level present).
func canStartLevel(s *State) bool {
	switch s.current().Kind {
	case token.SemiColon, token.CloseTag, token.EOF:
		return false
	default:
		return true
	}
}

func breakStatement(s *State) *ast.BreakStatement {
	breakSpan := s.next().Span
	var level ast.Level
	if canStartLevel(s) {
		level = loopLevel(s)
	}
	ending := skipEnding(s)
	return &ast.BreakStatement{BreakSpan: breakSpan, Level: level, Ending: ending}
}

func continueStatement(s *State) *ast.ContinueStatement {
	continueSpan := s.next().Span
	var level ast.Level
	if canStartLevel(s) {
		level = loopLevel(s)
	}
	ending := skipEnding(s)
	return &ast.ContinueStatement{ContinueSpan: continueSpan, Level: level, Ending: ending}
}
