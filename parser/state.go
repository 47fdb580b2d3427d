// Package parser is a hand-written recursive-descent parser over a
// token stream, building the lossless tree defined in package ast. It
// never imports package lexer — the token slice is its only input
// (spec.md §1, §5).
package parser

import (
	"github.com/wudi/phpast/ast"
	"github.com/wudi/phpast/span"
	"github.com/wudi/phpast/syntaxerr"
	"github.com/wudi/phpast/token"
)

// State drives a single pass over a token slice. current and peek
// never mutate position; next is the only method that advances the
// cursor. Every production function takes *State and leaves the
// cursor sitting just past whatever it consumed, win or lose
// (spec.md §4.1).
type State struct {
	tokens []token.Token
	pos    int

	errors syntaxerr.List

	// pendingAttributes is the side channel spec.md §4.1 describes:
	// an attribute group gathered ahead of a statement or trait member
	// sits here until the next traitStatement claims it with
	// takeAttributes, or a later gathered group replaces it.
	pendingAttributes *ast.AttributeGroup
}

// NewState builds a State over tokens. An empty slice is treated as a
// single synthetic EOF.
func NewState(tokens []token.Token) *State {
	if len(tokens) == 0 {
		tokens = []token.Token{token.EOFToken(span.Position{Line: 1, Column: 1})}
	}
	return &State{tokens: tokens}
}

// current returns the token at the cursor without advancing.
func (s *State) current() token.Token {
	if s.pos >= len(s.tokens) {
		return s.tokens[len(s.tokens)-1]
	}
	return s.tokens[s.pos]
}

// peek returns the token one past the cursor without advancing.
func (s *State) peek() token.Token {
	if s.pos+1 >= len(s.tokens) {
		return s.tokens[len(s.tokens)-1]
	}
	return s.tokens[s.pos+1]
}

// next advances the cursor by one and returns the token that was
// current before advancing.
func (s *State) next() token.Token {
	t := s.current()
	if s.pos < len(s.tokens)-1 {
		s.pos++
	}
	return t
}

// isEOF reports whether the cursor sits on the synthetic EOF token.
func (s *State) isEOF() bool {
	return s.current().Kind == token.EOF
}

func (s *State) addError(err *syntaxerr.Error) {
	s.errors.Add(err)
}

// takeAttributes consumes and clears the pending attribute side
// channel, returning nil if nothing was gathered.
func (s *State) takeAttributes() *ast.AttributeGroup {
	a := s.pendingAttributes
	s.pendingAttributes = nil
	return a
}

func (s *State) setAttributes(a *ast.AttributeGroup) {
	s.pendingAttributes = a
}

// hasPendingAttributes reports whether an attribute group is sitting in
// the side channel, without consuming it.
func (s *State) hasPendingAttributes() bool {
	return s.pendingAttributes != nil
}
