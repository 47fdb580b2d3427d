package ast

import "github.com/wudi/phpast/span"

// CommaSeparated holds the result of parser.comma_separated_no_trailing:
// the parsed elements and the spans of the commas between them. For any
// grammar position that forbids a trailing comma, len(Commas) ==
// max(0, len(Inner)-1) (spec.md §3 invariant, §8 Testable Property 4).
type CommaSeparated[T Node] struct {
	Inner  []T
	Commas []span.Span
}

// Len reports how many elements were parsed.
func (c CommaSeparated[T]) Len() int { return len(c.Inner) }

// Children flattens the elements for traversal; commas carry no
// children of their own.
func (c CommaSeparated[T]) Children() []Node {
	if len(c.Inner) == 0 {
		return nil
	}
	out := make([]Node, 0, len(c.Inner))
	for _, e := range c.Inner {
		out = append(out, e)
	}
	return out
}

// Span joins the span of every element; commas fall inside that range
// by construction and do not widen it.
func (c CommaSeparated[T]) Span() span.Span {
	var s span.Span
	for _, e := range c.Inner {
		s = span.Join(s, e.Span())
	}
	return s
}

// EndingKind distinguishes the two ways a statement may terminate.
type EndingKind int

const (
	EndingSemicolon EndingKind = iota
	EndingCloseTag
)

// Ending is the tagged choice between ';' and '?>' terminating a
// statement (spec.md §4.2 skip_ending, Glossary).
type Ending struct {
	Kind EndingKind
	Span span.Span
}

// Level is break/continue's optional nesting-level argument: either a
// literal expression or a parenthesized wrapping around a deeper Level.
// Chains are finite; each layer of Parenthesized adds one pair of
// parens (spec.md §3 invariant on Level, §4.3).
type Level interface {
	Node
	levelNode()
}

// LiteralLevel is the base case: `break N;`.
type LiteralLevel struct {
	Value Expression
}

func (l *LiteralLevel) Kind() Kind          { return KindUnknown }
func (l *LiteralLevel) Span() span.Span     { return l.Value.Span() }
func (l *LiteralLevel) Children() []Node    { return []Node{l.Value} }
func (l *LiteralLevel) Accept(v Visitor)    { acceptChildren(l, v) }
func (l *LiteralLevel) levelNode()          {}

// ParenthesizedLevel is `break (N);`, `break ((N));`, ... — arbitrarily
// nested.
type ParenthesizedLevel struct {
	LeftParen  span.Span
	Inner      Level
	RightParen span.Span
}

func (l *ParenthesizedLevel) Kind() Kind       { return KindUnknown }
func (l *ParenthesizedLevel) Span() span.Span  { return span.Join(l.LeftParen, l.RightParen) }
func (l *ParenthesizedLevel) Children() []Node { return []Node{l.Inner} }
func (l *ParenthesizedLevel) Accept(v Visitor) { acceptChildren(l, v) }
func (l *ParenthesizedLevel) levelNode()       {}
