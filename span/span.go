// Package span carries source locations through the lexer, parser, and
// AST. Every syntactic atom the parser consumes keeps one of these, so
// the tree stays a lossless projection of the original bytes.
package span

import "fmt"

// Position is one endpoint of a Span. Line and Column are 1-based;
// Offset is a 0-based byte index into the source buffer.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String renders "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is a contiguous source byte range. Spans are value types: copy
// them freely, never mutate one in place.
type Span struct {
	Start Position
	End   Position
}

// New builds a Span from two positions.
func New(start, end Position) Span {
	return Span{Start: start, End: end}
}

// Zero reports whether s is the unset zero value.
func (s Span) Zero() bool {
	return s == Span{}
}

// Join returns the smallest Span covering both a and b. If either is
// zero, the other is returned unchanged.
func Join(a, b Span) Span {
	if a.Zero() {
		return b
	}
	if b.Zero() {
		return a
	}
	start := a.Start
	if b.Start.Offset < start.Offset {
		start = b.Start
	}
	end := a.End
	if b.End.Offset > end.Offset {
		end = b.End
	}
	return Span{Start: start, End: end}
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}
