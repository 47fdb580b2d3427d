// Package syntaxerr is the core's error model: a closed, tagged set of
// syntax error kinds (spec.md §6), each carrying at minimum a Span.
// Lexer-origin errors are surfaced unchanged through this same type
// (spec.md §7) rather than reinterpreted by the parser.
package syntaxerr

import (
	"fmt"

	"github.com/wudi/phpast/span"
	"github.com/wudi/phpast/token"
)

// Kind is the closed enumeration of syntax error kinds.
type Kind int

const (
	UnexpectedEndOfFile Kind = iota
	UnexpectedError
	UnexpectedToken
	UnexpectedCharacter
	InvalidHaltCompiler
	InvalidOctalEscape
	InvalidOctalLiteral
	InvalidUnicodeEscape
	// UnpredictableState is declared for parity with the full grammar
	// this slice is cut from; no production here constructs it.
	UnpredictableState
	InvalidDocIndentation
	InvalidDocBodyIndentationLevel
	UnrecognisedToken
)

// Error is a tagged syntax error. Exactly the fields relevant to Kind
// are populated; the rest stay zero.
type Error struct {
	Kind Kind
	Span span.Span

	// Byte is populated for UnexpectedCharacter and UnrecognisedToken.
	Byte byte
	// Expected is populated for UnexpectedToken (the kind that was
	// wanted).
	Expected token.Kind
	// ExpectedLevel carries the auxiliary integer for
	// InvalidDocBodyIndentationLevel; Expected is left zero in that case.
	ExpectedLevel int
	// Found is populated for UnexpectedToken: the token actually seen.
	Found token.Token
}

// New builds a bare Error of the given kind at span s.
func New(kind Kind, s span.Span) *Error {
	return &Error{Kind: kind, Span: s}
}

// NewUnexpectedToken builds the "expected X, found Y" mismatch raised
// by the skip* combinators.
func NewUnexpectedToken(expected token.Kind, found token.Token) *Error {
	return &Error{Kind: UnexpectedToken, Span: found.Span, Expected: expected, Found: found}
}

// NewUnexpectedCharacter builds a lexer-origin bad-byte error.
func NewUnexpectedCharacter(b byte, s span.Span) *Error {
	return &Error{Kind: UnexpectedCharacter, Span: s, Byte: b}
}

func (e *Error) Error() string {
	return e.Message()
}

// Message renders the error the way spec.md §6 specifies: 1-based
// line/column taken from Span.Start.
func (e *Error) Message() string {
	line, col := e.Span.Start.Line, e.Span.Start.Column
	switch e.Kind {
	case UnexpectedEndOfFile:
		return fmt.Sprintf("unexpected end of file on line %d column %d", line, col)
	case UnexpectedError:
		return fmt.Sprintf("unexpected error on line %d column %d", line, col)
	case UnexpectedToken:
		return fmt.Sprintf("unexpected token %s on line %d column %d, expected %s",
			e.Found.Kind, line, col, e.Expected)
	case UnexpectedCharacter:
		return fmt.Sprintf("unexpected character `%c` on line %d column %d", e.Byte, line, col)
	case InvalidHaltCompiler:
		return fmt.Sprintf("invalid halt compiler on line %d column %d", line, col)
	case InvalidOctalEscape:
		return fmt.Sprintf("invalid octal escape on line %d column %d", line, col)
	case InvalidOctalLiteral:
		return fmt.Sprintf("invalid octal literal on line %d column %d", line, col)
	case InvalidUnicodeEscape:
		return fmt.Sprintf("invalid unicode escape on line %d column %d", line, col)
	case UnpredictableState:
		return fmt.Sprintf("Reached an unpredictable state on line %d column %d", line, col)
	case InvalidDocIndentation:
		return fmt.Sprintf("cannot use tabs and spaces on line %d column %d", line, col)
	case InvalidDocBodyIndentationLevel:
		return fmt.Sprintf("expecting indentation level of at least %d on line %d column %d",
			e.ExpectedLevel, line, col)
	case UnrecognisedToken:
		return fmt.Sprintf("Unrecognised token %d on line %d column %d", e.Byte, line, col)
	default:
		return fmt.Sprintf("syntax error on line %d column %d", line, col)
	}
}

// List collects errors gathered in non-fail-fast mode (spec.md §6:
// "a side list of SyntaxErrors"). The zero value is an empty list.
type List []*Error

func (l *List) Add(err *Error) {
	*l = append(*l, err)
}

func (l List) HasErrors() bool {
	return len(l) > 0
}

func (l List) Error() string {
	if len(l) == 0 {
		return ""
	}
	s := l[0].Message()
	for _, e := range l[1:] {
		s += "\n" + e.Message()
	}
	return s
}
