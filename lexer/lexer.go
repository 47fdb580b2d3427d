// Package lexer is the external token-stream collaborator spec.md §1
// treats as out of scope for the core's grammar. It exists so the
// parser package (which only ever depends on []token.Token) can be
// exercised end to end in tests, fixtures, and the outer `cmd/phpast`
// harness — it is not imported by the parser package itself.
//
// It covers exactly the token kinds the loop, trait, and variable
// productions need: keywords, the punctuation spec.md §3 lists,
// variables, integer literals, and the four comment formats. It does
// not attempt full PHP lexing (strings, heredoc, interpolation, casts,
// attributes beyond a raw `#[...]` span) — those belong to a real PHP
// lexer, not this slice's test harness.
package lexer

import (
	"strings"

	"github.com/wudi/phpast/span"
	"github.com/wudi/phpast/syntaxerr"
	"github.com/wudi/phpast/token"
)

// Lexer scans PHP source byte by byte, tracking line/column the way
// the teacher's hand-written state machine does.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte
	line         int
	column       int

	errors syntaxerr.List
}

// New creates a Lexer positioned at the start of input.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

// Tokenize scans the whole input and returns every token plus the
// synthetic EOF sentinel, along with any lexer-origin errors gathered
// along the way (non-fail-fast, per spec.md §6's "side list" option).
func Tokenize(input string) ([]token.Token, syntaxerr.List) {
	l := New(input)
	var toks []token.Token
	for {
		t := l.Next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			break
		}
	}
	return toks, l.errors
}

func (l *Lexer) pos() span.Position {
	return span.Position{Line: l.line, Column: l.column, Offset: l.position}
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) peekCharAt(offset int) byte {
	idx := l.readPosition - 1 + offset
	if idx < 0 || idx >= len(l.input) {
		return 0
	}
	return l.input[idx]
}

func isLetter(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch >= 0x80
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// Next scans and returns the next token, advancing the cursor past it.
func (l *Lexer) Next() token.Token {
	l.skipWhitespace()
	start := l.pos()

	if l.ch == 0 {
		return token.EOFToken(start)
	}

	switch {
	case isLetter(l.ch):
		return l.lexIdentifier(start)
	case isDigit(l.ch):
		return l.lexInteger(start)
	}

	switch l.ch {
	case '$':
		return l.lexDollar(start)
	case '/':
		if l.peekChar() == '/' {
			return l.lexLineComment(start, token.CommentSingleLine, "//")
		}
		if l.peekChar() == '*' {
			return l.lexBlockComment(start)
		}
		return l.lexSimple(start, token.Unknown, 1)
	case '#':
		if l.peekChar() == '[' {
			return l.lexAttribute(start)
		}
		return l.lexLineComment(start, token.CommentHashMark, "#")
	case '(':
		return l.lexSimple(start, token.LeftParen, 1)
	case ')':
		return l.lexSimple(start, token.RightParen, 1)
	case '{':
		return l.lexSimple(start, token.LeftBrace, 1)
	case '}':
		return l.lexSimple(start, token.RightBrace, 1)
	case ';':
		return l.lexSimple(start, token.SemiColon, 1)
	case ',':
		return l.lexSimple(start, token.Comma, 1)
	case '&':
		return l.lexSimple(start, token.Ampersand, 1)
	case '\\':
		return l.lexSimple(start, token.NsSeparator, 1)
	case ':':
		if l.peekChar() == ':' {
			return l.lexSimple(start, token.DoubleColon, 2)
		}
		return l.lexSimple(start, token.Colon, 1)
	case '=':
		if l.peekChar() == '>' {
			return l.lexSimple(start, token.DoubleArrow, 2)
		}
		return l.lexSimple(start, token.Equals, 1)
	case '?':
		if l.peekChar() == '>' {
			return l.lexSimple(start, token.CloseTag, 2)
		}
		return l.lexSimple(start, token.Unknown, 1)
	}

	return l.lexBadCharacter(start)
}

func (l *Lexer) lexSimple(start span.Position, kind token.Kind, width int) token.Token {
	value := l.input[l.position : l.position+width]
	for i := 0; i < width; i++ {
		l.readChar()
	}
	return token.Token{Kind: kind, Span: span.New(start, l.pos()), Value: token.NewByteString(value)}
}

func (l *Lexer) lexBadCharacter(start span.Position) token.Token {
	bad := l.ch
	l.errors.Add(syntaxerr.NewUnexpectedCharacter(bad, span.New(start, start)))
	l.readChar()
	return token.Token{Kind: token.Unknown, Span: span.New(start, l.pos()), Value: token.ByteString{bad}}
}

func (l *Lexer) lexIdentifier(start span.Position) token.Token {
	begin := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	text := l.input[begin:l.position]
	kind := token.Identifier
	if k, ok := token.Keywords[strings.ToLower(text)]; ok {
		kind = k
	}
	return token.Token{Kind: kind, Span: span.New(start, l.pos()), Value: token.NewByteString(text)}
}

func (l *Lexer) lexInteger(start span.Position) token.Token {
	begin := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	text := l.input[begin:l.position]
	return token.Token{Kind: token.LiteralInteger, Span: span.New(start, l.pos()), Value: token.NewByteString(text)}
}

// lexDollar handles `$name`, `${`, and `$` alone (the start of a
// variable-variable ladder). It never recurses: the parser's
// dynamic_variable production drives the recursive structure, this
// just emits one token per call.
func (l *Lexer) lexDollar(start span.Position) token.Token {
	if l.peekChar() == '{' {
		l.readChar() // consume $
		l.readChar() // consume {
		return token.Token{Kind: token.DollarLeftBrace, Span: span.New(start, l.pos()), Value: token.NewByteString("${")}
	}
	if isLetter(l.peekChar()) {
		l.readChar() // consume $
		begin := l.position
		for isLetter(l.ch) || isDigit(l.ch) {
			l.readChar()
		}
		text := l.input[begin:l.position]
		return token.Token{Kind: token.Variable, Span: span.New(start, l.pos()), Value: token.NewByteString("$" + text)}
	}
	l.readChar()
	return token.Token{Kind: token.Dollar, Span: span.New(start, l.pos()), Value: token.NewByteString("$")}
}

// lexAttribute scans a whole `#[ ... ]` group as one token, tracking
// bracket depth so a nested `[...]` inside the group (an array literal
// argument, say) doesn't close it early. The parser treats the body as
// opaque (ast.AttributeGroup), so there is no need to tokenize inside it.
func (l *Lexer) lexAttribute(start span.Position) token.Token {
	begin := l.position
	l.readChar() // consume #
	l.readChar() // consume [
	depth := 1
	for depth > 0 {
		if l.ch == 0 {
			l.errors.Add(syntaxerr.New(syntaxerr.UnexpectedEndOfFile, span.New(start, l.pos())))
			break
		}
		switch l.ch {
		case '[':
			depth++
		case ']':
			depth--
		}
		l.readChar()
	}
	text := l.input[begin:l.position]
	return token.Token{Kind: token.Attribute, Span: span.New(start, l.pos()), Value: token.NewByteString(text)}
}

func (l *Lexer) lexLineComment(start span.Position, kind token.Kind, prefix string) token.Token {
	begin := l.position
	for l.ch != 0 && l.ch != '\n' {
		if l.ch == '?' && l.peekChar() == '>' {
			break
		}
		l.readChar()
	}
	text := l.input[begin:l.position]
	return token.Token{Kind: kind, Span: span.New(start, l.pos()), Value: token.NewByteString(text)}
}

func (l *Lexer) lexBlockComment(start span.Position) token.Token {
	begin := l.position
	kind := token.CommentMultiLine
	if l.peekCharAt(2) == '*' && l.peekCharAt(3) != '/' {
		kind = token.CommentDocument
	}
	l.readChar() // consume /
	l.readChar() // consume *
	for {
		if l.ch == 0 {
			l.errors.Add(syntaxerr.New(syntaxerr.UnexpectedEndOfFile, span.New(start, l.pos())))
			break
		}
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			break
		}
		l.readChar()
	}
	text := l.input[begin:l.position]
	return token.Token{Kind: kind, Span: span.New(start, l.pos()), Value: token.NewByteString(text)}
}
