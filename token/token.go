// Package token defines the lexical atoms the parser consumes: a
// closed Kind enumeration, a ByteString value type for raw lexemes
// (PHP source is not guaranteed UTF-8), and the Token triple itself.
package token

import (
	"fmt"

	"github.com/wudi/phpast/span"
)

// ByteString is an owned byte buffer carrying a lexeme's raw value
// verbatim, independent of source encoding.
type ByteString []byte

// NewByteString copies s into a ByteString.
func NewByteString(s string) ByteString {
	return ByteString(s)
}

func (b ByteString) String() string { return string(b) }

// Equal reports byte-for-byte equality.
func (b ByteString) Equal(other ByteString) bool {
	if len(b) != len(other) {
		return false
	}
	for i := range b {
		if b[i] != other[i] {
			return false
		}
	}
	return true
}

// Kind is the closed enumeration of lexical atom kinds the core parser
// dispatches on. It is a strict subset of a full PHP token set: only
// the keywords, punctuation, and literal markers the loop, trait, and
// variable productions (and their shared combinators) need to see.
type Kind int

const (
	Unknown Kind = iota
	EOF

	// Literal markers.
	Variable       // $name
	LiteralInteger // 123

	// Identifiers and qualified names.
	Identifier  // bareword, e.g. a trait or class name
	NsSeparator // \

	// Keywords — control flow / loops.
	Foreach
	EndForeach
	For
	EndFor
	While
	EndWhile
	Do
	Break
	Continue
	As

	// Keywords — trait/class-like members.
	Use
	Trait
	Insteadof
	Var
	Const
	Function
	Public
	Protected
	Private
	Static
	Abstract
	Final
	Readonly

	// Keywords — namespaces.
	Namespace

	// Punctuation.
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	SemiColon
	Comma
	Colon
	DoubleColon
	DoubleArrow
	Equals // =
	Ampersand
	Dollar
	DollarLeftBrace // ${ as one token
	CloseTag        // ?>
	Attribute       // #[ ... ], scanned whole including the brackets

	// Comment/trivia markers (emitted as ordinary tokens; the parser's
	// comment-gathering pass pulls them off the stream explicitly).
	CommentSingleLine
	CommentMultiLine
	CommentHashMark
	CommentDocument
)

var names = map[Kind]string{
	Unknown:           "Unknown",
	EOF:               "EOF",
	Variable:          "Variable",
	LiteralInteger:    "LiteralInteger",
	Identifier:        "Identifier",
	NsSeparator:       "NsSeparator",
	Foreach:           "Foreach",
	EndForeach:        "EndForeach",
	For:               "For",
	EndFor:            "EndFor",
	While:             "While",
	EndWhile:          "EndWhile",
	Do:                "Do",
	Break:             "Break",
	Continue:          "Continue",
	As:                "As",
	Use:               "Use",
	Trait:             "Trait",
	Insteadof:         "Insteadof",
	Var:               "Var",
	Const:             "Const",
	Function:          "Function",
	Public:            "Public",
	Protected:         "Protected",
	Private:           "Private",
	Static:            "Static",
	Abstract:          "Abstract",
	Final:             "Final",
	Readonly:          "Readonly",
	Namespace:         "Namespace",
	LeftParen:         "LeftParen",
	RightParen:        "RightParen",
	LeftBrace:         "LeftBrace",
	RightBrace:        "RightBrace",
	SemiColon:         "SemiColon",
	Comma:             "Comma",
	Colon:             "Colon",
	DoubleColon:       "DoubleColon",
	DoubleArrow:       "DoubleArrow",
	Equals:            "Equals",
	Ampersand:         "Ampersand",
	Dollar:            "Dollar",
	DollarLeftBrace:   "DollarLeftBrace",
	CloseTag:          "CloseTag",
	Attribute:         "Attribute",
	CommentSingleLine: "CommentSingleLine",
	CommentMultiLine:  "CommentMultiLine",
	CommentHashMark:   "CommentHashMark",
	CommentDocument:   "CommentDocument",
}

// Keywords maps a lowercased bareword to its keyword Kind. Populated
// once; consulted by the lexer when it scans an Identifier-shaped run
// of bytes.
var Keywords = map[string]Kind{
	"foreach":     Foreach,
	"endforeach":  EndForeach,
	"for":         For,
	"endfor":      EndFor,
	"while":       While,
	"endwhile":    EndWhile,
	"do":          Do,
	"break":       Break,
	"continue":    Continue,
	"as":          As,
	"use":         Use,
	"trait":       Trait,
	"insteadof":   Insteadof,
	"var":         Var,
	"const":       Const,
	"function":    Function,
	"public":      Public,
	"protected":   Protected,
	"private":     Private,
	"static":      Static,
	"abstract":    Abstract,
	"final":       Final,
	"readonly":    Readonly,
	"namespace":   Namespace,
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one lexical atom: its Kind, its source Span, and the raw
// bytes it was scanned from.
type Token struct {
	Kind  Kind
	Span  span.Span
	Value ByteString
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Value, t.Span)
}

// EOFToken builds the synthetic end-of-file sentinel the State driver
// returns once the underlying token vector is exhausted.
func EOFToken(at span.Position) Token {
	return Token{Kind: EOF, Span: span.Span{Start: at, End: at}}
}
