package syntaxerr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wudi/phpast/span"
	"github.com/wudi/phpast/syntaxerr"
	"github.com/wudi/phpast/token"
)

func TestUnexpectedTokenMessage(t *testing.T) {
	found := token.Token{Kind: token.RightBrace, Span: span.New(span.Position{Line: 4, Column: 2}, span.Position{Line: 4, Column: 3})}
	err := syntaxerr.NewUnexpectedToken(token.SemiColon, found)

	assert.Equal(t, syntaxerr.UnexpectedToken, err.Kind)
	assert.Equal(t, "unexpected token RightBrace on line 4 column 2, expected SemiColon", err.Message())
}

func TestUnexpectedCharacterMessage(t *testing.T) {
	err := syntaxerr.NewUnexpectedCharacter('@', span.New(span.Position{Line: 1, Column: 5}, span.Position{Line: 1, Column: 5}))
	assert.Equal(t, "unexpected character `@` on line 1 column 5", err.Message())
}

func TestListJoinsMessages(t *testing.T) {
	var l syntaxerr.List
	assert.False(t, l.HasErrors())

	l.Add(syntaxerr.New(syntaxerr.UnexpectedEndOfFile, span.New(span.Position{Line: 1, Column: 1}, span.Position{Line: 1, Column: 1})))
	l.Add(syntaxerr.New(syntaxerr.InvalidHaltCompiler, span.New(span.Position{Line: 2, Column: 1}, span.Position{Line: 2, Column: 1})))

	assert.True(t, l.HasErrors())
	assert.Equal(t,
		"unexpected end of file on line 1 column 1\ninvalid halt compiler on line 2 column 1",
		l.Error(),
	)
}
