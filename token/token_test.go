package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wudi/phpast/span"
	"github.com/wudi/phpast/token"
)

func TestKeywordsAreLowercased(t *testing.T) {
	k, ok := token.Keywords["foreach"]
	assert.True(t, ok)
	assert.Equal(t, token.Foreach, k)

	_, ok = token.Keywords["Foreach"]
	assert.False(t, ok, "Keywords map is keyed by lowercase text; the lexer lowercases before lookup")
}

func TestEOFTokenIsZeroWidth(t *testing.T) {
	at := span.Position{Line: 3, Column: 1, Offset: 20}
	tok := token.EOFToken(at)

	assert.Equal(t, token.EOF, tok.Kind)
	assert.Equal(t, at, tok.Span.Start)
	assert.Equal(t, at, tok.Span.End)
}

func TestByteStringEqual(t *testing.T) {
	a := token.NewByteString("foo")
	b := token.NewByteString("foo")
	c := token.NewByteString("bar")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestKindStringFallsBackForUnknownValue(t *testing.T) {
	assert.Equal(t, "Foreach", token.Foreach.String())
	assert.Contains(t, token.Kind(9999).String(), "Kind(9999)")
}
