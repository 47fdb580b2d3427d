package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wudi/phpast/lexer"
	"github.com/wudi/phpast/syntaxerr"
	"github.com/wudi/phpast/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestTokenizeKeywordsAndPunctuation(t *testing.T) {
	toks, errs := lexer.Tokenize("foreach ($xs as &$k => $v) {}")
	require.False(t, errs.HasErrors(), errs.Error())

	assert.Equal(t, []token.Kind{
		token.Foreach, token.LeftParen, token.Variable, token.As, token.Ampersand,
		token.Variable, token.DoubleArrow, token.Variable, token.RightParen,
		token.LeftBrace, token.RightBrace, token.EOF,
	}, kinds(toks))
}

func TestTokenizeDollarLeftBraceSingleToken(t *testing.T) {
	toks, errs := lexer.Tokenize("${x}")
	require.False(t, errs.HasErrors())
	assert.Equal(t, []token.Kind{token.DollarLeftBrace, token.Identifier, token.RightBrace, token.EOF}, kinds(toks))
}

func TestTokenizeVariableVariableLadder(t *testing.T) {
	toks, errs := lexer.Tokenize("$${x}")
	require.False(t, errs.HasErrors())
	assert.Equal(t, []token.Kind{token.Dollar, token.DollarLeftBrace, token.Identifier, token.RightBrace, token.EOF}, kinds(toks))
}

func TestTokenizeComments(t *testing.T) {
	toks, errs := lexer.Tokenize("// line\n# hash\n/* block */\n/** doc */\n;")
	require.False(t, errs.HasErrors())

	require.Len(t, toks, 6)
	assert.Equal(t, token.CommentSingleLine, toks[0].Kind)
	assert.Equal(t, token.CommentHashMark, toks[1].Kind)
	assert.Equal(t, token.CommentMultiLine, toks[2].Kind)
	assert.Equal(t, token.CommentDocument, toks[3].Kind)
	assert.Equal(t, token.SemiColon, toks[4].Kind)
}

func TestTokenizeAttributeGroupBalancesBrackets(t *testing.T) {
	toks, errs := lexer.Tokenize("#[Foo([1, 2])] trait")
	require.False(t, errs.HasErrors())
	require.Len(t, toks, 3)
	assert.Equal(t, token.Attribute, toks[0].Kind)
	assert.Equal(t, "#[Foo([1, 2])]", toks[0].Value.String())
	assert.Equal(t, token.Trait, toks[1].Kind)
}

func TestUnrecognisedByteReportsError(t *testing.T) {
	_, errs := lexer.Tokenize("`")
	require.True(t, errs.HasErrors())
	assert.Equal(t, syntaxerr.UnexpectedCharacter, errs[0].Kind)
}
