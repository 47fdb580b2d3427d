package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wudi/phpast/ast"
	"github.com/wudi/phpast/lexer"
	"github.com/wudi/phpast/parser"
	"github.com/wudi/phpast/syntaxerr"
	"github.com/wudi/phpast/token"
)

func parseOne(t *testing.T, src string) ast.Statement {
	t.Helper()
	toks, lexErrs := lexer.Tokenize(src)
	require.False(t, lexErrs.HasErrors(), lexErrs.Error())
	stmts, parseErrs := parser.Parse(toks)
	require.False(t, parseErrs.HasErrors(), parseErrs.Error())
	require.Len(t, stmts, 1)
	return stmts[0]
}

func TestForeachWithKeyValueAndAmpersand(t *testing.T) {
	stmt := parseOne(t, "foreach ($xs as $k => &$v) {}")

	fe, ok := stmt.(*ast.ForeachStatement)
	require.True(t, ok)
	require.Equal(t, ast.IteratorKeyAndValue, fe.Iterator.Form)
	assert.False(t, fe.Iterator.SecondAmpersand.Zero())
	assert.True(t, fe.Iterator.FirstAmpersand.Zero())

	key, ok := fe.Iterator.Key.(*ast.SimpleVariable)
	require.True(t, ok)
	assert.Equal(t, "k", key.Name)

	value, ok := fe.Iterator.Value.(*ast.SimpleVariable)
	require.True(t, ok)
	assert.Equal(t, "v", value.Name)

	require.Equal(t, ast.BodyStatement, fe.Body.Form)
	_, ok = fe.Body.Statement.(*ast.CompoundStatement)
	assert.True(t, ok)
}

func TestEmptyForLoop(t *testing.T) {
	stmt := parseOne(t, "for (;;) ;")

	f, ok := stmt.(*ast.ForStatement)
	require.True(t, ok)
	assert.Equal(t, 0, f.Init.Len())
	assert.Equal(t, 0, f.Condition.Len())
	assert.Equal(t, 0, f.Step.Len())
	assert.Equal(t, ast.BodyStatement, f.Body.Form)
	_, ok = f.Body.Statement.(*ast.NoopStatement)
	assert.True(t, ok)
}

func TestDoWhile(t *testing.T) {
	stmt := parseOne(t, "do { 1; } while (1);")

	dw, ok := stmt.(*ast.DoWhileStatement)
	require.True(t, ok)
	assert.NotNil(t, dw.Condition)
	_, ok = dw.Body.(*ast.CompoundStatement)
	assert.True(t, ok)
}

func TestBreakWithTripleParenthesizedLevel(t *testing.T) {
	stmt := parseOne(t, "break (((2)));")

	br, ok := stmt.(*ast.BreakStatement)
	require.True(t, ok)

	p1, ok := br.Level.(*ast.ParenthesizedLevel)
	require.True(t, ok)
	p2, ok := p1.Inner.(*ast.ParenthesizedLevel)
	require.True(t, ok)
	p3, ok := p2.Inner.(*ast.ParenthesizedLevel)
	require.True(t, ok)
	lit, ok := p3.Inner.(*ast.LiteralLevel)
	require.True(t, ok)
	intLit, ok := lit.Value.(*ast.IntegerLiteral)
	require.True(t, ok)
	assert.Equal(t, int64(2), intLit.Value)
}

func TestTraitWithPrecedenceAndAlias(t *testing.T) {
	stmt := parseOne(t, `trait T {
		use A, B {
			A::m insteadof B;
			B::m as private n;
		}
	}`)

	tr, ok := stmt.(*ast.TraitStatement)
	require.True(t, ok)
	assert.Equal(t, "T", tr.Name.Value)
	require.Len(t, tr.Members, 1)

	usage, ok := tr.Members[0].(*ast.TraitUsage)
	require.True(t, ok)
	require.Equal(t, 2, usage.Traits.Len())
	require.Len(t, usage.Adaptations, 2)

	prec, ok := usage.Adaptations[0].(*ast.PrecedenceAdaptation)
	require.True(t, ok)
	assert.Equal(t, "A", prec.Method.Trait.Value)
	assert.Equal(t, "m", prec.Method.Method.Value)
	require.Equal(t, 1, prec.Traits.Len())
	assert.Equal(t, "B", prec.Traits.Inner[0].Value)

	alias, ok := usage.Adaptations[1].(*ast.AliasAdaptation)
	require.True(t, ok)
	assert.Equal(t, "B", alias.Method.Trait.Value)
	assert.Equal(t, "m", alias.Method.Method.Value)
	require.NotNil(t, alias.Visibility)
	assert.Equal(t, "n", alias.NewName.Value)
}

func TestVariableVariableLadder(t *testing.T) {
	stmt := parseOne(t, "$${x};")

	es, ok := stmt.(*ast.ExpressionStatement)
	require.True(t, ok)

	vv, ok := es.Expr.(*ast.VariableVariable)
	require.True(t, ok)

	braced, ok := vv.Inner.(*ast.BracedVariableVariable)
	require.True(t, ok)

	cf, ok := braced.Inner.(*ast.ConstantFetchExpression)
	require.True(t, ok)
	assert.Equal(t, "x", cf.Name)
}

func TestTrailingCommaInTraitUseListIsASyntaxError(t *testing.T) {
	src := "trait T { use A, B,; }"
	toks, lexErrs := lexer.Tokenize(src)
	require.False(t, lexErrs.HasErrors())

	_, errs := parser.Parse(toks)
	require.Len(t, errs, 1)

	err := errs[0]
	assert.Equal(t, syntaxerr.UnexpectedToken, err.Kind)
	assert.Equal(t, token.Comma, err.Found.Kind)
	assert.Equal(t, token.SemiColon, err.Expected)

	commaOffset := strings.Index(src, ",;")
	assert.Equal(t, commaOffset, err.Span.Start.Offset)
}

func TestTrailingCommaBeforeBraceInTraitUseListIsASyntaxError(t *testing.T) {
	src := "trait T { use A, B, { } }"
	toks, lexErrs := lexer.Tokenize(src)
	require.False(t, lexErrs.HasErrors())

	_, errs := parser.Parse(toks)
	require.Len(t, errs, 1)

	err := errs[0]
	assert.Equal(t, syntaxerr.UnexpectedToken, err.Kind)
	assert.Equal(t, token.Comma, err.Found.Kind)
	assert.Equal(t, token.LeftBrace, err.Expected)
}

func TestMalformedTraitUseAdaptationDoesNotHang(t *testing.T) {
	toks, lexErrs := lexer.Tokenize("trait T { use A { & } }")
	require.False(t, lexErrs.HasErrors())

	stmts, errs := parser.Parse(toks)
	require.True(t, errs.HasErrors())
	require.Len(t, stmts, 1)
}

func TestLosslessSpanCoversEntireForeach(t *testing.T) {
	src := "foreach ($xs as $v) {}"
	toks, _ := lexer.Tokenize(src)
	stmts, errs := parser.Parse(toks)
	require.False(t, errs.HasErrors())
	require.Len(t, stmts, 1)

	sp := stmts[0].Span()
	assert.Equal(t, 0, sp.Start.Offset)
	assert.Equal(t, len(src), sp.End.Offset)
}
