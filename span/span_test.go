package span_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wudi/phpast/span"
)

func TestJoinCoversBothEndpoints(t *testing.T) {
	a := span.New(span.Position{Line: 1, Column: 1, Offset: 0}, span.Position{Line: 1, Column: 4, Offset: 3})
	b := span.New(span.Position{Line: 2, Column: 1, Offset: 10}, span.Position{Line: 2, Column: 6, Offset: 15})

	joined := span.Join(a, b)

	assert.Equal(t, a.Start, joined.Start)
	assert.Equal(t, b.End, joined.End)
}

func TestJoinWithZeroReturnsOther(t *testing.T) {
	a := span.New(span.Position{Line: 1, Column: 1, Offset: 0}, span.Position{Line: 1, Column: 4, Offset: 3})

	assert.Equal(t, a, span.Join(span.Span{}, a))
	assert.Equal(t, a, span.Join(a, span.Span{}))
	assert.True(t, span.Join(span.Span{}, span.Span{}).Zero())
}

func TestZero(t *testing.T) {
	assert.True(t, span.Span{}.Zero())
	assert.False(t, span.New(span.Position{Offset: 1}, span.Position{Offset: 2}).Zero())
}
