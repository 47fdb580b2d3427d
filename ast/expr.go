package ast

import "github.com/wudi/phpast/span"

// IntegerLiteral is the only literal expression kind the core's
// minimal expression grammar needs: enough to parse `break (((2)));`
// and `while (1)` without pulling in full expression parsing, which is
// out of scope (spec.md §1).
type IntegerLiteral struct {
	LiteralSpan span.Span
	Value       int64
}

func (i *IntegerLiteral) Kind() Kind       { return KindIntegerLiteral }
func (i *IntegerLiteral) Span() span.Span  { return i.LiteralSpan }
func (i *IntegerLiteral) Children() []Node { return nil }
func (i *IntegerLiteral) Accept(v Visitor) { acceptChildren(i, v) }
func (i *IntegerLiteral) expressionNode()  {}

// ParenthesizedExpression records an explicit `( expr )` wrapping an
// expression; kept distinct from its inner expression so losslessness
// (spec.md §8 Testable Property 2) holds even though it makes no
// semantic difference here.
type ParenthesizedExpression struct {
	LeftParen  span.Span
	Inner      Expression
	RightParen span.Span
}

func (p *ParenthesizedExpression) Kind() Kind      { return KindUnknown }
func (p *ParenthesizedExpression) Span() span.Span { return span.Join(p.LeftParen, p.RightParen) }
func (p *ParenthesizedExpression) Children() []Node { return []Node{p.Inner} }
func (p *ParenthesizedExpression) Accept(v Visitor)  { acceptChildren(p, v) }
func (p *ParenthesizedExpression) expressionNode()  {}

// ConstantFetchExpression is a bareword used in expression position,
// e.g. the `x` inside `${x}` — PHP resolves it as a constant lookup,
// not a variable. Kept distinct from Name, which the core never treats
// as an Expression (spec.md §4.5 dynamic_variable's braced form needs
// some expression to sit inside the braces; this is the minimal one).
type ConstantFetchExpression struct {
	NameSpan span.Span
	Name     string
}

func (c *ConstantFetchExpression) Kind() Kind       { return KindUnknown }
func (c *ConstantFetchExpression) Span() span.Span  { return c.NameSpan }
func (c *ConstantFetchExpression) Children() []Node { return nil }
func (c *ConstantFetchExpression) Accept(v Visitor) { acceptChildren(c, v) }
func (c *ConstantFetchExpression) expressionNode()  {}

// Name is a bareword reference — a trait, class, or member name. It is
// not an Expression: this grammar slice never evaluates names, it only
// records them as atoms inside trait declarations/usages.
type Name struct {
	NameSpan span.Span
	Value    string
}

func (n *Name) Kind() Kind       { return KindUnknown }
func (n *Name) Span() span.Span  { return n.NameSpan }
func (n *Name) Children() []Node { return nil }
func (n *Name) Accept(v Visitor) { acceptChildren(n, v) }
