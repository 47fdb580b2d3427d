package ast

import "github.com/wudi/phpast/span"

// AttributeGroup is one `#[ ... ]` group. The core only needs to know
// that a group was gathered and where it sits — attribute argument
// grammar belongs to a later pass (spec.md §1: downstream analyses are
// out of scope), so Body is kept as opaque raw text.
type AttributeGroup struct {
	HashBracket  span.Span // span of the whole `#[...]` group (lexed as one token)
	Body         string    // raw bytes between `#[` and the matching `]`
	RightBracket span.Span // same whole-group span as HashBracket
}

func (a *AttributeGroup) Kind() Kind       { return KindUnknown }
func (a *AttributeGroup) Span() span.Span  { return span.Join(a.HashBracket, a.RightBracket) }
func (a *AttributeGroup) Children() []Node { return nil }
func (a *AttributeGroup) Accept(v Visitor) { acceptChildren(a, v) }
