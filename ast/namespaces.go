package ast

import "github.com/wudi/phpast/span"

// UnbracedNamespace is `namespace Foo\Bar;` — terminated by an Ending
// rather than a brace body (spec.md §3; supplemented from
// original_source/crates/pxp-ast/src/namespaces.rs, see SPEC_FULL.md §4).
type UnbracedNamespace struct {
	NamespaceSpan span.Span
	Name          *Name
	Ending        Ending
}

func (n *UnbracedNamespace) Kind() Kind { return KindUnbracedNamespace }

func (n *UnbracedNamespace) Span() span.Span {
	s := n.NamespaceSpan
	if n.Name != nil {
		s = span.Join(s, n.Name.Span())
	}
	return span.Join(s, n.Ending.Span)
}

func (n *UnbracedNamespace) Children() []Node {
	if n.Name == nil {
		return nil
	}
	return []Node{n.Name}
}
func (n *UnbracedNamespace) Accept(v Visitor)  { acceptChildren(n, v) }
func (n *UnbracedNamespace) statementNode()   {}

// BracedNamespace is `namespace Foo\Bar { stmt* }` — or the anonymous
// `namespace { stmt* }` (Name == nil). Distinguished from
// UnbracedNamespace by its terminator, never mixed with it (spec.md §3
// invariant: "exactly one variant is instantiated").
type BracedNamespace struct {
	NamespaceSpan span.Span
	Name          *Name // nil for the anonymous global-namespace block
	LeftBrace     span.Span
	Statements    []Statement
	RightBrace    span.Span
}

func (n *BracedNamespace) Kind() Kind { return KindBracedNamespace }

func (n *BracedNamespace) Span() span.Span {
	s := n.NamespaceSpan
	if n.Name != nil {
		s = span.Join(s, n.Name.Span())
	}
	s = span.Join(s, n.LeftBrace)
	return span.Join(s, n.RightBrace)
}

func (n *BracedNamespace) Children() []Node {
	var out []Node
	if n.Name != nil {
		out = append(out, n.Name)
	}
	for _, st := range n.Statements {
		out = append(out, st)
	}
	return out
}

func (n *BracedNamespace) Accept(v Visitor) { acceptChildren(n, v) }
func (n *BracedNamespace) statementNode()   {}
