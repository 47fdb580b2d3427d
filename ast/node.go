// Package ast defines the lossless syntax tree the parser builds.
// Every node retains the spans of its own syntactic atoms (keywords,
// punctuation, literals) as typed fields rather than a single
// enclosing range, so the tree can reproduce the source byte-for-byte
// (spec.md §3, §8 Testable Property 2).
package ast

import "github.com/wudi/phpast/span"

// Kind identifies a concrete node's grammar production, for
// introspection and tests that want to switch without a type assertion.
type Kind int

const (
	KindUnknown Kind = iota
	KindCommentGroup
	KindForeachStatement
	KindForStatement
	KindWhileStatement
	KindDoWhileStatement
	KindBreakStatement
	KindContinueStatement
	KindCompoundStatement
	KindNoopStatement
	KindExpressionStatement
	KindUnbracedNamespace
	KindBracedNamespace
	KindTraitStatement
	KindTraitUsage
	KindSimpleVariable
	KindVariableVariable
	KindBracedVariableVariable
	KindIntegerLiteral
	KindAbstractMethod
	KindConcreteMethod
	KindAbstractConstructor
	KindConcreteConstructor
)

// Node is the common interface every AST node satisfies.
type Node interface {
	// Kind identifies the concrete production that built this node.
	// Nodes without a dedicated constant return KindUnknown.
	Kind() Kind
	// Span returns the smallest source range covering every atom and
	// child this node owns.
	Span() span.Span
	// Children returns this node's direct children, in source order.
	// Leaf nodes return nil.
	Children() []Node
	// Accept drives visitor traversal (spec.md §6's Node traversal
	// contract). The default Walk helper recurses through Children.
	Accept(v Visitor)
}

// Statement is any node that stands on its own as a top-level or
// block-level production.
type Statement interface {
	Node
	statementNode()
}

// Expression is any node usable in an expression position. The core
// only needs a minimal expression grammar (variables, integer
// literals, parenthesization) to exercise loop and variable
// productions; full expression parsing is out of scope per spec.md §1.
type Expression interface {
	Node
	expressionNode()
}

// Visitor is the traversal capability spec.md §6 requires the core to
// expose, without specifying more than "yields mutable references to
// direct children." Visit returns whether Walk should recurse into the
// node's children.
type Visitor interface {
	Visit(n Node) bool
}

// Walk performs a pre-order traversal, recursing into a node's
// children exactly when Visit returns true for that node.
func Walk(v Visitor, n Node) {
	if n == nil {
		return
	}
	if v.Visit(n) {
		for _, c := range n.Children() {
			Walk(v, c)
		}
	}
}

// acceptChildren is the shared Accept body: visit self, then recurse
// through Children if the visitor asked to.
func acceptChildren(n Node, v Visitor) {
	if v.Visit(n) {
		for _, c := range n.Children() {
			c.Accept(v)
		}
	}
}
