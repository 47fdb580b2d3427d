package ast

import "github.com/wudi/phpast/span"

// CommentFormat is the lexical shape a comment was written in.
type CommentFormat int

const (
	SingleLine CommentFormat = iota // //
	MultiLine                       // /* */
	HashMark                        // #
	Document                        // /** */
)

// Comment is one lexical comment, content including its delimiters.
type Comment struct {
	CommentSpan span.Span
	Format      CommentFormat
	Content     string
}

func (c *Comment) Kind() Kind       { return KindUnknown }
func (c *Comment) Span() span.Span  { return c.CommentSpan }
func (c *Comment) Children() []Node { return nil }
func (c *Comment) Accept(v Visitor) { acceptChildren(c, v) }

// CommentGroup is a run of contiguous comments attached to the next
// significant node (spec.md §4.6). An empty group (nil Comments) is
// valid and attaches nothing.
type CommentGroup struct {
	Comments []*Comment
}

func (g *CommentGroup) Kind() Kind { return KindCommentGroup }

func (g *CommentGroup) Span() span.Span {
	var s span.Span
	for _, c := range g.Comments {
		s = span.Join(s, c.CommentSpan)
	}
	return s
}

func (g *CommentGroup) Children() []Node {
	if len(g.Comments) == 0 {
		return nil
	}
	out := make([]Node, 0, len(g.Comments))
	for _, c := range g.Comments {
		out = append(out, c)
	}
	return out
}

func (g *CommentGroup) Accept(v Visitor) { acceptChildren(g, v) }

// Empty reports whether the group carries no comments.
func (g *CommentGroup) Empty() bool {
	return g == nil || len(g.Comments) == 0
}
