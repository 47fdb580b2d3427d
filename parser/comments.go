package parser

import (
	"github.com/wudi/phpast/ast"
	"github.com/wudi/phpast/token"
)

// gatherComments pulls a run of contiguous comment tokens off the
// front of the stream into a CommentGroup, ready to attach to whatever
// production follows (spec.md §4.6). Returns nil when nothing was
// gathered — an absent group, not an empty one.
func gatherComments(s *State) *ast.CommentGroup {
	var comments []*ast.Comment
	for {
		format, ok := commentFormat(s.current().Kind)
		if !ok {
			break
		}
		t := s.next()
		comments = append(comments, &ast.Comment{CommentSpan: t.Span, Format: format, Content: t.Value.String()})
	}
	if len(comments) == 0 {
		return nil
	}
	return &ast.CommentGroup{Comments: comments}
}

func commentFormat(k token.Kind) (ast.CommentFormat, bool) {
	switch k {
	case token.CommentSingleLine:
		return ast.SingleLine, true
	case token.CommentMultiLine:
		return ast.MultiLine, true
	case token.CommentHashMark:
		return ast.HashMark, true
	case token.CommentDocument:
		return ast.Document, true
	default:
		return 0, false
	}
}

// gatherAttributes pulls any `#[...]` groups off the front of the
// stream and stashes the last one in the pending-attribute side
// channel (spec.md §4.1, §4.4). PHP allows stacking multiple groups
// before one declaration; this slice keeps only the final one, since
// argument-level attribute semantics are a downstream concern (spec.md
// §1) and the core only needs to know a group was present.
func gatherAttributes(s *State) {
	for s.current().Kind == token.Attribute {
		t := s.next()
		body := t.Value.String()
		if len(body) >= 3 {
			body = body[2 : len(body)-1] // strip `#[` and trailing `]`
		}
		s.setAttributes(&ast.AttributeGroup{HashBracket: t.Span, Body: body, RightBracket: t.Span})
	}
}
