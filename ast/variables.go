package ast

import "github.com/wudi/phpast/span"

// Variable is the sum type parser.dynamic_variable builds: a plain
// `$name`, a variable-variable ladder `$$x`, or a braced form
// `${expr}` (spec.md §4.5).
type Variable interface {
	Expression
	variableNode()
}

// SimpleVariable is `$name`.
type SimpleVariable struct {
	VarSpan span.Span
	Name    string
}

func (v *SimpleVariable) Kind() Kind       { return KindSimpleVariable }
func (v *SimpleVariable) Span() span.Span  { return v.VarSpan }
func (v *SimpleVariable) Children() []Node { return nil }
func (v *SimpleVariable) Accept(vi Visitor) { acceptChildren(v, vi) }
func (v *SimpleVariable) expressionNode()  {}
func (v *SimpleVariable) variableNode()    {}

// VariableVariable is `$` immediately followed by another variable,
// e.g. `$$x`, recursively: `$$$x` is VariableVariable wrapping
// VariableVariable wrapping SimpleVariable. Depth is unbounded by the
// grammar; only the Go call stack bounds it in practice (spec.md §4.5).
type VariableVariable struct {
	DollarSpan span.Span
	Inner      Variable
}

func (v *VariableVariable) Kind() Kind      { return KindVariableVariable }
func (v *VariableVariable) Span() span.Span { return span.Join(v.DollarSpan, v.Inner.Span()) }
func (v *VariableVariable) Children() []Node { return []Node{v.Inner} }
func (v *VariableVariable) Accept(vi Visitor) { acceptChildren(v, vi) }
func (v *VariableVariable) expressionNode()  {}
func (v *VariableVariable) variableNode()    {}

// BracedVariableVariable is `${ expr }`. The lexer may emit the
// opening `${` as a single DollarLeftBrace token or as separate `$`
// and `{` tokens; Open covers whichever span(s) the parser actually
// consumed, so the AST cannot distinguish the two lexer behaviors
// (spec.md §4.5, §9 "Lexer quirk").
type BracedVariableVariable struct {
	Open  span.Span
	Inner Expression
	Close span.Span
}

func (v *BracedVariableVariable) Kind() Kind { return KindBracedVariableVariable }
func (v *BracedVariableVariable) Span() span.Span {
	return span.Join(v.Open, v.Close)
}
func (v *BracedVariableVariable) Children() []Node { return []Node{v.Inner} }
func (v *BracedVariableVariable) Accept(vi Visitor) { acceptChildren(v, vi) }
func (v *BracedVariableVariable) expressionNode()  {}
func (v *BracedVariableVariable) variableNode()    {}
