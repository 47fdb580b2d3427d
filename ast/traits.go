package ast

import (
	"github.com/wudi/phpast/span"
	"github.com/wudi/phpast/token"
)

// Modifier is a single member modifier keyword (public, static,
// abstract, readonly, ...), kept with its span so diagnostics and
// losslessness both have somewhere to point.
type Modifier struct {
	Token token.Kind
	Span  span.Span
}

// TraitMember is any declaration that can appear inside a trait body
// (spec.md §4.4 `member` dispatch).
type TraitMember interface {
	Node
	traitMemberNode()
}

// TraitStatement is `trait NAME { member* }`. Pending attributes
// gathered by an upstream pass are attached via Attributes, matching
// `state.get_attributes()` in spec.md §4.4.
type TraitStatement struct {
	Attributes *AttributeGroup
	Comments   *CommentGroup

	TraitSpan  span.Span
	Name       *Name
	LeftBrace  span.Span
	Members    []TraitMember
	RightBrace span.Span
}

func (t *TraitStatement) Kind() Kind { return KindTraitStatement }

func (t *TraitStatement) Span() span.Span {
	s := span.Join(t.TraitSpan, t.Name.Span())
	s = span.Join(s, t.LeftBrace)
	return span.Join(s, t.RightBrace)
}

func (t *TraitStatement) Children() []Node {
	out := []Node{t.Name}
	for _, m := range t.Members {
		out = append(out, m)
	}
	return out
}

func (t *TraitStatement) Accept(v Visitor) { acceptChildren(t, v) }
func (t *TraitStatement) statementNode()   {}

// MethodReference is `[Trait::]method` — the trait qualifier is absent
// in a same-trait alias and required for precedence resolution
// (spec.md §4.4).
type MethodReference struct {
	Trait       *Name // nil when unqualified
	DoubleColon span.Span
	Method      *Name
}

func (r MethodReference) Span() span.Span {
	if r.Trait == nil {
		return r.Method.Span()
	}
	return span.Join(r.Trait.Span(), r.Method.Span())
}

func (r MethodReference) children() []Node {
	if r.Trait == nil {
		return []Node{r.Method}
	}
	return []Node{r.Trait, r.Method}
}

// TraitUsageAdaptation is one clause inside `use Trait { ... }`
// resolving a conflict or renaming a member (spec.md §3 table: variant
// Alias / Visibility / Precedence).
type TraitUsageAdaptation interface {
	Node
	traitAdaptationNode()
}

// PrecedenceAdaptation is `Trait::method insteadof Other (, Other)* ;`.
type PrecedenceAdaptation struct {
	Method    MethodReference
	Insteadof span.Span
	Traits    CommaSeparated[*Name]
	Semicolon span.Span
}

func (a *PrecedenceAdaptation) Kind() Kind { return KindUnknown }
func (a *PrecedenceAdaptation) Span() span.Span {
	s := span.Join(a.Method.Span(), a.Insteadof)
	s = span.Join(s, a.Traits.Span())
	return span.Join(s, a.Semicolon)
}
func (a *PrecedenceAdaptation) Children() []Node {
	return append(a.Method.children(), a.Traits.Children()...)
}
func (a *PrecedenceAdaptation) Accept(v Visitor)    { acceptChildren(a, v) }
func (a *PrecedenceAdaptation) traitAdaptationNode() {}

// VisibilityAdaptation is `[Trait::]method as VISIBILITY ;` — a pure
// visibility change, no rename. Disambiguated from AliasAdaptation by
// peeking the token after the visibility keyword: `;` means this case
// (spec.md §4.4).
type VisibilityAdaptation struct {
	Method     MethodReference
	As         span.Span
	Visibility Modifier
	Semicolon  span.Span
}

func (a *VisibilityAdaptation) Kind() Kind { return KindUnknown }
func (a *VisibilityAdaptation) Span() span.Span {
	s := span.Join(a.Method.Span(), a.As)
	s = span.Join(s, a.Visibility.Span)
	return span.Join(s, a.Semicolon)
}
func (a *VisibilityAdaptation) Children() []Node    { return a.Method.children() }
func (a *VisibilityAdaptation) Accept(v Visitor)     { acceptChildren(a, v) }
func (a *VisibilityAdaptation) traitAdaptationNode() {}

// AliasAdaptation is `[Trait::]method as [VISIBILITY] NewName ;` — a
// rename, optionally combined with a visibility change. Visibility is
// nil when the clause only renames.
type AliasAdaptation struct {
	Method     MethodReference
	As         span.Span
	Visibility *Modifier
	NewName    *Name
	Semicolon  span.Span
}

func (a *AliasAdaptation) Kind() Kind { return KindUnknown }
func (a *AliasAdaptation) Span() span.Span {
	s := span.Join(a.Method.Span(), a.As)
	s = span.Join(s, a.NewName.Span())
	return span.Join(s, a.Semicolon)
}
func (a *AliasAdaptation) Children() []Node {
	out := a.Method.children()
	return append(out, a.NewName)
}
func (a *AliasAdaptation) Accept(v Visitor)     { acceptChildren(a, v) }
func (a *AliasAdaptation) traitAdaptationNode() {}

// TraitUsage is `use Trait (, Trait)* (; | { adaptation* })` — a
// TraitMember in its own right (spec.md §3 table, §4.4).
type TraitUsage struct {
	UseSpan span.Span
	Traits  CommaSeparated[*Name]

	// Semicolon-only form: Semicolon set, LeftBrace/RightBrace zero.
	Semicolon span.Span

	// Brace form: LeftBrace/RightBrace set, Adaptations may be empty.
	LeftBrace   span.Span
	Adaptations []TraitUsageAdaptation
	RightBrace  span.Span
}

func (u *TraitUsage) Kind() Kind { return KindTraitUsage }

func (u *TraitUsage) Span() span.Span {
	s := span.Join(u.UseSpan, u.Traits.Span())
	if !u.Semicolon.Zero() {
		return span.Join(s, u.Semicolon)
	}
	s = span.Join(s, u.LeftBrace)
	return span.Join(s, u.RightBrace)
}

func (u *TraitUsage) Children() []Node {
	out := u.Traits.Children()
	for _, a := range u.Adaptations {
		out = append(out, a)
	}
	return out
}

func (u *TraitUsage) Accept(v Visitor)   { acceptChildren(u, v) }
func (u *TraitUsage) statementNode()     {}
func (u *TraitUsage) traitMemberNode()   {}

// PropertyDeclarator is one `$name` entry in a property declaration
// list. Default-value and type-hint grammar is out of the core's
// detailed scope (spec.md §4.4 only specifies the modifier-validation
// shape, not the full declarator grammar).
type PropertyDeclarator struct {
	Variable *SimpleVariable
}

func (d *PropertyDeclarator) Kind() Kind       { return KindUnknown }
func (d *PropertyDeclarator) Span() span.Span  { return d.Variable.Span() }
func (d *PropertyDeclarator) Children() []Node { return []Node{d.Variable} }
func (d *PropertyDeclarator) Accept(v Visitor) { acceptChildren(d, v) }

// PropertyDeclaration is a trait member property, either legacy `var`
// form or the modifier form (spec.md §4.4 point 2/3's else branch).
type PropertyDeclaration struct {
	VarSpan    span.Span // set only for the legacy `var` form
	Modifiers  []Modifier
	Properties CommaSeparated[*PropertyDeclarator]
	Semicolon  span.Span
}

func (p *PropertyDeclaration) Kind() Kind { return KindUnknown }

func (p *PropertyDeclaration) Span() span.Span {
	s := p.VarSpan
	for _, m := range p.Modifiers {
		s = span.Join(s, m.Span)
	}
	s = span.Join(s, p.Properties.Span())
	return span.Join(s, p.Semicolon)
}

func (p *PropertyDeclaration) Children() []Node { return p.Properties.Children() }
func (p *PropertyDeclaration) Accept(v Visitor)  { acceptChildren(p, v) }
func (p *PropertyDeclaration) traitMemberNode()  {}

// ConstantDeclarator is one `NAME = value` entry.
type ConstantDeclarator struct {
	Name   *Name
	Equals span.Span
	Value  Expression
}

func (c *ConstantDeclarator) Kind() Kind      { return KindUnknown }
func (c *ConstantDeclarator) Span() span.Span { return span.Join(c.Name.Span(), c.Value.Span()) }
func (c *ConstantDeclarator) Children() []Node { return []Node{c.Name, c.Value} }
func (c *ConstantDeclarator) Accept(v Visitor) { acceptChildren(c, v) }

// ClassConstantDeclaration is `const NAME = value (, NAME = value)* ;`
// with its modifier group (spec.md §4.4 point 3, const case). Modifiers
// are recorded as written; their combination is not validated.
type ClassConstantDeclaration struct {
	Modifiers []Modifier
	ConstSpan span.Span
	Constants CommaSeparated[*ConstantDeclarator]
	Semicolon span.Span
}

func (c *ClassConstantDeclaration) Kind() Kind { return KindUnknown }

func (c *ClassConstantDeclaration) Span() span.Span {
	s := c.ConstSpan
	for _, m := range c.Modifiers {
		s = span.Join(s, m.Span)
	}
	s = span.Join(s, c.Constants.Span())
	return span.Join(s, c.Semicolon)
}

func (c *ClassConstantDeclaration) Children() []Node { return c.Constants.Children() }
func (c *ClassConstantDeclaration) Accept(v Visitor)  { acceptChildren(c, v) }
func (c *ClassConstantDeclaration) traitMemberNode()  {}

// Method is a trait method member. Its concrete variant — AbstractMethod,
// ConcreteMethod, AbstractConstructor, ConcreteConstructor — is derived
// from whether Body is nil and whether Name is "__construct" (spec.md
// §4.4 point 3, function case), following the same derived-discriminant
// pattern as LoopBody rather than four duplicated struct definitions.
type Method struct {
	Modifiers    []Modifier
	FunctionSpan span.Span
	Ampersand    span.Span // optional by-reference return marker
	Name         *Name
	LeftParen    span.Span
	Parameters   CommaSeparated[*SimpleVariable]
	RightParen   span.Span
	Body         *CompoundStatement // nil for an abstract method
	Semicolon    span.Span          // set iff Body == nil
}

// IsConstructor reports whether this method is named `__construct`.
func (m *Method) IsConstructor() bool { return m.Name != nil && m.Name.Value == "__construct" }

// IsAbstract reports whether this method has no body.
func (m *Method) IsAbstract() bool { return m.Body == nil }

func (m *Method) Kind() Kind {
	switch {
	case m.IsAbstract() && m.IsConstructor():
		return KindAbstractConstructor
	case m.IsAbstract():
		return KindAbstractMethod
	case m.IsConstructor():
		return KindConcreteConstructor
	default:
		return KindConcreteMethod
	}
}

func (m *Method) Span() span.Span {
	s := m.FunctionSpan
	for _, mod := range m.Modifiers {
		s = span.Join(s, mod.Span)
	}
	s = span.Join(s, m.Name.Span())
	s = span.Join(s, m.LeftParen)
	s = span.Join(s, m.Parameters.Span())
	s = span.Join(s, m.RightParen)
	if m.Body != nil {
		return span.Join(s, m.Body.Span())
	}
	return span.Join(s, m.Semicolon)
}

func (m *Method) Children() []Node {
	out := []Node{m.Name}
	out = append(out, m.Parameters.Children()...)
	if m.Body != nil {
		out = append(out, m.Body)
	}
	return out
}

func (m *Method) Accept(v Visitor)  { acceptChildren(m, v) }
func (m *Method) traitMemberNode() {}
