package parser

import (
	"github.com/wudi/phpast/ast"
	"github.com/wudi/phpast/syntaxerr"
	"github.com/wudi/phpast/token"
)

// traitStatement is `trait NAME { member* }` (spec.md §4.4).
func traitStatement(s *State) *ast.TraitStatement {
	attrs := s.takeAttributes()
	comments := gatherComments(s)
	traitSpan := s.next().Span
	nm := name(s)
	left := skipLeftBrace(s)

	var members []ast.TraitMember
	for s.current().Kind != token.RightBrace && !s.isEOF() {
		members = append(members, traitMember(s))
	}
	right := skipRightBrace(s)

	return &ast.TraitStatement{
		Attributes: attrs,
		Comments:   comments,
		TraitSpan:  traitSpan,
		Name:       nm,
		LeftBrace:  left,
		Members:    members,
		RightBrace: right,
	}
}

// traitMember dispatches one member production: any `#[...]` group in
// front of the member is gathered first into the pending side channel
// (spec.md §4.4's attribute-before-member check); no member type stores
// it, so it stays pending until the next traitStatement takes it or a
// later group replaces it. Then the member
// shape is chosen by its leading keyword — `use`, `var`, `const`, a
// modifier run, or `function` directly. A `use` preceded by a pending
// attribute group is the one documented exception: it falls through to
// the non-use branches instead of dispatching to traitUsage (spec.md §9
// open question 1, SPEC_FULL.md §5 decision 1 — kept as the
// distillation's documented current behavior, not "fixed").
func traitMember(s *State) ast.TraitMember {
	gatherAttributes(s)

	if s.current().Kind == token.Use && !s.hasPendingAttributes() {
		return traitUsage(s)
	}

	switch s.current().Kind {
	case token.Var:
		return legacyPropertyDeclaration(s)
	case token.Const:
		return classConstantDeclaration(s, nil)
	case token.Function:
		return method(s, nil)
	default:
		mods := modifiers(s)
		switch s.current().Kind {
		case token.Const:
			return classConstantDeclaration(s, mods)
		case token.Function:
			return method(s, mods)
		default:
			return propertyDeclaration(s, mods)
		}
	}
}

// modifiers reads zero or more member modifier keywords in whatever
// order the source wrote them; PHP does not fix an order and this
// slice does not validate combinations (spec.md §4.4 point 3 treats
// modifier validation as a downstream concern).
func modifiers(s *State) []ast.Modifier {
	var out []ast.Modifier
	for {
		switch s.current().Kind {
		case token.Public, token.Protected, token.Private, token.Static, token.Abstract, token.Final, token.Readonly:
			t := s.next()
			out = append(out, ast.Modifier{Token: t.Kind, Span: t.Span})
		default:
			return out
		}
	}
}

func methodReference(s *State) ast.MethodReference {
	first := name(s)
	if s.current().Kind == token.DoubleColon {
		dc := s.next().Span
		return ast.MethodReference{Trait: first, DoubleColon: dc, Method: name(s)}
	}
	return ast.MethodReference{Method: first}
}

// traitUsage is `use Trait (, Trait)* (; | { adaptation* })` (spec.md
// §4.4). The brace form's adaptation list follows
// comma_separated_no_trailing's trailing-comma diagnostic the same way
// the trait-name list does — a dangling comma before `insteadof`'s
// terminator is a syntax error, not silently dropped (spec.md §8
// scenario: trailing comma in a trait use list).
func traitUsage(s *State) *ast.TraitUsage {
	useSpan := s.next().Span
	traits := commaSeparatedNoTrailing(s, name, token.SemiColon, token.LeftBrace)

	if s.current().Kind != token.LeftBrace {
		semi := skipSemicolon(s)
		return &ast.TraitUsage{UseSpan: useSpan, Traits: traits, Semicolon: semi}
	}

	left := skipLeftBrace(s)
	var adaptations []ast.TraitUsageAdaptation
	for s.current().Kind != token.RightBrace && !s.isEOF() {
		before := s.pos
		adaptations = append(adaptations, traitUsageAdaptation(s))
		if s.pos == before {
			// traitUsageAdaptation matched nothing (e.g. `use A { & }`):
			// every path through it can fail to advance (methodReference's
			// name, skip(s, token.As), the rename/visibility name calls),
			// so force progress here the same way the top-level statement
			// fallback does, rather than spinning on a stuck cursor.
			bad := s.current()
			s.addError(syntaxerr.NewUnexpectedToken(token.RightBrace, bad))
			s.next()
		}
	}
	right := skipRightBrace(s)

	return &ast.TraitUsage{UseSpan: useSpan, Traits: traits, LeftBrace: left, Adaptations: adaptations, RightBrace: right}
}

// traitUsageAdaptation reads one `Trait::method insteadof ...;` or
// `[Trait::]method as ...;` clause, dispatching on the keyword that
// follows the method reference (spec.md §4.4).
func traitUsageAdaptation(s *State) ast.TraitUsageAdaptation {
	ref := methodReference(s)

	if s.current().Kind == token.Insteadof {
		insteadof := s.next().Span
		traits := commaSeparatedNoTrailing(s, name, token.SemiColon)
		semi := skipSemicolon(s)
		return &ast.PrecedenceAdaptation{Method: ref, Insteadof: insteadof, Traits: traits, Semicolon: semi}
	}

	as := skip(s, token.As)

	// `as VISIBILITY ;` is a pure visibility change; any other shape
	// after the visibility keyword means a rename (spec.md §4.4:
	// disambiguated by peeking the token after the keyword).
	switch s.current().Kind {
	case token.Public, token.Protected, token.Private:
		t := s.current()
		visibility := ast.Modifier{Token: t.Kind, Span: t.Span}
		if s.peek().Kind == token.SemiColon {
			s.next()
			semi := skipSemicolon(s)
			return &ast.VisibilityAdaptation{Method: ref, As: as, Visibility: visibility, Semicolon: semi}
		}
		s.next()
		newName := name(s)
		semi := skipSemicolon(s)
		return &ast.AliasAdaptation{Method: ref, As: as, Visibility: &visibility, NewName: newName, Semicolon: semi}
	default:
		newName := name(s)
		semi := skipSemicolon(s)
		return &ast.AliasAdaptation{Method: ref, As: as, NewName: newName, Semicolon: semi}
	}
}

func propertyDeclarator(s *State) *ast.PropertyDeclarator {
	return &ast.PropertyDeclarator{Variable: simpleVariable(s)}
}

// legacyPropertyDeclaration is the `var $a, $b;` form.
func legacyPropertyDeclaration(s *State) *ast.PropertyDeclaration {
	varSpan := s.next().Span
	props := commaSeparatedNoTrailing(s, propertyDeclarator, token.SemiColon)
	semi := skipSemicolon(s)
	return &ast.PropertyDeclaration{VarSpan: varSpan, Properties: props, Semicolon: semi}
}

// propertyDeclaration is the modifier form: `public $a, $b;`.
func propertyDeclaration(s *State, mods []ast.Modifier) *ast.PropertyDeclaration {
	props := commaSeparatedNoTrailing(s, propertyDeclarator, token.SemiColon)
	semi := skipSemicolon(s)
	return &ast.PropertyDeclaration{Modifiers: mods, Properties: props, Semicolon: semi}
}

func constantDeclarator(s *State) *ast.ConstantDeclarator {
	nm := name(s)
	equals := skip(s, token.Equals)
	value := expression(s)
	return &ast.ConstantDeclarator{Name: nm, Equals: equals, Value: value}
}

// classConstantDeclaration is `const NAME = value (, NAME = value)* ;`.
func classConstantDeclaration(s *State, mods []ast.Modifier) *ast.ClassConstantDeclaration {
	constSpan := s.next().Span
	constants := commaSeparatedNoTrailing(s, constantDeclarator, token.SemiColon)
	semi := skipSemicolon(s)
	return &ast.ClassConstantDeclaration{Modifiers: mods, ConstSpan: constSpan, Constants: constants, Semicolon: semi}
}

// method is a trait function member. Its concrete variant is derived
// from Body/Name rather than chosen here (spec.md §4.4 point 3,
// function case; see Method.Kind).
func method(s *State, mods []ast.Modifier) *ast.Method {
	functionSpan := s.next().Span
	var ampersand token.Token
	if s.current().Kind == token.Ampersand {
		ampersand = s.next()
	}
	nm := name(s)
	left := skipLeftParen(s)
	params := commaSeparatedNoTrailing(s, simpleVariable, token.RightParen)
	right := skipRightParen(s)

	if s.current().Kind == token.LeftBrace {
		body := compoundStatement(s)
		return &ast.Method{
			Modifiers: mods, FunctionSpan: functionSpan, Ampersand: ampersand.Span,
			Name: nm, LeftParen: left, Parameters: params, RightParen: right, Body: body,
		}
	}
	semi := skipSemicolon(s)
	return &ast.Method{
		Modifiers: mods, FunctionSpan: functionSpan, Ampersand: ampersand.Span,
		Name: nm, LeftParen: left, Parameters: params, RightParen: right, Semicolon: semi,
	}
}
