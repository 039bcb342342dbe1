package resolve

import (
	"strings"

	"github.com/Be-ing/sixtyfps/internal/diag"
	"github.com/Be-ing/sixtyfps/internal/exprtree"
	"github.com/Be-ing/sixtyfps/internal/lookup"
	"github.com/Be-ing/sixtyfps/internal/objtree"
	"github.com/Be-ing/sixtyfps/internal/syntax"
	"github.com/Be-ing/sixtyfps/internal/types"
)

const subtractionHint = ". Use space before the '-' if you meant a subtraction"

// beforeHyphen returns the text up to the first '-' of an identifier as
// written, if it has one.
func beforeHyphen(text string) (string, bool) {
	i := strings.IndexByte(text, '-')
	if i <= 0 {
		return "", false
	}
	return text[:i], true
}

// lowerQualifiedName resolves a.b.c: the first segment through the
// global chain, the rest as member lookups on the previous result.
func (b *builder) lowerQualifiedName(node *syntax.Node) *exprtree.Expr {
	toks := node.ChildTokens(syntax.Identifier)
	if len(toks) == 0 {
		debugAssertHasError(b.ctx.Sink)
		return exprtree.NewInvalid(node.Span)
	}
	first, rest := toks[0], toks[1:]
	b.ctx.CurrentToken = first
	name := syntax.NormalizeIdentifier(first.Text)

	res, ok := lookup.Global(b.ctx, name, first.Span)
	if !ok {
		if prefix, has := beforeHyphen(first.Text); has {
			if _, found := lookup.Global(b.ctx, syntax.NormalizeIdentifier(prefix), first.Span); found {
				return b.invalidf(diag.SemaUnresolvedIdentifier, node.Span,
					"Unknown unqualified identifier '%s'%s", first.Text, subtractionHint)
			}
		}
		if len(rest) > 0 {
			return b.invalidf(diag.SemaUnresolvedIdentifier, node.Span, "Cannot access id '%s'", first.Text)
		}
		return b.invalidf(diag.SemaUnresolvedIdentifier, node.Span, "Unknown unqualified identifier '%s'", first.Text)
	}
	if res.Canonical != "" {
		b.deprecated(name, res.Canonical, first.Span)
	}

	switch res.Kind {
	case lookup.ResultEnumeration:
		info, _ := b.in.EnumInfo(res.Enum)
		if len(rest) == 0 {
			return b.invalidf(diag.SemaInvalidMember, node.Span, "Cannot take reference to an enum")
		}
		next := rest[0]
		m, ok := lookup.EnumMember(b.ctx, res.Enum, syntax.NormalizeIdentifier(next.Text), next.Span)
		if !ok {
			return b.invalidf(diag.SemaInvalidMember, next.Span, "'%s' is not a member of the enum %s", next.Text, info.Name)
		}
		return b.lookupObject(m.Expr, rest[1:])
	case lookup.ResultNamespace:
		if len(rest) == 0 {
			return b.invalidf(diag.SemaInvalidMember, node.Span, "Cannot take reference to a namespace")
		}
		next := rest[0]
		m, ok := lookup.NamespaceMember(b.ctx, res.Namespace, syntax.NormalizeIdentifier(next.Text), next.Span)
		if !ok {
			return b.invalidf(diag.SemaInvalidMember, next.Span, "'%s' is not a member of the namespace %s", next.Text, name)
		}
		return b.lookupObject(m.Expr, rest[1:])
	}

	e := res.Expr
	switch e.Kind {
	case exprtree.ElementReference:
		return b.continueWithinElement(e, rest, node)
	case exprtree.CallbackReference:
		if len(rest) > 0 {
			b.errorf(diag.SemaInvalidMember, rest[0].Span, "Cannot access fields of callback")
		}
		return e
	}
	return b.lookupObject(e, rest)
}

// continueWithinElement resolves the segments following an element.
func (b *builder) continueWithinElement(elemRef *exprtree.Expr, rest []*syntax.Token, node *syntax.Node) *exprtree.Expr {
	id := elemRef.Data.(exprtree.ElementReferenceData).Element
	if len(rest) == 0 {
		if b.in.Kind(b.ctx.PropertyType) == types.KindElementReference {
			return elemRef
		}
		return b.invalidf(diag.SemaInvalidMember, node.Span, "Cannot take reference of an element")
	}
	second := rest[0]
	b.ctx.CurrentToken = second
	name := syntax.NormalizeIdentifier(second.Text)
	elem := b.ctx.Doc.Element(id)

	res, ok := lookup.ElementMember(b.ctx, id, name, second.Span)
	if !ok {
		extra := ""
		if prefix, has := beforeHyphen(second.Text); has {
			if elem.LookupProperty(syntax.NormalizeIdentifier(prefix)).Found() {
				extra = subtractionHint
			}
		}
		what := describeElement(elem)
		if what == "" {
			debugAssertHasError(b.ctx.Sink)
			return exprtree.NewInvalid(second.Span)
		}
		return b.invalidf(diag.SemaInvalidMember, second.Span, "%s does not have a property '%s'%s", what, second.Text, extra)
	}
	if res.Canonical != "" {
		b.deprecated(name, res.Canonical, second.Span)
	}
	e := res.Expr
	if e.Kind == exprtree.CallbackReference {
		if len(rest) > 1 {
			b.errorf(diag.SemaInvalidMember, rest[1].Span, "Cannot access fields of callback")
		}
		return e
	}
	return b.lookupObject(e, rest[1:])
}

// describeElement names an element for "does not have a property" errors.
func describeElement(e *objtree.Element) string {
	switch e.Base.Kind {
	case objtree.ElementTypeBuiltin, objtree.ElementTypeComponent:
		return "Element '" + e.Base.Name() + "'"
	}
	if e.Component != nil && e.Component.Global {
		return "'" + e.Component.Name + "'"
	}
	return ""
}

// lookupObject applies member lookups for each remaining segment.
func (b *builder) lookupObject(base *exprtree.Expr, rest []*syntax.Token) *exprtree.Expr {
	for _, next := range rest {
		b.ctx.CurrentToken = next
		name := syntax.NormalizeIdentifier(next.Text)
		res, ok := lookup.Member(b.ctx, base, name, next.Span)
		if ok && res.Kind == lookup.ResultExpression {
			if res.Canonical != "" {
				b.deprecated(name, res.Canonical, next.Span)
			}
			base = res.Expr
			continue
		}
		if base.IsInvalid() {
			// already reported
			return base
		}
		if prefix, has := beforeHyphen(next.Text); has {
			if _, found := lookup.Member(b.ctx, base, syntax.NormalizeIdentifier(prefix), next.Span); found {
				return b.invalidf(diag.SemaInvalidMember, next.Span, "Cannot access the field '%s'%s", next.Text, subtractionHint)
			}
		}
		of := ""
		if b.in.Kind(base.Type) != types.KindStruct {
			of = " of " + b.in.String(base.Type)
		}
		return b.invalidf(diag.SemaInvalidMember, next.Span, "Cannot access the field '%s'%s", next.Text, of)
	}
	return base
}

func (b *builder) lowerMemberAccess(node *syntax.Node) *exprtree.Expr {
	base := b.lowerExpression(node.ChildNode(syntax.Expression))
	tok := node.ChildToken(syntax.Identifier)
	if tok == nil {
		debugAssertHasError(b.ctx.Sink)
		return exprtree.NewInvalid(node.Span)
	}
	return b.lookupObject(base, []*syntax.Token{tok})
}
