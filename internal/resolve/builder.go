package resolve

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Be-ing/sixtyfps/internal/diag"
	"github.com/Be-ing/sixtyfps/internal/exprtree"
	"github.com/Be-ing/sixtyfps/internal/literals"
	"github.com/Be-ing/sixtyfps/internal/lookup"
	"github.com/Be-ing/sixtyfps/internal/source"
	"github.com/Be-ing/sixtyfps/internal/syntax"
	"github.com/Be-ing/sixtyfps/internal/types"
)

// builder lowers syntax nodes of one binding. It lives exactly as long as
// its lookup context.
type builder struct {
	ctx  *lookup.Ctx
	in   *types.Interner
	conv exprtree.Converter
}

func newBuilder(ctx *lookup.Ctx) *builder {
	in := ctx.Types()
	return &builder{
		ctx:  ctx,
		in:   in,
		conv: exprtree.Converter{Types: in, Reporter: ctx.Sink},
	}
}

func (b *builder) errorf(code diag.Code, sp source.Span, format string, args ...any) {
	diag.ReportError(b.ctx.Sink, code, sp, fmt.Sprintf(format, args...)).Emit()
}

// invalidf reports an error and returns the poison value.
func (b *builder) invalidf(code diag.Code, sp source.Span, format string, args ...any) *exprtree.Expr {
	b.errorf(code, sp, format, args...)
	return exprtree.NewInvalid(sp)
}

func (b *builder) deprecated(old, canonical string, sp source.Span) {
	msg := fmt.Sprintf("The property '%s' has been deprecated. Please use '%s' instead", old, canonical)
	diag.ReportWarning(b.ctx.Sink, diag.SemaDeprecatedProperty, sp, msg).
		WithFix("use "+canonical, diag.FixEdit{Span: sp, NewText: canonical}).
		Emit()
}

func (b *builder) convert(e *exprtree.Expr, ty types.TypeID, sp source.Span) *exprtree.Expr {
	return b.conv.MaybeConvert(e, ty, sp)
}

// relativeToParent lists the properties a percentage converts to a length for.
var relativeToParent = []string{"width", "height"}

func (b *builder) lowerBindingExpression(node *syntax.Node) *exprtree.Expr {
	var e *exprtree.Expr
	if sub := node.ChildNode(syntax.Expression); sub != nil {
		e = b.lowerExpression(sub)
	} else if block := node.ChildNode(syntax.CodeBlock); block != nil {
		e = b.lowerCodeBlock(block)
	} else {
		debugAssertHasError(b.ctx.Sink)
		return exprtree.NewInvalid(node.Span)
	}
	if b.in.Kind(b.ctx.PropertyType) == types.KindLogicalLength && b.in.Kind(e.Type) == types.KindPercent {
		for _, name := range relativeToParent {
			if name == b.ctx.PropertyName {
				return e
			}
		}
		return b.invalidf(diag.SemaTypeMismatch, node.Span,
			"Automatic conversion from percentage to length is only possible for the properties %s",
			strings.Join(relativeToParent, " and "))
	}
	return b.convert(e, b.ctx.PropertyType, node.Span)
}

// lowerExpression dispatches on the single construct an Expression wraps.
func (b *builder) lowerExpression(node *syntax.Node) *exprtree.Expr {
	if node == nil {
		debugAssertHasError(b.ctx.Sink)
		return exprtree.NewInvalid(source.Span{})
	}
	for _, c := range node.Children {
		if c.Token != nil {
			switch c.Token.Kind {
			case syntax.StringLiteral:
				return b.lowerStringLiteral(node, c.Token)
			case syntax.NumberLiteral:
				return b.lowerNumberLiteral(node, c.Token)
			case syntax.ColorLiteral:
				return b.lowerColorLiteral(node, c.Token)
			}
			continue
		}
		n := c.Node
		switch n.Kind {
		case syntax.Expression:
			return b.lowerExpression(n)
		case syntax.AtImageUrl:
			return b.lowerImageURL(n)
		case syntax.AtLinearGradient:
			return b.lowerLinearGradient(n)
		case syntax.QualifiedName:
			e := b.lowerQualifiedName(n)
			if b.in.IsCallable(e.Type) {
				b.errorf(diag.SemaUncalledFunction, n.Span, "'%s' must be called. Did you forgot the '()'?", qualifiedText(n))
			}
			return e
		case syntax.FunctionCallExpression:
			return b.lowerFunctionCall(n)
		case syntax.MemberAccess:
			return b.lowerMemberAccess(n)
		case syntax.IndexExpression:
			return b.lowerIndex(n)
		case syntax.SelfAssignment:
			return b.lowerSelfAssignment(n)
		case syntax.BinaryExpression:
			return b.lowerBinary(n)
		case syntax.UnaryOpExpression:
			return b.lowerUnary(n)
		case syntax.ConditionalExpression:
			return b.lowerConditional(n)
		case syntax.ObjectLiteral:
			return b.lowerObjectLiteral(n)
		case syntax.Array:
			return b.lowerArray(n)
		case syntax.CodeBlock:
			return b.lowerCodeBlock(n)
		case syntax.StringTemplate:
			return b.lowerStringTemplate(n)
		}
	}
	debugAssertHasError(b.ctx.Sink)
	return exprtree.NewInvalid(node.Span)
}

func (b *builder) lowerStringLiteral(node *syntax.Node, tok *syntax.Token) *exprtree.Expr {
	s, ok := literals.UnescapeString(tok.Text)
	if !ok {
		return b.invalidf(diag.SemaBadLiteral, node.Span, "Cannot parse string literal")
	}
	return exprtree.NewString(b.in, s, node.Span)
}

// lowerNumberLiteral keeps the unit of the literal; unitless numbers are floats.
func (b *builder) lowerNumberLiteral(node *syntax.Node, tok *syntax.Token) *exprtree.Expr {
	v, unit, err := literals.ParseNumber(tok.Text)
	if err != nil {
		return b.invalidf(diag.SemaBadLiteral, node.Span, "%s", err.Error())
	}
	return exprtree.NewNumber(b.in, v, unit, node.Span)
}

func (b *builder) lowerColorLiteral(node *syntax.Node, tok *syntax.Token) *exprtree.Expr {
	argb, ok := literals.ParseColor(tok.Text)
	if !ok {
		return b.invalidf(diag.SemaBadLiteral, node.Span, "Invalid color literal")
	}
	return exprtree.NewColor(b.in, argb, node.Span)
}

// lowerImageURL handles @image-url("..."). Absolute paths and URLs are
// kept verbatim, relative paths go through the import resolver.
func (b *builder) lowerImageURL(node *syntax.Node) *exprtree.Expr {
	tok := node.ChildToken(syntax.StringLiteral)
	if tok == nil {
		return b.invalidf(diag.SemaBadLiteral, node.Span, "Cannot parse string literal")
	}
	s, ok := literals.UnescapeString(tok.Text)
	if !ok {
		return b.invalidf(diag.SemaBadLiteral, node.Span, "Cannot parse string literal")
	}
	img := &exprtree.Expr{Kind: exprtree.ImageReference, Type: b.in.Builtins().Image, Span: node.Span}
	if s == "" {
		img.Data = exprtree.ImageReferenceData{Kind: exprtree.ImageNone}
		return img
	}
	path := s
	isURL := strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
	if !filepath.IsAbs(s) && !isURL && b.ctx.Importer != nil {
		path = b.ctx.Importer.ResolveImportPath(node, s)
	}
	img.Data = exprtree.ImageReferenceData{Kind: exprtree.ImageAbsolutePath, Path: path}
	return img
}

// qualifiedText renders a qualified name as written.
func qualifiedText(n *syntax.Node) string {
	toks := n.ChildTokens(syntax.Identifier)
	parts := make([]string, len(toks))
	for i, t := range toks {
		parts[i] = t.Text
	}
	return strings.Join(parts, ".")
}
