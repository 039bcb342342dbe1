package resolve

import (
	"github.com/Be-ing/sixtyfps/internal/diag"
	"github.com/Be-ing/sixtyfps/internal/exprtree"
	"github.com/Be-ing/sixtyfps/internal/source"
	"github.com/Be-ing/sixtyfps/internal/syntax"
	"github.com/Be-ing/sixtyfps/internal/types"
)

// callArg is a lowered argument with the span conversions report at.
type callArg struct {
	expr *exprtree.Expr
	span source.Span
}

func (b *builder) lowerFunctionCall(node *syntax.Node) *exprtree.Expr {
	subs := node.Expressions()
	if len(subs) == 0 {
		debugAssertHasError(b.ctx.Sink)
		return exprtree.NewInvalid(node.Span)
	}
	// a bare name is lowered without the "must be called" check
	var callee *exprtree.Expr
	if qn := subs[0].ChildNode(syntax.QualifiedName); qn != nil {
		callee = b.lowerQualifiedName(qn)
	} else {
		callee = b.lowerExpression(subs[0])
	}

	var args []callArg
	for _, n := range subs[1:] {
		args = append(args, callArg{expr: b.lowerExpression(n), span: n.Span})
	}

	switch callee.Kind {
	case exprtree.BuiltinMacroReference:
		return b.lowerMacro(callee.Data.(exprtree.BuiltinMacroData).Macro, args, node.Span)
	case exprtree.MemberFunction:
		d := callee.Data.(exprtree.MemberFunctionData)
		args = append([]callArg{{expr: d.Base, span: subs[0].Span}}, args...)
		callee = d.Member
	}

	exprs := make([]*exprtree.Expr, len(args))
	for i, a := range args {
		exprs[i] = a.expr
	}
	info, ok := b.in.FnInfo(callee.Type)
	switch {
	case !ok:
		if callee.Type != types.Invalid {
			b.errorf(diag.SemaNotCallable, node.Span, "The expression is not a function")
		}
		return exprtree.NewCall(callee, exprs, types.Invalid, node.Span)
	case len(info.Args) != len(args):
		b.errorf(diag.SemaArityMismatch, node.Span,
			"The callback or function expects %d arguments, but %d are provided", len(info.Args), len(args))
	default:
		for i, a := range args {
			if i < len(info.Args) {
				exprs[i] = b.convert(a.expr, info.Args[i], a.span)
			}
		}
	}
	return exprtree.NewCall(callee, exprs, info.Return, node.Span)
}

func (b *builder) lowerIndex(node *syntax.Node) *exprtree.Expr {
	subs := node.Expressions()
	if len(subs) != 2 {
		debugAssertHasError(b.ctx.Sink)
		return exprtree.NewInvalid(node.Span)
	}
	array := b.lowerExpression(subs[0])
	index := b.convert(b.lowerExpression(subs[1]), b.in.Builtins().Int32, subs[1].Span)

	elem, isArray := b.in.ArrayElem(array.Type)
	if !isArray && array.Type != types.Invalid {
		b.errorf(diag.SemaNotIndexable, node.Span, "%s is not an indexable type", b.in.String(array.Type))
	}
	return &exprtree.Expr{
		Kind: exprtree.ArrayIndex,
		Type: elem,
		Span: node.Span,
		Data: exprtree.ArrayIndexData{Array: array, Index: index},
	}
}
