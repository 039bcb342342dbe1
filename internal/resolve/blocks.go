package resolve

import (
	"github.com/Be-ing/sixtyfps/internal/exprtree"
	"github.com/Be-ing/sixtyfps/internal/syntax"
	"github.com/Be-ing/sixtyfps/internal/types"
)

// lowerCodeBlock lowers `{ s1; s2; return x; s3 }`. Exit points are the
// return statements and the final statement; they are unified and each
// converted to the common type. Other statements keep their own types.
func (b *builder) lowerCodeBlock(node *syntax.Node) *exprtree.Expr {
	var stmts []*exprtree.Expr
	var spans []*syntax.Node
	for _, c := range node.Children {
		if c.Node == nil {
			continue
		}
		switch c.Node.Kind {
		case syntax.Expression:
			stmts = append(stmts, b.lowerExpression(c.Node))
		case syntax.ReturnStatement:
			stmts = append(stmts, b.lowerReturn(c.Node))
		default:
			continue
		}
		spans = append(spans, c.Node)
	}

	var exits []int
	for i, s := range stmts {
		if s.Kind == exprtree.ReturnStatement || i == len(stmts)-1 {
			exits = append(exits, i)
		}
	}
	tys := make([]types.TypeID, len(exits))
	for i, idx := range exits {
		tys[i] = stmts[idx].Type
	}
	common := b.in.CommonTargetType(tys)
	for _, idx := range exits {
		stmts[idx] = b.convertExit(stmts[idx], common, spans[idx])
	}

	ty := b.in.Builtins().Void
	if n := len(stmts); n > 0 {
		ty = stmts[n-1].Type
	}
	return &exprtree.Expr{
		Kind: exprtree.CodeBlock,
		Type: ty,
		Span: node.Span,
		Data: exprtree.CodeBlockData{Statements: stmts},
	}
}

// convertExit converts an exit point; for a return it converts the value.
func (b *builder) convertExit(e *exprtree.Expr, ty types.TypeID, node *syntax.Node) *exprtree.Expr {
	if e.Kind != exprtree.ReturnStatement {
		return b.convert(e, ty, node.Span)
	}
	d := e.Data.(exprtree.ReturnStatementData)
	if d.Value == nil {
		return e
	}
	value := b.convert(d.Value, ty, node.Span)
	return &exprtree.Expr{
		Kind: exprtree.ReturnStatement,
		Type: value.Type,
		Span: e.Span,
		Data: exprtree.ReturnStatementData{Value: value},
	}
}

// lowerReturn converts the returned value to the handler's return type.
func (b *builder) lowerReturn(node *syntax.Node) *exprtree.Expr {
	ret := &exprtree.Expr{
		Kind: exprtree.ReturnStatement,
		Type: b.in.Builtins().Void,
		Span: node.Span,
		Data: exprtree.ReturnStatementData{},
	}
	if sub := node.ChildNode(syntax.Expression); sub != nil {
		value := b.convert(b.lowerExpression(sub), b.ctx.ReturnType(), node.Span)
		ret.Type = value.Type
		ret.Data = exprtree.ReturnStatementData{Value: value}
	}
	return ret
}

// lowerCallbackConnection lowers `clicked(a, b) => { ... }`: the declared
// identifiers name the callback arguments inside the body.
func (b *builder) lowerCallbackConnection(node *syntax.Node) *exprtree.Expr {
	b.ctx.Arguments = b.ctx.Arguments[:0]
	for _, id := range node.ChildNodes(syntax.DeclaredIdentifier) {
		name, _ := id.IdentifierText()
		b.ctx.Arguments = append(b.ctx.Arguments, name)
	}
	block := node.ChildNode(syntax.CodeBlock)
	if block == nil {
		debugAssertHasError(b.ctx.Sink)
		return exprtree.NewInvalid(node.Span)
	}
	return b.convert(b.lowerCodeBlock(block), b.ctx.ReturnType(), node.Span)
}
