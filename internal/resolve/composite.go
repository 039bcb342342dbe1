package resolve

import (
	"github.com/Be-ing/sixtyfps/internal/exprtree"
	"github.com/Be-ing/sixtyfps/internal/syntax"
	"github.com/Be-ing/sixtyfps/internal/types"
)

// lowerObjectLiteral builds an anonymous struct from `{ a: 1, b: "x" }`.
func (b *builder) lowerObjectLiteral(node *syntax.Node) *exprtree.Expr {
	members := node.ChildNodes(syntax.ObjectMember)
	fields := make([]exprtree.StructField, 0, len(members))
	fieldTypes := make([]types.Field, 0, len(members))
	seen := make(map[string]int, len(members))
	for _, m := range members {
		name, _ := m.IdentifierText()
		value := b.lowerExpression(m.ChildNode(syntax.Expression))
		// a repeated key keeps the last value
		if i, dup := seen[name]; dup {
			fields[i].Value = value
			fieldTypes[i].Type = value.Type
			continue
		}
		seen[name] = len(fields)
		fields = append(fields, exprtree.StructField{Name: name, Value: value})
		fieldTypes = append(fieldTypes, types.Field{Name: name, Type: value.Type})
	}
	return exprtree.NewStruct(b.in.Struct("", fieldTypes), fields, node.Span)
}

// lowerArray unifies the element types and converts every element.
func (b *builder) lowerArray(node *syntax.Node) *exprtree.Expr {
	subs := node.Expressions()
	values := make([]*exprtree.Expr, len(subs))
	tys := make([]types.TypeID, len(subs))
	for i, n := range subs {
		values[i] = b.lowerExpression(n)
		tys[i] = values[i].Type
	}
	elem := b.in.CommonTargetType(tys)
	for i := range values {
		values[i] = b.convert(values[i], elem, node.Span)
	}
	return &exprtree.Expr{
		Kind: exprtree.Array,
		Type: b.in.Array(elem),
		Span: node.Span,
		Data: exprtree.ArrayData{ElemType: elem, Values: values},
	}
}

// lowerStringTemplate turns "a\{x}b" into a left-associated chain of
// string concatenations.
func (b *builder) lowerStringTemplate(node *syntax.Node) *exprtree.Expr {
	str := b.in.Builtins().String
	var out *exprtree.Expr
	for _, n := range node.Expressions() {
		part := b.convert(b.lowerExpression(n), str, n.Span)
		if out == nil {
			out = part
			continue
		}
		out = exprtree.NewBinary(exprtree.OpAdd, out, part, str)
	}
	if out == nil {
		return exprtree.NewString(b.in, "", node.Span)
	}
	return out
}
