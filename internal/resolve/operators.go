package resolve

import (
	"github.com/Be-ing/sixtyfps/internal/diag"
	"github.com/Be-ing/sixtyfps/internal/exprtree"
	"github.com/Be-ing/sixtyfps/internal/syntax"
	"github.com/Be-ing/sixtyfps/internal/types"
)

var binaryOps = map[syntax.TokenKind]exprtree.Op{
	syntax.Plus:         exprtree.OpAdd,
	syntax.Minus:        exprtree.OpSub,
	syntax.Star:         exprtree.OpMul,
	syntax.Div:          exprtree.OpDiv,
	syntax.LessEqual:    exprtree.OpLessEqual,
	syntax.GreaterEqual: exprtree.OpGreaterEqual,
	syntax.LAngle:       exprtree.OpLess,
	syntax.RAngle:       exprtree.OpGreater,
	syntax.EqualEqual:   exprtree.OpEqual,
	syntax.NotEqual:     exprtree.OpNotEqual,
	syntax.AndAnd:       exprtree.OpAnd,
	syntax.OrOr:         exprtree.OpOr,
}

var assignOps = map[syntax.TokenKind]exprtree.Op{
	syntax.PlusEqual:  exprtree.OpAdd,
	syntax.MinusEqual: exprtree.OpSub,
	syntax.StarEqual:  exprtree.OpMul,
	syntax.DivEqual:   exprtree.OpDiv,
	syntax.Equal:      exprtree.OpAssign,
}

var unaryOps = map[syntax.TokenKind]exprtree.Op{
	syntax.Plus:  exprtree.OpAdd,
	syntax.Minus: exprtree.OpSub,
	syntax.Bang:  exprtree.OpNot,
}

func operatorOf(node *syntax.Node, table map[syntax.TokenKind]exprtree.Op) exprtree.Op {
	for _, c := range node.Children {
		if c.Token == nil {
			continue
		}
		if op, ok := table[c.Token.Kind]; ok {
			return op
		}
	}
	return exprtree.OpInvalid
}

// isWritable reports whether e can be assigned to: a property, a field
// or element of one, or the model data of a repeater.
func isWritable(e *exprtree.Expr) bool {
	switch d := e.Data.(type) {
	case exprtree.ReferenceData:
		return e.Kind == exprtree.PropertyReference
	case exprtree.StructFieldAccessData:
		return isWritable(d.Base)
	case exprtree.ArrayIndexData:
		return isWritable(d.Array)
	}
	return e.Kind == exprtree.RepeaterModelReference
}

func (b *builder) lowerSelfAssignment(node *syntax.Node) *exprtree.Expr {
	subs := node.Expressions()
	if len(subs) != 2 {
		debugAssertHasError(b.ctx.Sink)
		return exprtree.NewInvalid(node.Span)
	}
	lhs := b.lowerExpression(subs[0])
	op := operatorOf(node, assignOps)
	if !isWritable(lhs) && lhs.Type != types.Invalid {
		what := "Self assignment"
		if op == exprtree.OpAssign {
			what = "Assignment"
		}
		b.errorf(diag.SemaBindingDiscipline, node.Span, "%s needs to be done on a property", what)
	}

	ty := lhs.Type
	_, numeric := b.in.AsUnitProduct(ty)
	expected := types.Invalid
	switch {
	case op == exprtree.OpAssign:
		expected = ty
	case op == exprtree.OpAdd && (b.in.Kind(ty) == types.KindString || numeric):
		expected = ty
	case op == exprtree.OpSub && numeric:
		expected = ty
	case (op == exprtree.OpMul || op == exprtree.OpDiv) && numeric:
		expected = b.in.Builtins().Float32
	default:
		if ty != types.Invalid {
			b.errorf(diag.SemaTypeMismatch, subs[0].Span, "the %s= operation cannot be done on a %s", op, b.in.String(ty))
		}
	}
	rhs := b.convert(b.lowerExpression(subs[1]), expected, subs[1].Span)
	return &exprtree.Expr{
		Kind: exprtree.SelfAssignment,
		Type: b.in.Builtins().Void,
		Span: node.Span,
		Data: exprtree.SelfAssignmentData{Op: op, LHS: lhs, RHS: rhs},
	}
}

func (b *builder) lowerBinary(node *syntax.Node) *exprtree.Expr {
	subs := node.Expressions()
	if len(subs) != 2 {
		debugAssertHasError(b.ctx.Sink)
		return exprtree.NewInvalid(node.Span)
	}
	op := operatorOf(node, binaryOps)
	lhs := b.lowerExpression(subs[0])
	rhs := b.lowerExpression(subs[1])
	bt := b.in.Builtins()

	var expected types.TypeID
	switch op.Class() {
	case exprtree.ClassComparison:
		expected = b.in.CommonTargetType([]types.TypeID{lhs.Type, rhs.Type})
	case exprtree.ClassLogical:
		expected = bt.Bool
	default:
		lt, rt := lhs.Type, rhs.Type
		switch {
		case op == exprtree.OpAdd && (b.in.Kind(lt) == types.KindString || b.in.Kind(rt) == types.KindString):
			expected = bt.String
		case op == exprtree.OpAdd || op == exprtree.OpSub:
			expected = b.additiveType(lt, rt)
		default:
			switch lu, ru := b.in.HasUnit(lt), b.in.HasUnit(rt); {
			case lu && ru:
			case lu:
				rhs = b.convert(rhs, bt.Float32, subs[1].Span)
			case ru:
				lhs = b.convert(lhs, bt.Float32, subs[0].Span)
			default:
				expected = bt.Float32
			}
			if expected == types.Invalid {
				return exprtree.NewBinary(op, lhs, rhs, b.productType(op, lhs.Type, rhs.Type))
			}
		}
	}
	lhs = b.convert(lhs, expected, subs[0].Span)
	rhs = b.convert(rhs, expected, subs[1].Span)
	return exprtree.NewBinary(op, lhs, rhs, b.binaryResultType(op, lhs.Type, rhs.Type))
}

// additiveType picks the operand type of + and -: the first side with a
// default unit, then the first unit product, else float.
func (b *builder) additiveType(lt, rt types.TypeID) types.TypeID {
	if _, ok := b.in.DefaultUnit(lt); ok {
		return lt
	}
	if _, ok := b.in.DefaultUnit(rt); ok {
		return rt
	}
	if b.in.Kind(lt) == types.KindUnitProduct {
		return lt
	}
	if b.in.Kind(rt) == types.KindUnitProduct {
		return rt
	}
	return b.in.Builtins().Float32
}

// productType is the type of lhs*rhs or lhs/rhs computed on units.
func (b *builder) productType(op exprtree.Op, lt, rt types.TypeID) types.TypeID {
	lp, lok := b.in.AsUnitProduct(lt)
	rp, rok := b.in.AsUnitProduct(rt)
	if !lok || !rok {
		return types.Invalid
	}
	if op == exprtree.OpDiv {
		return b.in.FromUnitProduct(lp.Div(rp))
	}
	return b.in.FromUnitProduct(lp.Mul(rp))
}

func (b *builder) binaryResultType(op exprtree.Op, lt, rt types.TypeID) types.TypeID {
	switch {
	case op.Class() != exprtree.ClassArithmetic:
		return b.in.Builtins().Bool
	case op == exprtree.OpMul || op == exprtree.OpDiv:
		return b.productType(op, lt, rt)
	}
	return lt
}

func (b *builder) lowerUnary(node *syntax.Node) *exprtree.Expr {
	sub := b.lowerExpression(node.ChildNode(syntax.Expression))
	return &exprtree.Expr{
		Kind: exprtree.UnaryOp,
		Type: sub.Type,
		Span: node.Span,
		Data: exprtree.UnaryOpData{Op: operatorOf(node, unaryOps), Sub: sub},
	}
}

func (b *builder) lowerConditional(node *syntax.Node) *exprtree.Expr {
	subs := node.Expressions()
	if len(subs) != 3 {
		debugAssertHasError(b.ctx.Sink)
		return exprtree.NewInvalid(node.Span)
	}
	cond := b.convert(b.lowerExpression(subs[0]), b.in.Builtins().Bool, subs[0].Span)
	t := b.lowerExpression(subs[1])
	f := b.lowerExpression(subs[2])
	ty := b.in.CommonTargetType([]types.TypeID{t.Type, f.Type})
	t = b.convert(t, ty, subs[1].Span)
	f = b.convert(f, ty, subs[2].Span)
	return &exprtree.Expr{
		Kind: exprtree.Condition,
		Type: ty,
		Span: node.Span,
		Data: exprtree.ConditionData{Cond: cond, True: t, False: f},
	}
}
