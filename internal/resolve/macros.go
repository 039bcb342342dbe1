package resolve

import (
	"github.com/Be-ing/sixtyfps/internal/diag"
	"github.com/Be-ing/sixtyfps/internal/exprtree"
	"github.com/Be-ing/sixtyfps/internal/lookup"
	"github.com/Be-ing/sixtyfps/internal/source"
	"github.com/Be-ing/sixtyfps/internal/types"
)

// lowerMacro expands a builtin macro call. Macros check their own
// arguments instead of going through the generic call typing.
func (b *builder) lowerMacro(m exprtree.BuiltinMacro, args []callArg, sp source.Span) *exprtree.Expr {
	switch m {
	case exprtree.MacroMin:
		return b.lowerMinMax(args, exprtree.OpLess, sp)
	case exprtree.MacroMax:
		return b.lowerMinMax(args, exprtree.OpGreater, sp)
	case exprtree.MacroMod:
		if len(args) != 2 {
			return b.invalidf(diag.SemaArityMismatch, sp, "Needs 2 arguments")
		}
		i32 := b.in.Builtins().Int32
		return b.callBuiltin(exprtree.FuncMod, i32, sp,
			b.convert(args[0].expr, i32, args[0].span),
			b.convert(args[1].expr, i32, args[1].span))
	case exprtree.MacroAbs:
		if len(args) != 1 {
			return b.invalidf(diag.SemaArityMismatch, sp, "Needs 1 argument")
		}
		arg := args[0].expr
		ty := arg.Type
		if _, numeric := b.in.AsUnitProduct(ty); !numeric {
			ty = b.in.Builtins().Float32
			arg = b.convert(arg, ty, args[0].span)
		}
		// abs keeps the unit of its argument
		fn := exprtree.NewBuiltinFunction(exprtree.FuncAbs, b.in.Function([]types.TypeID{ty}, ty), sp)
		return exprtree.NewCall(fn, []*exprtree.Expr{arg}, ty, sp)
	case exprtree.MacroRgb:
		return b.lowerRgb(args, sp)
	case exprtree.MacroDebug:
		return b.lowerDebug(args, sp)
	}
	debugAssertHasError(b.ctx.Sink)
	return exprtree.NewInvalid(sp)
}

func (b *builder) callBuiltin(f exprtree.BuiltinFunction, ret types.TypeID, sp source.Span, args ...*exprtree.Expr) *exprtree.Expr {
	fn := exprtree.NewBuiltinFunction(f, lookup.FunctionType(b.in, f), sp)
	return exprtree.NewCall(fn, args, ret, sp)
}

// lowerMinMax folds the arguments into nested conditions:
// min(a, b, c) is (a < b ? a : b) < c ? ... : c.
func (b *builder) lowerMinMax(args []callArg, op exprtree.Op, sp source.Span) *exprtree.Expr {
	if len(args) == 0 {
		return b.invalidf(diag.SemaArityMismatch, sp, "Needs at least one argument")
	}
	tys := make([]types.TypeID, len(args))
	for i, a := range args {
		tys[i] = a.expr.Type
	}
	ty := b.in.CommonTargetType(tys)
	if _, numeric := b.in.AsUnitProduct(ty); !numeric {
		if ty == types.Invalid {
			debugAssertHasError(b.ctx.Sink)
			return exprtree.NewInvalid(sp)
		}
		return b.invalidf(diag.SemaTypeMismatch, sp, "Invalid argument type")
	}
	acc := b.convert(args[0].expr, ty, args[0].span)
	for _, a := range args[1:] {
		v := b.convert(a.expr, ty, a.span)
		cond := exprtree.NewBinary(op, acc.Clone(), v.Clone(), b.in.Builtins().Bool)
		acc = &exprtree.Expr{
			Kind: exprtree.Condition,
			Type: ty,
			Span: sp,
			Data: exprtree.ConditionData{Cond: cond, True: acc, False: v},
		}
	}
	return acc
}

// lowerRgb handles rgb(r, g, b) and rgba(r, g, b, a). Channels are
// integers 0..255 or percentages; alpha is a float 0..1 or a percentage.
func (b *builder) lowerRgb(args []callArg, sp source.Span) *exprtree.Expr {
	if len(args) != 3 && len(args) != 4 {
		return b.invalidf(diag.SemaArityMismatch, sp, "This function needs 3 or 4 arguments, but %d were provided", len(args))
	}
	bt := b.in.Builtins()
	out := make([]*exprtree.Expr, 0, 4)
	for _, a := range args[:3] {
		e := a.expr
		if b.in.Kind(e.Type) == types.KindPercent {
			e = exprtree.NewBinary(exprtree.OpMul, b.convert(e, bt.Float32, a.span), exprtree.NewNumber(b.in, 255, types.UnitNone, a.span), bt.Float32)
		}
		out = append(out, b.convert(e, bt.Int32, a.span))
	}
	if len(args) == 4 {
		out = append(out, b.convert(args[3].expr, bt.Float32, args[3].span))
	} else {
		out = append(out, exprtree.NewNumber(b.in, 1, types.UnitNone, sp))
	}
	return b.callBuiltin(exprtree.FuncRgb, bt.Color, sp, out...)
}

// lowerDebug prints its arguments joined by ", ".
func (b *builder) lowerDebug(args []callArg, sp source.Span) *exprtree.Expr {
	str := b.in.Builtins().String
	var msg *exprtree.Expr
	for _, a := range args {
		s := b.convert(a.expr, str, a.span)
		if msg == nil {
			msg = s
			continue
		}
		msg = exprtree.NewBinary(exprtree.OpAdd, msg, exprtree.NewString(b.in, ", ", sp), str)
		msg = exprtree.NewBinary(exprtree.OpAdd, msg, s, str)
	}
	if msg == nil {
		msg = exprtree.NewString(b.in, "", sp)
	}
	return b.callBuiltin(exprtree.FuncDebug, b.in.Builtins().Void, sp, msg)
}
