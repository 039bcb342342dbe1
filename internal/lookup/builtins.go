package lookup

import (
	"github.com/Be-ing/sixtyfps/internal/exprtree"
	"github.com/Be-ing/sixtyfps/internal/source"
	"github.com/Be-ing/sixtyfps/internal/types"
)

var builtinMacros = map[string]exprtree.BuiltinMacro{
	"min":   exprtree.MacroMin,
	"max":   exprtree.MacroMax,
	"mod":   exprtree.MacroMod,
	"abs":   exprtree.MacroAbs,
	"rgb":   exprtree.MacroRgb,
	"rgba":  exprtree.MacroRgb,
	"debug": exprtree.MacroDebug,
}

var builtinFunctions = map[string]exprtree.BuiltinFunction{
	"round": exprtree.FuncRound,
	"ceil":  exprtree.FuncCeil,
	"floor": exprtree.FuncFloor,
	"sqrt":  exprtree.FuncSqrt,
	"sin":   exprtree.FuncSin,
	"cos":   exprtree.FuncCos,
	"tan":   exprtree.FuncTan,
	"asin":  exprtree.FuncASin,
	"acos":  exprtree.FuncACos,
	"atan":  exprtree.FuncATan,
}

// FunctionType returns the signature of a builtin function.
func FunctionType(in *types.Interner, f exprtree.BuiltinFunction) types.TypeID {
	b := in.Builtins()
	args := func(ts ...types.TypeID) []types.TypeID { return ts }
	switch f {
	case exprtree.FuncRound, exprtree.FuncCeil, exprtree.FuncFloor:
		return in.Function(args(b.Float32), b.Int32)
	case exprtree.FuncSqrt, exprtree.FuncAbs:
		return in.Function(args(b.Float32), b.Float32)
	case exprtree.FuncMod:
		return in.Function(args(b.Int32, b.Int32), b.Int32)
	case exprtree.FuncSin, exprtree.FuncCos, exprtree.FuncTan:
		return in.Function(args(b.Angle), b.Float32)
	case exprtree.FuncASin, exprtree.FuncACos, exprtree.FuncATan:
		return in.Function(args(b.Float32), b.Angle)
	case exprtree.FuncColorBrighter, exprtree.FuncColorDarker:
		return in.Function(args(b.Color, b.Float32), b.Color)
	case exprtree.FuncStringIsFloat:
		return in.Function(args(b.String), b.Bool)
	case exprtree.FuncStringToFloat:
		return in.Function(args(b.String), b.Float32)
	case exprtree.FuncRgb:
		return in.Function(args(b.Int32, b.Int32, b.Int32, b.Float32), b.Color)
	case exprtree.FuncDebug:
		return in.Function(args(b.String), b.Void)
	case exprtree.FuncArrayLength:
		// the array argument is generic; only the result is typed
		return in.Function(nil, b.Int32)
	case exprtree.FuncSetFocusItem:
		return in.Function(args(b.ElementReference), b.Void)
	}
	return types.Invalid
}

func builtinFunctionRef(in *types.Interner, f exprtree.BuiltinFunction, sp source.Span) *exprtree.Expr {
	return exprtree.NewBuiltinFunction(f, FunctionType(in, f), sp)
}

// Macros get a nullary function type so an uncalled macro is reported
// like any uncalled function; calls never check it.
func builtinMacroRef(in *types.Interner, m exprtree.BuiltinMacro, sp source.Span) *exprtree.Expr {
	return &exprtree.Expr{
		Kind: exprtree.BuiltinMacroReference,
		Type: in.Function(nil, in.Builtins().Void),
		Span: sp,
		Data: exprtree.BuiltinMacroData{Macro: m},
	}
}
