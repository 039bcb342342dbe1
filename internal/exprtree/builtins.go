package exprtree

// BuiltinFunction names a function implemented by the runtime.
type BuiltinFunction uint8

const (
	FuncInvalid BuiltinFunction = iota
	FuncRound
	FuncCeil
	FuncFloor
	FuncSqrt
	FuncAbs
	FuncMod
	FuncSin
	FuncCos
	FuncTan
	FuncASin
	FuncACos
	FuncATan
	FuncColorBrighter
	FuncColorDarker
	FuncStringIsFloat
	FuncStringToFloat
	FuncArrayLength
	FuncRgb
	FuncDebug
	FuncSetFocusItem
)

var builtinFunctionNames = [...]string{
	FuncInvalid:       "invalid",
	FuncRound:         "round",
	FuncCeil:          "ceil",
	FuncFloor:         "floor",
	FuncSqrt:          "sqrt",
	FuncAbs:           "abs",
	FuncMod:           "mod",
	FuncSin:           "sin",
	FuncCos:           "cos",
	FuncTan:           "tan",
	FuncASin:          "asin",
	FuncACos:          "acos",
	FuncATan:          "atan",
	FuncColorBrighter: "color-brighter",
	FuncColorDarker:   "color-darker",
	FuncStringIsFloat: "string-is-float",
	FuncStringToFloat: "string-to-float",
	FuncArrayLength:   "array-length",
	FuncRgb:           "rgb",
	FuncDebug:         "debug",
	FuncSetFocusItem:  "set-focus-item",
}

func (f BuiltinFunction) String() string {
	if int(f) < len(builtinFunctionNames) {
		return builtinFunctionNames[f]
	}
	return "?"
}

// BuiltinMacro names a call whose arguments are lowered specially.
type BuiltinMacro uint8

const (
	MacroInvalid BuiltinMacro = iota
	MacroMin
	MacroMax
	MacroMod
	MacroAbs
	MacroRgb
	MacroDebug
)

var builtinMacroNames = [...]string{
	MacroInvalid: "invalid",
	MacroMin:     "min",
	MacroMax:     "max",
	MacroMod:     "mod",
	MacroAbs:     "abs",
	MacroRgb:     "rgb",
	MacroDebug:   "debug",
}

func (m BuiltinMacro) String() string {
	if int(m) < len(builtinMacroNames) {
		return builtinMacroNames[m]
	}
	return "?"
}
