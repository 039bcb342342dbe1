package exprtree

import (
	"github.com/Be-ing/sixtyfps/internal/source"
	"github.com/Be-ing/sixtyfps/internal/types"
)

// NewInvalid returns a fresh poison node.
func NewInvalid(sp source.Span) *Expr {
	return &Expr{Kind: Invalid, Type: types.Invalid, Span: sp}
}

// IsInvalid reports whether e is missing or the poison node.
func (e *Expr) IsInvalid() bool {
	return e == nil || e.Kind == Invalid
}

func NewNumber(in *types.Interner, value float64, unit types.Unit, sp source.Span) *Expr {
	return &Expr{Kind: NumberLiteral, Type: in.UnitType(unit), Span: sp, Data: NumberLiteralData{Value: value, Unit: unit}}
}

func NewString(in *types.Interner, value string, sp source.Span) *Expr {
	return &Expr{Kind: StringLiteral, Type: in.Builtins().String, Span: sp, Data: StringLiteralData{Value: value}}
}

func NewBool(in *types.Interner, value bool, sp source.Span) *Expr {
	return &Expr{Kind: BoolLiteral, Type: in.Builtins().Bool, Span: sp, Data: BoolLiteralData{Value: value}}
}

func NewCast(from *Expr, to types.TypeID) *Expr {
	return &Expr{Kind: Cast, Type: to, Span: from.Span, Data: CastData{From: from}}
}

// NewColor builds the cast of an 0xAARRGGBB integer literal to color.
func NewColor(in *types.Interner, argb uint32, sp source.Span) *Expr {
	return NewCast(NewNumber(in, float64(argb), types.UnitNone, sp), in.Builtins().Color)
}

func NewBinary(op Op, lhs, rhs *Expr, ty types.TypeID) *Expr {
	return &Expr{Kind: BinaryOp, Type: ty, Span: lhs.Span.Cover(rhs.Span), Data: BinaryOpData{Op: op, LHS: lhs, RHS: rhs}}
}

func NewReference(kind Kind, ref NamedReference, ty types.TypeID, sp source.Span) *Expr {
	return &Expr{Kind: kind, Type: ty, Span: sp, Data: ReferenceData{Ref: ref}}
}

func NewElementReference(in *types.Interner, elem ElementID, sp source.Span) *Expr {
	return &Expr{Kind: ElementReference, Type: in.Builtins().ElementReference, Span: sp, Data: ElementReferenceData{Element: elem}}
}

func NewFieldAccess(base *Expr, name string, ty types.TypeID) *Expr {
	return &Expr{Kind: StructFieldAccess, Type: ty, Span: base.Span, Data: StructFieldAccessData{Base: base, Name: name}}
}

func NewBuiltinFunction(f BuiltinFunction, ty types.TypeID, sp source.Span) *Expr {
	return &Expr{Kind: BuiltinFunctionReference, Type: ty, Span: sp, Data: BuiltinFunctionData{Func: f}}
}

func NewCall(fn *Expr, args []*Expr, ret types.TypeID, sp source.Span) *Expr {
	return &Expr{Kind: FunctionCall, Type: ret, Span: sp, Data: FunctionCallData{Function: fn, Args: args}}
}

// NewStruct builds a struct literal of type ty with fields sorted by name.
func NewStruct(ty types.TypeID, fields []StructField, sp source.Span) *Expr {
	sortFields(fields)
	return &Expr{Kind: Struct, Type: ty, Span: sp, Data: StructData{Fields: fields}}
}

// Reference returns the named reference of property/callback/function references.
func (e *Expr) Reference() (NamedReference, bool) {
	if e == nil {
		return NamedReference{}, false
	}
	if d, ok := e.Data.(ReferenceData); ok {
		return d.Ref, true
	}
	return NamedReference{}, false
}

// DefaultValue builds the zero value of ty, used to fill missing struct
// fields on widening conversions.
func DefaultValue(in *types.Interner, ty types.TypeID, sp source.Span) *Expr {
	b := in.Builtins()
	switch in.Kind(ty) {
	case types.KindBool:
		return NewBool(in, false, sp)
	case types.KindString:
		return NewString(in, "", sp)
	case types.KindFloat32:
		return NewNumber(in, 0, types.UnitNone, sp)
	case types.KindInt32, types.KindColor, types.KindBrush:
		return NewCast(NewNumber(in, 0, types.UnitNone, sp), ty)
	case types.KindDuration, types.KindPhysicalLength, types.KindLogicalLength, types.KindAngle, types.KindPercent:
		u, _ := in.DefaultUnit(ty)
		return NewNumber(in, 0, u, sp)
	case types.KindArray:
		elem, _ := in.ArrayElem(ty)
		return &Expr{Kind: Array, Type: ty, Span: sp, Data: ArrayData{ElemType: elem}}
	case types.KindStruct:
		info, _ := in.StructInfo(ty)
		fields := make([]StructField, 0, len(info.Fields))
		for _, f := range info.Fields {
			fields = append(fields, StructField{Name: f.Name, Value: DefaultValue(in, f.Type, sp)})
		}
		return NewStruct(ty, fields, sp)
	case types.KindEnumeration:
		info, _ := in.EnumInfo(ty)
		return &Expr{Kind: EnumerationValue, Type: ty, Span: sp, Data: EnumerationValueData{Index: 0, Value: info.DefaultValue()}}
	case types.KindImage:
		return &Expr{Kind: ImageReference, Type: b.Image, Span: sp, Data: ImageReferenceData{Kind: ImageNone}}
	}
	return NewInvalid(sp)
}
