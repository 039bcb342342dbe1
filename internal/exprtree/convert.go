package exprtree

import (
	"fmt"

	"github.com/Be-ing/sixtyfps/internal/diag"
	"github.com/Be-ing/sixtyfps/internal/source"
	"github.com/Be-ing/sixtyfps/internal/types"
)

// Converter applies implicit conversions, reporting impossible ones.
type Converter struct {
	Types    *types.Interner
	Reporter diag.Reporter
}

// MaybeConvert returns e converted to target. The original node is
// wrapped, never mutated. When no conversion exists a diagnostic is
// reported at sp and e is returned unchanged.
func (c *Converter) MaybeConvert(e *Expr, target types.TypeID, sp source.Span) *Expr {
	in := c.Types
	if e == nil {
		return NewInvalid(sp)
	}
	from := e.Type
	if from == target || target == types.Invalid || in.Kind(target) == types.KindVoid {
		return e
	}
	if from == types.Invalid {
		return e
	}

	if e.Kind == NumberLiteral {
		lit := e.Data.(NumberLiteralData)
		if lit.Unit == types.UnitNone && lit.Value == 0 {
			if u, ok := in.DefaultUnit(target); ok {
				return NewNumber(in, 0, u, e.Span)
			}
		}
	}

	if e.Kind == Array && in.Kind(target) == types.KindArray && in.Kind(from) == types.KindArray {
		if elem, _ := in.ArrayElem(target); c.canConvertAll(e.Data.(ArrayData).Values, elem) {
			return c.convertArray(e, target, elem, sp)
		}
	}

	if in.CanConvert(from, target) {
		switch {
		case in.Kind(target) == types.KindModel:
			// the row type is derived from the model's own type
			return e
		case in.Kind(from) == types.KindPercent && in.Kind(target) == types.KindFloat32:
			return NewBinary(OpMul, e, NewNumber(in, 0.01, types.UnitNone, e.Span), target)
		case in.Kind(from) == types.KindStruct && in.Kind(target) == types.KindStruct:
			return c.widenStruct(e, target, sp)
		}
		return NewCast(e, target)
	}

	c.report(from, target, sp)
	return e
}

func (c *Converter) report(from, target types.TypeID, sp source.Span) {
	in := c.Types
	var msg string
	u, hasUnit := in.DefaultUnit(target)
	if k := in.Kind(from); hasUnit && (k == types.KindFloat32 || k == types.KindInt32) {
		msg = fmt.Sprintf("Cannot convert %s to %s. Use an unit, or multiply by 1%s to convert explicitly",
			in.String(from), in.String(target), u)
	} else {
		msg = fmt.Sprintf("Cannot convert %s to %s", in.String(from), in.String(target))
	}
	diag.ReportError(c.Reporter, diag.SemaTypeMismatch, sp, msg).Emit()
}

func (c *Converter) canConvertAll(values []*Expr, elem types.TypeID) bool {
	for _, v := range values {
		if v.Type == elem || v.Type == types.Invalid {
			continue
		}
		if v.Kind == Array && c.Types.Kind(elem) == types.KindArray {
			inner, _ := c.Types.ArrayElem(elem)
			if c.canConvertAll(v.Data.(ArrayData).Values, inner) {
				continue
			}
		}
		if !c.Types.CanConvert(v.Type, elem) && !isZeroLiteralFor(c.Types, v, elem) {
			return false
		}
	}
	return true
}

func isZeroLiteralFor(in *types.Interner, e *Expr, target types.TypeID) bool {
	if e.Kind != NumberLiteral {
		return false
	}
	lit := e.Data.(NumberLiteralData)
	_, hasUnit := in.DefaultUnit(target)
	return hasUnit && lit.Unit == types.UnitNone && lit.Value == 0
}

func (c *Converter) convertArray(e *Expr, target, elem types.TypeID, sp source.Span) *Expr {
	src := e.Data.(ArrayData)
	values := make([]*Expr, len(src.Values))
	for i, v := range src.Values {
		values[i] = c.MaybeConvert(v, elem, sp)
	}
	return &Expr{Kind: Array, Type: target, Span: e.Span, Data: ArrayData{ElemType: elem, Values: values}}
}

// widenStruct rebuilds e as a literal of target: known fields are
// converted, missing ones get default values.
func (c *Converter) widenStruct(e *Expr, target types.TypeID, sp source.Span) *Expr {
	in := c.Types
	dst, _ := in.StructInfo(target)
	src, _ := in.StructInfo(e.Type)
	literal, isLiteral := e.Data.(StructData)
	fields := make([]StructField, 0, len(dst.Fields))
	for _, f := range dst.Fields {
		var value *Expr
		switch {
		case isLiteral:
			if v, ok := literal.Field(f.Name); ok {
				value = c.MaybeConvert(v, f.Type, sp)
			}
		default:
			if ft, ok := src.Field(f.Name); ok {
				value = c.MaybeConvert(NewFieldAccess(e, f.Name, ft), f.Type, sp)
			}
		}
		if value == nil {
			value = DefaultValue(in, f.Type, e.Span)
		}
		fields = append(fields, StructField{Name: f.Name, Value: value})
	}
	return NewStruct(target, fields, e.Span)
}
