package types

import "slices"

// CanConvert reports whether a value of type from converts implicitly to to.
func (in *Interner) CanConvert(from, to TypeID) bool {
	if from == to {
		return true
	}
	fk, tk := in.Kind(from), in.Kind(to)
	switch tk {
	case KindInvalid, KindVoid:
		return true
	case KindModel:
		return fk == KindInt32 || fk == KindFloat32 || fk == KindArray
	}
	switch {
	case fk == KindFloat32 && (tk == KindInt32 || tk == KindString):
		return true
	case fk == KindInt32 && (tk == KindFloat32 || tk == KindString):
		return true
	case fk == KindPercent && tk == KindFloat32:
		return true
	case fk == KindColor && tk == KindBrush, fk == KindBrush && tk == KindColor:
		return true
	case fk == KindPhysicalLength && tk == KindLogicalLength, fk == KindLogicalLength && tk == KindPhysicalLength:
		return true
	case fk == KindStruct && tk == KindStruct:
		return in.canConvertStruct(from, to)
	case fk == KindUnitProduct || tk == KindUnitProduct:
		a, aok := in.AsUnitProduct(from)
		b, bok := in.AsUnitProduct(to)
		return aok && bok && slices.Equal(a, b)
	}
	return false
}

// Every source field must exist in the target and convert to it.
// Missing target fields are filled with defaults by the converter.
func (in *Interner) canConvertStruct(from, to TypeID) bool {
	src, ok := in.StructInfo(from)
	if !ok {
		return false
	}
	dst, ok := in.StructInfo(to)
	if !ok {
		return false
	}
	for _, f := range src.Fields {
		ft, ok := dst.Field(f.Name)
		if !ok || !in.CanConvert(f.Type, ft) {
			return false
		}
	}
	return true
}

// IsPropertyType reports whether id can be the type of a property
// (as opposed to callbacks, functions and placeholders).
func (in *Interner) IsPropertyType(id TypeID) bool {
	switch in.Kind(id) {
	case KindInvalid, KindVoid, KindInferredCallback, KindCallback, KindFunction, KindElementReference, KindModel:
		return false
	}
	return true
}
