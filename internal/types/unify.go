package types

// CommonTargetType finds a type every element of list can be converted to.
//
// It is a left fold starting from Invalid. The first strong type wins:
// a later type is only adopted when the accumulator converts into it, or
// when a unit-carrying type meets a plain number (the `0` literal case).
// Otherwise the accumulator is kept and the subsequent conversion reports
// the mismatch. Structs merge field-wise, recursing on collisions.
func (in *Interner) CommonTargetType(list []TypeID) TypeID {
	target := Invalid
	for _, ty := range list {
		target = in.unifyPair(target, ty)
	}
	return target
}

func (in *Interner) unifyPair(target, ty TypeID) TypeID {
	if target == ty {
		return target
	}
	if target == Invalid {
		return ty
	}
	if in.Kind(target) == KindStruct && in.Kind(ty) == KindStruct {
		return in.mergeStructs(target, ty)
	}
	if in.CanConvert(ty, target) {
		return target
	}
	if in.CanConvert(target, ty) {
		return ty
	}
	if _, hasUnit := in.DefaultUnit(ty); hasUnit {
		if k := in.Kind(target); k == KindFloat32 || k == KindInt32 {
			return ty
		}
	}
	return target
}

func (in *Interner) mergeStructs(acc, other TypeID) TypeID {
	a, _ := in.StructInfo(acc)
	b, _ := in.StructInfo(other)
	fields := make([]Field, len(a.Fields))
	copy(fields, a.Fields)
	for _, f := range b.Fields {
		merged := false
		for i := range fields {
			if fields[i].Name == f.Name {
				fields[i].Type = in.CommonTargetType([]TypeID{fields[i].Type, f.Type})
				merged = true
				break
			}
		}
		if !merged {
			fields = append(fields, f)
		}
	}
	name := a.Name
	if name == "" {
		name = b.Name
	}
	return in.Struct(name, fields)
}
