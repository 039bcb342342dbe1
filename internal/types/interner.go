package types

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// Interner provides stable TypeIDs. Primitives and arrays are keyed by
// descriptor, structs / signatures / unit products by shape, and
// enumerations are nominal: every RegisterEnum call yields a new type.
type Interner struct {
	types    []Type
	index    map[Type]TypeID
	shapes   map[string]TypeID
	builtins Builtins
	structs  []StructInfo
	fns      []FnInfo
	enums    []EnumInfo
	units    []UnitProduct
}

// NewInterner constructs an interner seeded with built-in primitives.
func NewInterner() *Interner {
	in := &Interner{
		index:  make(map[Type]TypeID, 64),
		shapes: make(map[string]TypeID, 32),
	}
	// слоты 0 зарезервированы как невалидные
	in.structs = append(in.structs, StructInfo{})
	in.fns = append(in.fns, FnInfo{})
	in.enums = append(in.enums, EnumInfo{})
	in.units = append(in.units, nil)

	in.builtins.Invalid = in.internRaw(Type{Kind: KindInvalid})
	in.builtins.Void = in.Intern(Type{Kind: KindVoid})
	in.builtins.InferredProperty = in.Intern(Type{Kind: KindInferredProperty})
	in.builtins.InferredCallback = in.Intern(Type{Kind: KindInferredCallback})
	in.builtins.Bool = in.Intern(Type{Kind: KindBool})
	in.builtins.Int32 = in.Intern(Type{Kind: KindInt32})
	in.builtins.Float32 = in.Intern(Type{Kind: KindFloat32})
	in.builtins.String = in.Intern(Type{Kind: KindString})
	in.builtins.Color = in.Intern(Type{Kind: KindColor})
	in.builtins.Brush = in.Intern(Type{Kind: KindBrush})
	in.builtins.Image = in.Intern(Type{Kind: KindImage})
	in.builtins.Duration = in.Intern(Type{Kind: KindDuration})
	in.builtins.PhysicalLength = in.Intern(Type{Kind: KindPhysicalLength})
	in.builtins.LogicalLength = in.Intern(Type{Kind: KindLogicalLength})
	in.builtins.Angle = in.Intern(Type{Kind: KindAngle})
	in.builtins.Percent = in.Intern(Type{Kind: KindPercent})
	in.builtins.ElementReference = in.Intern(Type{Kind: KindElementReference})
	in.builtins.Model = in.Intern(Type{Kind: KindModel})
	return in
}

// Builtins returns TypeIDs for primitive types.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

// Intern ensures the provided descriptor has a stable TypeID.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return Invalid
	}
	if id, ok := in.index[t]; ok {
		return id
	}
	return in.internRaw(t)
}

func (in *Interner) internRaw(t Type) TypeID {
	lenTypes, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	id := TypeID(lenTypes)
	in.types = append(in.types, t)
	in.index[t] = id
	return id
}

func (in *Interner) internShape(key string, t Type) TypeID {
	if id, ok := in.shapes[key]; ok {
		return id
	}
	id := in.internRaw(t)
	in.shapes[key] = id
	return id
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// Kind returns the kind of id, KindInvalid for unknown ids.
func (in *Interner) Kind(id TypeID) Kind {
	t, _ := in.Lookup(id)
	return t.Kind
}

// MustLookup panics when id is out of range.
func (in *Interner) MustLookup(id TypeID) Type {
	tt, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return tt
}

// Array returns the array type of elem.
func (in *Interner) Array(elem TypeID) TypeID {
	return in.Intern(Type{Kind: KindArray, Elem: elem})
}

// ArrayElem returns the element type of an array type.
func (in *Interner) ArrayElem(id TypeID) (TypeID, bool) {
	t, ok := in.Lookup(id)
	if !ok || t.Kind != KindArray {
		return Invalid, false
	}
	return t.Elem, true
}

func slotOf(n int, what string) uint32 {
	slot, err := safecast.Conv[uint32](n - 1)
	if err != nil {
		panic(fmt.Errorf("%s overflow: %w", what, err))
	}
	return slot
}

func idsKey(ids []TypeID) string {
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	return b.String()
}
