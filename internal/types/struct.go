package types

import (
	"slices"
	"strconv"
	"strings"
)

type Field struct {
	Name string
	Type TypeID
}

// StructInfo stores struct metadata. Fields are kept sorted by name so
// field order never affects identity.
type StructInfo struct {
	Name   string
	Fields []Field
}

// Field returns the type of the named field.
func (s *StructInfo) Field(name string) (TypeID, bool) {
	i, ok := slices.BinarySearchFunc(s.Fields, name, func(f Field, n string) int {
		return strings.Compare(f.Name, n)
	})
	if !ok {
		return Invalid, false
	}
	return s.Fields[i].Type, true
}

// Struct interns a struct type by name and shape. An empty name makes
// an anonymous struct. Duplicate field names keep the last entry.
func (in *Interner) Struct(name string, fields []Field) TypeID {
	sorted := make([]Field, 0, len(fields))
	for _, f := range fields {
		if i := slices.IndexFunc(sorted, func(o Field) bool { return o.Name == f.Name }); i >= 0 {
			sorted[i] = f
			continue
		}
		sorted = append(sorted, f)
	}
	slices.SortFunc(sorted, func(a, b Field) int { return strings.Compare(a.Name, b.Name) })

	var key strings.Builder
	key.WriteString("struct:")
	key.WriteString(name)
	key.WriteByte('{')
	for _, f := range sorted {
		key.WriteString(f.Name)
		key.WriteByte(':')
		key.WriteString(strconv.FormatUint(uint64(f.Type), 10))
		key.WriteByte(';')
	}
	key.WriteByte('}')
	if id, ok := in.shapes[key.String()]; ok {
		return id
	}
	in.structs = append(in.structs, StructInfo{Name: name, Fields: sorted})
	slot := slotOf(len(in.structs), "struct info")
	return in.internShape(key.String(), Type{Kind: KindStruct, Payload: slot})
}

// StructInfo returns metadata for a struct TypeID.
func (in *Interner) StructInfo(id TypeID) (*StructInfo, bool) {
	t, ok := in.Lookup(id)
	if !ok || t.Kind != KindStruct || int(t.Payload) >= len(in.structs) {
		return nil, false
	}
	return &in.structs[t.Payload], true
}
