package types

import "slices"

// EnumInfo stores metadata for an enumeration type.
type EnumInfo struct {
	Name   string
	Values []string
}

// Index returns the position of value, or -1.
func (e *EnumInfo) Index(value string) int {
	return slices.Index(e.Values, value)
}

// DefaultValue is the first declared value.
func (e *EnumInfo) DefaultValue() string {
	if len(e.Values) == 0 {
		return ""
	}
	return e.Values[0]
}

// RegisterEnum allocates a nominal enumeration type.
func (in *Interner) RegisterEnum(name string, values []string) TypeID {
	in.enums = append(in.enums, EnumInfo{Name: name, Values: slices.Clone(values)})
	slot := slotOf(len(in.enums), "enum info")
	return in.internRaw(Type{Kind: KindEnumeration, Payload: slot})
}

// EnumInfo returns metadata for an enumeration TypeID.
func (in *Interner) EnumInfo(id TypeID) (*EnumInfo, bool) {
	t, ok := in.Lookup(id)
	if !ok || t.Kind != KindEnumeration || int(t.Payload) >= len(in.enums) {
		return nil, false
	}
	return &in.enums[t.Payload], true
}
