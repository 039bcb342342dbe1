package types

import "testing"

func TestCommonTargetTypeBasics(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	if got := in.CommonTargetType(nil); got != Invalid {
		t.Fatalf("empty list must unify to Invalid, got %s", in.String(got))
	}
	for _, ty := range []TypeID{b.Bool, b.Float32, b.LogicalLength, in.Array(b.String)} {
		if got := in.CommonTargetType([]TypeID{ty}); got != ty {
			t.Errorf("singleton %s unified to %s", in.String(ty), in.String(got))
		}
	}
	if got := in.CommonTargetType([]TypeID{Invalid, b.Color}); got != b.Color {
		t.Fatalf("invalid must not hold an opinion, got %s", in.String(got))
	}
}

func TestCommonTargetTypeUnitWinsBothOrders(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	orders := [][]TypeID{
		{b.Float32, b.LogicalLength},
		{b.LogicalLength, b.Float32},
	}
	for _, list := range orders {
		if got := in.CommonTargetType(list); got != b.LogicalLength {
			t.Errorf("%s, %s unified to %s", in.String(list[0]), in.String(list[1]), in.String(got))
		}
	}
}

func TestCommonTargetTypeWeakYields(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	if got := in.CommonTargetType([]TypeID{b.Int32, b.Float32}); got != b.Int32 {
		t.Fatalf("first convertible type must anchor, got %s", in.String(got))
	}
	if got := in.CommonTargetType([]TypeID{b.Color, b.Brush}); got != b.Color {
		t.Fatalf("color/brush anchored on first, got %s", in.String(got))
	}
	if got := in.CommonTargetType([]TypeID{b.Bool, b.Image}); got != b.Bool {
		t.Fatalf("unrelated types keep the accumulator, got %s", in.String(got))
	}
}

func TestCommonTargetTypeStructMerge(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	a := in.Struct("", []Field{{"a", b.Int32}})
	bs := in.Struct("", []Field{{"b", b.String}})
	want := in.Struct("", []Field{{"a", b.Int32}, {"b", b.String}})
	if got := in.CommonTargetType([]TypeID{a, bs}); got != want {
		t.Fatalf("merge = %s, want %s", in.String(got), in.String(want))
	}

	// Colliding fields recurse. Int32 converts to string, bool does not.
	withBool := in.Struct("", []Field{{"a", b.Bool}})
	got := in.CommonTargetType([]TypeID{a, withBool})
	if got != a {
		t.Fatalf("collision without conversion keeps the accumulator field, got %s", in.String(got))
	}
	if in.CanConvert(withBool, got) {
		t.Fatalf("the bool side must still fail conversion later")
	}
	withString := in.Struct("", []Field{{"a", b.String}})
	if got := in.CommonTargetType([]TypeID{a, withString}); got != withString {
		t.Fatalf("int field yields to string, got %s", in.String(got))
	}
}

func TestCommonTargetTypeStructNamePreference(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	anon := in.Struct("", []Field{{"x", b.LogicalLength}})
	named := in.Struct("Point", []Field{{"y", b.LogicalLength}})
	info, _ := in.StructInfo(in.CommonTargetType([]TypeID{anon, named}))
	if info.Name != "Point" {
		t.Fatalf("name must be picked from the element when the accumulator has none, got %q", info.Name)
	}
	other := in.Struct("Other", []Field{{"x", b.LogicalLength}})
	info, _ = in.StructInfo(in.CommonTargetType([]TypeID{other, named}))
	if info.Name != "Other" {
		t.Fatalf("accumulator name preferred, got %q", info.Name)
	}
}
