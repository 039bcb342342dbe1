package types

import "testing"

func TestInternerBuiltins(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	if b.Invalid != Invalid {
		t.Fatalf("invalid must be the zero TypeID")
	}
	if in.Kind(b.LogicalLength) != KindLogicalLength {
		t.Fatalf("expected length kind, got %v", in.Kind(b.LogicalLength))
	}
}

func TestInternerDeduplicatesShapes(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	if in.Array(b.String) != in.Array(b.String) {
		t.Fatalf("array types should be deduplicated")
	}
	s1 := in.Struct("", []Field{{"a", b.Int32}, {"b", b.String}})
	s2 := in.Struct("", []Field{{"b", b.String}, {"a", b.Int32}})
	if s1 != s2 {
		t.Fatalf("anonymous structs with the same fields must be equal")
	}
	if in.Struct("Point", []Field{{"a", b.Int32}, {"b", b.String}}) == s1 {
		t.Fatalf("named struct must differ from anonymous one")
	}
	if in.Callback([]TypeID{b.Int32}, b.Void) == in.Function([]TypeID{b.Int32}, b.Void) {
		t.Fatalf("callback and function signatures must differ")
	}
}

func TestEnumerationsAreNominal(t *testing.T) {
	in := NewInterner()
	e1 := in.RegisterEnum("TextWrap", []string{"no-wrap", "word-wrap"})
	e2 := in.RegisterEnum("TextWrap", []string{"no-wrap", "word-wrap"})
	if e1 == e2 {
		t.Fatalf("enumerations must be nominal")
	}
	info, ok := in.EnumInfo(e1)
	if !ok || info.Index("word-wrap") != 1 || info.DefaultValue() != "no-wrap" {
		t.Fatalf("unexpected enum info: %+v", info)
	}
}

func TestString(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	cases := []struct {
		id   TypeID
		want string
	}{
		{b.Float32, "float"},
		{b.LogicalLength, "length"},
		{in.Array(b.Int32), "[int]"},
		{in.Struct("", []Field{{"b", b.String}, {"a", b.Int32}}), "{ a: int, b: string, }"},
		{in.Callback([]TypeID{b.Int32}, b.Float32), "callback(int) -> float"},
		{in.Function(nil, b.Void), "function()"},
		{Invalid, "<error>"},
	}
	for _, tc := range cases {
		if got := in.String(tc.id); got != tc.want {
			t.Errorf("String = %q, want %q", got, tc.want)
		}
	}
}
