package types

import "testing"

func TestCanConvert(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	wide := in.Struct("", []Field{{"a", b.Float32}, {"b", b.String}})
	narrow := in.Struct("", []Field{{"a", b.Int32}})
	cases := []struct {
		name     string
		from, to TypeID
		want     bool
	}{
		{"same", b.Color, b.Color, true},
		{"to invalid", b.String, Invalid, true},
		{"to void", b.String, b.Void, true},
		{"int to float", b.Int32, b.Float32, true},
		{"float to string", b.Float32, b.String, true},
		{"string to float", b.String, b.Float32, false},
		{"percent to float", b.Percent, b.Float32, true},
		{"float to length", b.Float32, b.LogicalLength, false},
		{"color to brush", b.Color, b.Brush, true},
		{"phx to px", b.PhysicalLength, b.LogicalLength, true},
		{"struct widening", narrow, wide, true},
		{"struct narrowing", wide, narrow, false},
		{"bool to string", b.Bool, b.String, false},
		{"int model", b.Int32, b.Model, true},
		{"float model", b.Float32, b.Model, true},
		{"array model", in.Array(narrow), b.Model, true},
		{"string model", b.String, b.Model, false},
		{"bool model", b.Bool, b.Model, false},
	}
	for _, tc := range cases {
		if got := in.CanConvert(tc.from, tc.to); got != tc.want {
			t.Errorf("%s: CanConvert = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestUnitProducts(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	px, _ := in.AsUnitProduct(b.LogicalLength)
	area := in.FromUnitProduct(px.Mul(px))
	if in.Kind(area) != KindUnitProduct {
		t.Fatalf("px*px should be a unit product, got %s", in.String(area))
	}
	areaUnits, _ := in.AsUnitProduct(area)
	if got := in.FromUnitProduct(areaUnits.Div(px)); got != b.LogicalLength {
		t.Fatalf("px*px/px should be length, got %s", in.String(got))
	}
	if got := in.FromUnitProduct(px.Div(px)); got != b.Float32 {
		t.Fatalf("px/px should be float, got %s", in.String(got))
	}
	if in.FromUnitProduct(px.Mul(px)) != area {
		t.Fatalf("unit products must be interned")
	}
	if !in.CanConvert(area, area) || in.CanConvert(area, b.LogicalLength) {
		t.Fatalf("unexpected unit product conversion")
	}
}
