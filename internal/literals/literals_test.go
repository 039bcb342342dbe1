package literals

import (
	"testing"

	"github.com/Be-ing/sixtyfps/internal/types"
)

func TestUnescapeString(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{`"hello"`, "hello", true},
		{`""`, "", true},
		{`"a\nb"`, "a\nb", true},
		{`"q\"q"`, `q"q`, true},
		{`"\u{263A}"`, "☺", true},
		{`"total: \{`, "total: ", true},
		{`} items"`, " items", true},
		{`"bad \x"`, "", false},
		{`"unterminated`, "", false},
		{"\"line\nbreak\"", "", false},
	}
	for _, tc := range cases {
		got, ok := UnescapeString(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("UnescapeString(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		val  float64
		unit types.Unit
	}{
		{"42", 42, types.UnitNone},
		{"1.5px", 1.5, types.UnitPx},
		{"50%", 50, types.UnitPercent},
		{"250ms", 250, types.UnitMs},
		{"90deg", 90, types.UnitDeg},
		{"2phx", 2, types.UnitPhx},
	}
	for _, tc := range cases {
		val, unit, err := ParseNumber(tc.in)
		if err != nil {
			t.Fatalf("ParseNumber(%q): %v", tc.in, err)
		}
		if val != tc.val || unit != tc.unit {
			t.Errorf("ParseNumber(%q) = %v %v, want %v %v", tc.in, val, unit, tc.val, tc.unit)
		}
	}
	if _, _, err := ParseNumber("12furlongs"); err == nil {
		t.Fatalf("expected unit error")
	}
	if _, _, err := ParseNumber("px"); err == nil {
		t.Fatalf("expected digits error")
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want uint32
		ok   bool
	}{
		{"#ff0000", 0xffff0000, true},
		{"#f00", 0xffff0000, true},
		{"#00ff0080", 0x8000ff00, true},
		{"#0f08", 0x8800ff00, true},
		{"#12345", 0, false},
		{"#gg0000", 0, false},
		{"ff0000", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseColor(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseColor(%q) = %#x, %v; want %#x, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
