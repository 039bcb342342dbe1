package exprtree

import (
	"strings"
	"testing"

	"github.com/Be-ing/sixtyfps/internal/diag"
	"github.com/Be-ing/sixtyfps/internal/source"
	"github.com/Be-ing/sixtyfps/internal/types"
)

func newConverter() (*Converter, *diag.Bag) {
	bag := diag.NewBag(0)
	return &Converter{Types: types.NewInterner(), Reporter: diag.BagReporter{Bag: bag}}, bag
}

func TestMaybeConvertSameTypeIsIdentity(t *testing.T) {
	c, bag := newConverter()
	e := NewString(c.Types, "x", source.Span{})
	if got := c.MaybeConvert(e, c.Types.Builtins().String, source.Span{}); got != e {
		t.Fatalf("expected identity")
	}
	if got := c.MaybeConvert(e, c.Types.Builtins().Void, source.Span{}); got != e {
		t.Fatalf("void target must not convert")
	}
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics")
	}
}

func TestMaybeConvertWrapsInCast(t *testing.T) {
	c, _ := newConverter()
	b := c.Types.Builtins()
	e := NewNumber(c.Types, 3, types.UnitNone, source.Span{})
	got := c.MaybeConvert(e, b.Int32, source.Span{})
	if got.Kind != Cast || got.Type != b.Int32 || got.Data.(CastData).From != e {
		t.Fatalf("expected cast wrapper, got %+v", got)
	}
}

func TestMaybeConvertZeroLiteralToUnit(t *testing.T) {
	c, bag := newConverter()
	b := c.Types.Builtins()
	got := c.MaybeConvert(NewNumber(c.Types, 0, types.UnitNone, source.Span{}), b.LogicalLength, source.Span{})
	if got.Kind != NumberLiteral || got.Type != b.LogicalLength || got.Data.(NumberLiteralData).Unit != types.UnitPx {
		t.Fatalf("0 should become 0px, got %+v", got)
	}
	c.MaybeConvert(NewNumber(c.Types, 5, types.UnitNone, source.Span{}), b.LogicalLength, source.Span{})
	if bag.Len() != 1 {
		t.Fatalf("expected one diagnostic, got %d", bag.Len())
	}
	if msg := bag.Items()[0].Message; !strings.Contains(msg, "multiply by 1px") {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestMaybeConvertInvalidIsSilent(t *testing.T) {
	c, bag := newConverter()
	c.MaybeConvert(NewInvalid(source.Span{}), c.Types.Builtins().Color, source.Span{})
	if bag.Len() != 0 {
		t.Fatalf("invalid source must not report")
	}
}

func TestMaybeConvertMismatchKeepsOriginal(t *testing.T) {
	c, bag := newConverter()
	e := NewBool(c.Types, true, source.Span{})
	if got := c.MaybeConvert(e, c.Types.Builtins().Image, source.Span{}); got != e {
		t.Fatalf("original must be returned")
	}
	if bag.Len() != 1 || bag.Items()[0].Message != "Cannot convert bool to image" {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
}

func TestMaybeConvertPercentToFloat(t *testing.T) {
	c, _ := newConverter()
	b := c.Types.Builtins()
	got := c.MaybeConvert(NewNumber(c.Types, 50, types.UnitPercent, source.Span{}), b.Float32, source.Span{})
	p := &Printer{Types: c.Types}
	if s := p.Format(got); s != "(* 50% 0.01)" {
		t.Fatalf("got %s", s)
	}
}

func TestMaybeConvertStructWidening(t *testing.T) {
	c, bag := newConverter()
	in := c.Types
	b := in.Builtins()
	srcTy := in.Struct("", []types.Field{{Name: "a", Type: b.Float32}})
	dstTy := in.Struct("", []types.Field{{Name: "a", Type: b.Int32}, {Name: "b", Type: b.String}})
	lit := NewStruct(srcTy, []StructField{{Name: "a", Value: NewNumber(in, 1, types.UnitNone, source.Span{})}}, source.Span{})
	got := c.MaybeConvert(lit, dstTy, source.Span{})
	p := &Printer{Types: in}
	if s := p.Format(got); s != `(struct a=(cast 1 int) b="")` {
		t.Fatalf("got %s", s)
	}
	if got.Type != dstTy || bag.Len() != 0 {
		t.Fatalf("unexpected result type or diagnostics")
	}
}

func TestMaybeConvertArrayLiteral(t *testing.T) {
	c, bag := newConverter()
	in := c.Types
	b := in.Builtins()
	arr := &Expr{Kind: Array, Type: in.Array(b.Float32), Data: ArrayData{
		ElemType: b.Float32,
		Values:   []*Expr{NewNumber(in, 0, types.UnitNone, source.Span{})},
	}}
	got := c.MaybeConvert(arr, in.Array(b.LogicalLength), source.Span{})
	if got.Type != in.Array(b.LogicalLength) || bag.Len() != 0 {
		t.Fatalf("array literal not converted: %s", in.String(got.Type))
	}
	if (&Printer{Types: in}).Format(got) != "(array 0px)" {
		t.Fatalf("elements not converted: %s", (&Printer{Types: in}).Format(got))
	}
}

func TestContainsInvalid(t *testing.T) {
	in := types.NewInterner()
	ok := NewBinary(OpAdd, NewNumber(in, 1, types.UnitNone, source.Span{}), NewNumber(in, 2, types.UnitNone, source.Span{}), in.Builtins().Float32)
	if ContainsInvalid(ok) {
		t.Fatalf("no invalid expected")
	}
	bad := NewBinary(OpAdd, ok, NewInvalid(source.Span{}), in.Builtins().Float32)
	if !ContainsInvalid(bad) {
		t.Fatalf("invalid not found")
	}
}
