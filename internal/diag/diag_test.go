package diag

import (
	"testing"

	"github.com/Be-ing/sixtyfps/internal/source"
)

func TestBagLimitAndSort(t *testing.T) {
	bag := NewBag(3)
	r := BagReporter{Bag: bag}
	ReportWarning(r, SemaDeprecatedProperty, source.Span{File: 0, Start: 10, End: 12}, "deprecated").Emit()
	ReportError(r, SemaTypeMismatch, source.Span{File: 0, Start: 2, End: 4}, "mismatch").Emit()
	ReportError(r, SemaInvalidMember, source.Span{File: 0, Start: 10, End: 12}, "member").Emit()
	ReportError(r, SemaInvalidMember, source.Span{File: 0, Start: 20, End: 22}, "dropped").Emit()

	if bag.Len() != 3 {
		t.Fatalf("expected 3 diagnostics, got %d", bag.Len())
	}
	if !r.HasErrors() {
		t.Fatalf("expected HasErrors")
	}
	bag.Sort()
	items := bag.Items()
	if items[0].Code != SemaTypeMismatch {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].Severity != SevError || items[2].Severity != SevWarning {
		t.Fatalf("errors must sort before warnings at equal spans: %+v", items[1:])
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(0)
	r := NewDedupReporter(BagReporter{Bag: bag})
	sp := source.Span{Start: 1, End: 2}
	for range 3 {
		ReportError(r, SemaUnresolvedIdentifier, sp, "Unknown unqualified identifier 'x'").Emit()
	}
	ReportError(r, SemaUnresolvedIdentifier, sp, "Unknown unqualified identifier 'y'").Emit()
	if bag.Len() != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", bag.Len())
	}
	if !r.HasErrors() {
		t.Fatalf("expected HasErrors through dedup")
	}
}

func TestEmitOnce(t *testing.T) {
	bag := NewBag(0)
	b := ReportError(BagReporter{Bag: bag}, SemaError, source.Span{}, "x").WithNote(source.Span{}, "n")
	b.Emit()
	b.Emit()
	if bag.Len() != 1 {
		t.Fatalf("builder emitted %d times", bag.Len())
	}
	if len(bag.Items()[0].Notes) != 1 {
		t.Fatalf("note lost")
	}
}

func TestCodeID(t *testing.T) {
	cases := map[Code]string{
		SemaTypeMismatch:    "SEM3004",
		SynMalformedPayload: "SYN2001",
		IOLoadFileError:     "IO4001",
		ProjInvalidManifest: "PRJ5001",
		UnknownCode:         "E0000",
	}
	for code, want := range cases {
		if got := code.ID(); got != want {
			t.Errorf("%d: got %s, want %s", code, got, want)
		}
	}
}

func TestPromoteWarnings(t *testing.T) {
	bag := NewBag(0)
	r := BagReporter{Bag: bag}
	ReportWarning(r, SemaDeprecatedProperty, source.Span{}, "deprecated").Emit()
	ReportInfo(r, SemaInfo, source.Span{}, "note").Emit()
	if bag.HasErrors() {
		t.Fatalf("warnings are not errors")
	}
	if n := bag.PromoteWarnings(); n != 1 {
		t.Fatalf("promoted %d, want 1", n)
	}
	if !bag.HasErrors() || bag.Count(SevInfo) != 1 {
		t.Fatalf("expected one error and the info untouched")
	}
}
