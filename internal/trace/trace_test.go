package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"off", LevelOff, false},
		{"PHASE", LevelPhase, false},
		{"detail", LevelDetail, false},
		{"debug", LevelDebug, false},
		{"loud", LevelOff, true},
	}
	for _, tc := range cases {
		got, err := ParseLevel(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseLevel(%q) err = %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestLevelFiltersScopes(t *testing.T) {
	ring := NewRingTracer(16, LevelPhase)
	pass := Begin(ring, ScopePass, "resolve", 0)
	comp := Begin(ring, ScopeComponent, "component:Main", pass.ID())
	if comp.ID() != 0 {
		t.Fatalf("component span should be inert at phase level")
	}
	comp.End("")
	pass.WithExtra("path", "main.60").End("")

	events := ring.Snapshot()
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Kind != KindSpanBegin || events[1].Kind != KindSpanEnd {
		t.Fatalf("unexpected kinds %v %v", events[0].Kind, events[1].Kind)
	}
	if events[1].Extra["path"] != "main.60" {
		t.Fatalf("extra lost: %v", events[1].Extra)
	}
}

func TestRingWraps(t *testing.T) {
	ring := NewRingTracer(3, LevelDebug)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		Point(ring, ScopeBinding, name, "", 0)
	}
	events := ring.Snapshot()
	var names []string
	for _, ev := range events {
		names = append(names, ev.Name)
	}
	if got := strings.Join(names, ","); got != "c,d,e" {
		t.Fatalf("snapshot = %s, want c,d,e", got)
	}
}

func TestStreamNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr, ring, err := New(Config{Level: LevelDetail, Format: FormatNDJSON, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	span := Begin(tr, ScopeComponent, "component:Main", 7)
	span.End("ok")
	if err := tr.Flush(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	var ev jsonEvent
	if err := json.Unmarshal([]byte(lines[1]), &ev); err != nil {
		t.Fatal(err)
	}
	if ev.Kind != "end" || ev.Scope != "component" || ev.ParentID != 7 || ev.Detail != "ok" {
		t.Fatalf("unexpected event %+v", ev)
	}
	// the ring sees the same sequence numbers as the stream
	snap := ring.Snapshot()
	if len(snap) != 2 || snap[1].Seq != ev.Seq {
		t.Fatalf("ring out of sync: %+v", snap)
	}
}

func TestFormatText(t *testing.T) {
	ev := &Event{Kind: KindPoint, Scope: ScopePass, Name: "decode", Detail: "cached", Extra: map[string]string{"b": "2", "a": "1"}}
	got := string(FormatEvent(ev, FormatText))
	if !strings.Contains(got, "• decode (cached) {a=1, b=2}") {
		t.Fatalf("text = %q", got)
	}
}

func TestOffIsNop(t *testing.T) {
	tr, ring, err := New(Config{Level: LevelOff})
	if err != nil || ring != nil || tr.Enabled() {
		t.Fatalf("off tracer = %v, %v, %v", tr, ring, err)
	}
	if d := Begin(tr, ScopeDriver, "x", 0).End(""); d != 0 {
		t.Fatalf("inert span measured %v", d)
	}
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	if FromContext(ctx) != Nop || ParentSpan(ctx) != 0 {
		t.Fatalf("empty context should give Nop and 0")
	}
	ring := NewRingTracer(4, LevelDebug)
	ctx = WithParentSpan(WithTracer(ctx, ring), 42)
	if FromContext(ctx) != Tracer(ring) || ParentSpan(ctx) != 42 {
		t.Fatalf("context lost tracer or span")
	}
}
