package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestProgressModelAppliesEvents(t *testing.T) {
	events := make(chan Event)
	m := NewProgressModel("resolving", []string{"a.60", "b.60"}, events).(*progressModel)

	m.Update(eventMsg{File: "a.60", Stage: StageResolve})
	if m.items[0].stage != StageResolve {
		t.Fatalf("a.60 stage = %v, want resolving", m.items[0].stage)
	}
	m.Update(eventMsg{File: "b.60", Stage: StageFailed, Errors: 2, Warnings: 1})
	if m.items[1].errors != 2 || m.items[1].warnings != 1 {
		t.Fatalf("b.60 counts = %d/%d, want 2/1", m.items[1].errors, m.items[1].warnings)
	}
	if got := m.percent(); got != (0.7+1.0)/2 {
		t.Fatalf("percent = %v", got)
	}

	// unknown documents are ignored
	m.Update(eventMsg{File: "c.60", Stage: StageDone})
	if len(m.items) != 2 {
		t.Fatalf("unexpected item added")
	}

	m.Update(eventMsg{Stage: StageResolve})
	if m.stageLabel != "resolving" {
		t.Fatalf("stage label = %q", m.stageLabel)
	}
}

func TestProgressModelView(t *testing.T) {
	m := NewProgressModel("resolving", []string{"ui/main.60"}, nil).(*progressModel)
	m.Update(eventMsg{File: "ui/main.60", Stage: StageDone, Warnings: 3})
	_, cmd := m.Update(doneMsg{})
	if cmd == nil {
		t.Fatalf("done should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("done should return tea.Quit")
	}
	view := m.View()
	for _, want := range []string{"done: resolving", "ui/main.60", "3W", "done"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"abcdefghij", 6, "abc..."},
		{"abcdef", 3, "abc"},
		{"abc", 0, "abc"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.width); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}
