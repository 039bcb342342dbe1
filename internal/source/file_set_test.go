package source

import (
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()
	id1 := fs.Add("ui/main.60", []byte("Window {}"), 0)
	id2 := fs.Add("ui/main.60", []byte("Window { width: 10px; }"), 0)
	if id1 == id2 {
		t.Fatalf("expected a new FileID for the second version")
	}
	latest, ok := fs.Lookup("ui/./main.60")
	if !ok || latest != id2 {
		t.Fatalf("expected latest=%d, got %d (ok=%v)", id2, latest, ok)
	}
	if got := string(fs.Get(id1).Content); got != "Window {}" {
		t.Errorf("old version content changed: %q", got)
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.60", []byte("ab\r\ncd\nef"))
	file := fs.Get(id)
	if string(file.Content) != "ab\ncd\nef" {
		t.Fatalf("CRLF not normalized: %q", file.Content)
	}
	start, end := fs.Resolve(Span{File: id, Start: 3, End: 7})
	if start != (LineCol{Line: 2, Col: 1}) {
		t.Errorf("start = %+v", start)
	}
	if end != (LineCol{Line: 3, Col: 2}) {
		t.Errorf("end = %+v", end)
	}
	if got := file.GetLine(2); got != "cd" {
		t.Errorf("GetLine(2) = %q", got)
	}
	if got := file.GetLine(4); got != "" {
		t.Errorf("GetLine(4) = %q, want empty", got)
	}
}

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want Span
	}{
		{"disjoint", Span{File: 1, Start: 2, End: 4}, Span{File: 1, Start: 8, End: 9}, Span{File: 1, Start: 2, End: 9}},
		{"other file", Span{File: 1, Start: 2, End: 4}, Span{File: 2, Start: 0, End: 9}, Span{File: 1, Start: 2, End: 4}},
		{"nested", Span{File: 0, Start: 1, End: 10}, Span{File: 0, Start: 3, End: 4}, Span{File: 0, Start: 1, End: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.want {
				t.Errorf("Cover = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddKeepsOffsets(t *testing.T) {
	fs := NewFileSet()
	id := fs.Add("win.60", []byte("a\r\nbc\n"), FileVirtual)
	f := fs.Get(id)
	if f.Flags&FileNormalizedCRLF != 0 || len(f.Content) != 6 {
		t.Fatalf("Add must not rewrite content: %q", f.Content)
	}
	if pos := f.Position(4); pos != (LineCol{Line: 2, Col: 2}) {
		t.Errorf("Position(4) = %+v", pos)
	}
	if got := f.GetLine(1); got != "a" {
		t.Errorf("GetLine(1) = %q", got)
	}
	if f.LineCount() != 3 || f.GetLine(3) != "" {
		t.Errorf("trailing newline: %d lines, last %q", f.LineCount(), f.GetLine(3))
	}
}

func TestFormatPath(t *testing.T) {
	f := &File{Path: "/home/user/projects/sixtyfps/examples/printerdemo/ui/main.60"}
	cases := []struct {
		mode, base, want string
	}{
		{"basename", "", "main.60"},
		{"auto", "", "main.60"},
		{"relative", "/home/user/projects/sixtyfps", "examples/printerdemo/ui/main.60"},
		{"unknown", "", f.Path},
	}
	for _, tc := range cases {
		if got := f.FormatPath(tc.mode, tc.base); got != tc.want {
			t.Errorf("FormatPath(%q) = %q, want %q", tc.mode, got, tc.want)
		}
	}
	short := &File{Path: "ui/main.60"}
	if got := short.FormatPath("auto", ""); got != "ui/main.60" {
		t.Errorf("auto kept short path = %q", got)
	}
}
