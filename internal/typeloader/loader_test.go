package typeloader

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveImportPathSearchOrder(t *testing.T) {
	docDir := t.TempDir()
	inc := t.TempDir()
	if err := os.WriteFile(filepath.Join(inc, "logo.png"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(docDir, "local.png"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	l := &Loader{DocumentDir: docDir, IncludeDirs: []string{inc}}

	cases := map[string]string{
		"local.png":   filepath.Join(docDir, "local.png"),
		"logo.png":    filepath.Join(inc, "logo.png"),
		"missing.png": filepath.Join(docDir, "missing.png"),
	}
	for in, want := range cases {
		if got := l.ResolveImportPath(nil, in); got != want {
			t.Errorf("ResolveImportPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestResolveImportPathKeepsAbsolute(t *testing.T) {
	l := &Loader{DocumentDir: "/nowhere"}
	abs := filepath.Join(t.TempDir(), "x.png")
	if got := l.ResolveImportPath(nil, abs); got != abs {
		t.Fatalf("got %q", got)
	}
}
