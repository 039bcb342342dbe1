package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Be-ing/sixtyfps/internal/diag"
	"github.com/Be-ing/sixtyfps/internal/driver"
	"github.com/Be-ing/sixtyfps/internal/source"
)

func TestDriverOptionsMergesManifest(t *testing.T) {
	root := t.TempDir()
	manifest := "[package]\nname = \"demo\"\n\n[resolve]\ninclude_paths = [\"images\"]\nmax_diagnostics = 7\n"
	if err := os.WriteFile(filepath.Join(root, "sixtyfps.toml"), []byte(manifest), 0o600); err != nil {
		t.Fatal(err)
	}
	ui := filepath.Join(root, "ui")
	if err := os.MkdirAll(ui, 0o755); err != nil {
		t.Fatal(err)
	}

	extra := t.TempDir()
	opts, err := driverOptions(ui, resolveFlags{maxDiagnostics: 100, includes: []string{extra}})
	if err != nil {
		t.Fatal(err)
	}
	if opts.MaxDiagnostics != 7 {
		t.Fatalf("max diagnostics = %d, want manifest value 7", opts.MaxDiagnostics)
	}
	if opts.BaseDir != root {
		t.Fatalf("base dir = %s, want %s", opts.BaseDir, root)
	}
	want := []string{extra, filepath.Join(root, "images")}
	if strings.Join(opts.IncludeDirs, "|") != strings.Join(want, "|") {
		t.Fatalf("include dirs = %v, want %v", opts.IncludeDirs, want)
	}

	opts, err = driverOptions(ui, resolveFlags{maxDiagnostics: 3, maxChanged: true})
	if err != nil {
		t.Fatal(err)
	}
	if opts.MaxDiagnostics != 3 {
		t.Fatalf("flag should win over manifest, got %d", opts.MaxDiagnostics)
	}
}

func TestDriverOptionsBadManifest(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "sixtyfps.toml"), []byte("[resolve]\nstyle = \"fluent\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := driverOptions(root, resolveFlags{}); err == nil {
		t.Fatalf("expected missing [package] error")
	}
}

func TestSummaryLine(t *testing.T) {
	bag := diag.NewBag(0)
	r := diag.BagReporter{Bag: bag}
	diag.ReportError(r, diag.SemaTypeMismatch, source.Span{}, "a").Emit()
	diag.ReportError(r, diag.SemaTypeMismatch, source.Span{}, "b").Emit()
	diag.ReportWarning(r, diag.SemaDeprecatedProperty, source.Span{}, "c").Emit()
	res := &driver.Result{Bag: bag, Documents: make([]driver.DocumentResult, 3)}
	if got := summaryLine(res); got != "2 errors, 1 warning in 3 documents" {
		t.Fatalf("summary = %q", got)
	}
}
