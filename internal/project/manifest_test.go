package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadManifestFromSubdirectory(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `
[package]
name = "printerdemo"

[resolve]
include_paths = ["ui", "/opt/images"]
max_diagnostics = 50
style = "fluent"
`)
	sub := filepath.Join(root, "ui", "pages")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	m, ok, err := LoadManifest(sub)
	if err != nil || !ok {
		t.Fatalf("LoadManifest: ok=%v err=%v", ok, err)
	}
	if m.Config.Package.Name != "printerdemo" || m.Config.Resolve.MaxDiagnostics != 50 || m.Config.Resolve.Style != "fluent" {
		t.Fatalf("unexpected config: %+v", m.Config)
	}
	dirs := m.IncludeDirs()
	if len(dirs) != 2 || dirs[0] != filepath.Join(m.Root, "ui") || dirs[1] != filepath.Clean("/opt/images") {
		t.Fatalf("include dirs %v", dirs)
	}
}

func TestLoadManifestMissing(t *testing.T) {
	m, ok, err := LoadManifest(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// a manifest further up the real filesystem would be found too
	if ok && m == nil {
		t.Fatalf("ok without manifest")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"no package", "[resolve]\nstyle = \"x\"\n", "missing [package]"},
		{"no name", "[package]\nname = \"  \"\n", "missing [package].name"},
		{"unknown key", "[package]\nname = \"a\"\n[resolve]\nfoo = 1\n", "unknown key resolve.foo"},
		{"negative limit", "[package]\nname = \"a\"\n[resolve]\nmax_diagnostics = -1\n", "must not be negative"},
		{"syntax", "[package\n", "failed to parse TOML"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tc.body)
			_, err := LoadConfig(path)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("got %v, want %q", err, tc.want)
			}
		})
	}
}
