package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Be-ing/sixtyfps/internal/diag"
	"github.com/Be-ing/sixtyfps/internal/source"
)

const sample = "Main := Window {\n    text: foo-bar;\n    background: rect.color;\n}\n"

func sampleBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSetWithBase("/home/user/project")
	id := fs.AddVirtual("/home/user/project/ui/main.60", []byte(sample))
	bag := diag.NewBag(10)

	start := uint32(strings.Index(sample, "foo-bar"))
	bag.Add(diag.New(diag.SevError, diag.SemaUnresolvedIdentifier,
		source.Span{File: id, Start: start, End: start + 7},
		"Unknown unqualified identifier 'foo-bar'"))

	start = uint32(strings.Index(sample, "color"))
	sp := source.Span{File: id, Start: start, End: start + 5}
	warn := diag.New(diag.SevWarning, diag.SemaDeprecatedProperty, sp,
		"The property 'color' has been deprecated. Please use 'background' instead")
	warn.Fixes = []diag.Fix{{Title: "use background", Edits: []diag.FixEdit{{Span: sp, NewText: "background"}}}}
	bag.Add(warn)
	return bag, fs
}

func TestPrettyRendersSnippetAndCaret(t *testing.T) {
	bag, fs := sampleBag(t)
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeRelative, ShowFixes: true, ShowPreview: true})
	out := buf.String()

	for _, want := range []string{
		"ui/main.60:2:11: ERROR SEM3002: Unknown unqualified identifier 'foo-bar'",
		"2 |     text: foo-bar;",
		"  |           ^~~~~~",
		"ui/main.60:3:22: WARNING SEM3008:",
		"fix: use background",
		"- " + "    background: rect.color;",
		"+ " + "    background: rect.background;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("colour codes with Color=false:\n%s", out)
	}
}

func TestPrettyPathModes(t *testing.T) {
	bag, fs := sampleBag(t)
	cases := map[PathMode]string{
		PathModeAbsolute: "/home/user/project/ui/main.60:2:11",
		PathModeRelative: "ui/main.60:2:11",
		PathModeBasename: "main.60:2:11",
	}
	for mode, want := range cases {
		var buf bytes.Buffer
		Pretty(&buf, bag, fs, PrettyOpts{PathMode: mode})
		if !strings.HasPrefix(buf.String(), want) {
			t.Errorf("%s: got %q", mode, buf.String())
		}
	}
}

func TestShort(t *testing.T) {
	bag, fs := sampleBag(t)
	var buf bytes.Buffer
	Short(&buf, bag, fs, PathModeBasename)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if lines[0] != "main.60:2:11: ERROR: Unknown unqualified identifier 'foo-bar' [SEM3002]" {
		t.Fatalf("line 0: %q", lines[0])
	}
}

func TestJSONOutput(t *testing.T) {
	bag, fs := sampleBag(t)
	var buf bytes.Buffer
	err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, PathMode: PathModeBasename, IncludeFixes: true, IncludePreviews: true})
	if err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Count != 2 || out.Diagnostics[0].Code != "SEM3002" || out.Diagnostics[0].Location.StartLine != 2 {
		t.Fatalf("unexpected output: %+v", out)
	}
	fix := out.Diagnostics[1].Fixes
	if len(fix) != 1 || fix[0].Edits[0].AfterLines[0] != "    background: rect.background;" {
		t.Fatalf("fix: %+v", fix)
	}

	buf.Reset()
	if err := JSON(&buf, bag, fs, JSONOpts{Max: 1}); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil || out.Count != 1 {
		t.Fatalf("max not applied: %+v %v", out, err)
	}
}
