package driver

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/Be-ing/sixtyfps/internal/diag"
	"github.com/Be-ing/sixtyfps/internal/objtree"
	"github.com/Be-ing/sixtyfps/internal/syntax"
	"github.com/Be-ing/sixtyfps/internal/testkit"
	"github.com/Be-ing/sixtyfps/internal/trace"
	"github.com/Be-ing/sixtyfps/internal/ui"
)

func binding(name string, e *syntax.Node) objtree.BindingDef {
	return objtree.BindingDef{Name: name, Syntax: testkit.Binding(e)}
}

func writeDoc(t *testing.T, dir, name string, root objtree.ElementDef) string {
	t.Helper()
	data, err := objtree.EncodeDocumentFile(&objtree.DocumentFile{
		Path:       name,
		Components: []objtree.ComponentDef{{Name: "Main", Root: root}},
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	path := filepath.Join(dir, name+".mp")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// fixture writes ok.60.mp (clean), warn.60.mp (a deprecated property)
// and broken.60.mp (not msgpack).
func fixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeDoc(t, dir, "ok.60", objtree.ElementDef{
		Base:       "Window",
		Properties: []objtree.PropertyDef{{Name: "count", Type: objtree.TypeRef{Name: "int"}}},
		Bindings:   []objtree.BindingDef{binding("count", testkit.Bin(testkit.Num("1"), "+", testkit.Num("2")))},
	})
	writeDoc(t, dir, "warn.60", objtree.ElementDef{
		Base:     "Window",
		Bindings: []objtree.BindingDef{binding("background", testkit.Name("rect.color"))},
		Children: []objtree.ElementDef{{ID: "rect", Base: "Rectangle"}},
	})
	if err := os.WriteFile(filepath.Join(dir, "broken.60.mp"), []byte("not a document"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignored"), 0o600); err != nil {
		t.Fatal(err)
	}
	return dir
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	return log
}

type recordSink struct {
	mu     sync.Mutex
	events []ui.Event
}

func (s *recordSink) OnEvent(ev ui.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *recordSink) last(file string) ui.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out ui.Event
	for _, ev := range s.events {
		if ev.File == file {
			out = ev
		}
	}
	return out
}

func TestListDocuments(t *testing.T) {
	dir := fixture(t)
	files, err := ListDocuments(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	if got := strings.Join(names, ","); got != "broken.60.mp,ok.60.mp,warn.60.mp" {
		t.Fatalf("files = %s", got)
	}

	single, err := ListDocuments(files[1])
	if err != nil || len(single) != 1 || single[0] != files[1] {
		t.Fatalf("single file = %v, %v", single, err)
	}
	if _, err := ListDocuments(filepath.Join(dir, "missing")); err == nil {
		t.Fatalf("expected error for missing path")
	}
}

func TestSourcePath(t *testing.T) {
	cases := []struct {
		interchange, declared, want string
	}{
		{"ui/main.60.mp", "", "ui/main.60"},
		{"ui/main.60.mp", "src/main.60", "ui/main.60"},
		{"ui/main.60.mp", "/abs/main.60", "/abs/main.60"},
	}
	for _, tc := range cases {
		if got := sourcePath(tc.interchange, tc.declared); got != filepath.FromSlash(tc.want) {
			t.Errorf("sourcePath(%q, %q) = %q, want %q", tc.interchange, tc.declared, got, tc.want)
		}
	}
}

func TestResolveDirectory(t *testing.T) {
	dir := fixture(t)
	files, err := ListDocuments(dir)
	if err != nil {
		t.Fatal(err)
	}
	sink := &recordSink{}
	res, err := Resolve(context.Background(), files, Options{Jobs: 2, Progress: sink, Log: quietLogger(), EnableTimings: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Documents) != 3 {
		t.Fatalf("got %d documents", len(res.Documents))
	}

	broken, ok, warn := res.Documents[0], res.Documents[1], res.Documents[2]
	if broken.Document != nil || broken.Bag.Count(diag.SevError) != 1 {
		t.Fatalf("broken document: %+v", broken.Bag.Items())
	}
	if code := broken.Bag.Items()[0].Code; code != diag.IODecodeError {
		t.Fatalf("broken code = %v", code)
	}
	if ok.Bag.Len() != 0 || ok.Stats.Bindings != 1 {
		t.Fatalf("ok document: %+v %+v", ok.Stats, ok.Bag.Items())
	}
	// no source text was sent, so span bounds are not checked
	if err := testkit.CheckResolved(ok.Document, 0); err != nil {
		t.Fatal(err)
	}
	if warn.Bag.Count(diag.SevWarning) != 1 || warn.Bag.HasErrors() {
		t.Fatalf("warn document: %+v", warn.Bag.Items())
	}
	if filepath.Base(warn.Source) != "warn.60" {
		t.Fatalf("source path = %s", warn.Source)
	}

	if !res.HasErrors() || res.Bag.Len() != 2 {
		t.Fatalf("merged bag: %+v", res.Bag.Items())
	}
	if ev := sink.last(files[0]); ev.Stage != ui.StageFailed {
		t.Fatalf("broken last event %+v", ev)
	}
	if ev := sink.last(files[2]); ev.Stage != ui.StageDone || ev.Warnings != 1 {
		t.Fatalf("warn last event %+v", ev)
	}
	if res.Timings == nil || !strings.Contains(res.TimingSummary(), "decode") {
		t.Fatalf("timings missing: %q", res.TimingSummary())
	}

	var tree bytes.Buffer
	if err := res.EmitTree(&tree, true); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(tree.String(), "component Main") || strings.Contains(tree.String(), "broken") {
		t.Fatalf("tree:\n%s", tree.String())
	}
}

func TestWarningsAsErrors(t *testing.T) {
	dir := fixture(t)
	path := filepath.Join(dir, "warn.60.mp")
	res, err := Resolve(context.Background(), []string{path}, Options{Log: quietLogger()})
	if err != nil {
		t.Fatal(err)
	}
	if res.HasErrors() {
		t.Fatalf("warnings alone should not fail")
	}
	res, err = Resolve(context.Background(), []string{path}, Options{Log: quietLogger(), WarningsAsErrors: true})
	if err != nil {
		t.Fatal(err)
	}
	if !res.HasErrors() {
		t.Fatalf("warning should be promoted")
	}
}

func TestResolveMissingFileAndLimit(t *testing.T) {
	dir := fixture(t)
	paths := []string{filepath.Join(dir, "gone.60.mp"), filepath.Join(dir, "broken.60.mp")}
	res, err := Resolve(context.Background(), paths, Options{Log: quietLogger(), MaxDiagnostics: 1})
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.Len() != 1 {
		t.Fatalf("limit not applied: %d", res.Bag.Len())
	}
	if code := res.Documents[0].Bag.Items()[0].Code; code != diag.IOLoadFileError {
		t.Fatalf("missing file code = %v", code)
	}
}

func TestResolveTraces(t *testing.T) {
	dir := fixture(t)
	ring := trace.NewRingTracer(64, trace.LevelDetail)
	ctx := trace.WithTracer(context.Background(), ring)
	if _, err := Resolve(ctx, []string{filepath.Join(dir, "ok.60.mp")}, Options{Log: quietLogger()}); err != nil {
		t.Fatal(err)
	}
	seen := map[string]bool{}
	for _, ev := range ring.Snapshot() {
		seen[ev.Scope.String()+":"+ev.Name] = true
	}
	for _, want := range []string{"driver:resolve", "pass:decode", "pass:resolve", "component:component:Main"} {
		if !seen[want] {
			t.Errorf("missing trace event %s in %v", want, seen)
		}
	}
}

func TestResolveCancelled(t *testing.T) {
	dir := fixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Resolve(ctx, []string{filepath.Join(dir, "ok.60.mp")}, Options{Log: quietLogger()}); err == nil {
		t.Fatalf("expected context error")
	}
}
