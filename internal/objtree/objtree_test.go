package objtree

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Be-ing/sixtyfps/internal/diag"
	"github.com/Be-ing/sixtyfps/internal/source"
	"github.com/Be-ing/sixtyfps/internal/syntax"
	"github.com/Be-ing/sixtyfps/internal/types"
)

func numberBinding(text string) *syntax.Node {
	return syntax.N(syntax.BindingExpression, syntax.Sub(syntax.N(syntax.Expression, syntax.Tok(syntax.NumberLiteral, text))))
}

func sampleFile() *DocumentFile {
	return &DocumentFile{
		Path: "demo.60",
		Structs: []StructDef{
			{Name: "Item_Data", Fields: []FieldDef{{Name: "title", Type: TypeRef{Name: "string"}}}},
		},
		Components: []ComponentDef{
			{
				Name: "Button",
				Root: ElementDef{
					Base:       "Rectangle",
					Properties: []PropertyDef{{Name: "label", Type: TypeRef{Name: "string"}, Visibility: VisInOut}},
					Callbacks:  []CallbackDef{{Name: "clicked"}},
				},
			},
			{
				Name:     "Main",
				Exported: true,
				Root: ElementDef{
					Base: "Window",
					Properties: []PropertyDef{
						{Name: "items", Type: TypeRef{Array: &TypeRef{Name: "Item_Data"}}},
						{Name: "alias"},
					},
					Children: []ElementDef{
						{ID: "ok_button", Base: "Button", Bindings: []BindingDef{{Name: "width", Syntax: numberBinding("10px")}}},
						{ID: "ok_button", Base: "Rectangle"},
						{Base: "Blinker"},
						{Base: "Text", Bindings: []BindingDef{{Name: "nope", Syntax: numberBinding("1")}}},
					},
				},
			},
		},
	}
}

func buildSample(t *testing.T) (*Document, *diag.Bag) {
	t.Helper()
	data, err := EncodeDocumentFile(sampleFile())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	f, err := DecodeDocumentFile(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	bag := diag.NewBag(0)
	doc := Build(f, source.FileID(3), NewBuiltinRegister(types.NewInterner()), diag.BagReporter{Bag: bag})
	return doc, bag
}

func TestBuildReportsTreeProblems(t *testing.T) {
	_, bag := buildSample(t)
	bag.Sort()
	var msgs []string
	for _, d := range bag.Items() {
		msgs = append(msgs, d.Message)
	}
	joined := strings.Join(msgs, "\n")
	for _, want := range []string{
		"duplicated element id 'ok_button'",
		"Unknown element 'Blinker'",
		"Unknown property nope in Text",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("missing diagnostic %q in:\n%s", want, joined)
		}
	}
	if bag.Len() != 3 {
		t.Fatalf("expected 3 diagnostics, got:\n%s", joined)
	}
}

func TestBuildTree(t *testing.T) {
	doc, _ := buildSample(t)
	if len(doc.Components) != 2 {
		t.Fatalf("expected 2 components, got %d", len(doc.Components))
	}
	main := doc.Components[1]
	root := main.RootElement()
	if root.Base.Name() != "Window" || len(root.Children) != 4 {
		t.Fatalf("unexpected root: %+v", root)
	}
	btnID, ok := main.FindByID("ok-button")
	if !ok {
		t.Fatalf("id not registered under its normalized name")
	}
	btn := doc.Element(btnID)
	if btn.Parent != main.Root || btn.Component != main {
		t.Fatalf("back references not set")
	}
	b, ok := btn.Bindings["width"]
	if !ok || b.Resolved || b.Syntax.Span.File != 3 {
		t.Fatalf("binding not attached or span file not fixed: %+v", b)
	}

	in := doc.Types
	items := root.LookupProperty("items")
	elem, _ := in.ArrayElem(items.Type)
	if info, ok := in.StructInfo(elem); !ok || info.Name != "Item-Data" {
		t.Fatalf("struct type not registered: %s", in.String(items.Type))
	}
	if root.LookupProperty("alias").Type != in.Builtins().InferredProperty {
		t.Fatalf("untyped property must be inferred")
	}
}

func TestLookupPropertyInheritanceAndAliases(t *testing.T) {
	doc, _ := buildSample(t)
	in := doc.Types
	btnID, _ := doc.Components[1].FindByID("ok-button")
	btn := doc.Element(btnID)

	if p := btn.LookupProperty("label"); p.Type != in.Builtins().String || p.Visibility != VisInOut {
		t.Fatalf("inherited declaration not found: %+v", p)
	}
	if p := btn.LookupProperty("clicked"); in.Kind(p.Type) != types.KindCallback {
		t.Fatalf("callback not found: %+v", p)
	}
	p := btn.LookupProperty("color")
	if !p.Deprecated("color") || p.ResolvedName != "background" {
		t.Fatalf("deprecated alias not resolved: %+v", p)
	}
	if btn.LookupProperty("missing").Found() {
		t.Fatalf("unexpected property")
	}
}

func TestDecodeRejectsSchemaMismatch(t *testing.T) {
	f := sampleFile()
	f.Schema = 99
	data, err := EncodeDocumentFile(f)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeDocumentFile(data); !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected schema mismatch, got %v", err)
	}
}

func TestDumpUnresolved(t *testing.T) {
	doc, _ := buildSample(t)
	var buf bytes.Buffer
	if err := Dump(&buf, doc, DumpOptions{}); err != nil {
		t.Fatalf("dump: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"component Main",
		"width: <unresolved>",
		"in-out property label: string",
		"in-out callback clicked: callback()",
		"private property alias: ?",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("dump lacks %q:\n%s", want, out)
		}
	}
}
