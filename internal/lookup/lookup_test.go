package lookup

import (
	"testing"

	"github.com/Be-ing/sixtyfps/internal/diag"
	"github.com/Be-ing/sixtyfps/internal/exprtree"
	"github.com/Be-ing/sixtyfps/internal/objtree"
	"github.com/Be-ing/sixtyfps/internal/source"
	"github.com/Be-ing/sixtyfps/internal/types"
)

type fixture struct {
	doc   *objtree.Document
	main  *objtree.Component
	outer exprtree.ElementID
	row   exprtree.ElementID
	label exprtree.ElementID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &objtree.DocumentFile{
		Path: "lookup.60",
		Structs: []objtree.StructDef{
			{Name: "Item", Fields: []objtree.FieldDef{{Name: "title", Type: objtree.TypeRef{Name: "string"}}}},
		},
		Components: []objtree.ComponentDef{
			{
				Name:   "Palette",
				Global: true,
				Root: objtree.ElementDef{
					Properties: []objtree.PropertyDef{{Name: "accent", Type: objtree.TypeRef{Name: "color"}}},
				},
			},
			{
				Name: "Main",
				Root: objtree.ElementDef{
					ID:   "win",
					Base: "Window",
					Properties: []objtree.PropertyDef{
						{Name: "items", Type: objtree.TypeRef{Array: &objtree.TypeRef{Name: "Item"}}},
						{Name: "text", Type: objtree.TypeRef{Name: "int"}},
					},
					Children: []objtree.ElementDef{{
						ID:       "row",
						Base:     "Rectangle",
						Repeated: &objtree.RepeatedDef{IndexID: "idx", ModelDataID: "item"},
						Children: []objtree.ElementDef{{ID: "label", Base: "Text"}},
					}},
				},
			},
		},
	}
	bag := diag.NewBag(0)
	doc := objtree.Build(f, source.FileID(1), objtree.NewBuiltinRegister(types.NewInterner()), diag.BagReporter{Bag: bag})
	if bag.Len() != 0 {
		t.Fatalf("unexpected build diagnostics: %v", bag.Items())
	}
	fx := &fixture{doc: doc, main: doc.Components[1]}
	fx.outer = fx.main.Root
	fx.row, _ = fx.main.FindByID("row")
	fx.label, _ = fx.main.FindByID("label")

	// model already resolved: the items array
	items := doc.Element(fx.outer).LookupProperty("items")
	model := exprtree.NewReference(exprtree.PropertyReference, exprtree.NamedReference{Element: fx.outer, Name: "items"}, items.Type, source.Span{})
	doc.Element(fx.row).Repeated.Model = &objtree.Binding{Expr: model, Resolved: true}
	return fx
}

func (fx *fixture) ctx(scope ...exprtree.ElementID) *Ctx {
	return &Ctx{
		Doc:      fx.doc,
		Registry: fx.doc.Registry,
		Scope:    scope,
		Sink:     diag.BagReporter{Bag: diag.NewBag(0)},
	}
}

func mustGlobal(t *testing.T, ctx *Ctx, name string) Result {
	t.Helper()
	r, ok := Global(ctx, name, source.Span{})
	if !ok {
		t.Fatalf("%q not found", name)
	}
	return r
}

func TestGlobalInnermostScopeWins(t *testing.T) {
	fx := newFixture(t)
	in := fx.doc.Types
	ctx := fx.ctx(fx.outer, fx.row, fx.label)

	// Text.text shadows Main.text
	r := mustGlobal(t, ctx, "text")
	ref, _ := r.Expr.Reference()
	if ref.Element != fx.label || r.Expr.Type != in.Builtins().String {
		t.Fatalf("text resolved to %v of %s", ref, in.String(r.Expr.Type))
	}

	r = mustGlobal(t, ctx, "items")
	if ref, _ := r.Expr.Reference(); ref.Element != fx.outer {
		t.Fatalf("items resolved to %v", ref)
	}
}

func TestGlobalRepeaterData(t *testing.T) {
	fx := newFixture(t)
	in := fx.doc.Types
	ctx := fx.ctx(fx.outer, fx.row, fx.label)

	idx := mustGlobal(t, ctx, "idx")
	if idx.Expr.Kind != exprtree.RepeaterIndexReference || idx.Expr.Type != in.Builtins().Int32 {
		t.Fatalf("unexpected index reference: %+v", idx.Expr)
	}
	item := mustGlobal(t, ctx, "item")
	if item.Expr.Kind != exprtree.RepeaterModelReference || in.Kind(item.Expr.Type) != types.KindStruct {
		t.Fatalf("unexpected model reference of %s", in.String(item.Expr.Type))
	}

	// outside the repeated element the names are unknown
	if _, ok := Global(fx.ctx(fx.outer), "idx", source.Span{}); ok {
		t.Fatalf("repeater index leaked outside its element")
	}
}

func TestGlobalSpecialIDsAndElementIDs(t *testing.T) {
	fx := newFixture(t)
	ctx := fx.ctx(fx.outer, fx.row, fx.label)
	cases := map[string]exprtree.ElementID{
		"self":   fx.label,
		"parent": fx.row,
		"root":   fx.outer,
		"win":    fx.outer,
		"row":    fx.row,
	}
	for name, want := range cases {
		r := mustGlobal(t, ctx, name)
		if r.Expr.Kind != exprtree.ElementReference || r.Expr.Data.(exprtree.ElementReferenceData).Element != want {
			t.Errorf("%s: got %+v, want element %d", name, r.Expr, want)
		}
	}
	if r := mustGlobal(t, ctx, "true"); r.Expr.Data.(exprtree.BoolLiteralData).Value != true {
		t.Errorf("true literal")
	}
}

func TestGlobalRegistryAndExpectedType(t *testing.T) {
	fx := newFixture(t)
	in := fx.doc.Types
	ctx := fx.ctx(fx.outer)

	pal := mustGlobal(t, ctx, "Palette")
	if pal.Expr.Kind != exprtree.ElementReference {
		t.Fatalf("global component must resolve to its root element")
	}
	enum := mustGlobal(t, ctx, "TextWrap")
	if enum.Kind != ResultEnumeration || in.Kind(enum.Enum) != types.KindEnumeration {
		t.Fatalf("enum not found: %+v", enum)
	}

	if _, ok := Global(ctx, "red", source.Span{}); ok {
		t.Fatalf("color names need a color expected type")
	}
	ctx.PropertyType = in.Builtins().Brush
	if r := mustGlobal(t, ctx, "red"); r.Expr.Type != in.Builtins().Color {
		t.Fatalf("red: %s", in.String(r.Expr.Type))
	}

	ctx.PropertyType = enum.Enum
	r := mustGlobal(t, ctx, "word-wrap")
	if r.Expr.Kind != exprtree.EnumerationValue || r.Expr.Data.(exprtree.EnumerationValueData).Index != 1 {
		t.Fatalf("enum value: %+v", r.Expr)
	}
}

func TestGlobalArgumentsAndBuiltins(t *testing.T) {
	fx := newFixture(t)
	in := fx.doc.Types
	ctx := fx.ctx(fx.outer)
	ctx.PropertyType = in.Callback([]types.TypeID{in.Builtins().Int32}, in.Builtins().Void)
	// an argument shadows a property with the same name
	ctx.Arguments = []string{"text"}

	r := mustGlobal(t, ctx, "text")
	if r.Expr.Kind != exprtree.FunctionParameterReference || r.Expr.Type != in.Builtins().Int32 {
		t.Fatalf("argument: %+v", r.Expr)
	}
	if r := mustGlobal(t, ctx, "max"); r.Expr.Kind != exprtree.BuiltinMacroReference {
		t.Fatalf("max: %+v", r.Expr)
	}
	if r := mustGlobal(t, ctx, "sqrt"); !in.IsCallable(r.Expr.Type) {
		t.Fatalf("sqrt must be callable: %s", in.String(r.Expr.Type))
	}
	if r := mustGlobal(t, ctx, "Math"); r.Kind != ResultNamespace || r.Namespace != NamespaceMath {
		t.Fatalf("Math: %+v", r)
	}
	if _, ok := Global(ctx, "nothing-here", source.Span{}); ok {
		t.Fatalf("unexpected hit")
	}
}

func TestMemberLookup(t *testing.T) {
	fx := newFixture(t)
	in := fx.doc.Types
	ctx := fx.ctx(fx.outer, fx.row, fx.label)
	sp := source.Span{}

	item := mustGlobal(t, ctx, "item").Expr
	r, ok := Member(ctx, item, "title", sp)
	if !ok || r.Expr.Kind != exprtree.StructFieldAccess || r.Expr.Type != in.Builtins().String {
		t.Fatalf("field access: %+v", r.Expr)
	}
	if _, ok := Member(ctx, item, "missing", sp); ok {
		t.Fatalf("unknown field found")
	}

	items := mustGlobal(t, ctx, "items").Expr
	r, ok = Member(ctx, items, "length", sp)
	if !ok || r.Expr.Kind != exprtree.FunctionCall || r.Expr.Type != in.Builtins().Int32 {
		t.Fatalf("array length: %+v", r.Expr)
	}

	win := mustGlobal(t, ctx, "win").Expr
	r, ok = Member(ctx, win, "color", sp)
	if !ok || r.Canonical != "background" {
		t.Fatalf("deprecated alias must report its canonical name: %+v", r)
	}
	ref, _ := r.Expr.Reference()
	if ref.Name != "background" {
		t.Fatalf("alias must reference the canonical property, got %v", ref)
	}

	c := exprtree.NewColor(in, 0xff000000, sp)
	r, ok = Member(ctx, c, "brighter", sp)
	if !ok || r.Expr.Kind != exprtree.MemberFunction {
		t.Fatalf("color member: %+v", r.Expr)
	}
}

func TestNamespaceAndEnumMembers(t *testing.T) {
	fx := newFixture(t)
	in := fx.doc.Types
	ctx := fx.ctx(fx.outer)
	sp := source.Span{}

	if r, ok := NamespaceMember(ctx, NamespaceColors, "blue", sp); !ok || r.Expr.Type != in.Builtins().Color {
		t.Fatalf("Colors.blue: %+v", r)
	}
	if r, ok := NamespaceMember(ctx, NamespaceMath, "abs", sp); !ok || r.Expr.Kind != exprtree.BuiltinMacroReference {
		t.Fatalf("Math.abs: %+v", r)
	}
	if _, ok := NamespaceMember(ctx, NamespaceMath, "debug", sp); ok {
		t.Fatalf("debug is not part of Math")
	}
	wrap, _ := fx.doc.Registry.LookupEnum("TextWrap")
	if _, ok := EnumMember(ctx, wrap, "no-wrap", sp); !ok {
		t.Fatalf("enum member not found")
	}
	if _, ok := EnumMember(ctx, wrap, "wrap-anywhere", sp); ok {
		t.Fatalf("unknown enum member found")
	}
}
