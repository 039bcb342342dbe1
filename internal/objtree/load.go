package objtree

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/Be-ing/sixtyfps/internal/diag"
	"github.com/Be-ing/sixtyfps/internal/source"
	"github.com/Be-ing/sixtyfps/internal/syntax"
	"github.com/Be-ing/sixtyfps/internal/types"
)

// Current schema version - increment when DocumentFile format changes
const DocumentSchemaVersion uint16 = 1

// ErrSchemaMismatch is returned for interchange files of another schema.
var ErrSchemaMismatch = errors.New("document schema mismatch")

// DocumentFile is the parser output for one source file: the element
// tree with declarations and unresolved binding syntax. Spans inside are
// byte offsets into Source; the File part is assigned on Build.
type DocumentFile struct {
	Schema     uint16
	Path       string
	Source     string
	Structs    []StructDef
	Components []ComponentDef
}

// TypeRef names a type: a registered name, an array of a type, or an
// anonymous struct. The zero TypeRef means "inferred".
type TypeRef struct {
	Name   string
	Array  *TypeRef
	Fields []FieldDef
}

func (t TypeRef) IsZero() bool {
	return t.Name == "" && t.Array == nil && t.Fields == nil
}

type FieldDef struct {
	Name string
	Type TypeRef
}

type StructDef struct {
	Name   string
	Fields []FieldDef
}

type ComponentDef struct {
	Name     string
	Global   bool
	Exported bool
	Root     ElementDef
	Span     source.Span
}

type PropertyDef struct {
	Name       string
	Type       TypeRef
	Visibility Visibility
	Span       source.Span
}

// CallbackDef declares a callback, or a function when Function is set.
// Inferred marks `callback foo <=> other.cb;`.
type CallbackDef struct {
	Name     string
	Args     []TypeRef
	ArgNames []string
	Return   *TypeRef
	Function bool
	Inferred bool
	Span     source.Span
}

type BindingDef struct {
	Name   string
	Syntax *syntax.Node
}

type RepeatedDef struct {
	Model       *syntax.Node
	IndexID     string
	ModelDataID string
	Conditional bool
}

type ElementDef struct {
	ID         string
	Base       string
	Properties []PropertyDef
	Callbacks  []CallbackDef
	Bindings   []BindingDef
	Repeated   *RepeatedDef
	Children   []ElementDef
	Span       source.Span
}

// EncodeDocumentFile serializes f with msgpack.
func EncodeDocumentFile(f *DocumentFile) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.UseCompactInts(true)
	if f.Schema == 0 {
		f.Schema = DocumentSchemaVersion
	}
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("encode document %s: %w", f.Path, err)
	}
	return buf.Bytes(), nil
}

// DecodeDocumentFile deserializes and validates an interchange file.
func DecodeDocumentFile(data []byte) (*DocumentFile, error) {
	var f DocumentFile
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if f.Schema != DocumentSchemaVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSchemaMismatch, f.Schema, DocumentSchemaVersion)
	}
	for i := range f.Components {
		if err := validateElementDef(&f.Components[i].Root); err != nil {
			return nil, fmt.Errorf("component %s: %w", f.Components[i].Name, err)
		}
	}
	return &f, nil
}

func validateElementDef(e *ElementDef) error {
	for _, b := range e.Bindings {
		if b.Syntax == nil {
			return fmt.Errorf("binding %s has no syntax", b.Name)
		}
		if err := syntax.Validate(b.Syntax); err != nil {
			return fmt.Errorf("binding %s: %w", b.Name, err)
		}
	}
	if e.Repeated != nil && e.Repeated.Model != nil {
		if err := syntax.Validate(e.Repeated.Model); err != nil {
			return fmt.Errorf("repeater model: %w", err)
		}
	}
	for i := range e.Children {
		if err := validateElementDef(&e.Children[i]); err != nil {
			return err
		}
	}
	return nil
}

// Build turns a decoded file into a Document. Problems in the tree that
// the parser could not catch (unknown types or bases, duplicate ids,
// bindings to undeclared properties) are reported and skipped.
func Build(f *DocumentFile, file source.FileID, builtin *TypeRegister, r diag.Reporter) *Document {
	b := &builder{
		doc:  NewDocument(f.Path, file, builtin),
		file: file,
		r:    r,
	}
	for _, s := range f.Structs {
		fields := make([]types.Field, 0, len(s.Fields))
		for _, fd := range s.Fields {
			fields = append(fields, types.Field{Name: syntax.NormalizeIdentifier(fd.Name), Type: b.typeRef(fd.Type, source.Span{File: file})})
		}
		name := syntax.NormalizeIdentifier(s.Name)
		b.doc.Registry.AddType(name, b.doc.Types.Struct(name, fields))
	}
	for i := range f.Components {
		b.component(&f.Components[i])
	}
	return b.doc
}

type builder struct {
	doc  *Document
	file source.FileID
	r    diag.Reporter
}

func (b *builder) span(sp source.Span) source.Span {
	sp.File = b.file
	return sp
}

func (b *builder) fixSpans(n *syntax.Node) {
	n.Walk(func(node *syntax.Node) bool {
		node.Span.File = b.file
		for _, c := range node.Children {
			if c.Token != nil {
				c.Token.Span.File = b.file
			}
		}
		return true
	})
}

func (b *builder) typeRef(ref TypeRef, sp source.Span) types.TypeID {
	in := b.doc.Types
	switch {
	case ref.Array != nil:
		return in.Array(b.typeRef(*ref.Array, sp))
	case ref.Fields != nil:
		fields := make([]types.Field, 0, len(ref.Fields))
		for _, f := range ref.Fields {
			fields = append(fields, types.Field{Name: syntax.NormalizeIdentifier(f.Name), Type: b.typeRef(f.Type, sp)})
		}
		return in.Struct("", fields)
	}
	if id, ok := b.doc.Registry.LookupType(syntax.NormalizeIdentifier(ref.Name)); ok {
		return id
	}
	diag.ReportError(b.r, diag.SynUnknownType, sp, fmt.Sprintf("Unknown type '%s'", ref.Name)).Emit()
	return types.Invalid
}

func (b *builder) component(def *ComponentDef) {
	c := NewComponent(def.Name)
	c.Global = def.Global
	c.Exported = def.Exported
	c.Span = b.span(def.Span)
	c.Doc = b.doc
	c.Root = b.element(c, ElementID(0), &def.Root)
	b.doc.AddComponent(c)
}

func (b *builder) element(c *Component, parent ElementID, def *ElementDef) ElementID {
	in := b.doc.Types
	base := ElementType{}
	if def.Base != "" {
		t, ok := b.doc.Registry.LookupElement(def.Base)
		if ok {
			base = t
		} else {
			diag.ReportError(b.r, diag.SynUnknownBase, b.span(def.Span), fmt.Sprintf("Unknown element '%s'", def.Base)).Emit()
		}
	}
	id := b.doc.NewElement(c, parent, base)
	elem := b.doc.Element(id)
	elem.Span = b.span(def.Span)

	if def.ID != "" {
		elem.Name = syntax.NormalizeIdentifier(def.ID)
		if !c.RegisterID(elem.Name, id) {
			diag.ReportError(b.r, diag.SynDuplicateID, elem.Span, fmt.Sprintf("duplicated element id '%s'", def.ID)).Emit()
		}
	}

	for _, p := range def.Properties {
		name := syntax.NormalizeIdentifier(p.Name)
		ty := in.Builtins().InferredProperty
		if !p.Type.IsZero() {
			ty = b.typeRef(p.Type, b.span(p.Span))
		}
		elem.Decls[name] = &PropertyDecl{Name: name, Type: ty, Visibility: p.Visibility, Span: b.span(p.Span)}
	}
	for _, cb := range def.Callbacks {
		elem.Decls[syntax.NormalizeIdentifier(cb.Name)] = b.callbackDecl(cb)
	}

	for _, bd := range def.Bindings {
		name := syntax.NormalizeIdentifier(bd.Name)
		b.fixSpans(bd.Syntax)
		if !elem.LookupProperty(name).Found() {
			diag.ReportError(b.r, diag.SynUnknownProperty, bd.Syntax.Span,
				fmt.Sprintf("Unknown property %s in %s", bd.Name, describeBase(elem))).Emit()
			continue
		}
		if _, dup := elem.Bindings[name]; dup {
			diag.ReportError(b.r, diag.SynMalformedPayload, bd.Syntax.Span, fmt.Sprintf("Duplicated property binding '%s'", bd.Name)).Emit()
			continue
		}
		elem.Bindings[name] = NewBinding(bd.Syntax)
	}

	if rep := def.Repeated; rep != nil {
		info := &RepeatedInfo{
			IndexID:     syntax.NormalizeIdentifier(rep.IndexID),
			ModelDataID: syntax.NormalizeIdentifier(rep.ModelDataID),
			Conditional: rep.Conditional,
		}
		if rep.Model != nil {
			b.fixSpans(rep.Model)
			info.Model = NewBinding(rep.Model)
		}
		elem.Repeated = info
	}

	// elem больше не трогаем: дети расширяют арену
	for i := range def.Children {
		b.element(c, id, &def.Children[i])
	}
	return id
}

func (b *builder) callbackDecl(cb CallbackDef) *PropertyDecl {
	in := b.doc.Types
	sp := b.span(cb.Span)
	decl := &PropertyDecl{
		Name:       syntax.NormalizeIdentifier(cb.Name),
		Visibility: VisInOut,
		Span:       sp,
	}
	for _, n := range cb.ArgNames {
		decl.ArgNames = append(decl.ArgNames, syntax.NormalizeIdentifier(n))
	}
	if cb.Inferred {
		decl.Type = in.Builtins().InferredCallback
		return decl
	}
	args := make([]types.TypeID, 0, len(cb.Args))
	for _, a := range cb.Args {
		args = append(args, b.typeRef(a, sp))
	}
	ret := in.Builtins().Void
	if cb.Return != nil {
		ret = b.typeRef(*cb.Return, sp)
	}
	if cb.Function {
		decl.Type = in.Function(args, ret)
		decl.Visibility = VisPrivate
	} else {
		decl.Type = in.Callback(args, ret)
	}
	return decl
}

func describeBase(e *Element) string {
	if name := e.Base.Name(); name != "" {
		return name
	}
	if e.Component != nil {
		return e.Component.Name
	}
	return "element"
}
