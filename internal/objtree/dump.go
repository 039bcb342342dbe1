package objtree

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/Be-ing/sixtyfps/internal/exprtree"
	"github.com/Be-ing/sixtyfps/internal/types"
)

// DumpOptions configures Dump.
type DumpOptions struct {
	WithTypes bool
}

// Dump writes the element tree of every component with resolved bindings.
func Dump(w io.Writer, doc *Document, opts DumpOptions) error {
	d := &dumper{
		w:   w,
		doc: doc,
		p: &exprtree.Printer{
			Types:       doc.Types,
			ElementName: doc.ElementName,
			WithTypes:   opts.WithTypes,
		},
	}
	for _, c := range doc.Components {
		kind := "component"
		if c.Global {
			kind = "global"
		}
		d.printf("%s %s\n", kind, c.Name)
		d.element(c.Root, 1)
		if d.err != nil {
			return d.err
		}
	}
	return d.err
}

type dumper struct {
	w   io.Writer
	doc *Document
	p   *exprtree.Printer
	err error
}

func (d *dumper) printf(format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)
}

func (d *dumper) element(id ElementID, depth int) {
	e := d.doc.Element(id)
	if e == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	head := d.doc.ElementName(id)
	if e.Repeated != nil {
		switch {
		case e.Repeated.Conditional:
			head = "if " + d.binding(e.Repeated.Model) + ": " + head
		default:
			head = fmt.Sprintf("for %s[%s] in %s: %s", e.Repeated.ModelDataID, e.Repeated.IndexID, d.binding(e.Repeated.Model), head)
		}
	}
	d.printf("%s%s {\n", indent, head)
	d.decls(e, indent+"  ")
	for _, name := range e.BindingNames() {
		b := e.Bindings[name]
		line := d.binding(b)
		if len(b.TwoWay) > 0 {
			refs := make([]string, 0, len(b.TwoWay))
			for _, nr := range b.TwoWay {
				refs = append(refs, d.doc.ElementName(nr.Element)+"."+nr.Name)
			}
			if b.Expr == nil {
				line = "<=> " + strings.Join(refs, ", ")
			} else {
				line += " <=> " + strings.Join(refs, ", ")
			}
		}
		d.printf("%s  %s: %s\n", indent, name, line)
	}
	for _, c := range e.Children {
		d.element(c, depth+1)
	}
	d.printf("%s}\n", indent)
}

// decls prints declarations as `in-out property label: string`.
func (d *dumper) decls(e *Element, indent string) {
	names := make([]string, 0, len(e.Decls))
	for name := range e.Decls {
		names = append(names, name)
	}
	slices.Sort(names)
	in := d.doc.Types
	for _, name := range names {
		decl := e.Decls[name]
		kind := "property"
		switch in.Kind(decl.Type) {
		case types.KindCallback, types.KindInferredCallback:
			kind = "callback"
		case types.KindFunction:
			kind = "function"
		}
		d.printf("%s%s %s %s: %s\n", indent, decl.Visibility, kind, name, in.String(decl.Type))
	}
}

func (d *dumper) binding(b *Binding) string {
	switch {
	case b == nil:
		return "<none>"
	case !b.Resolved:
		return "<unresolved>"
	case b.Expr == nil:
		return ""
	}
	return d.p.Format(b.Expr)
}
