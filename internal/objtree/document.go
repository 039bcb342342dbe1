package objtree

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/Be-ing/sixtyfps/internal/exprtree"
	"github.com/Be-ing/sixtyfps/internal/source"
	"github.com/Be-ing/sixtyfps/internal/types"
)

type ElementID = exprtree.ElementID

// Document is one compiled source file.
type Document struct {
	Path       string
	File       source.FileID
	Components []*Component
	Registry   *TypeRegister
	Types      *types.Interner

	elements []Element // 0 зарезервирован
}

// NewDocument creates an empty document with a local register chained to parent.
func NewDocument(path string, file source.FileID, parent *TypeRegister) *Document {
	return &Document{
		Path:     path,
		File:     file,
		Registry: NewLocalRegister(parent),
		Types:    parent.Types(),
		elements: make([]Element, 1, 32),
	}
}

// NewElement allocates an element in the arena.
func (d *Document) NewElement(comp *Component, parent ElementID, base ElementType) ElementID {
	n, err := safecast.Conv[uint32](len(d.elements))
	if err != nil {
		panic(fmt.Errorf("element arena overflow: %w", err))
	}
	id := ElementID(n)
	d.elements = append(d.elements, Element{
		ID:        id,
		Base:      base,
		Bindings:  make(map[string]*Binding),
		Decls:     make(map[string]*PropertyDecl),
		Parent:    parent,
		Component: comp,
	})
	if parent.IsValid() {
		p := d.Element(parent)
		p.Children = append(p.Children, id)
	}
	return id
}

// Element returns the element for id, or nil.
func (d *Document) Element(id ElementID) *Element {
	if !id.IsValid() || int(id) >= len(d.elements) {
		return nil
	}
	return &d.elements[id]
}

// ElementCount returns the number of allocated elements.
func (d *Document) ElementCount() int {
	return len(d.elements) - 1
}

// AddComponent appends c and registers it in the local register.
func (d *Document) AddComponent(c *Component) {
	c.Doc = d
	d.Components = append(d.Components, c)
	d.Registry.AddComponent(c)
}

// Walk visits the element subtree rooted at id depth-first, pre-order.
func (d *Document) Walk(id ElementID, fn func(*Element)) {
	e := d.Element(id)
	if e == nil {
		return
	}
	fn(e)
	for _, c := range e.Children {
		d.Walk(c, fn)
	}
}

// ElementName returns a readable name: the id when present, else the base name.
func (d *Document) ElementName(id ElementID) string {
	e := d.Element(id)
	if e == nil {
		return ""
	}
	if e.Name != "" {
		return e.Name
	}
	if name := e.Base.Name(); name != "" {
		return fmt.Sprintf("%s#%d", name, id)
	}
	if e.Component != nil {
		return e.Component.Name
	}
	return ""
}

// Component is a named UI type owning the element tree under Root.
type Component struct {
	Name     string
	Root     ElementID
	Global   bool
	Exported bool
	Doc      *Document
	Span     source.Span

	ids map[string]ElementID
}

func NewComponent(name string) *Component {
	return &Component{Name: name, ids: make(map[string]ElementID)}
}

// RegisterID records the element's `id`; it returns false on duplicates.
func (c *Component) RegisterID(name string, id ElementID) bool {
	if _, dup := c.ids[name]; dup {
		return false
	}
	c.ids[name] = id
	return true
}

// FindByID returns the element declared with the given id in this component.
func (c *Component) FindByID(name string) (ElementID, bool) {
	id, ok := c.ids[name]
	return id, ok
}

// RootElement returns the root element.
func (c *Component) RootElement() *Element {
	return c.Doc.Element(c.Root)
}
