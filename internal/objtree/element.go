package objtree

import (
	"slices"

	"github.com/Be-ing/sixtyfps/internal/exprtree"
	"github.com/Be-ing/sixtyfps/internal/source"
	"github.com/Be-ing/sixtyfps/internal/syntax"
	"github.com/Be-ing/sixtyfps/internal/types"
)

// Visibility of a declared or builtin property.
type Visibility uint8

const (
	VisPrivate Visibility = iota
	VisInput
	VisOutput
	VisInOut
)

func (v Visibility) String() string {
	switch v {
	case VisInput:
		return "in"
	case VisOutput:
		return "out"
	case VisInOut:
		return "in-out"
	}
	return "private"
}

// PropertyDecl declares a property, callback or function on an element.
type PropertyDecl struct {
	Name       string
	Type       types.TypeID
	Visibility Visibility
	// ArgNames names callback/function arguments when declared.
	ArgNames []string
	Span     source.Span
}

// Binding attaches an expression to one property of one element.
type Binding struct {
	// Syntax is the unresolved payload; kept after resolution for spans.
	Syntax   *syntax.Node
	Expr     *exprtree.Expr
	Resolved bool
	// TwoWay lists the properties this one is aliased with.
	TwoWay []exprtree.NamedReference
	Span   source.Span
}

// NewBinding wraps an unresolved syntax node.
func NewBinding(node *syntax.Node) *Binding {
	b := &Binding{Syntax: node}
	if node != nil {
		b.Span = node.Span
	}
	return b
}

// RepeatedInfo is present on elements instantiated per model item
// (`for x[i] in model: ...`) or conditionally (`if cond: ...`).
type RepeatedInfo struct {
	Model       *Binding
	IndexID     string
	ModelDataID string
	Conditional bool
}

type ElementTypeKind uint8

const (
	// ElementTypeNone is the base of global components.
	ElementTypeNone ElementTypeKind = iota
	ElementTypeBuiltin
	ElementTypeComponent
)

// ElementType is the base type of an element.
type ElementType struct {
	Kind      ElementTypeKind
	Builtin   *BuiltinElement
	Component *Component
}

func (t ElementType) Name() string {
	switch t.Kind {
	case ElementTypeBuiltin:
		return t.Builtin.Name
	case ElementTypeComponent:
		return t.Component.Name
	}
	return ""
}

// Element is a node of the UI tree.
type Element struct {
	ID        ElementID
	Name      string // the element's `id`, may be empty
	Base      ElementType
	Bindings  map[string]*Binding
	Decls     map[string]*PropertyDecl
	Repeated  *RepeatedInfo
	Children  []ElementID
	Parent    ElementID
	Component *Component
	Span      source.Span
}

// BindingNames returns the binding keys in sorted order.
func (e *Element) BindingNames() []string {
	names := make([]string, 0, len(e.Bindings))
	for name := range e.Bindings {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// PropertyLookup is the result of looking a name up on an element.
type PropertyLookup struct {
	ResolvedName string
	Type         types.TypeID
	Visibility   Visibility
	// Member is set for builtin member functions such as TextInput.focus.
	Member *MemberFunction
}

// Found reports whether the lookup found anything.
func (p PropertyLookup) Found() bool {
	return p.Type != types.Invalid
}

// Deprecated reports whether the looked-up name was an alias.
func (p PropertyLookup) Deprecated(name string) bool {
	return p.Found() && p.ResolvedName != name
}

// LookupProperty finds a declared or inherited property, callback or
// function. Deprecated builtin aliases resolve to their canonical name.
func (e *Element) LookupProperty(name string) PropertyLookup {
	if d, ok := e.Decls[name]; ok {
		return PropertyLookup{ResolvedName: name, Type: d.Type, Visibility: d.Visibility}
	}
	return e.Base.LookupProperty(name)
}

// LookupProperty searches the base type chain.
func (t ElementType) LookupProperty(name string) PropertyLookup {
	switch t.Kind {
	case ElementTypeBuiltin:
		return t.Builtin.LookupProperty(name)
	case ElementTypeComponent:
		if root := t.Component.RootElement(); root != nil {
			return root.LookupProperty(name)
		}
	}
	return PropertyLookup{ResolvedName: name}
}
