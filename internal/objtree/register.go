package objtree

import (
	"slices"

	"github.com/Be-ing/sixtyfps/internal/types"
)

// TypeRegister maps normalized names to element types, named types
// (primitives, enums, structs) and global singletons. Document registers
// chain to the builtin register; lookups fall through to the parent.
type TypeRegister struct {
	parent   *TypeRegister
	types    *types.Interner
	elements map[string]ElementType
	named    map[string]types.TypeID
	globals  map[string]*Component
}

// NewBuiltinRegister creates the root register with native elements,
// builtin enumerations and primitive type names.
func NewBuiltinRegister(in *types.Interner) *TypeRegister {
	r := &TypeRegister{
		types:    in,
		elements: make(map[string]ElementType),
		named:    make(map[string]types.TypeID),
		globals:  make(map[string]*Component),
	}
	b := in.Builtins()
	for name, id := range map[string]types.TypeID{
		"int":             b.Int32,
		"float":           b.Float32,
		"string":          b.String,
		"bool":            b.Bool,
		"color":           b.Color,
		"brush":           b.Brush,
		"image":           b.Image,
		"length":          b.LogicalLength,
		"physical-length": b.PhysicalLength,
		"duration":        b.Duration,
		"angle":           b.Angle,
		"percent":         b.Percent,
	} {
		r.named[name] = id
	}
	catalog := &builtinCatalog{in: in, enums: make(map[string]types.TypeID)}
	for _, elem := range catalog.elements() {
		r.elements[elem.Name] = ElementType{Kind: ElementTypeBuiltin, Builtin: elem}
	}
	for name, id := range catalog.enums {
		r.named[name] = id
	}
	return r
}

// NewLocalRegister creates a register chained to parent.
func NewLocalRegister(parent *TypeRegister) *TypeRegister {
	return &TypeRegister{
		parent:   parent,
		types:    parent.types,
		elements: make(map[string]ElementType),
		named:    make(map[string]types.TypeID),
		globals:  make(map[string]*Component),
	}
}

func (r *TypeRegister) Types() *types.Interner {
	return r.types
}

// AddComponent registers c as an element type, or as a global singleton.
func (r *TypeRegister) AddComponent(c *Component) {
	if c.Global {
		r.globals[c.Name] = c
		return
	}
	r.elements[c.Name] = ElementType{Kind: ElementTypeComponent, Component: c}
}

// AddType registers a named type such as a struct.
func (r *TypeRegister) AddType(name string, id types.TypeID) {
	r.named[name] = id
}

func (r *TypeRegister) LookupElement(name string) (ElementType, bool) {
	for reg := r; reg != nil; reg = reg.parent {
		if t, ok := reg.elements[name]; ok {
			return t, true
		}
	}
	return ElementType{}, false
}

// LookupType returns a named type: primitive, enum or struct.
func (r *TypeRegister) LookupType(name string) (types.TypeID, bool) {
	for reg := r; reg != nil; reg = reg.parent {
		if id, ok := reg.named[name]; ok {
			return id, true
		}
	}
	return types.Invalid, false
}

// LookupEnum returns the enumeration registered under name.
func (r *TypeRegister) LookupEnum(name string) (types.TypeID, bool) {
	id, ok := r.LookupType(name)
	if !ok || r.types.Kind(id) != types.KindEnumeration {
		return types.Invalid, false
	}
	return id, true
}

func (r *TypeRegister) LookupGlobal(name string) (*Component, bool) {
	for reg := r; reg != nil; reg = reg.parent {
		if c, ok := reg.globals[name]; ok {
			return c, true
		}
	}
	return nil, false
}

// ElementNames lists registered element names, sorted, parents included.
func (r *TypeRegister) ElementNames() []string {
	seen := make(map[string]struct{})
	for reg := r; reg != nil; reg = reg.parent {
		for name := range reg.elements {
			seen[name] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}
