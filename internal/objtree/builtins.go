package objtree

import (
	"github.com/Be-ing/sixtyfps/internal/exprtree"
	"github.com/Be-ing/sixtyfps/internal/types"
)

// BuiltinProperty is a property of a native element.
type BuiltinProperty struct {
	Type       types.TypeID
	Visibility Visibility
}

// MemberFunction is a native function callable on an element, receiving
// the element as first argument.
type MemberFunction struct {
	Func exprtree.BuiltinFunction
	Type types.TypeID
}

// BuiltinElement describes a native element such as Rectangle or Text.
type BuiltinElement struct {
	Name            string
	Properties      map[string]BuiltinProperty
	MemberFunctions map[string]MemberFunction
	// DeprecatedAliases maps an old property name to its replacement.
	DeprecatedAliases map[string]string
}

func (b *BuiltinElement) LookupProperty(name string) PropertyLookup {
	resolved := name
	if alias, ok := b.DeprecatedAliases[name]; ok {
		resolved = alias
	}
	if p, ok := b.Properties[resolved]; ok {
		return PropertyLookup{ResolvedName: resolved, Type: p.Type, Visibility: p.Visibility}
	}
	if m, ok := b.MemberFunctions[resolved]; ok {
		member := m
		return PropertyLookup{ResolvedName: resolved, Type: m.Type, Visibility: VisPrivate, Member: &member}
	}
	return PropertyLookup{ResolvedName: name}
}

// builtinCatalog describes native elements and enumerations.
type builtinCatalog struct {
	in    *types.Interner
	enums map[string]types.TypeID
}

func (c *builtinCatalog) enum(name string, values ...string) types.TypeID {
	id := c.in.RegisterEnum(name, values)
	c.enums[name] = id
	return id
}

func (c *builtinCatalog) elements() []*BuiltinElement {
	in := c.in
	b := in.Builtins()
	hAlign := c.enum("TextHorizontalAlignment", "left", "center", "right")
	vAlign := c.enum("TextVerticalAlignment", "top", "center", "bottom")
	wrap := c.enum("TextWrap", "no-wrap", "word-wrap")
	overflow := c.enum("TextOverflow", "clip", "elide")
	fit := c.enum("ImageFit", "fill", "contain", "cover")
	layoutAlign := c.enum("LayoutAlignment", "stretch", "center", "start", "end", "space-between", "space-around")
	c.enum("PointerEventButton", "none", "left", "right", "middle")

	in2 := func(ty types.TypeID) BuiltinProperty { return BuiltinProperty{Type: ty, Visibility: VisInOut} }
	out := func(ty types.TypeID) BuiltinProperty { return BuiltinProperty{Type: ty, Visibility: VisOutput} }
	cb := func(args ...types.TypeID) BuiltinProperty {
		return BuiltinProperty{Type: in.Callback(args, b.Void), Visibility: VisInOut}
	}

	geometry := func(props map[string]BuiltinProperty) map[string]BuiltinProperty {
		for _, name := range []string{"x", "y", "width", "height"} {
			props[name] = in2(b.LogicalLength)
		}
		return props
	}
	textProps := func(props map[string]BuiltinProperty) map[string]BuiltinProperty {
		props["text"] = in2(b.String)
		props["font-family"] = in2(b.String)
		props["font-size"] = in2(b.LogicalLength)
		props["font-weight"] = in2(b.Int32)
		props["color"] = in2(b.Brush)
		props["horizontal-alignment"] = in2(hAlign)
		props["vertical-alignment"] = in2(vAlign)
		return props
	}
	layout := func(name string) *BuiltinElement {
		return &BuiltinElement{Name: name, Properties: geometry(map[string]BuiltinProperty{
			"spacing":   in2(b.LogicalLength),
			"padding":   in2(b.LogicalLength),
			"alignment": in2(layoutAlign),
		})}
	}

	return []*BuiltinElement{
		{
			Name: "Rectangle",
			Properties: geometry(map[string]BuiltinProperty{
				"background":    in2(b.Brush),
				"border-color":  in2(b.Brush),
				"border-width":  in2(b.LogicalLength),
				"border-radius": in2(b.LogicalLength),
				"opacity":       in2(b.Float32),
			}),
			DeprecatedAliases: map[string]string{"color": "background"},
		},
		{
			Name: "Text",
			Properties: geometry(textProps(map[string]BuiltinProperty{
				"wrap":     in2(wrap),
				"overflow": in2(overflow),
			})),
		},
		{
			Name: "TextInput",
			Properties: geometry(textProps(map[string]BuiltinProperty{
				"has-focus":       out(b.Bool),
				"cursor-position": out(b.Int32),
				"enabled":         in2(b.Bool),
				"accepted":        cb(),
				"edited":          cb(),
			})),
			MemberFunctions: map[string]MemberFunction{
				"focus": {Func: exprtree.FuncSetFocusItem, Type: in.Function([]types.TypeID{b.ElementReference}, b.Void)},
			},
		},
		{
			Name: "Image",
			Properties: geometry(map[string]BuiltinProperty{
				"source":    in2(b.Image),
				"image-fit": in2(fit),
				"colorize":  in2(b.Brush),
			}),
		},
		{
			Name: "TouchArea",
			Properties: geometry(map[string]BuiltinProperty{
				"enabled":   in2(b.Bool),
				"pressed":   out(b.Bool),
				"has-hover": out(b.Bool),
				"mouse-x":   out(b.LogicalLength),
				"mouse-y":   out(b.LogicalLength),
				"clicked":   cb(),
			}),
		},
		{
			Name: "Flickable",
			Properties: geometry(map[string]BuiltinProperty{
				"viewport-x":      in2(b.LogicalLength),
				"viewport-y":      in2(b.LogicalLength),
				"viewport-width":  in2(b.LogicalLength),
				"viewport-height": in2(b.LogicalLength),
				"interactive":     in2(b.Bool),
			}),
		},
		{
			Name: "Window",
			Properties: geometry(map[string]BuiltinProperty{
				"title":             in2(b.String),
				"background":        in2(b.Brush),
				"default-font-size": in2(b.LogicalLength),
			}),
			DeprecatedAliases: map[string]string{"color": "background"},
		},
		layout("HorizontalLayout"),
		layout("VerticalLayout"),
		layout("GridLayout"),
	}
}
