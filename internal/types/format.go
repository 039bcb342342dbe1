package types

import (
	"strings"
)

// String renders id the way diagnostics print types.
func (in *Interner) String(id TypeID) string {
	t, ok := in.Lookup(id)
	if !ok {
		return "<error>"
	}
	switch t.Kind {
	case KindInvalid:
		return "<error>"
	case KindInferredProperty, KindInferredCallback:
		return "?"
	case KindElementReference:
		return "element ref"
	case KindUnitProduct:
		return in.units[t.Payload].String()
	case KindArray:
		return "[" + in.String(t.Elem) + "]"
	case KindEnumeration:
		return in.enums[t.Payload].Name
	case KindStruct:
		info := in.structs[t.Payload]
		if info.Name != "" {
			return info.Name
		}
		var b strings.Builder
		b.WriteString("{ ")
		for _, f := range info.Fields {
			b.WriteString(f.Name)
			b.WriteString(": ")
			b.WriteString(in.String(f.Type))
			b.WriteString(", ")
		}
		b.WriteString("}")
		return b.String()
	case KindCallback, KindFunction:
		info := in.fns[t.Payload]
		var b strings.Builder
		b.WriteString(t.Kind.String())
		b.WriteByte('(')
		for i, a := range info.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(in.String(a))
		}
		b.WriteByte(')')
		if in.Kind(info.Return) != KindVoid && info.Return != Invalid {
			b.WriteString(" -> ")
			b.WriteString(in.String(info.Return))
		}
		return b.String()
	}
	return t.Kind.String()
}
