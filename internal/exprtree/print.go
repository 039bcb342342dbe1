package exprtree

import (
	"strconv"
	"strings"

	"github.com/Be-ing/sixtyfps/internal/types"
)

// Printer renders expressions as compact s-expressions for tree dumps
// and test assertions.
type Printer struct {
	Types *types.Interner
	// ElementName names elements in references; nil prints "#<id>".
	ElementName func(ElementID) string
	// WithTypes appends ":type" to every node.
	WithTypes bool
}

func (p *Printer) Format(e *Expr) string {
	var b strings.Builder
	p.write(&b, e)
	return b.String()
}

func (p *Printer) element(id ElementID) string {
	if p.ElementName != nil {
		if name := p.ElementName(id); name != "" {
			return name
		}
	}
	return "#" + strconv.FormatUint(uint64(id), 10)
}

func (p *Printer) ref(r NamedReference) string {
	return p.element(r.Element) + "." + r.Name
}

func (p *Printer) list(b *strings.Builder, head string, xs []*Expr) {
	b.WriteByte('(')
	b.WriteString(head)
	for _, x := range xs {
		b.WriteByte(' ')
		p.write(b, x)
	}
	b.WriteByte(')')
}

func (p *Printer) write(b *strings.Builder, e *Expr) {
	if e == nil {
		b.WriteString("<nil>")
		return
	}
	switch d := e.Data.(type) {
	case NumberLiteralData:
		b.WriteString(strconv.FormatFloat(d.Value, 'g', -1, 64))
		b.WriteString(d.Unit.String())
	case StringLiteralData:
		b.WriteString(strconv.Quote(d.Value))
	case BoolLiteralData:
		b.WriteString(strconv.FormatBool(d.Value))
	case CastData:
		b.WriteString("(cast ")
		p.write(b, d.From)
		b.WriteString(" ")
		b.WriteString(p.Types.String(e.Type))
		b.WriteByte(')')
	case ArrayData:
		p.list(b, "array", d.Values)
	case StructData:
		b.WriteString("(struct")
		for _, f := range d.Fields {
			b.WriteString(" ")
			b.WriteString(f.Name)
			b.WriteString("=")
			p.write(b, f.Value)
		}
		b.WriteByte(')')
	case ElementReferenceData:
		b.WriteString("(element ")
		b.WriteString(p.element(d.Element))
		b.WriteByte(')')
	case ReferenceData:
		b.WriteString(p.ref(d.Ref))
	case ParameterReferenceData:
		b.WriteString("(arg ")
		b.WriteString(d.Name)
		b.WriteByte(')')
	case RepeaterData:
		if e.Kind == RepeaterIndexReference {
			b.WriteString("(repeater-index ")
		} else {
			b.WriteString("(model-data ")
		}
		b.WriteString(p.element(d.Element))
		b.WriteByte(')')
	case StructFieldAccessData:
		b.WriteString("(. ")
		p.write(b, d.Base)
		b.WriteString(" ")
		b.WriteString(d.Name)
		b.WriteByte(')')
	case MemberFunctionData:
		p.list(b, "member", []*Expr{d.Base, d.Member})
	case BuiltinFunctionData:
		b.WriteString(d.Func.String())
	case BuiltinMacroData:
		b.WriteString(d.Macro.String())
		b.WriteByte('!')
	case EnumerationValueData:
		b.WriteString(p.Types.String(e.Type))
		b.WriteByte('.')
		b.WriteString(d.Value)
	case BinaryOpData:
		p.list(b, d.Op.String(), []*Expr{d.LHS, d.RHS})
	case UnaryOpData:
		p.list(b, d.Op.String(), []*Expr{d.Sub})
	case SelfAssignmentData:
		head := d.Op.String()
		if d.Op != OpAssign {
			head += "="
		}
		p.list(b, head, []*Expr{d.LHS, d.RHS})
	case FunctionCallData:
		p.list(b, "call", append([]*Expr{d.Function}, d.Args...))
	case ArrayIndexData:
		p.list(b, "index", []*Expr{d.Array, d.Index})
	case ConditionData:
		p.list(b, "if", []*Expr{d.Cond, d.True, d.False})
	case CodeBlockData:
		p.list(b, "block", d.Statements)
	case ReturnStatementData:
		if d.Value == nil {
			b.WriteString("(return)")
		} else {
			p.list(b, "return", []*Expr{d.Value})
		}
	case LinearGradientData:
		b.WriteString("(linear-gradient ")
		p.write(b, d.Angle)
		for _, s := range d.Stops {
			b.WriteString(" (")
			p.write(b, s.Color)
			b.WriteString(" ")
			p.write(b, s.Position)
			b.WriteString(")")
		}
		b.WriteByte(')')
	case ImageReferenceData:
		if d.Kind == ImageNone {
			b.WriteString("(image none)")
		} else {
			b.WriteString("(image ")
			b.WriteString(strconv.Quote(d.Path))
			b.WriteByte(')')
		}
	default:
		if e.Kind == Invalid {
			b.WriteString("<invalid>")
		} else {
			b.WriteString(e.Kind.String())
		}
	}
	if p.WithTypes && e.Kind != Invalid {
		b.WriteByte(':')
		b.WriteString(p.Types.String(e.Type))
	}
}
