package types

import (
	"slices"
	"strconv"
	"strings"
)

// Unit is the suffix of a number literal.
type Unit uint8

const (
	UnitNone Unit = iota
	UnitPercent
	UnitPhx
	UnitPx
	UnitCm
	UnitMm
	UnitIn
	UnitPt
	UnitS
	UnitMs
	UnitDeg
	UnitGrad
	UnitTurn
	UnitRad
)

var unitSuffix = [...]string{
	UnitNone:    "",
	UnitPercent: "%",
	UnitPhx:     "phx",
	UnitPx:      "px",
	UnitCm:      "cm",
	UnitMm:      "mm",
	UnitIn:      "in",
	UnitPt:      "pt",
	UnitS:       "s",
	UnitMs:      "ms",
	UnitDeg:     "deg",
	UnitGrad:    "grad",
	UnitTurn:    "turn",
	UnitRad:     "rad",
}

func (u Unit) String() string {
	if int(u) < len(unitSuffix) {
		return unitSuffix[u]
	}
	return "?"
}

// ParseUnit maps a literal suffix to its unit.
func ParseUnit(suffix string) (Unit, bool) {
	for i, s := range unitSuffix {
		if s == suffix {
			return Unit(i), true
		}
	}
	return UnitNone, false
}

// Kind returns the kind of a literal carrying this unit.
func (u Unit) Kind() Kind {
	switch u {
	case UnitPercent:
		return KindPercent
	case UnitPhx:
		return KindPhysicalLength
	case UnitPx, UnitCm, UnitMm, UnitIn, UnitPt:
		return KindLogicalLength
	case UnitS, UnitMs:
		return KindDuration
	case UnitDeg, UnitGrad, UnitTurn, UnitRad:
		return KindAngle
	default:
		return KindFloat32
	}
}

// UnitType returns the TypeID of a literal carrying this unit.
func (in *Interner) UnitType(u Unit) TypeID {
	return in.Intern(Type{Kind: u.Kind()})
}

// DefaultUnit returns the canonical unit of a unit-carrying type.
func (in *Interner) DefaultUnit(id TypeID) (Unit, bool) {
	switch in.Kind(id) {
	case KindLogicalLength:
		return UnitPx, true
	case KindPhysicalLength:
		return UnitPhx, true
	case KindDuration:
		return UnitMs, true
	case KindAngle:
		return UnitDeg, true
	case KindPercent:
		return UnitPercent, true
	}
	return UnitNone, false
}

// UnitPower is one factor of a unit product.
type UnitPower struct {
	Unit  Unit
	Power int8
}

// UnitProduct is a normalized product of canonical units: sorted by unit,
// no zero powers. The empty product is dimensionless.
type UnitProduct []UnitPower

func (p UnitProduct) normalize() UnitProduct {
	out := make(UnitProduct, 0, len(p))
	for _, f := range p {
		if i := slices.IndexFunc(out, func(o UnitPower) bool { return o.Unit == f.Unit }); i >= 0 {
			out[i].Power += f.Power
			continue
		}
		out = append(out, f)
	}
	out = slices.DeleteFunc(out, func(f UnitPower) bool { return f.Power == 0 })
	slices.SortFunc(out, func(a, b UnitPower) int { return int(a.Unit) - int(b.Unit) })
	return out
}

// Mul multiplies two products.
func (p UnitProduct) Mul(o UnitProduct) UnitProduct {
	return append(slices.Clone(p), o...).normalize()
}

// Div divides p by o.
func (p UnitProduct) Div(o UnitProduct) UnitProduct {
	out := slices.Clone(p)
	for _, f := range o {
		out = append(out, UnitPower{Unit: f.Unit, Power: -f.Power})
	}
	return out.normalize()
}

func (p UnitProduct) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, f := range p {
		if i > 0 {
			b.WriteByte('*')
		}
		b.WriteString(f.Unit.String())
		if f.Power != 1 {
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(int(f.Power)))
		}
	}
	b.WriteByte(')')
	return b.String()
}

// AsUnitProduct returns the unit product carried by id. Plain numbers are
// the empty product; non-numeric types report false.
func (in *Interner) AsUnitProduct(id TypeID) (UnitProduct, bool) {
	t, ok := in.Lookup(id)
	if !ok {
		return nil, false
	}
	switch t.Kind {
	case KindUnitProduct:
		return in.units[t.Payload], true
	case KindFloat32, KindInt32:
		return UnitProduct{}, true
	}
	if u, ok := in.DefaultUnit(id); ok {
		return UnitProduct{{Unit: u, Power: 1}}, true
	}
	return nil, false
}

// FromUnitProduct maps a product back to the simplest type: the empty
// product is Float32, a single unit with power 1 is that unit's type,
// everything else is a UnitProduct type.
func (in *Interner) FromUnitProduct(p UnitProduct) TypeID {
	p = p.normalize()
	switch {
	case len(p) == 0:
		return in.builtins.Float32
	case len(p) == 1 && p[0].Power == 1:
		return in.UnitType(p[0].Unit)
	}
	key := "units" + p.String()
	if id, ok := in.shapes[key]; ok {
		return id
	}
	in.units = append(in.units, p)
	slot := slotOf(len(in.units), "unit product")
	return in.internShape(key, Type{Kind: KindUnitProduct, Payload: slot})
}

// HasUnit reports whether id carries a unit (default unit or unit product).
func (in *Interner) HasUnit(id TypeID) bool {
	if in.Kind(id) == KindUnitProduct {
		return true
	}
	_, ok := in.DefaultUnit(id)
	return ok
}
