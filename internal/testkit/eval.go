package testkit

import "github.com/Be-ing/sixtyfps/internal/exprtree"

// EvalConst folds a numeric expression built only from literals, casts
// and arithmetic. Units are ignored. ok is false for anything else.
func EvalConst(e *exprtree.Expr) (v float64, ok bool) {
	if e == nil {
		return 0, false
	}
	switch d := e.Data.(type) {
	case exprtree.NumberLiteralData:
		return d.Value, true
	case exprtree.CastData:
		return EvalConst(d.From)
	case exprtree.UnaryOpData:
		x, ok := EvalConst(d.Sub)
		if !ok {
			return 0, false
		}
		switch d.Op {
		case exprtree.OpSub:
			return -x, true
		case exprtree.OpAdd:
			return x, true
		}
	case exprtree.BinaryOpData:
		l, lok := EvalConst(d.LHS)
		r, rok := EvalConst(d.RHS)
		if !lok || !rok {
			return 0, false
		}
		switch d.Op {
		case exprtree.OpAdd:
			return l + r, true
		case exprtree.OpSub:
			return l - r, true
		case exprtree.OpMul:
			return l * r, true
		case exprtree.OpDiv:
			if r == 0 {
				return 0, false
			}
			return l / r, true
		}
	}
	return 0, false
}
