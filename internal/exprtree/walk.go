package exprtree

import (
	"slices"
	"strings"
)

func sortFields(fields []StructField) {
	slices.SortFunc(fields, func(a, b StructField) int { return strings.Compare(a.Name, b.Name) })
}

// Children returns the direct sub-expressions of e in evaluation order.
func (e *Expr) Children() []*Expr {
	if e == nil {
		return nil
	}
	switch d := e.Data.(type) {
	case CastData:
		return []*Expr{d.From}
	case ArrayData:
		return d.Values
	case StructData:
		out := make([]*Expr, 0, len(d.Fields))
		for _, f := range d.Fields {
			out = append(out, f.Value)
		}
		return out
	case StructFieldAccessData:
		return []*Expr{d.Base}
	case MemberFunctionData:
		return []*Expr{d.Base, d.Member}
	case BinaryOpData:
		return []*Expr{d.LHS, d.RHS}
	case UnaryOpData:
		return []*Expr{d.Sub}
	case SelfAssignmentData:
		return []*Expr{d.LHS, d.RHS}
	case FunctionCallData:
		return append([]*Expr{d.Function}, d.Args...)
	case ArrayIndexData:
		return []*Expr{d.Array, d.Index}
	case ConditionData:
		return []*Expr{d.Cond, d.True, d.False}
	case CodeBlockData:
		return d.Statements
	case ReturnStatementData:
		if d.Value == nil {
			return nil
		}
		return []*Expr{d.Value}
	case LinearGradientData:
		out := []*Expr{d.Angle}
		for _, s := range d.Stops {
			out = append(out, s.Color, s.Position)
		}
		return out
	}
	return nil
}

// Visit walks e depth-first, pre-order. Returning false skips children.
func Visit(e *Expr, fn func(*Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	for _, c := range e.Children() {
		Visit(c, fn)
	}
}

// ContainsInvalid reports whether any node in e is the poison value.
func ContainsInvalid(e *Expr) bool {
	found := false
	Visit(e, func(x *Expr) bool {
		if x.Kind == Invalid {
			found = true
		}
		return !found
	})
	return found
}

// Clone returns a deep copy of e. Nodes used in several places of a
// synthesized tree are cloned so that every subtree has one owner.
func (e *Expr) Clone() *Expr {
	if e == nil {
		return nil
	}
	out := *e
	switch d := e.Data.(type) {
	case CastData:
		out.Data = CastData{From: d.From.Clone()}
	case ArrayData:
		out.Data = ArrayData{ElemType: d.ElemType, Values: cloneAll(d.Values)}
	case StructData:
		fields := make([]StructField, len(d.Fields))
		for i, f := range d.Fields {
			fields[i] = StructField{Name: f.Name, Value: f.Value.Clone()}
		}
		out.Data = StructData{Fields: fields}
	case StructFieldAccessData:
		out.Data = StructFieldAccessData{Base: d.Base.Clone(), Name: d.Name}
	case MemberFunctionData:
		out.Data = MemberFunctionData{Base: d.Base.Clone(), Member: d.Member.Clone()}
	case BinaryOpData:
		out.Data = BinaryOpData{Op: d.Op, LHS: d.LHS.Clone(), RHS: d.RHS.Clone()}
	case UnaryOpData:
		out.Data = UnaryOpData{Op: d.Op, Sub: d.Sub.Clone()}
	case SelfAssignmentData:
		out.Data = SelfAssignmentData{Op: d.Op, LHS: d.LHS.Clone(), RHS: d.RHS.Clone()}
	case FunctionCallData:
		out.Data = FunctionCallData{Function: d.Function.Clone(), Args: cloneAll(d.Args)}
	case ArrayIndexData:
		out.Data = ArrayIndexData{Array: d.Array.Clone(), Index: d.Index.Clone()}
	case ConditionData:
		out.Data = ConditionData{Cond: d.Cond.Clone(), True: d.True.Clone(), False: d.False.Clone()}
	case CodeBlockData:
		out.Data = CodeBlockData{Statements: cloneAll(d.Statements)}
	case ReturnStatementData:
		out.Data = ReturnStatementData{Value: d.Value.Clone()}
	case LinearGradientData:
		stops := make([]GradientStop, len(d.Stops))
		for i, s := range d.Stops {
			stops[i] = GradientStop{Color: s.Color.Clone(), Position: s.Position.Clone()}
		}
		out.Data = LinearGradientData{Angle: d.Angle.Clone(), Stops: stops}
	}
	return &out
}

func cloneAll(list []*Expr) []*Expr {
	if list == nil {
		return nil
	}
	out := make([]*Expr, len(list))
	for i, e := range list {
		out[i] = e.Clone()
	}
	return out
}
