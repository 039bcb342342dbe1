package resolve

import (
	"github.com/Be-ing/sixtyfps/internal/diag"
	"github.com/Be-ing/sixtyfps/internal/exprtree"
	"github.com/Be-ing/sixtyfps/internal/syntax"
	"github.com/Be-ing/sixtyfps/internal/types"
)

type stopState uint8

const (
	stopEmpty stopState = iota
	stopColor
	stopFinished
)

// lowerLinearGradient lowers @linear-gradient(angle, c1 p1, c2, c3 p3).
// Stops without a position get one: the first is 0, the last is 1, and
// the ones in between are spread evenly between their positioned
// neighbours.
func (b *builder) lowerLinearGradient(node *syntax.Node) *exprtree.Expr {
	var subs []syntax.Child
	for _, c := range node.Children {
		if (c.Node != nil && c.Node.Kind == syntax.Expression) || (c.Token != nil && c.Token.Kind == syntax.Comma) {
			subs = append(subs, c)
		}
	}
	if len(subs) == 0 || subs[0].Node == nil {
		return b.invalidf(diag.SemaMalformedConstruct, node.Span, "Expected angle expression")
	}
	angleNode := subs[0].Node
	subs = subs[1:]
	if len(subs) > 0 {
		if subs[0].Token == nil {
			return b.invalidf(diag.SemaMalformedConstruct, node.Span, "Angle expression must be an angle followed by a comma")
		}
		subs = subs[1:]
	}
	angle := b.convert(b.lowerExpression(angleNode), b.in.Builtins().Angle, angleNode.Span)

	bt := b.in.Builtins()
	var stops []exprtree.GradientStop
	state := stopEmpty
	var color *exprtree.Expr
loop:
	for _, c := range subs {
		if c.Token != nil {
			switch state {
			case stopEmpty:
				b.errorf(diag.SemaMalformedConstruct, c.Token.Span, "Expected expression")
				break loop
			case stopColor:
				var pos *exprtree.Expr
				if len(stops) == 0 {
					pos = exprtree.NewNumber(b.in, 0, types.UnitNone, c.Token.Span)
				}
				stops = append(stops, exprtree.GradientStop{Color: color, Position: pos})
			}
			state = stopEmpty
			continue
		}

		// color names resolve against a color-typed context
		saved := b.ctx.PropertyType
		b.ctx.PropertyType = bt.Color
		e := b.lowerExpression(c.Node)
		b.ctx.PropertyType = saved

		switch state {
		case stopEmpty:
			color = b.convert(e, bt.Color, c.Node.Span)
			state = stopColor
		case stopFinished:
			b.errorf(diag.SemaMalformedConstruct, c.Node.Span, "Expected comma")
			break loop
		case stopColor:
			stops = append(stops, exprtree.GradientStop{Color: color, Position: b.convert(e, bt.Float32, c.Node.Span)})
			state = stopFinished
		}
	}
	switch state {
	case stopColor:
		stops = append(stops, exprtree.GradientStop{Color: color, Position: exprtree.NewNumber(b.in, 1, types.UnitNone, node.Span)})
	case stopEmpty:
		if n := len(stops); n > 0 && stops[n-1].Position == nil {
			stops[n-1].Position = exprtree.NewNumber(b.in, 1, types.UnitNone, node.Span)
		}
	}
	return b.gradient(angle, fillStopPositions(b.in, stops), node)
}

func (b *builder) gradient(angle *exprtree.Expr, stops []exprtree.GradientStop, node *syntax.Node) *exprtree.Expr {
	return &exprtree.Expr{
		Kind: exprtree.LinearGradient,
		Type: b.in.Builtins().Brush,
		Span: node.Span,
		Data: exprtree.LinearGradientData{Angle: angle, Stops: stops},
	}
}

// fillStopPositions returns a copy of stops where every run of missing
// positions between two positioned stops is interpolated:
// pos[i] = begin + (i+1) * (end - begin) / (n+1) for a run of n stops.
// A run with no positioned stop after it keeps its missing positions.
func fillStopPositions(in *types.Interner, stops []exprtree.GradientStop) []exprtree.GradientStop {
	out := make([]exprtree.GradientStop, len(stops))
	copy(out, stops)
	f32 := in.Builtins().Float32
	for start := 0; start < len(out); {
		if out[start].Position != nil {
			start++
			continue
		}
		end := start
		for end < len(out) && out[end].Position == nil {
			end++
		}
		if start == 0 || end == len(out) {
			// the first stop always has 0; an open run at the tail stays
			// unpositioned and poisons the gradient
			for i := start; i < end; i++ {
				out[i].Position = exprtree.NewInvalid(out[i].Color.Span)
			}
			start = end
			continue
		}
		begin, last := out[start-1].Position, out[end].Position
		n := end - start
		for i := 0; i < n; i++ {
			sp := out[start+i].Color.Span
			// begin + (i+1) * (end - begin) / (n+1)
			diff := exprtree.NewBinary(exprtree.OpSub, last.Clone(), begin.Clone(), f32)
			scaled := exprtree.NewBinary(exprtree.OpMul, exprtree.NewNumber(in, float64(i+1), types.UnitNone, sp), diff, f32)
			step := exprtree.NewBinary(exprtree.OpDiv, scaled, exprtree.NewNumber(in, float64(n+1), types.UnitNone, sp), f32)
			out[start+i].Position = exprtree.NewBinary(exprtree.OpAdd, begin.Clone(), step, f32)
		}
		start = end
	}
	return out
}
