// Package testkit holds helpers shared by package tests: syntax tree
// builders, a post-resolution invariant checker and a small constant
// evaluator.
package testkit

import (
	"strings"

	"github.com/Be-ing/sixtyfps/internal/syntax"
)

// Expr wraps a construct in an Expression node.
func Expr(inner *syntax.Node) *syntax.Node {
	return syntax.N(syntax.Expression, syntax.Sub(inner))
}

func literal(kind syntax.TokenKind, text string) *syntax.Node {
	return syntax.N(syntax.Expression, syntax.Tok(kind, text))
}

func Num(text string) *syntax.Node   { return literal(syntax.NumberLiteral, text) }
func Str(text string) *syntax.Node   { return literal(syntax.StringLiteral, `"`+text+`"`) }
func Color(text string) *syntax.Node { return literal(syntax.ColorLiteral, text) }

// Name builds a qualified name expression from "a.b.c".
func Name(path string) *syntax.Node {
	var kids []syntax.Child
	for _, part := range strings.Split(path, ".") {
		kids = append(kids, syntax.Tok(syntax.Identifier, part))
	}
	return Expr(syntax.N(syntax.QualifiedName, kids...))
}

func Call(callee *syntax.Node, args ...*syntax.Node) *syntax.Node {
	kids := []syntax.Child{syntax.Sub(callee)}
	for _, a := range args {
		kids = append(kids, syntax.Sub(a))
	}
	return Expr(syntax.N(syntax.FunctionCallExpression, kids...))
}

func Member(base *syntax.Node, name string) *syntax.Node {
	return Expr(syntax.N(syntax.MemberAccess, syntax.Sub(base), syntax.Tok(syntax.Identifier, name)))
}

func Index(array, index *syntax.Node) *syntax.Node {
	return Expr(syntax.N(syntax.IndexExpression, syntax.Sub(array), syntax.Sub(index)))
}

// Bin builds lhs <op> rhs; op is the operator text.
func Bin(lhs *syntax.Node, op string, rhs *syntax.Node) *syntax.Node {
	return Expr(syntax.N(syntax.BinaryExpression, syntax.Sub(lhs), opToken(op), syntax.Sub(rhs)))
}

func Assign(lhs *syntax.Node, op string, rhs *syntax.Node) *syntax.Node {
	return Expr(syntax.N(syntax.SelfAssignment, syntax.Sub(lhs), opToken(op), syntax.Sub(rhs)))
}

func Unary(op string, sub *syntax.Node) *syntax.Node {
	return Expr(syntax.N(syntax.UnaryOpExpression, opToken(op), syntax.Sub(sub)))
}

func Cond(c, t, f *syntax.Node) *syntax.Node {
	return Expr(syntax.N(syntax.ConditionalExpression, syntax.Sub(c), syntax.Sub(t), syntax.Sub(f)))
}

// Field is one `name: value` of an object literal.
type Field struct {
	Name  string
	Value *syntax.Node
}

func Object(fields ...Field) *syntax.Node {
	var kids []syntax.Child
	for _, f := range fields {
		kids = append(kids, syntax.Sub(syntax.N(syntax.ObjectMember, syntax.Tok(syntax.Identifier, f.Name), syntax.Sub(f.Value))))
	}
	return Expr(syntax.N(syntax.ObjectLiteral, kids...))
}

func Array(values ...*syntax.Node) *syntax.Node {
	return Expr(syntax.N(syntax.Array, subs(values)...))
}

func Template(parts ...*syntax.Node) *syntax.Node {
	return Expr(syntax.N(syntax.StringTemplate, subs(parts)...))
}

func ImageURL(path string) *syntax.Node {
	return Expr(syntax.N(syntax.AtImageUrl, syntax.Tok(syntax.StringLiteral, `"`+path+`"`)))
}

// Gradient builds @linear-gradient from expressions and commas; a nil
// entry stands for a comma.
func Gradient(parts ...*syntax.Node) *syntax.Node {
	var kids []syntax.Child
	for _, p := range parts {
		if p == nil {
			kids = append(kids, syntax.Tok(syntax.Comma, ","))
			continue
		}
		kids = append(kids, syntax.Sub(p))
	}
	return Expr(syntax.N(syntax.AtLinearGradient, kids...))
}

// Block builds a code block of statements.
func Block(stmts ...*syntax.Node) *syntax.Node {
	return syntax.N(syntax.CodeBlock, subs(stmts)...)
}

func Return(e *syntax.Node) *syntax.Node {
	if e == nil {
		return syntax.N(syntax.ReturnStatement)
	}
	return syntax.N(syntax.ReturnStatement, syntax.Sub(e))
}

// Binding wraps an expression or code block as the right side of `prop: ...`.
func Binding(e *syntax.Node) *syntax.Node {
	return syntax.N(syntax.BindingExpression, syntax.Sub(e))
}

func TwoWay(target *syntax.Node) *syntax.Node {
	return syntax.N(syntax.TwoWayBinding, syntax.Sub(target))
}

// Handler builds `cb(args...) => { block }`.
func Handler(block *syntax.Node, args ...string) *syntax.Node {
	var kids []syntax.Child
	for _, a := range args {
		kids = append(kids, syntax.Sub(syntax.N(syntax.DeclaredIdentifier, syntax.Tok(syntax.Identifier, a))))
	}
	kids = append(kids, syntax.Sub(block))
	return syntax.N(syntax.CallbackConnection, kids...)
}

func subs(nodes []*syntax.Node) []syntax.Child {
	out := make([]syntax.Child, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, syntax.Sub(n))
	}
	return out
}

var opTokens = map[string]syntax.TokenKind{
	"+": syntax.Plus, "-": syntax.Minus, "*": syntax.Star, "/": syntax.Div,
	"<=": syntax.LessEqual, ">=": syntax.GreaterEqual, "<": syntax.LAngle, ">": syntax.RAngle,
	"==": syntax.EqualEqual, "!=": syntax.NotEqual, "&&": syntax.AndAnd, "||": syntax.OrOr,
	"+=": syntax.PlusEqual, "-=": syntax.MinusEqual, "*=": syntax.StarEqual, "/=": syntax.DivEqual,
	"=": syntax.Equal, "!": syntax.Bang,
}

func opToken(op string) syntax.Child {
	kind, ok := opTokens[op]
	if !ok {
		panic("testkit: unknown operator " + op)
	}
	return syntax.Tok(kind, op)
}
