package syntax

import "github.com/Be-ing/sixtyfps/internal/source"

// N builds a node whose span covers all its children.
func N(kind NodeKind, children ...Child) *Node {
	n := &Node{Kind: kind, Children: children}
	first := true
	for _, c := range children {
		var sp source.Span
		switch {
		case c.Node != nil:
			sp = c.Node.Span
		case c.Token != nil:
			sp = c.Token.Span
		default:
			continue
		}
		if first {
			n.Span = sp
			first = false
			continue
		}
		n.Span = n.Span.Cover(sp)
	}
	return n
}

// Sub wraps a node as a Child.
func Sub(n *Node) Child {
	return Child{Node: n}
}

// Tok builds a token child without position.
func Tok(kind TokenKind, text string) Child {
	return Child{Token: &Token{Kind: kind, Text: text}}
}

// TokAt builds a token child at the given span.
func TokAt(kind TokenKind, text string, sp source.Span) Child {
	return Child{Token: &Token{Kind: kind, Text: text, Span: sp}}
}
