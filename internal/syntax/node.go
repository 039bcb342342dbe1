package syntax

import (
	"github.com/Be-ing/sixtyfps/internal/source"
)

type Token struct {
	Kind TokenKind   `msgpack:"k"`
	Text string      `msgpack:"x"`
	Span source.Span `msgpack:"s"`
}

// Child is either a node or a token; exactly one field is set.
type Child struct {
	Node  *Node  `msgpack:"n,omitempty"`
	Token *Token `msgpack:"t,omitempty"`
}

type Node struct {
	Kind     NodeKind    `msgpack:"k"`
	Span     source.Span `msgpack:"s"`
	Children []Child     `msgpack:"c,omitempty"`
}

// ChildNode returns the first child node of the given kind, or nil.
func (n *Node) ChildNode(kind NodeKind) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Node != nil && c.Node.Kind == kind {
			return c.Node
		}
	}
	return nil
}

// ChildNodes returns all child nodes of the given kind in order.
func (n *Node) ChildNodes(kind NodeKind) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Node != nil && c.Node.Kind == kind {
			out = append(out, c.Node)
		}
	}
	return out
}

// ChildToken returns the first child token of the given kind, or nil.
func (n *Node) ChildToken(kind TokenKind) *Token {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Token != nil && c.Token.Kind == kind {
			return c.Token
		}
	}
	return nil
}

// ChildTokens returns all child tokens of the given kind in order.
func (n *Node) ChildTokens(kind TokenKind) []*Token {
	if n == nil {
		return nil
	}
	var out []*Token
	for _, c := range n.Children {
		if c.Token != nil && c.Token.Kind == kind {
			out = append(out, c.Token)
		}
	}
	return out
}

func (n *Node) ChildText(kind TokenKind) (string, bool) {
	if tok := n.ChildToken(kind); tok != nil {
		return tok.Text, true
	}
	return "", false
}

// Expressions is a shortcut for ChildNodes(Expression).
func (n *Node) Expressions() []*Node {
	return n.ChildNodes(Expression)
}

// IdentifierText returns the normalized text of the first Identifier token.
func (n *Node) IdentifierText() (string, bool) {
	text, ok := n.ChildText(Identifier)
	if !ok {
		return "", false
	}
	return NormalizeIdentifier(text), true
}

// FirstOperator returns the first operator token among the children.
func (n *Node) FirstOperator() *Token {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Token != nil && c.Token.Kind.IsOperator() {
			return c.Token
		}
	}
	return nil
}

// Walk visits n and all descendant nodes depth-first, pre-order.
// Returning false from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		if c.Node != nil {
			c.Node.Walk(fn)
		}
	}
}
