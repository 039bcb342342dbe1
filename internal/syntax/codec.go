package syntax

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Marshal encodes a tree with msgpack.
func Marshal(n *Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.UseCompactInts(true)
	if err := enc.Encode(n); err != nil {
		return nil, fmt.Errorf("encode syntax tree: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a tree previously produced by Marshal and checks its shape.
func Unmarshal(data []byte) (*Node, error) {
	var n Node
	if err := msgpack.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("decode syntax tree: %w", err)
	}
	if err := Validate(&n); err != nil {
		return nil, err
	}
	return &n, nil
}

// Validate checks that every child carries exactly one of node/token and
// that kinds are in range.
func Validate(n *Node) error {
	var err error
	n.Walk(func(node *Node) bool {
		if err != nil {
			return false
		}
		if node.Kind == NodeInvalid || int(node.Kind) >= len(nodeKindNames) {
			err = fmt.Errorf("syntax node at %s: unknown kind %d", node.Span, node.Kind)
			return false
		}
		for i, c := range node.Children {
			if (c.Node == nil) == (c.Token == nil) {
				err = fmt.Errorf("%s at %s: child %d must be either a node or a token", node.Kind, node.Span, i)
				return false
			}
			if c.Token != nil && (c.Token.Kind == TokenInvalid || int(c.Token.Kind) >= len(tokenKindNames)) {
				err = fmt.Errorf("%s at %s: token %q has unknown kind %d", node.Kind, node.Span, c.Token.Text, c.Token.Kind)
				return false
			}
		}
		return true
	})
	return err
}
