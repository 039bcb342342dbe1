package syntax

import (
	"testing"

	"github.com/Be-ing/sixtyfps/internal/source"
)

func TestNormalizeIdentifier(t *testing.T) {
	cases := []struct{ in, want string }{
		{"foo_bar", "foo-bar"},
		{"foo-bar", "foo-bar"},
		{"_x_", "-x-"},
		{"café", "café"},
	}
	for _, tc := range cases {
		if got := NormalizeIdentifier(tc.in); got != tc.want {
			t.Errorf("NormalizeIdentifier(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAccessors(t *testing.T) {
	qn := N(QualifiedName,
		TokAt(Identifier, "root", source.Span{Start: 0, End: 4}),
		Tok(Dot, "."),
		TokAt(Identifier, "my_prop", source.Span{Start: 5, End: 12}),
	)
	expr := N(Expression, Sub(qn))
	if expr.ChildNode(QualifiedName) != qn {
		t.Fatalf("ChildNode did not find qualified name")
	}
	ids := qn.ChildTokens(Identifier)
	if len(ids) != 2 || ids[1].Text != "my_prop" {
		t.Fatalf("unexpected identifiers: %+v", ids)
	}
	if text, ok := qn.IdentifierText(); !ok || text != "root" {
		t.Fatalf("IdentifierText = %q, %v", text, ok)
	}
	if expr.Span != (source.Span{Start: 0, End: 12}) {
		t.Fatalf("span not covered: %v", expr.Span)
	}
	if expr.ChildNode(Array) != nil {
		t.Fatalf("unexpected child")
	}
}

func TestCodecRoundTrip(t *testing.T) {
	tree := N(BinaryExpression,
		Sub(N(Expression, TokAt(NumberLiteral, "1px", source.Span{Start: 0, End: 3}))),
		TokAt(Plus, "+", source.Span{Start: 4, End: 5}),
		Sub(N(Expression, TokAt(StringLiteral, `"a"`, source.Span{Start: 6, End: 9}))),
	)
	data, err := Marshal(tree)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	back, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Kind != BinaryExpression || len(back.Children) != 3 {
		t.Fatalf("unexpected tree: %+v", back)
	}
	if op := back.FirstOperator(); op == nil || op.Kind != Plus {
		t.Fatalf("operator lost: %+v", op)
	}
	if lit, _ := back.Expressions()[1].ChildText(StringLiteral); lit != `"a"` {
		t.Fatalf("literal lost: %q", lit)
	}
}

func TestValidateRejectsAmbiguousChild(t *testing.T) {
	bad := &Node{Kind: Expression, Children: []Child{{}}}
	if err := Validate(bad); err == nil {
		t.Fatalf("expected error for empty child")
	}
}
