package lookup

import (
	"github.com/Be-ing/sixtyfps/internal/exprtree"
	"github.com/Be-ing/sixtyfps/internal/types"
)

type ResultKind uint8

const (
	ResultExpression ResultKind = iota
	ResultEnumeration
	ResultNamespace
)

// Namespace is a builtin namespace such as Colors.
type Namespace uint8

const (
	NamespaceColors Namespace = iota
	NamespaceMath
)

func (n Namespace) String() string {
	if n == NamespaceMath {
		return "Math"
	}
	return "Colors"
}

// Result is what a name resolves to.
type Result struct {
	Kind      ResultKind
	Expr      *exprtree.Expr
	Enum      types.TypeID
	Namespace Namespace
	// Canonical is set when the name was a deprecated alias.
	Canonical string
}

func exprResult(e *exprtree.Expr) Result {
	return Result{Kind: ResultExpression, Expr: e}
}
