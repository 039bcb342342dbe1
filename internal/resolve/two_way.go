package resolve

import (
	"github.com/Be-ing/sixtyfps/internal/diag"
	"github.com/Be-ing/sixtyfps/internal/exprtree"
	"github.com/Be-ing/sixtyfps/internal/syntax"
	"github.com/Be-ing/sixtyfps/internal/types"
)

// resolveTwoWay checks `prop <=> other` and returns the reference to
// alias with. A property declared without a type takes the type of the
// one it is bound to.
func (b *builder) resolveTwoWay(node *syntax.Node) (exprtree.NamedReference, bool) {
	sub := node.ChildNode(syntax.Expression)
	var qn *syntax.Node
	if sub != nil {
		qn = sub.ChildNode(syntax.QualifiedName)
	}
	if qn == nil {
		b.errorf(diag.SemaBindingDiscipline, node.Span, "The expression in a two way binding must be a property reference")
		return exprtree.NamedReference{}, false
	}

	e := b.lowerQualifiedName(qn)
	ref, _ := e.Reference()
	declared := b.ctx.PropertyType
	switch e.Kind {
	case exprtree.PropertyReference:
		if b.in.Kind(declared) == types.KindInferredProperty {
			b.inferDecl(e.Type)
		} else if e.Type != declared {
			b.errorf(diag.SemaTypeMismatch, node.Span, "The property does not have the same type as the bound property")
		}
		return ref, true
	case exprtree.CallbackReference:
		if b.in.Kind(declared) == types.KindInferredCallback {
			b.inferDecl(e.Type)
			return ref, true
		}
		if e.Type != declared {
			b.errorf(diag.SemaBindingDiscipline, node.Span, "Cannot bind to a callback")
			return exprtree.NamedReference{}, false
		}
		return ref, true
	case exprtree.Invalid:
		debugAssertHasError(b.ctx.Sink)
		return exprtree.NamedReference{}, false
	}
	b.errorf(diag.SemaBindingDiscipline, node.Span, "The expression in a two way binding must be a property reference")
	return exprtree.NamedReference{}, false
}

// inferDecl gives an untyped declaration on the binding's element its type.
func (b *builder) inferDecl(ty types.TypeID) {
	if ty == types.Invalid {
		return
	}
	elem := b.ctx.Doc.Element(b.ctx.Innermost())
	if elem == nil {
		return
	}
	if d, ok := elem.Decls[b.ctx.PropertyName]; ok {
		d.Type = ty
	}
}
