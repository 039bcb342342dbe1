package resolve

import "github.com/Be-ing/sixtyfps/internal/exprtree"

// componentScope lists the elements whose properties are visible
// unqualified, outer to inner: the component root and every repeated
// element on the way down.
type componentScope []exprtree.ElementID

// push returns a new scope with id as the innermost level. The receiver is
// never modified so sibling subtrees do not see each other's levels.
func (s componentScope) push(id exprtree.ElementID) componentScope {
	if len(s) > 0 && s[len(s)-1] == id {
		return s.clone()
	}
	out := make(componentScope, len(s), len(s)+1)
	copy(out, s)
	return append(out, id)
}

func (s componentScope) clone() componentScope {
	out := make(componentScope, len(s))
	copy(out, s)
	return out
}
