package types

import "slices"

// FnInfo stores the signature of callbacks and functions.
type FnInfo struct {
	Args   []TypeID
	Return TypeID
}

// Callback interns a callback signature. Callbacks are element members
// that can be connected to handlers and aliased by two-way bindings.
func (in *Interner) Callback(args []TypeID, ret TypeID) TypeID {
	return in.signature(KindCallback, args, ret)
}

// Function interns a function signature (builtins, member functions,
// declared functions).
func (in *Interner) Function(args []TypeID, ret TypeID) TypeID {
	return in.signature(KindFunction, args, ret)
}

func (in *Interner) signature(kind Kind, args []TypeID, ret TypeID) TypeID {
	key := kind.String() + "(" + idsKey(args) + ")" + idsKey([]TypeID{ret})
	if id, ok := in.shapes[key]; ok {
		return id
	}
	in.fns = append(in.fns, FnInfo{Args: slices.Clone(args), Return: ret})
	slot := slotOf(len(in.fns), "fn info")
	return in.internShape(key, Type{Kind: kind, Payload: slot})
}

// FnInfo returns the signature of a callback or function type.
func (in *Interner) FnInfo(id TypeID) (*FnInfo, bool) {
	t, ok := in.Lookup(id)
	if !ok || (t.Kind != KindCallback && t.Kind != KindFunction) || int(t.Payload) >= len(in.fns) {
		return nil, false
	}
	return &in.fns[t.Payload], true
}

// IsCallable reports whether values of id can be called.
func (in *Interner) IsCallable(id TypeID) bool {
	k := in.Kind(id)
	return k == KindCallback || k == KindFunction
}
