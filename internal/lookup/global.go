package lookup

import (
	"slices"

	"github.com/Be-ing/sixtyfps/internal/exprtree"
	"github.com/Be-ing/sixtyfps/internal/objtree"
	"github.com/Be-ing/sixtyfps/internal/source"
	"github.com/Be-ing/sixtyfps/internal/types"
)

// Global resolves an unqualified, normalized name. The order is:
// handler arguments, special ids, in-scope elements innermost first,
// element ids of the enclosing components, globals and enumerations,
// names implied by the expected type, builtin functions and macros,
// builtin namespaces.
func Global(ctx *Ctx, name string, sp source.Span) (Result, bool) {
	for _, step := range []func(*Ctx, string, source.Span) (Result, bool){
		lookupArgument,
		lookupSpecialID,
		lookupInScope,
		lookupElementID,
		lookupRegistry,
		lookupExpectedType,
		lookupBuiltin,
		lookupNamespace,
	} {
		if r, ok := step(ctx, name, sp); ok {
			return r, true
		}
	}
	return Result{}, false
}

func lookupArgument(ctx *Ctx, name string, sp source.Span) (Result, bool) {
	i := slices.Index(ctx.Arguments, name)
	if i < 0 {
		return Result{}, false
	}
	return exprResult(&exprtree.Expr{
		Kind: exprtree.FunctionParameterReference,
		Type: ctx.ArgumentType(i),
		Span: sp,
		Data: exprtree.ParameterReferenceData{Index: i, Name: name},
	}), true
}

func lookupSpecialID(ctx *Ctx, name string, sp source.Span) (Result, bool) {
	in := ctx.Types()
	switch name {
	case "self":
		if id := ctx.Innermost(); id.IsValid() {
			return exprResult(exprtree.NewElementReference(in, id, sp)), true
		}
	case "parent":
		if e := ctx.Doc.Element(ctx.Innermost()); e != nil && e.Parent.IsValid() {
			return exprResult(exprtree.NewElementReference(in, e.Parent, sp)), true
		}
	case "root":
		if len(ctx.Scope) > 0 {
			if e := ctx.Doc.Element(ctx.Scope[0]); e != nil && e.Component != nil {
				return exprResult(exprtree.NewElementReference(in, e.Component.Root, sp)), true
			}
		}
	case "true":
		return exprResult(exprtree.NewBool(in, true, sp)), true
	case "false":
		return exprResult(exprtree.NewBool(in, false, sp)), true
	}
	return Result{}, false
}

func lookupInScope(ctx *Ctx, name string, sp source.Span) (Result, bool) {
	in := ctx.Types()
	for i := len(ctx.Scope) - 1; i >= 0; i-- {
		id := ctx.Scope[i]
		e := ctx.Doc.Element(id)
		if e == nil {
			continue
		}
		if rep := e.Repeated; rep != nil && !rep.Conditional {
			switch name {
			case rep.IndexID:
				return exprResult(&exprtree.Expr{
					Kind: exprtree.RepeaterIndexReference,
					Type: in.Builtins().Int32,
					Span: sp,
					Data: exprtree.RepeaterData{Element: id},
				}), true
			case rep.ModelDataID:
				return exprResult(&exprtree.Expr{
					Kind: exprtree.RepeaterModelReference,
					Type: ModelDataType(in, rep),
					Span: sp,
					Data: exprtree.RepeaterData{Element: id},
				}), true
			}
		}
		if p := e.LookupProperty(name); p.Found() {
			r := exprResult(PropertyExpr(ctx, id, p, sp))
			if p.Deprecated(name) {
				r.Canonical = p.ResolvedName
			}
			return r, true
		}
		if e.Name == name {
			return exprResult(exprtree.NewElementReference(in, id, sp)), true
		}
	}
	return Result{}, false
}

func lookupElementID(ctx *Ctx, name string, sp source.Span) (Result, bool) {
	var seen []*objtree.Component
	for i := len(ctx.Scope) - 1; i >= 0; i-- {
		e := ctx.Doc.Element(ctx.Scope[i])
		if e == nil || e.Component == nil || slices.Contains(seen, e.Component) {
			continue
		}
		seen = append(seen, e.Component)
		if id, ok := e.Component.FindByID(name); ok {
			return exprResult(exprtree.NewElementReference(ctx.Types(), id, sp)), true
		}
	}
	return Result{}, false
}

func lookupRegistry(ctx *Ctx, name string, sp source.Span) (Result, bool) {
	if g, ok := ctx.Registry.LookupGlobal(name); ok {
		return exprResult(exprtree.NewElementReference(ctx.Types(), g.Root, sp)), true
	}
	if enum, ok := ctx.Registry.LookupEnum(name); ok {
		return Result{Kind: ResultEnumeration, Enum: enum}, true
	}
	return Result{}, false
}

func lookupExpectedType(ctx *Ctx, name string, sp source.Span) (Result, bool) {
	in := ctx.Types()
	switch in.Kind(ctx.PropertyType) {
	case types.KindEnumeration:
		if e, ok := EnumValue(in, ctx.PropertyType, name, sp); ok {
			return exprResult(e), true
		}
	case types.KindColor, types.KindBrush:
		if argb, ok := ColorByName(name); ok {
			return exprResult(exprtree.NewColor(in, argb, sp)), true
		}
	}
	return Result{}, false
}

func lookupBuiltin(ctx *Ctx, name string, sp source.Span) (Result, bool) {
	if m, ok := builtinMacros[name]; ok {
		return exprResult(builtinMacroRef(ctx.Types(), m, sp)), true
	}
	if f, ok := builtinFunctions[name]; ok {
		return exprResult(builtinFunctionRef(ctx.Types(), f, sp)), true
	}
	return Result{}, false
}

func lookupNamespace(_ *Ctx, name string, _ source.Span) (Result, bool) {
	switch name {
	case "Colors":
		return Result{Kind: ResultNamespace, Namespace: NamespaceColors}, true
	case "Math":
		return Result{Kind: ResultNamespace, Namespace: NamespaceMath}, true
	}
	return Result{}, false
}

// ModelDataType is the per-row data type of a repeater model.
func ModelDataType(in *types.Interner, rep *objtree.RepeatedInfo) types.TypeID {
	if rep == nil || rep.Model == nil || rep.Model.Expr == nil {
		return types.Invalid
	}
	ty := rep.Model.Expr.Type
	switch in.Kind(ty) {
	case types.KindArray:
		elem, _ := in.ArrayElem(ty)
		return elem
	case types.KindInt32, types.KindFloat32:
		return in.Builtins().Int32
	}
	return types.Invalid
}

// PropertyExpr builds the reference expression for a property lookup
// on element id.
func PropertyExpr(ctx *Ctx, id exprtree.ElementID, p objtree.PropertyLookup, sp source.Span) *exprtree.Expr {
	in := ctx.Types()
	ref := exprtree.NamedReference{Element: id, Name: p.ResolvedName}
	if p.Member != nil {
		return &exprtree.Expr{
			Kind: exprtree.MemberFunction,
			Type: p.Type,
			Span: sp,
			Data: exprtree.MemberFunctionData{
				Base:   exprtree.NewElementReference(in, id, sp),
				Member: exprtree.NewBuiltinFunction(p.Member.Func, p.Member.Type, sp),
			},
		}
	}
	switch in.Kind(p.Type) {
	case types.KindCallback, types.KindInferredCallback:
		return exprtree.NewReference(exprtree.CallbackReference, ref, p.Type, sp)
	case types.KindFunction:
		return exprtree.NewReference(exprtree.FunctionReference, ref, p.Type, sp)
	}
	return exprtree.NewReference(exprtree.PropertyReference, ref, p.Type, sp)
}

// EnumValue builds the expression for a member of an enumeration.
func EnumValue(in *types.Interner, enum types.TypeID, name string, sp source.Span) (*exprtree.Expr, bool) {
	info, ok := in.EnumInfo(enum)
	if !ok {
		return nil, false
	}
	idx := info.Index(name)
	if idx < 0 {
		return nil, false
	}
	return &exprtree.Expr{
		Kind: exprtree.EnumerationValue,
		Type: enum,
		Span: sp,
		Data: exprtree.EnumerationValueData{Index: idx, Value: name},
	}, true
}
