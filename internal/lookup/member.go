package lookup

import (
	"github.com/Be-ing/sixtyfps/internal/exprtree"
	"github.com/Be-ing/sixtyfps/internal/source"
	"github.com/Be-ing/sixtyfps/internal/types"
)

// Member looks name up on the value of base: struct fields, element
// properties, and the builtin members of colors, strings and arrays.
func Member(ctx *Ctx, base *exprtree.Expr, name string, sp source.Span) (Result, bool) {
	in := ctx.Types()
	if base.IsInvalid() {
		return Result{}, false
	}
	if base.Kind == exprtree.ElementReference {
		return ElementMember(ctx, base.Data.(exprtree.ElementReferenceData).Element, name, sp)
	}
	switch in.Kind(base.Type) {
	case types.KindStruct:
		info, _ := in.StructInfo(base.Type)
		if ft, ok := info.Field(name); ok {
			e := exprtree.NewFieldAccess(base, name, ft)
			e.Span = base.Span.Cover(sp)
			return exprResult(e), true
		}
	case types.KindColor:
		switch name {
		case "brighter":
			return exprResult(memberFunction(in, base, exprtree.FuncColorBrighter, sp)), true
		case "darker":
			return exprResult(memberFunction(in, base, exprtree.FuncColorDarker, sp)), true
		}
	case types.KindString:
		switch name {
		case "is-float":
			return exprResult(memberFunction(in, base, exprtree.FuncStringIsFloat, sp)), true
		case "to-float":
			return exprResult(memberFunction(in, base, exprtree.FuncStringToFloat, sp)), true
		}
	case types.KindArray:
		if name == "length" {
			fn := builtinFunctionRef(in, exprtree.FuncArrayLength, sp)
			return exprResult(exprtree.NewCall(fn, []*exprtree.Expr{base}, in.Builtins().Int32, base.Span.Cover(sp))), true
		}
	}
	return Result{}, false
}

// ElementMember looks a property, callback or function up on element id.
func ElementMember(ctx *Ctx, id exprtree.ElementID, name string, sp source.Span) (Result, bool) {
	e := ctx.Doc.Element(id)
	if e == nil {
		return Result{}, false
	}
	p := e.LookupProperty(name)
	if !p.Found() {
		return Result{}, false
	}
	r := exprResult(PropertyExpr(ctx, id, p, sp))
	if p.Deprecated(name) {
		r.Canonical = p.ResolvedName
	}
	return r, true
}

// memberFunction binds base as the implicit first argument of f. The
// type keeps the receiver in the signature; calls prepend base.
func memberFunction(in *types.Interner, base *exprtree.Expr, f exprtree.BuiltinFunction, sp source.Span) *exprtree.Expr {
	return &exprtree.Expr{
		Kind: exprtree.MemberFunction,
		Type: FunctionType(in, f),
		Span: base.Span.Cover(sp),
		Data: exprtree.MemberFunctionData{
			Base:   base,
			Member: builtinFunctionRef(in, f, sp),
		},
	}
}

// EnumMember resolves `Enum.value`.
func EnumMember(ctx *Ctx, enum types.TypeID, name string, sp source.Span) (Result, bool) {
	if e, ok := EnumValue(ctx.Types(), enum, name, sp); ok {
		return exprResult(e), true
	}
	return Result{}, false
}

// NamespaceMember resolves `Colors.red` or `Math.sqrt`.
func NamespaceMember(ctx *Ctx, ns Namespace, name string, sp source.Span) (Result, bool) {
	in := ctx.Types()
	switch ns {
	case NamespaceColors:
		if argb, ok := ColorByName(name); ok {
			return exprResult(exprtree.NewColor(in, argb, sp)), true
		}
	case NamespaceMath:
		switch name {
		case "abs", "mod", "min", "max":
			return exprResult(builtinMacroRef(in, builtinMacros[name], sp)), true
		}
		if f, ok := builtinFunctions[name]; ok {
			return exprResult(builtinFunctionRef(in, f, sp)), true
		}
	}
	return Result{}, false
}
