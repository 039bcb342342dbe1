// Package resolve turns the unresolved bindings of a document into typed
// expression trees.
//
// Each component's element tree is walked depth-first. Every binding still
// carrying its syntax node is lowered with a fresh lookup.Ctx, converted to
// the property type and marked resolved. Errors are reported to the sink
// and poison the offending sub-expression only; the walk always finishes.
package resolve

import (
	"github.com/Be-ing/sixtyfps/internal/diag"
	"github.com/Be-ing/sixtyfps/internal/exprtree"
	"github.com/Be-ing/sixtyfps/internal/lookup"
	"github.com/Be-ing/sixtyfps/internal/objtree"
	"github.com/Be-ing/sixtyfps/internal/syntax"
	"github.com/Be-ing/sixtyfps/internal/trace"
	"github.com/Be-ing/sixtyfps/internal/types"
)

// Options configure a resolving pass over one document.
type Options struct {
	Sink     diag.Sink
	Importer lookup.ImportResolver
	Tracer   trace.Tracer
	// ParentSpan nests the pass span under a driver span.
	ParentSpan uint64
}

// Stats summarises one pass.
type Stats struct {
	Bindings int
	Models   int
	Aliases  int
}

// ResolveExpressions resolves every binding of doc. Bindings that are
// already resolved are left alone, so running it twice is a no-op.
func ResolveExpressions(doc *objtree.Document, opts Options) Stats {
	if opts.Sink == nil {
		opts.Sink = diag.NopReporter{}
	}
	if opts.Tracer == nil {
		opts.Tracer = trace.Nop
	}
	r := &resolver{doc: doc, opts: opts}
	span := trace.Begin(opts.Tracer, trace.ScopePass, "resolve", opts.ParentSpan).WithExtra("path", doc.Path)
	for _, c := range doc.Components {
		r.component(c, span.ID())
	}
	span.End("")
	return r.stats
}

type resolver struct {
	doc   *objtree.Document
	opts  Options
	stats Stats
	// span of the component being walked
	span uint64
}

// alias is a two-way binding found while resolving an element, attached
// to its binding once the element is done.
type alias struct {
	property string
	ref      exprtree.NamedReference
}

func (r *resolver) component(c *objtree.Component, parent uint64) {
	span := trace.Begin(r.opts.Tracer, trace.ScopeComponent, "component:"+c.Name, parent)
	defer span.End("")
	r.span = span.ID()
	root := componentScope{c.Root}
	r.inferAliases(r.collectInferred(c.Root, root, nil))
	r.element(c.Root, root)
}

// scopes returns the scope seen by the children of element id and the
// one its own bindings resolve in.
func (r *resolver) scopes(e *objtree.Element, scope componentScope) (children, own componentScope) {
	children = scope
	if e.Repeated != nil {
		children = scope.push(e.ID)
	}
	return children, children.push(e.ID)
}

func (r *resolver) element(id exprtree.ElementID, scope componentScope) {
	e := r.doc.Element(id)
	if e == nil {
		return
	}
	children, own := r.scopes(e, scope)

	// The model is evaluated by the parent before any row exists: it must
	// not see the row's own scope level.
	if rep := e.Repeated; rep != nil && rep.Model != nil && !rep.Model.Resolved {
		modelScope := scope
		if e.Parent.IsValid() {
			modelScope = scope.push(e.Parent)
		}
		ty := r.doc.Types.Builtins().Model
		if rep.Conditional {
			ty = r.doc.Types.Builtins().Bool
		}
		r.resolveBinding(rep.Model, "", ty, modelScope, nil)
		r.stats.Models++
	}

	var aliases []alias
	names := e.BindingNames()
	// two-way bindings first: they may give inferred properties a type
	for _, twoWayPass := range []bool{true, false} {
		for _, name := range names {
			b := e.Bindings[name]
			if b.Resolved || isTwoWay(b) != twoWayPass {
				continue
			}
			ty := e.LookupProperty(name).Type
			r.resolveBinding(b, name, ty, own, &aliases)
			r.stats.Bindings++
		}
	}
	r.attach(e, aliases)

	for _, child := range e.Children {
		r.element(child, children)
	}
}

func (r *resolver) attach(e *objtree.Element, aliases []alias) {
	for _, a := range aliases {
		b := e.Bindings[a.property]
		b.TwoWay = append(b.TwoWay, a.ref)
		r.stats.Aliases++
	}
}

// inferred is a two-way binding on a property or callback declared
// without a type.
type inferred struct {
	elem *objtree.Element
	name string
	own  componentScope
}

func (r *resolver) collectInferred(id exprtree.ElementID, scope componentScope, out []inferred) []inferred {
	e := r.doc.Element(id)
	if e == nil {
		return out
	}
	children, own := r.scopes(e, scope)
	for _, name := range e.BindingNames() {
		b := e.Bindings[name]
		if b.Resolved || !isTwoWay(b) || !isPlaceholder(r.doc.Types, e.LookupProperty(name).Type) {
			continue
		}
		out = append(out, inferred{elem: e, name: name, own: own})
	}
	for _, child := range e.Children {
		out = r.collectInferred(child, children, out)
	}
	return out
}

func isPlaceholder(in *types.Interner, ty types.TypeID) bool {
	k := in.Kind(ty)
	return k == types.KindInferredProperty || k == types.KindInferredCallback
}

// inferAliases resolves untyped two-way bindings before anything reads
// them, so every reader sees the inferred type whatever the walk order.
// A binding whose target is itself still untyped waits for the next
// round; cycles are left to the regular walk.
func (r *resolver) inferAliases(pending []inferred) {
	for progress := true; progress && len(pending) > 0; {
		progress = false
		var rest []inferred
		for _, p := range pending {
			if r.targetIsPlaceholder(p) {
				rest = append(rest, p)
				continue
			}
			var aliases []alias
			r.resolveBinding(p.elem.Bindings[p.name], p.name, p.elem.LookupProperty(p.name).Type, p.own, &aliases)
			r.stats.Bindings++
			r.attach(p.elem, aliases)
			if ty := p.elem.LookupProperty(p.name).Type; !isPlaceholder(r.doc.Types, ty) {
				trace.Point(r.opts.Tracer, trace.ScopeBinding, "infer:"+p.name, r.doc.Types.String(ty), r.span)
			}
			progress = true
		}
		pending = rest
	}
}

// targetIsPlaceholder lowers the right-hand side into a scratch bag and
// reports whether it names another untyped declaration.
func (r *resolver) targetIsPlaceholder(p inferred) bool {
	node := p.elem.Bindings[p.name].Syntax.ChildNode(syntax.Expression)
	if node == nil {
		return false
	}
	qn := node.ChildNode(syntax.QualifiedName)
	if qn == nil {
		return false
	}
	scratch := diag.BagReporter{Bag: diag.NewBag(0)}
	ctx := r.newCtx(p.name, p.elem.LookupProperty(p.name).Type, p.own, scratch)
	e := newBuilder(ctx).lowerQualifiedName(qn)
	return isPlaceholder(r.doc.Types, e.Type)
}

func isTwoWay(b *objtree.Binding) bool {
	return b.Syntax != nil && b.Syntax.Kind == syntax.TwoWayBinding
}

// resolveBinding lowers one binding in place.
func (r *resolver) resolveBinding(b *objtree.Binding, property string, ty types.TypeID, scope componentScope, aliases *[]alias) {
	ctx := r.newCtx(property, ty, scope, r.opts.Sink)
	span := trace.Begin(r.opts.Tracer, trace.ScopeBinding, "binding:"+property, r.span)
	defer span.End("")

	bl := newBuilder(ctx)
	node := b.Syntax
	var out *exprtree.Expr
	switch {
	case node == nil:
		debugAssertHasError(r.opts.Sink)
		out = exprtree.NewInvalid(b.Span)
	case node.Kind == syntax.CallbackConnection:
		out = bl.lowerCallbackConnection(node)
	case node.Kind == syntax.Expression:
		// repeater models are bare expressions
		out = bl.convert(bl.lowerExpression(node), ctx.PropertyType, node.Span)
	case node.Kind == syntax.BindingExpression:
		out = bl.lowerBindingExpression(node)
	case node.Kind == syntax.TwoWayBinding:
		out = exprtree.NewInvalid(node.Span)
		if ty == types.Invalid {
			// the property type itself failed to resolve
			debugAssertHasError(r.opts.Sink)
			break
		}
		if ref, ok := bl.resolveTwoWay(node); ok && aliases != nil {
			*aliases = append(*aliases, alias{property: property, ref: ref})
		}
	default:
		debugAssertHasError(r.opts.Sink)
		out = exprtree.NewInvalid(node.Span)
	}
	b.Expr = out
	b.Resolved = true
}

func (r *resolver) newCtx(property string, ty types.TypeID, scope componentScope, sink diag.Sink) *lookup.Ctx {
	return &lookup.Ctx{
		PropertyName: property,
		PropertyType: ty,
		Scope:        scope,
		Doc:          r.doc,
		Sink:         sink,
		Registry:     r.doc.Registry,
		Importer:     r.opts.Importer,
	}
}
