package testkit

import (
	"errors"
	"fmt"

	"fortio.org/safecast"

	"github.com/Be-ing/sixtyfps/internal/exprtree"
	"github.com/Be-ing/sixtyfps/internal/objtree"
	"github.com/Be-ing/sixtyfps/internal/source"
)

// CheckResolved verifies the state a resolving pass must leave behind:
// 1) every binding and repeater model is resolved and has an expression
// 2) no expression node is shared between two bindings
// 3) every expression span lies in the document file and within srcLen
// when srcLen is positive.
func CheckResolved(doc *objtree.Document, srcLen int) error {
	if doc == nil {
		return errors.New("nil document")
	}
	limit, err := safecast.Conv[uint32](srcLen)
	if err != nil {
		return fmt.Errorf("source length overflow: %w", err)
	}
	c := &checker{doc: doc, limit: limit, seen: make(map[*exprtree.Expr]string)}
	for _, comp := range doc.Components {
		doc.Walk(comp.Root, func(e *objtree.Element) {
			name := doc.ElementName(e.ID)
			for _, prop := range e.BindingNames() {
				c.binding(e.Bindings[prop], name+"."+prop)
			}
			if e.Repeated != nil && e.Repeated.Model != nil {
				c.binding(e.Repeated.Model, name+"[model]")
			}
		})
	}
	return errors.Join(c.errs...)
}

type checker struct {
	doc   *objtree.Document
	limit uint32
	seen  map[*exprtree.Expr]string
	errs  []error
}

func (c *checker) binding(b *objtree.Binding, where string) {
	if !b.Resolved {
		c.errs = append(c.errs, fmt.Errorf("%s: not resolved", where))
		return
	}
	if b.Expr == nil {
		c.errs = append(c.errs, fmt.Errorf("%s: resolved without expression", where))
		return
	}
	exprtree.Visit(b.Expr, func(e *exprtree.Expr) bool {
		if prev, dup := c.seen[e]; dup {
			c.errs = append(c.errs, fmt.Errorf("%s: %s node shared with %s", where, e.Kind, prev))
			return false
		}
		c.seen[e] = where
		c.span(e.Span, where)
		return true
	})
}

func (c *checker) span(sp source.Span, where string) {
	if sp == (source.Span{}) {
		return
	}
	if sp.File != c.doc.File {
		c.errs = append(c.errs, fmt.Errorf("%s: span %s points to another file", where, sp))
	}
	if sp.End < sp.Start {
		c.errs = append(c.errs, fmt.Errorf("%s: inverted span %s", where, sp))
	}
	if c.limit > 0 && sp.End > c.limit {
		c.errs = append(c.errs, fmt.Errorf("%s: span %s beyond source end %d", where, sp, c.limit))
	}
}
