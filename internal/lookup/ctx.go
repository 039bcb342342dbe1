// Package lookup resolves identifiers against a scope: element
// properties, repeater data, element ids, globals, enumerations,
// expected-type names, builtin functions, macros and namespaces.
//
// Lookups never report diagnostics themselves; callers decide how to
// explain a miss.
package lookup

import (
	"github.com/Be-ing/sixtyfps/internal/diag"
	"github.com/Be-ing/sixtyfps/internal/exprtree"
	"github.com/Be-ing/sixtyfps/internal/objtree"
	"github.com/Be-ing/sixtyfps/internal/syntax"
	"github.com/Be-ing/sixtyfps/internal/types"
)

// ImportResolver maps a relative resource path to an absolute one.
type ImportResolver interface {
	ResolveImportPath(origin *syntax.Node, path string) string
}

// Ctx carries everything needed to resolve one binding.
type Ctx struct {
	// PropertyName is the binding's property, empty for repeater models.
	PropertyName string
	// PropertyType is the type the result is converted to.
	PropertyType types.TypeID
	// Scope lists elements outer to inner; the last one owns the binding.
	Scope     []exprtree.ElementID
	Doc       *objtree.Document
	Sink      diag.Sink
	Arguments []string
	Registry  *objtree.TypeRegister
	Importer  ImportResolver
	// CurrentToken is the last identifier consumed, for error anchoring.
	CurrentToken *syntax.Token
}

func (c *Ctx) Types() *types.Interner {
	return c.Doc.Types
}

// ReturnType is the callback/function return type for handlers, the
// property type otherwise.
func (c *Ctx) ReturnType() types.TypeID {
	if info, ok := c.Types().FnInfo(c.PropertyType); ok {
		return info.Return
	}
	return c.PropertyType
}

// ArgumentType returns the declared type of handler argument i.
func (c *Ctx) ArgumentType(i int) types.TypeID {
	if info, ok := c.Types().FnInfo(c.PropertyType); ok && i < len(info.Args) {
		return info.Args[i]
	}
	return types.Invalid
}

// Innermost returns the element owning the binding.
func (c *Ctx) Innermost() exprtree.ElementID {
	if len(c.Scope) == 0 {
		return exprtree.NoElement
	}
	return c.Scope[len(c.Scope)-1]
}
