package exprtree

import "fmt"

// ElementID is a 1-based index into a document's element arena.
type ElementID uint32

// NoElement marks the absence of an element.
const NoElement ElementID = 0

func (id ElementID) IsValid() bool { return id != NoElement }

// NamedReference denotes one property of one element. Deprecated names are
// resolved before a reference is formed, so equality is property identity.
type NamedReference struct {
	Element ElementID
	Name    string
}

func (r NamedReference) String() string {
	return fmt.Sprintf("#%d.%s", r.Element, r.Name)
}
