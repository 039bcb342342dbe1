// Package objtree holds the element tree the resolving pass works on:
// documents, components, elements with their bindings and declarations,
// and the type register that names builtin elements, enums and structs.
//
// Elements live in a per-document arena and are addressed by ElementID.
// Parent and component links are lookup-only back references.
package objtree
