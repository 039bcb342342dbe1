// Package syntax models the parser output consumed by the resolving pass:
// a read-only tree of kinded nodes with ordered node/token children.
//
// The tree shape is produced elsewhere and arrives msgpack-encoded inside
// a document interchange file (see codec.go). Nothing in this module
// mutates a tree after decoding; Build helpers exist for the loader and
// for tests.
package syntax
