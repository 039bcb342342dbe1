package syntax

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeIdentifier returns the canonical lookup key for an identifier:
// NFC-composed with every '_' replaced by '-', so `foo_bar` and `foo-bar`
// name the same thing.
func NormalizeIdentifier(ident string) string {
	if !norm.NFC.IsNormalString(ident) {
		ident = norm.NFC.String(ident)
	}
	return strings.ReplaceAll(ident, "_", "-")
}
