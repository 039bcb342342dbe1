//go:build sixtyfps_debug

package resolve

import "github.com/Be-ing/sixtyfps/internal/diag"

// debugAssertHasError panics when an internal inconsistency was reached
// without a diagnostic explaining it.
func debugAssertHasError(sink diag.Sink) {
	if !sink.HasErrors() {
		panic("resolve: invalid state reached without a reported error")
	}
}
