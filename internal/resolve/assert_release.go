//go:build !sixtyfps_debug

package resolve

import "github.com/Be-ing/sixtyfps/internal/diag"

func debugAssertHasError(diag.Sink) {}
