package diagfmt

import (
	"fmt"
	"io"

	"github.com/Be-ing/sixtyfps/internal/diag"
	"github.com/Be-ing/sixtyfps/internal/source"
)

// Short prints one line per diagnostic, the format editors parse:
// <path>:<line>:<col>: <severity>: <message> [<CODE>]
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, mode PathMode) {
	for _, d := range bag.Items() {
		pos, _ := fs.Resolve(d.Primary)
		fmt.Fprintf(w, "%s:%d:%d: %s: %s [%s]\n",
			displayPath(fs, d.Primary.File, mode), pos.Line, pos.Col,
			d.Severity.String(), d.Message, d.Code.ID())
	}
}
