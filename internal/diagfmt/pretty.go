package diagfmt

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/Be-ing/sixtyfps/internal/diag"
	"github.com/Be-ing/sixtyfps/internal/source"
)

type palette struct {
	sev    map[diag.Severity]*color.Color
	gutter *color.Color
	caret  *color.Color
	note   *color.Color
	added  *color.Color
	remove *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		sev: map[diag.Severity]*color.Color{
			diag.SevError:   color.New(color.FgRed, color.Bold),
			diag.SevWarning: color.New(color.FgYellow, color.Bold),
			diag.SevInfo:    color.New(color.FgCyan, color.Bold),
		},
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
		note:   color.New(color.FgCyan),
		added:  color.New(color.FgGreen),
		remove: color.New(color.FgRed),
	}
	for _, c := range append([]*color.Color{p.gutter, p.caret, p.note, p.added, p.remove},
		p.sev[diag.SevError], p.sev[diag.SevWarning], p.sev[diag.SevInfo]) {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty prints diagnostics for humans, in bag order (call bag.Sort first):
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//	  12 | text: foo-bar;
//	     |       ^~~~~~~
//
// followed by notes and fixes when enabled.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts, pal)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	start, _ := fs.Resolve(d.Primary)
	sev := pal.sev[d.Severity]
	if sev == nil {
		sev = pal.sev[diag.SevInfo]
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		displayPath(fs, d.Primary.File, opts.PathMode), start.Line, start.Col,
		sev.Sprint(d.Severity.String()), d.Code.ID(), d.Message)
	writeSnippet(w, fs, d.Primary, opts, pal)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			pos, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", pal.note.Sprint("note:"),
				displayPath(fs, n.Span.File, opts.PathMode), pos.Line, pos.Col, n.Msg)
		}
	}
	if opts.ShowFixes {
		for _, fix := range d.Fixes {
			fmt.Fprintf(w, "  %s %s\n", pal.note.Sprint("fix:"), fix.Title)
			if !opts.ShowPreview {
				continue
			}
			for _, edit := range fix.Edits {
				p, err := buildFixEditPreview(fs, edit)
				if err != nil {
					continue
				}
				for _, l := range p.before {
					fmt.Fprintf(w, "    %s\n", pal.remove.Sprint("- "+l))
				}
				for _, l := range p.after {
					fmt.Fprintf(w, "    %s\n", pal.added.Sprint("+ "+l))
				}
			}
		}
	}
}

func writeSnippet(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts, pal palette) {
	f := fs.Get(sp.File)
	if f == nil || len(f.Content) == 0 {
		return
	}
	start, end := fs.Resolve(sp)
	ctx := uint32(max(opts.Context, 0)) // #nosec G115 -- non-negative int8
	first := uint32(1)
	if start.Line > ctx {
		first = start.Line - ctx
	}
	last := start.Line + ctx
	gutter := len(fmt.Sprint(last))

	for line := first; line <= last; line++ {
		text, ok := lineText(f, line)
		if !ok {
			break
		}
		text = clip(expandTabs(text), opts.Width)
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", gutter, line), text)
		if line != start.Line {
			continue
		}
		raw, _ := lineText(f, line)
		col := int(start.Col) - 1
		col = min(max(col, 0), len(raw))
		pad := runewidth.StringWidth(expandTabs(raw[:col]))
		n := 1
		if end.Line == start.Line && end.Col > start.Col {
			endCol := min(int(end.Col)-1, len(raw))
			n = max(runewidth.StringWidth(expandTabs(raw[col:endCol])), 1)
		}
		marker := "^" + strings.Repeat("~", n-1)
		fmt.Fprintf(w, "%s %s%s\n", pal.gutter.Sprint(strings.Repeat(" ", gutter)+" |"),
			strings.Repeat(" ", pad), pal.caret.Sprint(marker))
	}
}

// lineText returns line (1-based) without its newline; ok is false past
// the end of the file.
func lineText(f *source.File, line uint32) (string, bool) {
	lines := f.LineCount()
	if lines > 1 && bytes.HasSuffix(f.Content, []byte{'\n'}) {
		lines-- // файл кончается переводом строки
	}
	if line == 0 || int(line) > lines {
		return "", false
	}
	return f.GetLine(line), true
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}

func clip(s string, width uint8) string {
	if width == 0 {
		return s
	}
	return runewidth.Truncate(s, int(width), "…")
}
