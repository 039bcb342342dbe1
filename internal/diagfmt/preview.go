package diagfmt

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"github.com/Be-ing/sixtyfps/internal/diag"
	"github.com/Be-ing/sixtyfps/internal/source"
)

type fixEditPreview struct {
	before []string
	after  []string
}

// buildFixEditPreview returns the whole lines touched by edit before and
// after applying it.
func buildFixEditPreview(fs *source.FileSet, edit diag.FixEdit) (fixEditPreview, error) {
	if fs == nil {
		return fixEditPreview{}, fmt.Errorf("nil FileSet")
	}
	file := fs.Get(edit.Span.File)
	if file == nil {
		return fixEditPreview{}, fmt.Errorf("file %d not found in FileSet", edit.Span.File)
	}
	size, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		return fixEditPreview{}, fmt.Errorf("len file content overflow: %w", err)
	}
	if edit.Span.End < edit.Span.Start || edit.Span.End > size {
		return fixEditPreview{}, fmt.Errorf("edit span %s out of range", edit.Span)
	}

	start, end := fs.Resolve(edit.Span)
	blockStart, _ := lineBounds(file, start.Line, size)
	_, blockEnd := lineBounds(file, max(end.Line, start.Line), size)

	block := file.Content[blockStart:blockEnd]
	rel := edit.Span.Start - blockStart
	after := make([]byte, 0, len(block)+len(edit.NewText))
	after = append(after, block[:rel]...)
	after = append(after, edit.NewText...)
	after = append(after, block[edit.Span.End-blockStart:]...)

	return fixEditPreview{before: previewLines(block), after: previewLines(after)}, nil
}

// lineBounds returns the byte range of a 1-based line without its newline.
func lineBounds(f *source.File, line, size uint32) (start, end uint32) {
	start, end, ok := f.LineSpan(max(line, 1))
	if !ok {
		return size, size
	}
	return min(start, size), min(max(end, start), size)
}

func previewLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	// последний \n не даёт пустой строки в превью
	return strings.Split(strings.TrimRight(string(content), "\n"), "\n")
}
