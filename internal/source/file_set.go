package source

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"fortio.org/safecast"
)

// FileFlags records how a file entered the set.
type FileFlags uint8

const (
	// FileVirtual marks content that did not come from disk: tests and
	// the source text carried inside interchange files.
	FileVirtual FileFlags = 1 << iota
	FileNormalizedCRLF
)

// File is one .60 document as seen by diagnostics.
type File struct {
	ID      FileID
	Path    string // slash separated
	Content []byte
	Flags   FileFlags
	// lines[i] is the offset where line i+1 starts
	lines []uint32
}

// FileSet owns the files that spans point into. It is not safe for
// concurrent use; the driver adds files from one goroutine.
type FileSet struct {
	files   []File
	byPath  map[string]FileID
	baseDir string
}

func NewFileSet() *FileSet {
	return &FileSet{byPath: make(map[string]FileID)}
}

// NewFileSetWithBase creates a FileSet that displays relative paths
// against baseDir.
func NewFileSetWithBase(baseDir string) *FileSet {
	fs := NewFileSet()
	fs.baseDir = baseDir
	return fs
}

// BaseDir returns the display base, defaulting to the working directory.
func (fs *FileSet) BaseDir() string {
	if fs.baseDir != "" {
		return fs.baseDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}

// Add stores content under path as is and returns its id. Offsets in
// spans must refer to exactly these bytes. Adding a path again creates a
// new version that Lookup returns from then on.
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	n, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("file set overflow: %w", err))
	}
	id := FileID(n)
	path = filepath.ToSlash(filepath.Clean(path))
	fs.files = append(fs.files, File{
		ID:      id,
		Path:    path,
		Content: content,
		Flags:   flags,
		lines:   lineStarts(content),
	})
	fs.byPath[path] = id
	return id
}

// AddVirtual adds in-memory text with CRLF folded to LF.
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	flags := FileVirtual
	if bytes.Contains(content, []byte("\r\n")) {
		content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
		flags |= FileNormalizedCRLF
	}
	return fs.Add(name, content, flags)
}

// Get returns the file with id, or nil.
func (fs *FileSet) Get(id FileID) *File {
	if int(id) >= len(fs.files) {
		return nil
	}
	return &fs.files[id]
}

func (fs *FileSet) Len() int { return len(fs.files) }

// Lookup returns the newest version of path.
func (fs *FileSet) Lookup(path string) (FileID, bool) {
	id, ok := fs.byPath[filepath.ToSlash(filepath.Clean(path))]
	return id, ok
}

// Resolve converts both ends of span to line and column. Unknown files
// resolve to 1:1.
func (fs *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fs.Get(span.File)
	if f == nil {
		return LineCol{Line: 1, Col: 1}, LineCol{Line: 1, Col: 1}
	}
	return f.Position(span.Start), f.Position(span.End)
}

func lineStarts(content []byte) []uint32 {
	out := make([]uint32, 1, len(content)/32+1)
	for i, b := range content {
		if b == '\n' {
			next, err := safecast.Conv[uint32](i + 1)
			if err != nil {
				panic(fmt.Errorf("file too large: %w", err))
			}
			out = append(out, next)
		}
	}
	return out
}

// Position maps a byte offset to a 1-based line and column.
func (f *File) Position(off uint32) LineCol {
	i, found := slices.BinarySearch(f.lines, off)
	if !found {
		i--
	}
	line, err := safecast.Conv[uint32](i + 1)
	if err != nil {
		panic(fmt.Errorf("line number overflow: %w", err))
	}
	return LineCol{Line: line, Col: off - f.lines[i] + 1}
}

// LineCount returns the number of lines; an empty file has one.
func (f *File) LineCount() int { return len(f.lines) }

// LineSpan returns the byte range of line n (1-based) without its '\n'.
func (f *File) LineSpan(n uint32) (start, end uint32, ok bool) {
	if n == 0 || int(n) > len(f.lines) {
		return 0, 0, false
	}
	start = f.lines[n-1]
	if int(n) < len(f.lines) {
		end = f.lines[n] - 1
	} else {
		end = uint32(len(f.Content)) // #nosec G115 -- lineStarts already checked the size
	}
	return start, end, true
}

// GetLine returns line n (1-based) without its line ending, "" when out
// of range.
func (f *File) GetLine(n uint32) string {
	start, end, ok := f.LineSpan(n)
	if !ok {
		return ""
	}
	return string(bytes.TrimSuffix(f.Content[start:end], []byte{'\r'}))
}

// FormatPath renders the path for display. mode is "absolute",
// "relative", "basename" or "auto"; auto shortens long absolute paths.
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := filepath.Abs(f.Path); err == nil {
			return filepath.ToSlash(abs)
		}
	case "relative":
		if baseDir == "" {
			break
		}
		if rel, err := filepath.Rel(baseDir, filepath.FromSlash(f.Path)); err == nil {
			return filepath.ToSlash(rel)
		}
	case "basename":
		return filepath.Base(f.Path)
	case "auto":
		if len(f.Path) >= 40 && filepath.IsAbs(filepath.FromSlash(f.Path)) {
			return filepath.Base(f.Path)
		}
	}
	return f.Path
}
