package source

import "fmt"

// FileID identifies a file within a FileSet.
type FileID uint32

// Span is a half-open byte range [Start, End) inside one file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

func (s Span) Empty() bool { return s.Start == s.End }

func (s Span) Len() uint32 { return s.End - s.Start }

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover returns the smallest span containing both s and other. The zero
// span at offset 0 acts as "nothing yet"; spans of another file leave s
// unchanged.
func (s Span) Cover(other Span) Span {
	switch {
	case s.File != other.File:
		return s
	case s.Empty() && s.Start == 0:
		return other
	}
	s.Start = min(s.Start, other.Start)
	s.End = max(s.End, other.End)
	return s
}

// Contains reports whether other lies fully inside s.
func (s Span) Contains(other Span) bool {
	return s.File == other.File && s.Start <= other.Start && other.End <= s.End
}

// LineCol is a 1-based position for humans.
type LineCol struct {
	Line uint32
	Col  uint32 // in bytes
}
