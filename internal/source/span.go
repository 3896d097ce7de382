package source

import (
	"fmt"

	"fortio.org/safecast"
)

// Span is a half-open byte range [Start, End) in one file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

// SpanOf builds a span from int offsets, as slicing code has them.
// Offsets past 4 GiB panic: no file that large is ever loaded.
func SpanOf(file FileID, start, end int) Span {
	return Span{File: file, Start: offset(start), End: offset(end)}
}

// At is the empty span at off, used for EOF and insertion points.
func At(file FileID, off uint32) Span {
	return Span{File: file, Start: off, End: off}
}

func offset(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	return v
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Overlaps reports whether two spans of the same file collide. Two empty
// spans never do; an empty span collides with a span strictly around it
// or starting at it.
func (s Span) Overlaps(o Span) bool {
	if s.File != o.File {
		return false
	}
	switch {
	case s.Empty() && o.Empty():
		return false
	case s.Empty():
		return o.Start <= s.Start && s.Start < o.End
	case o.Empty():
		return s.Start <= o.Start && o.Start < s.End
	}
	return s.Start < o.End && o.Start < s.End
}
