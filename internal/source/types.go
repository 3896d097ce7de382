package source

import "strings"

// FileID indexes a File inside its FileSet.
type FileID uint32

// FileFlags records how a File's text relates to the bytes on disk.
type FileFlags uint8

const (
	// FileVirtual: added from memory (ParseSource, tests, stdin).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
	// FileExpanded marks text produced by include flattening or #define
	// expansion; its offsets do not map back to one file on disk.
	FileExpanded
)

var flagNames = [...]string{"virtual", "bom", "crlf", "expanded"}

// Has reports whether every bit of f is set.
func (ff FileFlags) Has(f FileFlags) bool { return ff&f == f }

func (ff FileFlags) String() string {
	var parts []string
	for i, name := range flagNames {
		if ff&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// File is one loaded (or synthesised) text with its line index.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// OnDisk reports whether offsets in f are offsets in the file at f.Path,
// modulo BOM and CRLF normalisation.
func (f *File) OnDisk() bool {
	return !f.Flags.Has(FileVirtual) && !f.Flags.Has(FileExpanded)
}

// LineCol is a 1-based position; Col counts bytes.
type LineCol struct {
	Line uint32
	Col  uint32
}
