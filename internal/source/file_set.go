package source

import (
	"crypto/sha256"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// FileSet owns every text a run reads or synthesises. Include flattening
// and #define expansion add new versions of a path instead of replacing
// it, so a span always points at the exact text that produced it.
type FileSet struct {
	files   []File
	latest  map[string]FileID // path -> newest version
	disk    map[string]FileID // path -> version read by Load
	origins map[FileID]Origins
	baseDir string // пусто: рабочая директория
}

func NewFileSet() *FileSet {
	return &FileSet{
		latest:  make(map[string]FileID),
		disk:    make(map[string]FileID),
		origins: make(map[FileID]Origins),
	}
}

// NewFileSetWithBase is NewFileSet with relative paths printed against
// baseDir, usually the library root.
func NewFileSetWithBase(baseDir string) *FileSet {
	fs := NewFileSet()
	fs.baseDir = baseDir
	return fs
}

// BaseDir returns the directory relative paths are printed against.
func (fileSet *FileSet) BaseDir() string {
	if fileSet.baseDir != "" {
		return fileSet.baseDir
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return ""
}

// Add stores already normalised content as a new version of path. Hash is
// the digest of content.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	return fileSet.add(path, content, sha256.Sum256(content), flags)
}

func (fileSet *FileSet) add(path string, content []byte, hash [32]byte, flags FileFlags) FileID {
	id := FileID(offset(len(fileSet.files)))
	path = normalizePath(path)
	fileSet.files = append(fileSet.files, File{
		ID:      id,
		Path:    path,
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    hash,
		Flags:   flags,
	})
	fileSet.latest[path] = id
	return id
}

// AddDerived adds text produced from other files of the set, such as a
// flattened or expanded instrument. origins tells Origin where its bytes
// came from.
func (fileSet *FileSet) AddDerived(path string, content []byte, flags FileFlags, origins Origins) FileID {
	id := fileSet.Add(path, content, flags|FileExpanded)
	if len(origins) > 0 {
		fileSet.origins[id] = origins
	}
	return id
}

// Origin follows span back through every derived file to the text it was
// read from. exact is false once a step lands on a substituted variable or
// a byte with no origin; such a span is fine for messages but not for edits.
func (fileSet *FileSet) Origin(span Span) (out Span, exact bool) {
	exact = true
	for {
		origins, ok := fileSet.origins[span.File]
		if !ok {
			return span, exact
		}
		mapped, ex, ok := origins.Map(span)
		if !ok || mapped.File == span.File {
			return span, false
		}
		span, exact = mapped, exact && ex
	}
}

// Load reads path, normalises BOM and line endings and adds the result.
// Hash is taken over the bytes on disk so a cache can compare it with the
// file later without normalising again.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	if uint64(len(raw)) > math.MaxUint32 {
		return 0, fmt.Errorf("%s: file too large (%d bytes)", path, len(raw))
	}
	content, flags := Normalize(raw)
	id := fileSet.add(path, content, sha256.Sum256(raw), flags)
	fileSet.disk[normalizePath(path)] = id
	return id, nil
}

// LoadOnce returns the version of path that Load read earlier in this set,
// reading the file only the first time. Include passes and files included
// from several groups share one copy; later expanded versions of the same
// path are not returned.
func (fileSet *FileSet) LoadOnce(path string) (FileID, error) {
	if id, ok := fileSet.disk[normalizePath(path)]; ok {
		return id, nil
	}
	return fileSet.Load(path)
}

// AddVirtual adds in-memory text: stdin, tests, generated instruments.
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	return fileSet.Add(name, content, FileVirtual)
}

// Get panics on an ID from another set; use Lookup when unsure.
func (fileSet *FileSet) Get(id FileID) *File {
	return &fileSet.files[id]
}

// Lookup is Get for IDs that may not belong to this set, such as the zero
// span of a synthetic diagnostic.
func (fileSet *FileSet) Lookup(id FileID) (*File, bool) {
	if fileSet == nil || int(id) >= len(fileSet.files) {
		return nil, false
	}
	return &fileSet.files[id], true
}

// Len returns the number of versions stored.
func (fileSet *FileSet) Len() int {
	return len(fileSet.files)
}

// GetLatest returns the newest version of path.
func (fileSet *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := fileSet.latest[normalizePath(path)]
	return id, ok
}

func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	f := &fileSet.files[span.File]
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// clamp keeps [start, end) inside the content; an inverted range is empty.
func (f *File) clamp(start, end uint32) (uint32, uint32) {
	n := offset(len(f.Content))
	start, end = min(start, n), min(end, n)
	return start, max(start, end)
}

// Text returns the bytes covered by span, clamped to the content.
func (f *File) Text(span Span) string {
	start, end := f.clamp(span.Start, span.End)
	return string(f.Content[start:end])
}

// GetLine returns 1-based line n without its newline, or "" past the end.
func (f *File) GetLine(n uint32) string {
	if n == 0 || int(n) > len(f.LineIdx)+1 {
		return ""
	}
	var start uint32
	if n > 1 {
		start = f.LineIdx[n-2] + 1
	}
	end := offset(len(f.Content))
	if int(n) <= len(f.LineIdx) {
		end = f.LineIdx[n-1]
	}
	start, end = f.clamp(start, end)
	return string(f.Content[start:end])
}

// Dir returns the directory containing the file; relative sample paths
// and includes resolve against it.
func (f *File) Dir() string {
	return filepath.Dir(filepath.FromSlash(f.Path))
}

// FormatPath renders f.Path for output. mode is one of absolute, relative,
// basename or auto; auto keeps short and relative paths and cuts long
// absolute ones to the base name.
func (f *File) FormatPath(mode, baseDir string) string {
	var (
		out string
		err error
	)
	switch mode {
	case "absolute":
		out, err = AbsolutePath(f.Path)
	case "relative":
		if baseDir == "" {
			baseDir, _ = os.Getwd()
		}
		out, err = RelativePath(f.Path, baseDir)
	case "basename":
		return BaseName(f.Path)
	case "auto":
		if len(f.Path) >= 40 && filepath.IsAbs(f.Path) {
			return BaseName(f.Path)
		}
	}
	if err != nil || out == "" {
		return f.Path
	}
	return out
}
