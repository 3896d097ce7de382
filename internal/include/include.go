// Package include flattens #include directives into a single text before
// the directive pre-pass and the lexer see it.
//
// Paths are resolved against the including file's directory first, then
// against Options.IncludeDirs in order. A file that (directly or not)
// includes itself is an error; so is nesting deeper than MaxDepth.
//
// Includes whose path still contains a $variable are left in place; the
// driver flattens again after the directive pre-pass has substituted them.
package include

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/safecast"

	"sfzkit/internal/diag"
	"sfzkit/internal/source"
)

const DefaultMaxDepth = 16

type Options struct {
	IncludeDirs []string
	MaxDepth    int // 0 означает DefaultMaxDepth
	Reporter    diag.Reporter
}

// Result describes a flattened file.
type Result struct {
	File     source.FileID   // flattened text; the root itself if nothing was included
	Files    []source.FileID // every file read, root first
	Expanded bool
}

// Error is a failed include.
type Error struct {
	Code diag.Code
	Span source.Span
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code.ID(), e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code.ID(), e.Path)
}

func (e *Error) Unwrap() error { return e.Err }

var (
	ErrNotFound = errors.New("included file not found")
	ErrCycle    = errors.New("include cycle")
	ErrTooDeep  = errors.New("include nesting too deep")
)

type flattener struct {
	fs     *source.FileSet
	opts   Options
	guard  map[string]bool // стек открытых include, защита от циклов
	chain  []string
	loaded map[string]source.FileID
	files  []source.FileID
	any    bool
}

// Flatten loads path into fs and splices every #include it reaches.
func Flatten(fs *source.FileSet, path string, opts Options) (*Result, error) {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	fl := &flattener{
		fs:     fs,
		opts:   opts,
		guard:  make(map[string]bool),
		loaded: make(map[string]source.FileID),
	}
	root, err := fs.Load(abs)
	if err != nil {
		return nil, fl.fail(&Error{Code: diag.IOLoadFileError, Path: path, Err: err})
	}
	fl.loaded[abs] = root
	fl.files = append(fl.files, root)

	text, origins, err := fl.flatten(root, abs, 0)
	if err != nil {
		return nil, err
	}
	res := &Result{File: root, Files: fl.files}
	if fl.any {
		res.File = fs.AddDerived(fs.Get(root).Path, text, 0, origins)
		res.Expanded = true
	}
	return res, nil
}

// FlattenFile splices includes into a file that is already in fs, e.g. text
// read from stdin. Relative includes resolve against the file's directory.
func FlattenFile(fs *source.FileSet, id source.FileID, opts Options) (*Result, error) {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	fl := &flattener{
		fs:     fs,
		opts:   opts,
		guard:  make(map[string]bool),
		loaded: make(map[string]source.FileID),
		files:  []source.FileID{id},
	}
	f := fs.Get(id)
	key := f.Path
	if abs, err := filepath.Abs(f.Path); err == nil {
		key = abs
	}
	text, origins, err := fl.flatten(id, key, 0)
	if err != nil {
		return nil, err
	}
	res := &Result{File: id, Files: fl.files}
	if fl.any {
		res.File = fs.AddDerived(f.Path, text, f.Flags, origins)
		res.Expanded = true
	}
	return res, nil
}

func (fl *flattener) flatten(id source.FileID, key string, depth int) ([]byte, source.Origins, error) {
	fl.guard[key] = true
	fl.chain = append(fl.chain, key)
	defer func() {
		delete(fl.guard, key)
		fl.chain = fl.chain[:len(fl.chain)-1]
	}()

	f := fl.fs.Get(id)
	src := f.Content
	var (
		out     bytes.Buffer
		origins source.Origins
	)
	out.Grow(len(src))
	inBlock := false
	// copyRun пишет src[a:b] в out и запоминает, откуда байты
	copyRun := func(a, b int) {
		at := out.Len()
		out.Write(src[a:b])
		origins.Copy(offset(at), offset(out.Len()), id, offset(a))
	}

	for off := 0; off < len(src); {
		end := len(src)
		if n := bytes.IndexByte(src[off:], '\n'); n >= 0 {
			end = off + n
		}
		line := src[off:end]

		inc, ok := parseIncludeLine(line, inBlock)
		inBlock = blockState(line, inBlock)
		// путь с $VAR раскроется только после препроцессора директив
		if !ok || strings.Contains(inc.path, "$") {
			copyRun(off, end)
		} else {
			sp := source.SpanOf(id, off+inc.start, off+inc.end)
			text, inner, err := fl.splice(f, inc.path, sp, depth)
			if err != nil {
				return nil, nil, err
			}
			text = bytes.TrimSuffix(text, []byte("\n"))
			origins.Splice(inner, offset(out.Len()), offset(len(text)))
			out.Write(text)
			if tail := bytes.TrimSpace(line[inc.end:]); len(tail) > 0 {
				out.WriteByte('\n')
				copyRun(off+inc.end, end)
			}
		}
		if end < len(src) {
			copyRun(end, end+1)
		}
		off = end + 1
	}
	return out.Bytes(), origins, nil
}

// offset переводит длину буфера в смещение; файлы больше 4 ГиБ
// FileSet не принимает, так что переполнение здесь означает ошибку.
func offset(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	return v
}

func (fl *flattener) splice(from *source.File, raw string, sp source.Span, depth int) ([]byte, source.Origins, error) {
	path, err := fl.resolve(from, raw)
	if err != nil {
		return nil, nil, fl.fail(&Error{Code: diag.IOIncludeNotFound, Span: sp, Path: raw, Err: err})
	}
	if fl.guard[path] {
		cycle := strings.Join(append(append([]string(nil), fl.chain...), path), " -> ")
		return nil, nil, fl.fail(&Error{Code: diag.IOIncludeCycle, Span: sp, Path: raw, Err: fmt.Errorf("%w: %s", ErrCycle, cycle)})
	}
	if depth+1 > fl.opts.MaxDepth {
		return nil, nil, fl.fail(&Error{Code: diag.IOIncludeDepth, Span: sp, Path: raw, Err: fmt.Errorf("%w (limit %d)", ErrTooDeep, fl.opts.MaxDepth)})
	}

	id, ok := fl.loaded[path]
	if !ok {
		id, err = fl.fs.LoadOnce(path)
		if err != nil {
			return nil, nil, fl.fail(&Error{Code: diag.IOLoadFileError, Span: sp, Path: raw, Err: err})
		}
		fl.loaded[path] = id
		fl.files = append(fl.files, id)
	}
	fl.any = true
	return fl.flatten(id, path, depth+1)
}

// resolve ищет файл: каталог включающего файла, затем IncludeDirs.
func (fl *flattener) resolve(from *source.File, raw string) (string, error) {
	p := filepath.FromSlash(strings.ReplaceAll(raw, `\`, "/"))
	var candidates []string
	if filepath.IsAbs(p) {
		candidates = []string{p}
	} else {
		candidates = append(candidates, filepath.Join(filepath.Dir(from.Path), p))
		for _, dir := range fl.opts.IncludeDirs {
			candidates = append(candidates, filepath.Join(dir, p))
		}
	}
	for _, c := range candidates {
		st, err := os.Stat(c)
		if err != nil || st.IsDir() {
			continue
		}
		if abs, err := filepath.Abs(c); err == nil {
			return abs, nil
		}
		return c, nil
	}
	return "", fmt.Errorf("%w (searched %s)", ErrNotFound, strings.Join(candidates, ", "))
}

func (fl *flattener) fail(e *Error) error {
	diag.ReportError(fl.opts.Reporter, e.Code, e.Span, e.Error()).Emit()
	return e
}
