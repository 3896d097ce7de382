package driver

import (
	"context"
	"fmt"

	"sfzkit/internal/diag"
	"sfzkit/internal/dialect"
	"sfzkit/internal/directive"
	"sfzkit/internal/doc"
	"sfzkit/internal/observ"
	"sfzkit/internal/parser"
	"sfzkit/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	// Root is the file as read; File is the flattened, expanded text the
	// lexer saw. Document and diagnostic spans point back at the files
	// their text was written in; FileSet.Origin does the same for tokens.
	Root *source.File
	File *source.File
	// Files lists every file the instrument read, root first.
	Files    []source.FileID
	Document *doc.Document // nil after a fatal error
	Dialect  dialect.Classification
	Vars     *directive.VarTable
	Bag      *diag.Bag
	Err      error
	Timing   *observ.Report
}

// Failed reports whether the run produced no document or any error.
func (r *ParseResult) Failed() bool {
	return r.Document == nil || r.Bag.HasErrors()
}

// Parse runs the whole pipeline over path: load, include flattening,
// directive pre-pass, lexing and document build. The returned error is
// reserved for I/O failures and cancellation.
func Parse(ctx context.Context, path string, opts Options) (*ParseResult, error) {
	fs := source.NewFileSetWithBase(opts.baseDir)
	r := newRun(ctx, &opts, fs, path)
	id, err := r.load(path)
	if err != nil {
		return nil, err
	}
	return r.parse(id)
}

// ParseSource is Parse over in-memory text. Relative includes resolve
// against the directory of name.
func ParseSource(ctx context.Context, name string, content []byte, opts Options) (*ParseResult, error) {
	fs := source.NewFileSetWithBase(opts.baseDir)
	r := newRun(ctx, &opts, fs, name)
	return r.parse(fs.AddVirtual(name, content))
}

func (r *run) parse(root source.FileID) (*ParseResult, error) {
	res := &ParseResult{FileSet: r.fs, Root: r.fs.Get(root), Files: []source.FileID{root}, Bag: r.bag}
	prep, err := r.prepare(root)
	if err == nil {
		res.File, res.Files, res.Vars = prep.file, prep.files, prep.vars
		err = r.phase(StageBuild, func() (string, error) {
			d, _, err := parser.ParseFile(prep.file, r.opts.catalog(), parser.Options{Reporter: r.reporter()})
			if err != nil {
				return "", err
			}
			d.RemapSpans(r.origin)
			res.Document = d
			res.Dialect = dialect.Detect(d)
			r.checkTarget(res.Dialect, d)
			return fmt.Sprintf("scopes=%d regions=%d dialect=%s", d.Len(), len(d.Regions()), res.Dialect.Kind), nil
		})
	}
	if err != nil && !isFatal(err) {
		return nil, err
	}
	res.Err = err
	res.Timing = r.finish(res.Root.Path)
	return res, nil
}

// checkTarget warns once per header or opcode that the configured target
// revision does not know.
func (r *run) checkTarget(c dialect.Classification, d *doc.Document) {
	target := r.opts.Target
	if target == dialect.Unknown || target.Supports(c.Kind) {
		return
	}
	for _, h := range dialect.Observe(d).Beyond(target) {
		diag.ReportWarning(r.reporter(), diag.OpcBeyondTarget, h.Span,
			fmt.Sprintf("%s needs SFZ %s, target is %s", h.Reason, h.Dialect, target)).Emit()
	}
}
