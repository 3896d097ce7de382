package driver

import (
	"context"
	"fmt"

	"sfzkit/internal/diag"
	"sfzkit/internal/lexer"
	"sfzkit/internal/observ"
	"sfzkit/internal/source"
	"sfzkit/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	// Root is the file as read; File is the flattened, expanded text the
	// token spans point into. They are the same file when nothing changed.
	Root   *source.File
	File   *source.File
	Tokens []token.Token
	Bag    *diag.Bag
	// Err is the fatal error that stopped the pipeline. It is also in Bag.
	Err    error
	Timing *observ.Report
}

// Tokenize runs include flattening, the directive pre-pass and the lexer
// over path. The returned error is reserved for I/O failures and
// cancellation; malformed input ends up in the result.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	r := newRun(ctx, &opts, fs, path)
	id, err := r.load(path)
	if err != nil {
		return nil, err
	}
	return r.tokenize(id)
}

// TokenizeSource is Tokenize over in-memory text, e.g. standard input.
func TokenizeSource(ctx context.Context, name string, content []byte, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	r := newRun(ctx, &opts, fs, name)
	return r.tokenize(fs.AddVirtual(name, content))
}

func (r *run) tokenize(root source.FileID) (*TokenizeResult, error) {
	res := &TokenizeResult{FileSet: r.fs, Root: r.fs.Get(root), Bag: r.bag}
	prep, err := r.prepare(root)
	if err == nil {
		res.File = prep.file
		err = r.phase(StageTokenize, func() (string, error) {
			var err error
			res.Tokens, err = lexer.Tokenize(prep.file, lexer.Options{Reporter: r.reporter()})
			return fmt.Sprintf("tokens=%d", len(res.Tokens)), err
		})
	}
	if err != nil && !isFatal(err) {
		return nil, err
	}
	res.Err = err
	res.Timing = r.finish(res.Root.Path)
	return res, nil
}
