package driver

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"sfzkit/internal/diag"
	"sfzkit/internal/directive"
	"sfzkit/internal/include"
	"sfzkit/internal/lexer"
	"sfzkit/internal/observ"
	"sfzkit/internal/parser"
	"sfzkit/internal/source"
	"sfzkit/internal/trace"
)

// maxIncludePasses bounds the include/expand loop. Every pass after the
// first flattens includes whose path only became known after $variable
// substitution.
const maxIncludePasses = 8

// run holds the state of one instrument going through the pipeline.
type run struct {
	ctx     context.Context
	opts    *Options
	fs      *source.FileSet
	bag     *diag.Bag
	rep     *diag.DedupReporter
	timer   *observ.Timer
	tracer  trace.Tracer
	parent  uint64
	display string
	read    int // files read by the last prepare
}

func newRun(ctx context.Context, opts *Options, fs *source.FileSet, display string) *run {
	if opts.label != "" {
		display = opts.label
	}
	r := &run{
		ctx:     ctx,
		opts:    opts,
		fs:      fs,
		bag:     diag.NewBag(opts.MaxDiagnostics),
		tracer:  trace.FromContext(ctx),
		parent:  trace.CurrentSpan(ctx).SpanID,
		display: display,
	}
	var sink diag.Reporter = diag.BagReporter{Bag: r.bag}
	if r.tracer.Enabled() {
		sink = diag.Tee(sink, diag.ReporterFunc(r.traceDiagnostic))
	}
	r.rep = diag.NewDedupReporter(sink)
	if opts.EnableTimings {
		r.timer = observ.NewTimer()
	}
	return r
}

// traceDiagnostic mirrors every kept diagnostic into the trace at debug
// level, so a ring dump shows what the instrument reported before failing.
func (r *run) traceDiagnostic(d diag.Diagnostic) {
	trace.Point(r.tracer, trace.ScopeDebug, "diag", d.Code.ID()+" "+d.Message, r.parent)
}

// одинаковые диагностики попадают в bag один раз
func (r *run) reporter() diag.Reporter { return diag.ReporterFunc(r.report) }

// report points d at the files its text was read from before dedup, so a
// region file included twice reports its mistakes once.
func (r *run) report(d diag.Diagnostic) {
	r.rep.Report(d.Remap(r.fs.Origin))
}

// origin is FileSet.Origin for callers that do not edit text.
func (r *run) origin(sp source.Span) source.Span {
	out, _ := r.fs.Origin(sp)
	return out
}

// phase runs fn as one timed, traced pipeline step. fn returns a short note
// for the timing table.
func (r *run) phase(stage Stage, fn func() (string, error)) error {
	if err := r.ctx.Err(); err != nil {
		return err
	}
	name := string(stage)
	span := trace.Begin(r.tracer, trace.ScopePass, name, r.parent)
	idx := r.timer.Begin(name)
	r.observe(PhaseEvent{File: r.display, Stage: stage})
	emit(r.opts.Progress, r.display, stage, StatusWorking, nil, 0)

	start := time.Now()
	note, err := fn()
	elapsed := time.Since(start)

	r.timer.End(idx, note)
	span.Fail(err).End(note)
	r.observe(PhaseEvent{File: r.display, Stage: stage, Done: true, Elapsed: elapsed, Note: note, Err: err})
	return err
}

func (r *run) observe(ev PhaseEvent) {
	if r.opts.Observer != nil {
		r.opts.Observer(ev)
	}
}

// load reads path into the file set.
func (r *run) load(path string) (source.FileID, error) {
	var id source.FileID
	err := r.phase(StageLoad, func() (string, error) {
		var err error
		id, err = r.fs.Load(path)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("bytes=%d", len(r.fs.Get(id).Content)), nil
	})
	return id, err
}

// prepared is the text the lexer reads plus what it took to produce it.
type prepared struct {
	file  *source.File
	files []source.FileID
	vars  *directive.VarTable
}

// prepare flattens includes and substitutes $variables until no include is
// left whose path can still be resolved. Diagnostics of earlier passes are
// discarded: every pass re-reads the whole text and reports them again.
func (r *run) prepare(root source.FileID) (*prepared, error) {
	out := &prepared{files: []source.FileID{root}}
	predefined := r.opts.predefined()
	cur := root
	var last []diag.Diagnostic

	for pass := 0; ; pass++ {
		collected := &diag.SliceReporter{}

		var flat *include.Result
		err := r.phase(StageInclude, func() (string, error) {
			var err error
			flat, err = include.FlattenFile(r.fs, cur, include.Options{
				IncludeDirs: r.opts.IncludeDirs,
				Reporter:    collected,
			})
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("files=%d", len(flat.Files)), nil
		})
		if err != nil {
			r.forward(collected.Items)
			return nil, err
		}
		out.files = append(out.files, flat.Files[1:]...)

		var exp *directive.Expansion
		err = r.phase(StageExpand, func() (string, error) {
			var err error
			exp, err = directive.Expand(r.fs.Get(flat.File), directive.Options{
				Reporter:   collected,
				Predefined: predefined,
			})
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("vars=%d subs=%d", exp.Vars.Len(), exp.Substitutions), nil
		})
		if err != nil {
			r.forward(collected.Items)
			return nil, err
		}
		last = collected.Items

		text := r.fs.Get(flat.File)
		if exp.Changed() {
			text = r.fs.Get(r.fs.AddDerived(text.Path, exp.Text, text.Flags, exp.Origins))
		}
		out.file, out.vars = text, exp.Vars

		resolvable := slices.ContainsFunc(exp.Includes, func(inc directive.Include) bool {
			return !strings.Contains(inc.Path, "$")
		})
		if !resolvable || !exp.Changed() || pass+1 >= maxIncludePasses {
			break
		}
		trace.Point(r.tracer, trace.ScopeDebug, "include_pass", fmt.Sprintf("pass=%d includes=%d", pass+1, len(exp.Includes)), r.parent)
		cur = text.ID
	}
	r.forward(last)
	r.read = len(out.files)
	return out, nil
}

func (r *run) forward(items []diag.Diagnostic) {
	for _, d := range items {
		r.report(d)
	}
}

// finish applies strict mode, orders the bag and appends the timing report.
func (r *run) finish(path string) *observ.Report {
	if r.opts.Strict {
		r.bag.Promote()
	}
	r.bag.Sort()
	if n := r.rep.Suppressed(); n > 0 {
		trace.Point(r.tracer, trace.ScopeDebug, "dedup", fmt.Sprintf("%d duplicate diagnostics", n), r.parent)
	}
	if r.timer == nil {
		return nil
	}
	report := r.timer.Report()
	appendTimingDiagnostic(r.bag, timingPayload{
		Path:    path,
		Files:   r.read,
		TotalMS: report.TotalMS,
		Phases:  report.Phases,
	})
	return &report
}

// isFatal reports whether err is a stage failure already recorded in the
// bag, as opposed to an I/O or cancellation error.
func isFatal(err error) bool {
	var (
		le *lexer.Error
		pe *parser.Error
		de *directive.Error
		ie *include.Error
	)
	return errors.As(err, &le) || errors.As(err, &pe) || errors.As(err, &de) || errors.As(err, &ie)
}
