package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"sfzkit/internal/observ"
	"sfzkit/internal/trace"
)

// ParseDirResult содержит результат разбора одного инструмента
type ParseDirResult struct {
	Path    string       // путь относительно корня обхода
	Result  *ParseResult // nil, если ответил кэш или файл не прочитан
	Summary Summary
	Cached  bool
	Err     error // ошибка чтения файла
}

// DirResult is the outcome of a directory run, in path order.
type DirResult struct {
	Dir    string
	Files  []ParseDirResult
	Timing *observ.Report // phases summed over all instruments
}

// Failed counts instruments that did not parse cleanly.
func (r *DirResult) Failed() int {
	n := 0
	for _, f := range r.Files {
		if f.Err != nil || f.Summary.Failed {
			n++
		}
	}
	return n
}

// ListSFZFiles возвращает отсортированный список всех *.sfz файлов в директории
func ListSFZFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".sfz") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// ParseDir разбирает все *.sfz файлы в директории параллельно. Файлы,
// которые подключаются через #include, разбираются и как самостоятельные
// инструменты, если лежат с расширением .sfz.
func ParseDir(ctx context.Context, dir string, opts Options) (*DirResult, error) {
	files, err := ListSFZFiles(dir)
	if err != nil {
		return nil, err
	}
	out := &DirResult{Dir: dir, Files: make([]ParseDirResult, len(files))}
	if len(files) == 0 {
		return out, nil
	}

	for _, path := range files {
		emit(opts.Progress, relPath(dir, path), "", StatusQueued, nil, 0)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	var total *observ.Timer
	if opts.EnableTimings {
		total = observ.NewTimer()
	}
	optsKey := optionsDigest(&opts)
	// пути в диагностиках те же, что в событиях прогресса
	opts.baseDir = dir
	tracer := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx).SpanID

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			rel := relPath(dir, path)
			span := trace.Begin(tracer, trace.ScopeFile, rel, parent)
			fileCtx := trace.WithSpanContext(gctx, trace.SpanContext{SpanID: span.ID(), Instrument: rel})
			started := time.Now()

			item, err := parseOne(fileCtx, path, rel, opts, optsKey, total)
			if err != nil {
				span.End("canceled")
				return err
			}
			out.Files[i] = item

			status := StatusDone
			switch {
			case item.Cached:
				status = StatusCached
			case item.Err != nil || item.Summary.Failed:
				status = StatusError
			}
			span.Fail(item.Err).End(string(status))
			emit(opts.Progress, rel, StageBuild, status, item.Err, time.Since(started))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return out, err
	}
	if total != nil {
		report := total.Report()
		out.Timing = &report
	}
	return out, nil
}

func parseOne(ctx context.Context, path, rel string, opts Options, optsKey Digest, total *observ.Timer) (ParseDirResult, error) {
	item := ParseDirResult{Path: rel}
	key := cacheKey(path, optsKey)
	if opts.Cache != nil {
		if sum, ok := opts.Cache.lookup(key); ok {
			trace.PointHere(ctx, trace.ScopeDebug, "cache_hit", "")
			item.Summary, item.Cached = sum, true
			return item, nil
		}
	}

	opts.label = rel
	res, err := Parse(ctx, path, opts)
	if err != nil {
		if ctx.Err() != nil {
			return item, ctx.Err()
		}
		item.Err = err
		item.Summary = Summary{Path: path, LoKey: -1, HiKey: -1, Errors: 1, Failed: true}
		return item, nil
	}
	item.Result = res
	item.Summary = Summarize(res)
	if res.Timing != nil {
		for _, p := range res.Timing.Phases {
			total.Add(p.Name, time.Duration(p.DurationMS*float64(time.Millisecond)))
		}
	}
	if err := opts.Cache.store(key, res, item.Summary); err != nil {
		trace.PointHere(ctx, trace.ScopeDebug, "cache_store_failed", err.Error())
	}
	return item, nil
}

func relPath(dir, path string) string {
	if rel, err := filepath.Rel(dir, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return path
}
