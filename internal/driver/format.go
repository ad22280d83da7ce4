package driver

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"reindent/internal/diag"
	"reindent/internal/indent"
	"reindent/internal/lexer"
	"reindent/internal/observ"
	"reindent/internal/source"
)

// FixResult captures the outcome for a single file.
type FixResult struct {
	Path      string
	Changed   bool
	Err       error
	Formatted []byte // set in Stdout mode
	Diff      string // set when Options.Diff is on and the file changed
	Indent    indent.Result
	Cached    bool // the file was known clean and skipped
	Timings   observ.Report
	FileSet   *source.FileSet
	Bag       *diag.Bag
}

// FixPaths reindents the provided files or directories.
// When opts.Check is true, files are not modified; Changed tells whether they
// would be. When opts.Stdout is true, rewritten content is returned in the
// results without touching the files on disk.
func FixPaths(ctx context.Context, paths []string, opts Options) ([]FixResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := CollectFiles(ctx, paths, opts.Config)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	log := opts.logger()
	log.WithFields(logrus.Fields{
		"files":  len(files),
		"target": opts.Config.Indent.Describe(),
		"check":  opts.Check,
	}).Debug("reindent: start")

	for _, path := range files {
		emit(opts.Progress, path, StageLex, StatusQueued, nil, 0)
	}

	results := make([]FixResult, len(files))
	err = forEachFile(ctx, files, opts.Config.Jobs, func(_ context.Context, i int, path string) {
		results[i] = fixSingleFile(path, opts, log)
	})
	return results, err
}

func fixSingleFile(path string, opts Options, log *logrus.Logger) FixResult {
	result := FixResult{Path: path, FileSet: source.NewFileSet(), Bag: diag.NewBag(opts.maxDiagnostics())}
	entry := log.WithField("file", path)
	timer := observ.NewTimer()
	started := time.Now()
	fail := func(stage Stage, err error) FixResult {
		result.Err = err
		result.Timings = timer.Report()
		emit(opts.Progress, path, stage, StatusError, err, time.Since(started))
		return result
	}

	emit(opts.Progress, path, StageLex, StatusWorking, nil, 0)
	phase := timer.Begin(string(StageLex))
	// #nosec G304 -- path comes from CollectFiles
	raw, err := os.ReadFile(path)
	if err != nil {
		timer.End(phase, "load failed")
		entry.WithError(err).Warn("reindent: load failed")
		return fail(StageLex, err)
	}
	target := opts.Config.Indent
	key := cacheKey(raw, target, opts)
	if payload, ok, err := opts.Cache.get(key); err != nil {
		entry.WithError(err).Debug("reindent: cache read failed")
	} else if ok {
		timer.End(phase, "cached")
		result.Cached = true
		if opts.Stdout {
			result.Formatted = raw
		}
		result.Indent = indent.Result{Source: indent.Unit(payload.Source), Target: target}
		result.Timings = timer.Report()
		entry.Debug("reindent: cache hit")
		emit(opts.Progress, path, StageFix, StatusDone, nil, time.Since(started))
		return result
	}
	sf := result.FileSet.Get(result.FileSet.AddRaw(path, raw))
	reporter := (&lexer.ReporterAdapter{Bag: result.Bag}).Reporter()
	lexOpts := opts.lexerOptions()
	lexOpts.Reporter = reporter
	stream := lexer.Tokenize(sf, lexOpts)
	timer.End(phase, fmt.Sprintf("%d tokens", stream.Len()))
	if result.Bag.HasErrors() {
		entry.WithField("diagnostics", result.Bag.Len()).Warn("reindent: skipped, lexer errors")
		return fail(StageLex, fmt.Errorf("%s: %w", path, ErrLexErrors))
	}

	emit(opts.Progress, path, StageFix, StatusWorking, nil, 0)
	phase = timer.Begin(string(StageFix))
	res := indent.Fixer{Target: target, Reporter: reporter}.Fix(stream)
	formatted := []byte(stream.Render())
	timer.End(phase, fmt.Sprintf("%s -> %s", res.Source.Describe(), res.Target.Describe()))
	result.Indent = res

	changed := !bytes.Equal(sf.Content, formatted)
	entry.WithFields(logrus.Fields{
		"source":    res.Source.Describe(),
		"target":    res.Target.Describe(),
		"rewritten": res.Rewritten,
		"skipped":   len(res.Skipped),
		"changed":   changed,
	}).Debug("reindent: file processed")

	if changed && opts.Diff {
		result.Diff = RenderDiff(path, string(sf.Content), string(formatted))
	}

	remember := func(content []byte, src indent.Unit) {
		payload := &cachePayload{Schema: cacheSchemaVersion, Path: path, Source: string(src), Target: string(target)}
		if err := opts.Cache.put(cacheKey(content, target, opts), payload); err != nil {
			entry.WithError(err).Debug("reindent: cache write failed")
		}
	}

	switch {
	case !changed:
		if opts.Stdout {
			result.Formatted = raw
		}
		remember(raw, res.Source)
	case opts.Check:
		result.Changed = true
	case opts.Stdout:
		result.Changed = true
		result.Formatted = sf.Denormalize(formatted)
	default:
		emit(opts.Progress, path, StageWrite, StatusWorking, nil, 0)
		phase = timer.Begin(string(StageWrite))
		out := sf.Denormalize(formatted)
		err := writeFile(path, out)
		timer.End(phase, "")
		if err != nil {
			entry.WithError(err).Warn("reindent: write failed")
			return fail(StageWrite, err)
		}
		result.Changed = true
		// Tab to tab leaves whitespace alone while comments are rewritten,
		// so another pass would change the file again.
		if len(res.Skipped) == 0 || res.Source == target {
			remember(out, target)
		}
	}

	result.Timings = timer.Report()
	emit(opts.Progress, path, StageFix, StatusDone, nil, time.Since(started))
	return result
}

// writeFile replaces path keeping its permission bits.
func writeFile(path string, content []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	return os.WriteFile(path, content, mode.Perm())
}

// FixFile lexes sf, runs the indentation fixer and renders the stream back.
// Diagnostics from both phases go to bag. When the lexer reports errors the
// original content is returned.
func FixFile(sf *source.File, target indent.Unit, lexOpts lexer.Options, bag *diag.Bag) ([]byte, indent.Result) {
	reporter := (&lexer.ReporterAdapter{Bag: bag}).Reporter()
	lexOpts.Reporter = reporter
	stream := lexer.Tokenize(sf, lexOpts)
	if bag.HasErrors() {
		return sf.Content, indent.Result{Target: target}
	}

	res := indent.Fixer{Target: target, Reporter: reporter}.Fix(stream)
	return []byte(stream.Render()), res
}
