package driver

import (
	"context"

	"reindent/internal/indent"
)

// InferResult reports the indentation unit detected in one file.
type InferResult struct {
	Path      string
	Inference indent.Inference
	Err       error
}

// InferPaths runs inference only; nothing is rewritten. Files without any
// indented line report the configured unit with Fallback set.
func InferPaths(ctx context.Context, paths []string, opts Options) ([]InferResult, error) {
	files, err := CollectFiles(ctx, paths, opts.Config)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	results := make([]InferResult, len(files))
	err = forEachFile(ctx, files, opts.Config.Jobs, func(_ context.Context, i int, path string) {
		results[i] = InferResult{Path: path}
		tr, err := Tokenize(path, opts)
		if err != nil {
			results[i].Err = err
			return
		}
		results[i].Inference = indent.InferReport(tr.Stream, opts.Config.Indent)
	})
	return results, err
}
