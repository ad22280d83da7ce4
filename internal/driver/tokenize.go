package driver

import (
	"reindent/internal/diag"
	"reindent/internal/lexer"
	"reindent/internal/source"
	"reindent/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Stream  token.Stream
	Bag     *diag.Bag
}

func Tokenize(path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(opts.maxDiagnostics())
	lexOpts := opts.lexerOptions()
	lexOpts.Reporter = (&lexer.ReporterAdapter{Bag: bag}).Reporter()

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Stream:  lexer.Tokenize(file, lexOpts),
		Bag:     bag,
	}, nil
}
