package driver

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"reindent/internal/config"
	"reindent/internal/lexer"
)

var (
	// ErrNoFiles is returned when the given paths contain no matching source files.
	ErrNoFiles = errors.New("no source files found")
	// ErrLexErrors marks files left untouched because the lexer reported errors.
	ErrLexErrors = errors.New("lexer errors present")
)

// Options configures a driver run.
type Options struct {
	Config         config.Config
	Check          bool // report only, never write
	Stdout         bool // return rewritten content instead of writing
	Diff           bool // attach a line diff to changed results
	MaxDiagnostics int
	Logger         *logrus.Logger
	Progress       ProgressSink // optional, receives per-file stage events
	Cache          *Cache       // optional, skips files already known clean
}

func (o Options) logger() *logrus.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func (o Options) lexerOptions() lexer.Options {
	return lexer.Options{HashComments: o.Config.HashComments}
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return 256
	}
	return o.MaxDiagnostics
}
