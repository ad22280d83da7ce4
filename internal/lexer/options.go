package lexer

import (
	"reindent/internal/diag"
)

type Options struct {
	Reporter diag.Reporter // может быть nil, тогда ошибки игнорируем (но продолжаем лексить)

	// HashComments treats '#' up to end of line as a line comment.
	HashComments bool
	// NestedBlockComments allows "/* /* */ */" nesting.
	NestedBlockComments bool
}

func (lx *Lexer) errLex(code diag.Code, m Mark, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, lx.cursor.SpanFrom(m), msg, nil)
	}
}
