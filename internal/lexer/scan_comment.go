package lexer

import (
	"reindent/internal/diag"
	"reindent/internal/token"
)

// scanComment handles // , ///, # and /* */ , /** */.
// Line comments own their terminating '\n'.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	if lx.cursor.Eat('#') {
		return lx.finishLineComment(start, token.Comment)
	}

	lx.cursor.Bump() // '/'
	switch lx.cursor.Bump() {
	case '/':
		kind := token.Comment
		// "///x" это doc, "////" обычный комментарий
		if lx.cursor.Peek() == '/' && lx.cursor.PeekAt(1) != '/' {
			kind = token.DocComment
		}
		return lx.finishLineComment(start, kind)
	default: // '*'
		kind := token.Comment
		// "/**/" это пустой обычный комментарий
		if lx.cursor.Peek() == '*' && lx.cursor.PeekAt(1) != '/' {
			kind = token.DocComment
		}
		return lx.finishBlockComment(start, kind)
	}
}

func (lx *Lexer) finishLineComment(start Mark, kind token.Kind) token.Token {
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() == '\n' {
			break
		}
	}
	return lx.emit(kind, start)
}

func (lx *Lexer) finishBlockComment(start Mark, kind token.Kind) token.Token {
	depth := 1
	for !lx.cursor.EOF() && depth > 0 {
		b0, b1 := lx.cursor.Peek(), lx.cursor.PeekAt(1)
		if b0 == '*' && b1 == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			depth--
			continue
		}
		if lx.opts.NestedBlockComments && b0 == '/' && b1 == '*' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			depth++
			continue
		}
		lx.cursor.Bump()
	}
	if depth > 0 {
		lx.errLex(diag.LexUnterminatedBlockComment, start, "unterminated block comment")
	}
	return lx.emit(kind, start)
}
