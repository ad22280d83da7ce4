package lexer

import (
	"unicode/utf8"

	"reindent/internal/diag"
	"reindent/internal/token"
)

// "..." и '...' обрываются на переводе строки, `...` только на закрывающей кавычке.
// Содержимое литерала не валидируется: нужно лишь не принять "/*" внутри строки за комментарий.
func (lx *Lexer) scanString() token.Token {
	if lx.cursor.Peek() == '\'' && !lx.charLiteralAhead() {
		// 'static, 'a: метки времени жизни и прочие одиночные апострофы
		return lx.scanOther()
	}
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	raw := quote == '`'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			return lx.emit(token.Other, start)
		}
		if b == '\n' && !raw {
			lx.errLex(diag.LexUnterminatedString, start, "newline in string literal")
			return lx.emit(token.Invalid, start)
		}
		if b == '\\' && !raw {
			lx.cursor.Bump() // экранированный байт, включая '\n', съедаем ниже
		}
		lx.cursor.Bump()
	}
	lx.errLex(diag.LexUnterminatedString, start, "unterminated string literal")
	return lx.emit(token.Invalid, start)
}

// charLiteralAhead reports whether the '\'' under the cursor opens a character
// literal: an escape ('\n', '\x41', '\u{1F600}') or exactly one rune followed
// by a closing quote.
func (lx *Lexer) charLiteralAhead() bool {
	rest := lx.cursor.File.Content[lx.cursor.Off+1:]
	if len(rest) == 0 {
		return false
	}
	if rest[0] == '\\' {
		return true
	}
	if rest[0] == '\n' || rest[0] == '\'' {
		return false
	}
	_, size := utf8.DecodeRune(rest)
	return size < len(rest) && rest[size] == '\''
}
