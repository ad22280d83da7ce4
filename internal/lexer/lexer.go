package lexer

import (
	"reindent/internal/source"
	"reindent/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next возвращает следующий токен. Пробелы и комментарии являются обычными токенами
// потока, а не trivia. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off},
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case isSpaceByte(ch):
		return lx.scanWhitespace()
	case lx.startsComment():
		return lx.scanComment()
	case isQuoteByte(ch):
		return lx.scanString()
	default:
		return lx.scanOther()
	}
}

// Tokenize lexes the whole file. The returned stream always ends with EOF.
func Tokenize(file *source.File, opts Options) token.Stream {
	lx := New(file, opts)
	toks := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return token.NewStream(toks)
}

func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isSpaceByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.emit(token.Whitespace, start)
}

// scanOther съедает всё до пробела, комментария или кавычки.
func (lx *Lexer) scanOther() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		if isSpaceByte(ch) || isQuoteByte(ch) || lx.startsComment() {
			break
		}
		lx.cursor.Bump()
	}
	return lx.emit(token.Other, start)
}

func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	return token.Token{
		Kind: kind,
		Span: lx.cursor.SpanFrom(start),
		Text: lx.cursor.TextFrom(start),
	}
}
