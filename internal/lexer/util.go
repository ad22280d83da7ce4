package lexer

// ===== Классификаторы =====

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isQuoteByte(b byte) bool {
	return b == '"' || b == '\'' || b == '`'
}

// startsComment reports whether the cursor sits on a comment opener.
func (lx *Lexer) startsComment() bool {
	switch lx.cursor.Peek() {
	case '/':
		next := lx.cursor.PeekAt(1)
		return next == '/' || next == '*'
	case '#':
		return lx.opts.HashComments
	}
	return false
}
