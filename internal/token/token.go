package token

import (
	"strings"

	"reindent/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// WithText returns a copy of t carrying text. Kind and Span are kept, so the
// span keeps pointing at the original bytes.
func (t Token) WithText(text string) Token {
	t.Text = text
	return t
}

// IsWhitespace reports whether the token is a whitespace run.
func (t Token) IsWhitespace() bool { return t.Kind == Whitespace }

// IsComment reports whether the token is a comment or a doc comment.
func (t Token) IsComment() bool { return t.Kind.IsComment() }

// HasNewline reports whether the token text contains a line break.
func (t Token) HasNewline() bool { return strings.IndexByte(t.Text, '\n') >= 0 }
