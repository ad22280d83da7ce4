package token_test

import (
	"testing"

	"reindent/internal/token"
)

func TestKindString(t *testing.T) {
	tests := map[token.Kind]string{
		token.Invalid:    "Invalid",
		token.EOF:        "EOF",
		token.Whitespace: "Whitespace",
		token.Comment:    "Comment",
		token.DocComment: "DocComment",
		token.Other:      "Other",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestIsComment(t *testing.T) {
	for _, k := range []token.Kind{token.Comment, token.DocComment} {
		if !k.IsComment() {
			t.Fatalf("%v should be a comment kind", k)
		}
	}
	for _, k := range []token.Kind{token.Whitespace, token.Other, token.EOF} {
		if k.IsComment() {
			t.Fatalf("%v must NOT be a comment kind", k)
		}
	}
}
