package token_test

import (
	"testing"

	"reindent/internal/token"
)

func sample() token.Stream {
	return token.NewStream([]token.Token{
		{Kind: token.Other, Text: "int"},
		{Kind: token.Whitespace, Text: " "},
		{Kind: token.Other, Text: "x;"},
		{Kind: token.Comment, Text: "// c\n"},
		{Kind: token.Whitespace, Text: "    "},
		{Kind: token.EOF},
	})
}

func TestStreamRender(t *testing.T) {
	if got := sample().Render(); got != "int x;// c\n    " {
		t.Fatalf("Render = %q", got)
	}
}

func TestStreamPrev(t *testing.T) {
	s := sample()
	if _, ok := s.Prev(0); ok {
		t.Fatal("Prev(0) must report no token")
	}
	prev, ok := s.Prev(4)
	if !ok || prev.Kind != token.Comment || !prev.HasNewline() {
		t.Fatalf("Prev(4) = %+v, %v", prev, ok)
	}
}

func TestStreamReplaceKeepsShape(t *testing.T) {
	s := sample()
	before := s.Kinds()
	s.Replace(4, s.At(4).WithText("\t"))
	if s.At(4).Text != "\t" {
		t.Fatalf("replacement not written: %q", s.At(4).Text)
	}
	after := s.Kinds()
	if len(before) != len(after) {
		t.Fatalf("length changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("kind at %d changed: %v -> %v", i, before[i], after[i])
		}
	}
}

func TestStreamReplaceRejectsKindChange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on kind change")
		}
	}()
	s := sample()
	s.Replace(1, token.Token{Kind: token.Comment, Text: " "})
}

func TestStreamHasAny(t *testing.T) {
	s := token.NewStream([]token.Token{{Kind: token.Other, Text: "x"}, {Kind: token.EOF}})
	if s.HasAny(token.Whitespace, token.Comment, token.DocComment) {
		t.Fatal("stream has no whitespace or comments")
	}
	if !sample().HasAny(token.Comment) {
		t.Fatal("sample has a comment")
	}
}
