package lexer

import (
	"testing"

	"reindent/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.c", []byte(content))
	return fs.Get(id)
}

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))

	for _, want := range []byte{'a', '\n', 'b'} {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Bump(); got != want {
			t.Fatalf("Bump() = %q, want %q", got, want)
		}
	}
	if !cursor.EOF() {
		t.Error("Expected EOF at end")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Error("Peek/Bump past EOF must return 0")
	}
}

func TestPeekAtAndEat(t *testing.T) {
	cursor := NewCursor(createFile("/*x"))
	if cursor.PeekAt(1) != '*' || cursor.PeekAt(3) != 0 {
		t.Fatalf("PeekAt mismatch")
	}
	if cursor.Eat('*') {
		t.Fatal("Eat must not consume a different byte")
	}
	m := cursor.Mark()
	if !cursor.Eat('/') || !cursor.Eat('*') {
		t.Fatal("Eat failed on matching bytes")
	}
	if got := cursor.TextFrom(m); got != "/*" {
		t.Fatalf("TextFrom = %q", got)
	}
	if sp := cursor.SpanFrom(m); sp.Start != 0 || sp.End != 2 {
		t.Fatalf("SpanFrom = %v", sp)
	}
}
