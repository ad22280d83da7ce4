package lexer_test

import (
	"testing"

	"reindent/internal/diag"
	"reindent/internal/lexer"
	"reindent/internal/source"
	"reindent/internal/token"
)

type tk struct {
	kind token.Kind
	text string
}

// lexAll создаёт файл из строки и собирает поток до EOF
func lexAll(t *testing.T, input string, opts lexer.Options) (token.Stream, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.c", []byte(input)))
	bag := diag.NewBag(16)
	opts.Reporter = (&lexer.ReporterAdapter{Bag: bag}).Reporter()
	return lexer.Tokenize(file, opts), bag
}

func checkTokens(t *testing.T, s token.Stream, want []tk) {
	t.Helper()
	got := s.Tokens()
	if len(got) != len(want)+1 {
		t.Fatalf("expected %d tokens + EOF, got %d: %+v", len(want), len(got), got)
	}
	for i, w := range want {
		if got[i].Kind != w.kind || got[i].Text != w.text {
			t.Errorf("token %d: got %v %q, want %v %q", i, got[i].Kind, got[i].Text, w.kind, w.text)
		}
	}
	if last := got[len(got)-1]; last.Kind != token.EOF || last.Text != "" {
		t.Errorf("stream must end with empty EOF, got %v %q", last.Kind, last.Text)
	}
}

func TestWhitespaceAndCode(t *testing.T) {
	s, bag := lexAll(t, "int main() {\n\treturn 0;\n}\n", lexer.Options{})
	checkTokens(t, s, []tk{
		{token.Other, "int"},
		{token.Whitespace, " "},
		{token.Other, "main()"},
		{token.Whitespace, " "},
		{token.Other, "{"},
		{token.Whitespace, "\n\t"},
		{token.Other, "return"},
		{token.Whitespace, " "},
		{token.Other, "0;"},
		{token.Whitespace, "\n"},
		{token.Other, "}"},
		{token.Whitespace, "\n"},
	})
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
}

func TestLineCommentOwnsNewline(t *testing.T) {
	s, _ := lexAll(t, "x; // note\n    y;", lexer.Options{})
	checkTokens(t, s, []tk{
		{token.Other, "x;"},
		{token.Whitespace, " "},
		{token.Comment, "// note\n"},
		{token.Whitespace, "    "},
		{token.Other, "y;"},
	})
}

func TestCommentKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  token.Kind
	}{
		{"line", "// c", token.Comment},
		{"doc line", "/// d", token.DocComment},
		{"four slashes", "//// banner", token.Comment},
		{"block", "/* b */", token.Comment},
		{"empty block", "/**/", token.Comment},
		{"doc block", "/** d */", token.DocComment},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := lexAll(t, tt.input, lexer.Options{})
			checkTokens(t, s, []tk{{tt.kind, tt.input}})
		})
	}
}

func TestCommentMarkersInsideStrings(t *testing.T) {
	s, bag := lexAll(t, `p = "/* no */";`+"\n", lexer.Options{})
	checkTokens(t, s, []tk{
		{token.Other, "p"},
		{token.Whitespace, " "},
		{token.Other, "="},
		{token.Whitespace, " "},
		{token.Other, `"/* no */"`},
		{token.Other, ";"},
		{token.Whitespace, "\n"},
	})
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
}

func TestHashCommentsOption(t *testing.T) {
	s, _ := lexAll(t, "# c\n  x", lexer.Options{HashComments: true})
	checkTokens(t, s, []tk{
		{token.Comment, "# c\n"},
		{token.Whitespace, "  "},
		{token.Other, "x"},
	})

	s, _ = lexAll(t, "#include", lexer.Options{})
	checkTokens(t, s, []tk{{token.Other, "#include"}})
}

func TestNestedBlockComments(t *testing.T) {
	input := "/* a /* b */ c */"
	s, bag := lexAll(t, input, lexer.Options{NestedBlockComments: true})
	checkTokens(t, s, []tk{{token.Comment, input}})
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}

	s, _ = lexAll(t, input, lexer.Options{})
	checkTokens(t, s, []tk{
		{token.Comment, "/* a /* b */"},
		{token.Whitespace, " "},
		{token.Other, "c"},
		{token.Whitespace, " "},
		{token.Other, "*/"},
	})
}

func TestUnterminatedReportsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"block comment", "/* open\n  still", diag.LexUnterminatedBlockComment},
		{"string at eof", `"open`, diag.LexUnterminatedString},
		{"string at newline", "\"open\n", diag.LexUnterminatedString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, bag := lexAll(t, tt.input, lexer.Options{})
			if !bag.HasErrors() || bag.Items()[0].Code != tt.code {
				t.Fatalf("expected %v, got %+v", tt.code, bag.Items())
			}
			if s.Render() != tt.input {
				t.Fatalf("round trip broken: %q", s.Render())
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"\n\n",
		"/**\n * doc\n */\nfunc f() {\n\tx := `raw\n/* */`\n}\n",
		"a\\\nb 'c' \"d\\\"e\" // tail",
		"\t\t/* x */\t// y\n\r\n",
	}
	for _, in := range inputs {
		s, _ := lexAll(t, in, lexer.Options{HashComments: true})
		if got := s.Render(); got != in {
			t.Errorf("Render() = %q, want %q", got, in)
		}
	}
}

func TestSpansMatchText(t *testing.T) {
	input := "a /* b */\n  c"
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("s.c", []byte(input)))
	s := lexer.Tokenize(file, lexer.Options{})
	for i := 0; i < s.Len(); i++ {
		tok := s.At(i)
		if got := input[tok.Span.Start:tok.Span.End]; got != tok.Text {
			t.Errorf("token %d span %v covers %q, text %q", i, tok.Span, got, tok.Text)
		}
	}
}

func TestApostropheWithoutCharLiteral(t *testing.T) {
	s, bag := lexAll(t, "fn f(x: &'static str) {\n    g('a', '\\n');\n}\n", lexer.Options{})
	checkTokens(t, s, []tk{
		{token.Other, "fn"},
		{token.Whitespace, " "},
		{token.Other, "f(x:"},
		{token.Whitespace, " "},
		{token.Other, "&"},
		{token.Other, "'static"},
		{token.Whitespace, " "},
		{token.Other, "str)"},
		{token.Whitespace, " "},
		{token.Other, "{"},
		{token.Whitespace, "\n    "},
		{token.Other, "g("},
		{token.Other, "'a'"},
		{token.Other, ","},
		{token.Whitespace, " "},
		{token.Other, `'\n'`},
		{token.Other, ");"},
		{token.Whitespace, "\n"},
		{token.Other, "}"},
		{token.Whitespace, "\n"},
	})
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
}

func TestLifetimeDoesNotHideComment(t *testing.T) {
	s, _ := lexAll(t, "impl<'a> X<'a> { // c\n", lexer.Options{})
	toks := s.Tokens()
	last := toks[len(toks)-2]
	if last.Kind != token.Comment || last.Text != "// c\n" {
		t.Fatalf("expected trailing line comment, got %v %q", last.Kind, last.Text)
	}
}
