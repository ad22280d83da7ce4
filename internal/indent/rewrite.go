package indent

import (
	"regexp"
	"strings"

	"reindent/internal/token"
)

// lineStartRun matches the leading horizontal whitespace of every line.
var lineStartRun = regexp.MustCompile(`(?m)^[ \t]+`)

// substitute replaces every src with dst inside run. An empty src is a no-op.
func substitute(run string, src, dst Unit) string {
	if src == "" {
		return run
	}
	return strings.ReplaceAll(run, string(src), string(dst))
}

// RewriteComment rewrites the line-start indentation runs of a comment token.
// Text after the first non-blank character of a line is never touched.
func RewriteComment(tok token.Token, src, dst Unit) token.Token {
	text := lineStartRun.ReplaceAllStringFunc(tok.Text, func(run string) string {
		return substitute(run, src, dst)
	})
	return tok.WithText(text)
}

// RewriteWhitespace rewrites the indentation inside the whitespace token at
// index i. When the previous token already contains a line break, the token
// is treated as continuing that break.
//
// ok is false when both units use tabs: there is no safe way to convert
// between two tab-based schemes, so the original token is returned.
func RewriteWhitespace(s token.Stream, i int, src, dst Unit) (tok token.Token, ok bool) {
	tok = s.At(i)
	if src.HasTab() && dst.HasTab() {
		return tok, false
	}

	text := tok.Text
	continued := false
	if prev, has := s.Prev(i); has && prev.HasNewline() {
		text = "\n" + text
		continued = true
	}

	text = replaceIndentRuns(text, src, dst)
	if continued {
		text = text[1:]
	}
	return tok.WithText(text), true
}

// replaceIndentRuns keeps every "\n+" verbatim and rewrites the run that follows it.
func replaceIndentRuns(text string, src, dst Unit) string {
	matches := lineIndent.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return text
	}
	var sb strings.Builder
	sb.Grow(len(text))
	last := 0
	for _, m := range matches {
		runStart, runEnd := m[4], m[5]
		sb.WriteString(text[last:runStart])
		sb.WriteString(substitute(text[runStart:runEnd], src, dst))
		last = runEnd
	}
	sb.WriteString(text[last:])
	return sb.String()
}
