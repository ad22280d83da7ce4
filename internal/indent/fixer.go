package indent

import (
	"fmt"

	"reindent/internal/diag"
	"reindent/internal/token"
)

// Applicable reports whether s holds anything the fixer can rewrite.
func Applicable(s token.Stream) bool {
	return s.HasAny(token.Comment, token.DocComment, token.Whitespace)
}

// Fixer drives inference and rewriting over one token stream.
type Fixer struct {
	Target   Unit
	Reporter diag.Reporter // optional
}

// Result summarises one Fix pass.
type Result struct {
	Source    Unit
	Target    Unit
	Inference Inference
	Applied   bool  // the stream passed the applicability gate
	Rewritten int   // tokens whose text changed
	Skipped   []int // indices of indented whitespace tokens left alone (tab to tab)
}

// Fix infers the source unit of s and rewrites s in place, index by index.
func (f Fixer) Fix(s token.Stream) Result {
	if !Applicable(s) {
		return Result{Target: f.Target}
	}

	inf := InferReport(s, f.Target)
	res := Result{Source: inf.Unit, Target: f.Target, Inference: inf, Applied: true}
	if inf.Unit.IsEmpty() {
		f.report(diag.IndentEmptyUnit, s, firstIndented(s),
			fmt.Sprintf("sampled runs %q give an empty indentation unit; nothing to rewrite", inf.Samples))
	}

	for i := 0; i < s.Len(); i++ {
		tok := s.At(i)
		var next token.Token
		switch {
		case tok.IsComment():
			next = RewriteComment(tok, res.Source, f.Target)
		case tok.IsWhitespace():
			var ok bool
			next, ok = RewriteWhitespace(s, i, res.Source, f.Target)
			if !ok {
				if indented(s, i) {
					res.Skipped = append(res.Skipped, i)
				}
				continue
			}
		default:
			continue
		}
		if next.Text != tok.Text {
			res.Rewritten++
		}
		s.Replace(i, next)
	}

	if len(res.Skipped) > 0 && res.Source != f.Target {
		f.report(diag.IndentTabToTabSkipped, s, res.Skipped[0],
			fmt.Sprintf("indentation uses %s, target is %s; %d tab-indented token(s) left unchanged",
				res.Source.Describe(), f.Target.Describe(), len(res.Skipped)))
	}
	return res
}

func (f Fixer) report(code diag.Code, s token.Stream, idx int, msg string) {
	if f.Reporter == nil {
		return
	}
	var tok token.Token
	if idx >= 0 && idx < s.Len() {
		tok = s.At(idx)
	}
	f.Reporter.Report(code, diag.SevInfo, tok.Span, msg, nil)
}

func firstIndented(s token.Stream) int {
	for i := 0; i < s.Len(); i++ {
		if indented(s, i) {
			return i
		}
	}
	return -1
}

// indented reports whether the whitespace token at i carries line indentation,
// either after its own line break or after one owned by the previous token.
func indented(s token.Stream, i int) bool {
	tok := s.At(i)
	if !tok.IsWhitespace() {
		return false
	}
	if lineIndent.MatchString(tok.Text) {
		return true
	}
	prev, ok := s.Prev(i)
	return ok && prev.HasNewline() && tok.Text != "" && (tok.Text[0] == ' ' || tok.Text[0] == '\t')
}
