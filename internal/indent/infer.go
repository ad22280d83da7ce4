package indent

import (
	"regexp"
	"strings"

	"reindent/internal/token"
)

// lineIndent matches line breaks followed by the indentation of the next line.
var lineIndent = regexp.MustCompile(`(\n+)([ \t]+)`)

// maxSamples is the number of distinct-length runs inference needs.
const maxSamples = 2

// Inference describes how a unit was derived.
type Inference struct {
	Unit     Unit
	Samples  []string // recorded runs in order of appearance, at most 2
	Fallback bool     // no samples, Unit is the fallback
}

// Infer returns the indentation unit used by s, or fallback when s carries no
// indentation at all. It never fails; the result may be empty when the two
// sampled depths have the same tab (or space) count.
func Infer(s token.Stream, fallback Unit) Unit {
	return InferReport(s, fallback).Unit
}

// InferReport is Infer with the sampled evidence attached.
func InferReport(s token.Stream, fallback Unit) Inference {
	samples := make([]string, 0, maxSamples)
	seen := make(map[int]struct{}, maxSamples)

	for i := 0; i < s.Len() && len(samples) < maxSamples; i++ {
		tok := s.At(i)
		if !tok.IsWhitespace() {
			continue
		}
		m := lineIndent.FindStringSubmatch(tok.Text)
		if m == nil {
			continue
		}
		run := m[2]
		if _, dup := seen[len(run)]; dup {
			continue
		}
		seen[len(run)] = struct{}{}
		samples = append(samples, run)
	}

	switch len(samples) {
	case 0:
		return Inference{Unit: fallback, Fallback: true}
	case 1:
		return Inference{Unit: Unit(samples[0]), Samples: samples}
	}
	return Inference{Unit: depthDifference(samples[0], samples[1]), Samples: samples}
}

// depthDifference derives one level from two observed depths. The first run
// alone decides between tabs and spaces, even when the second one is mixed.
func depthDifference(c0, c1 string) Unit {
	if strings.IndexByte(c0, '\t') >= 0 {
		return Tabs(absDiff(strings.Count(c0, "\t"), strings.Count(c1, "\t")))
	}
	return Spaces(absDiff(strings.Count(c0, " "), strings.Count(c1, " ")))
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
