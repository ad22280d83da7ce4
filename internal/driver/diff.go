package driver

import (
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// RenderDiff returns a line diff between before and after: changed lines only,
// each block introduced by an "@@ -old +new @@" header. Tabs are kept
// verbatim. An empty string means no difference.
func RenderDiff(path, before, after string) string {
	if before == after {
		return ""
	}
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s\n", path, path)
	oldLine, newLine := 1, 1
	inBlock := false
	for _, d := range diffs {
		chunk := splitLines(d.Text)
		switch d.Type {
		case diffpatch.DiffEqual:
			oldLine += len(chunk)
			newLine += len(chunk)
			inBlock = false
		case diffpatch.DiffDelete:
			if !inBlock {
				fmt.Fprintf(&sb, "@@ -%d +%d @@\n", oldLine, newLine)
				inBlock = true
			}
			for _, l := range chunk {
				sb.WriteString("-" + l + "\n")
			}
			oldLine += len(chunk)
		case diffpatch.DiffInsert:
			if !inBlock {
				fmt.Fprintf(&sb, "@@ -%d +%d @@\n", oldLine, newLine)
				inBlock = true
			}
			for _, l := range chunk {
				sb.WriteString("+" + l + "\n")
			}
			newLine += len(chunk)
		}
	}
	return sb.String()
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{""}
	}
	return strings.Split(text, "\n")
}
