package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"reindent/internal/driver"
	"reindent/internal/indent"
)

func withoutColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestReadUIMode(t *testing.T) {
	cases := []struct {
		input string
		want  uiMode
	}{
		{"", uiModeOff},
		{"off", uiModeOff},
		{" ON ", uiModeOn},
		{"auto", uiModeAuto},
	}
	for _, tc := range cases {
		got, err := readUIMode(tc.input)
		if err != nil {
			t.Fatalf("readUIMode(%q) error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("readUIMode(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
	if _, err := readUIMode("fancy"); err == nil {
		t.Fatalf("readUIMode(fancy) should fail")
	}
}

func TestRenderInferText(t *testing.T) {
	withoutColor(t)
	var out bytes.Buffer
	renderInferText(&out, []driver.InferResult{
		{Path: "a.c", Inference: indent.Inference{Unit: indent.Spaces(4), Samples: []string{"    ", "        "}}},
		{Path: "b.c", Inference: indent.Inference{Unit: indent.Tab, Fallback: true}},
		{Path: "c.c", Err: errors.New("boom")},
	})
	want := "a.c: 4 spaces (samples \"    \", \"        \")\n" +
		"b.c: 1 tab (no indented lines, configured unit)\n" +
		"c.c: boom\n"
	if out.String() != want {
		t.Fatalf("output mismatch:\n%s", out.String())
	}
}

func TestRenderFixText(t *testing.T) {
	withoutColor(t)
	var out, errOut bytes.Buffer
	results := []driver.FixResult{
		{Path: "same.c"},
		{Path: "a.c", Changed: true, Indent: indent.Result{Source: indent.Spaces(2), Target: indent.Tab}},
	}
	hasErrors, hasChanges := renderFixText(&out, &errOut, results, false, false)
	if hasErrors || !hasChanges {
		t.Fatalf("hasErrors=%v hasChanges=%v", hasErrors, hasChanges)
	}
	if got := out.String(); got != "reindented a.c (2 spaces -> 1 tab)\n" {
		t.Fatalf("output = %q", got)
	}

	out.Reset()
	renderFixText(&out, &errOut, results, true, false)
	if got := out.String(); got != "a.c\n" {
		t.Fatalf("check output = %q", got)
	}
}

func TestRenderFixJSON(t *testing.T) {
	var out bytes.Buffer
	results := []driver.FixResult{
		{Path: "a.c", Changed: true, Indent: indent.Result{Applied: true, Source: indent.Spaces(4), Rewritten: 3}},
	}
	if err := renderFixJSON(&out, results, true); err != nil {
		t.Fatalf("renderFixJSON: %v", err)
	}
	var decoded []map[string]any
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(decoded) != 1 || decoded[0]["source"] != "4 spaces" || decoded[0]["rewritten"] != float64(3) || decoded[0]["check"] != true {
		t.Fatalf("unexpected payload: %v", decoded)
	}
}

func TestPrintDiffKeepsLines(t *testing.T) {
	withoutColor(t)
	var out bytes.Buffer
	diff := "--- a.c\n+++ a.c\n@@ -2 +2 @@\n-  x\n+\tx\n"
	printDiff(&out, diff)
	if out.String() != diff {
		t.Fatalf("printDiff = %q", out.String())
	}
}

func TestRenderVersionJSON(t *testing.T) {
	var out bytes.Buffer
	if err := renderVersionJSON(&out, false); err != nil {
		t.Fatalf("renderVersionJSON: %v", err)
	}
	if !strings.Contains(out.String(), `"tool": "reindent"`) || strings.Contains(out.String(), "git_commit") {
		t.Fatalf("unexpected payload: %s", out.String())
	}
}
