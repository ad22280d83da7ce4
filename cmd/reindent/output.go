package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"reindent/internal/diag"
	"reindent/internal/driver"
	"reindent/internal/source"
)

var (
	errorColor  = color.New(color.FgRed, color.Bold)
	warnColor   = color.New(color.FgYellow, color.Bold)
	infoColor   = color.New(color.FgCyan)
	removeColor = color.New(color.FgRed)
	addColor    = color.New(color.FgGreen)
	hunkColor   = color.New(color.FgCyan)
	pathColor   = color.New(color.Bold)
)

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}

// printDiagnostics renders one line per diagnostic: path:line:col: SEVERITY [CODE] message.
func printDiagnostics(w io.Writer, path string, fs *source.FileSet, bag *diag.Bag) {
	if bag == nil || fs == nil {
		return
	}
	bag.Sort()
	for _, d := range bag.Items() {
		start, _ := fs.Resolve(d.Primary)
		fmt.Fprintf(w, "%s:%d:%d: %s [%s] %s\n",
			path, start.Line, start.Col,
			severityColor(d.Severity).Sprint(d.Severity.String()),
			d.Code.ID(), d.Message)
	}
	if n := bag.Dropped(); n > 0 {
		fmt.Fprintf(w, "%s: %d more diagnostic(s) not shown\n", path, n)
	}
}

// printDiff colors a driver.RenderDiff payload line by line.
func printDiff(w io.Writer, diff string) {
	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
			fmt.Fprintln(w, pathColor.Sprint(line))
		case strings.HasPrefix(line, "@@"):
			fmt.Fprintln(w, hunkColor.Sprint(line))
		case strings.HasPrefix(line, "-"):
			fmt.Fprintln(w, removeColor.Sprint(line))
		case strings.HasPrefix(line, "+"):
			fmt.Fprintln(w, addColor.Sprint(line))
		default:
			fmt.Fprintln(w, line)
		}
	}
}

func printTimings(w io.Writer, results []driver.FixResult) {
	for _, res := range results {
		if len(res.Timings.Phases) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s\n%s", pathColor.Sprint(res.Path), res.Timings.String())
	}
}
