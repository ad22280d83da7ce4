package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"reindent/internal/driver"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <path> [path...]",
	Short: "Rewrite indentation of source files to the configured unit",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().Bool("check", false, "report files whose indentation would change; exit 1 if any")
	fixCmd.Flags().Bool("stdout", false, "print rewritten code to stdout instead of rewriting files")
	fixCmd.Flags().Bool("diff", false, "print a line diff of every change")
	fixCmd.Flags().String("format", "text", "output format (text|json)")
	fixCmd.Flags().String("ui", "off", "progress interface (auto|on|off)")
	fixCmd.Flags().Bool("timings", false, "print per-file phase timings")
	fixCmd.Flags().Bool("cache", false, "skip files already known to use the target unit")
	fixCmd.Flags().String("cache-dir", "", "cache location (default: $XDG_CACHE_HOME/reindent)")
	addConfigFlags(fixCmd)
}

var errChangesRequired = errors.New("fix: indentation changes required")

func runFix(cmd *cobra.Command, args []string) error {
	cmd.SilenceErrors = true

	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	showDiff, err := cmd.Flags().GetBool("diff")
	if err != nil {
		return err
	}
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	uiModeValue, err := readUIMode(uiValue)
	if err != nil {
		return reportErr(cmd, err)
	}
	showTimings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return err
	}

	if writeToStdout && check {
		return reportErr(cmd, fmt.Errorf("fix: --stdout cannot be used with --check"))
	}
	if writeToStdout && (outputFormat != "text" || showDiff) {
		return reportErr(cmd, fmt.Errorf("fix: --stdout is only supported with plain text output"))
	}
	if outputFormat != "text" && outputFormat != "json" {
		return reportErr(cmd, fmt.Errorf("fix: unsupported output format %q", outputFormat))
	}

	if _, err := setupColor(cmd); err != nil {
		return reportErr(cmd, err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	opts, err := loadOptions(cmd, args)
	if err != nil {
		return reportErr(cmd, err)
	}
	opts.Check = check
	opts.Stdout = writeToStdout
	opts.Diff = showDiff
	if opts.Cache, err = openCache(cmd); err != nil {
		return reportErr(cmd, fmt.Errorf("fix: cache: %w", err))
	}

	var results []driver.FixResult
	if shouldUseTUI(uiModeValue) && !writeToStdout && outputFormat == "text" {
		results, err = runFixWithUI(cmd.Context(), "reindent fix", args, opts)
	} else {
		results, err = driver.FixPaths(cmd.Context(), args, opts)
	}
	if err != nil {
		return reportErr(cmd, fmt.Errorf("fix: %w", err))
	}

	var hasErrors, hasChanges bool
	switch {
	case writeToStdout:
		hasErrors = renderFixStdout(cmd.OutOrStdout(), cmd.ErrOrStderr(), results)
	case outputFormat == "json":
		if err := renderFixJSON(cmd.OutOrStdout(), results, check); err != nil {
			return err
		}
		for _, res := range results {
			hasErrors = hasErrors || res.Err != nil
			hasChanges = hasChanges || res.Changed
		}
	default:
		hasErrors, hasChanges = renderFixText(cmd.OutOrStdout(), cmd.ErrOrStderr(), results, check, quiet)
	}

	if showTimings {
		printTimings(cmd.ErrOrStderr(), results)
	}

	if hasErrors {
		return reportErr(cmd, fmt.Errorf("fix: failed to process some files"))
	}
	if check && hasChanges {
		return errChangesRequired
	}
	return nil
}

func openCache(cmd *cobra.Command) (*driver.Cache, error) {
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil || !useCache {
		return nil, err
	}
	dir, err := cmd.Flags().GetString("cache-dir")
	if err != nil {
		return nil, err
	}
	if dir == "" {
		if dir, err = driver.DefaultCacheDir("reindent"); err != nil {
			return nil, err
		}
	}
	return driver.OpenCache(dir)
}

func reportErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), errorColor.Sprint("error:"), err)
	return err
}

func renderFixStdout(out, errOut io.Writer, results []driver.FixResult) (hasErrors bool) {
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			fmt.Fprintf(errOut, "fix: %v\n", res.Err)
			printDiagnostics(errOut, res.Path, res.FileSet, res.Bag)
			continue
		}
		_, _ = out.Write(res.Formatted)
	}
	return hasErrors
}

func renderFixText(out, errOut io.Writer, results []driver.FixResult, check, quiet bool) (hasErrors, hasChanges bool) {
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			fmt.Fprintf(errOut, "fix: %v\n", res.Err)
			printDiagnostics(errOut, res.Path, res.FileSet, res.Bag)
			continue
		}
		if !quiet && res.Bag != nil && res.Bag.Len() > 0 {
			printDiagnostics(errOut, res.Path, res.FileSet, res.Bag)
		}
		if res.Diff != "" {
			printDiff(out, res.Diff)
		}
		if !res.Changed {
			continue
		}
		hasChanges = true
		if quiet {
			continue
		}
		if check {
			fmt.Fprintln(out, res.Path)
			continue
		}
		fmt.Fprintf(out, "reindented %s (%s -> %s)\n",
			pathColor.Sprint(res.Path), res.Indent.Source.Describe(), res.Indent.Target.Describe())
	}
	return hasErrors, hasChanges
}

func renderFixJSON(out io.Writer, results []driver.FixResult, check bool) error {
	type jsonResult struct {
		Path      string  `json:"path"`
		Changed   bool    `json:"changed"`
		Source    string  `json:"source,omitempty"`
		Rewritten int     `json:"rewritten"`
		Skipped   int     `json:"skipped"`
		Cached    bool    `json:"cached"`
		TotalMS   float64 `json:"total_ms"`
		Diff      string  `json:"diff,omitempty"`
		Error     string  `json:"error,omitempty"`
		CheckRun  bool    `json:"check"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{
			Path:      res.Path,
			Changed:   res.Changed,
			Rewritten: res.Indent.Rewritten,
			Skipped:   len(res.Indent.Skipped),
			Cached:    res.Cached,
			TotalMS:   res.Timings.TotalMS,
			Diff:      res.Diff,
			CheckRun:  check,
		}
		if res.Indent.Applied || res.Cached {
			jr.Source = res.Indent.Source.Describe()
		}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
