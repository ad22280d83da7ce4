package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"reindent/internal/driver"
)

var inferCmd = &cobra.Command{
	Use:   "infer [flags] <path> [path...]",
	Short: "Show the indentation unit detected in each file",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInfer,
}

func init() {
	inferCmd.Flags().String("format", "text", "output format (text|json)")
	addConfigFlags(inferCmd)
}

func runInfer(cmd *cobra.Command, args []string) error {
	cmd.SilenceErrors = true

	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if _, err := setupColor(cmd); err != nil {
		return reportErr(cmd, err)
	}
	opts, err := loadOptions(cmd, args)
	if err != nil {
		return reportErr(cmd, err)
	}

	results, err := driver.InferPaths(cmd.Context(), args, opts)
	if err != nil {
		return reportErr(cmd, fmt.Errorf("infer: %w", err))
	}

	switch outputFormat {
	case "text":
		renderInferText(cmd.OutOrStdout(), results)
	case "json":
		if err := renderInferJSON(cmd.OutOrStdout(), results); err != nil {
			return err
		}
	default:
		return reportErr(cmd, fmt.Errorf("infer: unsupported output format %q", outputFormat))
	}

	for _, res := range results {
		if res.Err != nil {
			return fmt.Errorf("infer: failed to read some files")
		}
	}
	return nil
}

func renderInferText(out io.Writer, results []driver.InferResult) {
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(out, "%s: %s\n", res.Path, errorColor.Sprint(res.Err.Error()))
			continue
		}
		inf := res.Inference
		if inf.Fallback {
			fmt.Fprintf(out, "%s: %s (no indented lines, configured unit)\n", pathColor.Sprint(res.Path), inf.Unit.Describe())
			continue
		}
		quoted := make([]string, len(inf.Samples))
		for i, s := range inf.Samples {
			quoted[i] = strconv.Quote(s)
		}
		fmt.Fprintf(out, "%s: %s (samples %s)\n", pathColor.Sprint(res.Path), inf.Unit.Describe(), strings.Join(quoted, ", "))
	}
}

func renderInferJSON(out io.Writer, results []driver.InferResult) error {
	type jsonResult struct {
		Path     string   `json:"path"`
		Unit     string   `json:"unit"`
		Describe string   `json:"describe"`
		Samples  []string `json:"samples"`
		Fallback bool     `json:"fallback"`
		Error    string   `json:"error,omitempty"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{
			Path:     res.Path,
			Unit:     string(res.Inference.Unit),
			Describe: res.Inference.Unit.Describe(),
			Samples:  res.Inference.Samples,
			Fallback: res.Inference.Fallback,
		}
		if jr.Samples == nil {
			jr.Samples = []string{}
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
