package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"reindent/internal/driver"
	"reindent/internal/source"
	"reindent/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file>",
	Short: "Dump the token stream the fixer works on",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("hash-comments", false, "treat '#' as a line comment marker")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if _, err := setupColor(cmd); err != nil {
		return err
	}
	opts, err := loadOptions(cmd, args)
	if err != nil {
		return err
	}

	result, err := driver.Tokenize(args[0], opts)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	if result.Bag.Len() > 0 {
		printDiagnostics(cmd.ErrOrStderr(), args[0], result.FileSet, result.Bag)
	}

	switch format {
	case "pretty":
		return formatTokensPretty(cmd.OutOrStdout(), result.Stream, result.FileSet)
	case "json":
		return formatTokensJSON(cmd.OutOrStdout(), result.Stream)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func formatTokensPretty(w io.Writer, s token.Stream, fs *source.FileSet) error {
	for i := 0; i < s.Len(); i++ {
		tok := s.At(i)
		start, _ := fs.Resolve(tok.Span)
		if _, err := fmt.Fprintf(w, "%4d:%-3d %-10s %s\n", start.Line, start.Col, tok.Kind, strconv.Quote(tok.Text)); err != nil {
			return err
		}
	}
	return nil
}

func formatTokensJSON(w io.Writer, s token.Stream) error {
	type jsonToken struct {
		Kind  string `json:"kind"`
		Start uint32 `json:"start"`
		End   uint32 `json:"end"`
		Text  string `json:"text"`
	}
	out := make([]jsonToken, 0, s.Len())
	for _, tok := range s.Tokens() {
		out = append(out, jsonToken{Kind: tok.Kind.String(), Start: tok.Span.Start, End: tok.Span.End, Text: tok.Text})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
