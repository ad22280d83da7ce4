package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"reindent/internal/prof"
	"reindent/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "reindent",
	Short: "Normalize indentation to a configured unit",
	Long: `reindent infers the indentation unit a source file actually uses
(spaces of some width, or tabs) and rewrites leading whitespace and
comment indentation to the configured unit.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		session, err := startProfiling(cmd)
		if err != nil {
			return err
		}
		profiling = session
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return profiling.Stop()
	},
}

var profiling *prof.Session

// main registers subcommands and persistent flags, then executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(inferCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("config", "", "path to .reindent.toml (default: discovered from the first path)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics kept per file")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write heap profile to file")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write runtime trace to file")

	err := rootCmd.Execute()
	// PostRun is skipped when RunE fails
	if stopErr := profiling.Stop(); stopErr != nil {
		fmt.Fprintln(os.Stderr, "profiling:", stopErr)
	}
	if err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
