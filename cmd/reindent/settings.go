package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"reindent/internal/config"
	"reindent/internal/driver"
	"reindent/internal/indent"
	"reindent/internal/prof"
)

// addConfigFlags registers the flags that override .reindent.toml values.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().String("indent", "", "target indentation unit (tab, tab:N, spaces:N, N)")
	cmd.Flags().Int("jobs", 0, "parallel files (0 = GOMAXPROCS)")
	cmd.Flags().Bool("hash-comments", false, "treat '#' as a line comment marker")
}

// loadOptions resolves configuration in order: defaults, config file, flags.
func loadOptions(cmd *cobra.Command, paths []string) (driver.Options, error) {
	root := cmd.Root().PersistentFlags()

	configPath, err := root.GetString("config")
	if err != nil {
		return driver.Options{}, err
	}
	var cfg config.Config
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		start := "."
		if len(paths) > 0 {
			start = paths[0]
		}
		cfg, err = config.Discover(start)
	}
	if err != nil {
		return driver.Options{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("indent") {
		raw, _ := flags.GetString("indent")
		unit, err := indent.ParseUnit(raw)
		if err != nil {
			return driver.Options{}, fmt.Errorf("--indent: %w", err)
		}
		cfg.Indent = unit
	}
	if flags.Changed("jobs") {
		jobs, _ := flags.GetInt("jobs")
		if jobs < 0 {
			return driver.Options{}, fmt.Errorf("--jobs must be >= 0, got %d", jobs)
		}
		cfg.Jobs = jobs
	}
	if flags.Changed("hash-comments") {
		cfg.HashComments, _ = flags.GetBool("hash-comments")
	}

	maxDiagnostics, err := root.GetInt("max-diagnostics")
	if err != nil {
		return driver.Options{}, err
	}
	logger, err := newLogger(cmd)
	if err != nil {
		return driver.Options{}, err
	}
	if cfg.Path != "" {
		logger.WithField("config", cfg.Path).Debug("reindent: using configuration file")
	}

	return driver.Options{
		Config:         cfg,
		MaxDiagnostics: maxDiagnostics,
		Logger:         logger,
	}, nil
}

// setupColor applies --color to fatih/color; "auto" enables it only on a terminal.
func setupColor(cmd *cobra.Command) (bool, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	var enabled bool
	switch strings.ToLower(mode) {
	case "on":
		enabled = true
	case "off":
		enabled = false
	case "auto":
		enabled = isTerminal(os.Stdout)
	default:
		return false, fmt.Errorf("invalid --color %q (expected auto|on|off)", mode)
	}
	color.NoColor = !enabled
	return enabled, nil
}

func newLogger(cmd *cobra.Command) (*logrus.Logger, error) {
	levelStr, err := cmd.Root().PersistentFlags().GetString("log-level")
	if err != nil {
		return nil, err
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:    color.NoColor,
		DisableTimestamp: true,
	})
	return logger, nil
}

// startProfiling reads the persistent profiling flags; nil means nothing was requested.
func startProfiling(cmd *cobra.Command) (*prof.Session, error) {
	root := cmd.Root().PersistentFlags()
	var paths prof.Paths
	var err error
	if paths.CPU, err = root.GetString("cpu-profile"); err != nil {
		return nil, err
	}
	if paths.Mem, err = root.GetString("mem-profile"); err != nil {
		return nil, err
	}
	if paths.Trace, err = root.GetString("runtime-trace"); err != nil {
		return nil, err
	}
	if paths == (prof.Paths{}) {
		return nil, nil
	}
	return prof.Start(paths)
}
