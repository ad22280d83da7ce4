// Package config loads .reindent.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"reindent/internal/indent"
)

// FileName is the configuration file looked up from the target directory upwards.
const FileName = ".reindent.toml"

// ErrUnknownKey is wrapped when the file contains keys this version does not understand.
var ErrUnknownKey = errors.New("unknown configuration key")

// DefaultExtensions are collected from directories when no list is configured.
var DefaultExtensions = []string{
	".c", ".h", ".cc", ".cpp", ".hpp", ".cs", ".go", ".java", ".js", ".ts", ".php", ".rs", ".swift", ".kt",
}

// Config is the resolved configuration.
type Config struct {
	Path         string // file it was loaded from, empty for defaults
	Indent       indent.Unit
	Extensions   []string
	HashComments bool
	Jobs         int
}

type fileConfig struct {
	Indent       string   `toml:"indent"`
	Extensions   []string `toml:"extensions"`
	HashComments bool     `toml:"hash_comments"`
	Jobs         int      `toml:"jobs"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Indent:     indent.Spaces(4),
		Extensions: append([]string(nil), DefaultExtensions...),
	}
}

// Find walks from startDir to the filesystem root looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover finds and loads the configuration for startDir, or returns Default.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Load decodes the file at path on top of Default.
func Load(path string) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}

	cfg := Default()
	cfg.Path = path
	if meta.IsDefined("indent") {
		unit, err := indent.ParseUnit(raw.Indent)
		if err != nil {
			return Config{}, fmt.Errorf("%s: indent: %w", path, err)
		}
		cfg.Indent = unit
	}
	if meta.IsDefined("extensions") {
		exts, err := normalizeExtensions(raw.Extensions)
		if err != nil {
			return Config{}, fmt.Errorf("%s: extensions: %w", path, err)
		}
		cfg.Extensions = exts
	}
	cfg.HashComments = raw.HashComments
	if raw.Jobs < 0 {
		return Config{}, fmt.Errorf("%s: jobs must be >= 0, got %d", path, raw.Jobs)
	}
	cfg.Jobs = raw.Jobs
	return cfg, nil
}

func normalizeExtensions(in []string) ([]string, error) {
	if len(in) == 0 {
		return nil, errors.New("list is empty")
	}
	out := make([]string, 0, len(in))
	for _, ext := range in {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return nil, errors.New("empty extension")
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, strings.ToLower(ext))
	}
	return out, nil
}

// Matches reports whether path has one of the configured extensions.
func (c Config) Matches(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range c.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}
