// Package config loads docx2html's runtime configuration from defaults, an
// optional TOML project file, and environment variables, in that order of
// increasing precedence (CLI flags, applied by cmd/docx2html, win over all
// three).
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the knobs that affect how a conversion runs.
type Config struct {
	// CacheMaxSize is loaded from defaults, file and environment like the
	// other fields. No code in this module reads it: style and numbering
	// tables are parsed anew for every conversion and are not cached.
	CacheMaxSize int
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// StrictMode promotes reader warnings to a non-zero CLI exit code.
	StrictMode bool
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		CacheMaxSize: 50,
		LogLevel:     "info",
		StrictMode:   false,
	}
}

// tomlFile mirrors Config's shape for decoding; the file's keys are the
// snake_case names given in the toml tags.
type tomlFile struct {
	CacheMaxSize int    `toml:"cache_max_size"`
	LogLevel     string `toml:"log_level"`
	StrictMode   bool   `toml:"strict_mode"`
}

// FromTOMLFile reads an optional .docx2html.toml project file. A missing
// file is not an error; it yields DefaultConfig() unchanged.
func FromTOMLFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	var file tomlFile
	file.CacheMaxSize = cfg.CacheMaxSize
	file.LogLevel = cfg.LogLevel
	file.StrictMode = cfg.StrictMode

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, err
	}

	cfg.CacheMaxSize = file.CacheMaxSize
	cfg.LogLevel = file.LogLevel
	cfg.StrictMode = file.StrictMode
	return cfg, nil
}

// FromEnvironment overlays DOCX2HTML_* environment variables onto base.
// base is not mutated; a new Config is returned.
func FromEnvironment(base *Config) *Config {
	cfg := *base

	if val := os.Getenv("DOCX2HTML_CACHE_MAX_SIZE"); val != "" {
		if size, err := strconv.Atoi(val); err == nil {
			cfg.CacheMaxSize = size
		}
	}
	if val := os.Getenv("DOCX2HTML_LOG_LEVEL"); val != "" {
		cfg.LogLevel = val
	}
	if val := os.Getenv("DOCX2HTML_STRICT_MODE"); val != "" {
		cfg.StrictMode = parseBool(val)
	}

	return &cfg
}

// Load resolves the full precedence chain: defaults, then an optional TOML
// file at tomlPath (ignored if tomlPath is empty), then environment
// variables.
func Load(tomlPath string) (*Config, error) {
	cfg := DefaultConfig()
	if tomlPath != "" {
		fileCfg, err := FromTOMLFile(tomlPath)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}
	return FromEnvironment(cfg), nil
}

func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}
