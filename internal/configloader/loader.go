// Package configloader resolves the readmecheck configuration by merging an
// explicit --config file, a discovered project config, environment
// variables, and defaults.
package configloader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/readmecheck/pkg/config"
)

// envVarPrefix is the prefix for all readmecheck environment variables.
const envVarPrefix = "READMECHECK_"

// configFileNames are the project config file names searched for, in order
// of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var configFileNames = []string{
	".readmecheck.yml",
	".readmecheck.yaml",
	"readmecheck.yml",
	"readmecheck.yaml",
}

// vcsRootMarkers are directories that stop the upward config search.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for a project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// When set, project config discovery is skipped.
	ExplicitPath string
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom is the config file that was loaded, if any.
	LoadedFrom string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration.
// Precedence (highest to lowest):
//  1. Environment variables (READMECHECK_*)
//  2. Explicit config file, or discovered project config
//  3. Built-in defaults
//
// CLI flags are applied by the caller on top of the result, since only the
// command knows which flags were explicitly set.
func Load(opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{Config: config.NewConfig()}

	path, err := resolvePath(opts)
	if err != nil {
		return nil, err
	}

	if path != "" {
		if err := loadFile(path, result.Config); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
		result.LoadedFrom = path
	}

	applyEnv(result.Config)

	result.Warnings = validate(result.Config)
	return result, nil
}

// resolvePath returns the config file to load: the explicit path when given
// (missing explicit files are an error), otherwise the nearest discovered
// project config (missing is fine).
func resolvePath(opts LoadOptions) (string, error) {
	if opts.ExplicitPath != "" {
		if _, err := os.Stat(opts.ExplicitPath); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return opts.ExplicitPath, nil
	}

	workDir := opts.WorkingDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		workDir = wd
	}

	return discover(workDir), nil
}

// discover walks upward from dir looking for a project config file,
// stopping at a VCS root or the filesystem root.
func discover(dir string) string {
	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}

		for _, marker := range vcsRootMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return ""
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func loadFile(path string, cfg *config.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse yaml: %w", err)
	}
	return nil
}

// applyEnv overlays READMECHECK_* environment variables onto the config.
func applyEnv(cfg *config.Config) {
	if v := os.Getenv(envVarPrefix + "FORMAT"); v != "" {
		cfg.Format = config.OutputFormat(v)
	}
	if v := os.Getenv(envVarPrefix + "COLOR"); v != "" {
		cfg.Color = config.ColorMode(v)
	}
	if v := os.Getenv(envVarPrefix + "MIN_SCORE"); v != "" {
		if score, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.MinScore = score
		}
	}
	if v := os.Getenv(envVarPrefix + "SHOW_SATISFIED"); v != "" {
		if show, err := strconv.ParseBool(v); err == nil {
			cfg.ShowSatisfied = show
		}
	}
}

// validate normalizes invalid values back to defaults and returns a warning
// for each one.
func validate(cfg *config.Config) []string {
	var warnings []string

	if !cfg.Format.IsValid() {
		warnings = append(warnings, fmt.Sprintf("unknown format %q, using %q", cfg.Format, config.FormatText))
		cfg.Format = config.FormatText
	}
	if !cfg.Color.IsValid() {
		warnings = append(warnings, fmt.Sprintf("unknown color mode %q, using %q", cfg.Color, config.ColorAuto))
		cfg.Color = config.ColorAuto
	}
	if cfg.MinScore < 0 || cfg.MinScore > 100 {
		warnings = append(warnings, fmt.Sprintf("min_score %v out of range 0-100, disabling threshold", cfg.MinScore))
		cfg.MinScore = 0
	}

	return warnings
}
