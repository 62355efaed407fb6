package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/readmecheck/internal/configloader"
	"github.com/yaklabco/readmecheck/internal/logging"
	"github.com/yaklabco/readmecheck/pkg/config"
	"github.com/yaklabco/readmecheck/pkg/document"
	"github.com/yaklabco/readmecheck/pkg/reporter"
	"github.com/yaklabco/readmecheck/pkg/score"
)

// defaultPath is analyzed when no paths are given.
const defaultPath = "README.md"

type checkFlags struct {
	format      string
	minScore    float64
	onlyFailing bool
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Score README files",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text, json")
	cmd.Flags().Float64Var(&flags.minScore, "min-score", 0,
		"minimum passing score percentage (exit non-zero below it)")
	cmd.Flags().BoolVar(&flags.onlyFailing, "only-failing", false,
		"list only unsatisfied criteria in text output")

	return cmd
}

const checkLongDescription = `Score README files for completeness.

Each path is analyzed independently against the full criterion battery and
reported with a weighted score, a percentage, and suggestions for every
unsatisfied check. Without arguments, README.md in the current directory
is analyzed.

Examples:
  readmecheck check                      # Score ./README.md
  readmecheck check docs/README.md       # Score a specific file
  readmecheck check --format json        # Machine-readable output for CI
  readmecheck check --min-score 75       # Fail the run below 75%`

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	logger := logging.FromContext(cmd.Context())

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// CLI flags beat config file and environment.
	if flags.format != "" {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("min-score") {
		cfg.MinScore = flags.minScore
	}
	if flags.onlyFailing {
		cfg.ShowSatisfied = false
	}
	if cmd.Flags().Changed("color") {
		if colorMode, err := cmd.Flags().GetString("color"); err == nil {
			cfg.Color = config.ColorMode(colorMode)
		}
	}

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return errors.Join(ErrConfig, err)
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{defaultPath}
	}

	logger.Debug("starting analysis",
		logging.FieldPaths, paths,
		logging.FieldFormat, cfg.Format,
		logging.FieldMinScore, cfg.MinScore,
	)

	files := make([]reporter.FileReport, 0, len(paths))
	belowThreshold := false

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Join(ErrInputUnavailable, fmt.Errorf("read %s: %w", path, err))
		}

		doc := document.New(string(data))
		report := score.Analyze(doc)

		logger.Debug("analyzed document",
			logging.FieldPath, path,
			logging.FieldLines, doc.LineCount(),
			logging.FieldScore, report.Total,
			logging.FieldMaxScore, report.Max,
			logging.FieldGrade, report.Grade(),
			logging.FieldSuggestions, len(report.Suggestions),
		)

		if cfg.MinScore > 0 && report.Percent() < cfg.MinScore {
			belowThreshold = true
		}

		files = append(files, reporter.FileReport{Path: path, Report: report})
	}

	rep, err := reporter.New(reporter.Options{
		Writer:        cmd.OutOrStdout(),
		Format:        format,
		Color:         string(cfg.Color),
		ShowSatisfied: cfg.ShowSatisfied,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := rep.Report(ctx, files); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if belowThreshold {
		return ErrBelowThreshold
	}
	return nil
}

// loadConfig resolves configuration for a command, logging any warnings.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	logger := logging.FromContext(cmd.Context())

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	result, err := configloader.Load(configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return nil, errors.Join(ErrConfig, err)
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	if result.LoadedFrom != "" {
		logger.Debug("loaded configuration", logging.FieldConfig, result.LoadedFrom)
	}

	return result.Config, nil
}
