// Package main is the entry point for the readmecheck CLI.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/yaklabco/readmecheck/internal/cli"
	"github.com/yaklabco/readmecheck/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)
	ctx := logging.WithLogger(context.Background(), logging.Default())

	err := fang.Execute(ctx, rootCmd, fang.WithVersion(version))
	if err == nil {
		return cli.ExitSuccess
	}

	// A below-threshold score is a signal for the exit code, not a failure
	// worth logging.
	if !errors.Is(err, cli.ErrBelowThreshold) {
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
	}

	return cli.ExitCodeFromError(err)
}
