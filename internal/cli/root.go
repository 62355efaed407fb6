// Package cli provides the Cobra command structure for readmecheck.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/readmecheck/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root readmecheck command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "readmecheck",
		Short: "Score README files for completeness",
		Long: `readmecheck evaluates a README against a weighted battery of structural
and content checks and reports a completeness score with actionable
suggestions.

Checks cover the expected sections (title, description, installation,
usage, license, ...), stylistic extras (badges, tables, code blocks,
consistent headings), and structural metrics for length and formatting.
All checks are pattern based over the raw text; nothing leaves your
machine.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newCriteriaCommand())
	rootCmd.AddCommand(newTocCommand())
	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// outFile returns the command's output as *os.File when it is one, for TTY
// detection. Buffers in tests are never TTYs.
func outFile(cmd *cobra.Command) *os.File {
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return f
	}
	return nil
}
