package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/readmecheck/internal/logging"
	"github.com/yaklabco/readmecheck/pkg/config"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a readmecheck configuration file",
		Long: `Create a .readmecheck.yml configuration file in the current directory
with the defaults documented. Customize it to change the output format,
color mode, or minimum passing score.

Examples:
  readmecheck init                    Create .readmecheck.yml
  readmecheck init --output cfg.yml   Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", ".readmecheck.yml", "Output file path")

	return cmd
}

func runInit(flags *initFlags) error {
	logger := logging.Default()

	if !flags.force {
		if _, err := os.Stat(flags.output); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", flags.output)
		}
	}

	if err := os.WriteFile(flags.output, []byte(config.Template), configFilePermissions); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	return nil
}
