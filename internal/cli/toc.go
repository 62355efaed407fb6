package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/readmecheck/pkg/toc"
)

func newTocCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "toc [path]",
		Short: "Generate a table of contents for a README",
		Long: `Generate a GitHub-anchored Markdown table of contents from the headings
of the given file (README.md by default). Paste the output under a
"Table of Contents" heading to satisfy the corresponding criterion.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runToc,
	}
}

func runToc(cmd *cobra.Command, args []string) error {
	path := defaultPath
	if len(args) == 1 {
		path = args[0]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrInputUnavailable, fmt.Errorf("read %s: %w", path, err))
	}

	contents, err := toc.Generate(data)
	if err != nil {
		return fmt.Errorf("generate table of contents: %w", err)
	}
	if contents == "" {
		return fmt.Errorf("%s has no headings to index", path)
	}

	fmt.Fprint(cmd.OutOrStdout(), contents)
	return nil
}
