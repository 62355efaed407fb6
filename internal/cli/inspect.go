package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/readmecheck/internal/ui/pretty"
	"github.com/yaklabco/readmecheck/pkg/document"
	"github.com/yaklabco/readmecheck/pkg/langdetect"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [path]",
		Short: "Show structural statistics for a README",
		Long: `Show the structure the scoring engine sees: line count, heading
outline, and fenced code blocks. Unlabeled fences get a detected
language, useful when adding language hints.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInspect,
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := defaultPath
	if len(args) == 1 {
		path = args[0]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrInputUnavailable, fmt.Errorf("read %s: %w", path, err))
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.ShouldColorize(colorMode, outFile(cmd)))
	out := cmd.OutOrStdout()

	doc := document.New(string(data))

	fmt.Fprintf(out, "%s\n\n", styles.Title.Render(path))
	fmt.Fprintf(out, "%s %d lines, %d headings, %d code blocks\n\n",
		styles.Catalog.Render("Structure"),
		doc.LineCount(), doc.HeadingCount(), doc.CodeBlockCount())

	if headings := doc.Headings(); len(headings) > 0 {
		fmt.Fprintf(out, "%s\n", styles.Catalog.Render("Headings"))
		for _, h := range headings {
			indent := strings.Repeat("  ", h.Level-1)
			fmt.Fprintf(out, "  %s%s %s\n",
				indent,
				styles.Dim.Render(fmt.Sprintf("H%d", h.Level)),
				h.Text)
		}
		fmt.Fprintln(out)
	}

	if blocks := doc.CodeBlocks(); len(blocks) > 0 {
		fmt.Fprintf(out, "%s\n", styles.Catalog.Render("Code blocks"))
		for _, block := range blocks {
			info := block.Info
			if info == "" {
				info = fmt.Sprintf("detected: %s", langdetect.Detect([]byte(block.Body)))
			}
			fmt.Fprintf(out, "  %s %s\n",
				styles.Dim.Render(fmt.Sprintf("line %d", block.Line)),
				styles.Criterion.Render(info))
		}
	}

	return nil
}
