package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/readmecheck/internal/ui/pretty"
	"github.com/yaklabco/readmecheck/pkg/score"
)

func newCriteriaCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "criteria",
		Short: "List all scoring criteria and their weights",
		Long: `List every criterion in both catalogs with its weight, plus the two
structural metrics. With --verbose, the remediation text shown for an
unsatisfied criterion is included.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCriteria(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "include remediation text")

	return cmd
}

func runCriteria(cmd *cobra.Command, verbose bool) error {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.ShouldColorize(colorMode, outFile(cmd)))
	out := cmd.OutOrStdout()

	for _, catalog := range []*score.Catalog{score.Primary, score.Extra} {
		fmt.Fprintf(out, "%s %s\n",
			styles.Catalog.Render(catalog.Name()),
			styles.Dim.Render(fmt.Sprintf("(%d criteria, %d points)", catalog.Len(), catalog.MaxScore())),
		)
		for _, criterion := range catalog.Criteria() {
			fmt.Fprintf(out, "  %s %s\n",
				styles.Criterion.Render(criterion.Name),
				styles.Points.Render(fmt.Sprintf("(%d)", criterion.Weight)),
			)
			if verbose {
				fmt.Fprintf(out, "      %s\n", styles.Suggestion.Render(criterion.Remediation))
			}
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "%s %s\n",
		styles.Catalog.Render("metrics"),
		styles.Dim.Render("(2 metrics, 20 points)"),
	)
	fmt.Fprintf(out, "  %s %s\n", styles.Criterion.Render(score.MetricLength),
		styles.Points.Render("(10)"))
	fmt.Fprintf(out, "  %s %s\n", styles.Criterion.Render(score.MetricFormatting),
		styles.Points.Render("(10)"))
	fmt.Fprintf(out, "\n%s\n",
		styles.Bold.Render(fmt.Sprintf("maximum score: %d", score.MaxScore())))

	return nil
}
