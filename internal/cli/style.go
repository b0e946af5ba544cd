package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wafdocs/wafctl/internal/usecase"
)

// newStyleCmd creates the style command.
func newStyleCmd(a *app) *cobra.Command {
	var (
		dryRun  bool
		pillars []string
	)

	cmd := &cobra.Command{
		Use:   "style",
		Short: "Convert question pages to the styled format",
		Long: `Convert question and best practice pages to the styled HTML-block format:
pillar header, best practice cards, implementation steps, service boxes,
and related resources.

By default, all pillars are processed. Use --pillar to limit the run.
Use --dry-run to see what would be done without making changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := usecase.NewStyleService(a.fs, a.config, a.root)

			results, err := svc.Run(usecase.StyleOptions{DryRun: dryRun, Pillars: pillars})
			if err != nil {
				return fmt.Errorf("style failed: %w", err)
			}

			if dryRun {
				fmt.Println("Dry run - no changes made:")
			}

			var changed, unchanged, errors int
			for _, r := range results {
				switch {
				case r.Error != nil:
					fmt.Printf("  ! %s (error: %v)\n", r.Path, r.Error)
					errors++
				case r.Changed:
					fmt.Printf("  ~ %s\n", r.Path)
					changed++
				default:
					unchanged++
				}
			}

			fmt.Printf("Summary: %d styled, %d unchanged", changed, unchanged)
			if errors > 0 {
				fmt.Printf(", %d errors", errors)
			}
			fmt.Println()

			if errors > 0 {
				return fmt.Errorf("%d files failed to style", errors)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be done without making changes")
	cmd.Flags().StringSliceVar(&pillars, "pillar", nil, "Limit to specific pillars by dir or prefix (repeatable)")

	return cmd
}
