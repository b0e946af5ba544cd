package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wafdocs/wafctl/internal/usecase"
)

// newLinksCmd creates the links command.
func newLinksCmd(a *app) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "links",
		Short: "Fix intra-site links across the docs tree",
		Long: `Fix intra-site links in every Markdown page under the docs directory.

Extension-less question and best practice links gain the rendered .html
extension, and same-pillar links gain a ./ prefix so they resolve inside
the pillar directory.
Use --dry-run to see what would be done without making changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := usecase.NewLinkService(a.fs, a.config, a.root)

			results, err := svc.Run(usecase.LinkOptions{DryRun: dryRun})
			if err != nil {
				return fmt.Errorf("links failed: %w", err)
			}

			if dryRun {
				fmt.Println("Dry run - no changes made:")
			}

			var changed, errors int
			for _, r := range results {
				switch {
				case r.Error != nil:
					fmt.Printf("  ! %s (error: %v)\n", r.Path, r.Error)
					errors++
				case r.Changed:
					fmt.Printf("  ~ %s\n", r.Path)
					changed++
				}
			}

			fmt.Printf("Summary: %d of %d files updated", changed, len(results))
			if errors > 0 {
				fmt.Printf(", %d errors", errors)
			}
			fmt.Println()

			if errors > 0 {
				return fmt.Errorf("%d files failed", errors)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be done without making changes")

	return cmd
}
