package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wafdocs/wafctl/internal/log"
	"github.com/wafdocs/wafctl/internal/usecase"
)

// newNavCmd creates the nav command.
func newNavCmd(a *app) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "nav",
		Short: "Align pillar navigation order with the config",
		Long: `Rewrite the nav_order front matter field in each pillar's index page to
match the order configured in wafctl.yaml. Pillars without an index page
are reported and skipped.
Use --dry-run to see what would be done without making changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := usecase.NewNavService(a.fs, a.config, a.root)

			results := svc.Run(usecase.NavOptions{DryRun: dryRun})

			if dryRun {
				fmt.Println("Dry run - no changes made:")
			}

			var errors int
			for _, r := range results {
				switch r.Action {
				case usecase.NavActionUpdated:
					fmt.Printf("  ~ %s -> nav_order: %d\n", r.Path, r.Order)
				case usecase.NavActionUnchanged:
					fmt.Printf("  = %s (already %d)\n", r.Path, r.Order)
				case usecase.NavActionMissing:
					log.Warnf("index page not found, skipping: %s", r.Path)
				case usecase.NavActionNoField:
					log.Warnf("no nav_order field in %s", r.Path)
				case usecase.NavActionError:
					fmt.Printf("  ! %s (error: %v)\n", r.Path, r.Error)
					errors++
				}
			}

			if errors > 0 {
				return fmt.Errorf("%d index pages failed", errors)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be done without making changes")

	return cmd
}
