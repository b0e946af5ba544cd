package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wafdocs/wafctl/internal/usecase"
)

// newGenerateCmd creates the generate command.
func newGenerateCmd(a *app) *cobra.Command {
	var (
		dryRun bool
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "generate <manifest-file>",
		Short: "Generate docs pages from a manifest",
		Long: `Generate index, question, and best practice pages for every pillar in
the manifest. Pages that already exist are skipped unless --force is set.
Use --dry-run to see what would be done without making changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := usecase.NewGenerateService(a.fs, a.config, a.root)

			results, err := svc.Run(args[0], usecase.GenerateOptions{DryRun: dryRun, Force: force})
			if err != nil {
				return fmt.Errorf("generate failed: %w", err)
			}

			if dryRun {
				fmt.Println("Dry run - no changes made:")
			}

			var created, overwritten, skipped, errors int
			for _, r := range results {
				switch r.Action {
				case usecase.GenerateActionCreated:
					fmt.Printf("  + %s\n", r.Path)
					created++
				case usecase.GenerateActionOverwritten:
					fmt.Printf("  ~ %s (overwritten)\n", r.Path)
					overwritten++
				case usecase.GenerateActionSkipped:
					skipped++
				case usecase.GenerateActionError:
					fmt.Printf("  ! %s (error: %v)\n", r.Path, r.Error)
					errors++
				}
			}

			fmt.Printf("Summary: %d created, %d overwritten, %d skipped", created, overwritten, skipped)
			if errors > 0 {
				fmt.Printf(", %d errors", errors)
			}
			fmt.Println()

			if errors > 0 {
				return fmt.Errorf("%d pages failed to generate", errors)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be done without making changes")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite pages that already exist")

	return cmd
}
