package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wafdocs/wafctl/internal/log"
	"github.com/wafdocs/wafctl/internal/patch"
	"github.com/wafdocs/wafctl/internal/usecase"
)

// newPatchCmd creates the patch command.
func newPatchCmd(a *app) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "patch <rules-file>",
		Short: "Apply batch text patches to docs pages",
		Long: `Apply a rules file of batch text patches to docs pages.

Each rule appends its payload to every listed file, or inserts it after
the first line matching a marker. Files that do not exist are skipped
with a warning and never created.
Use --dry-run to see what would be done without making changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := usecase.NewPatchService(a.fs, a.config, a.root)

			results, err := svc.Run(args[0], usecase.PatchOptions{DryRun: dryRun})
			if err != nil {
				return fmt.Errorf("patch failed: %w", err)
			}

			if dryRun {
				fmt.Println("Dry run - no changes made:")
			}

			for _, r := range results {
				switch r.Action {
				case patch.ActionPatched:
					fmt.Printf("  ✓ %s (%s)\n", r.Path, r.Rule)
				case patch.ActionMissing:
					log.Warnf("file not found, skipping: %s", r.Path)
				case patch.ActionMarkerNotFound:
					log.Warnf("marker not found in %s (%s)", r.Path, r.Rule)
				case patch.ActionError:
					fmt.Printf("  ! %s (error: %v)\n", r.Path, r.Error)
				}
			}

			summary := patch.Summarize(results)
			parts := []string{}
			if summary.Patched > 0 {
				parts = append(parts, fmt.Sprintf("%d patched", summary.Patched))
			}
			if summary.Missing > 0 {
				parts = append(parts, fmt.Sprintf("%d missing", summary.Missing))
			}
			if summary.MarkerNotFound > 0 {
				parts = append(parts, fmt.Sprintf("%d without marker", summary.MarkerNotFound))
			}
			if summary.Errors > 0 {
				parts = append(parts, fmt.Sprintf("%d errors", summary.Errors))
			}
			if len(parts) > 0 {
				fmt.Printf("Summary: %s\n", strings.Join(parts, ", "))
			}

			if summary.Errors > 0 {
				return fmt.Errorf("%d files failed to patch", summary.Errors)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be done without making changes")

	return cmd
}
