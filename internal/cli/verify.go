package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wafdocs/wafctl/internal/usecase"
)

// newVerifyCmd creates the verify command.
func newVerifyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <manifest-file>",
		Short: "Verify the docs tree against a manifest",
		Long: `Compare the question pages on disk against the manifest, per pillar.

Reports manifest questions with no page and pages the manifest does not
know. Exits non-zero when any pillar is out of sync.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := usecase.NewVerifyService(a.fs, a.config, a.root)

			results, err := svc.Run(args[0])
			if err != nil {
				return fmt.Errorf("verify failed: %w", err)
			}

			outOfSync := 0
			for _, r := range results {
				if r.InSync() {
					fmt.Printf("  ✓ %s\n", r.Pillar)
					continue
				}
				outOfSync++
				if r.DirMissing {
					fmt.Printf("  ! %s (directory missing)\n", r.Pillar)
				} else {
					fmt.Printf("  ! %s\n", r.Pillar)
				}
				if len(r.Missing) > 0 {
					fmt.Printf("      missing: %s\n", strings.Join(r.Missing, ", "))
				}
				if len(r.Extra) > 0 {
					fmt.Printf("      extra: %s\n", strings.Join(r.Extra, ", "))
				}
			}

			if outOfSync > 0 {
				return fmt.Errorf("%d of %d pillars out of sync", outOfSync, len(results))
			}
			fmt.Printf("All %d pillars in sync\n", len(results))
			return nil
		},
	}

	return cmd
}
