package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/wafdocs/wafctl/internal/usecase"
)

// newStatusCmd creates the status command.
func newStatusCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show an overview of the docs tree",
		Long:  `Show per-pillar page counts and sizes for the docs tree.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := usecase.NewStatusService(a.fs, a.config, a.root)

			statuses, err := svc.Run()
			if err != nil {
				return fmt.Errorf("status failed: %w", err)
			}

			fmt.Printf("Docs root: %s\n\n", a.config.DocsPath(a.fs, a.root))
			for _, s := range statuses {
				if s.DirMissing {
					fmt.Printf("  %-24s (directory missing)\n", s.Pillar)
					continue
				}
				index := "no index"
				if s.HasIndex {
					index = "index"
				}
				fmt.Printf("  %-24s %2d questions, %2d best practices, %d other, %s, %s\n",
					s.Pillar, s.Questions, s.BestPractices, s.OtherPages,
					index, humanize.Bytes(uint64(s.TotalBytes)))
			}

			return nil
		},
	}

	return cmd
}
