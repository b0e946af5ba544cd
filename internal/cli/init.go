package cli

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/wafdocs/wafctl/internal/config"
)

var initYes bool

// newInitCmd creates the init command.
func newInitCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a docs repository",
		Long: `Initialize a Well-Architected docs repository in the current directory.

Creates wafctl.yaml and a directory per pillar under the docs directory.
Use --yes to accept the defaults without prompting.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}
			return initializeRepo(a, cwd, initYes)
		},
	}

	cmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Skip confirmation prompts")

	return cmd
}

func initializeRepo(a *app, root string, skipPrompts bool) error {
	cfgPath := a.fs.Join(root, config.ConfigFileName)
	if a.fs.Exists(cfgPath) {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	cfg := config.DefaultConfig()
	cfg.DocsDir = promptDocsDir(skipPrompts)

	pillars, err := promptPillars(cfg, skipPrompts)
	if err != nil {
		return err
	}
	cfg.Pillars = pillars

	if !skipPrompts && !confirmCreation(a, root, cfg) {
		fmt.Println("Aborted.")
		return nil
	}

	if err := a.configStore.Save(cfg, cfgPath); err != nil {
		return err
	}
	for _, p := range cfg.Pillars {
		dir := cfg.PillarPath(a.fs, root, p)
		if err := a.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create pillar directory %s: %w", dir, err)
		}
	}

	fmt.Printf("✓ Created %s\n", cfgPath)
	fmt.Printf("✓ Initialized %d pillar directories under %s\n", len(cfg.Pillars), cfg.DocsPath(a.fs, root))
	return nil
}

func promptDocsDir(skipPrompts bool) string {
	if skipPrompts {
		return config.DefaultDocsDir
	}

	docsDir := config.DefaultDocsDir
	prompt := &survey.Input{
		Message: "Docs directory:",
		Default: config.DefaultDocsDir,
	}
	if err := survey.AskOne(prompt, &docsDir); err != nil {
		os.Exit(1)
	}
	if docsDir == "" {
		docsDir = config.DefaultDocsDir
	}
	return docsDir
}

func promptPillars(cfg *config.Config, skipPrompts bool) ([]config.Pillar, error) {
	if skipPrompts {
		return cfg.Pillars, nil
	}

	options := make([]string, 0, len(cfg.Pillars))
	for _, p := range cfg.Pillars {
		options = append(options, p.Dir)
	}

	var selected []string
	prompt := &survey.MultiSelect{
		Message: "Select pillars (Space: toggle, Enter: confirm):",
		Options: options,
		Default: options,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		os.Exit(1)
	}

	if len(selected) == 0 {
		return nil, fmt.Errorf("at least one pillar must be selected")
	}

	chosen := make(map[string]bool, len(selected))
	for _, dir := range selected {
		chosen[dir] = true
	}
	pillars := make([]config.Pillar, 0, len(selected))
	for _, p := range cfg.Pillars {
		if chosen[p.Dir] {
			pillars = append(pillars, p)
		}
	}
	return pillars, nil
}

func confirmCreation(a *app, root string, cfg *config.Config) bool {
	fmt.Println()
	fmt.Println("This will create:")
	fmt.Printf("  Config: %s\n", a.fs.Join(root, config.ConfigFileName))
	for _, p := range cfg.Pillars {
		fmt.Printf("  %s/\n", cfg.PillarPath(a.fs, root, p))
	}
	fmt.Println()

	confirm := true
	prompt := &survey.Confirm{
		Message: "Continue?",
		Default: true,
	}
	if err := survey.AskOne(prompt, &confirm); err != nil {
		os.Exit(1)
	}
	return confirm
}
