// Package cli wires the wafctl commands: repository discovery, config
// loading, and the cobra command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/wafdocs/wafctl/internal/config"
	platformfs "github.com/wafdocs/wafctl/internal/platform/fs"
)

var (
	// version is set via ldflags during build: -ldflags "-X github.com/wafdocs/wafctl/internal/cli.version=v1.0.0"
	version = "v0.0.0"
	cfgFile string
)

func init() {
	if !semver.IsValid(version) {
		panic(fmt.Sprintf("invalid version set via ldflags: %q (must be valid semver)", version))
	}
}

// app represents the CLI application with its dependencies.
type app struct {
	fs          platformfs.FileSystem
	config      *config.Config
	configStore *config.Store
	root        string
}

// newApp creates a new app instance.
func newApp() *app {
	fsys := platformfs.NewFileSystem()
	return &app{
		fs:          fsys,
		configStore: config.NewStore(fsys),
	}
}

// loadConfig locates the docs repository root and loads its config. When
// --config is given, its directory is taken as the root.
func (a *app) loadConfig() error {
	if cfgFile != "" {
		cfg, err := a.configStore.Load(cfgFile)
		if err != nil {
			return err
		}
		a.config = cfg
		a.root = a.fs.Dir(cfgFile)
		return nil
	}

	root, err := a.configStore.FindRoot()
	if err != nil {
		return err
	}
	cfg, err := a.configStore.Load(a.fs.Join(root, config.ConfigFileName))
	if err != nil {
		return err
	}
	a.config = cfg
	a.root = root
	return nil
}

// newRootCmd creates the root command for wafctl.
func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "wafctl",
		Short:   "Well-Architected docs site maintainer",
		Long:    `Wafctl maintains a Well-Architected Framework docs site: batch text patching, page styling, link fixes, navigation order, and page generation from a manifest.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "init" {
				a.config = config.DefaultConfig()
				return nil
			}
			if err := a.loadConfig(); err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default: wafctl.yaml found from the working directory upward)")

	rootCmd.AddCommand(newInitCmd(a))
	rootCmd.AddCommand(newPatchCmd(a))
	rootCmd.AddCommand(newStyleCmd(a))
	rootCmd.AddCommand(newLinksCmd(a))
	rootCmd.AddCommand(newNavCmd(a))
	rootCmd.AddCommand(newGenerateCmd(a))
	rootCmd.AddCommand(newVerifyCmd(a))
	rootCmd.AddCommand(newStatusCmd(a))

	return rootCmd
}

// Execute runs the CLI application.
func Execute() {
	a := newApp()
	rootCmd := newRootCmd(a)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
