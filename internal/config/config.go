package config

import (
	"fmt"

	platformfs "github.com/wafdocs/wafctl/internal/platform/fs"
)

const (
	// ConfigFileName is the name of the site config file, expected at the
	// docs repository root.
	ConfigFileName = "wafctl.yaml"
	// DefaultDocsDir is the directory holding the Markdown tree.
	DefaultDocsDir = "docs"
	// IndexFileName is the per-pillar index page.
	IndexFileName = "index.md"
)

// Pillar describes one Well-Architected pillar in the docs tree.
type Pillar struct {
	Dir      string `yaml:"dir"`
	Prefix   string `yaml:"prefix"`
	Title    string `yaml:"title"`
	NavOrder int    `yaml:"navOrder"`
}

// Config represents the site configuration.
type Config struct {
	Version int      `yaml:"version"`
	DocsDir string   `yaml:"docsDir"`
	Pillars []Pillar `yaml:"pillars"`
}

// DefaultConfig returns the default configuration covering the six
// framework pillars in navigation order.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		DocsDir: DefaultDocsDir,
		Pillars: []Pillar{
			{Dir: "security", Prefix: "SEC", Title: "Security", NavOrder: 2},
			{Dir: "reliability", Prefix: "REL", Title: "Reliability", NavOrder: 3},
			{Dir: "cost-optimization", Prefix: "COST", Title: "Cost Optimization", NavOrder: 4},
			{Dir: "performance-efficiency", Prefix: "PERF", Title: "Performance Efficiency", NavOrder: 5},
			{Dir: "operational-excellence", Prefix: "OPS", Title: "Operational Excellence", NavOrder: 6},
			{Dir: "sustainability", Prefix: "SUS", Title: "Sustainability", NavOrder: 7},
		},
	}
}

// Validate checks the config for structural problems.
func (c *Config) Validate() error {
	if c.DocsDir == "" {
		return fmt.Errorf("docsDir must not be empty")
	}
	seenDir := make(map[string]bool)
	seenPrefix := make(map[string]bool)
	for _, p := range c.Pillars {
		if p.Dir == "" || p.Prefix == "" {
			return fmt.Errorf("pillar entries need both dir and prefix")
		}
		if seenDir[p.Dir] {
			return fmt.Errorf("duplicate pillar dir: %s", p.Dir)
		}
		if seenPrefix[p.Prefix] {
			return fmt.Errorf("duplicate pillar prefix: %s", p.Prefix)
		}
		seenDir[p.Dir] = true
		seenPrefix[p.Prefix] = true
	}
	return nil
}

// DocsPath returns the absolute docs directory under the repository root.
func (c *Config) DocsPath(fsys platformfs.FileSystem, root string) string {
	return fsys.Join(root, c.DocsDir)
}

// PillarPath returns the directory for a pillar under the repository root.
func (c *Config) PillarPath(fsys platformfs.FileSystem, root string, p Pillar) string {
	return fsys.Join(root, c.DocsDir, p.Dir)
}

// FindPillar looks a pillar up by its directory name or prefix.
func (c *Config) FindPillar(key string) (Pillar, bool) {
	for _, p := range c.Pillars {
		if p.Dir == key || p.Prefix == key {
			return p, true
		}
	}
	return Pillar{}, false
}
