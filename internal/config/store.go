package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	platformfs "github.com/wafdocs/wafctl/internal/platform/fs"
)

// Store manages config file persistence.
type Store struct {
	fs platformfs.FileSystem
}

// NewStore creates a new Store.
func NewStore(fsys platformfs.FileSystem) *Store {
	return &Store{fs: fsys}
}

// Load loads the configuration from a file.
func (s *Store) Load(path string) (*Config, error) {
	if !s.fs.Exists(path) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.DocsDir == "" {
		cfg.DocsDir = DefaultDocsDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Save saves the configuration to a specific path.
func (s *Store) Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := s.fs.Dir(path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.fs.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// FindRoot searches for the docs repository root by looking for wafctl.yaml.
// Uses the current working directory as the starting point.
func (s *Store) FindRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return s.FindRootFrom(cwd)
}

// FindRootFrom searches for the docs repository root starting from the
// given directory.
func (s *Store) FindRootFrom(startDir string) (string, error) {
	dir := startDir
	for {
		cfgPath := s.fs.Join(dir, ConfigFileName)
		if s.fs.Exists(cfgPath) && !s.fs.IsDir(cfgPath) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("docs repository root not found (no %s)", ConfigFileName)
		}
		dir = parent
	}
}
