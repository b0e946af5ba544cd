// Package manifest defines the question catalog for a docs tree: pillars,
// their questions, and per-question best practices. The manifest is the
// source of truth that generation and verification run against.
package manifest

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	platformfs "github.com/wafdocs/wafctl/internal/platform/fs"
)

// BestPractice is one recommended practice under a question.
type BestPractice struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
}

// Question is one framework question within a pillar.
type Question struct {
	ID            string         `yaml:"id"`
	Title         string         `yaml:"title"`
	Description   string         `yaml:"description,omitempty"`
	BestPractices []BestPractice `yaml:"bestPractices,omitempty"`
}

// Pillar groups the questions of one framework pillar.
type Pillar struct {
	Name      string     `yaml:"name"`
	Abbr      string     `yaml:"abbr"`
	Dir       string     `yaml:"dir"`
	NavOrder  int        `yaml:"navOrder,omitempty"`
	Questions []Question `yaml:"questions"`
}

// Manifest is the full question catalog.
type Manifest struct {
	Version int      `yaml:"version,omitempty"`
	Pillars []Pillar `yaml:"pillars"`
}

// Load reads, schema-validates, and decodes a manifest file.
func Load(fsys platformfs.FileSystem, path string) (*Manifest, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	if err := validateSchema(data); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := m.check(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	return &m, nil
}

// check enforces the semantic rules the schema cannot express: question IDs
// carry their pillar's prefix, best practice IDs carry their question's.
func (m *Manifest) check() error {
	seen := make(map[string]bool)
	for _, p := range m.Pillars {
		for _, q := range p.Questions {
			if !strings.HasPrefix(q.ID, p.Abbr) {
				return fmt.Errorf("question %s does not match pillar prefix %s", q.ID, p.Abbr)
			}
			if seen[q.ID] {
				return fmt.Errorf("duplicate question id %s", q.ID)
			}
			seen[q.ID] = true
			for _, bp := range q.BestPractices {
				if !strings.HasPrefix(bp.ID, q.ID+"-BP") {
					return fmt.Errorf("best practice %s does not belong to question %s", bp.ID, q.ID)
				}
				if seen[bp.ID] {
					return fmt.Errorf("duplicate best practice id %s", bp.ID)
				}
				seen[bp.ID] = true
			}
		}
	}
	return nil
}

// QuestionIDs returns the question IDs of a pillar in manifest order.
func (p *Pillar) QuestionIDs() []string {
	ids := make([]string, 0, len(p.Questions))
	for _, q := range p.Questions {
		ids = append(ids, q.ID)
	}
	return ids
}
