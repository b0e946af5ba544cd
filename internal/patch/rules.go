package patch

import (
	"fmt"

	"gopkg.in/yaml.v3"

	platformfs "github.com/wafdocs/wafctl/internal/platform/fs"
)

// Mode selects where a rule's payload is written.
type Mode string

const (
	// ModeAppend writes the payload after the existing content.
	ModeAppend Mode = "append"
	// ModeInsertAfterMatch inserts the payload immediately after the first
	// line equal to the rule's marker.
	ModeInsertAfterMatch Mode = "insert-after-match"
)

// MarkerPolicy decides what happens when an insert-after-match rule finds
// no marker line in a target file.
type MarkerPolicy string

const (
	// MarkerSkip leaves the file untouched and reports it.
	MarkerSkip MarkerPolicy = "skip"
	// MarkerAppend falls back to appending the payload.
	MarkerAppend MarkerPolicy = "append"
	// MarkerFail records the file as an error.
	MarkerFail MarkerPolicy = "fail"
)

// Rule is one text injection: a fixed payload, a fixed mode, and the files
// it applies to. Payload and mode never vary per file within a rule.
type Rule struct {
	Name            string       `yaml:"name"`
	Mode            Mode         `yaml:"mode"`
	Payload         string       `yaml:"payload,omitempty"`
	PayloadFile     string       `yaml:"payloadFile,omitempty"`
	Marker          string       `yaml:"marker,omitempty"`
	OnMissingMarker MarkerPolicy `yaml:"onMissingMarker,omitempty"`
	Files           []string     `yaml:"files"`
}

// RuleSet is an ordered list of rules loaded from a rules file.
type RuleSet struct {
	Rules []Rule `yaml:"rules"`
}

// Validate checks a rule for structural problems.
func (r *Rule) Validate() error {
	switch r.Mode {
	case ModeAppend, ModeInsertAfterMatch:
	default:
		return fmt.Errorf("rule %q: unknown mode %q", r.Name, r.Mode)
	}
	if r.Payload == "" && r.PayloadFile == "" {
		return fmt.Errorf("rule %q: payload or payloadFile required", r.Name)
	}
	if r.Payload != "" && r.PayloadFile != "" {
		return fmt.Errorf("rule %q: payload and payloadFile are mutually exclusive", r.Name)
	}
	if r.Mode == ModeInsertAfterMatch && r.Marker == "" {
		return fmt.Errorf("rule %q: marker required for %s", r.Name, ModeInsertAfterMatch)
	}
	switch r.OnMissingMarker {
	case "", MarkerSkip, MarkerAppend, MarkerFail:
	default:
		return fmt.Errorf("rule %q: unknown onMissingMarker policy %q", r.Name, r.OnMissingMarker)
	}
	if len(r.Files) == 0 {
		return fmt.Errorf("rule %q: files must not be empty", r.Name)
	}
	return nil
}

// missingMarkerPolicy returns the effective policy, defaulting to skip.
func (r *Rule) missingMarkerPolicy() MarkerPolicy {
	if r.OnMissingMarker == "" {
		return MarkerSkip
	}
	return r.OnMissingMarker
}

// LoadRules parses and validates a rules file. Payload files are resolved
// relative to the rules file's directory and inlined.
func LoadRules(fsys platformfs.FileSystem, path string) (*RuleSet, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}
	if len(rs.Rules) == 0 {
		return nil, fmt.Errorf("rules file %s contains no rules", path)
	}

	baseDir := fsys.Dir(path)
	for i := range rs.Rules {
		r := &rs.Rules[i]
		if r.Name == "" {
			r.Name = fmt.Sprintf("rule-%d", i+1)
		}
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if r.PayloadFile != "" {
			payload, err := fsys.ReadFile(fsys.Join(baseDir, r.PayloadFile))
			if err != nil {
				return nil, fmt.Errorf("rule %q: failed to read payload file: %w", r.Name, err)
			}
			r.Payload = string(payload)
			r.PayloadFile = ""
		}
	}

	return &rs, nil
}
