// Package patch implements batch text injection into files: a fixed payload
// written at a fixed position in each file of a rule's target list. Files
// are processed independently, each mutated at most once per run, and a
// missing file is a reported skip rather than an error.
package patch

import (
	"errors"
	"fmt"
	"strings"

	platformfs "github.com/wafdocs/wafctl/internal/platform/fs"
)

// ErrMarkerNotFound reports that an insert-after-match rule found no line
// equal to its marker.
var ErrMarkerNotFound = errors.New("marker not found")

// Action represents the outcome for a single file.
type Action string

const (
	ActionPatched        Action = "patched"
	ActionMissing        Action = "missing"
	ActionMarkerNotFound Action = "marker-not-found"
	ActionError          Action = "error"
)

// Result represents the outcome of applying one rule to one file.
type Result struct {
	Rule   string
	Path   string
	Action Action
	Error  error
}

// Options contains options for a patch run.
type Options struct {
	// DryRun reports what would be done without writing.
	DryRun bool
}

// Patcher applies rule sets to files.
type Patcher struct {
	fs platformfs.FileSystem
}

// New creates a new Patcher.
func New(fsys platformfs.FileSystem) *Patcher {
	return &Patcher{fs: fsys}
}

// Run applies every rule in order and returns per-file results. Failures
// are local to the file being processed; the batch always continues.
func (p *Patcher) Run(rs *RuleSet, opts Options) []Result {
	var results []Result
	for _, rule := range rs.Rules {
		results = append(results, p.applyRule(rule, opts)...)
	}
	return results
}

func (p *Patcher) applyRule(rule Rule, opts Options) []Result {
	results := make([]Result, 0, len(rule.Files))
	seen := make(map[string]bool)

	for _, path := range rule.Files {
		// A file is mutated at most once per run.
		if seen[path] {
			continue
		}
		seen[path] = true

		action, err := p.patchFile(path, rule, opts.DryRun)
		results = append(results, Result{Rule: rule.Name, Path: path, Action: action, Error: err})
	}

	return results
}

// patchFile applies a rule to a single file. The patcher never creates
// files: a missing target is skipped.
func (p *Patcher) patchFile(path string, rule Rule, dryRun bool) (Action, error) {
	if !p.fs.Exists(path) {
		return ActionMissing, nil
	}

	content, err := p.fs.ReadFile(path)
	if err != nil {
		return ActionError, fmt.Errorf("failed to read %s: %w", path, err)
	}

	patched, err := Apply(content, rule)
	if errors.Is(err, ErrMarkerNotFound) {
		switch rule.missingMarkerPolicy() {
		case MarkerAppend:
			patched = appendPayload(content, rule.Payload)
		case MarkerFail:
			return ActionError, fmt.Errorf("%s: %w", path, ErrMarkerNotFound)
		default:
			return ActionMarkerNotFound, nil
		}
	} else if err != nil {
		return ActionError, err
	}

	if dryRun {
		return ActionPatched, nil
	}

	if err := p.fs.WriteFile(path, patched, 0o644); err != nil {
		return ActionError, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return ActionPatched, nil
}

// Apply returns the content with the rule's payload injected. It is pure:
// no filesystem access, no policy handling. Returns ErrMarkerNotFound when
// an insert-after-match rule has no matching line.
func Apply(content []byte, rule Rule) ([]byte, error) {
	switch rule.Mode {
	case ModeAppend:
		return appendPayload(content, rule.Payload), nil
	case ModeInsertAfterMatch:
		return insertAfterMatch(content, rule.Marker, rule.Payload)
	default:
		return nil, fmt.Errorf("unknown mode %q", rule.Mode)
	}
}

// appendPayload concatenates the payload after the existing content,
// byte for byte.
func appendPayload(content []byte, payload string) []byte {
	out := make([]byte, 0, len(content)+len(payload))
	out = append(out, content...)
	out = append(out, payload...)
	return out
}

// insertAfterMatch inserts the payload as new lines immediately after the
// first line exactly equal to marker.
func insertAfterMatch(content []byte, marker, payload string) ([]byte, error) {
	lines := strings.SplitAfter(string(content), "\n")
	for i, line := range lines {
		if strings.TrimSuffix(line, "\n") != marker {
			continue
		}

		insert := payload
		if !strings.HasSuffix(insert, "\n") {
			insert += "\n"
		}
		// The marker may be the last line and lack a trailing newline.
		prefix := line
		if !strings.HasSuffix(prefix, "\n") {
			prefix += "\n"
		}

		var b strings.Builder
		b.Grow(len(content) + len(insert) + 1)
		for _, l := range lines[:i] {
			b.WriteString(l)
		}
		b.WriteString(prefix)
		b.WriteString(insert)
		for _, l := range lines[i+1:] {
			b.WriteString(l)
		}
		return []byte(b.String()), nil
	}
	return nil, ErrMarkerNotFound
}

// Summary aggregates per-file results of a run.
type Summary struct {
	Patched        int
	Missing        int
	MarkerNotFound int
	Errors         int
}

// Summarize counts results by action.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.Action {
		case ActionPatched:
			s.Patched++
		case ActionMissing:
			s.Missing++
		case ActionMarkerNotFound:
			s.MarkerNotFound++
		case ActionError:
			s.Errors++
		}
	}
	return s
}
