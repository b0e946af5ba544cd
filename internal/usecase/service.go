// Package usecase implements the operations behind each wafctl command as
// services over the config and filesystem abstractions.
package usecase

import (
	"fmt"
	"path/filepath"
	"strings"

	platformfs "github.com/wafdocs/wafctl/internal/platform/fs"
)

// resolvePath resolves a user-supplied path against the repository root.
func resolvePath(fsys platformfs.FileSystem, root, path string) string {
	if filepath.IsAbs(path) || root == "" {
		return path
	}
	return fsys.Join(root, path)
}

// walkMarkdown returns all .md file paths under dir, recursively, in
// deterministic order.
func walkMarkdown(fsys platformfs.FileSystem, dir string) ([]string, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		path := fsys.Join(dir, entry.Name())
		if entry.IsDir() {
			sub, err := walkMarkdown(fsys, path)
			if err != nil {
				return nil, err
			}
			paths = append(paths, sub...)
			continue
		}
		if strings.HasSuffix(entry.Name(), ".md") {
			paths = append(paths, path)
		}
	}
	return paths, nil
}
