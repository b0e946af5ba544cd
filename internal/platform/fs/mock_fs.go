package fs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// MockFileSystem implements FileSystem for testing purposes.
type MockFileSystem struct {
	Files map[string][]byte
	Dirs  map[string]bool
	// WriteErrs maps paths to errors returned from WriteFile, for
	// exercising write-failure paths.
	WriteErrs map[string]error
}

// NewMockFileSystem returns a new MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files:     make(map[string][]byte),
		Dirs:      make(map[string]bool),
		WriteErrs: make(map[string]error),
	}
}

func (m *MockFileSystem) normalizePath(path string) string {
	return filepath.Clean(path)
}

func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	path = m.normalizePath(path)
	if data, ok := m.Files[path]; ok {
		return data, nil
	}
	return nil, os.ErrNotExist
}

func (m *MockFileSystem) WriteFile(path string, data []byte, _ os.FileMode) error {
	path = m.normalizePath(path)
	if err, ok := m.WriteErrs[path]; ok {
		return err
	}
	m.Files[path] = data
	return nil
}

func (m *MockFileSystem) Stat(path string) (os.FileInfo, error) {
	path = m.normalizePath(path)
	if data, ok := m.Files[path]; ok {
		return &mockFileInfo{name: filepath.Base(path), size: int64(len(data))}, nil
	}
	if m.Dirs[path] {
		return &mockFileInfo{name: filepath.Base(path), isDir: true}, nil
	}
	return nil, os.ErrNotExist
}

func (m *MockFileSystem) MkdirAll(path string, _ os.FileMode) error {
	path = m.normalizePath(path)
	m.Dirs[path] = true

	// Also create parent directories
	parts := strings.Split(path, "/")
	for i := 1; i < len(parts); i++ {
		parent := strings.Join(parts[:i+1], "/")
		if parent != "" {
			m.Dirs[parent] = true
		}
	}
	return nil
}

func (m *MockFileSystem) ReadDir(path string) ([]os.DirEntry, error) {
	path = m.normalizePath(path)

	if !m.Dirs[path] {
		return nil, os.ErrNotExist
	}

	var entries []os.DirEntry
	seen := make(map[string]bool)

	prefix := path + "/"

	// Find files in this directory
	for p := range m.Files {
		if strings.HasPrefix(p, prefix) {
			rel := strings.TrimPrefix(p, prefix)
			if !strings.Contains(rel, "/") && !seen[rel] {
				entries = append(entries, &mockDirEntry{name: rel, isDir: false})
				seen[rel] = true
			}
		}
	}

	// Find subdirectories
	for p := range m.Dirs {
		if strings.HasPrefix(p, prefix) && p != path {
			rel := strings.TrimPrefix(p, prefix)
			name := strings.Split(rel, "/")[0]
			if !seen[name] {
				entries = append(entries, &mockDirEntry{name: name, isDir: true})
				seen[name] = true
			}
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	return entries, nil
}

func (m *MockFileSystem) Exists(path string) bool {
	path = m.normalizePath(path)
	if _, ok := m.Files[path]; ok {
		return true
	}
	return m.Dirs[path]
}

func (m *MockFileSystem) IsDir(path string) bool {
	path = m.normalizePath(path)
	return m.Dirs[path]
}

func (m *MockFileSystem) Join(elem ...string) string {
	return filepath.Join(elem...)
}

func (m *MockFileSystem) Dir(path string) string {
	return filepath.Dir(path)
}

func (m *MockFileSystem) Base(path string) string {
	return filepath.Base(path)
}

// Compile-time interface check.
var _ FileSystem = (*MockFileSystem)(nil)

// mockFileInfo implements os.FileInfo.
type mockFileInfo struct {
	name  string
	size  int64
	isDir bool
}

func (fi *mockFileInfo) Name() string       { return fi.name }
func (fi *mockFileInfo) Size() int64        { return fi.size }
func (fi *mockFileInfo) Mode() os.FileMode  { return 0o644 }
func (fi *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (fi *mockFileInfo) IsDir() bool        { return fi.isDir }
func (fi *mockFileInfo) Sys() interface{}   { return nil }

// mockDirEntry implements os.DirEntry.
type mockDirEntry struct {
	name  string
	isDir bool
}

func (de *mockDirEntry) Name() string      { return de.name }
func (de *mockDirEntry) IsDir() bool       { return de.isDir }
func (de *mockDirEntry) Type() os.FileMode { return 0 }
func (de *mockDirEntry) Info() (os.FileInfo, error) {
	return &mockFileInfo{name: de.name, isDir: de.isDir}, nil
}
