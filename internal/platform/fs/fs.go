package fs

import (
	"os"
	"path/filepath"
)

// FileSystem abstracts file operations so commands can run against the real
// filesystem or an in-memory mock in tests.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	Stat(path string) (os.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	ReadDir(path string) ([]os.DirEntry, error)
	Exists(path string) bool
	IsDir(path string) bool
	Join(elem ...string) string
	Dir(path string) string
	Base(path string) string
}

// RealFileSystem implements FileSystem using the real file system.
type RealFileSystem struct{}

// Compile-time interface check.
var _ FileSystem = (*RealFileSystem)(nil)

// NewFileSystem returns a new RealFileSystem.
func NewFileSystem() *RealFileSystem {
	return &RealFileSystem{}
}

func (r *RealFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (r *RealFileSystem) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (r *RealFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

func (r *RealFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (r *RealFileSystem) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

func (r *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (r *RealFileSystem) IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func (r *RealFileSystem) Join(elem ...string) string {
	return filepath.Join(elem...)
}

func (r *RealFileSystem) Dir(path string) string {
	return filepath.Dir(path)
}

func (r *RealFileSystem) Base(path string) string {
	return filepath.Base(path)
}
