// Package ops abstracts the filesystem operations the sample tools perform,
// so tests and embedding hosts can substitute their own implementation.
package ops

import "os"

// FileOps abstracts filesystem operations for testability.
type FileOps interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	Stat(path string) (os.FileInfo, error)
	Mkdir(path string, perm os.FileMode) error
	ReadDir(path string) ([]os.DirEntry, error)
}

// RealFileOps implements FileOps using the real filesystem.
type RealFileOps struct{}

func (r *RealFileOps) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }
func (r *RealFileOps) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}
func (r *RealFileOps) Stat(path string) (os.FileInfo, error)      { return os.Stat(path) }
func (r *RealFileOps) Mkdir(path string, perm os.FileMode) error  { return os.Mkdir(path, perm) }
func (r *RealFileOps) ReadDir(path string) ([]os.DirEntry, error) { return os.ReadDir(path) }
