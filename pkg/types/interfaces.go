package types

import (
	"io/fs"
)

// FS is the filesystem interface required for twcfg operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// DirFS exposes the subtree rooted at dir as a read-only fs.FS, the
	// shape glob expansion works on.
	DirFS(dir string) fs.FS
}
