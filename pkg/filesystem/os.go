package filesystem

import (
	"io/fs"
	"os"

	"github.com/arthur-debert/twcfg/pkg/types"
	"github.com/google/renameio/v2"
)

// osFS implements types.FS using the OS filesystem
type osFS struct{}

// NewOS creates a new OS filesystem implementation
func NewOS() types.FS {
	return &osFS{}
}

func (o *osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (o *osFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WriteFile replaces name atomically: readers see either the old
// content or the new one, never a truncated file.
func (o *osFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return renameio.WriteFile(name, data, perm)
}

func (o *osFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (o *osFS) DirFS(dir string) fs.FS {
	return os.DirFS(dir)
}
