package filesystem

import (
	"io/fs"
	"os"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/types"
)

// osFS implements types.FS on the real filesystem. Link and directory
// mutations, and Readlink, go through synthfs's path-aware OS filesystem
// rooted at "/". Stat, Lstat and ReadDir stay on the os package: they must
// follow (or not follow) symlinks exactly as the kernel does, which the
// engine's broken-link detection depends on.
type osFS struct {
	sfs filesystem.FullFileSystem
}

// NewOS creates a new OS filesystem implementation
func NewOS() types.FS {
	osfs := filesystem.NewOSFileSystem("/")
	return &osFS{sfs: synthfs.NewPathAwareFileSystem(osfs, "/").WithAbsolutePaths()}
}

func (o *osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (o *osFS) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(name)
}

func (o *osFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

func (o *osFS) MkdirAll(path string, perm fs.FileMode) error {
	return o.sfs.MkdirAll(path, perm)
}

func (o *osFS) Symlink(oldname, newname string) error {
	return o.sfs.Symlink(oldname, newname)
}

func (o *osFS) Readlink(name string) (string, error) {
	return o.sfs.Readlink(name)
}

func (o *osFS) Remove(name string) error {
	return o.sfs.Remove(name)
}
