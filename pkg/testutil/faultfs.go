package testutil

import (
	"io/fs"
	"path/filepath"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/types"
)

// FaultFS wraps a filesystem and returns injected errors for specific
// operations and paths. Paths are matched after filepath.Clean.
type FaultFS struct {
	types.FS

	SymlinkErrs map[string]error
	RemoveErrs  map[string]error
	MkdirErrs   map[string]error

	// BeforeSymlink runs just before the wrapped Symlink call. Tests use it
	// to simulate another process creating the destination.
	BeforeSymlink func(oldname, newname string)
}

// NewFaultFS wraps base with no faults configured
func NewFaultFS(base types.FS) *FaultFS {
	return &FaultFS{
		FS:          base,
		SymlinkErrs: make(map[string]error),
		RemoveErrs:  make(map[string]error),
		MkdirErrs:   make(map[string]error),
	}
}

// Symlink fails with the error injected for newname
func (f *FaultFS) Symlink(oldname, newname string) error {
	if err, ok := f.SymlinkErrs[filepath.Clean(newname)]; ok {
		return &fs.PathError{Op: "symlink", Path: newname, Err: err}
	}
	if f.BeforeSymlink != nil {
		f.BeforeSymlink(oldname, newname)
	}
	return f.FS.Symlink(oldname, newname)
}

// Remove fails with the error injected for name
func (f *FaultFS) Remove(name string) error {
	if err, ok := f.RemoveErrs[filepath.Clean(name)]; ok {
		return &fs.PathError{Op: "remove", Path: name, Err: err}
	}
	return f.FS.Remove(name)
}

// MkdirAll fails with the error injected for path
func (f *FaultFS) MkdirAll(path string, perm fs.FileMode) error {
	if err, ok := f.MkdirErrs[filepath.Clean(path)]; ok {
		return &fs.PathError{Op: "mkdir", Path: path, Err: err}
	}
	return f.FS.MkdirAll(path, perm)
}
