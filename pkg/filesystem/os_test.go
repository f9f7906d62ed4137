package filesystem_test

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSLinkLifecycle(t *testing.T) {
	root := t.TempDir()
	osfs := filesystem.NewOS()

	source := filepath.Join(root, "sources", "reviewer.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(source), 0755))
	require.NoError(t, os.WriteFile(source, []byte("# reviewer\n"), 0644))

	link := filepath.Join(root, "agents", "nested", "dLabs-reviewer.md")
	require.NoError(t, osfs.MkdirAll(filepath.Dir(link), 0755))
	require.NoError(t, osfs.Symlink(source, link))

	target, err := osfs.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, source, target)

	info, err := osfs.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&fs.ModeSymlink)

	info, err = osfs.Stat(link)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())

	entries, err := osfs.ReadDir(filepath.Dir(link))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "dLabs-reviewer.md", entries[0].Name())

	err = osfs.Symlink(source, link)
	require.Error(t, err)
	assert.True(t, filesystem.IsExist(err))

	require.NoError(t, osfs.Remove(link))
	_, err = os.Lstat(link)
	assert.True(t, os.IsNotExist(err))
	assert.FileExists(t, source)

	err = osfs.Remove(link)
	require.Error(t, err)
	assert.True(t, filesystem.IsNotExist(err))
}

func TestOSBrokenLinkStat(t *testing.T) {
	root := t.TempDir()
	osfs := filesystem.NewOS()

	link := filepath.Join(root, "dangling.md")
	require.NoError(t, osfs.Symlink(filepath.Join(root, "gone.md"), link))

	_, err := osfs.Lstat(link)
	require.NoError(t, err)
	_, err = osfs.Stat(link)
	assert.True(t, filesystem.IsNotExist(err))
}

func TestErrorPredicatesFollowWrapping(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"not exist path error", &fs.PathError{Op: "lstat", Path: "/x", Err: fs.ErrNotExist}, filesystem.IsNotExist, true},
		{"not exist wrapped", fmt.Errorf("remove: %w", fs.ErrNotExist), filesystem.IsNotExist, true},
		{"exist wrapped", fmt.Errorf("symlink: %w", &os.LinkError{Op: "symlink", Err: fs.ErrExist}), filesystem.IsExist, true},
		{"permission wrapped", fmt.Errorf("mkdir: %w", fs.ErrPermission), filesystem.IsPermission, true},
		{"unrelated", fmt.Errorf("disk on fire"), filesystem.IsExist, false},
		{"nil", nil, filesystem.IsNotExist, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(tt.err))
		})
	}
}
