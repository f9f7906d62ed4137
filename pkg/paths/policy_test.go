package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy(t *testing.T) (*Layout, *Policy) {
	t.Helper()
	root := filepath.Join(t.TempDir(), ".claude")
	l, err := NewLayout(root, t.TempDir())
	require.NoError(t, err)
	return l, l.Policy()
}

func TestValidateManagedPath_Accepts(t *testing.T) {
	l, p := testPolicy(t)

	tests := []struct {
		name string
		path string
	}{
		{"agents root itself", l.AgentsDir()},
		{"commands root itself", l.CommandsDir()},
		{"file in agents", filepath.Join(l.AgentsDir(), "dLabs-a.md")},
		{"nested tool", filepath.Join(l.ToolsDir(), "git", "status.md")},
		{"workflow", filepath.Join(l.WorkflowsDir(), "ci.md")},
		{"dot segments that stay inside", filepath.Join(l.AgentsDir(), "x") + "/../y.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ValidateManagedPath(tt.path)
			require.NoError(t, err)
			assert.True(t, filepath.IsAbs(got))
			assert.Equal(t, filepath.Clean(tt.path), got)
		})
	}
}

func TestValidateManagedPath_Rejects(t *testing.T) {
	l, p := testPolicy(t)

	tests := []struct {
		name string
		path string
	}{
		{"system file", "/etc/passwd"},
		{"relative traversal", "../../escape"},
		{"traversal out of agents", l.AgentsDir() + "/../../../etc/passwd"},
		{"managed root parent", l.Root()},
		{"sibling sharing prefix", l.AgentsDir() + "-evil/x.md"},
		{"other dir under root", filepath.Join(l.Root(), "settings.json")},
		{"empty", ""},
		{"null byte", filepath.Join(l.AgentsDir(), "a\x00b")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.ValidateManagedPath(tt.path)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrPathEscape), "got %v", err)
			assert.False(t, p.IsManaged(tt.path))
		})
	}
}

func TestValidateManagedPath_DoesNotFollowSymlinks(t *testing.T) {
	l, p := testPolicy(t)
	require.NoError(t, os.MkdirAll(l.AgentsDir(), 0755))

	outside := t.TempDir()
	link := filepath.Join(l.AgentsDir(), "escape")
	require.NoError(t, os.Symlink(outside, link))

	// The literal path is inside the agents root, so it validates.
	got, err := p.ValidateManagedPath(filepath.Join(link, "file.md"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(link, "file.md"), got)
}

func TestValidateManagedPath_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	l, err := NewLayout("~/.claude", "")
	require.NoError(t, err)

	got, err := l.Policy().ValidateManagedPath("~/.claude/agents/a.md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".claude", "agents", "a.md"), got)
}

func TestPolicyRootsIsCopy(t *testing.T) {
	_, p := testPolicy(t)
	roots := p.Roots()
	roots[0] = "/"
	assert.NotEqual(t, "/", p.Roots()[0])
}

func TestNewPolicyIgnoresEmptyRoots(t *testing.T) {
	p := NewPolicy("", "/managed")
	assert.Equal(t, []string{"/managed"}, p.Roots())
	assert.True(t, p.IsManaged("/managed/a"))
	assert.False(t, p.IsManaged("/other"))
}
