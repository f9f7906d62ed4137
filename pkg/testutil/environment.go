// pkg/testutil/environment.go
// DEPENDENCIES: collections, paths, filesystem
// PURPOSE: Orchestrate isolated test environments

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/collections"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/filesystem"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/paths"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/types"
	"github.com/stretchr/testify/require"
)

// TestEnvironment provides a managed root, a sources directory and the
// default collection registry inside a temp directory.
type TestEnvironment struct {
	Root       string
	SourcesDir string
	HomeDir    string

	Layout   *paths.Layout
	Policy   *paths.Policy
	Registry *collections.Registry
	FS       types.FS

	t *testing.T
}

// NewTestEnvironment creates a new isolated environment. HOME and the XDG
// directories point inside it so nothing leaks into the real user config.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	tempDir := t.TempDir()
	env := &TestEnvironment{
		Root:       filepath.Join(tempDir, "home", ".claude"),
		SourcesDir: filepath.Join(tempDir, "sources"),
		HomeDir:    filepath.Join(tempDir, "home"),
		FS:         filesystem.NewOS(),
		t:          t,
	}

	require.NoError(t, os.MkdirAll(env.HomeDir, 0755))
	require.NoError(t, os.MkdirAll(env.SourcesDir, 0755))

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempDir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tempDir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tempDir, "state"))

	layout, err := paths.NewLayout(env.Root, env.SourcesDir)
	require.NoError(t, err)
	env.Layout = layout
	env.Policy = layout.Policy()
	env.Registry = DefaultRegistry(t)

	return env
}

// DefaultRegistry returns the four standard collections.
func DefaultRegistry(t *testing.T) *collections.Registry {
	t.Helper()

	reg, err := collections.NewRegistry(
		collections.Collection{
			Key: "dlabs", Name: "dLabs Agents", Order: 1, ExpectedCount: 5,
			SourceSubPath: "agents/dallasLabs", Prefix: "dLabs-",
			Destination: collections.DestinationAgents, Strategy: collections.StrategyPrefixed,
		},
		collections.Collection{
			Key: "awesome", Name: "Awesome Claude Code Subagents", Order: 2,
			SourceSubPath: "agents/awesome-claude-code-subagents",
			Destination:   collections.DestinationAgents, Strategy: collections.StrategyCategoryFlatten,
			Repository: "https://example.invalid/awesome.git",
		},
		collections.Collection{
			Key: "wshobson_agents", Name: "wshobson Agents", Order: 3,
			SourceSubPath: "agents/wshobson-agents", Prefix: "wshobson-",
			Destination: collections.DestinationAgents, Strategy: collections.StrategyPrefixed,
			Repository: "https://example.invalid/agents.git",
		},
		collections.Collection{
			Key: "wshobson_commands", Name: "wshobson Commands", Order: 4,
			SourceSubPath: "commands/wshobson-commands", Prefix: "wshobson-",
			Destination: collections.DestinationCommands, Strategy: collections.StrategyToolWorkflowSplit,
			Repository: "https://example.invalid/commands.git",
		},
	)
	require.NoError(t, err)
	return reg
}

// SourceRoot returns the source directory of a registered collection.
func (env *TestEnvironment) SourceRoot(key string) string {
	env.t.Helper()
	c, err := env.Registry.Get(key)
	require.NoError(env.t, err)
	return env.Layout.SourcePath(c.SourceSubPath)
}

// WriteSources creates files under a collection's source root. Paths are
// slash separated and relative to that root.
func (env *TestEnvironment) WriteSources(key string, files ...string) string {
	env.t.Helper()
	root := env.SourceRoot(key)
	WriteFiles(env.t, root, files...)
	return root
}

// WriteFiles creates each relative path under root with placeholder
// content, creating parent directories.
func WriteFiles(t *testing.T, root string, files ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(root, 0755))
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("# "+filepath.Base(f)+"\n"), 0644))
	}
}

// Symlink creates a symlink, creating the parent directory.
func Symlink(t *testing.T, target, link string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(link), 0755))
	require.NoError(t, os.Symlink(target, link))
}
