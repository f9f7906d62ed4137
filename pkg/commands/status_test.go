package commands_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/commands"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/errors"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_FreshEnvironment(t *testing.T) {
	f := newFixture(t)

	result, err := commands.Status(f.Env, commands.StatusOptions{})
	require.NoError(t, err)

	assert.Equal(t, f.Root, result.Root)
	require.Len(t, result.Collections, 4)

	dlabs := result.Collections[0]
	assert.Equal(t, "dlabs", dlabs.Key)
	assert.True(t, dlabs.SourcePresent)
	assert.False(t, dlabs.Remote)
	assert.Equal(t, 2, dlabs.Available)
	assert.Zero(t, dlabs.Installed)
	assert.Equal(t, "prefixed", dlabs.Strategy)
	assert.Equal(t, "agents", dlabs.Destination)

	awesome := result.Collections[1]
	assert.False(t, awesome.SourcePresent)
	assert.True(t, awesome.Remote)
	assert.Zero(t, awesome.Available)
	assert.Empty(t, result.Broken)
}

func TestStatus_AfterInstall(t *testing.T) {
	f := newFixture(t)
	_, err := commands.Install(context.Background(), f.Env, commands.InstallOptions{Components: []string{"dlabs", "wshobson_commands"}})
	require.NoError(t, err)
	testutil.Symlink(t, filepath.Join(f.SourcesDir, "gone.md"), f.agent("dLabs-gone.md"))

	result, err := commands.Status(f.Env, commands.StatusOptions{Components: []string{"dlabs", "wshobson_commands"}, Links: true})
	require.NoError(t, err)
	require.Len(t, result.Collections, 2)

	dlabs := result.Collections[0]
	assert.Equal(t, 3, dlabs.Installed)
	assert.Equal(t, 1, dlabs.Broken)
	assert.Len(t, dlabs.Links, 3)

	cmds := result.Collections[1]
	assert.Equal(t, 3, cmds.Installed)
	assert.Equal(t, 3, cmds.Available)
	assert.Zero(t, cmds.Broken)

	require.Len(t, result.Broken, 1)
	assert.Equal(t, f.agent("dLabs-gone.md"), result.Broken[0].Path)
}

func TestStatus_WithoutLinks(t *testing.T) {
	f := newFixture(t)
	installEverything(t, f)

	result, err := commands.Status(f.Env, commands.StatusOptions{})
	require.NoError(t, err)
	for _, c := range result.Collections {
		assert.Nil(t, c.Links, c.Key)
		assert.Equal(t, c.Available, c.Installed, c.Key)
	}
}

func TestStatus_UnknownCollection(t *testing.T) {
	f := newFixture(t)

	result, err := commands.Status(f.Env, commands.StatusOptions{Components: []string{"nope", "dlabs"}})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownCollection))
	require.Len(t, result.Collections, 1)
	assert.Equal(t, "dlabs", result.Collections[0].Key)
}
