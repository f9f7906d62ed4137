package commands_test

import (
	"context"
	"testing"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/commands"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfo(t *testing.T) {
	f := newFixture(t)

	md, err := commands.Info(f.Env, "dlabs")
	require.NoError(t, err)
	assert.Contains(t, md, "# dLabs Agents\n")
	assert.Contains(t, md, "- **Prefix:** `dLabs-`")
	assert.Contains(t, md, "- **Expected files:** 5")
	assert.Contains(t, md, "## Installed (0)")
	assert.Contains(t, md, "Nothing installed.")
	assert.NotContains(t, md, "Repository")

	_, err = commands.Install(context.Background(), f.Env, commands.InstallOptions{Components: []string{"dlabs"}})
	require.NoError(t, err)

	md, err = commands.Info(f.Env, "dlabs")
	require.NoError(t, err)
	assert.Contains(t, md, "## Installed (2)")
	assert.Contains(t, md, "- `dLabs-architect.md`")
	assert.Contains(t, md, "- `dLabs-reviewer.md`")
}

func TestInfo_RemoteCollection(t *testing.T) {
	f := newFixture(t)

	md, err := commands.Info(f.Env, "wshobson_commands")
	require.NoError(t, err)
	assert.Contains(t, md, "(missing)")
	assert.Contains(t, md, "- **Repository:** "+commandsRepo)
	assert.Contains(t, md, "`tools/` and `workflows/` mirrored")
}

func TestInfo_UnknownCollection(t *testing.T) {
	f := newFixture(t)
	_, err := commands.Info(f.Env, "nope")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownCollection))
}
