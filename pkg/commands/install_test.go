package commands_test

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/commands"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/errors"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/reposync"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstall_AllWithYes(t *testing.T) {
	f := newFixture(t)

	result, err := commands.Install(context.Background(), f.Env, commands.InstallOptions{Yes: true})
	require.NoError(t, err)

	assert.Equal(t, totalLinks, result.Created)
	assert.Zero(t, result.Skipped)
	assert.Zero(t, result.Failed)
	assert.Empty(t, f.Prompter.Questions)
	assert.Equal(t, []string{awesomeRepo, agentsRepo, commandsRepo}, f.Syncer.calls)

	require.Len(t, result.Collections, 4)
	assert.Equal(t, "dlabs", result.Collections[0].Key)
	assert.Empty(t, result.Collections[0].Sync)
	assert.Equal(t, reposync.ActionCloned, result.Collections[1].Sync)

	testutil.AssertSymlink(t, f.agent("dLabs-reviewer.md"), filepath.Join(f.SourceRoot("dlabs"), "reviewer.md"))
	testutil.AssertSymlink(t, f.agent("frontend-react.md"), filepath.Join(f.SourceRoot("awesome"), "categories", "01-frontend", "react.md"))
	testutil.AssertSymlink(t, f.agent("wshobson-debugger.md"), filepath.Join(f.SourceRoot("wshobson_agents"), "debugger.md"))
	testutil.AssertSymlink(t, f.command("tools/git.md"), filepath.Join(f.SourceRoot("wshobson_commands"), "tools", "git.md"))
	testutil.AssertSymlink(t, f.command("wshobson-review.md"), filepath.Join(f.SourceRoot("wshobson_commands"), "review.md"))
	testutil.AssertNotExists(t, f.agent("dLabs-README.md"))

	assert.Contains(t, f.Rec.Messages("info"), "Installing dLabs Agents (2 files)")
}

func TestInstall_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := commands.Install(ctx, f.Env, commands.InstallOptions{Yes: true})
	require.NoError(t, err)

	again, err := commands.Install(ctx, f.Env, commands.InstallOptions{Yes: true})
	require.NoError(t, err)
	assert.Zero(t, again.Created)
	assert.Equal(t, totalLinks, again.Skipped)
	assert.Equal(t, reposync.ActionUpdated, again.Collections[1].Sync)
}

func TestInstall_ExplicitComponentsSkipPrompt(t *testing.T) {
	f := newFixture(t)
	f.Prompter.Answer = false

	result, err := commands.Install(context.Background(), f.Env, commands.InstallOptions{Components: []string{"dlabs"}})
	require.NoError(t, err)

	assert.Empty(t, f.Prompter.Questions)
	assert.Equal(t, 2, result.Created)
	require.Len(t, result.Collections, 1)
	assert.Empty(t, f.Syncer.calls)
}

func TestInstall_AllKeyword(t *testing.T) {
	f := newFixture(t)
	f.Prompter.Answer = false

	result, err := commands.Install(context.Background(), f.Env, commands.InstallOptions{Components: []string{"all"}})
	require.NoError(t, err)
	assert.Empty(t, f.Prompter.Questions)
	assert.Equal(t, totalLinks, result.Created)
}

func TestInstall_PromptsPerCollection(t *testing.T) {
	f := newFixture(t)
	f.Prompter.Answer = false

	result, err := commands.Install(context.Background(), f.Env, commands.InstallOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Install dLabs Agents?",
		"Install Awesome Claude Code Subagents?",
		"Install wshobson Agents?",
		"Install wshobson Commands?",
	}, f.Prompter.Questions)
	for _, c := range result.Collections {
		assert.True(t, c.Declined, c.Key)
	}
	assert.Zero(t, result.Created)
	assert.Empty(t, f.Syncer.calls)
	assert.Empty(t, testutil.ListSymlinks(t, f.Layout.AgentsDir()))
}

func TestInstall_PromptError(t *testing.T) {
	f := newFixture(t)
	f.Prompter.Err = stderrors.New("no tty")

	_, err := commands.Install(context.Background(), f.Env, commands.InstallOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestInstall_FailureContinues(t *testing.T) {
	f := newFixture(t)
	f.Syncer.fail[awesomeRepo] = errors.New(errors.ErrRepoSync, "git clone failed")

	result, err := commands.Install(context.Background(), f.Env, commands.InstallOptions{
		Components: []string{"nope", "awesome", "dlabs"},
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownCollection))
	assert.True(t, errors.IsErrorCode(err, errors.ErrRepoSync))

	assert.Equal(t, 2, result.Failed)
	assert.Equal(t, 2, result.Created)
	require.Len(t, result.Collections, 3)
	assert.NotEmpty(t, result.Collections[0].Error)
	assert.Error(t, result.Collections[1].Err())
	assert.NoError(t, result.Collections[2].Err())
	testutil.AssertSymlink(t, f.agent("dLabs-architect.md"), filepath.Join(f.SourceRoot("dlabs"), "architect.md"))
	assert.Len(t, f.Rec.Messages("error"), 2)
}

func TestInstall_MissingLocalSource(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.RemoveAll(f.SourceRoot("dlabs")))

	result, err := commands.Install(context.Background(), f.Env, commands.InstallOptions{Components: []string{"dlabs"}})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceMissing))
	assert.Equal(t, 1, result.Failed)
}

func TestInstall_NoSync(t *testing.T) {
	f := newFixture(t)
	f.WriteSources("wshobson_agents", "tester.md")

	result, err := commands.Install(context.Background(), f.Env, commands.InstallOptions{
		Components: []string{"wshobson_agents"},
		NoSync:     true,
	})
	require.NoError(t, err)
	assert.Empty(t, f.Syncer.calls)
	assert.Equal(t, 1, result.Created)
	testutil.AssertSymlink(t, f.agent("wshobson-tester.md"), filepath.Join(f.SourceRoot("wshobson_agents"), "tester.md"))
}

func TestInstall_DryRun(t *testing.T) {
	f := newFixture(t)
	f.Env.DryRun = true
	f.Syncer.dryRun = true

	result, err := commands.Install(context.Background(), f.Env, commands.InstallOptions{Yes: true})
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	assert.Equal(t, 2, result.Pending)
	assert.Zero(t, result.Created)
	assert.Equal(t, reposync.ActionDryRun, result.Collections[1].Sync)
	testutil.AssertNotExists(t, f.Layout.AgentsDir())
	assert.Contains(t, f.Rec.Messages("info"), "Would create 2 symlinks")

	totals := result.Totals()
	assert.Equal(t, 2, totals.Total)
	assert.Equal(t, 2, totals.DryRun)
}

func TestInstall_CancelledContext(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := commands.Install(ctx, f.Env, commands.InstallOptions{Yes: true})
	assert.ErrorIs(t, err, context.Canceled)
	testutil.AssertNotExists(t, f.Layout.AgentsDir())
}

func TestInstall_RequiresRegistry(t *testing.T) {
	_, err := commands.Install(context.Background(), commands.Env{}, commands.InstallOptions{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
}

func TestSetup(t *testing.T) {
	f := newFixture(t)
	f.Prompter.Answer = false

	result, err := commands.Setup(context.Background(), f.Env, "wshobson_commands")
	require.NoError(t, err)
	assert.Equal(t, 3, result.Created)
	assert.Empty(t, f.Prompter.Questions)
	testutil.AssertSymlink(t, f.command("workflows/ci.md"), filepath.Join(f.SourceRoot("wshobson_commands"), "workflows", "ci.md"))

	_, err = commands.Setup(context.Background(), f.Env, "")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = commands.Setup(context.Background(), f.Env, "nope")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownCollection))
}
