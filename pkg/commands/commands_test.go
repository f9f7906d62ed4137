package commands_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/commands"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/reposync"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/testutil"
)

// fakeSyncer "clones" by writing a fixed file list into the destination.
type fakeSyncer struct {
	t       *testing.T
	files   map[string][]string
	fail    map[string]error
	dryRun  bool
	calls   []string
	version string
	gitErr  error
}

func (f *fakeSyncer) Sync(_ context.Context, repoURL, dest string) (reposync.SyncAction, error) {
	f.calls = append(f.calls, repoURL)
	if err := f.fail[repoURL]; err != nil {
		return "", err
	}
	if f.dryRun {
		return reposync.ActionDryRun, nil
	}
	if _, err := os.Stat(dest); err == nil {
		return reposync.ActionUpdated, nil
	}
	testutil.WriteFiles(f.t, dest, f.files[repoURL]...)
	return reposync.ActionCloned, nil
}

func (f *fakeSyncer) Available(context.Context) (string, error) {
	return f.version, f.gitErr
}

const (
	awesomeRepo  = "https://example.invalid/awesome.git"
	agentsRepo   = "https://example.invalid/agents.git"
	commandsRepo = "https://example.invalid/commands.git"
)

type fixture struct {
	*testutil.TestEnvironment
	Env      commands.Env
	Rec      *testutil.Recorder
	Prompter *testutil.StaticPrompter
	Syncer   *fakeSyncer
}

// newFixture writes the local dlabs collection and prepares a syncer that
// clones the three remote ones.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	te := testutil.NewTestEnvironment(t)
	te.WriteSources("dlabs", "reviewer.md", "architect.md", "README.md")

	f := &fixture{
		TestEnvironment: te,
		Rec:             testutil.NewRecorder(),
		Prompter:        &testutil.StaticPrompter{Answer: true},
		Syncer: &fakeSyncer{
			t: t,
			files: map[string][]string{
				awesomeRepo:  {"categories/01-frontend/react.md", "categories/02-backend/go-pro.md", "README.md"},
				agentsRepo:   {"debugger.md", "LICENSE"},
				commandsRepo: {"tools/git.md", "workflows/ci.md", "review.md"},
			},
			fail:    map[string]error{},
			version: "git version 2.45.0",
		},
	}
	f.Env = commands.Env{
		Registry: te.Registry,
		Layout:   te.Layout,
		FS:       te.FS,
		Reporter: f.Rec,
		Prompter: f.Prompter,
		Syncer:   f.Syncer,
	}
	return f
}

func (f *fixture) agent(name string) string {
	return filepath.Join(f.Layout.AgentsDir(), name)
}

func (f *fixture) command(rel string) string {
	return filepath.Join(f.Layout.CommandsDir(), filepath.FromSlash(rel))
}

// totalLinks is how many links a full install of the fixture creates.
const totalLinks = 2 + 2 + 1 + 3
