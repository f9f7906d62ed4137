package reposync

import (
	"context"
	"path/filepath"
	"time"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/errors"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/filesystem"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/logging"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/types"
	"github.com/rs/zerolog"
)

// SyncAction is what a sync did to the destination.
type SyncAction string

const (
	ActionCloned  SyncAction = "cloned"
	ActionUpdated SyncAction = "updated"
	// ActionSkipped means the destination exists but is not a git checkout.
	ActionSkipped SyncAction = "skipped"
	ActionDryRun  SyncAction = "dry_run"
)

// DefaultTimeout bounds a single git invocation
const DefaultTimeout = 5 * time.Minute

const gitBinary = "git"

// Syncer brings a local copy of repoURL up to date at dest.
type Syncer interface {
	Sync(ctx context.Context, repoURL, dest string) (SyncAction, error)
}

// GitSyncer implements Syncer with the git command line.
type GitSyncer struct {
	runner  Runner
	fs      types.FS
	dryRun  bool
	timeout time.Duration
	logger  zerolog.Logger
}

// NewGitSyncer creates a syncer. A nil runner uses ExecRunner.
func NewGitSyncer(runner Runner, fs types.FS, dryRun bool) *GitSyncer {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &GitSyncer{
		runner:  runner,
		fs:      fs,
		dryRun:  dryRun,
		timeout: DefaultTimeout,
		logger:  logging.GetLogger("reposync"),
	}
}

// Sync clones repoURL into dest when dest is missing and pulls with
// --ff-only when dest is a git checkout. Other existing directories are
// left untouched.
func (g *GitSyncer) Sync(ctx context.Context, repoURL, dest string) (SyncAction, error) {
	if repoURL == "" {
		return "", errors.New(errors.ErrInvalidInput, "repository URL is empty")
	}

	logger := g.logger.With().Str("repo", repoURL).Str("dest", dest).Logger()

	if _, err := g.fs.Stat(dest); err != nil {
		if !filesystem.IsNotExist(err) {
			return "", errors.Wrapf(err, errors.ErrRepoSync, "cannot inspect %s", dest)
		}
		if g.dryRun {
			logger.Info().Msg("Would clone repository")
			return ActionDryRun, nil
		}
		if err := g.clone(ctx, logger, repoURL, dest); err != nil {
			return "", err
		}
		return ActionCloned, nil
	}

	if _, err := g.fs.Stat(filepath.Join(dest, ".git")); err != nil {
		logger.Warn().Msg("Destination exists but is not a git checkout, leaving it as is")
		return ActionSkipped, nil
	}

	if g.dryRun {
		logger.Info().Msg("Would update repository")
		return ActionDryRun, nil
	}
	if err := g.pull(ctx, logger, repoURL, dest); err != nil {
		return "", err
	}
	return ActionUpdated, nil
}

// Available checks that git can be executed.
func (g *GitSyncer) Available(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	out, err := g.runner.Run(ctx, "", gitBinary, "--version")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRepoSync, "git is not available")
	}
	return out, nil
}

func (g *GitSyncer) clone(ctx context.Context, logger zerolog.Logger, repoURL, dest string) error {
	if err := g.fs.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrRepoSync, "cannot create parent of %s", dest)
	}

	logger.Info().Msg("Cloning repository")
	return g.run(ctx, logger, "clone", repoURL, dest, "clone", "--depth", "1", repoURL, dest)
}

func (g *GitSyncer) pull(ctx context.Context, logger zerolog.Logger, repoURL, dest string) error {
	logger.Info().Msg("Updating repository")
	return g.run(ctx, logger, "pull", repoURL, dest, "-C", dest, "pull", "--ff-only")
}

func (g *GitSyncer) run(ctx context.Context, logger zerolog.Logger, op, repoURL, dest string, args ...string) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	out, err := g.runner.Run(ctx, "", gitBinary, args...)
	logger.Debug().
		Strs("args", args).
		Dur("duration", time.Since(start)).
		Str("output", out).
		Msg("git finished")

	if err != nil {
		logger.Error().Err(err).Str("output", out).Msg("git failed")
		return errors.Wrapf(err, errors.ErrRepoSync, "git %s failed for %s", op, repoURL).
			WithDetail("repo", repoURL).
			WithDetail("dest", dest).
			WithDetail("output", out)
	}
	return nil
}
