package symlink

import (
	"fmt"
	"path/filepath"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/collections"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/errors"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/filesystem"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/logging"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/paths"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/types"
	"github.com/rs/zerolog"
)

const dirPerm = 0755

// Options configures an Engine. FS, Layout and Registry are required.
type Options struct {
	FS       types.FS
	Layout   *paths.Layout
	Registry *collections.Registry
	// Reporter may be nil, in which case nothing is narrated.
	Reporter types.Reporter
	// DryRun runs every check but mutates nothing.
	DryRun bool
}

// Engine performs link creation and removal inside the managed roots.
type Engine struct {
	fs       types.FS
	layout   *paths.Layout
	policy   *paths.Policy
	registry *collections.Registry
	reporter types.Reporter
	dryRun   bool
	logger   zerolog.Logger
}

// New creates an engine.
func New(opts Options) *Engine {
	reporter := opts.Reporter
	if reporter == nil {
		reporter = types.NopReporter{}
	}
	return &Engine{
		fs:       opts.FS,
		layout:   opts.Layout,
		policy:   opts.Layout.Policy(),
		registry: opts.Registry,
		reporter: reporter,
		dryRun:   opts.DryRun,
		logger:   logging.GetLogger("symlink"),
	}
}

// DryRun reports whether the engine mutates the filesystem.
func (e *Engine) DryRun() bool {
	return e.dryRun
}

// CreateLink links destination to source. An occupied destination, of any
// kind, is skipped and left alone.
func (e *Engine) CreateLink(source, destination, displayName string) (types.ItemResult, error) {
	item := types.ItemResult{DisplayName: displayName, Path: destination}

	dest, err := e.policy.ValidateManagedPath(destination)
	if err != nil {
		return failed(item, err), err
	}
	item.Path = dest

	if _, err := e.fs.Stat(source); err != nil {
		if filesystem.IsNotExist(err) {
			err = errors.Wrapf(err, errors.ErrSourceMissing, "source file does not exist: %s", source).
				WithDetail("source", source)
		} else {
			err = errors.Wrapf(err, errors.ErrSymlink, "cannot read source %s", source).
				WithDetail("source", source)
		}
		return failed(item, err), err
	}

	if _, err := e.fs.Lstat(dest); err == nil {
		e.logger.Trace().Str("path", dest).Msg("destination exists, skipping")
		item.Status = types.StatusSkipped
		item.Reason = types.ReasonAlreadyExists
		return item, nil
	} else if !filesystem.IsNotExist(err) {
		err = linkError(err, "cannot inspect destination", dest)
		return failed(item, err), err
	}

	if e.dryRun {
		e.logger.Info().Str("source", source).Str("destination", dest).Msg("Would create symlink")
		e.reporter.Info(fmt.Sprintf("Would link %s", displayName))
		item.Status = types.StatusDryRun
		return item, nil
	}

	if err := e.fs.MkdirAll(filepath.Dir(dest), dirPerm); err != nil {
		err = linkError(err, "cannot create parent directory for", dest)
		return failed(item, err), err
	}

	if err := e.fs.Symlink(source, dest); err != nil {
		if filesystem.IsExist(err) {
			e.logger.Debug().Str("path", dest).Msg("destination appeared before link, skipping")
			item.Status = types.StatusSkipped
			item.Reason = types.ReasonAlreadyExists
			return item, nil
		}
		err = linkError(err, "cannot create symlink", dest)
		return failed(item, err), err
	}

	e.logger.Debug().Str("source", source).Str("destination", dest).Msg("Created symlink")
	e.reporter.LinkCreated(displayName)
	item.Status = types.StatusCreated
	return item, nil
}

// CreateLinks processes mappings in order. Per-item failures are recorded
// and the batch continues; a path escape aborts it and a batch of exactly
// one mapping returns that mapping's error. When an error is returned the
// result holds what was processed up to the failure.
func (e *Engine) CreateLinks(mappings []types.Mapping) (*types.OperationResult, error) {
	result := &types.OperationResult{}
	if len(mappings) == 0 {
		return result, nil
	}
	result.Total = len(mappings)

	for _, m := range mappings {
		item, err := e.CreateLink(m.Source, m.Destination, m.DisplayName)
		result.Add(item)
		if err == nil {
			continue
		}

		e.logger.Error().
			Err(err).
			Str("source", m.Source).
			Str("destination", m.Destination).
			Msg("Failed to create symlink")

		if errors.IsErrorCode(err, errors.ErrPathEscape) || len(mappings) == 1 {
			return result, err
		}
		e.reporter.Error(fmt.Sprintf("%s: %v", m.DisplayName, err))
	}

	e.logger.Info().
		Int("total", result.Total).
		Int("created", result.Created).
		Int("skipped", result.Skipped).
		Int("errors", result.Errors).
		Int("dryRun", result.DryRun).
		Msg("Link batch complete")

	if result.Created > 0 {
		e.reporter.Success(fmt.Sprintf("Created %d symlinks", result.Created))
	}
	if result.DryRun > 0 {
		e.reporter.Info(fmt.Sprintf("Would create %d symlinks", result.DryRun))
	}

	return result, nil
}

func failed(item types.ItemResult, err error) types.ItemResult {
	item.Status = types.StatusError
	item.Reason = err.Error()
	return item
}

// linkError maps an OS failure at path to a SYMLINK error. Permission
// failures get a fixed message so callers can tell them apart in output.
func linkError(err error, action, path string) error {
	if filesystem.IsPermission(err) {
		return errors.Wrapf(err, errors.ErrSymlink, "permission denied: %s %s", action, path).
			WithDetail("path", path).
			WithDetail("reason", "permission denied")
	}
	return errors.Wrapf(err, errors.ErrSymlink, "%s %s", action, path).
		WithDetail("path", path)
}
