package commands

import (
	"context"
	"fmt"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/collections"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/errors"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/logging"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/reposync"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/types"
	"github.com/rs/zerolog"
)

// InstallOptions contains options for the install command
type InstallOptions struct {
	// Components lists collection keys to install. Empty means every
	// collection, each confirmed through the prompter unless Yes is set.
	Components []string

	// Yes answers every confirmation with yes
	Yes bool

	// NoSync skips repository sync and links whatever is on disk
	NoSync bool
}

// CollectionInstall is the outcome of installing one collection.
type CollectionInstall struct {
	Key      string                 `json:"key"`
	Name     string                 `json:"name,omitempty"`
	Sync     reposync.SyncAction    `json:"sync,omitempty"`
	Declined bool                   `json:"declined,omitempty"`
	Result   *types.OperationResult `json:"result,omitempty"`
	Error    string                 `json:"error,omitempty"`

	err error
}

// Err returns the failure recorded for the collection, if any.
func (c CollectionInstall) Err() error {
	return c.err
}

// InstallResult aggregates an install run.
type InstallResult struct {
	DryRun      bool                `json:"dryRun"`
	Collections []CollectionInstall `json:"collections"`
	Created     int                 `json:"created"`
	Skipped     int                 `json:"skipped"`
	Errors      int                 `json:"errors"`
	Pending     int                 `json:"pending"`
	// Failed counts collections that could not be processed at all.
	Failed int `json:"failed"`
}

// Totals returns the link counters as one operation result without items.
func (r *InstallResult) Totals() *types.OperationResult {
	return &types.OperationResult{
		Total:   r.Created + r.Skipped + r.Errors + r.Pending,
		Created: r.Created,
		Skipped: r.Skipped,
		Errors:  r.Errors,
		DryRun:  r.Pending,
	}
}

func (r *InstallResult) record(ci CollectionInstall) {
	if ci.err != nil {
		ci.Error = ci.err.Error()
		r.Failed++
	}
	if ci.Result != nil {
		r.Created += ci.Result.Created
		r.Skipped += ci.Result.Skipped
		r.Errors += ci.Result.Errors
		r.Pending += ci.Result.DryRun
	}
	r.Collections = append(r.Collections, ci)
}

// Install syncs and links the selected collections. A collection that
// fails (unknown key, sync failure, missing source, link error) is
// recorded and the next one runs; the joined failures are returned with
// the full result.
func Install(ctx context.Context, env Env, opts InstallOptions) (*InstallResult, error) {
	logger := logging.GetLogger("commands.install")
	logger.Debug().
		Strs("components", opts.Components).
		Bool("yes", opts.Yes).
		Bool("noSync", opts.NoSync).
		Bool(logging.FieldDryRun, env.DryRun).
		Msg("Starting install command")
	defer logging.LogOperationStart(logger, "install")()

	env, err := env.withDefaults()
	if err != nil {
		return nil, err
	}

	keys, explicit := selectKeys(env.Registry, opts.Components)
	result := &InstallResult{DryRun: env.DryRun, Collections: make([]CollectionInstall, 0, len(keys))}

	var errs []error
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		c, err := env.Registry.Get(key)
		if err != nil {
			logger.Warn().Str(logging.FieldCollection, key).Msg("Unknown collection")
			env.Reporter.Error(err.Error())
			result.record(CollectionInstall{Key: key, err: err})
			errs = append(errs, err)
			continue
		}

		if !explicit && !opts.Yes {
			ok, err := env.confirm(fmt.Sprintf("Install %s?", c.Name), true)
			if err != nil {
				return result, errors.Wrap(err, errors.ErrInvalidInput, "confirmation failed")
			}
			if !ok {
				logger.Info().Str(logging.FieldCollection, key).Msg("Declined by user")
				result.record(CollectionInstall{Key: key, Name: c.Name, Declined: true})
				continue
			}
		}

		ci := installCollection(ctx, env, logger, c, opts)
		result.record(ci)
		if ci.err != nil {
			errs = append(errs, ci.err)
		}
	}

	logger.Info().
		Int("created", result.Created).
		Int("skipped", result.Skipped).
		Int("errors", result.Errors).
		Int("failed", result.Failed).
		Msg("Install finished")

	return result, errors.Join(errs...)
}

// Setup installs a single collection without asking.
func Setup(ctx context.Context, env Env, key string) (*InstallResult, error) {
	if key == "" {
		return nil, errors.New(errors.ErrInvalidInput, "setup needs a collection key")
	}
	return Install(ctx, env, InstallOptions{Components: []string{key}, Yes: true})
}

func installCollection(ctx context.Context, env Env, logger zerolog.Logger, c collections.Collection, opts InstallOptions) CollectionInstall {
	ci := CollectionInstall{Key: c.Key, Name: c.Name}
	source := env.sourceRoot(c)
	logger = logging.ForCollection(logger, c.Key).With().Bool(logging.FieldDryRun, env.DryRun).Logger()

	if c.IsRemote() && !opts.NoSync && env.Syncer != nil {
		env.Reporter.Info(fmt.Sprintf("Syncing %s", c.Name))
		action, err := env.Syncer.Sync(ctx, c.Repository, source)
		if err != nil {
			logger.Error().Err(err).Msg("Sync failed")
			env.Reporter.Error(fmt.Sprintf("%s: %v", c.Name, err))
			ci.err = err
			return ci
		}
		ci.Sync = action
		logger.Debug().Str("action", string(action)).Msg("Synced")

		// A dry-run clone leaves nothing on disk to map.
		if action == reposync.ActionDryRun && !env.isDir(source) {
			env.Reporter.Info(fmt.Sprintf("Would clone %s into %s", c.Repository, source))
			ci.Result = &types.OperationResult{}
			return ci
		}
	}

	mappings, err := env.builder().BuildCollection(c.Key)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to build mappings")
		env.Reporter.Error(fmt.Sprintf("%s: %v", c.Name, err))
		ci.err = err
		return ci
	}

	env.Reporter.Info(fmt.Sprintf("Installing %s (%d files)", c.Name, len(mappings)))
	res, err := env.engine().CreateLinks(mappings)
	ci.Result = res
	if err != nil {
		logger.Error().Err(err).Msg("Linking failed")
		env.Reporter.Error(fmt.Sprintf("%s: %v", c.Name, err))
		ci.err = err
	}
	return ci
}
