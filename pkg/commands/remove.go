package commands

import (
	"fmt"
	"strings"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/errors"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/logging"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/types"
)

// RemoveOptions contains options for the remove command
type RemoveOptions struct {
	// Components lists collection keys to remove; empty or "all" removes
	// every collection
	Components []string

	// Yes skips the confirmation
	Yes bool
}

// CollectionRemoval is the outcome of removing one collection's links.
type CollectionRemoval struct {
	Key    string               `json:"key"`
	Name   string               `json:"name,omitempty"`
	Result *types.RemovalResult `json:"result,omitempty"`
	Error  string               `json:"error,omitempty"`
}

// RemoveResult aggregates a remove run.
type RemoveResult struct {
	DryRun      bool                `json:"dryRun"`
	Cancelled   bool                `json:"cancelled,omitempty"`
	Collections []CollectionRemoval `json:"collections"`
	// Totals merges every collection's result.
	Totals        *types.RemovalResult `json:"totals"`
	BrokenRemoved int                  `json:"brokenRemoved"`
	PrunedDirs    []string             `json:"prunedDirs,omitempty"`
}

// Remove deletes the symlinks of the selected collections, then removes
// dangling links and prunes empty managed directories. Regular files are
// never touched. Failures are recorded per collection and joined.
func Remove(env Env, opts RemoveOptions) (*RemoveResult, error) {
	logger := logging.GetLogger("commands.remove")
	logger.Debug().
		Strs("components", opts.Components).
		Bool("yes", opts.Yes).
		Bool(logging.FieldDryRun, env.DryRun).
		Msg("Starting remove command")
	defer logging.LogOperationStart(logger, "remove")()

	env, err := env.withDefaults()
	if err != nil {
		return nil, err
	}

	keys, _ := selectKeys(env.Registry, opts.Components)
	result := &RemoveResult{DryRun: env.DryRun, Totals: &types.RemovalResult{}}

	if !opts.Yes && !env.DryRun {
		ok, err := env.confirm(fmt.Sprintf("Remove symlinks for %s?", strings.Join(keys, ", ")), false)
		if err != nil {
			return result, errors.Wrap(err, errors.ErrInvalidInput, "confirmation failed")
		}
		if !ok {
			logger.Info().Msg("Removal cancelled by user")
			result.Cancelled = true
			env.Reporter.Info("Nothing removed")
			return result, nil
		}
	}

	engine := env.engine()
	var errs []error
	for _, key := range keys {
		cr := CollectionRemoval{Key: key}
		c, err := env.Registry.Get(key)
		if err == nil {
			cr.Name = c.Name
			env.Reporter.Info(fmt.Sprintf("Removing %s", c.Name))
			cr.Result, err = engine.RemoveComponentSymlinks(key)
		}
		if err != nil {
			logger.Error().Err(err).Str(logging.FieldCollection, key).Msg("Removal failed")
			env.Reporter.Error(err.Error())
			cr.Error = err.Error()
			errs = append(errs, err)
		}
		result.Totals.Merge(cr.Result)
		result.Collections = append(result.Collections, cr)
	}

	result.BrokenRemoved = engine.CleanupBrokenSymlinks()
	result.PrunedDirs = env.janitor().CleanupEmptyDirectories()

	logger.Info().
		Int("removed", result.Totals.Removed).
		Int("skipped", result.Totals.Skipped).
		Int("errors", result.Totals.Errors).
		Int("broken", result.BrokenRemoved).
		Int("pruned", len(result.PrunedDirs)).
		Msg("Remove finished")

	return result, errors.Join(errs...)
}
