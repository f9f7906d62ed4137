package commands

import (
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/collections"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/errors"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/logging"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/symlink"
)

// StatusOptions contains options for the status command
type StatusOptions struct {
	// Components limits the report; empty means every collection
	Components []string

	// Links includes each installed link in the result
	Links bool
}

// CollectionStatus is the state of one collection, derived from disk.
type CollectionStatus struct {
	Key           string `json:"key"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Strategy      string `json:"strategy"`
	Destination   string `json:"destination"`
	Source        string `json:"source"`
	SourcePresent bool   `json:"sourcePresent"`
	Remote        bool   `json:"remote"`
	// Available is how many source files would be linked.
	Available     int            `json:"available"`
	ExpectedCount int            `json:"expectedCount,omitempty"`
	Installed     int            `json:"installed"`
	Broken        int            `json:"broken"`
	Links         []symlink.Link `json:"links,omitempty"`
}

// StatusResult is the whole report.
type StatusResult struct {
	Root        string             `json:"root"`
	SourcesDir  string             `json:"sourcesDir"`
	Collections []CollectionStatus `json:"collections"`
	// Broken lists every dangling link under the managed roots.
	Broken []symlink.Link `json:"broken"`
}

// Status scans the managed roots and the sources directory. Nothing is
// persisted between runs, so this is always the current state.
func Status(env Env, opts StatusOptions) (*StatusResult, error) {
	logger := logging.GetLogger("commands.status")
	logger.Debug().Strs("components", opts.Components).Msg("Starting status command")

	env, err := env.withDefaults()
	if err != nil {
		return nil, err
	}

	engine := env.engine()
	builder := env.builder()
	keys, _ := selectKeys(env.Registry, opts.Components)

	result := &StatusResult{
		Root:        env.Layout.Root(),
		SourcesDir:  env.Layout.SourcesDir(),
		Collections: make([]CollectionStatus, 0, len(keys)),
	}

	var errs []error
	for _, key := range keys {
		c, err := env.Registry.Get(key)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		cs := collectionStatus(env, c)
		if cs.SourcePresent {
			if mappings, err := builder.BuildCollection(key); err == nil {
				cs.Available = len(mappings)
			} else {
				logger.Warn().Err(err).Str(logging.FieldCollection, key).Msg("Failed to scan source")
			}
		}

		links, err := engine.InstalledLinks(key)
		if err != nil {
			logger.Warn().Err(err).Str(logging.FieldCollection, key).Msg("Failed to list installed links")
			errs = append(errs, err)
		}
		cs.Installed = len(links)
		for _, l := range links {
			if l.Broken {
				cs.Broken++
			}
		}
		if opts.Links {
			cs.Links = links
		}
		result.Collections = append(result.Collections, cs)
	}

	broken, err := engine.FindBrokenSymlinks()
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to scan for broken symlinks")
		errs = append(errs, err)
	}
	result.Broken = broken

	return result, errors.Join(errs...)
}

func collectionStatus(env Env, c collections.Collection) CollectionStatus {
	source := env.sourceRoot(c)
	return CollectionStatus{
		Key:           c.Key,
		Name:          c.Name,
		Description:   c.Description,
		Strategy:      c.Strategy.String(),
		Destination:   string(c.Destination),
		Source:        source,
		SourcePresent: env.isDir(source),
		Remote:        c.IsRemote(),
		ExpectedCount: c.ExpectedCount,
	}
}
