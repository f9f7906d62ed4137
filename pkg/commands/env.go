package commands

import (
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/collections"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/errors"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/filesystem"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/janitor"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/mapping"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/paths"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/reposync"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/symlink"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/types"
)

// AllKeyword selects every registered collection.
const AllKeyword = "all"

// Env bundles the collaborators every operation needs.
type Env struct {
	// Registry is the immutable collection set (required)
	Registry *collections.Registry

	// Layout resolves the managed root and the sources directory (required)
	Layout *paths.Layout

	// FS defaults to the OS filesystem
	FS types.FS

	// Reporter defaults to a reporter that drops everything
	Reporter types.Reporter

	// Prompter answers confirmations; nil behaves like --yes
	Prompter types.Prompter

	// Syncer brings remote collections up to date; nil skips syncing
	Syncer reposync.Syncer

	// DryRun reports what would change without touching the filesystem
	DryRun bool
}

func (e Env) withDefaults() (Env, error) {
	if e.Registry == nil {
		return e, errors.New(errors.ErrInternal, "no collection registry configured")
	}
	if e.Layout == nil {
		return e, errors.New(errors.ErrInternal, "no managed layout configured")
	}
	if e.FS == nil {
		e.FS = filesystem.NewOS()
	}
	if e.Reporter == nil {
		e.Reporter = types.NopReporter{}
	}
	return e, nil
}

func (e Env) engine() *symlink.Engine {
	return symlink.New(symlink.Options{
		FS:       e.FS,
		Layout:   e.Layout,
		Registry: e.Registry,
		Reporter: e.Reporter,
		DryRun:   e.DryRun,
	})
}

func (e Env) builder() *mapping.Builder {
	return mapping.NewBuilder(e.Registry, e.Layout, e.FS)
}

func (e Env) janitor() *janitor.Janitor {
	return janitor.New(e.FS, e.Layout, e.DryRun)
}

func (e Env) confirm(question string, def bool) (bool, error) {
	if e.Prompter == nil {
		return true, nil
	}
	return e.Prompter.Confirm(question, def)
}

// sourceRoot returns the resolved source directory of a collection.
func (e Env) sourceRoot(c collections.Collection) string {
	return e.Layout.SourcePath(c.SourceSubPath)
}

// isDir reports whether path is an existing directory.
func (e Env) isDir(path string) bool {
	info, err := e.FS.Stat(path)
	return err == nil && info.IsDir()
}

// selectKeys expands a component list. An empty list or one containing
// "all" selects every collection. Unknown keys are kept so the caller can
// record them as per-collection failures; duplicates are dropped.
func selectKeys(reg *collections.Registry, requested []string) (keys []string, explicit bool) {
	if len(requested) == 0 {
		return reg.Keys(), false
	}
	seen := make(map[string]bool, len(requested))
	for _, k := range requested {
		if k == AllKeyword {
			return reg.Keys(), true
		}
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	return keys, true
}
