// Package janitor removes managed directories left empty after a removal
// pass. It never removes a directory with content and never fails: OS
// errors, such as another process writing concurrently, are logged and the
// pass moves on.
package janitor

import (
	"path/filepath"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/filesystem"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/logging"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/paths"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/types"
	"github.com/rs/zerolog"
)

// Janitor prunes empty directories under the commands root.
type Janitor struct {
	fs     types.FS
	layout *paths.Layout
	policy *paths.Policy
	dryRun bool
	logger zerolog.Logger
}

// New creates a janitor. In dry-run mode it reports what it would remove.
func New(fs types.FS, layout *paths.Layout, dryRun bool) *Janitor {
	return &Janitor{
		fs:     fs,
		layout: layout,
		policy: layout.Policy(),
		dryRun: dryRun,
		logger: logging.GetLogger("janitor"),
	}
}

// CleanupEmptyDirectories prunes empty nested directories under tools and
// workflows, then removes tools, workflows and the commands root when they
// are empty. It returns the removed directories in removal order.
func (j *Janitor) CleanupEmptyDirectories() []string {
	p := &pass{removed: make(map[string]bool)}

	for _, dir := range []string{j.layout.ToolsDir(), j.layout.WorkflowsDir()} {
		j.pruneChildren(p, dir)
	}
	for _, dir := range []string{j.layout.ToolsDir(), j.layout.WorkflowsDir(), j.layout.CommandsDir()} {
		j.removeIfEmpty(p, dir)
	}

	if len(p.order) > 0 {
		j.logger.Info().Int("count", len(p.order)).Bool(logging.FieldDryRun, j.dryRun).Msg("Removed empty directories")
	}
	return p.order
}

// pass tracks removals so a dry run can treat removed directories as gone
type pass struct {
	removed map[string]bool
	order   []string
}

func (p *pass) add(dir string) {
	p.removed[dir] = true
	p.order = append(p.order, dir)
}

// pruneChildren removes empty directories below dir, deepest first.
// Symlinked directories are not followed.
func (j *Janitor) pruneChildren(p *pass, dir string) {
	entries, err := j.fs.ReadDir(dir)
	if err != nil {
		if !filesystem.IsNotExist(err) {
			j.logger.Warn().Err(err).Str("dir", dir).Msg("Cannot read directory")
		}
		return
	}

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		child := filepath.Join(dir, e.Name())
		j.pruneChildren(p, child)
		j.removeIfEmpty(p, child)
	}
}

func (j *Janitor) removeIfEmpty(p *pass, dir string) {
	if _, err := j.policy.ValidateManagedPath(dir); err != nil {
		j.logger.Error().Err(err).Str("dir", dir).Msg("Refusing to touch unmanaged directory")
		return
	}

	info, err := j.fs.Lstat(dir)
	if err != nil {
		if !filesystem.IsNotExist(err) {
			j.logger.Warn().Err(err).Str("dir", dir).Msg("Cannot inspect directory")
		}
		return
	}
	if !info.IsDir() {
		return
	}

	entries, err := j.fs.ReadDir(dir)
	if err != nil {
		j.logger.Warn().Err(err).Str("dir", dir).Msg("Cannot read directory")
		return
	}
	for _, e := range entries {
		if !p.removed[filepath.Join(dir, e.Name())] {
			return
		}
	}

	if j.dryRun {
		j.logger.Info().Str("dir", dir).Msg("Would remove empty directory")
		p.add(dir)
		return
	}

	if err := j.fs.Remove(dir); err != nil {
		j.logger.Warn().Err(err).Str("dir", dir).Msg("Failed to remove empty directory")
		return
	}
	j.logger.Info().Str("dir", dir).Msg("Removed empty directory")
	p.add(dir)
}
