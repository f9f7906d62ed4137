package symlink

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/types"
)

// Link describes an installed symlink.
type Link struct {
	Path        string `json:"path"`
	DisplayName string `json:"displayName"`
	Target      string `json:"target"`
	Broken      bool   `json:"broken"`
}

// InstalledLinks lists the symlinks a collection owns, using the same
// matching as RemoveComponentSymlinks. Entries that are not symlinks are
// left out.
func (e *Engine) InstalledLinks(key string) ([]Link, error) {
	c, err := e.registry.Get(key)
	if err != nil {
		return nil, err
	}
	targets, err := e.componentTargets(c)
	if err != nil {
		return nil, err
	}
	return e.describe(targets), nil
}

// FindBrokenSymlinks lists dangling symlinks in the managed roots. The
// agents and commands directories are scanned one level deep, tools and
// workflows recursively.
func (e *Engine) FindBrokenSymlinks() ([]Link, error) {
	var targets []target

	for _, dir := range []string{e.layout.AgentsDir(), e.layout.CommandsDir()} {
		flat, err := e.matchDir(dir, "*", nil)
		if err != nil {
			return nil, err
		}
		targets = append(targets, flat...)
	}
	for _, dir := range []string{e.layout.ToolsDir(), e.layout.WorkflowsDir()} {
		tree, err := e.walkLinks(dir, filepath.Base(dir))
		if err != nil {
			return nil, err
		}
		targets = append(targets, tree...)
	}

	var broken []Link
	for _, l := range e.describe(targets) {
		if l.Broken {
			broken = append(broken, l)
		}
	}
	return broken, nil
}

// CleanupBrokenSymlinks removes every dangling symlink FindBrokenSymlinks
// reports and returns how many were removed, or would be in dry-run mode.
// Valid links are never touched. Failures are logged and skipped.
func (e *Engine) CleanupBrokenSymlinks() int {
	broken, err := e.FindBrokenSymlinks()
	if err != nil {
		e.logger.Warn().Err(err).Msg("Failed to scan for broken symlinks")
		return 0
	}

	count := 0
	for _, l := range broken {
		item, err := e.RemoveLink(l.Path, l.DisplayName)
		if err != nil {
			e.logger.Warn().Err(err).Str("path", l.Path).Msg("Failed to remove broken symlink")
			continue
		}
		if item.Status == types.StatusRemoved || item.Status == types.StatusDryRun {
			count++
		}
	}

	if count > 0 {
		e.logger.Info().Int("count", count).Msg("Cleaned up broken symlinks")
		if e.dryRun {
			e.reporter.Info(pluralize(count, "broken symlink") + " would be removed")
		} else {
			e.reporter.Info("Removed " + pluralize(count, "broken symlink"))
		}
	}
	return count
}

func (e *Engine) describe(targets []target) []Link {
	links := make([]Link, 0, len(targets))
	for _, t := range targets {
		info, err := e.fs.Lstat(t.path)
		if err != nil || info.Mode()&os.ModeSymlink == 0 {
			continue
		}
		dest, _ := e.fs.Readlink(t.path)
		links = append(links, Link{
			Path:        t.path,
			DisplayName: t.display,
			Target:      dest,
			Broken:      e.isBroken(t.path),
		})
	}
	return links
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
