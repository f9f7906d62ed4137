package symlink

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/collections"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/errors"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/filesystem"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/types"
)

// RemoveLink unlinks the symlink at path, broken or not. Regular files and
// directories are never removed.
func (e *Engine) RemoveLink(path, displayName string) (types.ItemResult, error) {
	item := types.ItemResult{DisplayName: displayName, Path: path}

	clean, err := e.policy.ValidateManagedPath(path)
	if err != nil {
		return failed(item, err), err
	}
	item.Path = clean

	info, err := e.fs.Lstat(clean)
	if err != nil {
		if filesystem.IsNotExist(err) {
			item.Status = types.StatusNotFound
			return item, nil
		}
		err = linkError(err, "cannot inspect", clean)
		return failed(item, err), err
	}

	switch {
	case info.Mode()&os.ModeSymlink == 0 && info.IsDir():
		e.logger.Debug().Str("path", clean).Msg("not removing directory")
		e.reporter.LinkSkipped(displayName, types.ReasonIsDirectory)
		item.Status = types.StatusSkipped
		item.Reason = types.ReasonIsDirectory
		return item, nil
	case info.Mode()&os.ModeSymlink == 0:
		e.logger.Warn().Str("path", clean).Msg("not removing regular file")
		e.reporter.LinkSkipped(displayName, types.ReasonNotSymlink)
		item.Status = types.StatusSkipped
		item.Reason = types.ReasonNotSymlink
		return item, nil
	}

	broken := e.isBroken(clean)
	if broken {
		item.Reason = types.ReasonBroken
	}

	if e.dryRun {
		e.logger.Info().Str("path", clean).Bool("broken", broken).Msg("Would remove symlink")
		e.reporter.Info(fmt.Sprintf("Would remove %s", displayName))
		item.Status = types.StatusDryRun
		return item, nil
	}

	if err := e.fs.Remove(clean); err != nil {
		if filesystem.IsNotExist(err) {
			item.Status = types.StatusNotFound
			return item, nil
		}
		err = linkError(err, "cannot remove symlink", clean)
		return failed(item, err), err
	}

	e.logger.Debug().Str("path", clean).Bool("broken", broken).Msg("Removed symlink")
	if broken {
		e.reporter.LinkRemoved(displayName + " (" + types.ReasonBroken + ")")
	} else {
		e.reporter.LinkRemoved(displayName)
	}
	item.Status = types.StatusRemoved
	return item, nil
}

// RemoveByPattern removes the entries matching glob. Only the last path
// element may contain wildcards. A missing directory or no match yields an
// empty result.
func (e *Engine) RemoveByPattern(glob, description string) (*types.RemovalResult, error) {
	targets, err := e.matchDir(filepath.Dir(glob), filepath.Base(glob), nil)
	if err != nil {
		return &types.RemovalResult{}, err
	}
	result, err := e.removeTargets(targets)
	e.summarize(result, description)
	return result, err
}

// RemoveTree removes every symlink below dir, keeping the directory
// structure and any regular files.
func (e *Engine) RemoveTree(dir, description string) (*types.RemovalResult, error) {
	targets, err := e.walkLinks(dir, filepath.Base(dir))
	if err != nil {
		return &types.RemovalResult{}, err
	}
	result, err := e.removeTargets(targets)
	e.summarize(result, description)
	return result, err
}

// RemoveComponentSymlinks removes the links installed for one collection.
func (e *Engine) RemoveComponentSymlinks(key string) (*types.RemovalResult, error) {
	c, err := e.registry.Get(key)
	if err != nil {
		return &types.RemovalResult{}, err
	}

	targets, err := e.componentTargets(c)
	if err != nil {
		return &types.RemovalResult{}, err
	}

	result, err := e.removeTargets(targets)
	e.summarize(result, c.Name)
	return result, err
}

func (e *Engine) removeTargets(targets []target) (*types.RemovalResult, error) {
	result := &types.RemovalResult{}
	for _, t := range targets {
		item, err := e.RemoveLink(t.path, t.display)
		result.Add(item)
		if err == nil {
			continue
		}
		e.logger.Error().Err(err).Str("path", t.path).Msg("Failed to remove symlink")
		if errors.IsErrorCode(err, errors.ErrPathEscape) {
			return result, err
		}
		e.reporter.Error(fmt.Sprintf("%s: %v", t.display, err))
	}
	return result, nil
}

func (e *Engine) summarize(result *types.RemovalResult, description string) {
	if result == nil {
		return
	}
	e.logger.Info().
		Str("target", description).
		Int("removed", result.Removed).
		Int("skipped", result.Skipped).
		Int("errors", result.Errors).
		Int("dryRun", result.DryRun).
		Msg("Removal complete")

	if result.Removed > 0 {
		e.reporter.Success(fmt.Sprintf("Removed %d symlinks (%s)", result.Removed, description))
	}
	if result.DryRun > 0 {
		e.reporter.Info(fmt.Sprintf("Would remove %d symlinks (%s)", result.DryRun, description))
	}
}

// target is a candidate for removal
type target struct {
	path    string
	display string
}

// componentTargets lists what a collection owns in the managed layout.
func (e *Engine) componentTargets(c collections.Collection) ([]target, error) {
	switch c.Strategy {
	case collections.StrategyPrefixed:
		root := e.destinationRoot(c)
		if c.Prefix == "" {
			return e.matchDir(root, "*", e.pointsInto(e.layout.SourcePath(c.SourceSubPath)))
		}
		return e.matchDir(root, c.Prefix+"*", nil)

	case collections.StrategyCategoryFlatten:
		others := e.registry.OtherPrefixes(c.Key)
		return e.matchDir(e.layout.AgentsDir(), "*-*", func(name, _ string) bool {
			for _, p := range others {
				if strings.HasPrefix(name, p) {
					return false
				}
			}
			return true
		})

	case collections.StrategyToolWorkflowSplit:
		var all []target
		for _, dir := range []string{e.layout.ToolsDir(), e.layout.WorkflowsDir()} {
			links, err := e.walkLinks(dir, filepath.Base(dir))
			if err != nil {
				return nil, err
			}
			all = append(all, links...)
		}
		if c.Prefix != "" {
			roots, err := e.matchDir(e.layout.CommandsDir(), c.Prefix+"*", nil)
			if err != nil {
				return nil, err
			}
			all = append(all, roots...)
		}
		return all, nil

	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "collection %s has unsupported strategy %s", c.Key, c.Strategy)
	}
}

func (e *Engine) destinationRoot(c collections.Collection) string {
	if c.Destination == collections.DestinationCommands {
		return e.layout.CommandsDir()
	}
	return e.layout.AgentsDir()
}

// keepFunc decides whether a matched entry is included
type keepFunc func(name, path string) bool

// matchDir lists the entries of dir whose name matches pattern. Hidden
// entries never match.
func (e *Engine) matchDir(dir, pattern string, keep keepFunc) ([]target, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid pattern %q", pattern)
	}

	entries, err := e.fs.ReadDir(dir)
	if err != nil {
		if filesystem.IsNotExist(err) {
			return nil, nil
		}
		return nil, linkError(err, "cannot read", dir)
	}

	var targets []target
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if ok, _ := filepath.Match(pattern, name); !ok {
			continue
		}
		p := filepath.Join(dir, name)
		if keep != nil && !keep(name, p) {
			continue
		}
		targets = append(targets, target{path: p, display: name})
	}
	return targets, nil
}

// walkLinks lists every symlink below dir. Display names are relative to
// dir's parent, e.g. tools/git/status.md. Symlinked directories are
// treated as links and not followed.
func (e *Engine) walkLinks(dir, label string) ([]target, error) {
	entries, err := e.fs.ReadDir(dir)
	if err != nil {
		if filesystem.IsNotExist(err) {
			return nil, nil
		}
		return nil, linkError(err, "cannot read", dir)
	}

	var targets []target
	for _, entry := range entries {
		p := filepath.Join(dir, entry.Name())
		display := label + "/" + entry.Name()
		switch {
		case entry.Type()&os.ModeSymlink != 0:
			targets = append(targets, target{path: p, display: display})
		case entry.IsDir():
			nested, err := e.walkLinks(p, display)
			if err != nil {
				return nil, err
			}
			targets = append(targets, nested...)
		}
	}
	return targets, nil
}

// pointsInto keeps symlinks whose target is inside root.
func (e *Engine) pointsInto(root string) keepFunc {
	root = filepath.Clean(root)
	return func(_, p string) bool {
		dest, err := e.fs.Readlink(p)
		if err != nil {
			return false
		}
		if !filepath.IsAbs(dest) {
			dest = filepath.Join(filepath.Dir(p), dest)
		}
		dest = filepath.Clean(dest)
		return dest == root || strings.HasPrefix(dest, root+string(filepath.Separator))
	}
}

func (e *Engine) isBroken(p string) bool {
	_, err := e.fs.Stat(p)
	return err != nil
}
