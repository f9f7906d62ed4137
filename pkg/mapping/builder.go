package mapping

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/collections"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/errors"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/filesystem"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/logging"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/paths"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/types"
	"github.com/rs/zerolog"
)

// Source sub-trees read by the strategies
const (
	CategoriesDir = "categories"
	ToolsDir      = "tools"
	WorkflowsDir  = "workflows"
)

var categoryOrdinal = regexp.MustCompile(`^[0-9]+-`)

// Builder enumerates source files and computes mappings.
type Builder struct {
	registry *collections.Registry
	layout   *paths.Layout
	policy   *paths.Policy
	fs       types.FS
	logger   zerolog.Logger
}

// NewBuilder creates a Builder over an explicit registry and layout.
func NewBuilder(registry *collections.Registry, layout *paths.Layout, fs types.FS) *Builder {
	return &Builder{
		registry: registry,
		layout:   layout,
		policy:   layout.Policy(),
		fs:       fs,
		logger:   logging.GetLogger("mapping"),
	}
}

// SourceRoot returns the configured source directory of a collection.
func (b *Builder) SourceRoot(key string) (string, error) {
	c, err := b.registry.Get(key)
	if err != nil {
		return "", err
	}
	return b.layout.SourcePath(c.SourceSubPath), nil
}

// BuildCollection builds mappings from the collection's configured source.
func (b *Builder) BuildCollection(key string) ([]types.Mapping, error) {
	root, err := b.SourceRoot(key)
	if err != nil {
		return nil, err
	}
	return b.Build(key, root)
}

// Build computes the mappings for collection key reading from sourceRoot.
// An existing source root with nothing eligible yields an empty list.
func (b *Builder) Build(key, sourceRoot string) ([]types.Mapping, error) {
	c, err := b.registry.Get(key)
	if err != nil {
		return nil, err
	}

	sourceRoot, err = filepath.Abs(paths.ExpandHome(sourceRoot))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve source root for %s", key)
	}

	info, err := b.fs.Stat(sourceRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceMissing, "source directory for %s does not exist: %s", key, sourceRoot).
			WithDetail("collection", key).
			WithDetail("path", sourceRoot)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrSourceMissing, "source for %s is not a directory: %s", key, sourceRoot).
			WithDetail("collection", key).
			WithDetail("path", sourceRoot)
	}

	var mappings []types.Mapping
	switch c.Strategy {
	case collections.StrategyPrefixed:
		mappings, err = b.buildPrefixed(c, sourceRoot)
	case collections.StrategyCategoryFlatten:
		mappings, err = b.buildCategoryFlatten(sourceRoot)
	case collections.StrategyToolWorkflowSplit:
		mappings, err = b.buildToolWorkflowSplit(c, sourceRoot)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "collection %s has unsupported strategy %s", key, c.Strategy)
	}
	if err != nil {
		return nil, err
	}

	mappings = b.dedupe(mappings)
	if err := b.validate(mappings); err != nil {
		return nil, err
	}

	b.logger.Debug().
		Str(logging.FieldCollection, key).
		Str("strategy", c.Strategy.String()).
		Str("source", sourceRoot).
		Int("mappings", len(mappings)).
		Msg("built mappings")

	if mappings == nil {
		mappings = []types.Mapping{}
	}
	return mappings, nil
}

// DestinationRoot returns the managed directory a collection links into.
func (b *Builder) DestinationRoot(c collections.Collection) string {
	if c.Destination == collections.DestinationCommands {
		return b.layout.CommandsDir()
	}
	return b.layout.AgentsDir()
}

func (b *Builder) buildPrefixed(c collections.Collection, sourceRoot string) ([]types.Mapping, error) {
	names, err := b.listFiles(sourceRoot)
	if err != nil {
		return nil, err
	}

	destRoot := b.DestinationRoot(c)
	mappings := make([]types.Mapping, 0, len(names))
	for _, name := range names {
		display := c.Prefix + name
		mappings = append(mappings, types.Mapping{
			Source:      filepath.Join(sourceRoot, name),
			Destination: filepath.Join(destRoot, display),
			DisplayName: display,
		})
	}
	return mappings, nil
}

func (b *Builder) buildCategoryFlatten(sourceRoot string) ([]types.Mapping, error) {
	categoriesRoot := filepath.Join(sourceRoot, CategoriesDir)
	rels, err := b.walkFiles(categoriesRoot)
	if err != nil {
		return nil, err
	}

	var mappings []types.Mapping
	for _, rel := range rels {
		display := CategoryDisplayName(rel)
		mappings = append(mappings, types.Mapping{
			Source:      filepath.Join(categoriesRoot, filepath.FromSlash(rel)),
			Destination: filepath.Join(b.layout.AgentsDir(), display),
			DisplayName: display,
		})
	}
	return mappings, nil
}

// CategoryDisplayName names a file found at rel (slash separated, relative
// to categories/). The first directory is the category with its numeric
// ordinal removed; files directly under categories/ keep their name.
func CategoryDisplayName(rel string) string {
	first, rest, nested := strings.Cut(rel, "/")
	if !nested {
		return rel
	}
	file := path.Base(rest)
	category := categoryOrdinal.ReplaceAllString(first, "")
	if category == "" {
		return file
	}
	return category + "-" + file
}

func (b *Builder) buildToolWorkflowSplit(c collections.Collection, sourceRoot string) ([]types.Mapping, error) {
	var mappings []types.Mapping

	subtrees := []struct {
		name    string
		destDir string
	}{
		{ToolsDir, b.layout.ToolsDir()},
		{WorkflowsDir, b.layout.WorkflowsDir()},
	}

	for _, st := range subtrees {
		srcDir := filepath.Join(sourceRoot, st.name)
		rels, err := b.walkFiles(srcDir)
		if err != nil {
			return nil, err
		}
		for _, rel := range rels {
			mappings = append(mappings, types.Mapping{
				Source:      filepath.Join(srcDir, filepath.FromSlash(rel)),
				Destination: filepath.Join(st.destDir, filepath.FromSlash(rel)),
				DisplayName: st.name + "/" + rel,
			})
		}
	}

	names, err := b.listFiles(sourceRoot)
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		display := c.Prefix + name
		mappings = append(mappings, types.Mapping{
			Source:      filepath.Join(sourceRoot, name),
			Destination: filepath.Join(b.layout.CommandsDir(), display),
			DisplayName: display,
		})
	}

	return mappings, nil
}

// listFiles returns the eligible regular files directly in dir, in
// directory order. A missing dir yields nothing.
func (b *Builder) listFiles(dir string) ([]string, error) {
	entries, err := b.fs.ReadDir(dir)
	if err != nil {
		if filesystem.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrSourceMissing, "cannot read %s", dir)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !EligibleName(e.Name()) {
			continue
		}
		if !b.isRegular(filepath.Join(dir, e.Name())) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// walkFiles returns slash separated paths, relative to root, of every
// eligible regular file below root. Hidden directories and examples
// directories are not descended into. A missing root yields nothing.
func (b *Builder) walkFiles(root string) ([]string, error) {
	var rels []string

	var walk func(dir, rel string) error
	walk = func(dir, rel string) error {
		entries, err := b.fs.ReadDir(dir)
		if err != nil {
			if filesystem.IsNotExist(err) && rel == "" {
				return nil
			}
			return errors.Wrapf(err, errors.ErrSourceMissing, "cannot read %s", dir)
		}

		for _, e := range entries {
			name := e.Name()
			childRel := name
			if rel != "" {
				childRel = rel + "/" + name
			}

			if e.IsDir() {
				if paths.IsHiddenPath(name) || name == examplesSegment {
					continue
				}
				if err := walk(filepath.Join(dir, name), childRel); err != nil {
					return err
				}
				continue
			}

			if !EligiblePath(childRel) || !b.isRegular(filepath.Join(dir, name)) {
				continue
			}
			rels = append(rels, childRel)
		}
		return nil
	}

	if err := walk(root, ""); err != nil {
		return nil, err
	}
	return rels, nil
}

func (b *Builder) isRegular(p string) bool {
	info, err := b.fs.Stat(p)
	if err != nil {
		b.logger.Debug().Err(err).Str("path", p).Msg("skipping unreadable source entry")
		return false
	}
	return info.Mode().IsRegular()
}

// dedupe keeps the first mapping for each destination.
func (b *Builder) dedupe(mappings []types.Mapping) []types.Mapping {
	seen := make(map[string]string, len(mappings))
	out := mappings[:0]
	for _, m := range mappings {
		if prev, ok := seen[m.Destination]; ok {
			b.logger.Warn().
				Str("destination", m.Destination).
				Str("kept", prev).
				Str("dropped", m.Source).
				Msg("two sources map to the same destination")
			continue
		}
		seen[m.Destination] = m.Source
		out = append(out, m)
	}
	return out
}

func (b *Builder) validate(mappings []types.Mapping) error {
	for i, m := range mappings {
		dest, err := b.policy.ValidateManagedPath(m.Destination)
		if err != nil {
			return err
		}
		mappings[i].Destination = dest
	}
	return nil
}
