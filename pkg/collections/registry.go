package collections

import (
	"sort"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/config"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/errors"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/paths"
)

// Collection identifies one upstream agent or command set.
type Collection struct {
	Key           string
	Name          string
	Description   string
	ExpectedCount int
	// SourceSubPath is relative to the sources directory unless absolute.
	SourceSubPath string
	Prefix        string
	Destination   DestinationKind
	Strategy      Strategy
	// Repository is the git URL to clone; empty for local collections.
	Repository string
	Order      int
}

// IsRemote reports whether the collection is synced from a repository.
func (c Collection) IsRemote() bool {
	return c.Repository != ""
}

// Registry is an immutable, ordered set of collections.
type Registry struct {
	byKey map[string]Collection
	keys  []string
}

// NewRegistry builds a registry from fully specified collections. Order is
// by Order, then key.
func NewRegistry(defs ...Collection) (*Registry, error) {
	r := &Registry{byKey: make(map[string]Collection, len(defs))}
	for _, c := range defs {
		if err := validate(c); err != nil {
			return nil, err
		}
		if _, dup := r.byKey[c.Key]; dup {
			return nil, errors.Newf(errors.ErrInvalidInput, "duplicate collection key %q", c.Key)
		}
		r.byKey[c.Key] = c
		r.keys = append(r.keys, c.Key)
	}

	sort.SliceStable(r.keys, func(i, j int) bool {
		a, b := r.byKey[r.keys[i]], r.byKey[r.keys[j]]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.Key < b.Key
	})

	return r, nil
}

// FromConfig converts the configuration table into a registry, parsing
// strategy and destination tags.
func FromConfig(defs map[string]config.CollectionConfig) (*Registry, error) {
	list := make([]Collection, 0, len(defs))
	for key, def := range defs {
		strategy, err := ParseStrategy(def.Strategy)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "collection %s", key)
		}
		dest, err := ParseDestination(def.Destination)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "collection %s", key)
		}
		list = append(list, Collection{
			Key:           key,
			Name:          def.Name,
			Description:   def.Description,
			ExpectedCount: def.ExpectedCount,
			SourceSubPath: def.Source,
			Prefix:        def.Prefix,
			Destination:   dest,
			Strategy:      strategy,
			Repository:    def.Repository,
			Order:         def.Order,
		})
	}
	return NewRegistry(list...)
}

func validate(c Collection) error {
	if err := paths.ValidateKey(c.Key); err != nil {
		return err
	}
	if c.SourceSubPath == "" {
		return errors.Newf(errors.ErrInvalidInput, "collection %s has no source path", c.Key)
	}

	switch c.Strategy {
	case StrategyPrefixed:
		if _, err := ParseDestination(string(c.Destination)); err != nil {
			return errors.Wrapf(err, errors.ErrInvalidInput, "collection %s", c.Key)
		}
	case StrategyCategoryFlatten:
		if c.Destination != DestinationAgents {
			return errors.Newf(errors.ErrInvalidInput, "collection %s: category-flatten links into agents, not %q", c.Key, c.Destination)
		}
	case StrategyToolWorkflowSplit:
		if c.Destination != DestinationCommands {
			return errors.Newf(errors.ErrInvalidInput, "collection %s: tool-workflow-split links into commands, not %q", c.Key, c.Destination)
		}
	default:
		return errors.Newf(errors.ErrInvalidInput, "collection %s has no naming strategy", c.Key)
	}
	return nil
}

// Get returns the collection registered under key.
func (r *Registry) Get(key string) (Collection, error) {
	c, ok := r.byKey[key]
	if !ok {
		return Collection{}, errors.Newf(errors.ErrUnknownCollection, "unknown collection %q", key).
			WithDetail("key", key).
			WithDetail("known", r.Keys())
	}
	return c, nil
}

// Has reports whether key is registered.
func (r *Registry) Has(key string) bool {
	_, ok := r.byKey[key]
	return ok
}

// Keys returns the registered keys in display order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// All returns the collections in display order.
func (r *Registry) All() []Collection {
	out := make([]Collection, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, r.byKey[k])
	}
	return out
}

// Len returns the number of collections
func (r *Registry) Len() int {
	return len(r.keys)
}

// OtherPrefixes returns the non-empty prefixes of every other collection
// linking into the same destination as key.
func (r *Registry) OtherPrefixes(key string) []string {
	self, ok := r.byKey[key]
	if !ok {
		return nil
	}
	var prefixes []string
	seen := make(map[string]bool)
	for _, k := range r.keys {
		c := r.byKey[k]
		if k == key || c.Destination != self.Destination || c.Prefix == "" || seen[c.Prefix] {
			continue
		}
		seen[c.Prefix] = true
		prefixes = append(prefixes, c.Prefix)
	}
	return prefixes
}
