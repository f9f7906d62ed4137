package collections_test

import (
	"testing"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/collections"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/config"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultDefs(t *testing.T) map[string]config.CollectionConfig {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := config.Load(config.LoadOptions{SkipUserConfig: true})
	require.NoError(t, err)
	return cfg.Collections
}

func TestFromConfig_Defaults(t *testing.T) {
	reg, err := collections.FromConfig(defaultDefs(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"dlabs", "awesome", "wshobson_agents", "wshobson_commands"}, reg.Keys())
	assert.Equal(t, 4, reg.Len())

	dlabs, err := reg.Get("dlabs")
	require.NoError(t, err)
	assert.Equal(t, collections.StrategyPrefixed, dlabs.Strategy)
	assert.Equal(t, collections.DestinationAgents, dlabs.Destination)
	assert.Equal(t, "dLabs-", dlabs.Prefix)
	assert.False(t, dlabs.IsRemote())

	cmds, err := reg.Get("wshobson_commands")
	require.NoError(t, err)
	assert.Equal(t, collections.StrategyToolWorkflowSplit, cmds.Strategy)
	assert.Equal(t, collections.DestinationCommands, cmds.Destination)
	assert.True(t, cmds.IsRemote())
}

func TestFromConfig_InvalidTags(t *testing.T) {
	tests := []struct {
		name string
		def  config.CollectionConfig
	}{
		{
			name: "unknown strategy",
			def:  config.CollectionConfig{Source: "x", Destination: "agents", Strategy: "zigzag"},
		},
		{
			name: "unknown destination",
			def:  config.CollectionConfig{Source: "x", Destination: "skills", Strategy: "prefixed"},
		},
		{
			name: "split into agents",
			def:  config.CollectionConfig{Source: "x", Destination: "agents", Strategy: "tool-workflow-split"},
		},
		{
			name: "flatten into commands",
			def:  config.CollectionConfig{Source: "x", Destination: "commands", Strategy: "category-flatten"},
		},
		{
			name: "missing source",
			def:  config.CollectionConfig{Destination: "agents", Strategy: "prefixed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := collections.FromConfig(map[string]config.CollectionConfig{"bad": tt.def})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
		})
	}
}

func TestNewRegistry_Duplicate(t *testing.T) {
	c := collections.Collection{Key: "a", SourceSubPath: "a", Destination: collections.DestinationAgents, Strategy: collections.StrategyPrefixed}
	_, err := collections.NewRegistry(c, c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestNewRegistry_OrdersByOrderThenKey(t *testing.T) {
	mk := func(key string, order int) collections.Collection {
		return collections.Collection{Key: key, Order: order, SourceSubPath: key, Destination: collections.DestinationAgents, Strategy: collections.StrategyPrefixed}
	}
	reg, err := collections.NewRegistry(mk("zeta", 1), mk("beta", 2), mk("alpha", 2))
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "beta"}, reg.Keys())
}

func TestRegistry_GetUnknown(t *testing.T) {
	reg, err := collections.FromConfig(defaultDefs(t))
	require.NoError(t, err)

	_, err = reg.Get("nope")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownCollection))
	assert.Contains(t, err.Error(), "nope")
	assert.False(t, reg.Has("nope"))
	assert.True(t, reg.Has("awesome"))
}

func TestRegistry_OtherPrefixes(t *testing.T) {
	reg, err := collections.FromConfig(defaultDefs(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"dLabs-", "wshobson-"}, reg.OtherPrefixes("awesome"))
	assert.Equal(t, []string{"wshobson-"}, reg.OtherPrefixes("dlabs"))
	assert.Empty(t, reg.OtherPrefixes("wshobson_commands"))
	assert.Nil(t, reg.OtherPrefixes("nope"))
}

func TestRegistry_AllIsCopy(t *testing.T) {
	reg, err := collections.FromConfig(defaultDefs(t))
	require.NoError(t, err)

	all := reg.All()
	all[0].Prefix = "changed-"
	again, _ := reg.Get(all[0].Key)
	assert.NotEqual(t, "changed-", again.Prefix)
}

func TestStrategyRoundTrip(t *testing.T) {
	for _, s := range []collections.Strategy{
		collections.StrategyPrefixed,
		collections.StrategyCategoryFlatten,
		collections.StrategyToolWorkflowSplit,
	} {
		parsed, err := collections.ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
	assert.Equal(t, "unknown", collections.Strategy(0).String())
}
