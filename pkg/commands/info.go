package commands

import (
	"fmt"
	"strings"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/collections"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/logging"
)

// Info describes a collection as markdown, including what is currently
// installed from it.
func Info(env Env, key string) (string, error) {
	logger := logging.GetLogger("commands.info")
	logger.Debug().Str(logging.FieldCollection, key).Msg("Starting info command")

	env, err := env.withDefaults()
	if err != nil {
		return "", err
	}

	c, err := env.Registry.Get(key)
	if err != nil {
		return "", err
	}
	cs := collectionStatus(env, c)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", c.Name)
	if c.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", c.Description)
	}

	fmt.Fprintf(&b, "- **Key:** `%s`\n", c.Key)
	fmt.Fprintf(&b, "- **Naming:** %s\n", describeStrategy(c))
	if c.Prefix != "" {
		fmt.Fprintf(&b, "- **Prefix:** `%s`\n", c.Prefix)
	}
	fmt.Fprintf(&b, "- **Links into:** `%s`\n", env.builder().DestinationRoot(c))
	fmt.Fprintf(&b, "- **Source:** `%s`", cs.Source)
	if !cs.SourcePresent {
		b.WriteString(" (missing)")
	}
	b.WriteString("\n")
	if c.IsRemote() {
		fmt.Fprintf(&b, "- **Repository:** %s\n", c.Repository)
	}
	if c.ExpectedCount > 0 {
		fmt.Fprintf(&b, "- **Expected files:** %d\n", c.ExpectedCount)
	}

	links, err := env.engine().InstalledLinks(key)
	if err != nil {
		logger.Warn().Err(err).Str(logging.FieldCollection, key).Msg("Failed to list installed links")
	}

	fmt.Fprintf(&b, "\n## Installed (%d)\n\n", len(links))
	if len(links) == 0 {
		b.WriteString("Nothing installed.\n")
	}
	for _, l := range links {
		if l.Broken {
			fmt.Fprintf(&b, "- `%s` (broken)\n", l.DisplayName)
			continue
		}
		fmt.Fprintf(&b, "- `%s`\n", l.DisplayName)
	}

	return b.String(), nil
}

func describeStrategy(c collections.Collection) string {
	switch c.Strategy {
	case collections.StrategyPrefixed:
		return fmt.Sprintf("files linked as `%s<file>`", c.Prefix)
	case collections.StrategyCategoryFlatten:
		return "files under `categories/` linked as `<category>-<file>`"
	case collections.StrategyToolWorkflowSplit:
		return fmt.Sprintf("`tools/` and `workflows/` mirrored, root files linked as `%s<file>`", c.Prefix)
	}
	return c.Strategy.String()
}
