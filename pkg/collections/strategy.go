package collections

import (
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/errors"
)

// Strategy selects how source files are named and placed. The set is
// closed; every switch over it must handle each value.
type Strategy int

const (
	// StrategyPrefixed links the immediate files of the source root as
	// <prefix><filename>.
	StrategyPrefixed Strategy = iota + 1

	// StrategyCategoryFlatten walks categories/ and links files as
	// <category>-<filename>, the category's numeric prefix stripped.
	StrategyCategoryFlatten

	// StrategyToolWorkflowSplit mirrors tools/ and workflows/ trees and
	// links root files with the collection prefix.
	StrategyToolWorkflowSplit
)

// String returns the configuration tag of the strategy
func (s Strategy) String() string {
	switch s {
	case StrategyPrefixed:
		return "prefixed"
	case StrategyCategoryFlatten:
		return "category-flatten"
	case StrategyToolWorkflowSplit:
		return "tool-workflow-split"
	default:
		return "unknown"
	}
}

// ParseStrategy parses a configuration tag.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "prefixed":
		return StrategyPrefixed, nil
	case "category-flatten":
		return StrategyCategoryFlatten, nil
	case "tool-workflow-split":
		return StrategyToolWorkflowSplit, nil
	default:
		return 0, errors.Newf(errors.ErrInvalidInput, "unknown naming strategy %q", s)
	}
}

// DestinationKind names the managed root a collection links into.
type DestinationKind string

const (
	DestinationAgents   DestinationKind = "agents"
	DestinationCommands DestinationKind = "commands"
)

// ParseDestination parses a destination kind.
func ParseDestination(s string) (DestinationKind, error) {
	switch DestinationKind(s) {
	case DestinationAgents, DestinationCommands:
		return DestinationKind(s), nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "invalid destination kind %q (want agents or commands)", s)
	}
}
