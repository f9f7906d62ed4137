// Package paths owns the managed filesystem layout and the policy that keeps
// every mutation inside it.
//
// The layout is rooted at a configurable directory (conventionally
// ~/.claude):
//
//	<root>/agents/              flat agent symlinks
//	<root>/commands/            flat command symlinks
//	<root>/commands/tools/      mirrored tool trees
//	<root>/commands/workflows/  mirrored workflow trees
//
// Upstream collections are cloned under a separate sources directory.
//
// # Containment
//
// Policy.ValidateManagedPath is the single gate every destination passes
// before the engine creates or deletes anything. It compares cleaned
// absolute paths against the managed roots with a separator boundary, and
// never follows symlinks, so destinations that do not exist yet can be
// validated.
//
//	layout, _ := paths.NewLayout("~/.claude", "~/src/agents")
//	policy := layout.Policy()
//	abs, err := policy.ValidateManagedPath("~/.claude/agents/dLabs-a.md")
package paths
