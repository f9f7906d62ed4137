// Package config loads claude-agents configuration.
//
// Sources are layered with koanf, later layers overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/claude-agents/config.toml
//  3. an explicit file passed with --config
//  4. environment: CLAUDE_AGENTS_ROOT, CLAUDE_AGENTS_SOURCES, CLAUDE_AGENTS_COLOR
//
// The collection table lives in the same file so users can point a
// collection at a fork or add a new prefixed collection without a rebuild.
package config
