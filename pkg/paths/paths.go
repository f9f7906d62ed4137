package paths

import (
	"os"
	"path/filepath"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/errors"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Managed directory names. These define the layout consumers read and must
// not change between releases.
const (
	// DefaultRootDir is the default managed root, relative to the home directory
	DefaultRootDir = ".claude"

	AgentsDirName    = "agents"
	CommandsDirName  = "commands"
	ToolsDirName     = "tools"
	WorkflowsDirName = "workflows"
)

// Layout resolves the managed directories under a root plus the directory
// holding upstream collection sources.
type Layout struct {
	root    string
	sources string
}

// NewLayout creates a Layout. Both paths get ~ expanded and are made
// absolute. An empty root falls back to ~/.claude; an empty sources path
// falls back to the current directory.
func NewLayout(root, sources string) (*Layout, error) {
	if root == "" {
		root = filepath.Join("~", DefaultRootDir)
	}
	if sources == "" {
		sources = "."
	}

	absRoot, err := filepath.Abs(expandHome(root))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for root %s", root)
	}

	absSources, err := filepath.Abs(expandHome(sources))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for sources %s", sources)
	}

	return &Layout{root: absRoot, sources: absSources}, nil
}

// Root returns the managed root directory
func (l *Layout) Root() string {
	return l.root
}

// SourcesDir returns the directory upstream collections live under
func (l *Layout) SourcesDir() string {
	return l.sources
}

// SourcePath resolves a collection sub-path against the sources directory.
// Absolute sub-paths are returned cleaned.
func (l *Layout) SourcePath(subPath string) string {
	subPath = expandHome(subPath)
	if filepath.IsAbs(subPath) {
		return filepath.Clean(subPath)
	}
	return filepath.Join(l.sources, subPath)
}

// AgentsDir returns <root>/agents
func (l *Layout) AgentsDir() string {
	return filepath.Join(l.root, AgentsDirName)
}

// CommandsDir returns <root>/commands
func (l *Layout) CommandsDir() string {
	return filepath.Join(l.root, CommandsDirName)
}

// ToolsDir returns <root>/commands/tools
func (l *Layout) ToolsDir() string {
	return filepath.Join(l.CommandsDir(), ToolsDirName)
}

// WorkflowsDir returns <root>/commands/workflows
func (l *Layout) WorkflowsDir() string {
	return filepath.Join(l.CommandsDir(), WorkflowsDirName)
}

// ManagedRoots returns the directories the tool is allowed to mutate.
func (l *Layout) ManagedRoots() []string {
	return []string{l.AgentsDir(), l.CommandsDir(), l.ToolsDir(), l.WorkflowsDir()}
}

// Policy returns the containment policy for this layout.
func (l *Layout) Policy() *Policy {
	return NewPolicy(l.ManagedRoots()...)
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	return expandHome(path)
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}
