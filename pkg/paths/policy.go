package paths

import (
	"path/filepath"
	"strings"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/errors"
)

// Policy validates that paths fall inside a fixed set of managed roots.
type Policy struct {
	roots []string
}

// NewPolicy creates a policy over the given roots. Roots are expanded and
// cleaned once here.
func NewPolicy(roots ...string) *Policy {
	cleaned := make([]string, 0, len(roots))
	for _, r := range roots {
		if r == "" {
			continue
		}
		abs, err := filepath.Abs(expandHome(r))
		if err != nil {
			continue
		}
		cleaned = append(cleaned, abs)
	}
	return &Policy{roots: cleaned}
}

// Roots returns a copy of the managed roots.
func (p *Policy) Roots() []string {
	out := make([]string, len(p.roots))
	copy(out, p.roots)
	return out
}

// ValidateManagedPath returns the expanded absolute form of path when it is
// one of the managed roots or nested under one. Symlinks are not resolved.
func (p *Policy) ValidateManagedPath(path string) (string, error) {
	if err := ValidatePath(path); err != nil {
		return "", errors.Wrapf(err, errors.ErrPathEscape, "invalid managed path %q", path)
	}

	abs, err := filepath.Abs(expandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrPathEscape, "cannot resolve path %q", path)
	}

	for _, root := range p.roots {
		if withinRoot(root, abs) {
			return abs, nil
		}
	}

	return "", errors.Newf(errors.ErrPathEscape, "path %s is outside the managed directories", path).
		WithDetail("path", path).
		WithDetail("resolved", abs)
}

// IsManaged reports whether path passes ValidateManagedPath.
func (p *Policy) IsManaged(path string) bool {
	_, err := p.ValidateManagedPath(path)
	return err == nil
}

func withinRoot(root, abs string) bool {
	if abs == root {
		return true
	}
	boundary := root
	if !strings.HasSuffix(boundary, string(filepath.Separator)) {
		boundary += string(filepath.Separator)
	}
	return strings.HasPrefix(abs, boundary)
}
