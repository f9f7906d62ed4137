package paths

import (
	"path/filepath"
	"strings"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/errors"
)

// ValidatePath performs basic validation on a path.
// It checks for:
// - Empty paths
// - Null bytes
// - Excessive path length
func ValidatePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	// Common filesystem limit
	if len(path) > 4096 {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length")
	}

	return nil
}

// ValidateKey ensures a collection key is usable as an identifier.
// Keys must:
// - Not be empty
// - Not contain path separators
// - Not be reserved names (. or ..)
func ValidateKey(key string) error {
	if key == "" {
		return errors.New(errors.ErrInvalidInput, "collection key cannot be empty")
	}

	if strings.ContainsAny(key, "/\\") {
		return errors.New(errors.ErrInvalidInput, "collection key cannot contain path separators")
	}

	if key == "." || key == ".." {
		return errors.New(errors.ErrInvalidInput, "collection key cannot be '.' or '..'")
	}

	for _, r := range key {
		if r < 32 {
			return errors.New(errors.ErrInvalidInput, "collection key contains control characters")
		}
	}

	return nil
}

// RelativePath returns the relative path from base to target.
func RelativePath(base, target string) (string, error) {
	rel, err := filepath.Rel(filepath.Clean(base), filepath.Clean(target))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput,
			"cannot determine relative path from %s to %s", base, target)
	}
	return rel, nil
}

// IsHiddenPath returns true if the basename starts with a dot.
func IsHiddenPath(path string) bool {
	base := filepath.Base(path)
	return len(base) > 0 && base[0] == '.'
}

// HasSegment reports whether any element of the slash or OS separated path
// equals segment.
func HasSegment(path, segment string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == segment {
			return true
		}
	}
	return false
}
