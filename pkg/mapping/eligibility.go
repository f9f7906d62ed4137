package mapping

import (
	"path/filepath"
	"strings"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/paths"
)

// skippedStems are lower-cased file names, extension removed, that never
// become links.
var skippedStems = map[string]bool{
	"readme":       true,
	"license":      true,
	"contributing": true,
	"examples":     true,
}

const (
	setupScriptPattern = "setup_*.sh"
	examplesSegment    = "examples"
)

// EligibleName reports whether a file name passes the skip list.
func EligibleName(name string) bool {
	if name == "" || strings.HasPrefix(name, ".") {
		return false
	}

	lower := strings.ToLower(name)
	stem := strings.TrimSuffix(lower, filepath.Ext(lower))
	if skippedStems[stem] {
		return false
	}

	if ok, _ := filepath.Match(setupScriptPattern, lower); ok {
		return false
	}

	return true
}

// EligiblePath applies the name rules to the base name and rejects any
// relative path with an examples segment.
func EligiblePath(rel string) bool {
	if paths.HasSegment(rel, examplesSegment) {
		return false
	}
	return EligibleName(filepath.Base(rel))
}
