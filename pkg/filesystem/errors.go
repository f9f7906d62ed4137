package filesystem

import (
	"errors"
	"io/fs"
)

// IsNotExist reports whether err, or anything it wraps, means the path is
// missing. Unlike os.IsNotExist it follows %w chains.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// IsExist reports whether err, or anything it wraps, means the path is
// already taken.
func IsExist(err error) bool {
	return errors.Is(err, fs.ErrExist)
}

// IsPermission reports whether err, or anything it wraps, is a permission
// failure.
func IsPermission(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}
