package types

import (
	"io/fs"
)

// FS defines the filesystem operations the engine performs.
// Every mutation goes through it so tests can inject failures.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Remove deletes a file, a symlink or an empty directory.
	Remove(name string) error
}

// Reporter is the presentation collaborator the core narrates progress
// through. Implementations may drop every message; results returned by the
// core never depend on it.
type Reporter interface {
	Info(msg string)
	Success(msg string)
	Warn(msg string)
	Error(msg string)

	LinkCreated(displayName string)
	LinkSkipped(displayName, reason string)
	LinkRemoved(displayName string)
}

// Prompter asks the user yes/no questions.
type Prompter interface {
	Confirm(question string, defaultValue bool) (bool, error)
}

// NopReporter discards every message.
type NopReporter struct{}

func (NopReporter) Info(string)                {}
func (NopReporter) Success(string)             {}
func (NopReporter) Warn(string)                {}
func (NopReporter) Error(string)               {}
func (NopReporter) LinkCreated(string)         {}
func (NopReporter) LinkSkipped(string, string) {}
func (NopReporter) LinkRemoved(string)         {}
