// Package types defines the core types and interfaces shared by the
// mapping builder, the symlink engine and the orchestrators.
//
// It holds the filesystem abstraction (FS), the presentation collaborators
// the core narrates through (Reporter, Prompter), the planned link
// (Mapping) and the per-batch outcome records (OperationResult,
// RemovalResult).
package types
