// Package filesystem provides the OS-backed implementation of types.FS,
// built on synthfs's path-aware filesystem, plus error predicates that see
// through wrapped filesystem errors.
package filesystem
