// Package testutil provides utilities for testing claude-agents components.
//
// Key components:
//   - TestEnvironment: isolated managed root, sources directory and registry
//     in a temp directory, with real filesystem operations
//   - Recorder: a types.Reporter that captures every message
//   - FaultFS: a types.FS wrapper that injects errors per path
//   - assertions for symlinks and directory contents
//
// Usage guidelines:
//   - Symlink behaviour is tested against the real filesystem in t.TempDir()
//   - Failures the OS cannot be made to produce reliably (permission denied
//     as root) are injected with FaultFS
//   - All test data is defined inline
package testutil
