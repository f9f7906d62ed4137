// Package collections defines the registry of upstream agent and command
// collections.
//
// The registry is built once at startup from configuration and is
// immutable afterwards. Components that need collection metadata receive
// the *Registry explicitly; nothing looks it up globally.
package collections
