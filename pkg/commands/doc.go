// Package commands implements the user-facing operations of claude-agents:
// install, setup, remove, status, doctor and info.
//
// Each operation takes an Env holding its collaborators plus an options
// struct, and returns a result value the CLI renders. Operations never
// print directly; progress goes through the Env's Reporter and everything
// else is in the returned result.
package commands
