// Package ui is the presentation layer of the command line: the console
// reporter the engine narrates through, confirmation prompts, tables,
// markdown rendering and output format detection.
//
// Three output formats exist. Terminal output is styled with lipgloss and
// pterm, text output is the same content without color, and JSON output
// writes results as JSON on stdout while narration goes to stderr.
package ui
