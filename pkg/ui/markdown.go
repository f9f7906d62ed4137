package ui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/term"
)

// DefaultTermWidth is used when stdout is not a terminal or its size is unknown.
const DefaultTermWidth = 100

// TerminalWidth reports the width of stdout, or DefaultTermWidth.
func TerminalWidth() int {
	fd := os.Stdout.Fd()
	if !term.IsTerminal(fd) {
		return DefaultTermWidth
	}
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		return w
	}
	return DefaultTermWidth
}

// RenderMarkdown renders markdown for the terminal. Non-terminal formats
// use glamour's notty style. A zero width wraps at the terminal width on
// terminals and not at all elsewhere. On any rendering error the content
// is returned unchanged.
func RenderMarkdown(content string, format Format, width int) string {
	var options []glamour.TermRendererOption
	if format == FormatTerminal {
		options = append(options, glamour.WithAutoStyle())
		if width == 0 {
			width = TerminalWidth()
		}
	} else {
		options = append(options, glamour.WithStandardStyle("notty"))
	}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
