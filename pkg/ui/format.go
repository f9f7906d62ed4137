package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto picks terminal or text from the output's capabilities
	FormatAuto Format = iota
	// FormatTerminal renders colored, styled output
	FormatTerminal
	// FormatText renders the same content without styling
	FormatText
	// FormatJSON renders results as JSON
	FormatJSON
)

// Color modes accepted by the configuration
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, fmt.Errorf("unknown format: %s", s)
	}
}

// DetectFormat determines the format for output from NO_COLOR, whether it
// is a terminal and the terminal's color support.
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}

	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}

// Resolve turns the requested format and color mode into a concrete
// format. An explicit text or JSON format wins over the color mode.
func Resolve(requested Format, colorMode string, output *os.File) Format {
	if requested == FormatText || requested == FormatJSON {
		return requested
	}

	switch colorMode {
	case ColorNever:
		return FormatText
	case ColorAlways:
		return FormatTerminal
	}

	if requested == FormatTerminal {
		return FormatTerminal
	}
	return DetectFormat(output)
}

// Apply configures the global lipgloss and pterm color state for f.
func Apply(f Format) {
	if f == FormatTerminal {
		profile := termenv.ColorProfile()
		if profile == termenv.Ascii {
			profile = termenv.ANSI256
		}
		lipgloss.SetColorProfile(profile)
		pterm.EnableColor()
		return
	}

	lipgloss.SetColorProfile(termenv.Ascii)
	pterm.DisableColor()
}
