// Package style holds the semantic lipgloss styles used for terminal
// output. Styles are defined in an embedded YAML sheet with adaptive colors
// that follow the terminal's light or dark background.
package style

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Semantic style names
const (
	Header     = "Header"
	Collection = "Collection"
	Success    = "Success"
	Error      = "Error"
	Warning    = "Warning"
	Info       = "Info"
	Muted      = "Muted"
	Path       = "Path"
	Created    = "Created"
	Removed    = "Removed"
	Skipped    = "Skipped"
)

// Names lists every semantic style
var Names = []string{Header, Collection, Success, Error, Warning, Info, Muted, Path, Created, Removed, Skipped}

// ColorDef is an adaptive color in the sheet
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is a style in the sheet
type StyleDef struct {
	Bold        bool   `yaml:"bold,omitempty"`
	Italic      bool   `yaml:"italic,omitempty"`
	Underline   bool   `yaml:"underline,omitempty"`
	Foreground  string `yaml:"foreground,omitempty"`
	Background  string `yaml:"background,omitempty"`
	PaddingLeft int    `yaml:"paddingLeft,omitempty"`
}

// Config is the YAML style sheet
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Sheet maps semantic names to lipgloss styles
type Sheet struct {
	styles map[string]lipgloss.Style
}

//go:embed styles.yaml
var embeddedStyles []byte

var defaultSheet = mustDefault()

func mustDefault() *Sheet {
	sheet, err := Load(embeddedStyles)
	if err != nil {
		return Plain()
	}
	return sheet
}

// Default returns the embedded style sheet
func Default() *Sheet {
	return defaultSheet
}

// Plain returns a sheet where every style renders text unchanged
func Plain() *Sheet {
	s := &Sheet{styles: make(map[string]lipgloss.Style, len(Names))}
	for _, name := range Names {
		s.styles[name] = lipgloss.NewStyle()
	}
	return s
}

// Load parses a YAML style sheet. Unknown color references are ignored.
func Load(data []byte) (*Sheet, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse styles data: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	s := &Sheet{styles: make(map[string]lipgloss.Style, len(cfg.Styles))}
	for name, def := range cfg.Styles {
		s.styles[name] = buildStyle(def, colors)
	}
	return s, nil
}

func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	st := lipgloss.NewStyle()

	if def.Bold {
		st = st.Bold(true)
	}
	if def.Italic {
		st = st.Italic(true)
	}
	if def.Underline {
		st = st.Underline(true)
	}
	if c, ok := colors[def.Foreground]; ok {
		st = st.Foreground(c)
	}
	if c, ok := colors[def.Background]; ok {
		st = st.Background(c)
	}
	if def.PaddingLeft > 0 {
		st = st.PaddingLeft(def.PaddingLeft)
	}
	return st
}

// Get returns the named style, or an empty style if it is not defined
func (s *Sheet) Get(name string) lipgloss.Style {
	if st, ok := s.styles[name]; ok {
		return st
	}
	return lipgloss.NewStyle()
}

// Has reports whether the sheet defines name
func (s *Sheet) Has(name string) bool {
	_, ok := s.styles[name]
	return ok
}

// Render renders text with the named style
func (s *Sheet) Render(name, text string) string {
	return s.Get(name).Render(text)
}
