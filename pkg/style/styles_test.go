package style

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSheetDefinesEverySemanticStyle(t *testing.T) {
	sheet, err := Load(embeddedStyles)
	require.NoError(t, err)

	for _, name := range Names {
		assert.True(t, sheet.Has(name), "missing style %s", name)
	}
}

func TestLoadAppliesAttributes(t *testing.T) {
	sheet, err := Load([]byte(`
colors:
  accent:
    light: "#000000"
    dark: "#FFFFFF"
styles:
  Loud:
    bold: true
    foreground: accent
  Dangling:
    foreground: nowhere
`))
	require.NoError(t, err)

	assert.True(t, sheet.Get("Loud").GetBold())
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}, sheet.Get("Loud").GetForeground())
	assert.Equal(t, lipgloss.NoColor{}, sheet.Get("Dangling").GetForeground())
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	_, err := Load([]byte("styles: [unclosed"))
	assert.Error(t, err)
}

func TestRenderWithoutColor(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	assert.Equal(t, "done", Default().Render(Success, "done"))
	assert.Equal(t, "  x.md", Default().Render(Created, "x.md"))
	assert.Equal(t, "plain", Plain().Render(Header, "plain"))
	assert.Equal(t, "unknown", Default().Render("NoSuchStyle", "unknown"))
}
