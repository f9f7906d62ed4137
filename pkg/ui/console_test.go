package ui_test

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/errors"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/types"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTextConsole() (*ui.Console, *bytes.Buffer, *bytes.Buffer) {
	ui.Apply(ui.FormatText)
	var out, errOut bytes.Buffer
	return ui.NewConsole(&out, &errOut, ui.FormatText), &out, &errOut
}

func TestConsoleReporter(t *testing.T) {
	c, out, errOut := newTextConsole()

	c.Info("syncing")
	c.Success("done")
	c.LinkCreated("dLabs-a.md")
	c.LinkSkipped("b.md", types.ReasonNotSymlink)
	c.LinkRemoved("c.md")
	c.Warn("careful")
	c.Error("broke")

	assert.Equal(t, strings.Join([]string{
		"• syncing",
		"✓ done",
		"  ✓ dLabs-a.md",
		"  ○ b.md (not a symlink)",
		"  − c.md",
		"",
	}, "\n"), out.String())
	assert.Equal(t, "! careful\n✗ broke\n", errOut.String())
}

func TestConsoleJSONKeepsStdoutClean(t *testing.T) {
	var out, errOut bytes.Buffer
	c := ui.NewConsole(&out, &errOut, ui.FormatJSON)
	assert.True(t, c.JSON())

	c.Info("narration")
	c.LinkCreated("x.md")
	require.NoError(t, c.WriteJSON(map[string]int{"created": 1}))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, 1, decoded["created"])
	assert.Contains(t, errOut.String(), "narration")
	assert.Contains(t, errOut.String(), "x.md")
}

func TestRenderError(t *testing.T) {
	c, _, errOut := newTextConsole()

	err := errors.Join(
		errors.New(errors.ErrSourceMissing, "source directory does not exist").WithDetail("path", "/src/x"),
		stderrors.New("plain failure"),
	)
	c.RenderError(err)
	c.RenderError(nil)

	lines := strings.Split(strings.TrimSpace(errOut.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Error: [SOURCE_MISSING] source directory does not exist (path: /src/x)", lines[0])
	assert.Equal(t, "Error: plain failure", lines[1])
}

func TestSummaries(t *testing.T) {
	assert.Equal(t, "3 created, 1 skipped, 0 failed",
		ui.CreateSummary(&types.OperationResult{Created: 3, Skipped: 1}))
	assert.Equal(t, "2 would be created, 0 skipped, 1 failed",
		ui.CreateSummary(&types.OperationResult{DryRun: 2, Errors: 1}))
	assert.Equal(t, "4 removed, 1 skipped, 0 failed",
		ui.RemoveSummary(&types.RemovalResult{Removed: 4, Skipped: 1}))
	assert.Equal(t, "nothing to do", ui.RemoveSummary(nil))
}

func TestTable(t *testing.T) {
	c, out, _ := newTextConsole()

	require.NoError(t, c.Table(
		[]string{"Collection", "Installed"},
		[][]string{{"dlabs", "5"}, {"awesome", "0"}},
	))

	assert.Contains(t, out.String(), "Collection")
	assert.Contains(t, out.String(), "dlabs")
	assert.Contains(t, out.String(), "awesome")
}

func TestMarkdownPlain(t *testing.T) {
	rendered := ui.RenderMarkdown("# dLabs Agents\n\nLocal agents.\n", ui.FormatText, 60)
	assert.Contains(t, rendered, "dLabs Agents")
	assert.Contains(t, rendered, "Local agents.")
}

func TestAutoPrompter(t *testing.T) {
	yes, err := ui.AutoPrompter{Answer: true}.Confirm("Install?", false)
	require.NoError(t, err)
	assert.True(t, yes)

	no, err := ui.AutoPrompter{}.Confirm("Install?", true)
	require.NoError(t, err)
	assert.False(t, no)
}

func TestNonInteractivePrompter(t *testing.T) {
	ok, err := ui.NonInteractivePrompter{}.Confirm("Install dLabs Agents?", true)
	assert.False(t, ok)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "--yes")
}

func TestTerminalWidthIsPositive(t *testing.T) {
	assert.Positive(t, ui.TerminalWidth())
}
