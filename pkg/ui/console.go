package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/errors"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/style"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/types"
)

// Indicators prefixed to narration lines
const (
	successMark = "✓"
	errorMark   = "✗"
	warnMark    = "!"
	infoMark    = "•"
	removedMark = "−"
	skippedMark = "○"
)

// Console writes styled output. Results go to out; narration goes to out
// too, except in JSON mode where it goes to errOut so out stays parseable.
type Console struct {
	out    io.Writer
	errOut io.Writer
	format Format
	sheet  *style.Sheet
}

// NewConsole creates a console for a resolved format. Call Apply first so
// the color profile matches the format.
func NewConsole(out, errOut io.Writer, format Format) *Console {
	return &Console{out: out, errOut: errOut, format: format, sheet: style.Default()}
}

// Format returns the console's output format
func (c *Console) Format() Format {
	return c.format
}

// JSON reports whether results are written as JSON
func (c *Console) JSON() bool {
	return c.format == FormatJSON
}

func (c *Console) narration() io.Writer {
	if c.format == FormatJSON {
		return c.errOut
	}
	return c.out
}

func (c *Console) line(w io.Writer, styleName, mark, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", c.sheet.Render(styleName, mark), msg)
}

// Info implements types.Reporter
func (c *Console) Info(msg string) { c.line(c.narration(), style.Info, infoMark, msg) }

// Success implements types.Reporter
func (c *Console) Success(msg string) { c.line(c.narration(), style.Success, successMark, msg) }

// Warn implements types.Reporter
func (c *Console) Warn(msg string) { c.line(c.errOut, style.Warning, warnMark, msg) }

// Error implements types.Reporter
func (c *Console) Error(msg string) { c.line(c.errOut, style.Error, errorMark, msg) }

// LinkCreated implements types.Reporter
func (c *Console) LinkCreated(name string) {
	_, _ = fmt.Fprintln(c.narration(), c.sheet.Render(style.Created, successMark+" "+name))
}

// LinkSkipped implements types.Reporter
func (c *Console) LinkSkipped(name, reason string) {
	_, _ = fmt.Fprintln(c.narration(), c.sheet.Render(style.Skipped, fmt.Sprintf("%s %s (%s)", skippedMark, name, reason)))
}

// LinkRemoved implements types.Reporter
func (c *Console) LinkRemoved(name string) {
	_, _ = fmt.Fprintln(c.narration(), c.sheet.Render(style.Removed, removedMark+" "+name))
}

// Header prints a section title
func (c *Console) Header(title string) {
	_, _ = fmt.Fprintln(c.narration(), c.sheet.Render(style.Header, title))
}

// Println prints a plain line to the result stream
func (c *Console) Println(msg string) {
	_, _ = fmt.Fprintln(c.out, msg)
}

// Muted prints a dimmed line
func (c *Console) Muted(msg string) {
	_, _ = fmt.Fprintln(c.narration(), c.sheet.Render(style.Muted, msg))
}

// Table prints a table with a header row
func (c *Console) Table(header []string, rows [][]string) error {
	rendered, err := RenderTable(header, rows)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, rendered)
	return err
}

// Markdown prints rendered markdown
func (c *Console) Markdown(content string) {
	_, _ = fmt.Fprint(c.out, RenderMarkdown(content, c.format, 0))
}

// WriteJSON writes v as indented JSON to the result stream
func (c *Console) WriteJSON(v interface{}) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// RenderError prints err to the error stream with its code and the path
// it concerns, when known.
func (c *Console) RenderError(err error) {
	if err == nil {
		return
	}
	_, _ = fmt.Fprintln(c.errOut, FormatError(err, c.sheet))
}

// FormatError formats an error for display. Joined errors are listed one
// per line.
func FormatError(err error, sheet *style.Sheet) string {
	var lines []string
	for _, e := range flatten(err) {
		msg := e.Error()
		if details := errors.GetErrorDetails(e); details != nil {
			if p, ok := details["path"]; ok && !strings.Contains(msg, fmt.Sprint(p)) {
				msg += fmt.Sprintf(" (path: %v)", p)
			}
		}
		lines = append(lines, fmt.Sprintf("%s %s", sheet.Render(style.Error, "Error:"), msg))
	}
	return strings.Join(lines, "\n")
}

func flatten(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range joined.Unwrap() {
			out = append(out, flatten(e)...)
		}
		return out
	}
	return []error{err}
}

// CreateSummary formats the counts of a creation batch.
func CreateSummary(r *types.OperationResult) string {
	if r == nil {
		return "nothing to do"
	}
	if r.DryRun > 0 {
		return fmt.Sprintf("%d would be created, %d skipped, %d failed", r.DryRun, r.Skipped, r.Errors)
	}
	return fmt.Sprintf("%d created, %d skipped, %d failed", r.Created, r.Skipped, r.Errors)
}

// RemoveSummary formats the counts of a removal pass.
func RemoveSummary(r *types.RemovalResult) string {
	if r == nil {
		return "nothing to do"
	}
	if r.DryRun > 0 {
		return fmt.Sprintf("%d would be removed, %d skipped, %d failed", r.DryRun, r.Skipped, r.Errors)
	}
	return fmt.Sprintf("%d removed, %d skipped, %d failed", r.Removed, r.Skipped, r.Errors)
}

var _ types.Reporter = (*Console)(nil)
