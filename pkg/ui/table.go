package ui

import (
	"github.com/pterm/pterm"
)

// RenderTable renders rows under a header row with pterm.
func RenderTable(header []string, rows [][]string) (string, error) {
	data := make(pterm.TableData, 0, len(rows)+1)
	data = append(data, header)
	data = append(data, rows...)
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}
