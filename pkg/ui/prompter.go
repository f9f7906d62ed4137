package ui

import (
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/errors"
	"github.com/dallasgoldswain/claude-code-agents-manager-sub000/pkg/types"
	"github.com/pterm/pterm"
)

// ConsolePrompter asks yes/no questions on the terminal.
type ConsolePrompter struct{}

// NewConsolePrompter creates a console prompter
func NewConsolePrompter() *ConsolePrompter {
	return &ConsolePrompter{}
}

// Confirm shows an interactive confirmation
func (p *ConsolePrompter) Confirm(question string, defaultValue bool) (bool, error) {
	return pterm.DefaultInteractiveConfirm.
		WithDefaultValue(defaultValue).
		Show(question)
}

// AutoPrompter answers every question without asking. It backs --yes and
// non-interactive runs.
type AutoPrompter struct {
	Answer bool
}

// Confirm returns the fixed answer
func (p AutoPrompter) Confirm(string, bool) (bool, error) {
	return p.Answer, nil
}

// NonInteractivePrompter refuses every question. It backs runs without a
// terminal on stdin, where a prompt would hang.
type NonInteractivePrompter struct{}

// Confirm always fails with an INVALID_INPUT error naming the question
func (NonInteractivePrompter) Confirm(question string, _ bool) (bool, error) {
	return false, errors.Newf(errors.ErrInvalidInput, "cannot ask %q without a terminal; pass --yes", question)
}

var (
	_ types.Prompter = (*ConsolePrompter)(nil)
	_ types.Prompter = AutoPrompter{}
	_ types.Prompter = NonInteractivePrompter{}
)
