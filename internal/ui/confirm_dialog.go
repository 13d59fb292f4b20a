package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/codeAlphaBravosite/Notepad2/internal/styles"
)

// ConfirmDialog is a reusable confirmation modal with two buttons.
// It holds which button is highlighted; key handling is by command
// name so the keymap stays the single source of key truth.
type ConfirmDialog struct {
	Title        string
	Message      string
	ConfirmLabel string // e.g., " Delete ", " Yes "
	CancelLabel  string // e.g., " Cancel ", " No "
	Width        int

	confirmSelected bool
}

// NewConfirmDialog creates a dialog with sensible defaults. Cancel is
// selected initially so a stray enter does not confirm a destructive
// action.
func NewConfirmDialog(title, message string) *ConfirmDialog {
	return &ConfirmDialog{
		Title:        title,
		Message:      message,
		ConfirmLabel: " Confirm ",
		CancelLabel:  " Cancel ",
		Width:        50,
	}
}

// HandleCommand processes a resolved keymap command. It reports
// whether the dialog is finished and, if so, whether the user
// confirmed.
func (d *ConfirmDialog) HandleCommand(cmd string) (done, confirmed bool) {
	switch cmd {
	case "switch-button":
		d.confirmSelected = !d.confirmSelected
		return false, false
	case "select":
		return true, d.confirmSelected
	case "cancel":
		return true, false
	}
	return false, false
}

// ConfirmSelected reports which button is highlighted.
func (d *ConfirmDialog) ConfirmSelected() bool { return d.confirmSelected }

// View renders the dialog box.
func (d *ConfirmDialog) View() string {
	confirmBtn := styles.DialogButton.Render(d.ConfirmLabel)
	cancelBtn := styles.DialogButtonActive.Render(d.CancelLabel)
	if d.confirmSelected {
		confirmBtn = styles.DialogButtonActive.Render(d.ConfirmLabel)
		cancelBtn = styles.DialogButton.Render(d.CancelLabel)
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, confirmBtn, "  ", cancelBtn)

	inner := d.Width - 6 // border + padding
	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render(d.Title),
		"",
		styles.Body.Width(inner).Render(d.Message),
		"",
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, buttons),
	)
	return styles.DialogBorder.Width(d.Width-2).Render(body)
}
