// Package tui renders the order form in the terminal.
//
// The bubbletea event loop owns the form state: every keystroke, toggle and
// submission result is handled in Update, one at a time. The only work done
// off the loop is the order request itself, which reports back as a message.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("#8BC34A")
	colorError   = lipgloss.Color("#e53935")
	colorMuted   = lipgloss.Color("#8a8f98")
	colorInfo    = lipgloss.Color("#2196F3")
	colorSuccess = lipgloss.Color("#8BC34A")
)

// Styles groups the lipgloss styles used by the form.
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Cursor   lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Failure  lipgloss.Style
	Button   lipgloss.Style
	Disabled lipgloss.Style
	Spinner  lipgloss.Style
}

// DefaultStyles returns the stock palette.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1),
		Label:    lipgloss.NewStyle().Bold(true),
		Cursor:   lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(colorError),
		Success:  lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
		Failure:  lipgloss.NewStyle().Foreground(colorError).Bold(true),
		Button:   lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(lipgloss.Color("#101F38")).Background(colorAccent),
		Disabled: lipgloss.NewStyle().Padding(0, 2).Foreground(colorMuted),
		Spinner:  lipgloss.NewStyle().Foreground(colorInfo),
	}
}
