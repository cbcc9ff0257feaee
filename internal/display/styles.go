// Package display renders game output for the plain terminal interface.
package display

import "github.com/charmbracelet/lipgloss"

// Styles contains styling for terminal output
type Styles struct {
	Title   lipgloss.Style
	Prompt  lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Choice  lipgloss.Style
	Stat    lipgloss.Style
}

// DefaultStyles returns the standard color scheme
func DefaultStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true),
		Choice:  lipgloss.NewStyle().Foreground(lipgloss.Color("#74B9FF")).Bold(true),
		Stat:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
	}
}

// ChoiceSymbol returns the emoji shown next to a choice name
func ChoiceSymbol(token string) string {
	switch token {
	case "rock":
		return "🪨"
	case "paper":
		return "📃"
	case "scissors":
		return "✂️"
	default:
		return ""
	}
}
