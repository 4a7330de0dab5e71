package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#2CD7C7")
	colorPath   = lipgloss.Color("#20B9B4")
	colorMuted  = lipgloss.Color("#2C4A54")
	colorError  = lipgloss.Color("#E74C3C")
)

var styles = struct {
	Title  lipgloss.Style
	Path   lipgloss.Style
	Muted  lipgloss.Style
	Origin lipgloss.Style
	Error  lipgloss.Style
}{
	Title:  lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
	Path:   lipgloss.NewStyle().Foreground(colorPath),
	Muted:  lipgloss.NewStyle().Foreground(colorMuted),
	Origin: lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
	Error:  lipgloss.NewStyle().Bold(true).Foreground(colorError),
}
