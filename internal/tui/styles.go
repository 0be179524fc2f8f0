package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6C6C6C"}
	colorError   = lipgloss.AdaptiveColor{Light: "#C4314B", Dark: "#F25D78"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#1F8A4C", Dark: "#4CD08A"}
	colorInfo    = lipgloss.AdaptiveColor{Light: "#2A6FDB", Dark: "#6AA6FF"}
)

func styleTitle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
}

func styleMuted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorMuted)
}

func styleError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorError)
}

func styleLabel(focused bool) lipgloss.Style {
	s := lipgloss.NewStyle().Width(18)
	if focused {
		return s.Bold(true).Foreground(colorAccent)
	}
	return s
}

func styleToast(color lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Foreground(color)
}

func styleDialog() lipgloss.Style {
	return lipgloss.NewStyle().
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent)
}
