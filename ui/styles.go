package ui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	heading lipgloss.Style
	name    lipgloss.Style
	builtin lipgloss.Style
	def     lipgloss.Style
	value   lipgloss.Style
	info    lipgloss.Style
	err     lipgloss.Style
}

// ANSI Color reference
// 0	Black
// 1	Red
// 2	Green
// 3	Yellow
// 4	Blue
// 5	Magenta
// 6	Cyan
// 7	White

func newStyles() styles {
	return styles{
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		name:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		builtin: lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(4)),
		def:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(2)),
		value:   lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(5)),
		info:    lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(7)),
		err:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
	}
}
