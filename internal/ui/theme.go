package ui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Heading  lipgloss.Style
	Accent   lipgloss.Style
	Success  lipgloss.Style
	Failure  lipgloss.Style
	Pending  lipgloss.Style
	Muted    lipgloss.Style
	Command  lipgloss.Style
	Panel    lipgloss.Style
	HintMark lipgloss.Style
}

func DefaultTheme() Theme {
	orange := lipgloss.Color("#F36D3A")
	mint := lipgloss.Color("#67F0A8")
	brick := lipgloss.Color("#FF6F91")
	blue := lipgloss.Color("#5EEBFF")
	gold := lipgloss.Color("#FFC857")
	gray := lipgloss.Color("#8A93A6")

	return Theme{
		Title: lipgloss.NewStyle().
			Foreground(orange).
			Bold(true),
		Heading: lipgloss.NewStyle().
			Foreground(blue).
			Bold(true),
		Accent: lipgloss.NewStyle().
			Foreground(blue),
		Success: lipgloss.NewStyle().
			Foreground(mint).
			Bold(true),
		Failure: lipgloss.NewStyle().
			Foreground(brick).
			Bold(true),
		Pending: lipgloss.NewStyle().
			Foreground(gold),
		Muted: lipgloss.NewStyle().
			Foreground(gray),
		Command: lipgloss.NewStyle().
			Foreground(gold),
		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(blue).
			Padding(0, 1),
		HintMark: lipgloss.NewStyle().
			Foreground(gold).
			Bold(true),
	}
}
