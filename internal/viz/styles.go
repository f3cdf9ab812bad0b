package viz

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(14)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	graphStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Padding(1, 0)

	eventTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	eventDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)

	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("232")).
			Padding(0, 1).
			Width(24)

	selectedCellStyle = cellStyle.
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("220")).
				Width(22)

	legendSwatchStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("232")).
				Padding(0, 1)
)
