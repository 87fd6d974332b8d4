package picker

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// defaultColumns returns the lesson table columns.
func defaultColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Lesson", Width: 32},
		{Title: "Sides", Width: 28},
		{Title: "Pairs", Width: 6},
	}
}

// tableStyles returns table styles for the picker.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Selected = styles.Selected.UnsetForeground().UnsetBackground().Bold(true)
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	return styles
}
