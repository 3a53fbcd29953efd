package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name          string
	Base          lipgloss.Style
	Header        lipgloss.Style
	Subtitle      lipgloss.Style
	Label         lipgloss.Style
	Value         lipgloss.Style
	Goal          lipgloss.Style
	CompletedGoal lipgloss.Style
	PriorityHigh  lipgloss.Style
	PriorityMed   lipgloss.Style
	PriorityLow   lipgloss.Style
	Input         lipgloss.Style
	Focused       lipgloss.Style
	Dim           lipgloss.Style
	Highlight     lipgloss.Style
	Warning       lipgloss.Style
	Error         lipgloss.Style
	Success       lipgloss.Style
	Panel         lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:          "Default",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Subtitle:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Value:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Goal:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		CompletedGoal: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		PriorityHigh:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		PriorityMed:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		PriorityLow:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Warning:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Success:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Panel:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1),
	},
}

func defaultTheme() Theme {
	return Themes["default"]
}
