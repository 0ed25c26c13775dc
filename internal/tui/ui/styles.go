package ui

import "github.com/charmbracelet/lipgloss"

// Styles contains all the styles used in the TUI
type Styles struct {
	// Base styles
	App lipgloss.Style

	// Tab bar
	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Content area
	Content   lipgloss.Style
	ViewTitle lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusHelp lipgloss.Style

	// Habit list
	HabitSelected  lipgloss.Style
	HabitNormal    lipgloss.Style
	HabitTime      lipgloss.Style
	HabitCompleted lipgloss.Style
	HabitNeutral   lipgloss.Style
	HabitPending   lipgloss.Style

	// Stats
	StatLabel lipgloss.Style
	StatValue lipgloss.Style

	// Calendar day statuses
	DayComplete   lipgloss.Style
	DayPartial    lipgloss.Style
	DayIncomplete lipgloss.Style
	DayOff        lipgloss.Style
	DayPlain      lipgloss.Style

	// Help
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Feedback
	Error   lipgloss.Style
	Success lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		TabBar: lipgloss.NewStyle().MarginBottom(1),
		TabActive: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Underline(true).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(t.Muted).
			Padding(0, 1),

		Content:   lipgloss.NewStyle(),
		ViewTitle: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),

		StatusBar:  lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),
		StatusHelp: lipgloss.NewStyle().Foreground(t.Muted),

		HabitSelected:  lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		HabitNormal:    lipgloss.NewStyle(),
		HabitTime:      lipgloss.NewStyle().Foreground(t.Secondary),
		HabitCompleted: lipgloss.NewStyle().Foreground(t.Success),
		HabitNeutral:   lipgloss.NewStyle().Foreground(t.Warning),
		HabitPending:   lipgloss.NewStyle().Foreground(t.Muted),

		StatLabel: lipgloss.NewStyle().Foreground(t.Muted),
		StatValue: lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),

		DayComplete:   lipgloss.NewStyle().Foreground(t.Success),
		DayPartial:    lipgloss.NewStyle().Foreground(t.Warning),
		DayIncomplete: lipgloss.NewStyle().Foreground(t.Error),
		DayOff:        lipgloss.NewStyle().Foreground(t.Muted).Bold(true),
		DayPlain:      lipgloss.NewStyle(),

		HelpKey:  lipgloss.NewStyle().Foreground(t.Accent),
		HelpDesc: lipgloss.NewStyle().Foreground(t.Muted),

		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Muted:   lipgloss.NewStyle().Foreground(t.Muted),
	}
}
