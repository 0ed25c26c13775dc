package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/halvard/tend/internal/habit"
	"github.com/halvard/tend/internal/service"
	"github.com/halvard/tend/internal/streak"
	"github.com/halvard/tend/internal/tui/ui"
)

// StatsModel is the model for the stats view
type StatsModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	combined int
	dayOff   habit.DayOff
	reports  []streak.RoutineReport
	tallies  []streak.TallyReport
}

// NewStatsModel creates a new stats view model
func NewStatsModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) StatsModel {
	m := StatsModel{services: services, styles: styles, keys: keys}
	return m.Refresh()
}

// Refresh recomputes the derived statistics from the current snapshot.
func (m StatsModel) Refresh() StatsModel {
	m.combined = m.services.Stats.Combined()
	m.dayOff = m.services.Stats.DayOff()
	m.reports = m.services.Stats.Reports()
	m.tallies = m.services.Stats.Tally()
	return m
}

// WithStyles returns the model with a new style set.
func (m StatsModel) WithStyles(styles ui.Styles) StatsModel {
	m.styles = styles
	return m
}

// Update handles key events for the stats view.
func (m StatsModel) Update(msg tea.Msg) (StatsModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Refresh) {
		return m.Refresh(), nil
	}
	return m, nil
}

// View renders the stats view.
func (m StatsModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Statistics"))
	b.WriteString("\n\n")

	b.WriteString(m.renderStatLine("Current streak:", fmt.Sprintf("%d %s", m.combined, pluralize("day", m.combined))))
	dayOffValue := fmt.Sprintf("%d / %d", m.dayOff.Used, m.dayOff.Limit)
	if m.dayOff.UsedToday {
		dayOffValue += " (one taken today)"
	}
	b.WriteString(m.renderStatLine("Days off:", dayOffValue))

	if len(m.reports) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("Routines"))
		b.WriteString("\n")
		for _, r := range m.reports {
			b.WriteString(fmt.Sprintf("  %-20s %s\n", r.RoutineName,
				m.styles.StatValue.Render(fmt.Sprintf("%d %s", r.DaysFollowed, pluralize("day", r.DaysFollowed)))))
		}
	}

	if len(m.tallies) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("Habits"))
		b.WriteString("\n")
		for _, t := range m.tallies {
			b.WriteString("  " + t.RoutineName + "\n")
			for _, h := range t.Habits {
				b.WriteString(fmt.Sprintf("    %-20s %s\n", h.Name,
					m.styles.StatValue.Render(fmt.Sprintf("%d followed", h.DaysFollowed))))
			}
		}
	}

	return b.String()
}

func (m StatsModel) renderStatLine(label, value string) string {
	return fmt.Sprintf("%s %s\n",
		m.styles.StatLabel.Render(fmt.Sprintf("%-16s", label)),
		m.styles.StatValue.Render(value))
}
