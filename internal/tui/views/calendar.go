package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/halvard/tend/internal/service"
	"github.com/halvard/tend/internal/streak"
	"github.com/halvard/tend/internal/tui/ui"
)

// CalendarModel is the model for the calendar view: one month of days
// colored by their derived status, navigable month by month.
type CalendarModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	year  int
	month time.Month
	cells []service.DayCell
}

// NewCalendarModel creates a new calendar view model showing the
// current month.
func NewCalendarModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) CalendarModel {
	now := time.Now()
	m := CalendarModel{
		services: services,
		styles:   styles,
		keys:     keys,
		year:     now.Year(),
		month:    now.Month(),
	}
	return m.Refresh()
}

// Refresh recomputes the day statuses for the shown month.
func (m CalendarModel) Refresh() CalendarModel {
	m.cells = m.services.Stats.Calendar(m.year, m.month)
	return m
}

// WithStyles returns the model with a new style set.
func (m CalendarModel) WithStyles(styles ui.Styles) CalendarModel {
	m.styles = styles
	return m
}

// Update handles key events for the calendar view.
func (m CalendarModel) Update(msg tea.Msg) (CalendarModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.PrevMonth):
		m.year, m.month = shiftMonth(m.year, m.month, -1)
		return m.Refresh(), nil

	case key.Matches(keyMsg, m.keys.NextMonth):
		m.year, m.month = shiftMonth(m.year, m.month, 1)
		return m.Refresh(), nil

	case key.Matches(keyMsg, m.keys.Refresh):
		return m.Refresh(), nil
	}

	return m, nil
}

func shiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.Local).AddDate(0, delta, 0)
	return t.Year(), t.Month()
}

// View renders the calendar view.
func (m CalendarModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render(fmt.Sprintf("%s %d", m.month, m.year)))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Muted.Render("Mo Tu We Th Fr Sa Su"))
	b.WriteString("\n")

	first := time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.Local)
	// Monday-first offset: Sunday sits at the end of the row.
	offset := (int(first.Weekday()) + 6) % 7
	col := offset
	b.WriteString(strings.Repeat("   ", offset))

	for _, cell := range m.cells {
		b.WriteString(m.renderDay(cell))
		col++
		if col%7 == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	if col%7 != 0 {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderLegend())

	return b.String()
}

func (m CalendarModel) renderDay(cell service.DayCell) string {
	label := fmt.Sprintf("%2d", cell.Day)
	switch cell.Status {
	case streak.DayOffStatus:
		return m.styles.DayOff.Render(label)
	case streak.DayComplete:
		return m.styles.DayComplete.Render(label)
	case streak.DayPartial:
		return m.styles.DayPartial.Render(label)
	case streak.DayIncomplete:
		return m.styles.DayIncomplete.Render(label)
	default:
		return m.styles.DayPlain.Render(label)
	}
}

func (m CalendarModel) renderLegend() string {
	parts := []string{
		m.styles.DayComplete.Render("##") + m.styles.Muted.Render(" complete"),
		m.styles.DayPartial.Render("##") + m.styles.Muted.Render(" partial"),
		m.styles.DayIncomplete.Render("##") + m.styles.Muted.Render(" incomplete"),
		m.styles.DayOff.Render("##") + m.styles.Muted.Render(" day off"),
	}
	return strings.Join(parts, "  ")
}
