package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/halvard/tend/internal/habit"
	"github.com/halvard/tend/internal/service"
	"github.com/halvard/tend/internal/tui/ui"
)

// TodayModel is the model for the today view: the selected routine's
// habits with their current marks.
type TodayModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	routine *habit.Routine
	notes   habit.Notes
	cursor  int
	status  string
}

// NewTodayModel creates a new today view model
func NewTodayModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) TodayModel {
	m := TodayModel{services: services, styles: styles, keys: keys}
	return m.Refresh()
}

// Refresh reloads the selected routine and notes from the store.
func (m TodayModel) Refresh() TodayModel {
	m.routine = m.services.Today.Selected()
	m.notes = m.services.Today.Notes()
	if m.routine == nil || m.cursor >= len(m.routine.Tasks) {
		m.cursor = 0
	}
	return m
}

// WithStyles returns the model with a new style set.
func (m TodayModel) WithStyles(styles ui.Styles) TodayModel {
	m.styles = styles
	return m
}

// Update handles key events for the today view.
func (m TodayModel) Update(msg tea.Msg) (TodayModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.routine != nil && m.cursor < len(m.routine.Tasks)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Complete):
		m = m.mark(habit.StatusCompleted)

	case key.Matches(keyMsg, m.keys.Neutral):
		m = m.mark(habit.StatusNeutral)

	case key.Matches(keyMsg, m.keys.Undo):
		m = m.undo()

	case key.Matches(keyMsg, m.keys.Refresh):
		m = m.Refresh()
	}

	return m, nil
}

func (m TodayModel) mark(status habit.Status) TodayModel {
	if m.routine == nil || m.cursor >= len(m.routine.Tasks) {
		return m
	}

	name := m.routine.Tasks[m.cursor].Habit
	if err := m.services.Today.Mark(name, status); err != nil {
		m.status = err.Error()
		return m
	}
	m.status = fmt.Sprintf("Marked %q %s", name, status)
	return m.Refresh()
}

func (m TodayModel) undo() TodayModel {
	if m.routine == nil || m.cursor >= len(m.routine.Tasks) {
		return m
	}

	name := m.routine.Tasks[m.cursor].Habit
	if err := m.services.Today.UndoMark(name); err != nil {
		m.status = err.Error()
		return m
	}
	m.status = fmt.Sprintf("Cleared mark for %q", name)
	return m.Refresh()
}

// View renders the today view.
func (m TodayModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Today's Routine"))
	b.WriteString("\n\n")

	if m.routine == nil {
		b.WriteString(m.styles.Muted.Render("No routine selected for today"))
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render("Select one with 'tend select <routine>'"))
		return b.String()
	}

	b.WriteString(m.styles.StatValue.Render(m.routine.Name))
	b.WriteString("\n\n")

	for i, t := range m.routine.Tasks {
		line := fmt.Sprintf("%s %-9s %s", m.stateGlyph(t.State), t.Time, t.Habit)
		if i == m.cursor {
			b.WriteString(m.styles.HabitSelected.Render("> " + line))
		} else {
			b.WriteString(m.styles.HabitNormal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if m.notes.Permanent != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("Notes: "))
		b.WriteString(m.notes.Permanent)
	}
	if m.notes.Temporary != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("Temporary (24h): "))
		b.WriteString(m.notes.Temporary)
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.styles.Success.Render(m.status))
	}

	return b.String()
}

func (m TodayModel) stateGlyph(s habit.Status) string {
	switch s {
	case habit.StatusCompleted:
		return m.styles.HabitCompleted.Render("✓")
	case habit.StatusNeutral:
		return m.styles.HabitNeutral.Render("○")
	default:
		return m.styles.HabitPending.Render("·")
	}
}
