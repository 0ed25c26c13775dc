package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/halvard/tend/internal/service"
	"github.com/halvard/tend/internal/tui/ui"
)

// ThemeModel is the model for the theme view: a cursor over the
// available themes, with selection persisted to the snapshot.
type ThemeModel struct {
	services *service.Services
	provider *ui.ThemeProvider
	styles   ui.Styles
	keys     ui.KeyMap

	names  []string
	cursor int
	status string
}

// NewThemeModel creates a new theme view model
func NewThemeModel(services *service.Services, provider *ui.ThemeProvider, styles ui.Styles, keys ui.KeyMap) ThemeModel {
	m := ThemeModel{
		services: services,
		provider: provider,
		styles:   styles,
		keys:     keys,
		names:    ui.ThemeNames(),
	}
	for i, name := range m.names {
		if name == provider.CurrentName() {
			m.cursor = i
		}
	}
	return m
}

// WithStyles returns the model with a new style set.
func (m ThemeModel) WithStyles(styles ui.Styles) ThemeModel {
	m.styles = styles
	return m
}

// Update handles key events for the theme view.
func (m ThemeModel) Update(msg tea.Msg) (ThemeModel, tea.Cmd) {
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
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Select):
		return m.apply(m.names[m.cursor])
	}

	return m, nil
}

// apply persists the chosen theme and broadcasts the new styles.
func (m ThemeModel) apply(name string) (ThemeModel, tea.Cmd) {
	if err := m.services.Settings.SetTheme(name); err != nil {
		m.status = err.Error()
		return m, nil
	}

	m.provider.SetTheme(name)
	m.status = "Theme set to " + name

	styles := m.provider.Styles()
	return m, func() tea.Msg {
		return ui.ThemeChangedMsg{Styles: styles}
	}
}

// View renders the theme view.
func (m ThemeModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Theme"))
	b.WriteString("\n\n")

	active := m.provider.CurrentName()
	for i, name := range m.names {
		line := "  " + name
		if name == active {
			line += " (active)"
		}
		if i == m.cursor {
			b.WriteString(m.styles.HabitSelected.Render("> " + strings.TrimPrefix(line, "  ")))
		} else {
			b.WriteString(m.styles.HabitNormal.Render(line))
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Success.Render(m.status))
	}

	return b.String()
}
