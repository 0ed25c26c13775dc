// Package tui provides the terminal user interface for the tend application.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/halvard/tend/internal/service"
	"github.com/halvard/tend/internal/tui/ui"
	"github.com/halvard/tend/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabToday Tab = iota
	TabStats
	TabCalendar
	TabTheme
)

var tabNames = []string{"Today", "Stats", "Calendar", "Theme"}

// Model is the root TUI model
type Model struct {
	services *service.Services

	activeTab Tab
	width     int
	height    int
	showHelp  bool

	todayView    views.TodayModel
	statsView    views.StatsModel
	calendarView views.CalendarModel
	themeView    views.ThemeModel

	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model
func New(services *service.Services) Model {
	themeProvider := ui.NewThemeProvider(services.Settings.Theme())
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		activeTab:     TabToday,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		todayView:     views.NewTodayModel(services, styles, keys),
		statsView:     views.NewStatsModel(services, styles, keys),
		calendarView:  views.NewCalendarModel(services, styles, keys),
		themeView:     views.NewThemeModel(services, themeProvider, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextTab):
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m.refreshActive(), nil

		case key.Matches(msg, m.keys.PrevTab):
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m.refreshActive(), nil

		case key.Matches(msg, m.keys.Tab1):
			m.activeTab = TabToday
			return m.refreshActive(), nil

		case key.Matches(msg, m.keys.Tab2):
			m.activeTab = TabStats
			return m.refreshActive(), nil

		case key.Matches(msg, m.keys.Tab3):
			m.activeTab = TabCalendar
			return m.refreshActive(), nil

		case key.Matches(msg, m.keys.Tab4):
			m.activeTab = TabTheme
			return m.refreshActive(), nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		m.todayView = m.todayView.WithStyles(msg.Styles)
		m.statsView = m.statsView.WithStyles(msg.Styles)
		m.calendarView = m.calendarView.WithStyles(msg.Styles)
		m.themeView = m.themeView.WithStyles(msg.Styles)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.activeTab {
	case TabToday:
		m.todayView, cmd = m.todayView.Update(msg)
	case TabStats:
		m.statsView, cmd = m.statsView.Update(msg)
	case TabCalendar:
		m.calendarView, cmd = m.calendarView.Update(msg)
	case TabTheme:
		m.themeView, cmd = m.themeView.Update(msg)
	}
	return m, cmd
}

// refreshActive reloads the data behind the newly activated tab.
func (m Model) refreshActive() Model {
	switch m.activeTab {
	case TabToday:
		m.todayView = m.todayView.Refresh()
	case TabStats:
		m.statsView = m.statsView.Refresh()
	case TabCalendar:
		m.calendarView = m.calendarView.Refresh()
	}
	return m
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabBar())
	b.WriteString("\n")

	switch m.activeTab {
	case TabToday:
		b.WriteString(m.todayView.View())
	case TabStats:
		b.WriteString(m.statsView.View())
	case TabCalendar:
		b.WriteString(m.calendarView.View())
	case TabTheme:
		b.WriteString(m.themeView.View())
	}

	b.WriteString("\n")
	if m.showHelp {
		b.WriteString(m.renderHelp())
	} else {
		b.WriteString(m.styles.StatusHelp.Render("tab: switch view  ?: help  q: quit"))
	}

	return m.styles.App.Render(b.String())
}

func (m Model) renderTabBar() string {
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs[i] = m.styles.TabActive.Render(name)
		} else {
			tabs[i] = m.styles.TabInactive.Render(name)
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m Model) renderHelp() string {
	lines := []string{
		"1-4: jump to view    tab/shift+tab: cycle views",
		"j/k: move            c: complete  n: neutral  u: undo (today)",
		"h/l: change month (calendar)      enter: select theme",
		"r: refresh           q: quit",
	}
	return m.styles.StatusHelp.Render(strings.Join(lines, "\n"))
}
