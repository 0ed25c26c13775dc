package ui

import "github.com/charmbracelet/lipgloss"

// Theme is a named color palette for the TUI. The four themes mirror
// the persisted theme selector: simple, space, abstract and gradient.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
}

// DefaultTheme is the theme used when no theme is configured.
const DefaultTheme = "simple"

// themes is the ordered theme registry; the order drives cycling.
var themes = []Theme{
	{
		Name:      "simple",
		Primary:   lipgloss.Color("99"),  // purple
		Secondary: lipgloss.Color("39"),  // cyan
		Accent:    lipgloss.Color("212"), // pink
		Muted:     lipgloss.Color("240"),
		Success:   lipgloss.Color("82"),
		Warning:   lipgloss.Color("214"),
		Error:     lipgloss.Color("196"),
	},
	{
		Name:      "space",
		Primary:   lipgloss.Color("141"), // lavender
		Secondary: lipgloss.Color("61"),  // indigo
		Accent:    lipgloss.Color("183"),
		Muted:     lipgloss.Color("238"),
		Success:   lipgloss.Color("84"),
		Warning:   lipgloss.Color("221"),
		Error:     lipgloss.Color("203"),
	},
	{
		Name:      "abstract",
		Primary:   lipgloss.Color("129"), // violet
		Secondary: lipgloss.Color("93"),
		Accent:    lipgloss.Color("171"),
		Muted:     lipgloss.Color("244"),
		Success:   lipgloss.Color("42"),
		Warning:   lipgloss.Color("208"),
		Error:     lipgloss.Color("160"),
	},
	{
		Name:      "gradient",
		Primary:   lipgloss.Color("33"), // blue
		Secondary: lipgloss.Color("69"),
		Accent:    lipgloss.Color("135"),
		Muted:     lipgloss.Color("242"),
		Success:   lipgloss.Color("48"),
		Warning:   lipgloss.Color("215"),
		Error:     lipgloss.Color("197"),
	},
}

// ThemeNames returns the theme names in cycling order.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// ValidTheme reports whether name is a known theme.
func ValidTheme(name string) bool {
	for _, t := range themes {
		if t.Name == name {
			return true
		}
	}
	return false
}

// ThemeProvider tracks the active theme and builds styles from it.
type ThemeProvider struct {
	index int
}

// NewThemeProvider creates a provider with the given initial theme.
// Unknown names fall back to the default theme.
func NewThemeProvider(initialTheme string) *ThemeProvider {
	tp := &ThemeProvider{}
	tp.SetTheme(initialTheme)
	return tp
}

// SetTheme sets the current theme by name.
// Returns true if the theme was found and set, false otherwise.
func (tp *ThemeProvider) SetTheme(name string) bool {
	for i, t := range themes {
		if t.Name == name {
			tp.index = i
			return true
		}
	}
	return false
}

// NextTheme cycles to the next theme and returns its name.
func (tp *ThemeProvider) NextTheme() string {
	tp.index = (tp.index + 1) % len(themes)
	return tp.CurrentName()
}

// PreviousTheme cycles to the previous theme and returns its name.
func (tp *ThemeProvider) PreviousTheme() string {
	tp.index = (tp.index - 1 + len(themes)) % len(themes)
	return tp.CurrentName()
}

// Current returns the active theme.
func (tp *ThemeProvider) Current() Theme {
	return themes[tp.index]
}

// CurrentName returns the name of the active theme.
func (tp *ThemeProvider) CurrentName() string {
	return themes[tp.index].Name
}

// Styles returns a Styles struct configured for the current theme.
func (tp *ThemeProvider) Styles() Styles {
	return NewStyles(tp.Current())
}

// ThemeChangedMsg is broadcast to views when the theme changes.
type ThemeChangedMsg struct {
	Styles Styles
}
