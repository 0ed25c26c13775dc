package service

import (
	"fmt"
	"strings"
)

// SettingsService manages the persisted presentation settings.
type SettingsService struct {
	sh *shared
}

// Theme returns the persisted theme name, falling back to the
// configured default.
func (s *SettingsService) Theme() string {
	if theme := s.sh.store.Snapshot().Theme; theme != "" {
		return theme
	}
	return s.sh.cfg.Theme
}

// SetTheme persists a theme selection. Validation against the known
// theme set happens at the presentation edge, which owns the palette.
func (s *SettingsService) SetTheme(name string) error {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return fmt.Errorf("theme name cannot be empty")
	}
	s.sh.store.SetTheme(name)
	return s.sh.save()
}
