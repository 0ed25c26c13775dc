// Package service provides the business logic layer for the tend
// application. It wraps the entity store, the streak engine and the
// persistence adapter, providing a clean API for both CLI and TUI
// frontends. Every mutating call persists the snapshot explicitly and
// surfaces the write error to the caller.
package service

import (
	"time"

	"github.com/halvard/tend/internal/config"
	"github.com/halvard/tend/internal/storage"
	"github.com/halvard/tend/internal/store"
)

// Services holds all service instances used by the application
type Services struct {
	Routines *RoutineService
	Tasks    *TaskService
	Today    *TodayService
	Stats    *StatsService
	Settings *SettingsService

	// Warning is set when the persisted snapshot was corrupt and the
	// default snapshot was used instead.
	Warning *storage.Warning
}

// shared is the state common to all services.
type shared struct {
	store    *store.Store
	dataPath string
	cfg      config.Config
	now      func() time.Time
}

func (s *shared) save() error {
	return storage.Save(s.dataPath, s.store.Snapshot())
}

// NewServices creates a new Services instance with default paths
func NewServices() (*Services, error) {
	dataPath, err := storage.DataPath()
	if err != nil {
		return nil, err
	}

	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	return NewServicesWithPaths(dataPath, cfg)
}

// NewServicesWithPaths creates a new Services instance with a custom
// snapshot path and config (useful for testing).
func NewServicesWithPaths(dataPath string, cfg config.Config) (*Services, error) {
	snap, warning, err := storage.Load(dataPath)
	if err != nil {
		return nil, err
	}

	sh := &shared{
		store:    store.New(snap),
		dataPath: dataPath,
		cfg:      cfg,
		now:      time.Now,
	}

	return &Services{
		Routines: &RoutineService{sh},
		Tasks:    &TaskService{sh},
		Today:    &TodayService{sh},
		Stats:    &StatsService{sh},
		Settings: &SettingsService{sh},
		Warning:  warning,
	}, nil
}

// SetNow overrides the clock used for date keys and timestamps (for testing).
func (s *Services) SetNow(now func() time.Time) {
	s.Routines.sh.now = now
}

// Store exposes the underlying entity store for read-side consumers.
func (s *Services) Store() *store.Store {
	return s.Routines.sh.store
}
