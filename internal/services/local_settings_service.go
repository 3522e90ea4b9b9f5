package services

import (
	"context"
	"sync"
	"time"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/storage"
)

// LocalSettingsService holds the singleton settings document in a JSON file.
type LocalSettingsService struct {
	mu       sync.RWMutex
	store    *storage.JSONStore
	settings *models.Settings
}

func NewLocalSettingsService(dataDir string) (*LocalSettingsService, error) {
	store, err := storage.NewJSONStore(dataDir, "settings.json")
	if err != nil {
		return nil, err
	}

	s := &LocalSettingsService{store: store}
	var settings models.Settings
	if err := store.Load(&settings); err != nil {
		return nil, err
	}
	if !settings.ID.IsZero() {
		s.settings = &settings
	}
	return s, nil
}

func (s *LocalSettingsService) EnsureDefault(ctx context.Context) error {
	_, err := s.Get(ctx)
	return err
}

func (s *LocalSettingsService) Get(ctx context.Context) (*models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.getOrCreateLocked()
	if err != nil {
		return nil, err
	}
	out := *settings
	return &out, nil
}

func (s *LocalSettingsService) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.getOrCreateLocked()
	if err != nil {
		return nil, err
	}
	req.Apply(settings)
	if err := s.store.Save(settings); err != nil {
		return nil, err
	}
	out := *settings
	return &out, nil
}

func (s *LocalSettingsService) SetLogo(ctx context.Context, path string) (*models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.getOrCreateLocked()
	if err != nil {
		return nil, err
	}
	settings.Logo = path
	settings.UpdatedAt = time.Now()
	if err := s.store.Save(settings); err != nil {
		return nil, err
	}
	out := *settings
	return &out, nil
}

// getOrCreateLocked requires s.mu to be held for writing.
func (s *LocalSettingsService) getOrCreateLocked() (*models.Settings, error) {
	if s.settings == nil {
		s.settings = models.DefaultSettings()
		if err := s.store.Save(s.settings); err != nil {
			s.settings = nil
			return nil, err
		}
	}
	return s.settings, nil
}
