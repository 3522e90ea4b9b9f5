package services

import (
	"context"
	"sync"
	"time"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/storage"
)

// LocalProfileService holds the singleton profile document in a JSON file.
type LocalProfileService struct {
	mu      sync.RWMutex
	store   *storage.JSONStore
	profile *models.Profile
}

func NewLocalProfileService(dataDir string) (*LocalProfileService, error) {
	store, err := storage.NewJSONStore(dataDir, "profile.json")
	if err != nil {
		return nil, err
	}

	s := &LocalProfileService{store: store}
	var prof models.Profile
	if err := store.Load(&prof); err != nil {
		return nil, err
	}
	if !prof.ID.IsZero() {
		s.profile = &prof
	}
	return s, nil
}

func (s *LocalProfileService) EnsureDefault(ctx context.Context) error {
	_, err := s.Get(ctx)
	return err
}

func (s *LocalProfileService) Get(ctx context.Context) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prof, err := s.getOrCreateLocked()
	if err != nil {
		return nil, err
	}
	out := *prof
	return &out, nil
}

func (s *LocalProfileService) Update(ctx context.Context, req *models.UpdateProfileRequest) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prof, err := s.getOrCreateLocked()
	if err != nil {
		return nil, err
	}
	req.Apply(prof)
	if err := s.store.Save(prof); err != nil {
		return nil, err
	}
	out := *prof
	return &out, nil
}

func (s *LocalProfileService) SetImage(ctx context.Context, path string) (*models.Profile, error) {
	return s.setField(func(p *models.Profile) { p.ProfileImage = path })
}

func (s *LocalProfileService) SetResume(ctx context.Context, path string) (*models.Profile, error) {
	return s.setField(func(p *models.Profile) { p.ResumePdf = path })
}

func (s *LocalProfileService) setField(set func(*models.Profile)) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prof, err := s.getOrCreateLocked()
	if err != nil {
		return nil, err
	}
	set(prof)
	prof.UpdatedAt = time.Now()
	if err := s.store.Save(prof); err != nil {
		return nil, err
	}
	out := *prof
	return &out, nil
}

// getOrCreateLocked requires s.mu to be held for writing.
func (s *LocalProfileService) getOrCreateLocked() (*models.Profile, error) {
	if s.profile == nil {
		s.profile = models.DefaultProfile()
		if err := s.store.Save(s.profile); err != nil {
			s.profile = nil
			return nil, err
		}
	}
	return s.profile, nil
}
