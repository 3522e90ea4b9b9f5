package services

import (
	"context"
	"sort"
	"sync"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/storage"
)

type LocalExperienceService struct {
	mu          sync.RWMutex
	store       *storage.JSONStore
	experiences []models.Experience
}

func NewLocalExperienceService(dataDir string) (*LocalExperienceService, error) {
	store, err := storage.NewJSONStore(dataDir, "experiences.json")
	if err != nil {
		return nil, err
	}

	s := &LocalExperienceService{store: store, experiences: []models.Experience{}}
	if err := store.Load(&s.experiences); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *LocalExperienceService) List(ctx context.Context) ([]models.Experience, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Experience, len(s.experiences))
	copy(out, s.experiences)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *LocalExperienceService) Create(ctx context.Context, req *models.CreateExperienceRequest) (*models.Experience, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp := req.ToExperience()
	s.experiences = append(s.experiences, *exp)
	if err := s.store.Save(s.experiences); err != nil {
		return nil, err
	}
	return exp, nil
}

func (s *LocalExperienceService) Update(ctx context.Context, id string, req *models.UpdateExperienceRequest) (*models.Experience, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.experiences {
		if s.experiences[i].ID.Hex() == id {
			req.Apply(&s.experiences[i])
			if err := s.store.Save(s.experiences); err != nil {
				return nil, err
			}
			exp := s.experiences[i]
			return &exp, nil
		}
	}
	return nil, ErrExperienceNotFound
}

func (s *LocalExperienceService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.experiences {
		if s.experiences[i].ID.Hex() == id {
			s.experiences = append(s.experiences[:i], s.experiences[i+1:]...)
			return s.store.Save(s.experiences)
		}
	}
	return ErrExperienceNotFound
}
