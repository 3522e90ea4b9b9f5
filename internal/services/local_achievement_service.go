package services

import (
	"context"
	"sort"
	"sync"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/storage"
)

type LocalAchievementService struct {
	mu           sync.RWMutex
	store        *storage.JSONStore
	achievements []models.Achievement
}

func NewLocalAchievementService(dataDir string) (*LocalAchievementService, error) {
	store, err := storage.NewJSONStore(dataDir, "achievements.json")
	if err != nil {
		return nil, err
	}

	s := &LocalAchievementService{store: store, achievements: []models.Achievement{}}
	if err := store.Load(&s.achievements); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *LocalAchievementService) List(ctx context.Context) ([]models.Achievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Achievement, len(s.achievements))
	copy(out, s.achievements)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Featured != out[j].Featured {
			return out[i].Featured
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *LocalAchievementService) Create(ctx context.Context, req *models.CreateAchievementRequest) (*models.Achievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	achievement := req.ToAchievement()
	s.achievements = append(s.achievements, *achievement)
	if err := s.store.Save(s.achievements); err != nil {
		return nil, err
	}
	return achievement, nil
}

func (s *LocalAchievementService) Update(ctx context.Context, id string, req *models.UpdateAchievementRequest) (*models.Achievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.achievements {
		if s.achievements[i].ID.Hex() == id {
			req.Apply(&s.achievements[i])
			if err := s.store.Save(s.achievements); err != nil {
				return nil, err
			}
			achievement := s.achievements[i]
			return &achievement, nil
		}
	}
	return nil, ErrAchievementNotFound
}

func (s *LocalAchievementService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.achievements {
		if s.achievements[i].ID.Hex() == id {
			s.achievements = append(s.achievements[:i], s.achievements[i+1:]...)
			return s.store.Save(s.achievements)
		}
	}
	return ErrAchievementNotFound
}
