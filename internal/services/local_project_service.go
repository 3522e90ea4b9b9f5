package services

import (
	"context"
	"sort"
	"sync"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/storage"
)

// LocalProjectService keeps projects in memory, persisted as a JSON file.
// It backs local development and tests when no Mongo URI is configured.
type LocalProjectService struct {
	mu       sync.RWMutex
	store    *storage.JSONStore
	projects []models.Project
}

func NewLocalProjectService(dataDir string) (*LocalProjectService, error) {
	store, err := storage.NewJSONStore(dataDir, "projects.json")
	if err != nil {
		return nil, err
	}

	s := &LocalProjectService{store: store, projects: []models.Project{}}
	if err := store.Load(&s.projects); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *LocalProjectService) List(ctx context.Context) ([]models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Project, len(s.projects))
	copy(out, s.projects)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Featured != out[j].Featured {
			return out[i].Featured
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *LocalProjectService) Create(ctx context.Context, req *models.CreateProjectRequest) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project := req.ToProject()
	s.projects = append(s.projects, *project)
	if err := s.store.Save(s.projects); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *LocalProjectService) Update(ctx context.Context, id string, req *models.UpdateProjectRequest) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID.Hex() == id {
			req.Apply(&s.projects[i])
			if err := s.store.Save(s.projects); err != nil {
				return nil, err
			}
			project := s.projects[i]
			return &project, nil
		}
	}
	return nil, ErrProjectNotFound
}

func (s *LocalProjectService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID.Hex() == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return s.store.Save(s.projects)
		}
	}
	return ErrProjectNotFound
}
