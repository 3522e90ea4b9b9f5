package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/storage"
)

type LocalContactService struct {
	mu       sync.RWMutex
	store    *storage.JSONStore
	messages []models.ContactMessage
}

func NewLocalContactService(dataDir string) (*LocalContactService, error) {
	store, err := storage.NewJSONStore(dataDir, "contact_messages.json")
	if err != nil {
		return nil, err
	}

	s := &LocalContactService{store: store, messages: []models.ContactMessage{}}
	if err := store.Load(&s.messages); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *LocalContactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ContactMessage, len(s.messages))
	copy(out, s.messages)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *LocalContactService) Create(ctx context.Context, req *models.SubmitContactRequest) (*models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := req.ToMessage()
	s.messages = append(s.messages, *msg)
	if err := s.store.Save(s.messages); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *LocalContactService) GetAndMarkRead(ctx context.Context, id string) (*models.ContactMessage, error) {
	return s.SetRead(ctx, id, true)
}

func (s *LocalContactService) SetRead(ctx context.Context, id string, isRead bool) (*models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID.Hex() == id {
			s.messages[i].IsRead = isRead
			s.messages[i].UpdatedAt = time.Now()
			if err := s.store.Save(s.messages); err != nil {
				return nil, err
			}
			msg := s.messages[i]
			return &msg, nil
		}
	}
	return nil, ErrMessageNotFound
}

func (s *LocalContactService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID.Hex() == id {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			return s.store.Save(s.messages)
		}
	}
	return ErrMessageNotFound
}
