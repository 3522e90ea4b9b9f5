package services

import (
	"context"
	"errors"

	"github.com/devfolio/backend/internal/models"
)

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrExperienceNotFound  = errors.New("experience not found")
	ErrAchievementNotFound = errors.New("achievement not found")
	ErrMessageNotFound     = errors.New("message not found")
)

// ProfileService manages the singleton profile document.
type ProfileService interface {
	// EnsureDefault creates the default document if none exists. Idempotent;
	// called once at startup so first reads never race on creation.
	EnsureDefault(ctx context.Context) error
	Get(ctx context.Context) (*models.Profile, error)
	Update(ctx context.Context, req *models.UpdateProfileRequest) (*models.Profile, error)
	SetImage(ctx context.Context, path string) (*models.Profile, error)
	SetResume(ctx context.Context, path string) (*models.Profile, error)
}

// SettingsService manages the singleton site-settings document.
type SettingsService interface {
	EnsureDefault(ctx context.Context) error
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.Settings, error)
	SetLogo(ctx context.Context, path string) (*models.Settings, error)
}

type ProjectService interface {
	// List returns featured projects first, newest first within each group.
	List(ctx context.Context) ([]models.Project, error)
	Create(ctx context.Context, req *models.CreateProjectRequest) (*models.Project, error)
	Update(ctx context.Context, id string, req *models.UpdateProjectRequest) (*models.Project, error)
	Delete(ctx context.Context, id string) error
}

type ExperienceService interface {
	// List returns experiences newest first.
	List(ctx context.Context) ([]models.Experience, error)
	Create(ctx context.Context, req *models.CreateExperienceRequest) (*models.Experience, error)
	Update(ctx context.Context, id string, req *models.UpdateExperienceRequest) (*models.Experience, error)
	Delete(ctx context.Context, id string) error
}

type AchievementService interface {
	// List returns featured achievements first, newest first within each group.
	List(ctx context.Context) ([]models.Achievement, error)
	Create(ctx context.Context, req *models.CreateAchievementRequest) (*models.Achievement, error)
	Update(ctx context.Context, id string, req *models.UpdateAchievementRequest) (*models.Achievement, error)
	Delete(ctx context.Context, id string) error
}

type ContactService interface {
	// List returns messages newest first.
	List(ctx context.Context) ([]models.ContactMessage, error)
	Create(ctx context.Context, req *models.SubmitContactRequest) (*models.ContactMessage, error)
	// GetAndMarkRead returns a message and flips it to read, so opening a
	// message in the admin view needs a single request.
	GetAndMarkRead(ctx context.Context, id string) (*models.ContactMessage, error)
	SetRead(ctx context.Context, id string, isRead bool) (*models.ContactMessage, error)
	Delete(ctx context.Context, id string) error
}

// Mailer dispatches the notification for a new contact message.
type Mailer interface {
	SendContactNotification(ctx context.Context, msg *models.ContactMessage) error
}
