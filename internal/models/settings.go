package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Settings is the singleton site-settings document (footer contact details,
// social links, logo). Created lazily with defaults, never deleted.
type Settings struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PortfolioName string             `json:"portfolioName" bson:"portfolioName"`
	Email         string             `json:"email" bson:"email"`
	Phone         string             `json:"phone" bson:"phone"`
	Location      string             `json:"location" bson:"location"`
	GitHub        string             `json:"github" bson:"github"`
	LinkedIn      string             `json:"linkedin" bson:"linkedin"`
	Instagram     string             `json:"instagram" bson:"instagram"`
	Blog          string             `json:"blog" bson:"blog"`
	Logo          string             `json:"logo" bson:"logo"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func DefaultSettings() *Settings {
	now := time.Now()
	return &Settings{
		ID:            primitive.NewObjectID(),
		PortfolioName: "Hardik Patil",
		Location:      "India",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// UpdateSettingsRequest merges onto the existing settings document.
type UpdateSettingsRequest struct {
	PortfolioName *string `json:"portfolioName"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Location      *string `json:"location"`
	GitHub        *string `json:"github"`
	LinkedIn      *string `json:"linkedin"`
	Instagram     *string `json:"instagram"`
	Blog          *string `json:"blog"`
}

func (r *UpdateSettingsRequest) Apply(s *Settings) {
	if r.PortfolioName != nil {
		s.PortfolioName = *r.PortfolioName
	}
	if r.Email != nil {
		s.Email = *r.Email
	}
	if r.Phone != nil {
		s.Phone = *r.Phone
	}
	if r.Location != nil {
		s.Location = *r.Location
	}
	if r.GitHub != nil {
		s.GitHub = *r.GitHub
	}
	if r.LinkedIn != nil {
		s.LinkedIn = *r.LinkedIn
	}
	if r.Instagram != nil {
		s.Instagram = *r.Instagram
	}
	if r.Blog != nil {
		s.Blog = *r.Blog
	}
	s.UpdatedAt = time.Now()
}
