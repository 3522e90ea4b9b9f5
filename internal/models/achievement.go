package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AchievementCategories is the closed set accepted for Achievement.Category.
var AchievementCategories = []string{
	"Certification",
	"Internship",
	"Award",
	"Hackathon",
	"Open Source",
}

func IsValidAchievementCategory(category string) bool {
	for _, c := range AchievementCategories {
		if c == category {
			return true
		}
	}
	return false
}

type Achievement struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Issuer    string             `json:"issuer" bson:"issuer"`
	Category  string             `json:"category" bson:"category"`
	Date      string             `json:"date" bson:"date"` // e.g. "Feb 2025"
	ImageURL  string             `json:"imageUrl" bson:"imageUrl"`
	ProofURL  string             `json:"proofUrl" bson:"proofUrl"`
	Featured  bool               `json:"featured" bson:"featured"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type CreateAchievementRequest struct {
	Title    string `json:"title"`
	Issuer   string `json:"issuer"`
	Category string `json:"category"`
	Date     string `json:"date"`
	ImageURL string `json:"imageUrl"`
	ProofURL string `json:"proofUrl"`
	Featured bool   `json:"featured"`
}

func (r *CreateAchievementRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		errors["title"] = "Title is required"
	}
	if r.Category != "" && !IsValidAchievementCategory(r.Category) {
		errors["category"] = "Invalid achievement category"
	}

	return errors
}

func (r *CreateAchievementRequest) ToAchievement() *Achievement {
	now := time.Now()

	category := r.Category
	if category == "" {
		category = "Certification"
	}

	return &Achievement{
		ID:        primitive.NewObjectID(),
		Title:     r.Title,
		Issuer:    r.Issuer,
		Category:  category,
		Date:      r.Date,
		ImageURL:  r.ImageURL,
		ProofURL:  r.ProofURL,
		Featured:  r.Featured,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type UpdateAchievementRequest struct {
	Title    *string `json:"title"`
	Issuer   *string `json:"issuer"`
	Category *string `json:"category"`
	Date     *string `json:"date"`
	ImageURL *string `json:"imageUrl"`
	ProofURL *string `json:"proofUrl"`
	Featured *bool   `json:"featured"`
}

// Validate rejects a supplied category outside the closed set.
func (r *UpdateAchievementRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Category != nil && !IsValidAchievementCategory(*r.Category) {
		errors["category"] = "Invalid achievement category"
	}

	return errors
}

func (r *UpdateAchievementRequest) Apply(a *Achievement) {
	if r.Title != nil {
		a.Title = *r.Title
	}
	if r.Issuer != nil {
		a.Issuer = *r.Issuer
	}
	if r.Category != nil {
		a.Category = *r.Category
	}
	if r.Date != nil {
		a.Date = *r.Date
	}
	if r.ImageURL != nil {
		a.ImageURL = *r.ImageURL
	}
	if r.ProofURL != nil {
		a.ProofURL = *r.ProofURL
	}
	if r.Featured != nil {
		a.Featured = *r.Featured
	}
	a.UpdatedAt = time.Now()
}
