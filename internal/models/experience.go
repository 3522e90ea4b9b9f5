package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Experience struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Role           string             `json:"role" bson:"role"`
	Company        string             `json:"company" bson:"company"`
	Type           string             `json:"type" bson:"type"` // Internship / Freelance / Job, free text
	StartDate      string             `json:"startDate" bson:"startDate"`
	EndDate        string             `json:"endDate" bson:"endDate"` // "Mar 2025" or "Present"
	Description    string             `json:"description" bson:"description"`
	Skills         []string           `json:"skills" bson:"skills"`
	CertificateURL string             `json:"certificateUrl" bson:"certificateUrl"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type CreateExperienceRequest struct {
	Role           string   `json:"role"`
	Company        string   `json:"company"`
	Type           string   `json:"type"`
	StartDate      string   `json:"startDate"`
	EndDate        string   `json:"endDate"`
	Description    string   `json:"description"`
	Skills         []string `json:"skills"`
	CertificateURL string   `json:"certificateUrl"`
}

func (r *CreateExperienceRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Role) == "" {
		errors["role"] = "Role is required"
	}
	if strings.TrimSpace(r.Company) == "" {
		errors["company"] = "Company is required"
	}

	return errors
}

func (r *CreateExperienceRequest) ToExperience() *Experience {
	now := time.Now()

	expType := strings.TrimSpace(r.Type)
	if expType == "" {
		expType = "Internship"
	}
	skills := r.Skills
	if skills == nil {
		skills = []string{}
	}

	return &Experience{
		ID:             primitive.NewObjectID(),
		Role:           r.Role,
		Company:        r.Company,
		Type:           expType,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		Description:    r.Description,
		Skills:         skills,
		CertificateURL: r.CertificateURL,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

type UpdateExperienceRequest struct {
	Role           *string   `json:"role"`
	Company        *string   `json:"company"`
	Type           *string   `json:"type"`
	StartDate      *string   `json:"startDate"`
	EndDate        *string   `json:"endDate"`
	Description    *string   `json:"description"`
	Skills         *[]string `json:"skills"`
	CertificateURL *string   `json:"certificateUrl"`
}

func (r *UpdateExperienceRequest) Apply(e *Experience) {
	if r.Role != nil {
		e.Role = *r.Role
	}
	if r.Company != nil {
		e.Company = *r.Company
	}
	if r.Type != nil {
		e.Type = strings.TrimSpace(*r.Type)
	}
	if r.StartDate != nil {
		e.StartDate = *r.StartDate
	}
	if r.EndDate != nil {
		e.EndDate = *r.EndDate
	}
	if r.Description != nil {
		e.Description = *r.Description
	}
	if r.Skills != nil {
		e.Skills = *r.Skills
	}
	if r.CertificateURL != nil {
		e.CertificateURL = *r.CertificateURL
	}
	e.UpdatedAt = time.Now()
}
