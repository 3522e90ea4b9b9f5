package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Project struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Desc      string             `json:"desc" bson:"desc"`
	Tech      []string           `json:"tech" bson:"tech"`
	GitHub    string             `json:"github" bson:"github"`
	Live      string             `json:"live" bson:"live"`
	Featured  bool               `json:"featured" bson:"featured"`
	Type      string             `json:"type" bson:"type"` // free-text category
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type CreateProjectRequest struct {
	Title    string   `json:"title"`
	Desc     string   `json:"desc"`
	Tech     []string `json:"tech"`
	GitHub   string   `json:"github"`
	Live     string   `json:"live"`
	Featured bool     `json:"featured"`
	Type     string   `json:"type"`
}

func (r *CreateProjectRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		errors["title"] = "Title is required"
	}
	if strings.TrimSpace(r.Desc) == "" {
		errors["desc"] = "Description is required"
	}

	return errors
}

// ToProject builds the document to insert, applying field defaults.
func (r *CreateProjectRequest) ToProject() *Project {
	now := time.Now()

	projectType := strings.TrimSpace(r.Type)
	if projectType == "" {
		projectType = "General"
	}
	tech := r.Tech
	if tech == nil {
		tech = []string{}
	}

	return &Project{
		ID:        primitive.NewObjectID(),
		Title:     r.Title,
		Desc:      r.Desc,
		Tech:      tech,
		GitHub:    r.GitHub,
		Live:      r.Live,
		Featured:  r.Featured,
		Type:      projectType,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateProjectRequest merges onto an existing project; nil fields are kept.
type UpdateProjectRequest struct {
	Title    *string   `json:"title"`
	Desc     *string   `json:"desc"`
	Tech     *[]string `json:"tech"`
	GitHub   *string   `json:"github"`
	Live     *string   `json:"live"`
	Featured *bool     `json:"featured"`
	Type     *string   `json:"type"`
}

func (r *UpdateProjectRequest) Apply(p *Project) {
	if r.Title != nil {
		p.Title = *r.Title
	}
	if r.Desc != nil {
		p.Desc = *r.Desc
	}
	if r.Tech != nil {
		p.Tech = *r.Tech
	}
	if r.GitHub != nil {
		p.GitHub = *r.GitHub
	}
	if r.Live != nil {
		p.Live = *r.Live
	}
	if r.Featured != nil {
		p.Featured = *r.Featured
	}
	if r.Type != nil {
		p.Type = strings.TrimSpace(*r.Type)
	}
	p.UpdatedAt = time.Now()
}
