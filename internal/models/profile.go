package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile is the single document describing the site owner. It is created
// lazily with defaults and never deleted.
type Profile struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Title        string             `json:"title" bson:"title"`
	Intro        string             `json:"intro" bson:"intro"`
	Skills       []string           `json:"skills" bson:"skills"`
	ProfileImage string             `json:"profileImage" bson:"profileImage"`
	ResumePdf    string             `json:"resumePdf" bson:"resumePdf"`
	ShowBadge    bool               `json:"showBadge" bson:"showBadge"`
	BadgeText    string             `json:"badgeText" bson:"badgeText"`
	Stats        ProfileStats       `json:"stats" bson:"stats"`
	Links        ProfileLinks       `json:"links" bson:"links"`
	Services     []ServiceOffering  `json:"services" bson:"services"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ProfileStats are the headline numbers shown on the home page.
// Stored as strings so the owner can write "10+" or "Active".
type ProfileStats struct {
	Projects    string `json:"projects" bson:"projects"`
	Internships string `json:"internships" bson:"internships"`
	OpenSource  string `json:"openSource" bson:"openSource"`
}

type ProfileLinks struct {
	GitHub   string `json:"github" bson:"github"`
	LinkedIn string `json:"linkedin" bson:"linkedin"`
}

// ServiceOffering is one of the three service cards on the home page.
// The three-slot shape is enforced by the admin form, not the schema.
type ServiceOffering struct {
	Title string `json:"title" bson:"title"`
	Desc  string `json:"desc" bson:"desc"`
}

// DefaultProfile returns the document inserted when no profile exists yet.
func DefaultProfile() *Profile {
	now := time.Now()
	return &Profile{
		ID:     primitive.NewObjectID(),
		Name:   "Hardik Patil",
		Title:  "MERN Stack Developer",
		Intro:  "I build modern, responsive, and scalable web applications using React, Tailwind, Node.js, MongoDB and Sanity CMS.",
		Skills: []string{"React", "Tailwind", "Node.js", "MongoDB", "Redux", "Sanity"},

		ShowBadge: true,
		BadgeText: "Available for Freelance Projects",

		Stats: ProfileStats{
			Projects:    "10+",
			Internships: "2",
			OpenSource:  "Active",
		},
		Links: ProfileLinks{
			GitHub: "https://github.com/",
		},
		Services: []ServiceOffering{
			{
				Title: "Frontend Development",
				Desc:  "Modern UI with React + Tailwind, responsive and pixel-perfect.",
			},
			{
				Title: "Backend + APIs",
				Desc:  "Secure REST APIs, authentication, MongoDB models, clean architecture.",
			},
			{
				Title: "CMS + Client Updates",
				Desc:  "Sanity CMS integration so clients can update content easily.",
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateProfileRequest merges onto the existing profile. Nil fields are left
// untouched; nested stats/links merge per sub-field.
type UpdateProfileRequest struct {
	Name      *string            `json:"name"`
	Title     *string            `json:"title"`
	Intro     *string            `json:"intro"`
	Skills    *[]string          `json:"skills"`
	ShowBadge *bool              `json:"showBadge"`
	BadgeText *string            `json:"badgeText"`
	Stats     *ProfileStatsPatch `json:"stats"`
	Links     *ProfileLinksPatch `json:"links"`
	Services  *[]ServiceOffering `json:"services"`
}

type ProfileStatsPatch struct {
	Projects    *string `json:"projects"`
	Internships *string `json:"internships"`
	OpenSource  *string `json:"openSource"`
}

type ProfileLinksPatch struct {
	GitHub   *string `json:"github"`
	LinkedIn *string `json:"linkedin"`
}

// Apply merges the request onto p in place.
func (r *UpdateProfileRequest) Apply(p *Profile) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Title != nil {
		p.Title = *r.Title
	}
	if r.Intro != nil {
		p.Intro = *r.Intro
	}
	if r.Skills != nil {
		p.Skills = *r.Skills
	}
	if r.ShowBadge != nil {
		p.ShowBadge = *r.ShowBadge
	}
	if r.BadgeText != nil {
		p.BadgeText = *r.BadgeText
	}
	if r.Stats != nil {
		if r.Stats.Projects != nil {
			p.Stats.Projects = *r.Stats.Projects
		}
		if r.Stats.Internships != nil {
			p.Stats.Internships = *r.Stats.Internships
		}
		if r.Stats.OpenSource != nil {
			p.Stats.OpenSource = *r.Stats.OpenSource
		}
	}
	if r.Links != nil {
		if r.Links.GitHub != nil {
			p.Links.GitHub = *r.Links.GitHub
		}
		if r.Links.LinkedIn != nil {
			p.Links.LinkedIn = *r.Links.LinkedIn
		}
	}
	if r.Services != nil {
		p.Services = *r.Services
	}
	p.UpdatedAt = time.Now()
}
