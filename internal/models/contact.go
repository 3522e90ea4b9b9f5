package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContactMessage struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Message   string             `json:"message" bson:"message"`
	IsRead    bool               `json:"isRead" bson:"isRead"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type SubmitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (r *SubmitContactRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		errors["name"] = "Name is required"
	}
	if strings.TrimSpace(r.Email) == "" {
		errors["email"] = "Email is required"
	}
	if strings.TrimSpace(r.Message) == "" {
		errors["message"] = "Message is required"
	}

	return errors
}

func (r *SubmitContactRequest) ToMessage() *ContactMessage {
	now := time.Now()
	return &ContactMessage{
		ID:        primitive.NewObjectID(),
		Name:      r.Name,
		Email:     r.Email,
		Message:   r.Message,
		IsRead:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MarkReadRequest sets the read flag directly; the operation is idempotent.
type MarkReadRequest struct {
	IsRead bool `json:"isRead"`
}

// ContactSubmission is the response body for a contact form submission.
// Notified reports whether the notification mail was dispatched.
type ContactSubmission struct {
	Message  *ContactMessage `json:"message"`
	Notified bool            `json:"notified"`
}

// UnlockRequest is the admin dashboard unlock payload.
type UnlockRequest struct {
	Key string `json:"key"`
}

// UnlockResponse carries the admin session token.
type UnlockResponse struct {
	Token string `json:"token"`
}
