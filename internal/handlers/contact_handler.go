package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/services"
)

type ContactHandler struct {
	contacts services.ContactService
	mailer   services.Mailer
}

func NewContactHandler(contacts services.ContactService, mailer services.Mailer) *ContactHandler {
	return &ContactHandler{contacts: contacts, mailer: mailer}
}

// Submit is the public contact form endpoint. The message is persisted
// first; the notification mail is attempted afterwards and a send failure
// does not fail the request, since the message is already saved.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid request body"))
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, models.NewValidationErrorResponse(errors))
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	msg, err := h.contacts.Create(ctx, &req)
	if err != nil {
		log.Printf("[SubmitContact] error=%v", err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to save message"))
		return
	}

	notified := false
	if h.mailer != nil {
		if err := h.mailer.SendContactNotification(ctx, msg); err != nil {
			log.Printf("[SubmitContact] notification failed: %v", err)
		} else {
			notified = true
		}
	}

	writeJSON(w, http.StatusCreated, models.NewMessageResponse("Message sent successfully", models.ContactSubmission{
		Message:  msg,
		Notified: notified,
	}))
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	messages, err := h.contacts.List(ctx)
	if err != nil {
		log.Printf("[ListContact] error=%v", err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to fetch messages"))
		return
	}
	writeJSON(w, http.StatusOK, models.NewSuccessResponse(messages))
}

// Get returns one message and marks it read; opening a message in the
// admin view is what counts as reading it.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	messageID := chi.URLParam(r, "messageId")

	ctx, cancel := requestContext(r)
	defer cancel()

	msg, err := h.contacts.GetAndMarkRead(ctx, messageID)
	if err != nil {
		if err == services.ErrMessageNotFound {
			writeJSON(w, http.StatusNotFound, models.NewErrorResponse("Message not found"))
			return
		}
		log.Printf("[GetContact] id=%s error=%v", messageID, err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to fetch message"))
		return
	}
	writeJSON(w, http.StatusOK, models.NewSuccessResponse(msg))
}

// MarkRead sets the read flag to the supplied value. Idempotent.
func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	messageID := chi.URLParam(r, "messageId")

	var req models.MarkReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid request body"))
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	msg, err := h.contacts.SetRead(ctx, messageID, req.IsRead)
	if err != nil {
		if err == services.ErrMessageNotFound {
			writeJSON(w, http.StatusNotFound, models.NewErrorResponse("Message not found"))
			return
		}
		log.Printf("[MarkRead] id=%s error=%v", messageID, err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to update message"))
		return
	}
	writeJSON(w, http.StatusOK, models.NewMessageResponse("Message updated", msg))
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	messageID := chi.URLParam(r, "messageId")

	ctx, cancel := requestContext(r)
	defer cancel()

	if err := h.contacts.Delete(ctx, messageID); err != nil {
		if err == services.ErrMessageNotFound {
			writeJSON(w, http.StatusNotFound, models.NewErrorResponse("Message not found"))
			return
		}
		log.Printf("[DeleteContact] id=%s error=%v", messageID, err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to delete message"))
		return
	}
	writeJSON(w, http.StatusOK, models.NewMessageResponse("Message deleted", nil))
}
