package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/services"
)

type ExperienceHandler struct {
	experiences services.ExperienceService
}

func NewExperienceHandler(experiences services.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{experiences: experiences}
}

func (h *ExperienceHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	experiences, err := h.experiences.List(ctx)
	if err != nil {
		log.Printf("[ListExperience] error=%v", err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to list experience"))
		return
	}
	writeJSON(w, http.StatusOK, models.NewSuccessResponse(experiences))
}

func (h *ExperienceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateExperienceRequest
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

	exp, err := h.experiences.Create(ctx, &req)
	if err != nil {
		log.Printf("[CreateExperience] error=%v", err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to create experience"))
		return
	}
	writeJSON(w, http.StatusCreated, models.NewMessageResponse("Experience added", exp))
}

func (h *ExperienceHandler) Update(w http.ResponseWriter, r *http.Request) {
	experienceID := chi.URLParam(r, "experienceId")

	var req models.UpdateExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid request body"))
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	exp, err := h.experiences.Update(ctx, experienceID, &req)
	if err != nil {
		if err == services.ErrExperienceNotFound {
			writeJSON(w, http.StatusNotFound, models.NewErrorResponse("Experience not found"))
			return
		}
		log.Printf("[UpdateExperience] id=%s error=%v", experienceID, err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to update experience"))
		return
	}
	writeJSON(w, http.StatusOK, models.NewMessageResponse("Experience updated", exp))
}

func (h *ExperienceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	experienceID := chi.URLParam(r, "experienceId")

	ctx, cancel := requestContext(r)
	defer cancel()

	if err := h.experiences.Delete(ctx, experienceID); err != nil {
		if err == services.ErrExperienceNotFound {
			writeJSON(w, http.StatusNotFound, models.NewErrorResponse("Experience not found"))
			return
		}
		log.Printf("[DeleteExperience] id=%s error=%v", experienceID, err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to delete experience"))
		return
	}
	writeJSON(w, http.StatusOK, models.NewMessageResponse("Experience deleted", nil))
}
