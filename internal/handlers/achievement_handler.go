package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/services"
)

type AchievementHandler struct {
	achievements services.AchievementService
}

func NewAchievementHandler(achievements services.AchievementService) *AchievementHandler {
	return &AchievementHandler{achievements: achievements}
}

func (h *AchievementHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	achievements, err := h.achievements.List(ctx)
	if err != nil {
		log.Printf("[ListAchievements] error=%v", err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to list achievements"))
		return
	}
	writeJSON(w, http.StatusOK, models.NewSuccessResponse(achievements))
}

func (h *AchievementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAchievementRequest
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

	achievement, err := h.achievements.Create(ctx, &req)
	if err != nil {
		log.Printf("[CreateAchievement] error=%v", err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to create achievement"))
		return
	}
	writeJSON(w, http.StatusCreated, models.NewMessageResponse("Achievement added", achievement))
}

func (h *AchievementHandler) Update(w http.ResponseWriter, r *http.Request) {
	achievementID := chi.URLParam(r, "achievementId")

	var req models.UpdateAchievementRequest
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

	achievement, err := h.achievements.Update(ctx, achievementID, &req)
	if err != nil {
		if err == services.ErrAchievementNotFound {
			writeJSON(w, http.StatusNotFound, models.NewErrorResponse("Achievement not found"))
			return
		}
		log.Printf("[UpdateAchievement] id=%s error=%v", achievementID, err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to update achievement"))
		return
	}
	writeJSON(w, http.StatusOK, models.NewMessageResponse("Achievement updated", achievement))
}

func (h *AchievementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	achievementID := chi.URLParam(r, "achievementId")

	ctx, cancel := requestContext(r)
	defer cancel()

	if err := h.achievements.Delete(ctx, achievementID); err != nil {
		if err == services.ErrAchievementNotFound {
			writeJSON(w, http.StatusNotFound, models.NewErrorResponse("Achievement not found"))
			return
		}
		log.Printf("[DeleteAchievement] id=%s error=%v", achievementID, err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Failed to delete achievement"))
		return
	}
	writeJSON(w, http.StatusOK, models.NewMessageResponse("Achievement deleted", nil))
}
